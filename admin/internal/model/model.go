package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the record store speaks plain JSON numbers for money
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	BooksCollection      = "books"
	OrdersCollection     = "orders"
	CategoriesCollection = "categories"

	PlaceholderImage = "images/placeholder-book.jpg"
	LowStockMax      = 5
)

type Book struct {
	ID          int             `json:"id,omitempty"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
}

type Category struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type OrderLineItem struct {
	BookID   int             `json:"bookId"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (i OrderLineItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID            int             `json:"id,omitempty"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Items         []OrderLineItem `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Date          time.Time       `json:"date"`
	Status        Status          `json:"status"`
}

// ItemsTotal is the sum of price×quantity over the line items.
func ItemsTotal(items []OrderLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total())
	}
	return total
}

type StockLevel string

const (
	InStock    StockLevel = "in-stock"
	LowStock   StockLevel = "low-stock"
	OutOfStock StockLevel = "out-of-stock"
)

func (l StockLevel) Valid() bool {
	return l == InStock || l == LowStock || l == OutOfStock
}

type DateRange string

const (
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

type BookCriteria struct {
	Search     string     `json:"search"`
	Category   string     `json:"category"`
	StockLevel StockLevel `json:"stockLevel"`
}

type OrderCriteria struct {
	Search    string    `json:"search"`
	Status    Status    `json:"status"`
	DateRange DateRange `json:"dateRange"`
}

// BookInput is the book form as submitted; numbers arrive as text.
type BookInput struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Author      string `json:"author" form:"author" validate:"required"`
	Category    string `json:"category" form:"category" validate:"required"`
	Price       string `json:"price" form:"price" validate:"required"`
	Quantity    string `json:"quantity" form:"quantity" validate:"required"`
	Image       string `json:"image" form:"image"`
	Description string `json:"description" form:"description"`
}

type LineInput struct {
	BookID   int `json:"bookId" validate:"required"`
	Quantity int `json:"quantity" validate:"min=1"`
}

type OrderInput struct {
	CustomerName  string      `json:"customerName" validate:"required"`
	CustomerPhone string      `json:"customerPhone" validate:"vnphone"`
	Items         []LineInput `json:"items" validate:"min=1,dive"`
}

type DeleteConfirmation struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyInfo    NotificationType = "info"
	NotifyWarning NotificationType = "warning"
	NotifyDanger  NotificationType = "danger"
)

type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
}
