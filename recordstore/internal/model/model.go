package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

const PlaceholderImage = "images/placeholder-book.jpg"

type Book struct {
	ID          int             `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Author      string          `json:"author" db:"author"`
	Category    string          `json:"category" db:"category"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Quantity    int             `json:"quantity" db:"quantity"`
	Image       string          `json:"image" db:"image"`
	Description string          `json:"description" db:"description"`
}

type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type OrderLineItem struct {
	BookID   int             `json:"bookId"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order items live in a jsonb column, snapshots included.
type Order struct {
	ID            int             `json:"id" db:"id"`
	CustomerName  string          `json:"customerName" db:"customer_name"`
	CustomerPhone string          `json:"customerPhone" db:"customer_phone"`
	Items         []OrderLineItem `json:"items" db:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Date          time.Time       `json:"date" db:"date"`
	Status        Status          `json:"status" db:"status"`
}
