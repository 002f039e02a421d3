// Package view turns filtered collections into the structures the pages render.
// Rendering is a pure function of its input.
package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Astemirdum/bookstore-admin/admin/internal/dashboard"
	"github.com/Astemirdum/bookstore-admin/admin/internal/filter"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	TitleMax       = 50
	DescriptionMax = 80

	DateLayout     = "02/01/2006 15:04"
	DayLabelLayout = "02/01"
	currencySymbol = "₫"
)

var statusLabels = map[model.Status]string{
	model.StatusPending:   "Chờ xử lý",
	model.StatusCompleted: "Hoàn thành",
	model.StatusCancelled: "Đã hủy",
}

// DisplayList is a rendered collection. Empty marks the "no results" state.
type DisplayList[T any] struct {
	Items []T  `json:"items"`
	Empty bool `json:"empty"`
}

func newDisplayList[T any](items []T) DisplayList[T] {
	return DisplayList[T]{Items: items, Empty: len(items) == 0}
}

type BookCard struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	FullTitle   string           `json:"fullTitle"`
	Author      string           `json:"author"`
	Category    string           `json:"category"`
	Price       string           `json:"price"`
	Quantity    int              `json:"quantity"`
	Stock       model.StockLevel `json:"stock"`
	BadgeClass  string           `json:"badgeClass"`
	StockText   string           `json:"stockText"`
	Description string           `json:"description,omitempty"`
	Image       string           `json:"image,omitempty"`
	HasImage    bool             `json:"hasImage"`
}

type OrderRow struct {
	ID          int          `json:"id"`
	Customer    string       `json:"customer"`
	Phone       string       `json:"phone"`
	ItemCount   int          `json:"itemCount"`
	ItemsText   string       `json:"itemsText"`
	Total       string       `json:"total"`
	Date        string       `json:"date"`
	Status      model.Status `json:"status"`
	StatusLabel string       `json:"statusLabel"`
	StatusClass string       `json:"statusClass"`
}

type DetailLine struct {
	BookID   int    `json:"bookId"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
}

type OrderDetails struct {
	OrderRow
	Lines []DetailLine `json:"lines"`
}

type StatusOption struct {
	Value    model.Status `json:"value"`
	Label    string       `json:"label"`
	Selected bool         `json:"selected"`
}

// StatusForm prefills the status change dialog.
type StatusForm struct {
	OrderID int            `json:"orderId"`
	Options []StatusOption `json:"options"`
}

type BookOption struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	Price     string `json:"price"`
	Available int    `json:"available"`
}

type LowStockRow struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Category   string `json:"category"`
	StockText  string `json:"stockText"`
	BadgeClass string `json:"badgeClass"`
}

type SeriesPoint struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type BestSellerRow struct {
	Rank      int    `json:"rank"`
	BookID    int    `json:"bookId"`
	Title     string `json:"title"`
	TotalSold int    `json:"totalSold"`
}

type DashboardPage struct {
	TotalBooks    int             `json:"totalBooks"`
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  string          `json:"totalRevenue"`
	LowStockCount int             `json:"lowStockCount"`
	LowStock      []LowStockRow   `json:"lowStock"`
	Revenue       []SeriesPoint   `json:"revenue"`
	Categories    []SeriesPoint   `json:"categories"`
	BestSellers   []BestSellerRow `json:"bestSellers"`
	RecentOrders  []OrderRow      `json:"recentOrders"`
}

// Renderer formats dates in a fixed location.
type Renderer struct {
	loc *time.Location
}

func NewRenderer(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{loc: loc}
}

func (r *Renderer) RenderBooks(books []model.Book) DisplayList[BookCard] {
	cards := make([]BookCard, 0, len(books))
	for _, b := range books {
		cards = append(cards, r.bookCard(b))
	}
	return newDisplayList(cards)
}

func (r *Renderer) bookCard(b model.Book) BookCard {
	stock := filter.StockLevelOf(b.Quantity)
	return BookCard{
		ID:          b.ID,
		Title:       Truncate(b.Title, TitleMax),
		FullTitle:   b.Title,
		Author:      b.Author,
		Category:    b.Category,
		Price:       FormatCurrency(b.Price),
		Quantity:    b.Quantity,
		Stock:       stock,
		BadgeClass:  BadgeClass(stock),
		StockText:   StockText(b.Quantity),
		Description: Truncate(b.Description, DescriptionMax),
		Image:       b.Image,
		HasImage:    b.Image != "" && b.Image != model.PlaceholderImage,
	}
}

func (r *Renderer) RenderOrders(orders []model.Order) DisplayList[OrderRow] {
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, r.orderRow(o))
	}
	return newDisplayList(rows)
}

func (r *Renderer) orderRow(o model.Order) OrderRow {
	return OrderRow{
		ID:          o.ID,
		Customer:    o.CustomerName,
		Phone:       o.CustomerPhone,
		ItemCount:   len(o.Items),
		ItemsText:   ItemsText(len(o.Items)),
		Total:       FormatCurrency(o.TotalAmount),
		Date:        r.FormatDate(o.Date),
		Status:      o.Status,
		StatusLabel: StatusLabel(o.Status),
		StatusClass: "status-" + string(o.Status),
	}
}

func (r *Renderer) RenderOrderDetails(o model.Order) OrderDetails {
	lines := make([]DetailLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, DetailLine{
			BookID:   it.BookID,
			Title:    it.Title,
			Price:    FormatCurrency(it.Price),
			Quantity: it.Quantity,
			Total:    FormatCurrency(it.Total()),
		})
	}
	return OrderDetails{OrderRow: r.orderRow(o), Lines: lines}
}

func (r *Renderer) RenderStatusForm(o model.Order) StatusForm {
	return StatusForm{OrderID: o.ID, Options: StatusOptions(o.Status)}
}

// StatusOptions lists every order status, marking current as selected.
func StatusOptions(current model.Status) []StatusOption {
	opts := make([]StatusOption, 0, len(statusLabels))
	for _, s := range []model.Status{model.StatusPending, model.StatusCompleted, model.StatusCancelled} {
		opts = append(opts, StatusOption{
			Value:    s,
			Label:    statusLabels[s],
			Selected: s == current,
		})
	}
	return opts
}

// RenderBookOptions lists the books offered in the order form.
func (r *Renderer) RenderBookOptions(books []model.Book) []BookOption {
	opts := make([]BookOption, 0, len(books))
	for _, b := range books {
		price := FormatCurrency(b.Price)
		opts = append(opts, BookOption{
			ID:        b.ID,
			Label:     fmt.Sprintf("%s - %s (Còn: %d)", b.Title, price, b.Quantity),
			Price:     b.Price.String(),
			Available: b.Quantity,
		})
	}
	return opts
}

func (r *Renderer) RenderDashboard(st dashboard.Stats) DashboardPage {
	page := DashboardPage{
		TotalBooks:    st.TotalBooks,
		TotalOrders:   st.TotalOrders,
		TotalRevenue:  FormatCurrency(st.TotalRevenue),
		LowStockCount: st.LowStockCount,
		LowStock:      make([]LowStockRow, 0, len(st.LowStock)),
		Revenue:       make([]SeriesPoint, 0, len(st.RevenueByDay)),
		Categories:    make([]SeriesPoint, 0, len(st.BooksByCategory)),
		BestSellers:   make([]BestSellerRow, 0, len(st.BestSellers)),
		RecentOrders:  make([]OrderRow, 0, len(st.RecentOrders)),
	}
	for _, b := range st.LowStock {
		page.LowStock = append(page.LowStock, LowStockRow{
			ID:         b.ID,
			Title:      b.Title,
			Author:     b.Author,
			Category:   b.Category,
			StockText:  StockText(b.Quantity),
			BadgeClass: BadgeClass(filter.StockLevelOf(b.Quantity)),
		})
	}
	for _, d := range st.RevenueByDay {
		page.Revenue = append(page.Revenue, SeriesPoint{
			Label: d.Date.In(r.loc).Format(DayLabelLayout),
			Value: d.Revenue.String(),
		})
	}
	for _, c := range st.BooksByCategory {
		page.Categories = append(page.Categories, SeriesPoint{Label: c.Name, Value: strconv.Itoa(c.Count)})
	}
	for i, s := range st.BestSellers {
		page.BestSellers = append(page.BestSellers, BestSellerRow{
			Rank:      i + 1,
			BookID:    s.BookID,
			Title:     s.Title,
			TotalSold: s.TotalSold,
		})
	}
	for _, o := range st.RecentOrders {
		page.RecentOrders = append(page.RecentOrders, r.orderRow(o))
	}
	return page
}

func (r *Renderer) FormatDate(t time.Time) string {
	return t.In(r.loc).Format(DateLayout)
}

// FormatCurrency renders whole dong with vi grouping, e.g. "130.000 ₫".
func FormatCurrency(amount decimal.Decimal) string {
	p := message.NewPrinter(language.Vietnamese)
	return p.Sprintf("%d", amount.Round(0).IntPart()) + " " + currencySymbol
}

// Truncate cuts s to max runes and marks the cut with "...".
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func StockText(qty int) string {
	if qty <= 0 {
		return "Hết hàng"
	}
	return "Còn " + strconv.Itoa(qty)
}

func BadgeClass(l model.StockLevel) string {
	switch l {
	case model.OutOfStock:
		return "out-of-stock"
	case model.LowStock:
		return "low-stock"
	}
	return ""
}

func ItemsText(n int) string {
	return strconv.Itoa(n) + " sản phẩm"
}

func StatusLabel(s model.Status) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}
