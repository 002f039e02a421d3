package dashboard

import (
	"sort"
	"time"

	"github.com/Astemirdum/bookstore-admin/admin/internal/filter"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/shopspring/decimal"
)

const (
	RevenueDays    = 7
	TopBestSellers = 5
	TopRecent      = 5
)

type DayRevenue struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type BestSeller struct {
	BookID    int    `json:"bookId"`
	Title     string `json:"title"`
	TotalSold int    `json:"totalSold"`
}

type Stats struct {
	TotalBooks      int             `json:"totalBooks"`
	TotalOrders     int             `json:"totalOrders"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	LowStockCount   int             `json:"lowStockCount"`
	LowStock        []model.Book    `json:"lowStock"`
	RevenueByDay    []DayRevenue    `json:"revenueByDay"`
	BooksByCategory []CategoryCount `json:"booksByCategory"`
	BestSellers     []BestSeller    `json:"bestSellers"`
	RecentOrders    []model.Order   `json:"recentOrders"`
}

// Aggregate derives the dashboard figures. Revenue counts every order,
// cancelled ones included.
func Aggregate(books []model.Book, orders []model.Order, categories []model.Category, now time.Time) Stats {
	st := Stats{
		TotalBooks:   len(books),
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
	}
	for _, o := range orders {
		st.TotalRevenue = st.TotalRevenue.Add(o.TotalAmount)
	}
	st.LowStock = LowStock(books)
	st.LowStockCount = len(st.LowStock)
	st.RevenueByDay = RevenueByDay(orders, now)
	st.BooksByCategory = BooksByCategory(books, categories)
	st.BestSellers = BestSellers(orders, TopBestSellers)
	st.RecentOrders = RecentOrders(orders, TopRecent)
	return st
}

func LowStock(books []model.Book) []model.Book {
	out := make([]model.Book, 0)
	for _, b := range books {
		if b.Quantity <= model.LowStockMax {
			out = append(out, b)
		}
	}
	return out
}

// RevenueByDay buckets order totals into the trailing calendar days, oldest first.
func RevenueByDay(orders []model.Order, now time.Time) []DayRevenue {
	days := make([]DayRevenue, RevenueDays)
	for i := range days {
		days[i] = DayRevenue{
			Date:    now.AddDate(0, 0, i-(RevenueDays-1)),
			Revenue: decimal.Zero,
		}
	}
	for _, o := range orders {
		ts := o.Date.In(now.Location())
		for i := range days {
			if filter.SameDay(days[i].Date, ts) {
				days[i].Revenue = days[i].Revenue.Add(o.TotalAmount)
				break
			}
		}
	}
	return days
}

// BooksByCategory follows the category order and skips empty categories.
func BooksByCategory(books []model.Book, categories []model.Category) []CategoryCount {
	out := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		n := 0
		for _, b := range books {
			if b.Category == c.Name {
				n++
			}
		}
		if n > 0 {
			out = append(out, CategoryCount{Name: c.Name, Count: n})
		}
	}
	return out
}

// BestSellers sums sold quantities per book; ties keep first-seen order.
func BestSellers(orders []model.Order, top int) []BestSeller {
	idx := make(map[int]int)
	sellers := make([]BestSeller, 0)
	for _, o := range orders {
		for _, it := range o.Items {
			i, ok := idx[it.BookID]
			if !ok {
				i = len(sellers)
				idx[it.BookID] = i
				sellers = append(sellers, BestSeller{BookID: it.BookID, Title: it.Title})
			}
			sellers[i].TotalSold += it.Quantity
		}
	}
	sort.SliceStable(sellers, func(i, j int) bool {
		return sellers[i].TotalSold > sellers[j].TotalSold
	})
	if len(sellers) > top {
		sellers = sellers[:top]
	}
	return sellers
}

// RecentOrders returns the newest orders without reordering the input.
func RecentOrders(orders []model.Order, top int) []model.Order {
	out := make([]model.Order, len(orders))
	copy(out, orders)
	filter.SortOrdersByDateDesc(out)
	if len(out) > top {
		out = out[:top]
	}
	return out
}
