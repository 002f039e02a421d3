// Package filter holds the pure list filters of the books and orders views.
package filter

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
)

// StockLevelOf partitions quantities: 0 out, 1..5 low, above 5 in stock.
func StockLevelOf(qty int) model.StockLevel {
	switch {
	case qty <= 0:
		return model.OutOfStock
	case qty <= model.LowStockMax:
		return model.LowStock
	default:
		return model.InStock
	}
}

// Books keeps the books matching every non-empty criterion.
// Empty criteria return the input slice itself.
func Books(books []model.Book, c model.BookCriteria) []model.Book {
	if c == (model.BookCriteria{}) {
		return books
	}
	term := strings.ToLower(c.Search)
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if term != "" &&
			!strings.Contains(strings.ToLower(b.Title), term) &&
			!strings.Contains(strings.ToLower(b.Author), term) &&
			!strings.Contains(strings.ToLower(b.Category), term) {
			continue
		}
		if c.Category != "" && b.Category != c.Category {
			continue
		}
		if c.StockLevel.Valid() && StockLevelOf(b.Quantity) != c.StockLevel {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Orders keeps the orders matching every non-empty criterion relative to now.
// Order of the input is preserved.
func Orders(orders []model.Order, c model.OrderCriteria, now time.Time) []model.Order {
	if c == (model.OrderCriteria{}) {
		return orders
	}
	term := strings.ToLower(c.Search)
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if term != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), term) &&
			!strings.Contains(o.CustomerPhone, term) &&
			!strings.Contains(strconv.Itoa(o.ID), term) {
			continue
		}
		if c.Status != "" && o.Status != c.Status {
			continue
		}
		if c.DateRange != "" && !InRange(o.Date, c.DateRange, now) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// InRange reports whether ts falls into the range ending at now. Calendar
// comparisons use now's location.
func InRange(ts time.Time, r model.DateRange, now time.Time) bool {
	ts = ts.In(now.Location())
	switch r {
	case model.RangeToday:
		return SameDay(ts, now)
	case model.RangeWeek:
		return !ts.Before(now.Add(-7 * 24 * time.Hour))
	case model.RangeMonth:
		y, m, d := now.Date()
		return !ts.Before(time.Date(y, m-1, d, 0, 0, 0, 0, now.Location()))
	}
	return true
}

// SameDay reports whether a and b fall on the same calendar date, read in a's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// SortOrdersByDateDesc sorts in place, newest first. Equal dates keep their order.
func SortOrdersByDateDesc(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
}
