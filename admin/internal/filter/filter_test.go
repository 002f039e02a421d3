package filter_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/bookstore-admin/admin/internal/filter"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/stretchr/testify/require"
)

var books = []model.Book{
	{ID: 1, Title: "Dế Mèn phiêu lưu ký", Author: "Tô Hoài", Category: "Thiếu nhi", Quantity: 0},
	{ID: 2, Title: "Clean Code", Author: "Robert Martin", Category: "Lập trình", Quantity: 3},
	{ID: 3, Title: "The Go Programming Language", Author: "Donovan", Category: "Lập trình", Quantity: 12},
	{ID: 4, Title: "Tắt đèn", Author: "Ngô Tất Tố", Category: "Văn học", Quantity: 5},
	{ID: 5, Title: "Số đỏ", Author: "Vũ Trọng Phụng", Category: "Văn học", Quantity: 6},
}

func ids(bs []model.Book) []int {
	out := make([]int, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.ID)
	}
	return out
}

func TestStockLevelOf_Partition(t *testing.T) {
	t.Parallel()
	for qty := 0; qty <= 50; qty++ {
		got := filter.StockLevelOf(qty)
		switch {
		case qty == 0:
			require.Equal(t, model.OutOfStock, got, qty)
		case qty <= 5:
			require.Equal(t, model.LowStock, got, qty)
		default:
			require.Equal(t, model.InStock, got, qty)
		}
	}

	// every book lands in exactly one level
	seen := map[int]int{}
	for _, lvl := range []model.StockLevel{model.InStock, model.LowStock, model.OutOfStock} {
		for _, b := range filter.Books(books, model.BookCriteria{StockLevel: lvl}) {
			seen[b.ID]++
		}
	}
	require.Len(t, seen, len(books))
	for id, n := range seen {
		require.Equal(t, 1, n, id)
	}
}

func TestBooks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		criteria model.BookCriteria
		want     []int
	}{
		{name: "identity", criteria: model.BookCriteria{}, want: []int{1, 2, 3, 4, 5}},
		{name: "search title case-insensitive", criteria: model.BookCriteria{Search: "CLEAN"}, want: []int{2}},
		{name: "search author", criteria: model.BookCriteria{Search: "tô hoài"}, want: []int{1}},
		{name: "search category", criteria: model.BookCriteria{Search: "lập"}, want: []int{2, 3}},
		{name: "category exact", criteria: model.BookCriteria{Category: "Văn học"}, want: []int{4, 5}},
		{name: "category no partial", criteria: model.BookCriteria{Category: "Văn"}, want: []int{}},
		{name: "in stock", criteria: model.BookCriteria{StockLevel: model.InStock}, want: []int{3, 5}},
		{name: "low stock", criteria: model.BookCriteria{StockLevel: model.LowStock}, want: []int{2, 4}},
		{name: "out of stock", criteria: model.BookCriteria{StockLevel: model.OutOfStock}, want: []int{1}},
		{name: "and of all", criteria: model.BookCriteria{Search: "o", Category: "Lập trình", StockLevel: model.LowStock}, want: []int{2}},
		{name: "unknown level ignored", criteria: model.BookCriteria{StockLevel: "whatever"}, want: []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ids(filter.Books(books, tt.criteria)))
		})
	}
}

func TestBooks_IdentityReturnsInput(t *testing.T) {
	t.Parallel()
	got := filter.Books(books, model.BookCriteria{})
	require.Equal(t, books, got)
	require.Same(t, &books[0], &got[0])
}

func TestOrders(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, loc)
	orders := []model.Order{
		{ID: 101, CustomerName: "Nguyễn Văn An", CustomerPhone: "0912345678", Status: model.StatusPending, Date: now.Add(-time.Hour)},
		{ID: 102, CustomerName: "Trần Thị Bình", CustomerPhone: "0387654321", Status: model.StatusCompleted, Date: time.Date(2024, time.March, 14, 23, 30, 0, 0, loc)},
		{ID: 203, CustomerName: "Lê Văn Cường", CustomerPhone: "0701234567", Status: model.StatusCancelled, Date: now.AddDate(0, 0, -10)},
		{ID: 204, CustomerName: "Phạm Dũng", CustomerPhone: "0812345678", Status: model.StatusPending, Date: time.Date(2024, time.February, 15, 0, 0, 0, 0, loc)},
		{ID: 305, CustomerName: "Hoàng Em", CustomerPhone: "0912999999", Status: model.StatusCompleted, Date: time.Date(2024, time.February, 14, 23, 59, 0, 0, loc)},
	}
	oids := func(os []model.Order) []int {
		out := make([]int, 0, len(os))
		for _, o := range os {
			out = append(out, o.ID)
		}
		return out
	}

	tests := []struct {
		name     string
		criteria model.OrderCriteria
		want     []int
	}{
		{name: "identity", want: []int{101, 102, 203, 204, 305}},
		{name: "search name", criteria: model.OrderCriteria{Search: "VĂN"}, want: []int{101, 203}},
		{name: "search phone", criteria: model.OrderCriteria{Search: "0912"}, want: []int{101, 305}},
		{name: "search id", criteria: model.OrderCriteria{Search: "20"}, want: []int{203, 204}},
		{name: "status", criteria: model.OrderCriteria{Status: model.StatusCompleted}, want: []int{102, 305}},
		{name: "today", criteria: model.OrderCriteria{DateRange: model.RangeToday}, want: []int{101}},
		{name: "week", criteria: model.OrderCriteria{DateRange: model.RangeWeek}, want: []int{101, 102}},
		{name: "month starts at midnight same day previous month", criteria: model.OrderCriteria{DateRange: model.RangeMonth}, want: []int{101, 102, 203, 204}},
		{name: "and", criteria: model.OrderCriteria{Status: model.StatusPending, DateRange: model.RangeWeek}, want: []int{101}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, oids(filter.Orders(orders, tt.criteria, now)))
		})
	}
}

func TestOrders_TodayUsesCalendarDate(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2024, time.March, 15, 0, 5, 0, 0, loc)
	orders := []model.Order{
		// 17:30 UTC on the 14th is 00:30 on the 15th in ICT
		{ID: 1, Date: time.Date(2024, time.March, 14, 17, 30, 0, 0, time.UTC)},
		// five minutes before midnight, previous day
		{ID: 2, Date: time.Date(2024, time.March, 14, 23, 55, 0, 0, loc)},
	}
	got := filter.Orders(orders, model.OrderCriteria{DateRange: model.RangeToday}, now)
	require.Len(t, got, 1)
	require.Equal(t, 1, got[0].ID)
}

func TestSameDay(t *testing.T) {
	t.Parallel()
	hcm := time.FixedZone("ICT", 7*60*60)
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same date", time.Date(2024, 3, 15, 0, 0, 0, 0, hcm), time.Date(2024, 3, 15, 23, 59, 0, 0, hcm), true},
		{"next date", time.Date(2024, 3, 15, 23, 59, 0, 0, hcm), time.Date(2024, 3, 16, 0, 0, 0, 0, hcm), false},
		{"b read in a's zone", time.Date(2024, 3, 16, 1, 0, 0, 0, hcm), time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC), true},
		{"same utc date, other local date", time.Date(2024, 3, 15, 8, 0, 0, 0, hcm), time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC), false},
		{"same day, other month", time.Date(2024, 3, 15, 9, 0, 0, 0, hcm), time.Date(2024, 4, 15, 9, 0, 0, 0, hcm), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, filter.SameDay(tt.a, tt.b))
		})
	}
}

func TestSortOrdersByDateDesc(t *testing.T) {
	t.Parallel()
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{ID: 1, Date: base},
		{ID: 2, Date: base.Add(2 * time.Hour)},
		{ID: 3, Date: base.Add(time.Hour)},
		{ID: 4, Date: base.Add(2 * time.Hour)},
	}
	filter.SortOrdersByDateDesc(orders)
	got := []int{orders[0].ID, orders[1].ID, orders[2].ID, orders[3].ID}
	require.Equal(t, []int{2, 4, 3, 1}, got)
}
