package dashboard_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/bookstore-admin/admin/internal/dashboard"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestBestSellers(t *testing.T) {
	t.Parallel()
	orders := []model.Order{
		{Items: []model.OrderLineItem{{BookID: 1, Title: "Một", Quantity: 3}}},
		{Items: []model.OrderLineItem{{BookID: 1, Title: "Một", Quantity: 2}}},
		{Items: []model.OrderLineItem{{BookID: 2, Title: "Hai", Quantity: 10}}},
	}
	got := dashboard.BestSellers(orders, dashboard.TopBestSellers)
	require.Equal(t, []dashboard.BestSeller{
		{BookID: 2, Title: "Hai", TotalSold: 10},
		{BookID: 1, Title: "Một", TotalSold: 5},
	}, got)
}

func TestBestSellers_TiesAndTop(t *testing.T) {
	t.Parallel()
	var items []model.OrderLineItem
	for _, id := range []int{9, 3, 7, 1, 5, 8} {
		items = append(items, model.OrderLineItem{BookID: id, Quantity: 1})
	}
	items = append(items, model.OrderLineItem{BookID: 8, Quantity: 1})

	got := dashboard.BestSellers([]model.Order{{Items: items}}, 5)
	require.Len(t, got, 5)
	order := make([]int, 0, len(got))
	for _, s := range got {
		order = append(order, s.BookID)
	}
	require.Equal(t, []int{8, 9, 3, 7, 1}, order)
}

func TestAggregate(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, loc)
	day := func(offset, hour int) time.Time {
		return time.Date(2024, time.March, 15+offset, hour, 0, 0, 0, loc)
	}
	books := []model.Book{
		{ID: 1, Title: "A", Category: "Văn học", Quantity: 0},
		{ID: 2, Title: "B", Category: "Văn học", Quantity: 5},
		{ID: 3, Title: "C", Category: "Lập trình", Quantity: 6},
	}
	categories := []model.Category{{Name: "Lập trình"}, {Name: "Kinh tế"}, {Name: "Văn học"}}
	orders := []model.Order{
		{ID: 1, TotalAmount: dec(100000), Date: day(0, 9), Status: model.StatusPending},
		{ID: 2, TotalAmount: dec(50000), Date: day(0, 1), Status: model.StatusCancelled},
		{ID: 3, TotalAmount: dec(20000), Date: day(-6, 23), Status: model.StatusCompleted},
		{ID: 4, TotalAmount: dec(70000), Date: day(-7, 23), Status: model.StatusCompleted},
		{ID: 5, TotalAmount: dec(10000), Date: day(-2, 8), Status: model.StatusCompleted},
		{ID: 6, TotalAmount: dec(5000), Date: day(-3, 8), Status: model.StatusCompleted},
	}

	st := dashboard.Aggregate(books, orders, categories, now)

	require.Equal(t, 3, st.TotalBooks)
	require.Equal(t, 6, st.TotalOrders)
	require.True(t, dec(255000).Equal(st.TotalRevenue), st.TotalRevenue.String())
	require.Equal(t, 2, st.LowStockCount)
	require.Equal(t, []dashboard.CategoryCount{{Name: "Lập trình", Count: 1}, {Name: "Văn học", Count: 2}}, st.BooksByCategory)

	require.Len(t, st.RevenueByDay, dashboard.RevenueDays)
	wantRevenue := []int64{20000, 0, 0, 5000, 10000, 0, 150000}
	for i, d := range st.RevenueByDay {
		require.True(t, dec(wantRevenue[i]).Equal(d.Revenue), "day %d: %s", i, d.Revenue)
	}
	require.Equal(t, 9, st.RevenueByDay[0].Date.Day())
	require.Equal(t, 15, st.RevenueByDay[6].Date.Day())

	recent := make([]int, 0, len(st.RecentOrders))
	for _, o := range st.RecentOrders {
		recent = append(recent, o.ID)
	}
	require.Equal(t, []int{1, 2, 5, 6, 3}, recent)
	// input untouched
	require.Equal(t, 1, orders[0].ID)
	require.Equal(t, 6, orders[5].ID)
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()
	st := dashboard.Aggregate(nil, nil, nil, time.Now())
	require.Zero(t, st.TotalBooks)
	require.True(t, st.TotalRevenue.IsZero())
	require.Empty(t, st.BestSellers)
	require.Empty(t, st.RecentOrders)
	require.Len(t, st.RevenueByDay, dashboard.RevenueDays)
}
