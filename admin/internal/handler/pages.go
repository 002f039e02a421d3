package handler

import (
	"net/http"

	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/Astemirdum/bookstore-admin/admin/internal/view"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type pageData struct {
	Title        string
	Active       string
	Notification *model.Notification
}

type dashboardData struct {
	pageData
	Page view.DashboardPage
}

type booksData struct {
	pageData
	Books      view.DisplayList[view.BookCard]
	Categories []model.Category
	Criteria   model.BookCriteria
}

type ordersData struct {
	pageData
	Orders      view.DisplayList[view.OrderRow]
	Criteria    model.OrderCriteria
	BookOptions []view.BookOption
	Statuses    []view.StatusOption
}

// Page loads fall back to the last good state with a danger notification.
func loadFailed(msg string) *model.Notification {
	return &model.Notification{Type: model.NotifyDanger, Message: msg}
}

func (h *Handler) DashboardPage(c echo.Context) error {
	data := dashboardData{pageData: pageData{Title: "Tổng quan", Active: "dashboard"}}
	if _, err := h.dashboard.Load(c.Request().Context()); err != nil {
		h.log.Error("dashboard page", zap.Error(err))
		data.Notification = loadFailed("Lỗi khi tải dashboard")
	}
	data.Page = h.dashboard.Page()
	return c.Render(http.StatusOK, "dashboard.html", data)
}

func (h *Handler) BooksPage(c echo.Context) error {
	data := booksData{pageData: pageData{Title: "Quản lý sách", Active: "books"}}
	if err := h.books.Load(c.Request().Context()); err != nil {
		h.log.Error("books page", zap.Error(err))
		data.Notification = loadFailed("Lỗi khi tải danh sách sách")
	}
	data.Books = h.books.Display()
	data.Categories = h.books.Categories()
	data.Criteria = h.books.Criteria()
	return c.Render(http.StatusOK, "books.html", data)
}

func (h *Handler) OrdersPage(c echo.Context) error {
	data := ordersData{pageData: pageData{Title: "Quản lý đơn hàng", Active: "orders"}}
	if err := h.orders.Load(c.Request().Context()); err != nil {
		h.log.Error("orders page", zap.Error(err))
		data.Notification = loadFailed("Lỗi khi tải danh sách đơn hàng")
	}
	data.Orders = h.orders.Display()
	data.Criteria = h.orders.Criteria()
	data.BookOptions = h.orders.BookOptions()
	data.Statuses = view.StatusOptions("")
	return c.Render(http.StatusOK, "orders.html", data)
}
