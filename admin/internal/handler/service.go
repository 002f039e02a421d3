package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/bookstore-admin/admin/internal/command"
	"github.com/Astemirdum/bookstore-admin/admin/internal/dashboard"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/Astemirdum/bookstore-admin/admin/internal/view"
	"github.com/Astemirdum/bookstore-admin/admin/internal/workflow"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Dispatcher interface {
	Dispatch(ctx context.Context, a command.Action, payload json.RawMessage) (any, error)
}

type BooksPage interface {
	Load(ctx context.Context) error
	Display() view.DisplayList[view.BookCard]
	Categories() []model.Category
	Criteria() model.BookCriteria
	ExportBooks() (data []byte, filename string, err error)
}

type OrdersPage interface {
	Load(ctx context.Context) error
	Display() view.DisplayList[view.OrderRow]
	Criteria() model.OrderCriteria
	BookOptions() []view.BookOption
	Details(id int) (view.OrderDetails, error)
}

type DashboardPage interface {
	Load(ctx context.Context) (dashboard.Stats, error)
	Page() view.DashboardPage
}

var (
	_ Dispatcher    = (*command.Dispatcher)(nil)
	_ BooksPage     = (*workflow.BooksView)(nil)
	_ OrdersPage    = (*workflow.OrdersView)(nil)
	_ DashboardPage = (*workflow.DashboardView)(nil)
)
