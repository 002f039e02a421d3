package command

import (
	"context"

	"github.com/Astemirdum/bookstore-admin/admin/internal/errs"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/Astemirdum/bookstore-admin/admin/internal/view"
	"github.com/Astemirdum/bookstore-admin/admin/internal/workflow"
	"github.com/pkg/errors"
)

const (
	BooksFilter        Action = "books.filter"
	BooksSearch        Action = "books.search"
	BooksClearFilters  Action = "books.clear-filters"
	BooksEdit          Action = "books.edit"
	BooksSave          Action = "books.save"
	BooksDelete        Action = "books.delete"
	BooksConfirmDelete Action = "books.confirm-delete"
	BooksReload        Action = "books.reload"

	OrdersFilter       Action = "orders.filter"
	OrdersSearch       Action = "orders.search"
	OrdersClearFilters Action = "orders.clear-filters"
	OrdersDetails      Action = "orders.details"
	OrdersOpenStatus   Action = "orders.open-status"
	OrdersCreate       Action = "orders.create"
	OrdersUpdateStatus Action = "orders.update-status"
	OrdersReload       Action = "orders.reload"

	DashboardRefresh Action = "dashboard.refresh"
)

// Result is what every action answers with.
type Result struct {
	Notification *model.Notification `json:"notification,omitempty"`
	Data         any                 `json:"data,omitempty"`
}

type (
	BookFilter struct {
		Category   string           `json:"category"`
		StockLevel model.StockLevel `json:"stockLevel"`
	}
	OrderFilter struct {
		Status    model.Status    `json:"status"`
		DateRange model.DateRange `json:"dateRange"`
	}
	SearchTerm struct {
		Term string `json:"term"`
	}
	RecordID struct {
		ID int `json:"id"`
	}
	SaveBook struct {
		ID int `json:"id"`
		model.BookInput
	}
	StatusChange struct {
		ID     int          `json:"id"`
		Status model.Status `json:"status"`
	}
	empty struct{}
)

// OrderSaved carries the created order and the refreshed list.
type OrderSaved struct {
	Order  model.Order                     `json:"order"`
	Orders view.DisplayList[view.OrderRow] `json:"orders"`
}

// New builds the dispatch table for the three pages.
func New(books *workflow.BooksView, orders *workflow.OrdersView, dash *workflow.DashboardView) *Dispatcher {
	d := NewDispatcher()

	d.Register(BooksFilter, Bind(func(_ context.Context, p BookFilter) (any, error) {
		books.SetCategory(p.Category)
		books.SetStockLevel(p.StockLevel)
		return Result{Data: books.Display()}, nil
	}))
	d.Register(BooksSearch, Bind(func(ctx context.Context, p SearchTerm) (any, error) {
		list, err := books.Search(ctx, p.Term)
		if err != nil {
			return nil, err
		}
		return Result{Data: list}, nil
	}))
	d.Register(BooksClearFilters, Bind(func(_ context.Context, _ empty) (any, error) {
		n := books.ClearFilters()
		return Result{Notification: &n, Data: books.Display()}, nil
	}))
	d.Register(BooksEdit, Bind(func(_ context.Context, p RecordID) (any, error) {
		b, err := books.OpenEdit(p.ID)
		if err != nil {
			return nil, err
		}
		return Result{Data: b}, nil
	}))
	d.Register(BooksSave, Bind(func(ctx context.Context, p SaveBook) (any, error) {
		n, err := books.SaveBook(ctx, p.ID, p.BookInput)
		if err != nil {
			return nil, err
		}
		return Result{Notification: &n, Data: books.Display()}, nil
	}))
	d.Register(BooksDelete, Bind(func(_ context.Context, p RecordID) (any, error) {
		c, err := books.RequestDelete(p.ID)
		if err != nil {
			return nil, err
		}
		return Result{Data: c}, nil
	}))
	d.Register(BooksConfirmDelete, Bind(func(ctx context.Context, _ empty) (any, error) {
		n, err := books.ConfirmDelete(ctx)
		if err != nil {
			return nil, err
		}
		return Result{Notification: &n, Data: books.Display()}, nil
	}))
	d.Register(BooksReload, Bind(func(ctx context.Context, _ empty) (any, error) {
		if err := books.Load(ctx); err != nil {
			return nil, err
		}
		return Result{Data: books.Display()}, nil
	}))

	d.Register(OrdersFilter, Bind(func(_ context.Context, p OrderFilter) (any, error) {
		orders.SetStatus(p.Status)
		orders.SetDateRange(p.DateRange)
		return Result{Data: orders.Display()}, nil
	}))
	d.Register(OrdersSearch, Bind(func(ctx context.Context, p SearchTerm) (any, error) {
		list, err := orders.Search(ctx, p.Term)
		if err != nil {
			return nil, err
		}
		return Result{Data: list}, nil
	}))
	d.Register(OrdersClearFilters, Bind(func(_ context.Context, _ empty) (any, error) {
		n := orders.ClearFilters()
		return Result{Notification: &n, Data: orders.Display()}, nil
	}))
	d.Register(OrdersDetails, Bind(func(_ context.Context, p RecordID) (any, error) {
		details, err := orders.Details(p.ID)
		if err != nil {
			return nil, err
		}
		return Result{Data: details}, nil
	}))
	d.Register(OrdersOpenStatus, Bind(func(_ context.Context, p RecordID) (any, error) {
		form, err := orders.OpenStatus(p.ID)
		if err != nil {
			return nil, err
		}
		return Result{Data: form}, nil
	}))
	d.Register(OrdersCreate, Bind(func(ctx context.Context, p model.OrderInput) (any, error) {
		order, n, err := orders.CreateOrder(ctx, p)
		var stockErr *errs.StockUpdateError
		switch {
		case errors.As(err, &stockErr):
			n.Message += ": " + stockErr.Err.Error()
		case err != nil:
			return nil, err
		}
		return Result{Notification: &n, Data: OrderSaved{Order: order, Orders: orders.Display()}}, nil
	}))
	d.Register(OrdersUpdateStatus, Bind(func(ctx context.Context, p StatusChange) (any, error) {
		n, err := orders.UpdateStatus(ctx, p.ID, p.Status)
		if err != nil {
			return nil, err
		}
		return Result{Notification: &n, Data: orders.Display()}, nil
	}))
	d.Register(OrdersReload, Bind(func(ctx context.Context, _ empty) (any, error) {
		if err := orders.Load(ctx); err != nil {
			return nil, err
		}
		return Result{Data: orders.Display()}, nil
	}))

	d.Register(DashboardRefresh, Bind(func(ctx context.Context, _ empty) (any, error) {
		page, n, err := dash.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		return Result{Notification: &n, Data: page}, nil
	}))
	return d
}
