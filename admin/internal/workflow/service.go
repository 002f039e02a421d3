package workflow

import (
	"context"

	"github.com/Astemirdum/bookstore-admin/admin/internal/gateway"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/Astemirdum/bookstore-admin/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RecordStore interface {
	Books(ctx context.Context) ([]model.Book, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Orders(ctx context.Context) ([]model.Order, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, id int, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
	CreateOrder(ctx context.Context, order model.Order) (model.Order, error)
	UpdateOrder(ctx context.Context, id int, order model.Order) (model.Order, error)
}

type EventPublisher interface {
	Publish(ev kafka.Event) error
}

var (
	_ RecordStore    = (*gateway.Service)(nil)
	_ EventPublisher = (*kafka.Publisher)(nil)
)
