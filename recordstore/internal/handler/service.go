package handler

import (
	"context"

	"github.com/Astemirdum/bookstore-admin/recordstore/internal/model"
	"github.com/Astemirdum/bookstore-admin/recordstore/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RecordService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, id int, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int) (model.Order, error)
	CreateOrder(ctx context.Context, order model.Order) (model.Order, error)
	UpdateOrder(ctx context.Context, id int, order model.Order) (model.Order, error)
}

var _ RecordService = (*service.Service)(nil)
