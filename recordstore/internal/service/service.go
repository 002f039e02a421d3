package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-admin/recordstore/internal/model"
	"github.com/Astemirdum/bookstore-admin/recordstore/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	now  func() time.Time
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	withDefaults(&book)
	return s.repo.CreateBook(ctx, book)
}

func (s *Service) UpdateBook(ctx context.Context, id int, book model.Book) (model.Book, error) {
	withDefaults(&book)
	return s.repo.UpdateBook(ctx, id, book)
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id int) (model.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// CreateOrder stores the order as sent. Stock is not touched here.
func (s *Service) CreateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	if order.Status == "" {
		order.Status = model.StatusPending
	}
	if order.Date.IsZero() {
		order.Date = s.now()
	}
	return s.repo.CreateOrder(ctx, order)
}

func (s *Service) UpdateOrder(ctx context.Context, id int, order model.Order) (model.Order, error) {
	return s.repo.UpdateOrder(ctx, id, order)
}

// withDefaults fills what json-server clients leave out. Values are not checked.
func withDefaults(b *model.Book) {
	if b.Image == "" {
		b.Image = model.PlaceholderImage
	}
}
