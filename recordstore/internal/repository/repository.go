package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-admin/recordstore/internal/errs"
	"github.com/Astemirdum/bookstore-admin/recordstore/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
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

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName      = `books`
	categoriesTableName = `categories`
	ordersTableName     = `orders`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	bookColumns  = []string{"id", "title", "author", "category", "price", "quantity", "image", "description"}
	orderColumns = []string{"id", "customer_name", "customer_phone", "items", "total_amount", "date", "status"}
)

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

// collectOne runs a single-row statement and maps it by db tags.
func collectOne[T any](ctx context.Context, r *repository, op string, b sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := b.ToSql()
	if err != nil {
		return zero, errors.Wrap(err, op)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return zero, r.classify(op, query, err)
	}
	defer rows.Close()

	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errs.ErrNotFound
		}
		return zero, r.classify(op, query, err)
	}
	return rec, nil
}

func collectAll[T any](ctx context.Context, r *repository, op string, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	r.log.Debug(op, zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.classify(op, query, err)
	}
	defer rows.Close()

	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return recs, nil
}

func (r *repository) classify(op, query string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrapf(errs.ErrConflict, "%s: %s", op, pgErr.Detail)
		case pgerrcode.InvalidTextRepresentation, pgerrcode.NotNullViolation:
			return errors.Wrapf(errs.ErrInvalid, "%s: %s", op, pgErr.Message)
		}
	}
	r.log.Error(op, zap.String("q", query), zap.Error(err))
	return errors.Wrap(err, op)
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	return collectAll[model.Book](ctx, r, "ListBooks",
		qb.Select(bookColumns...).From(booksTableName).OrderBy("id"))
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	return collectOne[model.Book](ctx, r, "GetBook",
		qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id}).Limit(1))
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	return collectOne[model.Book](ctx, r, "CreateBook",
		qb.Insert(booksTableName).
			Columns(bookColumns[1:]...).
			Values(book.Title, book.Author, book.Category, book.Price, book.Quantity, book.Image, book.Description).
			Suffix(returning(bookColumns)))
}

func (r *repository) UpdateBook(ctx context.Context, id int, book model.Book) (model.Book, error) {
	return collectOne[model.Book](ctx, r, "UpdateBook",
		qb.Update(booksTableName).
			SetMap(map[string]any{
				"title":       book.Title,
				"author":      book.Author,
				"category":    book.Category,
				"price":       book.Price,
				"quantity":    book.Quantity,
				"image":       book.Image,
				"description": book.Description,
			}).
			Where(sq.Eq{"id": id}).
			Suffix(returning(bookColumns)))
}

func (r *repository) DeleteBook(ctx context.Context, id int) error {
	q := `delete from books where id = @id`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return r.classify("DeleteBook", q, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListCategories(ctx context.Context) ([]model.Category, error) {
	return collectAll[model.Category](ctx, r, "ListCategories",
		qb.Select("id", "name").From(categoriesTableName).OrderBy("id"))
}

func (r *repository) ListOrders(ctx context.Context) ([]model.Order, error) {
	return collectAll[model.Order](ctx, r, "ListOrders",
		qb.Select(orderColumns...).From(ordersTableName).OrderBy("id"))
}

func (r *repository) GetOrder(ctx context.Context, id int) (model.Order, error) {
	return collectOne[model.Order](ctx, r, "GetOrder",
		qb.Select(orderColumns...).From(ordersTableName).Where(sq.Eq{"id": id}).Limit(1))
}

func (r *repository) CreateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	return collectOne[model.Order](ctx, r, "CreateOrder",
		qb.Insert(ordersTableName).
			Columns(orderColumns[1:]...).
			Values(order.CustomerName, order.CustomerPhone, order.Items, order.TotalAmount, order.Date, order.Status).
			Suffix(returning(orderColumns)))
}

func (r *repository) UpdateOrder(ctx context.Context, id int, order model.Order) (model.Order, error) {
	return collectOne[model.Order](ctx, r, "UpdateOrder",
		qb.Update(ordersTableName).
			SetMap(map[string]any{
				"customer_name":  order.CustomerName,
				"customer_phone": order.CustomerPhone,
				"items":          order.Items,
				"total_amount":   order.TotalAmount,
				"date":           order.Date,
				"status":         order.Status,
			}).
			Where(sq.Eq{"id": id}).
			Suffix(returning(orderColumns)))
}
