// Package workflow holds the per-page view models and the mutations that
// run against the record store.
package workflow

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/Astemirdum/bookstore-admin/admin/internal/errs"
	"github.com/Astemirdum/bookstore-admin/admin/internal/filter"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/Astemirdum/bookstore-admin/admin/internal/view"
	"github.com/Astemirdum/bookstore-admin/pkg/kafka"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const exportDateLayout = "2006-01-02"

// BooksView is the state behind the books page: the loaded collections,
// the active criteria and the book waiting for delete confirmation.
type BooksView struct {
	store  RecordStore
	render *view.Renderer
	log    *zap.Logger
	opts   options
	search *searchGate

	mu            sync.RWMutex
	books         []model.Book
	categories    []model.Category
	criteria      model.BookCriteria
	pendingDelete *model.DeleteConfirmation
}

func NewBooksView(store RecordStore, render *view.Renderer, log *zap.Logger, opts ...Option) *BooksView {
	o := newOptions(opts)
	return &BooksView{
		store:  store,
		render: render,
		log:    log.Named("books"),
		opts:   o,
		search: newSearchGate(o.debounce),
	}
}

// Load fetches books and categories together. On failure the previous
// collections stay in place.
func (v *BooksView) Load(ctx context.Context) error {
	var (
		books      []model.Book
		categories []model.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = v.store.Books(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = v.store.Categories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		v.log.Error("load", zap.Error(err))
		return err
	}

	v.mu.Lock()
	v.books, v.categories = books, categories
	v.mu.Unlock()
	return nil
}

func (v *BooksView) Criteria() model.BookCriteria {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.criteria
}

func (v *BooksView) SetCategory(category string) {
	v.mu.Lock()
	v.criteria.Category = category
	v.mu.Unlock()
}

// SetStockLevel ignores values outside the known levels.
func (v *BooksView) SetStockLevel(level model.StockLevel) {
	if !level.Valid() {
		level = ""
	}
	v.mu.Lock()
	v.criteria.StockLevel = level
	v.mu.Unlock()
}

// Search applies the term once typing settles and returns the display at
// that point. A caller whose term was replaced gets the current display.
func (v *BooksView) Search(ctx context.Context, term string) (view.DisplayList[view.BookCard], error) {
	applied := v.search.schedule(func() {
		v.mu.Lock()
		v.criteria.Search = term
		v.mu.Unlock()
	})
	select {
	case <-applied:
	case <-ctx.Done():
		return view.DisplayList[view.BookCard]{}, ctx.Err()
	}
	return v.Display(), nil
}

func (v *BooksView) ClearFilters() model.Notification {
	v.search.cancel()
	v.mu.Lock()
	v.criteria = model.BookCriteria{}
	v.mu.Unlock()
	return model.Notification{Type: model.NotifyInfo, Message: "Đã xóa bộ lọc"}
}

func (v *BooksView) Filtered() []model.Book {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return filter.Books(v.books, v.criteria)
}

func (v *BooksView) Display() view.DisplayList[view.BookCard] {
	return v.render.RenderBooks(v.Filtered())
}

func (v *BooksView) Categories() []model.Category {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]model.Category, len(v.categories))
	copy(out, v.categories)
	return out
}

// OpenEdit returns the book to prefill the edit form with.
func (v *BooksView) OpenEdit(id int) (model.Book, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	b, ok := findBook(v.books, id)
	if !ok {
		return model.Book{}, errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	return b, nil
}

// SaveBook creates a book when editID is zero and replaces book editID
// otherwise, then reloads the page state.
func (v *BooksView) SaveBook(ctx context.Context, editID int, in model.BookInput) (model.Notification, error) {
	book, err := bookFromInput(in)
	if err != nil {
		return model.Notification{}, err
	}

	var (
		saved   model.Book
		evType  kafka.EventType
		message string
	)
	if editID == 0 {
		saved, err = v.store.CreateBook(ctx, book)
		evType, message = kafka.EventBookCreated, "Thêm sách mới thành công!"
	} else {
		saved, err = v.store.UpdateBook(ctx, editID, book)
		evType, message = kafka.EventBookUpdated, "Cập nhật sách thành công!"
	}
	if err != nil {
		v.log.Error("save book", zap.Int("id", editID), zap.Error(err))
		return model.Notification{}, err
	}
	if saved.ID == 0 {
		saved.ID = editID
	}
	v.publish(kafka.NewEvent(evType, model.BooksCollection, saved.ID, saved))

	if err := v.Load(ctx); err != nil {
		return model.Notification{}, errors.Wrap(err, "reload books")
	}
	return model.Notification{Type: model.NotifySuccess, Message: message}, nil
}

// RequestDelete remembers the book until the deletion is confirmed.
func (v *BooksView) RequestDelete(id int) (model.DeleteConfirmation, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	b, ok := findBook(v.books, id)
	if !ok {
		return model.DeleteConfirmation{}, errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	v.pendingDelete = &model.DeleteConfirmation{ID: b.ID, Title: b.Title}
	return *v.pendingDelete, nil
}

// ConfirmDelete deletes the pending book. A failed call keeps it pending.
func (v *BooksView) ConfirmDelete(ctx context.Context) (model.Notification, error) {
	v.mu.RLock()
	pending := v.pendingDelete
	v.mu.RUnlock()
	if pending == nil {
		return model.Notification{}, errs.ErrNoPendingDelete
	}

	if err := v.store.DeleteBook(ctx, pending.ID); err != nil {
		v.log.Error("delete book", zap.Int("id", pending.ID), zap.Error(err))
		return model.Notification{}, err
	}
	v.mu.Lock()
	if v.pendingDelete != nil && v.pendingDelete.ID == pending.ID {
		v.pendingDelete = nil
	}
	v.mu.Unlock()
	v.publish(kafka.NewEvent(kafka.EventBookDeleted, model.BooksCollection, pending.ID, pending))

	if err := v.Load(ctx); err != nil {
		return model.Notification{}, errors.Wrap(err, "reload books")
	}
	return model.Notification{Type: model.NotifySuccess, Message: "Xóa sách thành công!"}, nil
}

// ExportBooks serializes every loaded book, unfiltered, as indented JSON.
func (v *BooksView) ExportBooks() (data []byte, filename string, err error) {
	v.mu.RLock()
	books := v.books
	v.mu.RUnlock()
	if books == nil {
		books = []model.Book{}
	}
	data, err = json.MarshalIndent(books, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return data, "books_" + v.opts.now().UTC().Format(exportDateLayout) + ".json", nil
}

func (v *BooksView) publish(ev kafka.Event) {
	if err := v.opts.events.Publish(ev); err != nil {
		v.log.Warn("publish event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}

func bookFromInput(in model.BookInput) (model.Book, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Category = strings.TrimSpace(in.Category)
	in.Price = strings.TrimSpace(in.Price)
	in.Quantity = strings.TrimSpace(in.Quantity)
	if err := checkForm(in); err != nil {
		return model.Book{}, err
	}

	price, err := decimal.NewFromString(in.Price)
	if err != nil || price.IsNegative() {
		return model.Book{}, errs.NewValidationError("Price", msgPrice)
	}
	qty, err := strconv.Atoi(in.Quantity)
	if err != nil || qty < 0 {
		return model.Book{}, errs.NewValidationError("Quantity", msgQuantity)
	}

	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = model.PlaceholderImage
	}
	return model.Book{
		Title:       in.Title,
		Author:      in.Author,
		Category:    in.Category,
		Price:       price,
		Quantity:    qty,
		Image:       image,
		Description: strings.TrimSpace(in.Description),
	}, nil
}

func findBook(books []model.Book, id int) (model.Book, bool) {
	for _, b := range books {
		if b.ID == id {
			return b, true
		}
	}
	return model.Book{}, false
}
