package workflow

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Astemirdum/bookstore-admin/admin/internal/errs"
	"github.com/Astemirdum/bookstore-admin/admin/internal/filter"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/Astemirdum/bookstore-admin/admin/internal/view"
	"github.com/Astemirdum/bookstore-admin/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type OrdersView struct {
	store  RecordStore
	render *view.Renderer
	log    *zap.Logger
	opts   options
	search *searchGate

	mu       sync.RWMutex
	orders   []model.Order
	books    []model.Book
	criteria model.OrderCriteria
}

func NewOrdersView(store RecordStore, render *view.Renderer, log *zap.Logger, opts ...Option) *OrdersView {
	o := newOptions(opts)
	return &OrdersView{
		store:  store,
		render: render,
		log:    log.Named("orders"),
		opts:   o,
		search: newSearchGate(o.debounce),
	}
}

// Load fetches orders and books together and keeps orders newest first.
// On failure the previous collections stay in place.
func (v *OrdersView) Load(ctx context.Context) error {
	var (
		orders []model.Order
		books  []model.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = v.store.Orders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = v.store.Books(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		v.log.Error("load", zap.Error(err))
		return err
	}
	filter.SortOrdersByDateDesc(orders)

	v.mu.Lock()
	v.orders, v.books = orders, books
	v.mu.Unlock()
	return nil
}

func (v *OrdersView) Criteria() model.OrderCriteria {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.criteria
}

// SetStatus ignores values outside the known statuses.
func (v *OrdersView) SetStatus(status model.Status) {
	if !status.Valid() {
		status = ""
	}
	v.mu.Lock()
	v.criteria.Status = status
	v.mu.Unlock()
}

func (v *OrdersView) SetDateRange(r model.DateRange) {
	switch r {
	case model.RangeToday, model.RangeWeek, model.RangeMonth:
	default:
		r = ""
	}
	v.mu.Lock()
	v.criteria.DateRange = r
	v.mu.Unlock()
}

func (v *OrdersView) Search(ctx context.Context, term string) (view.DisplayList[view.OrderRow], error) {
	applied := v.search.schedule(func() {
		v.mu.Lock()
		v.criteria.Search = term
		v.mu.Unlock()
	})
	select {
	case <-applied:
	case <-ctx.Done():
		return view.DisplayList[view.OrderRow]{}, ctx.Err()
	}
	return v.Display(), nil
}

func (v *OrdersView) ClearFilters() model.Notification {
	v.search.cancel()
	v.mu.Lock()
	v.criteria = model.OrderCriteria{}
	v.mu.Unlock()
	return model.Notification{Type: model.NotifyInfo, Message: "Đã xóa bộ lọc"}
}

func (v *OrdersView) Filtered() []model.Order {
	now := v.opts.now()
	v.mu.RLock()
	defer v.mu.RUnlock()
	return filter.Orders(v.orders, v.criteria, now)
}

func (v *OrdersView) Display() view.DisplayList[view.OrderRow] {
	return v.render.RenderOrders(v.Filtered())
}

func (v *OrdersView) Order(id int) (model.Order, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, o := range v.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, errors.Wrapf(errs.ErrNotFound, "order %d", id)
}

func (v *OrdersView) Details(id int) (view.OrderDetails, error) {
	o, err := v.Order(id)
	if err != nil {
		return view.OrderDetails{}, err
	}
	return v.render.RenderOrderDetails(o), nil
}

// OpenStatus prefills the status dialog with the order's current status.
func (v *OrdersView) OpenStatus(id int) (view.StatusForm, error) {
	o, err := v.Order(id)
	if err != nil {
		return view.StatusForm{}, err
	}
	return v.render.RenderStatusForm(o), nil
}

// AvailableBooks lists the loaded books that can still be ordered.
func (v *OrdersView) AvailableBooks() []model.Book {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]model.Book, 0, len(v.books))
	for _, b := range v.books {
		if b.Quantity > 0 {
			out = append(out, b)
		}
	}
	return out
}

func (v *OrdersView) BookOptions() []view.BookOption {
	return v.render.RenderBookOptions(v.AvailableBooks())
}

// CreateOrder stores a pending order priced from the loaded books, then
// decrements stock one line at a time from the loaded quantities. The
// decrements are independent updates: concurrent orders can oversell.
// Decrement and reload failures come back as a StockUpdateError next to
// the created order.
func (v *OrdersView) CreateOrder(ctx context.Context, in model.OrderInput) (model.Order, model.Notification, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	if err := checkForm(in); err != nil {
		return model.Order{}, model.Notification{}, err
	}

	v.mu.RLock()
	snapshot := make([]model.Book, len(in.Items))
	var lineErr *errs.ValidationError
	for i, line := range in.Items {
		b, ok := findBook(v.books, line.BookID)
		field := fmt.Sprintf("Items[%d]", i)
		switch {
		case !ok:
			lineErr = addField(lineErr, field+".BookID", msgUnknownBook)
		case line.Quantity > b.Quantity:
			lineErr = addField(lineErr, field+".Quantity", fmt.Sprintf(msgStockTemplate, b.Quantity))
		}
		snapshot[i] = b
	}
	v.mu.RUnlock()
	if lineErr != nil {
		return model.Order{}, model.Notification{}, lineErr
	}

	items := make([]model.OrderLineItem, len(in.Items))
	for i, line := range in.Items {
		items[i] = model.OrderLineItem{
			BookID:   line.BookID,
			Title:    snapshot[i].Title,
			Price:    snapshot[i].Price,
			Quantity: line.Quantity,
		}
	}
	order := model.Order{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Items:         items,
		TotalAmount:   model.ItemsTotal(items),
		Date:          v.opts.now(),
		Status:        model.StatusPending,
	}

	created, err := v.store.CreateOrder(ctx, order)
	if err != nil {
		v.log.Error("create order", zap.String("customer", order.CustomerName), zap.Error(err))
		return model.Order{}, model.Notification{}, err
	}
	v.publish(kafka.NewEvent(kafka.EventOrderCreated, model.OrdersCollection, created.ID, created))

	var stockErr error
	for i, line := range items {
		book := snapshot[i]
		book.Quantity = snapshot[i].Quantity - line.Quantity
		if _, err := v.store.UpdateBook(ctx, book.ID, book); err != nil {
			v.log.Error("decrement stock", zap.Int("book", book.ID), zap.Int("order", created.ID), zap.Error(err))
			stockErr = multierr.Append(stockErr, err)
			continue
		}
		v.publish(kafka.NewEvent(kafka.EventStockDecremented, model.BooksCollection, book.ID, book))
	}

	stockErr = multierr.Append(stockErr, v.Load(ctx))
	if stockErr != nil {
		return created, model.Notification{
			Type:    model.NotifyWarning,
			Message: "Tạo đơn hàng thành công nhưng cập nhật tồn kho chưa hoàn tất",
		}, &errs.StockUpdateError{OrderID: created.ID, Err: stockErr}
	}
	return created, model.Notification{Type: model.NotifySuccess, Message: "Tạo đơn hàng thành công!"}, nil
}

// UpdateStatus replaces the order status. Any status may follow any other.
func (v *OrdersView) UpdateStatus(ctx context.Context, id int, status model.Status) (model.Notification, error) {
	if !status.Valid() {
		return model.Notification{}, errs.NewValidationError("Status", msgStatus)
	}
	order, err := v.Order(id)
	if err != nil {
		return model.Notification{}, err
	}
	previous := order.Status
	order.Status = status
	if _, err := v.store.UpdateOrder(ctx, id, order); err != nil {
		v.log.Error("update status", zap.Int("id", id), zap.Error(err))
		return model.Notification{}, err
	}
	v.publish(kafka.NewEvent(kafka.EventOrderStatusChanged, model.OrdersCollection, id, map[string]model.Status{
		"from": previous,
		"to":   status,
	}))

	if err := v.Load(ctx); err != nil {
		return model.Notification{}, errors.Wrap(err, "reload orders")
	}
	return model.Notification{Type: model.NotifySuccess, Message: "Cập nhật trạng thái thành công!"}, nil
}

func (v *OrdersView) publish(ev kafka.Event) {
	if err := v.opts.events.Publish(ev); err != nil {
		v.log.Warn("publish event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}

func addField(ve *errs.ValidationError, field, msg string) *errs.ValidationError {
	if ve == nil {
		ve = &errs.ValidationError{Fields: make(map[string]string)}
	}
	ve.Fields[field] = msg
	return ve
}
