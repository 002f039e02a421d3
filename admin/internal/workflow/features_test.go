package workflow_test

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/bookstore-admin/admin/internal/errs"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/Astemirdum/bookstore-admin/admin/internal/view"
	"github.com/Astemirdum/bookstore-admin/admin/internal/workflow"
	"github.com/cucumber/godog"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// memStore is an in-memory record store with json-server semantics.
type memStore struct {
	mu          sync.Mutex
	books       map[int]model.Book
	orders      map[int]model.Order
	nextOrderID int
	creations   int
	failBooks   map[int]bool
}

func newMemStore() *memStore {
	return &memStore{
		books:       make(map[int]model.Book),
		orders:      make(map[int]model.Order),
		nextOrderID: 1,
		failBooks:   make(map[int]bool),
	}
}

func (s *memStore) Books(context.Context) ([]model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Book, 0, len(s.books))
	for id := 1; len(out) < len(s.books); id++ {
		if b, ok := s.books[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memStore) Categories(context.Context) ([]model.Category, error) {
	return []model.Category{{ID: 1, Name: "Văn học"}}, nil
}

func (s *memStore) Orders(context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.orders))
	for id := 1; len(out) < len(s.orders); id++ {
		if o, ok := s.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *memStore) CreateBook(_ context.Context, b model.Book) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = len(s.books) + 1
	s.books[b.ID] = b
	return b, nil
}

func (s *memStore) UpdateBook(_ context.Context, id int, b model.Book) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failBooks[id] {
		return model.Book{}, errs.NewHTTPStatusError("update", "books/"+strconv.Itoa(id), 500, "")
	}
	if _, ok := s.books[id]; !ok {
		return model.Book{}, errs.NewHTTPStatusError("update", "books/"+strconv.Itoa(id), 404, "")
	}
	b.ID = id
	s.books[id] = b
	return b, nil
}

func (s *memStore) DeleteBook(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.books, id)
	return nil
}

func (s *memStore) CreateOrder(_ context.Context, o model.Order) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creations++
	o.ID = s.nextOrderID
	s.nextOrderID++
	s.orders[o.ID] = o
	return o, nil
}

func (s *memStore) UpdateOrder(_ context.Context, id int, o model.Order) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return model.Order{}, errs.NewHTTPStatusError("update", "orders/"+strconv.Itoa(id), 404, "")
	}
	o.ID = id
	s.orders[id] = o
	return o, nil
}

type orderFeature struct {
	store *memStore
	view  *workflow.OrdersView
	last  model.Order
	err   error
}

func (f *orderFeature) reset() {
	f.store = newMemStore()
	f.view = workflow.NewOrdersView(f.store, view.NewRenderer(time.UTC), zap.NewNop(),
		workflow.WithSearchDebounce(time.Millisecond))
	f.last = model.Order{}
	f.err = nil
}

func (f *orderFeature) theRecordStoreHasBooks(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		id, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return err
		}
		price, err := decimal.NewFromString(row.Cells[2].Value)
		if err != nil {
			return err
		}
		qty, err := strconv.Atoi(row.Cells[3].Value)
		if err != nil {
			return err
		}
		f.store.books[id] = model.Book{ID: id, Title: row.Cells[1].Value, Price: price, Quantity: qty}
	}
	return nil
}

func (f *orderFeature) theOrdersViewIsLoaded(ctx context.Context) error {
	return f.view.Load(ctx)
}

func (f *orderFeature) updatesOfBookFail(id int) error {
	f.store.failBooks[id] = true
	return nil
}

func (f *orderFeature) iCreateAnOrder(ctx context.Context, name, phone string, table *godog.Table) error {
	in := model.OrderInput{CustomerName: name, CustomerPhone: phone}
	for _, row := range table.Rows[1:] {
		bookID, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return err
		}
		qty, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}
		in.Items = append(in.Items, model.LineInput{BookID: bookID, Quantity: qty})
	}
	f.last, _, f.err = f.view.CreateOrder(ctx, in)
	return nil
}

func (f *orderFeature) theOrderIsCreatedWithTotalAndStatus(total int64, status string) error {
	if f.err != nil {
		return fmt.Errorf("unexpected error: %w", f.err)
	}
	if !f.last.TotalAmount.Equal(decimal.NewFromInt(total)) {
		return fmt.Errorf("expected total %d, got %s", total, f.last.TotalAmount)
	}
	if string(f.last.Status) != status {
		return fmt.Errorf("expected status %q, got %q", status, f.last.Status)
	}
	return nil
}

func (f *orderFeature) theOrderIsCreatedButTheStockUpdateIsIncomplete() error {
	var su *errs.StockUpdateError
	if !errors.As(f.err, &su) {
		return fmt.Errorf("expected StockUpdateError, got %v", f.err)
	}
	if su.OrderID != f.last.ID || f.last.ID == 0 {
		return fmt.Errorf("expected created order id, got %d (error for %d)", f.last.ID, su.OrderID)
	}
	return nil
}

func (f *orderFeature) theOrderIsRejectedWith(msg string) error {
	var ve *errs.ValidationError
	if !errors.As(f.err, &ve) {
		return fmt.Errorf("expected ValidationError, got %v", f.err)
	}
	for _, m := range ve.Fields {
		if m == msg {
			return nil
		}
	}
	return fmt.Errorf("expected message %q in %v", msg, ve.Fields)
}

func (f *orderFeature) theRecordStoreReceivedOrderCreations(n int) error {
	if f.store.creations != n {
		return fmt.Errorf("expected %d order creations, got %d", n, f.store.creations)
	}
	return nil
}

func (f *orderFeature) bookHasQuantityInTheRecordStore(id, qty int) error {
	if got := f.store.books[id].Quantity; got != qty {
		return fmt.Errorf("expected book %d quantity %d, got %d", id, qty, got)
	}
	return nil
}

func (f *orderFeature) theOrdersViewShowsOrders(n int) error {
	if got := len(f.view.Display().Items); got != n {
		return fmt.Errorf("expected %d orders on display, got %d", n, got)
	}
	return nil
}

func (f *orderFeature) iChangeTheStatusOfTheLastOrderTo(ctx context.Context, status string) error {
	_, err := f.view.UpdateStatus(ctx, f.last.ID, model.Status(status))
	return err
}

func (f *orderFeature) theLastOrderHasStatusInTheRecordStore(status string) error {
	if got := f.store.orders[f.last.ID].Status; string(got) != status {
		return fmt.Errorf("expected status %q, got %q", status, got)
	}
	return nil
}

func InitializeOrderScenario(ctx *godog.ScenarioContext) {
	f := &orderFeature{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		f.reset()
		return ctx, nil
	})

	ctx.Step(`^the record store has books:$`, f.theRecordStoreHasBooks)
	ctx.Step(`^the orders view is loaded$`, f.theOrdersViewIsLoaded)
	ctx.Step(`^updates of book (\d+) fail$`, f.updatesOfBookFail)

	ctx.Step(`^I create an order for "([^"]*)" with phone "([^"]*)" and items:$`, f.iCreateAnOrder)
	ctx.Step(`^I change the status of the last order to "([^"]*)"$`, f.iChangeTheStatusOfTheLastOrderTo)

	ctx.Step(`^the order is created with total (\d+) and status "([^"]*)"$`, f.theOrderIsCreatedWithTotalAndStatus)
	ctx.Step(`^the order is created but the stock update is incomplete$`, f.theOrderIsCreatedButTheStockUpdateIsIncomplete)
	ctx.Step(`^the order is rejected with "([^"]*)"$`, f.theOrderIsRejectedWith)
	ctx.Step(`^the record store received (\d+) order creations$`, f.theRecordStoreReceivedOrderCreations)
	ctx.Step(`^book (\d+) has quantity (\d+) in the record store$`, f.bookHasQuantityInTheRecordStore)
	ctx.Step(`^the orders view shows (\d+) orders?$`, f.theOrdersViewShowsOrders)
	ctx.Step(`^the last order has status "([^"]*)" in the record store$`, f.theLastOrderHasStatusInTheRecordStore)
}

func TestOrderFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeOrderScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
