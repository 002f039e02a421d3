package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Astemirdum/bookstore-admin/admin/config"
	"github.com/Astemirdum/bookstore-admin/admin/internal/errs"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/Astemirdum/bookstore-admin/pkg/circuit_breaker"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	opFetch  = "fetch"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"

	maxErrBody = 1 << 10
)

// Service talks to the record store. Every call is fire-once: no retry, no cache.
type Service struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	cb      circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.RecordStoreHTTPServer) *Service {
	return &Service{
		log:     log.Named("gateway"),
		client:  &http.Client{Timeout: time.Minute},
		baseURL: fmt.Sprintf("http://%s", net.JoinHostPort(cfg.Host, cfg.Port)),
		cb:      circuit_breaker.New(circuit_breaker.DefaultConfig()),
	}
}

func (s *Service) FetchCollection(ctx context.Context, name string, out any) error {
	return s.do(ctx, opFetch, name, http.MethodGet, nil, out)
}

func (s *Service) CreateRecord(ctx context.Context, name string, payload, out any) error {
	return s.do(ctx, opCreate, name, http.MethodPost, payload, out)
}

func (s *Service) UpdateRecord(ctx context.Context, name string, id int, payload, out any) error {
	return s.do(ctx, opUpdate, recordPath(name, id), http.MethodPut, payload, out)
}

func (s *Service) DeleteRecord(ctx context.Context, name string, id int) error {
	return s.do(ctx, opDelete, recordPath(name, id), http.MethodDelete, nil, nil)
}

func (s *Service) Books(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := s.FetchCollection(ctx, model.BooksCollection, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *Service) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.FetchCollection(ctx, model.CategoriesCollection, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Service) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.FetchCollection(ctx, model.OrdersCollection, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	var created model.Book
	err := s.CreateRecord(ctx, model.BooksCollection, book, &created)
	return created, err
}

func (s *Service) UpdateBook(ctx context.Context, id int, book model.Book) (model.Book, error) {
	var updated model.Book
	err := s.UpdateRecord(ctx, model.BooksCollection, id, book, &updated)
	return updated, err
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	return s.DeleteRecord(ctx, model.BooksCollection, id)
}

func (s *Service) CreateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	var created model.Order
	err := s.CreateRecord(ctx, model.OrdersCollection, order, &created)
	return created, err
}

func (s *Service) UpdateOrder(ctx context.Context, id int, order model.Order) (model.Order, error) {
	var updated model.Order
	err := s.UpdateRecord(ctx, model.OrdersCollection, id, order, &updated)
	return updated, err
}

func recordPath(name string, id int) string {
	return name + "/" + strconv.Itoa(id)
}

func (s *Service) do(ctx context.Context, op, resource, method string, payload, out any) error {
	var (
		callErr error
		status  int
	)
	// only transport failures and 5xx count against the breaker;
	// a call abandoned by its caller says nothing about the store
	cbErr := s.cb.Call(func() error {
		status, callErr = s.roundTrip(ctx, op, resource, method, payload, out)
		if ctx.Err() != nil {
			return nil
		}
		if errs.IsNetwork(callErr) || status >= http.StatusInternalServerError {
			return callErr
		}
		return nil
	})
	if errors.Is(cbErr, circuit_breaker.ErrOpen) {
		callErr = errs.NewNetworkError(op, resource, cbErr)
	}
	if callErr != nil {
		s.log.Error("record store call failed",
			zap.String("op", op),
			zap.String("resource", resource),
			zap.Int("status", status),
			zap.Error(callErr),
		)
	}
	return callErr
}

func (s *Service) roundTrip(ctx context.Context, op, resource, method string, payload, out any) (int, error) {
	var body io.Reader = http.NoBody
	if payload != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(payload); err != nil {
			return 0, errors.Wrapf(err, "%s %s: encode payload", op, resource)
		}
		body = b
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/"+resource, body)
	if err != nil {
		return 0, errors.Wrapf(err, "%s %s: new request", op, resource)
	}
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, errs.NewNetworkError(op, resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody)) //nolint:errcheck
		return resp.StatusCode, errs.NewHTTPStatusError(op, resource, resp.StatusCode, string(msg))
	}
	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, errs.NewNetworkError(op, resource, errors.Wrap(err, "decode response"))
	}
	return resp.StatusCode, nil
}
