package gateway_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Astemirdum/bookstore-admin/admin/config"
	"github.com/Astemirdum/bookstore-admin/admin/internal/errs"
	"github.com/Astemirdum/bookstore-admin/admin/internal/gateway"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, h http.HandlerFunc) *gateway.Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	host, port, err := net.SplitHostPort(strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	return gateway.NewService(zap.NewNop(), config.RecordStoreHTTPServer{Host: host, Port: port})
}

func TestService_Books(t *testing.T) {
	t.Parallel()
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/books", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Dế Mèn phiêu lưu ký","author":"Tô Hoài","category":"Văn học","price":50000,"quantity":3}]`))
	})

	books, err := svc.Books(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Tô Hoài", books[0].Author)
	require.True(t, decimal.NewFromInt(50000).Equal(books[0].Price))
}

func TestService_CreateBook(t *testing.T) {
	t.Parallel()
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/books", r.URL.Path)
		var b map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		require.NotContains(t, b, "id")
		require.EqualValues(t, 120000, b["price"])
		b["id"] = 12
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(b)
	})

	created, err := svc.CreateBook(context.Background(), model.Book{
		Title: "Số đỏ", Author: "Vũ Trọng Phụng", Category: "Văn học",
		Price: decimal.NewFromInt(120000), Quantity: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 12, created.ID)
}

func TestService_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	var (
		mu    sync.Mutex
		calls []string
	)
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusOK)
			return
		}
		_, _ = w.Write([]byte(`{"id":5,"customerName":"An","status":"completed"}`))
	})

	order, err := svc.UpdateOrder(context.Background(), 5, model.Order{ID: 5, Status: model.StatusCompleted})
	require.NoError(t, err)
	require.Equal(t, model.StatusCompleted, order.Status)
	require.NoError(t, svc.DeleteBook(context.Background(), 9))
	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"PUT /orders/5", "DELETE /books/9"}, calls)
}

func TestService_HTTPStatusError(t *testing.T) {
	t.Parallel()
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	})

	err := svc.DeleteBook(context.Background(), 42)
	require.Error(t, err)
	require.True(t, errs.IsHTTPStatus(err))

	var ge *errs.GatewayError
	require.ErrorAs(t, err, &ge)
	require.Equal(t, "delete", ge.Op)
	require.Equal(t, "books/42", ge.Resource)
	require.Equal(t, http.StatusNotFound, ge.StatusCode)
}

func TestService_NetworkError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	host, port, err := net.SplitHostPort(strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	srv.Close()

	svc := gateway.NewService(zap.NewNop(), config.RecordStoreHTTPServer{Host: host, Port: port})
	_, err = svc.Orders(context.Background())
	require.Error(t, err)
	require.True(t, errs.IsNetwork(err))
	require.False(t, errs.IsHTTPStatus(err))
}

func TestService_Breaker(t *testing.T) {
	t.Parallel()
	// default breaker: 20 failures out of a 100-call window open it
	const calls = 30
	tests := []struct {
		name        string
		status      int
		wantHits    int64
		wantNetwork int
	}{
		{name: "5xx opens the breaker", status: http.StatusInternalServerError, wantHits: 20, wantNetwork: 10},
		{name: "4xx does not count", status: http.StatusNotFound, wantHits: calls, wantNetwork: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var hits atomic.Int64
			svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				http.Error(w, "boom", tt.status)
			})

			network := 0
			for i := 0; i < calls; i++ {
				err := svc.DeleteBook(context.Background(), 1)
				require.Error(t, err)
				if errs.IsNetwork(err) {
					require.False(t, errs.IsHTTPStatus(err))
					network++
					continue
				}
				require.True(t, errs.IsHTTPStatus(err))
			}
			require.Equal(t, tt.wantHits, hits.Load())
			require.Equal(t, tt.wantNetwork, network)
		})
	}
}

func TestService_CancelledCallsKeepBreakerClosed(t *testing.T) {
	t.Parallel()
	var hits atomic.Int64
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 30; i++ {
		_, err := svc.Books(ctx)
		require.Error(t, err)
	}

	books, err := svc.Books(context.Background())
	require.NoError(t, err)
	require.Empty(t, books)
	require.Equal(t, int64(1), hits.Load())
}
