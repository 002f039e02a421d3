package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-admin/recordstore/internal/errs"
	"github.com/Astemirdum/bookstore-admin/recordstore/internal/handler"
	"github.com/Astemirdum/bookstore-admin/recordstore/internal/model"

	service_mocks "github.com/Astemirdum/bookstore-admin/recordstore/internal/handler/mocks"
)

func TestHandler_Books(t *testing.T) {
	t.Parallel()
	type input struct {
		method string
		target string
		body   string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRecordService)

	book := model.Book{
		ID:       1,
		Title:    "Dế Mèn phiêu lưu ký",
		Author:   "Tô Hoài",
		Category: "Thiếu nhi",
		Price:    decimal.NewFromInt(50000),
		Quantity: 20,
		Image:    model.PlaceholderImage,
	}
	const bookJSON = `{"id":1,"title":"Dế Mèn phiêu lưu ký","author":"Tô Hoài","category":"Thiếu nhi","price":50000,"quantity":20,"image":"images/placeholder-book.jpg","description":""}`

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok. list",
			mockBehavior: func(r *service_mocks.MockRecordService) {
				r.EXPECT().ListBooks(context.Background()).Return([]model.Book{book}, nil)
			},
			input:    input{method: http.MethodGet, target: "/books"},
			response: response{expectedCode: http.StatusOK, expectedBody: "[" + bookJSON + "]"},
		},
		{
			name: "ok. empty list",
			mockBehavior: func(r *service_mocks.MockRecordService) {
				r.EXPECT().ListBooks(context.Background()).Return(nil, nil)
			},
			input:    input{method: http.MethodGet, target: "/books"},
			response: response{expectedCode: http.StatusOK, expectedBody: "[]"},
		},
		{
			name: "ok. create",
			mockBehavior: func(r *service_mocks.MockRecordService) {
				in := book
				in.ID = 0
				in.Image = ""
				r.EXPECT().CreateBook(context.Background(), in).Return(book, nil)
			},
			input: input{
				method: http.MethodPost,
				target: "/books",
				body:   `{"title":"Dế Mèn phiêu lưu ký","author":"Tô Hoài","category":"Thiếu nhi","price":50000,"quantity":20}`,
			},
			response: response{expectedCode: http.StatusCreated, expectedBody: bookJSON},
		},
		{
			name: "ok. stored without checks",
			mockBehavior: func(r *service_mocks.MockRecordService) {
				r.EXPECT().CreateBook(context.Background(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Book) (model.Book, error) {
						b.ID, b.Image = 2, model.PlaceholderImage
						return b, nil
					})
			},
			input: input{
				method: http.MethodPost,
				target: "/books",
				body:   `{"author":"Tô Hoài","price":-5,"quantity":-1}`,
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":2,"title":"","author":"Tô Hoài","category":"","price":-5,"quantity":-1,"image":"images/placeholder-book.jpg","description":""}`,
			},
		},
		{
			name:         "err. malformed body",
			mockBehavior: func(r *service_mocks.MockRecordService) {},
			input:        input{method: http.MethodPost, target: "/books", body: `{"title":`},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "err. conflict",
			mockBehavior: func(r *service_mocks.MockRecordService) {
				r.EXPECT().UpdateBook(context.Background(), 1, gomock.Any()).
					Return(model.Book{}, errors.Wrap(errs.ErrConflict, "UpdateBook"))
			},
			input: input{
				method: http.MethodPut,
				target: "/books/1",
				body:   `{"title":"A","author":"B","category":"Văn học","price":1,"quantity":1}`,
			},
			response: response{expectedCode: http.StatusConflict, expectedBody: `{"message":"UpdateBook: conflict"}`},
		},
		{
			name: "err. delete missing",
			mockBehavior: func(r *service_mocks.MockRecordService) {
				r.EXPECT().DeleteBook(context.Background(), 42).Return(errs.ErrNotFound)
			},
			input:    input{method: http.MethodDelete, target: "/books/42"},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"not found"}`},
		},
		{
			name: "ok. delete",
			mockBehavior: func(r *service_mocks.MockRecordService) {
				r.EXPECT().DeleteBook(context.Background(), 1).Return(nil)
			},
			input:    input{method: http.MethodDelete, target: "/books/1"},
			response: response{expectedCode: http.StatusOK, expectedBody: `{}`},
		},
		{
			name:         "err. bad id",
			mockBehavior: func(r *service_mocks.MockRecordService) {},
			input:        input{method: http.MethodGet, target: "/books/abc"},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"invalid id"}`},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockRecordService) {
				r.EXPECT().ListCategories(context.Background()).Return(nil, errors.New("db internal"))
			},
			input:    input{method: http.MethodGet, target: "/categories"},
			response: response{expectedCode: http.StatusInternalServerError, expectedBody: `{"message":"db internal"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRecordService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))
			e := h.NewRouter()

			r := httptest.NewRequest(tt.input.method, tt.input.target, strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Orders(t *testing.T) {
	t.Parallel()
	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	order := model.Order{
		ID:            5,
		CustomerName:  "Nguyễn Văn A",
		CustomerPhone: "0901234567",
		Items:         []model.OrderLineItem{{BookID: 1, Title: "Dế Mèn", Price: decimal.NewFromInt(50000), Quantity: 2}},
		TotalAmount:   decimal.NewFromInt(100000),
		Date:          date,
		Status:        model.StatusPending,
	}
	const orderJSON = `{"id":5,"customerName":"Nguyễn Văn A","customerPhone":"0901234567","items":[{"bookId":1,"title":"Dế Mèn","price":50000,"quantity":2}],"totalAmount":100000,"date":"2024-03-15T10:00:00Z","status":"pending"}`

	c := gomock.NewController(t)
	svc := service_mocks.NewMockRecordService(c)
	e := handler.New(svc, zap.NewNop()).NewRouter()

	svc.EXPECT().CreateOrder(context.Background(), gomock.Any()).Return(order, nil)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(
		`{"customerName":"Nguyễn Văn A","customerPhone":"0901234567","items":[{"bookId":1,"title":"Dế Mèn","price":50000,"quantity":2}],"totalAmount":100000}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, orderJSON, strings.Trim(w.Body.String(), "\n"))

	// the store keeps whatever the client sends, bad phone and empty items included
	svc.EXPECT().CreateOrder(context.Background(), model.Order{CustomerName: "B", CustomerPhone: "12345", Items: []model.OrderLineItem{}}).
		Return(model.Order{ID: 6}, nil)
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(
		`{"customerName":"B","customerPhone":"12345","items":[]}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code)

	completed := order
	completed.Status = model.StatusCompleted
	svc.EXPECT().UpdateOrder(context.Background(), 5, completed).Return(completed, nil)
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPut, "/orders/5", strings.NewReader(strings.Replace(orderJSON, "pending", "completed", 1)))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"completed"`)

	svc.EXPECT().GetOrder(context.Background(), 9).Return(model.Order{}, errs.ErrNotFound)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/9", http.NoBody))
	require.Equal(t, http.StatusNotFound, w.Code)
}
