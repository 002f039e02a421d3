package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	md "github.com/Astemirdum/bookstore-admin/pkg/middleware"
	"github.com/Astemirdum/bookstore-admin/recordstore/internal/errs"
	"github.com/Astemirdum/bookstore-admin/recordstore/internal/model"
)

type Handler struct {
	svc RecordService
	log *zap.Logger
}

func New(svc RecordService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
}

// NewRouter serves the collections at the root, the way the admin gateway addresses them.
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(md.Recover())
	e.Use(md.CORS())

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("",
		md.RequestLogger(h.log),
		md.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books", h.CreateBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.GET("/categories", h.ListCategories)

	api.GET("/orders", h.ListOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.POST("/orders", h.CreateOrder)
	api.PUT("/orders/:id", h.UpdateOrder)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.svc.ListBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, nonNil(books))
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	book, err := h.svc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var book model.Book
	if err := bind(c, &book); err != nil {
		return err
	}
	created, err := h.svc.CreateBook(c.Request().Context(), book)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var book model.Book
	if err := bind(c, &book); err != nil {
		return err
	}
	updated, err := h.svc.UpdateBook(c.Request().Context(), id, book)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, struct{}{})
}

func (h *Handler) ListCategories(c echo.Context) error {
	cats, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, nonNil(cats))
}

func (h *Handler) ListOrders(c echo.Context) error {
	orders, err := h.svc.ListOrders(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, nonNil(orders))
}

func (h *Handler) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	order, err := h.svc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var order model.Order
	if err := bind(c, &order); err != nil {
		return err
	}
	created, err := h.svc.CreateOrder(c.Request().Context(), order)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var order model.Order
	if err := bind(c, &order); err != nil {
		return err
	}
	updated, err := h.svc.UpdateOrder(c.Request().Context(), id, order)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// bind only decodes; records are stored as sent.
func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalid):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.log.Error("record store", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// nonNil keeps empty collections as [] on the wire.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
