package handler

import (
	"net/http"

	_ "github.com/Astemirdum/bookstore-admin/admin/docs"
	"github.com/Astemirdum/bookstore-admin/admin/web"
	md "github.com/Astemirdum/bookstore-admin/pkg/middleware"
	"github.com/Astemirdum/bookstore-admin/pkg/validate"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	dispatcher Dispatcher
	books      BooksPage
	orders     OrdersPage
	dashboard  DashboardPage
	log        *zap.Logger
}

func New(dispatcher Dispatcher, books BooksPage, orders OrdersPage, dash DashboardPage, log *zap.Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		books:      books,
		orders:     orders,
		dashboard:  dash,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() (*echo.Echo, error) {
	e := echo.New()
	const (
		baseRPS = 20
		apiRPS  = 100
	)
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = validate.NewCustomValidator()

	e.Use(md.Recover())
	e.Use(md.CORS())

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	base.StaticFS("/static", web.Static())

	pages := e.Group("", md.RequestLogger(h.log), md.NewRateLimiter(baseRPS))
	pages.GET("/", h.DashboardPage)
	pages.GET("/books", h.BooksPage)
	pages.GET("/orders", h.OrdersPage)

	api := e.Group("/api/v1",
		md.RequestLogger(h.log),
		md.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/books", h.GetBooks)
	api.GET("/books/export", h.ExportBooks)
	api.GET("/categories", h.GetCategories)
	api.GET("/orders", h.GetOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.GET("/dashboard", h.GetDashboard)
	api.POST("/actions/:action", h.Action)

	return e, nil
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
