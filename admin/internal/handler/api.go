package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Astemirdum/bookstore-admin/admin/internal/command"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetBooks godoc
// @Summary      Current books display
// @Tags         books
// @Produce      json
// @Success      200  {object}  view.DisplayList[view.BookCard]
// @Router       /books [get]
func (h *Handler) GetBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.books.Display())
}

// ExportBooks godoc
// @Summary      Download every loaded book as JSON
// @Tags         books
// @Produce      json
// @Success      200
// @Router       /books/export [get]
func (h *Handler) ExportBooks(c echo.Context) error {
	data, filename, err := h.books.ExportBooks()
	if err != nil {
		return toHTTPError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, data)
}

// GetCategories godoc
// @Summary      Loaded categories
// @Tags         books
// @Produce      json
// @Success      200  {array}  model.Category
// @Router       /categories [get]
func (h *Handler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.books.Categories())
}

// GetOrders godoc
// @Summary      Current orders display
// @Tags         orders
// @Produce      json
// @Success      200  {object}  view.DisplayList[view.OrderRow]
// @Router       /orders [get]
func (h *Handler) GetOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.orders.Display())
}

// GetOrder godoc
// @Summary      Order details with line totals
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "order id"
// @Success      200  {object}  view.OrderDetails
// @Failure      404  {object}  echo.HTTPError
// @Router       /orders/{id} [get]
func (h *Handler) GetOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	details, err := h.orders.Details(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, details)
}

// GetDashboard godoc
// @Summary      Last computed dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  view.DashboardPage
// @Router       /dashboard [get]
func (h *Handler) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Page())
}

// Action godoc
// @Summary      Run a console action
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        action  path  string  true  "action name, e.g. books.save"
// @Success      200  {object}  command.Result
// @Failure      400  {object}  echo.HTTPError
// @Failure      404  {object}  echo.HTTPError
// @Failure      409  {object}  echo.HTTPError
// @Failure      502  {object}  echo.HTTPError
// @Router       /actions/{action} [post]
func (h *Handler) Action(c echo.Context) error {
	action := command.Action(c.Param("action"))
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.dispatcher.Dispatch(c.Request().Context(), action, json.RawMessage(payload))
	if err != nil {
		h.log.Warn("action failed", zap.String("action", string(action)), zap.Error(err))
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}
