package errs_test

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/Astemirdum/bookstore-admin/admin/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestGatewayError(t *testing.T) {
	t.Parallel()

	netErr := errs.NewNetworkError("fetch", "books", io.ErrUnexpectedEOF)
	require.True(t, errs.IsNetwork(netErr))
	require.False(t, errs.IsHTTPStatus(netErr))
	require.ErrorIs(t, netErr, io.ErrUnexpectedEOF)
	require.Equal(t, "fetch books: network error: unexpected EOF", netErr.Error())

	statusErr := errs.NewHTTPStatusError("delete", "books/3", http.StatusNotFound, "{}\n")
	require.True(t, errs.IsHTTPStatus(statusErr))
	require.False(t, errs.IsNetwork(statusErr))
	require.Equal(t, "delete books/3: unexpected http status (status 404): {}", statusErr.Error())

	var ge *errs.GatewayError
	require.True(t, errors.As(error(statusErr), &ge))
	require.Equal(t, http.StatusNotFound, ge.StatusCode)
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := &errs.ValidationError{Fields: map[string]string{"price": "must be a non-negative number", "author": "is required"}}
	require.Equal(t, "validation failed: author: is required; price: must be a non-negative number", err.Error())
	require.True(t, errs.IsValidation(err))
	require.False(t, errs.IsValidation(errs.ErrNotFound))
}

func TestStockUpdateError(t *testing.T) {
	t.Parallel()
	cause := errs.NewNetworkError("update", "books/1", io.EOF)
	err := error(&errs.StockUpdateError{OrderID: 9, Err: cause})
	require.True(t, errs.IsNetwork(err))
	require.Equal(t, "order 9 created, stock update incomplete: update books/1: network error: EOF", err.Error())
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()
	ve := &errs.ValidationError{Fields: map[string]string{"quantity": "q", "price": "p"}}
	require.Equal(t, "p", ve.Message())
	require.Empty(t, (&errs.ValidationError{}).Message())
}
