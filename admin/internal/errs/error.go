package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrNoPendingDelete = errors.New("no book is waiting for delete confirmation")

	// ErrNetwork marks transport level failures (dial, DNS, reset, open breaker).
	ErrNetwork = errors.New("network error")
	// ErrHTTPStatus marks non-2xx answers of the record store.
	ErrHTTPStatus = errors.New("unexpected http status")
)

// GatewayError is the single error shape of record store calls.
type GatewayError struct {
	Op         string
	Resource   string
	StatusCode int
	Kind       error
	Cause      error
}

func (e *GatewayError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %v", e.Op, e.Resource, e.Kind)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *GatewayError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func NewNetworkError(op, resource string, cause error) *GatewayError {
	return &GatewayError{Op: op, Resource: resource, Kind: ErrNetwork, Cause: cause}
}

func NewHTTPStatusError(op, resource string, status int, body string) *GatewayError {
	var cause error
	if body = strings.TrimSpace(body); body != "" {
		cause = errors.New(body)
	}
	return &GatewayError{Op: op, Resource: resource, StatusCode: status, Kind: ErrHTTPStatus, Cause: cause}
}

func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

func IsHTTPStatus(err error) bool {
	return errors.Is(err, ErrHTTPStatus)
}

// ValidationError blocks a submission before any network call.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StockUpdateError reports an order that was stored while some of its
// stock decrements (or the reload after them) failed.
type StockUpdateError struct {
	OrderID int
	Err     error
}

func (e *StockUpdateError) Error() string {
	return fmt.Sprintf("order %d created, stock update incomplete: %v", e.OrderID, e.Err)
}

func (e *StockUpdateError) Unwrap() error {
	return e.Err
}

// Message returns the first field message in field order.
func (e *ValidationError) Message() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return e.Fields[keys[0]]
}
