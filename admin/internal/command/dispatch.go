// Package command maps the console's UI actions to view model calls.
package command

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/Astemirdum/bookstore-admin/admin/internal/errs"
	"github.com/pkg/errors"
)

type Action string

var ErrUnknownAction = errors.New("unknown action")

// Handler runs one action with its raw JSON payload.
type Handler func(ctx context.Context, payload json.RawMessage) (any, error)

type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Action]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Action]Handler)}
}

// Register binds h to a, replacing any earlier binding.
func (d *Dispatcher) Register(a Action, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[a] = h
}

func (d *Dispatcher) Dispatch(ctx context.Context, a Action, payload json.RawMessage) (any, error) {
	d.mu.RLock()
	h, ok := d.handlers[a]
	d.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAction, "%q", a)
	}
	return h(ctx, payload)
}

func (d *Dispatcher) Actions() []Action {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Action, 0, len(d.handlers))
	for a := range d.handlers {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Bind decodes the payload into P before calling fn. An empty payload
// leaves P at its zero value.
func Bind[P any](fn func(ctx context.Context, p P) (any, error)) Handler {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		var p P
		if len(bytes.TrimSpace(payload)) > 0 && !bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
			if err := json.Unmarshal(payload, &p); err != nil {
				return nil, errs.NewValidationError("payload", "invalid payload: "+err.Error())
			}
		}
		return fn(ctx, p)
	}
}
