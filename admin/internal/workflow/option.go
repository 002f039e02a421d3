package workflow

import (
	"time"

	"github.com/Astemirdum/bookstore-admin/pkg/kafka"
)

const DefaultSearchDebounce = 300 * time.Millisecond

type options struct {
	now      func() time.Time
	debounce time.Duration
	events   EventPublisher
}

type Option func(*options)

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithSearchDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

func WithEvents(p EventPublisher) Option {
	return func(o *options) {
		o.events = p
	}
}

func newOptions(opts []Option) options {
	o := options{
		now:      time.Now,
		debounce: DefaultSearchDebounce,
		events:   kafka.NewPublisher(nil, ""),
	}
	for _, op := range opts {
		op(&o)
	}
	return o
}
