package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed   State = 1
	Open     State = 2
	HalfOpen State = 3
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpen = errors.New("circuit breaker is open")

type Config struct {
	// Window is the number of most recent calls tracked.
	Window int
	// Cooldown is how long the breaker stays open before letting a probe through.
	Cooldown time.Duration
	// FailureRatio opens the breaker once failed/Window reaches it.
	FailureRatio float64
	// Probes is the number of consecutive half-open successes needed to close.
	Probes int
}

func DefaultConfig() Config {
	return Config{
		Window:       100,
		Cooldown:     time.Second,
		FailureRatio: 0.2,
		Probes:       2,
	}
}

type CircuitBreaker interface {
	Call(fn func() error) error
	State() State
}

type circuitBreaker struct {
	mu  sync.Mutex
	cfg Config

	state    State
	openedAt time.Time
	// ring of call outcomes, true = failed
	outcomes []bool
	pos      int
	probesOK int
}

func New(cfg Config) CircuitBreaker {
	if cfg.Window <= 0 {
		cfg.Window = 1
	}
	return &circuitBreaker{
		cfg:      cfg,
		state:    Closed,
		outcomes: make([]bool, cfg.Window),
	}
}

// Call runs fn unless the breaker is open. It never retries; a rejected call
// returns ErrOpen without invoking fn.
func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if time.Since(cb.openedAt) <= cb.cfg.Cooldown {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.state = HalfOpen
		cb.probesOK = 0
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.outcomes[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.outcomes)

	if cb.state == HalfOpen {
		if err != nil {
			cb.trip()
			return err
		}
		cb.probesOK++
		if cb.probesOK >= cb.cfg.Probes {
			cb.reset()
		}
		return err
	}

	failed := 0
	for _, f := range cb.outcomes {
		if f {
			failed++
		}
	}
	if float64(failed)/float64(len(cb.outcomes)) >= cb.cfg.FailureRatio {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.probesOK = 0
	cb.openedAt = time.Now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.outcomes {
		cb.outcomes[i] = false
	}
	cb.pos = 0
	cb.probesOK = 0
	cb.state = Closed
}
