package workflow

import (
	"sync"
	"time"

	"github.com/Astemirdum/bookstore-admin/pkg/debounce"
)

// searchGate applies only the last search term of a burst. Every caller is
// released once its term is applied or a newer term replaces it.
type searchGate struct {
	d *debounce.Debouncer

	mu      sync.Mutex
	gen     uint64
	waiting chan struct{}
}

func newSearchGate(window time.Duration) *searchGate {
	return &searchGate{d: debounce.New(window)}
}

func (g *searchGate) schedule(apply func()) <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.release()
	g.gen++
	gen := g.gen
	ch := make(chan struct{})
	g.waiting = ch
	g.d.Do(func() { g.fire(gen, apply) })
	return ch
}

// fire runs apply only if nothing was scheduled or cancelled after gen.
// A timer that already fired can still lose to cancel here.
func (g *searchGate) fire(gen uint64, apply func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		return
	}
	apply()
	g.release()
}

// cancel drops a pending term without applying it.
func (g *searchGate) cancel() {
	g.d.Flush()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	g.release()
}

func (g *searchGate) release() {
	if g.waiting != nil {
		close(g.waiting)
		g.waiting = nil
	}
}
