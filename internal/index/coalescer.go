package index

import (
	"sync"
	"time"

	"sourcescout/internal/ports"
)

// DefaultRefreshDelay is how long the coalescer waits after the last graph
// mutation before signalling a refresh. Long enough to fold the event storm
// of a project load into one rebuild.
const DefaultRefreshDelay = 500 * time.Millisecond

// Coalescer folds bursts of graph mutation notifications into a single
// trailing refresh signal. Notify is safe to call from any goroutine (it is
// the only piece of this package that is) and never touches the index; it
// only manages a timer. The collection owner drains C on its own loop and
// runs Refresh there, keeping the index single-threaded.
//
// Until Prime is called the coalescer ignores every notification: there is
// no generation to go stale before the index first materializes.
type Coalescer struct {
	delay time.Duration
	c     chan struct{}

	mu     sync.Mutex
	timer  *time.Timer
	primed bool
}

// NewCoalescer creates a coalescer with the given trailing delay.
// A non-positive delay falls back to DefaultRefreshDelay.
func NewCoalescer(delay time.Duration) *Coalescer {
	if delay <= 0 {
		delay = DefaultRefreshDelay
	}
	return &Coalescer{
		delay: delay,
		c:     make(chan struct{}, 1),
	}
}

// C delivers at most one pending refresh signal. Receiving from it consumes
// the pending state; every signal subsumes all notifications before it.
func (co *Coalescer) C() <-chan struct{} { return co.c }

// Prime marks the index as materialized. Notifications before the first
// Prime are dropped.
func (co *Coalescer) Prime() {
	co.mu.Lock()
	co.primed = true
	co.mu.Unlock()
}

// Notify records a graph mutation. Each call restarts the trailing timer, so
// a burst produces exactly one signal after the graph goes quiet.
func (co *Coalescer) Notify(ports.Event) {
	co.mu.Lock()
	defer co.mu.Unlock()

	if !co.primed {
		return
	}
	if co.timer != nil {
		co.timer.Stop()
	}
	co.timer = time.AfterFunc(co.delay, co.fire)
}

func (co *Coalescer) fire() {
	select {
	case co.c <- struct{}{}:
	default: // a signal is already pending; it covers this one too
	}
}

// Stop cancels any pending signal and returns the coalescer to its
// unprimed state.
func (co *Coalescer) Stop() {
	co.mu.Lock()
	defer co.mu.Unlock()

	if co.timer != nil {
		co.timer.Stop()
		co.timer = nil
	}
	co.primed = false
}
