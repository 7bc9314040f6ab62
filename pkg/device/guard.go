package device

import (
	"sync"
)

// Guard tracks the open/closed state of a handle. Every adapter embeds
// one so that operations issued after Close fail with ErrClosed without
// reaching the backend, and so that Close releases the backend resource
// exactly once no matter how many times it is called.
type Guard struct {
	mu     sync.Mutex
	closed bool
}

// Do runs op unless the guard is closed.
func (g *Guard) Do(op func() error) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}
	g.mu.Unlock()
	return op()
}

// Close runs release on the first call and is a no-op afterwards.
func (g *Guard) Close(release func() error) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	g.mu.Unlock()
	return release()
}

// Closed reports whether Close was called.
func (g *Guard) Closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}
