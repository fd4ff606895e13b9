package uibridge

import (
	"fmt"
	"sync"

	"github.com/hubastard/canopy/engine/ui"
)

// Registry holds the retained layout cache of every UI session, keyed by
// the session's topic name. A cache is moved out for the duration of a
// Display call and moved back afterwards; acquiring a cache that is already
// out means two displays of the same session are interleaved, which is a
// host bug and panics.
type Registry struct {
	mu     sync.Mutex
	caches map[string]*ui.Cache
	taken  map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{
		caches: map[string]*ui.Cache{},
		taken:  map[string]bool{},
	}
}

// Acquire moves the session's cache out, creating a fresh one on first use.
func (r *Registry) Acquire(session string) *ui.Cache {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken[session] {
		panic(fmt.Sprintf("uibridge: session %q displayed while already displaying", session))
	}
	r.taken[session] = true
	c := r.caches[session]
	if c == nil {
		c = ui.NewCache()
	}
	return c
}

// Release moves the cache back after a display.
func (r *Registry) Release(session string, c *ui.Cache) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caches[session] = c
	r.taken[session] = false
}
