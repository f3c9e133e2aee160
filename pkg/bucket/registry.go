package bucket

import (
	"sync"
	"time"
)

// Registry holds the named buckets declared at startup. Commands refer to
// buckets by name; an unknown name simply never limits.
type Registry struct {
	mu      sync.RWMutex
	buckets map[string]*Bucket
}

func NewRegistry() *Registry {
	return &Registry{buckets: make(map[string]*Bucket)}
}

// Add declares a named bucket. Declaring an existing name replaces it.
func (r *Registry) Add(name string, window time.Duration, capacity int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buckets[name] = New(window, capacity)
}

func (r *Registry) get(name string) *Bucket {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.buckets[name]
}

// Check gates an invocation against the named bucket.
func (r *Registry) Check(name, guildID string) (time.Duration, bool) {
	b := r.get(name)
	if b == nil {
		return 0, false
	}
	return b.Check(guildID)
}

// Take debits the named bucket after a successful invocation.
func (r *Registry) Take(name, guildID string) {
	if b := r.get(name); b != nil {
		b.Take(guildID)
	}
}
