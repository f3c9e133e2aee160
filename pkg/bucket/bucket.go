// Package bucket implements per-guild fixed-window rate limiting for
// commands. A bucket admits up to capacity calls per window per guild; a call
// is only debited after the command handler reports success, so failed
// invocations never consume allowance. The limiter is process-local: no
// cross-process coordination is provided or required.
package bucket

import (
	"sync"
	"time"
)

// Bucket tracks remaining calls per guild inside a fixed window.
type Bucket struct {
	mu       sync.Mutex
	window   time.Duration
	capacity int

	guilds    map[string]*entry
	lastSweep time.Time

	now func() time.Time
}

type entry struct {
	remaining int
	resets    time.Time
	touched   time.Time
}

// New creates a bucket admitting capacity calls per window per guild.
func New(window time.Duration, capacity int) *Bucket {
	return &Bucket{
		window:   window,
		capacity: capacity,
		guilds:   make(map[string]*entry),
		now:      time.Now,
	}
}

// Check reports whether the guild has allowance left. When the guild is
// limited it returns the remaining wait. Check never debits; use Take after
// the gated work succeeds.
func (b *Bucket) Check(guildID string) (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.sweep(now)

	e, ok := b.guilds[guildID]
	if !ok {
		e = &entry{remaining: b.capacity, resets: now.Add(b.window)}
		b.guilds[guildID] = e
	}
	e.touched = now

	if now.After(e.resets) {
		e.remaining = b.capacity
		e.resets = now.Add(b.window)
	}

	if e.remaining > 0 {
		return 0, false
	}
	return e.resets.Sub(now), true
}

// Take debits one call from the guild's window. Called only after the gated
// command handler succeeded.
func (b *Bucket) Take(guildID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	e, ok := b.guilds[guildID]
	if !ok {
		e = &entry{remaining: b.capacity, resets: now.Add(b.window)}
		b.guilds[guildID] = e
	}
	e.touched = now

	if now.After(e.resets) {
		e.remaining = b.capacity
		e.resets = now.Add(b.window)
	}
	if e.remaining > 0 {
		e.remaining--
	}
}

// sweep drops guild entries idle for longer than one window. Called with the
// lock held, at most once per window.
func (b *Bucket) sweep(now time.Time) {
	if now.Sub(b.lastSweep) < b.window {
		return
	}
	b.lastSweep = now
	for guildID, e := range b.guilds {
		if now.Sub(e.touched) > b.window {
			delete(b.guilds, guildID)
		}
	}
}
