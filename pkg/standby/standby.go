// Package standby routes component-interaction events to the in-flight
// command that is waiting for them, keyed by the id of the message carrying
// the component.
package standby

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// ComponentInteraction is the slice of an interaction event a waiter needs.
type ComponentInteraction struct {
	MessageID   string
	AuthorID    string
	CustomID    string
	Interaction *discordgo.Interaction
}

// Standby fans component interactions out to per-message subscribers.
type Standby struct {
	mu      sync.Mutex
	waiters map[string][]chan ComponentInteraction
}

func New() *Standby {
	return &Standby{waiters: make(map[string][]chan ComponentInteraction)}
}

// WaitForComponent subscribes to interactions on messageID. The returned
// cancel func must be called exactly once; after cancel the channel stops
// receiving.
func (s *Standby) WaitForComponent(messageID string) (<-chan ComponentInteraction, func()) {
	// Buffered so a burst of presses does not block the gateway handler.
	ch := make(chan ComponentInteraction, 8)

	s.mu.Lock()
	s.waiters[messageID] = append(s.waiters[messageID], ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		chans := s.waiters[messageID]
		for i, c := range chans {
			if c == ch {
				s.waiters[messageID] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
		if len(s.waiters[messageID]) == 0 {
			delete(s.waiters, messageID)
		}
	}

	return ch, cancel
}

// Dispatch hands an interaction to every subscriber of its message and
// reports whether anyone was listening. Slow subscribers with a full buffer
// are skipped rather than blocked on.
func (s *Standby) Dispatch(ci ComponentInteraction) bool {
	s.mu.Lock()
	chans := append([]chan ComponentInteraction(nil), s.waiters[ci.MessageID]...)
	s.mu.Unlock()

	for _, ch := range chans {
		select {
		case ch <- ci:
		default:
		}
	}
	return len(chans) > 0
}
