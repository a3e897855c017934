// Package undo keeps per-user LIFO stacks of deleted calendar events so a
// delete can be reversed by re-creating the underlying schedules. Entries
// are process-local and expire after a TTL; this is a convenience buffer,
// not a transactional rollback.
package undo

import (
	"sync"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// DefaultTTL is how long a deleted event stays restorable
const DefaultTTL = 30 * time.Minute

// Entry is one deleted event snapshot plus the raw schedules it stood for
type Entry struct {
	Event     models.CalendarEvent
	Schedules []models.Schedule
	DeletedAt time.Time
}

// Stack holds per-user undo entries
type Stack struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string][]Entry // key: username
	now     func() time.Time
}

// New creates a Stack with the given TTL (DefaultTTL when zero)
func New(ttl time.Duration) *Stack {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Stack{
		ttl:     ttl,
		entries: make(map[string][]Entry),
		now:     time.Now,
	}
}

// Push records a deleted event for the user
func (s *Stack) Push(user string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.DeletedAt.IsZero() {
		e.DeletedAt = s.now()
	}
	s.entries[user] = append(s.entries[user], e)
}

// Pop removes and returns the user's most recent deletion.
// Expired entries are discarded on the way.
func (s *Stack) Pop(user string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stack := s.entries[user]
	cutoff := s.now().Add(-s.ttl)
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.DeletedAt.After(cutoff) {
			s.entries[user] = stack
			return e, true
		}
	}
	s.entries[user] = stack
	return Entry{}, false
}

// Len returns the number of live entries for the user
func (s *Stack) Len(user string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries[user])
}

// Sweep drops expired entries across all users; run periodically
func (s *Stack) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for user, stack := range s.entries {
		kept := stack[:0]
		for _, e := range stack {
			if e.DeletedAt.After(cutoff) {
				kept = append(kept, e)
			} else {
				removed++
			}
		}
		if len(kept) == 0 {
			delete(s.entries, user)
		} else {
			s.entries[user] = kept
		}
	}
	return removed
}
