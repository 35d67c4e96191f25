package application

import (
	"sync"
	"time"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/ports"
	"github.com/google/uuid"
)

// Logbook keeps the most recent API log entries, newest first.
type Logbook struct {
	mu      sync.Mutex
	entries []domain.APILogEntry
	limit   int
	clock   ports.Clock
	newID   func() string
}

func NewLogbook(clock ports.Clock) *Logbook {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Logbook{
		limit: domain.MaxLogEntries,
		clock: clock,
		newID: uuid.NewString,
	}
}

// Record redacts request and response and prepends the entry, evicting the
// oldest entries beyond the limit.
func (l *Logbook) Record(method, endpoint string, request, response any, status domain.LogStatus, duration time.Duration) domain.APILogEntry {
	entry := domain.APILogEntry{
		ID:        l.newID(),
		Timestamp: l.clock.Now(),
		Method:    method,
		Endpoint:  endpoint,
		Request:   domain.Redact(request),
		Response:  domain.Redact(response),
		Status:    status,
		Duration:  duration,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]domain.APILogEntry, 0, min(len(l.entries)+1, l.limit))
	next = append(next, entry)
	for _, existing := range l.entries {
		if len(next) == l.limit {
			break
		}
		next = append(next, existing)
	}
	l.entries = next

	return entry
}

func (l *Logbook) Entries() []domain.APILogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.APILogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Logbook) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Logbook) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
