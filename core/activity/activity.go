package activity

import (
	"fmt"
	"sync"
	"time"
)

// DefaultSize is the number of entries retained when no explicit size is configured.
const DefaultSize = 10

type Kind string

const (
	KindCreated         Kind = "created"
	KindApproved        Kind = "approved"
	KindRejected        Kind = "rejected"
	KindDeleted         Kind = "deleted"
	KindDeletionRequest Kind = "deletion_request"
	// status transitions use the snake-cased status name as their kind,
	// e.g. "published", "under_review".
)

// Entry is a single audit record of a mutating action.
type Entry struct {
	ID     int64     `json:"id"`
	Action string    `json:"action"`
	Actor  string    `json:"actor"`
	Kind   Kind      `json:"kind"`
	Time   time.Time `json:"time"` // UTC
}

// TimeAgo renders the entry's age as a relative-time label for display.
func (e Entry) TimeAgo() string {
	return timeAgo(time.Since(e.Time))
}

func timeAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	default:
		return plural(int(d.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// Log is a bounded, newest-first ring of recent actions. It is a best-effort
// observability sink: appends never fail and never affect the callers' state.
type Log struct {
	mutex   sync.RWMutex
	size    int
	entries []Entry
	lastID  int64

	nowFunc func() time.Time // mockable
}

func NewLog(size int) *Log {
	if size <= 0 {
		size = DefaultSize
	}
	return &Log{
		size:    size,
		entries: make([]Entry, 0, size),
		nowFunc: time.Now,
	}
}

// Append prepends a new entry and evicts the oldest one past capacity.
// Entry ids are timestamp-derived and strictly increasing.
func (l *Log) Append(action, actor string, kind Kind) Entry {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.nowFunc().UTC()
	id := now.UnixNano()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	entry := Entry{
		ID:     id,
		Action: action,
		Actor:  actor,
		Kind:   kind,
		Time:   now,
	}
	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > l.size {
		l.entries = l.entries[:l.size]
	}
	return entry
}

// List returns a copy of the retained entries, newest first.
func (l *Log) List() []Entry {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func (l *Log) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return len(l.entries)
}
