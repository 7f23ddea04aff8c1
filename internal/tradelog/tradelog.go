package tradelog

import (
	"time"

	"github.com/google/uuid"

	"github.com/zappabad/stockgame/internal/history"
)

// Entry is one line of the trade log.
type Entry struct {
	ID   uuid.UUID
	Time time.Time
	Text string
}

// Log is the append-only trade record. Reads are most-recent-first. A
// capacity <= 0 keeps every entry for the life of the process; otherwise
// the oldest entries are evicted beyond capacity.
type Log struct {
	tape      *history.Buffer[Entry]
	unbounded []Entry
}

// New creates a Log with the given capacity (<= 0 means unbounded).
func New(capacity int) *Log {
	if capacity <= 0 {
		return &Log{}
	}
	return &Log{tape: history.New[Entry](capacity)}
}

// Append records an entry. Sets ID and Time if missing.
func (l *Log) Append(e Entry) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	if l.tape != nil {
		l.tape.Append(e)
		return
	}
	l.unbounded = append(l.unbounded, e)
}

// Latest returns the last n entries, most recent first.
// Returns a copy (not internal references).
func (l *Log) Latest(n int) []Entry {
	if n <= 0 {
		return nil
	}

	var recent []Entry
	if l.tape != nil {
		recent = l.tape.Last(n)
	} else {
		if n > len(l.unbounded) {
			n = len(l.unbounded)
		}
		recent = append([]Entry(nil), l.unbounded[len(l.unbounded)-n:]...)
	}

	// reverse into most-recent-first order
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent
}

// Snapshot returns every held entry, most recent first.
// Returns a copy (not internal references).
func (l *Log) Snapshot() []Entry {
	return l.Latest(l.Len())
}

// Len returns the number of entries currently held.
func (l *Log) Len() int {
	if l.tape != nil {
		return l.tape.Len()
	}
	return len(l.unbounded)
}
