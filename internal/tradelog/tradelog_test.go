package tradelog

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendStampsIDAndTime(t *testing.T) {
	l := New(10)
	l.Append(Entry{Text: "game started"})

	entries := l.Snapshot()
	require.Len(t, entries, 1)

	assert.NotEqual(t, uuid.Nil, entries[0].ID)
	assert.False(t, entries[0].Time.IsZero())
	assert.Equal(t, "game started", entries[0].Text)
}

func TestAppendKeepsExplicitIDAndTime(t *testing.T) {
	l := New(10)
	id := uuid.New()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	l.Append(Entry{ID: id, Time: at, Text: "BUY Gemini AI 10 @ 50000"})

	entries := l.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ID)
	assert.Equal(t, at, entries[0].Time)
}

func TestSnapshotMostRecentFirst(t *testing.T) {
	l := New(10)
	for i := 1; i <= 3; i++ {
		l.Append(Entry{Text: fmt.Sprintf("trade %d", i)})
	}

	entries := l.Snapshot()
	require.Len(t, entries, 3)
	assert.Equal(t, "trade 3", entries[0].Text)
	assert.Equal(t, "trade 2", entries[1].Text)
	assert.Equal(t, "trade 1", entries[2].Text)
}

func TestBoundedEvictsOldest(t *testing.T) {
	l := New(3)
	for i := 1; i <= 5; i++ {
		l.Append(Entry{Text: fmt.Sprintf("trade %d", i)})
	}

	require.Equal(t, 3, l.Len())

	entries := l.Snapshot()
	assert.Equal(t, "trade 5", entries[0].Text)
	assert.Equal(t, "trade 3", entries[2].Text)
}

func TestUnboundedKeepsEverything(t *testing.T) {
	l := New(0)
	for i := 0; i < 500; i++ {
		l.Append(Entry{Text: fmt.Sprintf("trade %d", i)})
	}

	require.Equal(t, 500, l.Len())

	entries := l.Latest(2)
	require.Len(t, entries, 2)
	assert.Equal(t, "trade 499", entries[0].Text)
	assert.Equal(t, "trade 498", entries[1].Text)
}

func TestLatestBounds(t *testing.T) {
	l := New(5)
	l.Append(Entry{Text: "only"})

	assert.Nil(t, l.Latest(0))
	assert.Len(t, l.Latest(100), 1)
}
