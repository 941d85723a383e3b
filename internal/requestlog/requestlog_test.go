package requestlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRingRecordsInOrder(t *testing.T) {
	r := NewRing(10)
	r.Record(Entry{Method: "GET", Path: "/api/users", Timestamp: time.Now()})
	r.Record(Entry{Method: "POST", Path: "/api/posts", Timestamp: time.Now()})

	entries := r.Entries()
	assert.Equal(t, 2, r.Count())
	assert.Equal(t, "/api/users", entries[0].Path)
	assert.Equal(t, "/api/posts", entries[1].Path)
}

func TestRingEvictsOldest(t *testing.T) {
	r := NewRing(2)
	r.Record(Entry{Path: "/a"})
	r.Record(Entry{Path: "/b"})
	r.Record(Entry{Path: "/c"})

	entries := r.Entries()
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, "/b", entries[0].Path)
	assert.Equal(t, "/c", entries[1].Path)
}

func TestEntriesReturnsACopy(t *testing.T) {
	r := NewRing(5)
	r.Record(Entry{Path: "/a"})

	entries := r.Entries()
	entries[0].Path = "/mutated"
	assert.Equal(t, "/a", r.Entries()[0].Path)
}
