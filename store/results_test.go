package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/midisolo/model"
	"github.com/stretchr/testify/assert"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func newTestResults(ttl time.Duration) (*Results, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewResults(ttl)
	s.now = c.now
	// sweep synchronously so tests don't race the debouncer
	s.sweep = func(f func()) { f() }
	return s, c
}

func TestPutGet(t *testing.T) {
	s, _ := newTestResults(time.Minute)
	res := &model.Result{BaseName: "demo"}

	id := s.Put(res)

	assert := assert.New(t)
	_, err := uuid.Parse(id)
	assert.NoError(err)

	got, ok := s.Get(id)
	assert.True(ok)
	assert.Same(res, got)

	_, ok = s.Get("missing")
	assert.False(ok)
}

func TestExpiry(t *testing.T) {
	s, c := newTestResults(time.Minute)
	old := s.Put(&model.Result{BaseName: "old"})

	c.t = c.t.Add(2 * time.Minute)
	assert := assert.New(t)
	_, ok := s.Get(old)
	assert.False(ok)

	// inserting triggers a sweep of the expired entry
	fresh := s.Put(&model.Result{BaseName: "fresh"})
	assert.Equal(1, s.Len())
	_, ok = s.Get(fresh)
	assert.True(ok)

	c.t = c.t.Add(2 * time.Minute)
	assert.Equal(1, s.Sweep())
	assert.Equal(0, s.Len())
}

func TestDistinctIDs(t *testing.T) {
	s, _ := newTestResults(time.Minute)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := s.Put(&model.Result{})
		assert.False(t, seen[id])
		seen[id] = true
	}
}
