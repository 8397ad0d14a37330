package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects debounced values safely across goroutines.
type recorder struct {
	mu     sync.Mutex
	values []string
	fired  chan struct{}
}

func newRecorder() *recorder {
	return &recorder{fired: make(chan struct{}, 16)}
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
	r.fired <- struct{}{}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerLatestWins(t *testing.T) {
	rec := newRecorder()
	d := NewDebouncer(30*time.Millisecond, rec.record)
	defer d.Stop()

	d.Trigger("r")
	d.Trigger("rn")
	d.Trigger("rn-025")

	select {
	case <-rec.fired:
	case <-time.After(time.Second):
		t.Fatal("debounced callback never fired")
	}

	assert.Equal(t, []string{"rn-025"}, rec.snapshot(),
		"earlier pending queries are superseded")
}

func TestDebouncerFiresAgainAfterQuietPeriod(t *testing.T) {
	rec := newRecorder()
	d := NewDebouncer(10*time.Millisecond, rec.record)
	defer d.Stop()

	d.Trigger("first")
	select {
	case <-rec.fired:
	case <-time.After(time.Second):
		t.Fatal("first callback never fired")
	}

	d.Trigger("second")
	select {
	case <-rec.fired:
	case <-time.After(time.Second):
		t.Fatal("second callback never fired")
	}

	assert.Equal(t, []string{"first", "second"}, rec.snapshot())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	rec := newRecorder()
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Trigger("doomed")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	require.Empty(t, rec.snapshot())

	d.Trigger("after stop")
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "trigger after stop is a no-op")
}
