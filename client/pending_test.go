package client

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestPendingCounter_InitialFetch(t *testing.T) {
	pc := NewPendingCounter(func(ctx context.Context) (int, error) {
		return 3, nil
	}, time.Hour)
	defer pc.Close()

	waitFor(t, func() bool { return pc.Count() == 3 })
}

func TestPendingCounter_NotifyTriggersRefetch(t *testing.T) {
	var value atomic.Int64
	value.Store(1)
	pc := NewPendingCounter(func(ctx context.Context) (int, error) {
		return int(value.Load()), nil
	}, time.Hour)
	defer pc.Close()

	waitFor(t, func() bool { return pc.Count() == 1 })

	value.Store(5)
	pc.Notify()
	waitFor(t, func() bool { return pc.Count() == 5 })
}

func TestPendingCounter_SubscriberReceivesUpdates(t *testing.T) {
	var value atomic.Int64
	value.Store(2)
	pc := NewPendingCounter(func(ctx context.Context) (int, error) {
		return int(value.Load()), nil
	}, time.Hour)
	defer pc.Close()

	waitFor(t, func() bool { return pc.Count() == 2 })

	var last atomic.Int64
	unsubscribe := pc.Subscribe(func(count int) {
		last.Store(int64(count))
	})
	require.EqualValues(t, 2, last.Load(), "subscriber gets the current value immediately")

	value.Store(7)
	pc.Notify()
	waitFor(t, func() bool { return last.Load() == 7 })

	unsubscribe()
	value.Store(9)
	pc.Notify()
	waitFor(t, func() bool { return pc.Count() == 9 })
	assert.EqualValues(t, 7, last.Load(), "no callbacks after unsubscribe")
}

func TestPendingCounter_TickerReconciles(t *testing.T) {
	var value atomic.Int64
	value.Store(1)
	pc := NewPendingCounter(func(ctx context.Context) (int, error) {
		return int(value.Load()), nil
	}, 20*time.Millisecond)
	defer pc.Close()

	waitFor(t, func() bool { return pc.Count() == 1 })

	// A silent change is picked up by the periodic refresh, no Notify.
	value.Store(4)
	waitFor(t, func() bool { return pc.Count() == 4 })
}

func TestPendingCounter_FetchErrorKeepsLastValue(t *testing.T) {
	var failing atomic.Bool
	pc := NewPendingCounter(func(ctx context.Context) (int, error) {
		if failing.Load() {
			return 0, context.DeadlineExceeded
		}
		return 6, nil
	}, time.Hour)
	defer pc.Close()

	waitFor(t, func() bool { return pc.Count() == 6 })

	failing.Store(true)
	pc.Notify()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 6, pc.Count())
}
