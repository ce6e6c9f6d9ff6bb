package client

import (
	"context"
	"sync"
	"time"
)

// FetchFunc retrieves the current pending-approval count.
type FetchFunc func(ctx context.Context) (int, error)

// PendingCounter is an observable store for the approval-queue size.
// Mutations that touch the queue call Notify to trigger a re-fetch and
// fan the new value out to subscribers; a low-frequency ticker
// reconciles against missed notifications.
type PendingCounter struct {
	mu      sync.Mutex
	fetch   FetchFunc
	subs    map[int]func(int)
	nextSub int
	count   int

	notify chan struct{}
	done   chan struct{}
	wg     sync.WaitGroup
}

const reconcileInterval = 30 * time.Second

// NewPendingCounter starts the counter loop. interval <= 0 falls back
// to the default 30s reconciliation.
func NewPendingCounter(fetch FetchFunc, interval time.Duration) *PendingCounter {
	if interval <= 0 {
		interval = reconcileInterval
	}
	pc := &PendingCounter{
		fetch:  fetch,
		subs:   make(map[int]func(int)),
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	pc.wg.Add(1)
	go pc.loop(interval)
	return pc
}

// Subscribe registers a callback invoked with every refreshed count. It
// is called immediately with the current value. The returned function
// removes the subscription.
func (pc *PendingCounter) Subscribe(fn func(count int)) (unsubscribe func()) {
	pc.mu.Lock()
	id := pc.nextSub
	pc.nextSub++
	pc.subs[id] = fn
	current := pc.count
	pc.mu.Unlock()

	fn(current)

	return func() {
		pc.mu.Lock()
		delete(pc.subs, id)
		pc.mu.Unlock()
	}
}

// Notify requests an immediate re-fetch. Safe to call from any
// goroutine; coalesces bursts into a single refresh.
func (pc *PendingCounter) Notify() {
	select {
	case pc.notify <- struct{}{}:
	default:
	}
}

// Count returns the last fetched value.
func (pc *PendingCounter) Count() int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.count
}

// Close stops the background loop and waits for it to exit.
func (pc *PendingCounter) Close() {
	close(pc.done)
	pc.wg.Wait()
}

func (pc *PendingCounter) loop(interval time.Duration) {
	defer pc.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	pc.refresh()
	for {
		select {
		case <-pc.done:
			return
		case <-pc.notify:
			pc.refresh()
		case <-ticker.C:
			pc.refresh()
		}
	}
}

// refresh fetches the count and, on success, stores it and informs the
// subscribers. Fetch failures keep the previous value.
func (pc *PendingCounter) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := pc.fetch(ctx)
	if err != nil {
		return
	}

	pc.mu.Lock()
	pc.count = count
	callbacks := make([]func(int), 0, len(pc.subs))
	for _, fn := range pc.subs {
		callbacks = append(callbacks, fn)
	}
	pc.mu.Unlock()

	for _, fn := range callbacks {
		fn(count)
	}
}
