package fs

import (
	"sync"
	"time"

	"github.com/humuslab/humus/pkg/core"
)

// debouncer coalesces rapid repeated events per (type, id) key. Editors
// commonly fire several writes for a single save.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fire for the event, resetting any pending timer for the same
// key.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	key := string(e.Type) + ":" + e.ID
	if t, ok := d.timers[key]; ok {
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fire(e)
	})
}

// stopAndWait refuses new events, cancels pending timers, and waits for
// in-flight callbacks to finish (bounded by timeout).
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
