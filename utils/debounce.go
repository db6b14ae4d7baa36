package utils

import (
	"sync"
	"time"
)

// SearchDebounce is the delay used to coalesce rapid search input before
// a filter request fires.
const SearchDebounce = 300 * time.Millisecond

// Debounce returns a trailing-edge debounced wrapper around fn: of any
// burst of calls within the window, only the last one fires, after the
// window elapses. Earlier pending calls are cancelled.
func Debounce(window time.Duration, fn func()) func() {
	var mu sync.Mutex
	var timer *time.Timer

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(window, fn)
	}
}
