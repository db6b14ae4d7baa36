package utils_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JashanBansal182304/MessMate/utils"
)

func TestDebounceCoalescesBursts(t *testing.T) {
	t.Parallel()
	var calls int32
	debounced := utils.Debounce(30*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	for i := 0; i < 10; i++ {
		debounced()
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly 1 trailing call, got %d", got)
	}
}

func TestDebounceFiresAgainAfterQuietPeriod(t *testing.T) {
	t.Parallel()
	var calls int32
	debounced := utils.Debounce(20*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	debounced()
	time.Sleep(60 * time.Millisecond)
	debounced()
	time.Sleep(60 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 calls across separate windows, got %d", got)
	}
}

func TestDebounceDoesNotFireEarly(t *testing.T) {
	t.Parallel()
	var calls int32
	debounced := utils.Debounce(80*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	debounced()
	time.Sleep(20 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("fired before the window elapsed: %d calls", got)
	}
}
