// Package clock is the process-wide time source. Tests pin it with Freeze.
package clock

import (
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	nowFunc = time.Now
)

func Now() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return nowFunc()
}

func UTC() time.Time {
	return Now().UTC()
}

// Freeze makes Now return t until the returned restore func is called.
func Freeze(t time.Time) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := nowFunc
	nowFunc = func() time.Time { return t }
	return func() {
		mu.Lock()
		defer mu.Unlock()
		nowFunc = prev
	}
}
