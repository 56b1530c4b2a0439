package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

// GoroutineChecker helps detect goroutine leaks
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Allow time for background goroutines to stabilize
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check verifies that goroutine count hasn't increased beyond tolerance
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(time.Second)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak is a convenience function for simple leak checks
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// HandleCounter tracks acquired and released handles, such as compiled
// scripts, so tests can check every one was released exactly once.
type HandleCounter struct {
	mu       sync.Mutex
	acquired int
	released map[int]int
}

// NewHandleCounter creates an empty counter
func NewHandleCounter() *HandleCounter {
	return &HandleCounter{released: make(map[int]int)}
}

// Acquire records a new handle and returns its release func
func (c *HandleCounter) Acquire() func() {
	c.mu.Lock()
	c.acquired++
	id := c.acquired
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		c.released[id]++
		c.mu.Unlock()
	}
}

// Outstanding returns how many handles were never released
func (c *HandleCounter) Outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acquired - len(c.released)
}

// CheckAllReleased fails t if a handle is still held or was released twice
func (c *HandleCounter) CheckAllReleased(t testing.TB) {
	t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()

	if held := c.acquired - len(c.released); held != 0 {
		t.Errorf("Handle leak: acquired=%d, still held=%d", c.acquired, held)
	}
	for id, n := range c.released {
		if n > 1 {
			t.Errorf("Handle %d released %d times", id, n)
		}
	}
}
