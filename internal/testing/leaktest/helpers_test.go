package leaktest

import (
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)

	// Do nothing - no goroutines leaked

	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	// Intentionally leak a small number of goroutines within tolerance
	done := make(chan struct{})
	go func() {
		<-done
	}()

	time.Sleep(20 * time.Millisecond)

	// Check with tolerance of 2 - should pass
	checker.Check(2)

	// Cleanup
	close(done)
}

func TestCheckNoGoroutineLeak_FinishedWorkers(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		for i := 0; i < 4; i++ {
			go func() { done <- struct{}{} }()
		}
		for i := 0; i < 4; i++ {
			<-done
		}
	})
}

func TestHandleCounter(t *testing.T) {
	c := NewHandleCounter()
	release1 := c.Acquire()
	release2 := c.Acquire()

	if got := c.Outstanding(); got != 2 {
		t.Fatalf("expected 2 outstanding, got %d", got)
	}

	release1()
	release2()

	if got := c.Outstanding(); got != 0 {
		t.Fatalf("expected 0 outstanding, got %d", got)
	}
	c.CheckAllReleased(t)
}

func TestHandleCounter_DetectsLeak(t *testing.T) {
	c := NewHandleCounter()
	c.Acquire()

	ft := &fakeTB{TB: t}
	c.CheckAllReleased(ft)
	if !ft.failed {
		t.Error("expected leak to be reported")
	}
}

func TestHandleCounter_DetectsDoubleRelease(t *testing.T) {
	c := NewHandleCounter()
	release := c.Acquire()
	release()
	release()

	ft := &fakeTB{TB: t}
	c.CheckAllReleased(ft)
	if !ft.failed {
		t.Error("expected double release to be reported")
	}
}

// fakeTB records failures without failing the real test
type fakeTB struct {
	testing.TB
	failed bool
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Errorf(format string, args ...interface{}) {
	f.failed = true
}
