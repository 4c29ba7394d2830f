package work

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmitAndPump(t *testing.T) {
	q := NewQueue(2, 16, nil)
	defer q.Close()

	var ran atomic.Int32
	done := make(chan struct{})
	q.Submit(func() any {
		ran.Add(1)
		return 7
	}, func(result any) {
		if result.(int) != 7 {
			t.Errorf("response = %v", result)
		}
		close(done)
	})

	// The worker runs in the background; the callback only fires on pump.
	deadline := time.After(2 * time.Second)
	for {
		if q.PumpResponses(8) > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("response never arrived")
		case <-time.After(time.Millisecond):
		}
	}
	<-done
	if ran.Load() != 1 {
		t.Errorf("task ran %d times", ran.Load())
	}
}

func TestCancelBeforeStart(t *testing.T) {
	// A single worker blocked on the first task guarantees the second is
	// still queued when cancelled.
	q := NewQueue(1, 16, nil)
	defer q.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	q.Submit(func() any {
		close(started)
		<-release
		return nil
	}, nil)
	<-started

	var ran atomic.Bool
	id := q.Submit(func() any {
		ran.Store(true)
		return nil
	}, nil)
	q.Cancel(id)
	close(release)

	q.Close()
	if ran.Load() {
		t.Error("cancelled request still ran")
	}
}

func TestCancelInFlightDoesNotInterrupt(t *testing.T) {
	q := NewQueue(1, 16, nil)
	defer q.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	var finished atomic.Bool
	id := q.Submit(func() any {
		close(started)
		<-release
		finished.Store(true)
		return nil
	}, nil)
	<-started
	q.Cancel(id) // already running: must complete anyway
	close(release)
	q.Close()

	if !finished.Load() {
		t.Error("in-flight work was interrupted")
	}
}

func TestPumpBudget(t *testing.T) {
	q := NewQueue(4, 16, nil)
	defer q.Close()

	for i := 0; i < 6; i++ {
		q.Submit(func() any { return nil }, func(any) {})
	}
	total := 0
	deadline := time.Now().Add(2 * time.Second)
	for total < 6 && time.Now().Before(deadline) {
		n := q.PumpResponses(2)
		if n > 2 {
			t.Fatalf("pump ran %d callbacks with budget 2", n)
		}
		total += n
		time.Sleep(time.Millisecond)
	}
	if total != 6 {
		t.Errorf("drained %d of 6 responses", total)
	}
}
