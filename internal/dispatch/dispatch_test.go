package dispatch

import (
	"testing"
	"time"
)

func TestPostRunsInFIFOOrder(t *testing.T) {
	d := New(nil)
	var order []int
	d.Post(func() { order = append(order, 1) })
	d.Post(func() { order = append(order, 2) })
	d.Post(func() { order = append(order, 3) })

	d.PumpMessages()

	want := []int{1, 2, 3}
	for i, v := range want {
		if order[i] != v {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestPushRunsBeforeAlreadyQueued(t *testing.T) {
	d := New(nil)
	var order []string
	d.Post(func() { order = append(order, "tail") })
	d.Push(func() { order = append(order, "head") })

	d.PumpMessages()

	if len(order) != 2 || order[0] != "head" || order[1] != "tail" {
		t.Fatalf("order = %v, want [head tail]", order)
	}
}

func TestPumpMessagesReturnsFalseWhenQuiescent(t *testing.T) {
	d := New(nil)
	if d.PumpMessages() {
		t.Error("expected false on an empty dispatcher")
	}
	if !d.Quiescent() {
		t.Error("expected Quiescent() true")
	}
}

func TestTimerFiresAfterDelay(t *testing.T) {
	d := New(nil)
	fired := false
	d.AddTimer(10*time.Millisecond, func() { fired = true })

	time.Sleep(20 * time.Millisecond)
	if !d.PumpMessages() {
		t.Fatal("expected PumpMessages to report work done")
	}
	if !fired {
		t.Error("timer did not fire")
	}
}

func TestTimersFireInDueTimeOrderTiesByInsertion(t *testing.T) {
	d := New(nil)
	var order []int
	now := time.Now()
	// All due in the past relative to the pump call below, but with
	// distinct delays to establish due-time order, plus a same-delay
	// pair to exercise the insertion-order tiebreak.
	d.AddTimer(0, func() { order = append(order, 1) })
	d.AddTimer(0, func() { order = append(order, 2) })
	d.AddTimer(5*time.Millisecond, func() { order = append(order, 3) })
	_ = now

	time.Sleep(10 * time.Millisecond)
	d.PumpMessages()

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestIntervalTimerRearms(t *testing.T) {
	d := New(nil)
	count := 0
	d.AddIntervalTimer(5*time.Millisecond, func() { count++ })

	for i := 0; i < 3; i++ {
		time.Sleep(8 * time.Millisecond)
		d.PumpMessages()
	}

	if count < 2 {
		t.Errorf("interval timer fired %d times, want at least 2", count)
	}
}

func TestCancelTimerPreventsFiring(t *testing.T) {
	d := New(nil)
	fired := false
	h := d.AddTimer(5*time.Millisecond, func() { fired = true })
	d.CancelTimer(h)

	time.Sleep(10 * time.Millisecond)
	d.PumpMessages()

	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestPanicInRunnableIsRecoveredAndLogged(t *testing.T) {
	d := New(nil)
	d.Post(func() { panic("boom") })
	ranAfter := false
	d.Post(func() { ranAfter = true })

	if !d.PumpMessages() {
		t.Fatal("expected work to be reported done")
	}
	if !ranAfter {
		t.Error("panic in one runnable must not prevent later runnables from executing")
	}
}
