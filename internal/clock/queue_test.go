package clock

import (
	"testing"
	"time"
)

func TestEveryFiresOncePerPeriod(t *testing.T) {
	q := NewQueue()
	count := 0
	q.Every(200*time.Millisecond, func() { count++ })

	q.Advance(199 * time.Millisecond)
	if count != 0 {
		t.Fatalf("fired %d times before first period, expected 0", count)
	}

	q.Advance(1 * time.Millisecond)
	if count != 1 {
		t.Fatalf("fired %d times at first period, expected 1", count)
	}

	q.Advance(time.Second)
	if count != 6 {
		t.Errorf("fired %d times after 1.2s, expected 6", count)
	}
}

func TestAfterFiresExactlyOnce(t *testing.T) {
	q := NewQueue()
	count := 0
	tok := q.After(time.Second, func() { count++ })

	if !q.Active(tok) {
		t.Fatal("one-shot timer should be active before it fires")
	}

	q.Advance(999 * time.Millisecond)
	if count != 0 {
		t.Fatalf("fired early")
	}

	q.Advance(time.Millisecond)
	if count != 1 {
		t.Fatalf("fired %d times, expected 1", count)
	}
	if q.Active(tok) {
		t.Error("one-shot timer should not be active after firing")
	}

	q.Advance(5 * time.Second)
	if count != 1 {
		t.Errorf("one-shot fired again: %d", count)
	}
}

func TestCancel(t *testing.T) {
	q := NewQueue()
	fired := false
	tok := q.Every(100*time.Millisecond, func() { fired = true })

	q.Cancel(tok)
	q.Advance(time.Second)

	if fired {
		t.Error("cancelled timer fired")
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after cancel, expected 0", q.Len())
	}

	// Unknown and repeated cancels are no-ops
	q.Cancel(tok)
	q.Cancel(Token(999))
	q.Cancel(0)
}

func TestCancelFromCallback(t *testing.T) {
	q := NewQueue()
	count := 0
	var self Token
	self = q.Every(100*time.Millisecond, func() {
		count++
		q.Cancel(self)
	})

	q.Advance(time.Second)
	if count != 1 {
		t.Errorf("self-cancelling timer fired %d times, expected 1", count)
	}
}

func TestCallbackCancelsLaterTimer(t *testing.T) {
	q := NewQueue()
	var order []string

	var victim Token
	q.After(100*time.Millisecond, func() {
		order = append(order, "killer")
		q.Cancel(victim)
	})
	victim = q.Every(150*time.Millisecond, func() {
		order = append(order, "victim")
	})

	q.Advance(time.Second)
	if len(order) != 1 || order[0] != "killer" {
		t.Errorf("order = %v, expected only killer", order)
	}
}

func TestFiringOrder(t *testing.T) {
	q := NewQueue()
	var order []int

	q.After(300*time.Millisecond, func() { order = append(order, 3) })
	q.After(100*time.Millisecond, func() { order = append(order, 1) })
	q.After(200*time.Millisecond, func() { order = append(order, 2) })
	// Same due time as the first one: insertion order wins
	q.After(100*time.Millisecond, func() { order = append(order, 11) })

	q.Advance(time.Second)

	expected := []int{1, 11, 2, 3}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("order = %v, expected %v", order, expected)
		}
	}
}

func TestNowDuringCallback(t *testing.T) {
	q := NewQueue()
	var seen time.Duration
	q.After(250*time.Millisecond, func() { seen = q.Now() })

	q.Advance(time.Second)

	if seen != 250*time.Millisecond {
		t.Errorf("Now() inside callback = %v, expected 250ms", seen)
	}
	if q.Now() != time.Second {
		t.Errorf("Now() after Advance = %v, expected 1s", q.Now())
	}
}

func TestScheduleFromCallbackUsesCallbackTime(t *testing.T) {
	q := NewQueue()
	fired := false
	q.After(500*time.Millisecond, func() {
		q.After(time.Second, func() { fired = true })
	})

	q.Advance(1400 * time.Millisecond)
	if fired {
		t.Fatal("nested timer fired before 1.5s")
	}
	q.Advance(100 * time.Millisecond)
	if !fired {
		t.Error("nested timer did not fire at 1.5s")
	}
}

func TestReset(t *testing.T) {
	q := NewQueue()
	fired := false
	q.Every(10*time.Millisecond, func() { fired = true })
	q.Advance(5 * time.Millisecond)

	q.Reset()
	q.Advance(time.Second)

	if fired {
		t.Error("timer survived Reset")
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after Reset", q.Len())
	}
}
