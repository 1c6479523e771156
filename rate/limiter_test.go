package rate

import (
	"testing"
	"time"
)

func TestLimiter(t *testing.T) {
	burst := 1

	interval := 10 * time.Millisecond
	lim := Every(interval)
	r := NewLimiter(burst, 100, lim)

	tooshort := 1 * time.Millisecond

	client := "session-token-1"
	expected := []bool{true, false, true, true, false, false}
	waits := []time.Duration{tooshort, interval, interval, tooshort, tooshort, tooshort}
	for i, exp := range expected {
		if got := r.Check(client); got != exp {
			t.Fatalf("iteration %d: expected %v, but got %v", i, exp, got)
		}
		time.Sleep(waits[i])
	}
}

func TestLimiterIsolatesClients(t *testing.T) {
	interval := 100 * time.Millisecond
	r := NewLimiter(1, 100, Every(interval))

	if got := r.Check("session-a"); !got {
		t.Fatal("first check for session-a should pass")
	}
	if got := r.Check("session-a"); got {
		t.Fatal("second immediate check for session-a should be limited")
	}

	// A different key owns a fresh bucket.
	if got := r.Check("session-b"); !got {
		t.Fatal("first check for session-b should pass")
	}
}
