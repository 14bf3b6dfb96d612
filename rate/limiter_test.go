package rate

import (
	"testing"
	"time"
)

func TestLimiter(t *testing.T) {
	burst := 1

	interval := 10 * time.Millisecond
	lim := New(Every(interval), burst, time.Hour)
	defer lim.Stop()

	tooshort := 1 * time.Millisecond

	client := "203.0.113.7"
	expected := []bool{true, false, true, true, false, false}
	waits := []time.Duration{tooshort, interval, interval, tooshort, tooshort, tooshort}
	for i, exp := range expected {
		if got := lim.Allow(client); got != exp {
			t.Fatalf("iteration %d: expected %v, but got %v", i, exp, got)
		}
		time.Sleep(waits[i])
	}
}

func TestLimiterWithBurst(t *testing.T) {
	client := "203.0.113.7"
	burst := 10

	interval := 100 * time.Millisecond
	lim := New(Every(interval), burst, time.Hour)
	defer lim.Stop()

	tooshort := 10 * time.Millisecond
	shortest := 1 * time.Millisecond

	expected := []bool{true, true, true, true, true, true, true, true, true, true}
	waits := []time.Duration{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	expected = append(expected, false, true, true, false, false, false)
	waits = append(waits, interval, interval, tooshort, tooshort, shortest, shortest)

	for i, exp := range expected {
		if got := lim.Allow(client); got != exp {
			t.Fatalf("iteration %d: expected %v, but got %v", i, exp, got)
		}
		time.Sleep(waits[i])
	}
}

func TestLimiterIndependentClients(t *testing.T) {
	interval := time.Hour
	lim := New(Every(interval), 1, time.Hour)
	defer lim.Stop()

	if !lim.Allow("a") {
		t.Fatal("first request for client a should pass")
	}
	if lim.Allow("a") {
		t.Fatal("second request for client a should be throttled")
	}
	if !lim.Allow("b") {
		t.Fatal("client b must not share client a's bucket")
	}
}
