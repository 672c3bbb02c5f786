package core

import "testing"

func TestManualClock(t *testing.T) {
	var c ManualClock
	if c.NowMillis() != 0 {
		t.Fatalf("zero clock should start at 0, got %d", c.NowMillis())
	}
	c.Advance(16)
	c.Advance(17)
	if c.NowMillis() != 33 {
		t.Errorf("NowMillis() = %d, expected 33", c.NowMillis())
	}
	c.Set(500)
	if c.NowMillis() != 500 {
		t.Errorf("NowMillis() after Set = %d, expected 500", c.NowMillis())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.NowMillis()
	b := c.NowMillis()
	if a < 0 || b < a {
		t.Errorf("system clock went backwards: %d then %d", a, b)
	}
}
