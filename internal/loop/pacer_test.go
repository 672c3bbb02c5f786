package loop

import (
	"testing"
	"time"
)

func TestPacerBoundaries(t *testing.T) {
	p := NewPacer(10)
	p.Start(0)

	tests := []struct {
		now  time.Duration
		want time.Duration
	}{
		{0, 100 * time.Millisecond},
		{130 * time.Millisecond, 70 * time.Millisecond},
		{200 * time.Millisecond, 100 * time.Millisecond},
		{450 * time.Millisecond, 50 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := p.Next(tt.now); got != tt.want {
			t.Errorf("Next(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
	if p.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1 (the 400ms boundary was missed)", p.Skipped())
	}
}

func TestPacerNoDrift(t *testing.T) {
	p := NewPacer(60)
	p.Start(0)

	now := time.Duration(0)
	for i := 0; i < 600; i++ {
		now += 3 * time.Millisecond
		now += p.Next(now)
	}
	if want := 600 * p.Interval(); now != want {
		t.Errorf("after 600 frames now = %v, want %v", now, want)
	}
	if p.Skipped() != 0 {
		t.Errorf("Skipped() = %d, want 0", p.Skipped())
	}
}

func TestPacerOffsetStart(t *testing.T) {
	p := NewPacer(50)
	p.Start(time.Second)

	if got := p.Next(time.Second + 5*time.Millisecond); got != 15*time.Millisecond {
		t.Errorf("Next() = %v, want 15ms", got)
	}
}

func TestPacerDefaultRate(t *testing.T) {
	if got := NewPacer(0).Interval(); got != time.Second/60 {
		t.Errorf("Interval() = %v, want %v", got, time.Second/60)
	}
}
