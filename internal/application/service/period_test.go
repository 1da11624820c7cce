package service

import (
	"testing"
	"time"

	"github.com/sellbridge/consign-api/internal/domain/entity"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("never paid covers all history", func(t *testing.T) {
		p := ResolvePeriod(nil, now)
		if !p.Start.IsZero() {
			t.Errorf("Start = %v, want zero time", p.Start)
		}
		if !p.End.Equal(now) {
			t.Errorf("End = %v, want %v", p.End, now)
		}
	})

	t.Run("starts at last payout", func(t *testing.T) {
		paidAt := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
		p := ResolvePeriod(&entity.Payout{PaidAt: paidAt}, now)
		if !p.Start.Equal(paidAt) {
			t.Errorf("Start = %v, want %v", p.Start, paidAt)
		}
		if !p.End.Equal(now) {
			t.Errorf("End = %v, want %v", p.End, now)
		}
	})
}

func TestPeriodContains(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	p := Period{Start: start, End: end}

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		// A sale stamped exactly at the previous payout was already
		// reconciled; the boundary belongs to the earlier period.
		{"at start is excluded", start, false},
		{"just after start", start.Add(time.Nanosecond), true},
		{"inside", start.AddDate(0, 0, 7), true},
		{"at end is included", end, true},
		{"after end", end.Add(time.Nanosecond), false},
		{"before start", start.Add(-time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}
