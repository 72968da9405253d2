package services

import (
	"testing"
	"time"

	"dbt-setu/internal/adapters/persistence/models"
)

func TestComputeProgress(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		start       time.Time
		months      int
		wantPercent int
		wantLeft    int
		wantDone    bool
	}{
		{
			name:        "halfway through one month",
			start:       now.AddDate(0, 0, -15),
			months:      1,
			wantPercent: 50,
			wantLeft:    15,
			wantDone:    false,
		},
		{
			name:        "just started",
			start:       now,
			months:      3,
			wantPercent: 0,
			wantLeft:    90,
			wantDone:    false,
		},
		{
			name:        "exactly complete",
			start:       now.AddDate(0, 0, -30),
			months:      1,
			wantPercent: 100,
			wantLeft:    0,
			wantDone:    true,
		},
		{
			name:        "overshot caps at 100",
			start:       now.AddDate(0, 0, -200),
			months:      2,
			wantPercent: 100,
			wantLeft:    0,
			wantDone:    true,
		},
		{
			name:        "future start clamps to zero",
			start:       now.AddDate(0, 0, 5),
			months:      1,
			wantPercent: 0,
			wantLeft:    30,
			wantDone:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &models.Volunteer{
				StartDate:      tt.start,
				DurationMonths: tt.months,
			}
			p := ComputeProgress(v, now)
			if p.PercentComplete != tt.wantPercent {
				t.Errorf("PercentComplete = %d, want %d", p.PercentComplete, tt.wantPercent)
			}
			if p.DaysLeft != tt.wantLeft {
				t.Errorf("DaysLeft = %d, want %d", p.DaysLeft, tt.wantLeft)
			}
			if p.IsComplete != tt.wantDone {
				t.Errorf("IsComplete = %t, want %t", p.IsComplete, tt.wantDone)
			}
		})
	}
}
