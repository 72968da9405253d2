package risk

import (
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		account   string
		ifsc      string
		wantScore int
		wantLevel Level
		wantFlags []string
	}{
		{
			name:      "clean input scores base only",
			account:   "12345678",
			ifsc:      "SBIN0001234",
			wantScore: 10,
			wantLevel: LevelLow,
			wantFlags: []string{},
		},
		{
			name:      "repeated digit account",
			account:   "1111111111",
			ifsc:      "SBIN0001234",
			wantScore: 60,
			wantLevel: LevelHigh,
			wantFlags: []string{"Pattern Anomaly: Suspicious Account Number sequence"},
		},
		{
			name:      "sequence account with bad test-zone ifsc",
			account:   "1234567890",
			ifsc:      "TESTBAD123",
			wantScore: 110,
			wantLevel: LevelCritical,
			wantFlags: []string{
				"Pattern Anomaly: Suspicious Account Number sequence",
				"Data Integrity: Invalid IFSC Format",
				"Geo-Fencing: Restricted Banking Zone",
			},
		},
		{
			name:      "short account",
			account:   "1234567",
			ifsc:      "SBIN0001234",
			wantScore: 60,
			wantLevel: LevelHigh,
			wantFlags: []string{"Pattern Anomaly: Suspicious Account Number sequence"},
		},
		{
			name:      "invalid ifsc only",
			account:   "98765432109",
			ifsc:      "sbin0001234",
			wantScore: 40,
			wantLevel: LevelMedium,
			wantFlags: []string{"Data Integrity: Invalid IFSC Format"},
		},
		{
			name:      "test prefix with otherwise valid format",
			account:   "98765432109",
			ifsc:      "TEST0001234",
			wantScore: 30,
			wantLevel: LevelMedium,
			wantFlags: []string{"Geo-Fencing: Restricted Banking Zone"},
		},
		{
			name:      "empty input never panics",
			account:   "",
			ifsc:      "",
			wantScore: 90,
			wantLevel: LevelCritical,
			wantFlags: []string{
				"Pattern Anomaly: Suspicious Account Number sequence",
				"Data Integrity: Invalid IFSC Format",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.account, tt.ifsc)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("level = %q, want %q", got.Level, tt.wantLevel)
			}
			if !reflect.DeepEqual(got.Flags, tt.wantFlags) {
				t.Errorf("flags = %v, want %v", got.Flags, tt.wantFlags)
			}
		})
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	first := Analyze("1234567890", "TESTBAD123")
	for i := 0; i < 10; i++ {
		again := Analyze("1234567890", "TESTBAD123")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}
