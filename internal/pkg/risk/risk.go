package risk

import "regexp"

// Level buckets a risk score for display
type Level string

const (
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelCritical Level = "CRITICAL"
)

// Result is the outcome of a risk analysis. Recomputable and deterministic;
// never stored as a source of truth.
type Result struct {
	Score int      `json:"score"`
	Level Level    `json:"level"`
	Flags []string `json:"flags"`
}

const baseScore = 10

var ifscRegex = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

// isRepeatedDigit reports whether s is two or more copies of the same
// digit (equivalent to `^(\d)\1+$`, which Go's RE2 engine cannot compile
// because it lacks backreferences).
func isRepeatedDigit(s string) bool {
	if len(s) < 2 {
		return false
	}
	c := s[0]
	if c < '0' || c > '9' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}

// Analyze scores a bank account / IFSC pair for manual-review triage.
// It is an advisory heuristic, not a fraud-detection guarantee: false
// positives and negatives are expected. Total - malformed input scores
// high instead of failing.
func Analyze(accountNumber, ifscCode string) Result {
	score := baseScore
	flags := []string{}

	// Rule 1: suspicious account number patterns ("111111", "1234567890", too short)
	if isRepeatedDigit(accountNumber) || accountNumber == "1234567890" || len(accountNumber) < 8 {
		score += 50
		flags = append(flags, "Pattern Anomaly: Suspicious Account Number sequence")
	}

	// Rule 2: IFSC validity heuristic (4 letters, literal '0', 6 alphanumerics)
	if !ifscRegex.MatchString(ifscCode) {
		score += 30
		flags = append(flags, "Data Integrity: Invalid IFSC Format")
	}

	// Rule 3: restricted region prefix
	if len(ifscCode) >= 4 && ifscCode[:4] == "TEST" {
		score += 20
		flags = append(flags, "Geo-Fencing: Restricted Banking Zone")
	}

	return Result{
		Score: score,
		Level: levelFor(score),
		Flags: flags,
	}
}

func levelFor(score int) Level {
	switch {
	case score >= 80:
		return LevelCritical
	case score >= 50:
		return LevelHigh
	case score >= 30:
		return LevelMedium
	default:
		return LevelLow
	}
}
