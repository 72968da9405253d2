package services

import (
	"strings"
	"testing"
)

func TestGetBotReply(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{
			name:     "greeting",
			message:  "Hello",
			contains: "helpdesk assistant",
		},
		{
			name:     "greeting with trailing text",
			message:  "hi there",
			contains: "helpdesk assistant",
		},
		{
			name:     "dbt vs aadhaar linked",
			message:  "what is the difference between aadhaar linked and dbt enabled",
			contains: "NPCI mapper",
		},
		{
			name:     "seeding question",
			message:  "How do I make my account DBT enabled at the bank?",
			contains: "consent form",
		},
		{
			name:     "scholarship not credited",
			message:  "my scholarship payment was not credited to my account",
			contains: "verification status",
		},
		{
			name:     "ifsc lookup",
			message:  "where can I find my IFSC code?",
			contains: "passbook",
		},
		{
			name:     "no match falls back to helpline",
			message:  "zzzz qqqq xyzzy",
			contains: "1800-11-8004",
		},
		{
			name:     "empty message falls back",
			message:  "   ",
			contains: "1800-11-8004",
		},
		{
			name:     "short words only falls back",
			message:  "a an the is",
			contains: "1800-11-8004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := GetBotReply(tt.message)
			if !strings.Contains(reply, tt.contains) {
				t.Errorf("GetBotReply(%q) = %q, want substring %q", tt.message, reply, tt.contains)
			}
		})
	}
}

func TestGetBotReplyDeterministic(t *testing.T) {
	msg := "why was my scholarship payment not credited"
	first := GetBotReply(msg)
	for i := 0; i < 5; i++ {
		if got := GetBotReply(msg); got != first {
			t.Fatalf("non-deterministic reply on run %d", i)
		}
	}
}
