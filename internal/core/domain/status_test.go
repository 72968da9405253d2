package domain

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want TicketStatus
	}{
		{"open", StatusPendingInstitute},
		{"pending_institute", StatusPendingInstitute},
		{"pending_admin", StatusPendingAdmin},
		{"verified", StatusVerified},
		{"rejected", StatusRejected},
		{"garbage", TicketStatus("garbage")},
	}
	for _, tt := range tests {
		if got := NormalizeStatus(tt.raw); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDecidableStatus(t *testing.T) {
	if s, ok := DecidableStatus(RoleInstitution); !ok || s != StatusPendingInstitute {
		t.Errorf("institution should decide from pending_institute, got %q ok=%v", s, ok)
	}
	if s, ok := DecidableStatus(RoleAdmin); !ok || s != StatusPendingAdmin {
		t.Errorf("admin should decide from pending_admin, got %q ok=%v", s, ok)
	}
	for _, role := range []Role{RoleStudent, RolePanchayat} {
		if _, ok := DecidableStatus(role); ok {
			t.Errorf("role %q must not have a decidable status", role)
		}
	}
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    TicketStatus
		outcome DecisionOutcome
		want    TicketStatus
		ok      bool
	}{
		{"institute verify", StatusPendingInstitute, OutcomeVerify, StatusPendingAdmin, true},
		{"admin verify", StatusPendingAdmin, OutcomeVerify, StatusVerified, true},
		{"institute reject", StatusPendingInstitute, OutcomeReject, StatusRejected, true},
		{"admin reject", StatusPendingAdmin, OutcomeReject, StatusRejected, true},
		{"verify from verified", StatusVerified, OutcomeVerify, "", false},
		{"reject from verified", StatusVerified, OutcomeReject, "", false},
		{"reject from rejected", StatusRejected, OutcomeReject, "", false},
		{"verify from rejected", StatusRejected, OutcomeVerify, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextStatus(tt.from, tt.outcome)
			if ok != tt.ok || got != tt.want {
				t.Errorf("NextStatus(%q, %q) = (%q, %v), want (%q, %v)",
					tt.from, tt.outcome, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []TicketStatus{StatusPendingInstitute, StatusPendingAdmin} {
		if s.IsTerminal() {
			t.Errorf("%q should not be terminal", s)
		}
	}
	for _, s := range []TicketStatus{StatusVerified, StatusRejected} {
		if !s.IsTerminal() {
			t.Errorf("%q should be terminal", s)
		}
	}
}
