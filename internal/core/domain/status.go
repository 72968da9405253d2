package domain

// TicketStatus is the verification status of a bank-linking application.
// `not_submitted` is never persisted - it is the absent-record state shown
// to students before their first submission.
type TicketStatus string

const (
	StatusPendingInstitute TicketStatus = "pending_institute"
	StatusPendingAdmin     TicketStatus = "pending_admin"
	StatusVerified         TicketStatus = "verified"
	StatusRejected         TicketStatus = "rejected"
)

// legacyStatusOpen is an old spelling of pending_institute that still exists
// in rows written before the status migration. Normalized on every read,
// never written back.
const legacyStatusOpen = "open"

// NormalizeStatus collapses legacy status spellings into the canonical enum.
// Unknown values are returned unchanged so they surface in validation.
func NormalizeStatus(raw string) TicketStatus {
	if raw == legacyStatusOpen {
		return StatusPendingInstitute
	}
	return TicketStatus(raw)
}

// IsTerminal reports whether no further reviewer action is possible
func (s TicketStatus) IsTerminal() bool {
	return s == StatusVerified || s == StatusRejected
}

// Valid reports whether s is a persistable status
func (s TicketStatus) Valid() bool {
	switch s {
	case StatusPendingInstitute, StatusPendingAdmin, StatusVerified, StatusRejected:
		return true
	}
	return false
}

// DecidableStatus returns the source status a reviewer role is authorized to
// decide from. The two reviewer stages operate on disjoint source states, so
// a ticket has exactly one authorized mutator at any instant.
func DecidableStatus(role Role) (TicketStatus, bool) {
	switch role {
	case RoleInstitution:
		return StatusPendingInstitute, true
	case RoleAdmin:
		return StatusPendingAdmin, true
	}
	return "", false
}

// NextStatus resolves the target status for a decision taken from the given
// source status. Returns false when the transition is not in the table.
func NextStatus(from TicketStatus, outcome DecisionOutcome) (TicketStatus, bool) {
	switch outcome {
	case OutcomeReject:
		if !from.IsTerminal() {
			return StatusRejected, true
		}
	case OutcomeVerify:
		switch from {
		case StatusPendingInstitute:
			return StatusPendingAdmin, true
		case StatusPendingAdmin:
			return StatusVerified, true
		}
	}
	return "", false
}
