package domain

import "time"

// Role represents user role in the system
type Role string

const (
	RoleStudent     Role = "student"
	RoleInstitution Role = "institution"
	RolePanchayat   Role = "panchayat"
	RoleAdmin       Role = "admin"
)

// Valid reports whether r is a known portal role
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstitution, RolePanchayat, RoleAdmin:
		return true
	}
	return false
}

// IsReviewer reports whether the role can decide verification tickets
func (r Role) IsReviewer() bool {
	return r == RoleInstitution || r == RoleAdmin
}

// RequiresApproval reports whether accounts of this role need admin approval
// before activation (institutes and panchayats register publicly)
func (r Role) RequiresApproval() bool {
	return r == RoleInstitution || r == RolePanchayat
}

// Profile represents a portal user in the domain layer
type Profile struct {
	ID            uint
	FullName      string
	Mobile        string
	Email         string
	Password      string // Hashed
	Role          Role
	Aadhaar       string
	State         string
	District      string
	InstituteName string
	IsApproved    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RefreshToken represents a refresh token in the domain
type RefreshToken struct {
	ID        uint
	ProfileID uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// DecisionOutcome is a reviewer's verdict on a verification ticket
type DecisionOutcome string

const (
	OutcomeVerify DecisionOutcome = "verify"
	OutcomeReject DecisionOutcome = "reject"
)
