package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & Profile Tables
// ============================================================

// Profile represents the profiles table (all portal roles)
type Profile struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	FullName      string         `gorm:"size:100;not null" json:"full_name"`
	Mobile        string         `gorm:"uniqueIndex;size:15;not null" json:"mobile"`
	Email         string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password      string         `gorm:"size:255;not null" json:"-"`
	Role          string         `gorm:"size:20;index;default:'student'" json:"role"`
	Aadhaar       string         `gorm:"size:12" json:"-"`
	State         string         `gorm:"size:50" json:"state"`
	District      string         `gorm:"size:50" json:"district"`
	InstituteName string         `gorm:"size:150" json:"institute_name"`
	IsApproved    bool           `gorm:"default:false" json:"is_approved"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

// ProfileResponse DTO - aadhaar is exposed masked only
type ProfileResponse struct {
	ID            uint      `json:"id"`
	FullName      string    `json:"full_name"`
	Mobile        string    `json:"mobile"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	AadhaarMasked string    `json:"aadhaar_masked,omitempty"`
	State         string    `json:"state,omitempty"`
	District      string    `json:"district,omitempty"`
	InstituteName string    `json:"institute_name,omitempty"`
	IsApproved    bool      `json:"is_approved"`
	CreatedAt     time.Time `json:"created_at"`
}

// MaskAadhaar hides all but the last four digits
func MaskAadhaar(aadhaar string) string {
	if len(aadhaar) < 4 {
		return ""
	}
	return "XXXX-XXXX-" + aadhaar[len(aadhaar)-4:]
}

func (p *Profile) ToResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:            p.ID,
		FullName:      p.FullName,
		Mobile:        p.Mobile,
		Email:         p.Email,
		Role:          p.Role,
		AadhaarMasked: MaskAadhaar(p.Aadhaar),
		State:         p.State,
		District:      p.District,
		InstituteName: p.InstituteName,
		IsApproved:    p.IsApproved,
		CreatedAt:     p.CreatedAt,
	}
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ProfileID uint       `gorm:"index;not null" json:"profile_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	Profile   Profile    `gorm:"foreignKey:ProfileID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Verification Tickets
// ============================================================

// Ticket represents the tickets table - one bank-linking verification
// application moving through the two-stage review pipeline
type Ticket struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TrackingNo  string         `gorm:"uniqueIndex;size:36;not null" json:"tracking_no"`
	ProfileID   uint           `gorm:"index;not null" json:"profile_id"`
	UserName    string         `gorm:"size:100" json:"user_name"`
	Type        string         `gorm:"size:30;default:'verification'" json:"type"`
	Description string         `gorm:"type:text" json:"description"`
	Status      string         `gorm:"size:30;index;not null" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Profile     Profile        `gorm:"foreignKey:ProfileID" json:"-"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// ============================================================
// Events / Notices
// ============================================================

// Event represents the events table (awareness camps and notices posted by
// institutions and panchayats)
type Event struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	EventDate   time.Time      `gorm:"not null" json:"event_date"`
	Venue       string         `gorm:"size:200" json:"venue"`
	Status      string         `gorm:"size:20;default:'scheduled'" json:"status"`
	Description string         `gorm:"type:text" json:"description"`
	PostedBy    string         `gorm:"size:150;index" json:"posted_by"`
	OwnerID     uint           `gorm:"index;not null" json:"owner_id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

// ============================================================
// Volunteers (DBT Sahayak internship)
// ============================================================

// Volunteer represents the volunteers table
type Volunteer struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	FullName            string         `gorm:"size:100;not null" json:"full_name"`
	Age                 int            `gorm:"not null" json:"age"`
	Mobile              string         `gorm:"size:15;not null" json:"mobile"`
	Email               string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	State               string         `gorm:"size:50" json:"state"`
	District            string         `gorm:"size:50" json:"district"`
	DurationMonths      int            `gorm:"not null" json:"duration_months"`
	Status              string         `gorm:"size:20;default:'active'" json:"status"`
	StartDate           time.Time      `gorm:"not null" json:"start_date"`
	CertificateIssuedAt *time.Time     `json:"certificate_issued_at"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}

// ============================================================
// Migration
// ============================================================

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Profile{},
		&RefreshToken{},
		&Ticket{},
		&Event{},
		&Volunteer{},
	)
}
