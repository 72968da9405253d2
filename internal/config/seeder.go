package config

import (
	"log"

	"dbt-setu/internal/adapters/persistence/models"
	"dbt-setu/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminProfile(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminProfile seeds the default super-admin account.
// Development convenience only; production admins are provisioned manually.
func (s *Seeder) seedAdminProfile() error {
	var count int64
	s.db.Model(&models.Profile{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.Profile{
		FullName:   "Portal Administrator",
		Mobile:     "9999999999",
		Email:      "admin@dbtsetu.gov.in",
		Password:   hashedPassword,
		Role:       "admin",
		IsApproved: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("✅ Default admin profile created (admin@dbtsetu.gov.in)")
	return nil
}
