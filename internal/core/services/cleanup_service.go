package services

import (
	"context"
	"log"
	"time"

	"dbt-setu/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CleanupService runs scheduled maintenance jobs. Currently a nightly purge
// of expired refresh tokens so the sessions table does not grow unbounded.
type CleanupService struct {
	tokenRepo repositories.RefreshTokenRepository
	cron      *cron.Cron
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(tokenRepo repositories.RefreshTokenRepository) *CleanupService {
	return &CleanupService{
		tokenRepo: tokenRepo,
		cron:      cron.New(),
	}
}

// Start registers and starts the scheduled jobs
func (s *CleanupService) Start() error {
	// 03:00 every day, server local time
	if _, err := s.cron.AddFunc("0 3 * * *", s.purgeExpiredTokens); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cleanup scheduler started (token purge daily at 03:00)")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *CleanupService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cleanup scheduler stopped")
}

func (s *CleanupService) purgeExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.tokenRepo.DeleteExpired(ctx)
	if err != nil {
		log.Printf("⚠️ Expired token purge failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("🧹 Purged %d expired refresh tokens", deleted)
	}
}
