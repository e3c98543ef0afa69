package service

import (
	"log"

	"github.com/investdash/investment-dashboard-backend/internal/repository"
)

// NavSyncService aligns the fund table's latest-NAV column with the newest
// nav_history observation per fund. Bulk ingestion and re-seeding write
// history without touching the fund table, so the column can go stale; the
// nightly cron job and the manual trigger endpoint both run Sync.
type NavSyncService struct {
	fundRepo *repository.FundRepository
	navRepo  *repository.NAVRepository
}

// NewNavSyncService creates a new NavSyncService with the provided repository dependencies.
func NewNavSyncService(fundRepo *repository.FundRepository, navRepo *repository.NAVRepository) *NavSyncService {
	return &NavSyncService{
		fundRepo: fundRepo,
		navRepo:  navRepo,
	}
}

// Sync refreshes fund.nav from the newest history point of every fund that
// has one, and returns how many funds were actually changed.
func (s *NavSyncService) Sync() (int, error) {
	newest, err := s.navRepo.GetNewestPoints()
	if err != nil {
		return 0, err
	}
	if len(newest) == 0 {
		return 0, nil
	}

	fundIDs := make([]int64, 0, len(newest))
	for fundID := range newest {
		fundIDs = append(fundIDs, fundID)
	}

	current, err := s.fundRepo.GetLatestNavs(fundIDs)
	if err != nil {
		return 0, err
	}

	updated := 0
	for fundID, point := range newest {
		nav, ok := current[fundID]
		if !ok || nav == point.Nav {
			// Dangling history rows and already-consistent funds are skipped.
			continue
		}
		if err := s.fundRepo.UpdateNav(fundID, point.Nav); err != nil {
			return updated, err
		}
		updated++
	}

	return updated, nil
}

// Run executes Sync and logs the outcome; the cron scheduler calls this.
func (s *NavSyncService) Run() {
	updated, err := s.Sync()
	if err != nil {
		log.Printf("nav sync failed: %v", err)
		return
	}
	log.Printf("nav sync complete: %d fund(s) updated", updated)
}
