package service_test

import (
	"testing"

	"github.com/investdash/investment-dashboard-backend/internal/repository"
	"github.com/investdash/investment-dashboard-backend/internal/testutil"
)

// TestNavSyncService_Sync tests the latest-NAV reconciliation pass.
//
// WHY: Bulk history ingestion leaves fund.nav stale. Sync must copy each
// fund's newest observation into the fund table, skip funds already
// consistent, and report only the funds it actually changed.
func TestNavSyncService_Sync(t *testing.T) {
	t.Run("no history means nothing to sync", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestNavSyncService(t, db)
		testutil.NewFund().WithNav(100.0).Build(t, db)

		updated, err := svc.Sync()
		if err != nil {
			t.Fatalf("Sync() returned unexpected error: %v", err)
		}
		if updated != 0 {
			t.Errorf("updated = %d, want 0", updated)
		}
	})

	t.Run("refreshes stale funds from newest observation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestNavSyncService(t, db)

		stale := testutil.NewFund().WithNav(100.0).Build(t, db)
		consistent := testutil.NewFund().WithNav(120.0).Build(t, db)

		testutil.CreateNAVPoint(t, db, stale.ID, "2023-06-01", 105.0)
		testutil.CreateNAVPoint(t, db, stale.ID, "2023-06-02", 107.5)
		testutil.CreateNAVPoint(t, db, consistent.ID, "2023-06-02", 120.0)

		updated, err := svc.Sync()
		if err != nil {
			t.Fatalf("Sync() returned unexpected error: %v", err)
		}
		if updated != 1 {
			t.Errorf("updated = %d, want 1", updated)
		}

		fundRepo := repository.NewFundRepository(db)
		navs, err := fundRepo.GetLatestNavs([]int64{stale.ID, consistent.ID})
		if err != nil {
			t.Fatalf("GetLatestNavs() returned unexpected error: %v", err)
		}
		if navs[stale.ID] != 107.5 {
			t.Errorf("stale fund nav = %v, want 107.5", navs[stale.ID])
		}
		if navs[consistent.ID] != 120.0 {
			t.Errorf("consistent fund nav = %v, want 120.0", navs[consistent.ID])
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestNavSyncService(t, db)

		fund := testutil.NewFund().WithNav(100.0).Build(t, db)
		testutil.CreateNAVPoint(t, db, fund.ID, "2023-06-02", 111.0)

		if _, err := svc.Sync(); err != nil {
			t.Fatalf("first Sync() returned unexpected error: %v", err)
		}
		updated, err := svc.Sync()
		if err != nil {
			t.Fatalf("second Sync() returned unexpected error: %v", err)
		}
		if updated != 0 {
			t.Errorf("updated = %d, want 0 on second run", updated)
		}
	})
}
