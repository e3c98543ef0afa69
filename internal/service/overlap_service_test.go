package service_test

import (
	"errors"
	"testing"

	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/testutil"
)

// TestOverlapService_PairOverlap tests direction-agnostic pair lookup.
//
// WHY: Overlap records are stored once per pair but queried in either order;
// the lookup must match both and annotate the stored orientation with fund
// names. A missing pair is "no data", surfaced as ErrOverlapNotFound.
func TestOverlapService_PairOverlap(t *testing.T) {
	t.Run("finds pair in stored order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOverlapService(t, db)

		fundA := testutil.NewFund().WithName("Alpha Fund").Build(t, db)
		fundB := testutil.NewFund().WithName("Beta Fund").Build(t, db)
		testutil.CreateOverlap(t, db, fundA.ID, fundB.ID, 67.0, 3)

		detail, err := svc.PairOverlap(fundA.ID, fundB.ID)
		if err != nil {
			t.Fatalf("PairOverlap() returned unexpected error: %v", err)
		}
		if detail.FundID1 != fundA.ID || detail.FundID2 != fundB.ID {
			t.Errorf("detail ids = (%d, %d), want (%d, %d)", detail.FundID1, detail.FundID2, fundA.ID, fundB.ID)
		}
		if detail.FundName1 != "Alpha Fund" || detail.FundName2 != "Beta Fund" {
			t.Errorf("detail names = (%q, %q)", detail.FundName1, detail.FundName2)
		}
		if detail.OverlapPercentage != 67.0 || detail.OverlappingStocks != 3 {
			t.Errorf("detail = %+v, want 67.0%% / 3 stocks", detail)
		}
	})

	t.Run("finds pair in reversed order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOverlapService(t, db)

		fundA := testutil.NewFund().WithName("Alpha Fund").Build(t, db)
		fundB := testutil.NewFund().WithName("Beta Fund").Build(t, db)
		testutil.CreateOverlap(t, db, fundA.ID, fundB.ID, 67.0, 3)

		detail, err := svc.PairOverlap(fundB.ID, fundA.ID)
		if err != nil {
			t.Fatalf("PairOverlap() returned unexpected error: %v", err)
		}
		// The stored orientation is preserved in the result.
		if detail.FundID1 != fundA.ID || detail.FundID2 != fundB.ID {
			t.Errorf("detail ids = (%d, %d), want stored order (%d, %d)",
				detail.FundID1, detail.FundID2, fundA.ID, fundB.ID)
		}
	})

	t.Run("missing pair returns ErrOverlapNotFound", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOverlapService(t, db)

		fundA := testutil.NewFund().Build(t, db)
		fundB := testutil.NewFund().Build(t, db)

		_, err := svc.PairOverlap(fundA.ID, fundB.ID)
		if !errors.Is(err, apperrors.ErrOverlapNotFound) {
			t.Errorf("Expected ErrOverlapNotFound, got %v", err)
		}
	})

	t.Run("dangling fund reference degrades to Unknown", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOverlapService(t, db)

		fundA := testutil.NewFund().WithName("Alpha Fund").Build(t, db)

		// Simulate a stale record pointing at a deleted fund.
		if _, err := db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
			t.Fatalf("Failed to disable foreign keys: %v", err)
		}
		testutil.CreateOverlap(t, db, fundA.ID, fundA.ID+999, 50.0, 2)

		detail, err := svc.PairOverlap(fundA.ID, fundA.ID+999)
		if err != nil {
			t.Fatalf("PairOverlap() returned unexpected error: %v", err)
		}
		if detail.FundName1 != "Alpha Fund" {
			t.Errorf("FundName1 = %q, want %q", detail.FundName1, "Alpha Fund")
		}
		if detail.FundName2 != "Unknown" {
			t.Errorf("FundName2 = %q, want %q", detail.FundName2, "Unknown")
		}
	})
}

// TestOverlapService_OverlapsForUser tests the per-user overlap listing.
//
// WHY: Only pairs where the user holds both funds qualify. Fewer than two
// distinct held funds short-circuits to an empty result without touching the
// overlap table.
func TestOverlapService_OverlapsForUser(t *testing.T) {
	t.Run("fewer than two funds yields empty slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOverlapService(t, db)

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().Build(t, db)
		testutil.NewInvestment(user.ID, fund.ID).Build(t, db)

		overlaps, err := svc.OverlapsForUser(user.ID)
		if err != nil {
			t.Fatalf("OverlapsForUser() returned unexpected error: %v", err)
		}
		if len(overlaps) != 0 {
			t.Errorf("Expected empty slice, got %d overlaps", len(overlaps))
		}
	})

	t.Run("returns only pairs among held funds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOverlapService(t, db)

		user := testutil.NewUser().Build(t, db)
		fundA := testutil.NewFund().WithName("Alpha Fund").Build(t, db)
		fundB := testutil.NewFund().WithName("Beta Fund").Build(t, db)
		fundC := testutil.NewFund().WithName("Gamma Fund").Build(t, db)
		testutil.NewInvestment(user.ID, fundA.ID).Build(t, db)
		testutil.NewInvestment(user.ID, fundB.ID).Build(t, db)

		testutil.CreateOverlap(t, db, fundA.ID, fundB.ID, 67.0, 3)
		// Pair involving an unheld fund must not appear.
		testutil.CreateOverlap(t, db, fundA.ID, fundC.ID, 88.0, 4)

		overlaps, err := svc.OverlapsForUser(user.ID)
		if err != nil {
			t.Fatalf("OverlapsForUser() returned unexpected error: %v", err)
		}
		if len(overlaps) != 1 {
			t.Fatalf("Expected 1 overlap, got %d", len(overlaps))
		}
		got := overlaps[0]
		if got.FundID1 != fundA.ID || got.FundID2 != fundB.ID {
			t.Errorf("overlap ids = (%d, %d), want (%d, %d)", got.FundID1, got.FundID2, fundA.ID, fundB.ID)
		}
		if got.FundName1 != "Alpha Fund" || got.FundName2 != "Beta Fund" {
			t.Errorf("overlap names = (%q, %q)", got.FundName1, got.FundName2)
		}
	})

	t.Run("duplicate lots in the same fund count once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOverlapService(t, db)

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().Build(t, db)
		testutil.NewInvestment(user.ID, fund.ID).Build(t, db)
		testutil.NewInvestment(user.ID, fund.ID).Build(t, db)

		overlaps, err := svc.OverlapsForUser(user.ID)
		if err != nil {
			t.Fatalf("OverlapsForUser() returned unexpected error: %v", err)
		}
		if len(overlaps) != 0 {
			t.Errorf("Expected empty slice for a single distinct fund, got %d", len(overlaps))
		}
	})
}
