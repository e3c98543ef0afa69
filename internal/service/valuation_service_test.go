package service_test

import (
	"testing"

	"github.com/investdash/investment-dashboard-backend/internal/testutil"
)

// TestValuationService_InvestmentSummary tests the current/initial value pair.
//
// WHY: These two numbers anchor the dashboard. Current value must track the
// latest NAV per fund while initial value stays fixed at the invested
// amounts, and a user with no lots must read as (0, 0) rather than an error.
func TestValuationService_InvestmentSummary(t *testing.T) {
	t.Run("returns zeros when user has no investments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValuationService(t, db)
		user := testutil.NewUser().Build(t, db)

		current, initial, err := svc.InvestmentSummary(user.ID)
		if err != nil {
			t.Fatalf("InvestmentSummary() returned unexpected error: %v", err)
		}
		if current != 0 || initial != 0 {
			t.Errorf("Expected (0, 0), got (%v, %v)", current, initial)
		}
	})

	t.Run("values lots at latest NAV", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValuationService(t, db)

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().WithNav(110.0).Build(t, db)
		testutil.NewInvestment(user.ID, fund.ID).
			WithAmount(100000).
			WithNavAtInvestment(100).
			Build(t, db)

		current, initial, err := svc.InvestmentSummary(user.ID)
		if err != nil {
			t.Fatalf("InvestmentSummary() returned unexpected error: %v", err)
		}
		if initial != 100000 {
			t.Errorf("initial = %v, want 100000", initial)
		}
		// 1000 units at NAV 110.
		if current != 110000 {
			t.Errorf("current = %v, want 110000", current)
		}
	})

	t.Run("sums across funds and lots", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValuationService(t, db)

		user := testutil.NewUser().Build(t, db)
		fundA := testutil.NewFund().WithNav(120.0).Build(t, db)
		fundB := testutil.NewFund().WithNav(90.0).Build(t, db)
		testutil.NewInvestment(user.ID, fundA.ID).WithAmount(50000).WithNavAtInvestment(100).Build(t, db)
		testutil.NewInvestment(user.ID, fundA.ID).WithAmount(25000).WithNavAtInvestment(125).Build(t, db)
		testutil.NewInvestment(user.ID, fundB.ID).WithAmount(30000).WithNavAtInvestment(100).Build(t, db)

		current, initial, err := svc.InvestmentSummary(user.ID)
		if err != nil {
			t.Fatalf("InvestmentSummary() returned unexpected error: %v", err)
		}
		if initial != 105000 {
			t.Errorf("initial = %v, want 105000", initial)
		}
		// 500*120 + 200*120 + 300*90 = 60000 + 24000 + 27000.
		if current != 111000 {
			t.Errorf("current = %v, want 111000", current)
		}
	})
}

// TestValuationService_PerformanceExtremes tests best/worst lot selection.
//
// WHY: Extremes are computed per lot, not per fund, so the same fund bought
// at two different NAVs can legitimately occupy both slots. An empty
// portfolio must produce the id=0 / "N/A" / 0.0 sentinel on both sides.
func TestValuationService_PerformanceExtremes(t *testing.T) {
	t.Run("returns sentinels when user has no investments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValuationService(t, db)
		user := testutil.NewUser().Build(t, db)

		best, worst, err := svc.PerformanceExtremes(user.ID)
		if err != nil {
			t.Fatalf("PerformanceExtremes() returned unexpected error: %v", err)
		}
		if best.ID != 0 || best.Name != "N/A" || best.ReturnPercentage != 0.0 {
			t.Errorf("best = %+v, want sentinel", best)
		}
		if worst.ID != 0 || worst.Name != "N/A" || worst.ReturnPercentage != 0.0 {
			t.Errorf("worst = %+v, want sentinel", worst)
		}
	})

	t.Run("single lot is both best and worst", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValuationService(t, db)

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().WithName("Solo Fund").WithNav(105.0).Build(t, db)
		testutil.NewInvestment(user.ID, fund.ID).WithNavAtInvestment(100).Build(t, db)

		best, worst, err := svc.PerformanceExtremes(user.ID)
		if err != nil {
			t.Fatalf("PerformanceExtremes() returned unexpected error: %v", err)
		}
		if best.ID != fund.ID || best.ReturnPercentage != 5.0 {
			t.Errorf("best = %+v, want fund %d at 5.0%%", best, fund.ID)
		}
		if worst.ID != fund.ID || worst.ReturnPercentage != 5.0 {
			t.Errorf("worst = %+v, want fund %d at 5.0%%", worst, fund.ID)
		}
	})

	t.Run("picks best and worst across funds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValuationService(t, db)

		user := testutil.NewUser().Build(t, db)
		gainer := testutil.NewFund().WithName("Gainer").WithNav(110.0).Build(t, db)
		loser := testutil.NewFund().WithName("Loser").WithNav(95.0).Build(t, db)
		flat := testutil.NewFund().WithName("Flat").WithNav(100.0).Build(t, db)
		testutil.NewInvestment(user.ID, gainer.ID).WithNavAtInvestment(100).Build(t, db)
		testutil.NewInvestment(user.ID, loser.ID).WithNavAtInvestment(100).Build(t, db)
		testutil.NewInvestment(user.ID, flat.ID).WithNavAtInvestment(100).Build(t, db)

		best, worst, err := svc.PerformanceExtremes(user.ID)
		if err != nil {
			t.Fatalf("PerformanceExtremes() returned unexpected error: %v", err)
		}
		if best.ID != gainer.ID || best.Name != "Gainer" || best.ReturnPercentage != 10.0 {
			t.Errorf("best = %+v, want Gainer at 10.0%%", best)
		}
		if worst.ID != loser.ID || worst.Name != "Loser" || worst.ReturnPercentage != -5.0 {
			t.Errorf("worst = %+v, want Loser at -5.0%%", worst)
		}
	})

	t.Run("same fund can be both extremes via different lots", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestValuationService(t, db)

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().WithName("Volatile").WithNav(108.0).Build(t, db)
		// +20% lot and -10% lot on the same fund.
		testutil.NewInvestment(user.ID, fund.ID).WithNavAtInvestment(90).Build(t, db)
		testutil.NewInvestment(user.ID, fund.ID).WithNavAtInvestment(120).Build(t, db)

		best, worst, err := svc.PerformanceExtremes(user.ID)
		if err != nil {
			t.Fatalf("PerformanceExtremes() returned unexpected error: %v", err)
		}
		if best.ID != fund.ID || best.ReturnPercentage != 20.0 {
			t.Errorf("best = %+v, want Volatile at 20.0%%", best)
		}
		if worst.ID != fund.ID || worst.ReturnPercentage != -10.0 {
			t.Errorf("worst = %+v, want Volatile at -10.0%%", worst)
		}
	})
}
