package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/investdash/investment-dashboard-backend/internal/service"
	"github.com/investdash/investment-dashboard-backend/internal/testutil"
)

// TestPerformanceService_HistoricalPerformance tests the downsampled
// portfolio value curve.
//
// WHY: The curve drives every chart period. The per-date valuation must sum
// units times that day's NAV for lots already purchased, skip funds without
// an observation that day, and hand the result to the period's sampling
// policy unchanged.
func TestPerformanceService_HistoricalPerformance(t *testing.T) {
	now := time.Date(2023, time.January, 10, 12, 0, 0, 0, time.UTC)

	t.Run("values lots at each observed date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)
		svc.Now = func() time.Time { return now }

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().Build(t, db)
		// 1000 units purchased before the window opens.
		testutil.NewInvestment(user.ID, fund.ID).
			WithDate("2023-01-01").
			WithAmount(100000).
			WithNavAtInvestment(100).
			Build(t, db)

		// NAV rises by 1 per day: Jan 1 -> 100, Jan 10 -> 109.
		for i := 0; i < 10; i++ {
			date := fmt.Sprintf("2023-01-%02d", i+1)
			testutil.CreateNAVPoint(t, db, fund.ID, date, float64(100+i))
		}

		points, err := svc.HistoricalPerformance(user.ID, service.Period1M)
		if err != nil {
			t.Fatalf("HistoricalPerformance() returned unexpected error: %v", err)
		}
		if len(points) != 10 {
			t.Fatalf("Expected 10 points, got %d", len(points))
		}
		if points[0].Date != "01 Jan" || points[0].Value != 100000 {
			t.Errorf("points[0] = %+v, want (01 Jan, 100000)", points[0])
		}
		if points[4].Date != "05 Jan" || points[4].Value != 104000 {
			t.Errorf("points[4] = %+v, want (05 Jan, 104000)", points[4])
		}
		if points[9].Date != "10 Jan" || points[9].Value != 109000 {
			t.Errorf("points[9] = %+v, want (10 Jan, 109000)", points[9])
		}
	})

	t.Run("3M period decimates by index", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)
		svc.Now = func() time.Time { return now }

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().Build(t, db)
		testutil.NewInvestment(user.ID, fund.ID).
			WithDate("2023-01-01").
			WithAmount(100000).
			WithNavAtInvestment(100).
			Build(t, db)

		for i := 0; i < 10; i++ {
			date := fmt.Sprintf("2023-01-%02d", i+1)
			testutil.CreateNAVPoint(t, db, fund.ID, date, float64(100+i))
		}

		points, err := svc.HistoricalPerformance(user.ID, service.Period3M)
		if err != nil {
			t.Fatalf("HistoricalPerformance() returned unexpected error: %v", err)
		}
		// Indices 0, 2, 4, 6, 8 survive: Jan 1, 3, 5, 7, 9.
		if len(points) != 5 {
			t.Fatalf("Expected 5 points, got %d", len(points))
		}
		wantDates := []string{"01 Jan", "03 Jan", "05 Jan", "07 Jan", "09 Jan"}
		for i, want := range wantDates {
			if points[i].Date != want {
				t.Errorf("points[%d].Date = %q, want %q", i, points[i].Date, want)
			}
		}
	})

	t.Run("lots contribute nothing before their purchase date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)
		svc.Now = func() time.Time { return now }

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().Build(t, db)
		// Purchased mid-window.
		testutil.NewInvestment(user.ID, fund.ID).
			WithDate("2023-01-06").
			WithAmount(100000).
			WithNavAtInvestment(100).
			Build(t, db)

		for i := 0; i < 10; i++ {
			date := fmt.Sprintf("2023-01-%02d", i+1)
			testutil.CreateNAVPoint(t, db, fund.ID, date, 100.0)
		}

		points, err := svc.HistoricalPerformance(user.ID, service.Period1M)
		if err != nil {
			t.Fatalf("HistoricalPerformance() returned unexpected error: %v", err)
		}
		if len(points) != 10 {
			t.Fatalf("Expected 10 points, got %d", len(points))
		}
		for i := 0; i < 5; i++ {
			if points[i].Value != 0 {
				t.Errorf("points[%d].Value = %v, want 0 before purchase date", i, points[i].Value)
			}
		}
		for i := 5; i < 10; i++ {
			if points[i].Value != 100000 {
				t.Errorf("points[%d].Value = %v, want 100000 from purchase date on", i, points[i].Value)
			}
		}
	})

	t.Run("missing NAV days contribute nothing for that fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)
		svc.Now = func() time.Time { return now }

		user := testutil.NewUser().Build(t, db)
		fundA := testutil.NewFund().Build(t, db)
		fundB := testutil.NewFund().Build(t, db)
		testutil.NewInvestment(user.ID, fundA.ID).
			WithDate("2023-01-01").WithAmount(100000).WithNavAtInvestment(100).Build(t, db)
		testutil.NewInvestment(user.ID, fundB.ID).
			WithDate("2023-01-01").WithAmount(50000).WithNavAtInvestment(100).Build(t, db)

		// Fund A observed both days; fund B only on the 2nd.
		testutil.CreateNAVPoint(t, db, fundA.ID, "2023-01-09", 100.0)
		testutil.CreateNAVPoint(t, db, fundA.ID, "2023-01-10", 100.0)
		testutil.CreateNAVPoint(t, db, fundB.ID, "2023-01-10", 100.0)

		points, err := svc.HistoricalPerformance(user.ID, service.Period1M)
		if err != nil {
			t.Fatalf("HistoricalPerformance() returned unexpected error: %v", err)
		}
		if len(points) != 2 {
			t.Fatalf("Expected 2 points, got %d", len(points))
		}
		if points[0].Value != 100000 {
			t.Errorf("points[0].Value = %v, want 100000 (fund B unobserved)", points[0].Value)
		}
		if points[1].Value != 150000 {
			t.Errorf("points[1].Value = %v, want 150000", points[1].Value)
		}
	})

	t.Run("no NAV data in window returns empty series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)
		svc.Now = func() time.Time { return now }

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().Build(t, db)
		testutil.NewInvestment(user.ID, fund.ID).WithDate("2023-01-01").Build(t, db)

		// Observation far outside the 30-day window.
		testutil.CreateNAVPoint(t, db, fund.ID, "2021-06-01", 100.0)

		points, err := svc.HistoricalPerformance(user.ID, service.Period1M)
		if err != nil {
			t.Fatalf("HistoricalPerformance() returned unexpected error: %v", err)
		}
		if len(points) != 0 {
			t.Errorf("Expected empty series, got %d points", len(points))
		}
	})

	t.Run("NAV data without lots yields zero-valued points", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)
		svc.Now = func() time.Time { return now }

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().Build(t, db)
		testutil.CreateNAVPoint(t, db, fund.ID, "2023-01-09", 100.0)
		testutil.CreateNAVPoint(t, db, fund.ID, "2023-01-10", 101.0)

		points, err := svc.HistoricalPerformance(user.ID, service.Period1M)
		if err != nil {
			t.Fatalf("HistoricalPerformance() returned unexpected error: %v", err)
		}
		if len(points) != 2 {
			t.Fatalf("Expected 2 points, got %d", len(points))
		}
		for i, p := range points {
			if p.Value != 0 {
				t.Errorf("points[%d].Value = %v, want 0", i, p.Value)
			}
		}
	})
}
