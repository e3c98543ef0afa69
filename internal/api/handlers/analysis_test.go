package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/investdash/investment-dashboard-backend/internal/api/handlers"
	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/testutil"
)

func newAnalysisHandler(t *testing.T, db *sql.DB) *handlers.AnalysisHandler {
	t.Helper()

	return handlers.NewAnalysisHandler(
		testutil.NewTestDashboardService(t, db),
		testutil.NewTestPerformanceService(t, db),
		testutil.NewTestAllocationService(t, db),
		testutil.NewTestOverlapService(t, db),
	)
}

// TestAnalysisHandler_GetDashboard tests the dashboard endpoint.
func TestAnalysisHandler_GetDashboard(t *testing.T) {
	t.Run("returns dashboard for existing user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAnalysisHandler(t, db)
		user := testutil.NewUser().WithName("Yashna").Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet, "/api/analysis/dashboard/1",
			map[string]string{"userId": "1"},
		)
		rec := httptest.NewRecorder()
		handler.GetDashboard(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
		}

		var dashboard model.Dashboard
		if err := json.NewDecoder(rec.Body).Decode(&dashboard); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if dashboard.UserName != user.Name {
			t.Errorf("UserName = %q, want %q", dashboard.UserName, user.Name)
		}
		if dashboard.BestPerformingFund.Name != "N/A" {
			t.Errorf("BestPerformingFund.Name = %q, want sentinel N/A", dashboard.BestPerformingFund.Name)
		}
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAnalysisHandler(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet, "/api/analysis/dashboard/9999",
			map[string]string{"userId": "9999"},
		)
		rec := httptest.NewRecorder()
		handler.GetDashboard(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("malformed user id returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAnalysisHandler(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet, "/api/analysis/dashboard/abc",
			map[string]string{"userId": "abc"},
		)
		rec := httptest.NewRecorder()
		handler.GetDashboard(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

// TestAnalysisHandler_GetPerformance tests the performance curve endpoint.
func TestAnalysisHandler_GetPerformance(t *testing.T) {
	t.Run("invalid period returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAnalysisHandler(t, db)
		testutil.NewUser().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet, "/api/analysis/performance/1?period=2W",
			map[string]string{"userId": "1"},
		)
		rec := httptest.NewRecorder()
		handler.GetPerformance(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("no data yields empty JSON array", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAnalysisHandler(t, db)
		testutil.NewUser().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet, "/api/analysis/performance/1",
			map[string]string{"userId": "1"},
		)
		rec := httptest.NewRecorder()
		handler.GetPerformance(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var points []model.PerformancePoint
		if err := json.NewDecoder(rec.Body).Decode(&points); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if points == nil || len(points) != 0 {
			t.Errorf("Expected empty array, got %v", points)
		}
	})
}

// TestAnalysisHandler_GetAllocation tests the allocation endpoint.
func TestAnalysisHandler_GetAllocation(t *testing.T) {
	t.Run("defaults to sector dimension", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAnalysisHandler(t, db)

		user := testutil.NewUser().Build(t, db)
		fund := testutil.NewFund().WithNav(100.0).Build(t, db)
		testutil.NewInvestment(user.ID, fund.ID).WithAmount(10000).WithNavAtInvestment(100).Build(t, db)
		testutil.CreateAllocation(t, db, fund.ID, model.DimensionSector, "Technology", 100.0)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet, "/api/analysis/allocation/1",
			map[string]string{"userId": "1"},
		)
		rec := httptest.NewRecorder()
		handler.GetAllocation(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var allocations []model.CategoryAllocation
		if err := json.NewDecoder(rec.Body).Decode(&allocations); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(allocations) != 1 || allocations[0].Category != "Technology" {
			t.Errorf("allocations = %+v, want single Technology entry", allocations)
		}
	})

	t.Run("unknown dimension returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAnalysisHandler(t, db)
		testutil.NewUser().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet, "/api/analysis/allocation/1?dimension=region",
			map[string]string{"userId": "1"},
		)
		rec := httptest.NewRecorder()
		handler.GetAllocation(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

// TestAnalysisHandler_GetOverlap tests the overlap endpoint.
//
// WHY: A pair query returns a one-element array to keep the response shape
// consistent with the unfiltered listing, and a missing pair is a 404.
func TestAnalysisHandler_GetOverlap(t *testing.T) {
	t.Run("pair query returns single-element array", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAnalysisHandler(t, db)

		user := testutil.NewUser().Build(t, db)
		fundA := testutil.NewFund().WithName("Alpha Fund").Build(t, db)
		fundB := testutil.NewFund().WithName("Beta Fund").Build(t, db)
		testutil.NewInvestment(user.ID, fundA.ID).Build(t, db)
		testutil.NewInvestment(user.ID, fundB.ID).Build(t, db)
		testutil.CreateOverlap(t, db, fundA.ID, fundB.ID, 67.0, 3)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet, "/api/analysis/overlap/1?fund1_id=2&fund2_id=1",
			map[string]string{"userId": "1"},
		)
		q := req.URL.Query()
		q.Set("fund1_id", "2")
		q.Set("fund2_id", "1")
		req.URL.RawQuery = q.Encode()
		rec := httptest.NewRecorder()
		handler.GetOverlap(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
		}

		var overlaps []model.OverlapDetail
		if err := json.NewDecoder(rec.Body).Decode(&overlaps); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(overlaps) != 1 {
			t.Fatalf("Expected 1 overlap, got %d", len(overlaps))
		}
		if overlaps[0].OverlapPercentage != 67.0 {
			t.Errorf("OverlapPercentage = %v, want 67.0", overlaps[0].OverlapPercentage)
		}
	})

	t.Run("missing pair returns 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAnalysisHandler(t, db)

		testutil.NewUser().Build(t, db)
		testutil.NewFund().Build(t, db)
		testutil.NewFund().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet, "/api/analysis/overlap/1",
			map[string]string{"userId": "1"},
		)
		q := req.URL.Query()
		q.Set("fund1_id", "1")
		q.Set("fund2_id", "2")
		req.URL.RawQuery = q.Encode()
		rec := httptest.NewRecorder()
		handler.GetOverlap(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("without pair filter lists user overlaps", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAnalysisHandler(t, db)

		user := testutil.NewUser().Build(t, db)
		fundA := testutil.NewFund().Build(t, db)
		fundB := testutil.NewFund().Build(t, db)
		testutil.NewInvestment(user.ID, fundA.ID).Build(t, db)
		testutil.NewInvestment(user.ID, fundB.ID).Build(t, db)
		testutil.CreateOverlap(t, db, fundA.ID, fundB.ID, 42.0, 2)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet, "/api/analysis/overlap/1",
			map[string]string{"userId": "1"},
		)
		rec := httptest.NewRecorder()
		handler.GetOverlap(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var overlaps []model.OverlapDetail
		if err := json.NewDecoder(rec.Body).Decode(&overlaps); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(overlaps) != 1 {
			t.Errorf("Expected 1 overlap, got %d", len(overlaps))
		}
	})
}
