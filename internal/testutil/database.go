// Package testutil provides helpers for setting up test databases and
// creating test fixtures.
package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE fund (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(100) NOT NULL,
			fund_type VARCHAR(50) NOT NULL,
			isin VARCHAR(12) NOT NULL UNIQUE,
			nav FLOAT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE investment (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			fund_id INTEGER NOT NULL,
			investment_date DATE NOT NULL,
			amount FLOAT NOT NULL,
			nav_at_investment FLOAT NOT NULL,
			units FLOAT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY(fund_id) REFERENCES fund(id) ON DELETE CASCADE
		);

		CREATE INDEX idx_investment_user ON investment(user_id);

		CREATE TABLE nav_history (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			fund_id INTEGER NOT NULL,
			date DATE NOT NULL,
			nav FLOAT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(fund_id) REFERENCES fund(id) ON DELETE CASCADE,
			CONSTRAINT unique_fund_date UNIQUE (fund_id, date)
		);

		CREATE INDEX idx_nav_history_date ON nav_history(date);

		CREATE TABLE fund_allocation (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			fund_id INTEGER NOT NULL,
			dimension VARCHAR(10) NOT NULL,
			category VARCHAR(100) NOT NULL,
			percentage FLOAT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(fund_id) REFERENCES fund(id) ON DELETE CASCADE
		);

		CREATE INDEX idx_fund_allocation_dimension ON fund_allocation(fund_id, dimension);

		CREATE TABLE fund_overlap (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			fund_id_1 INTEGER NOT NULL,
			fund_id_2 INTEGER NOT NULL,
			overlap_percentage FLOAT NOT NULL,
			overlapping_stocks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(fund_id_1) REFERENCES fund(id) ON DELETE CASCADE,
			FOREIGN KEY(fund_id_2) REFERENCES fund(id) ON DELETE CASCADE,
			CONSTRAINT unique_fund_pair UNIQUE (fund_id_1, fund_id_2)
		);
	`

	_, err := db.Exec(schema)
	return err
}
