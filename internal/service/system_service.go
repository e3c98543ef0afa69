package service

import (
	"database/sql"
	"strconv"

	"github.com/investdash/investment-dashboard-backend/internal/database"
	"github.com/investdash/investment-dashboard-backend/internal/model"
)

// AppVersion is the application version reported by the version endpoint.
const AppVersion = "1.0.0"

// SystemService handles health and version reporting.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService with the provided database connection.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// Health checks database connectivity.
func (s *SystemService) Health() error {
	return database.HealthCheck(s.db)
}

// Version reports the application version and the database schema version.
func (s *SystemService) Version() (model.VersionInfo, error) {
	schemaVersion, err := database.SchemaVersion(s.db)
	if err != nil {
		return model.VersionInfo{}, err
	}

	return model.VersionInfo{
		AppVersion: AppVersion,
		DbVersion:  strconv.FormatInt(schemaVersion, 10),
	}, nil
}
