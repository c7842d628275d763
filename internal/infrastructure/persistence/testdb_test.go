package persistence

import (
	"testing"

	"github.com/fuelstation/backend/internal/domain/catalog"
	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/procurement"
	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Product{},
		&station.Dispenser{},
		&station.Tank{},
		&station.TankReading{},
		&station.Nozzle{},
		&membership.Member{},
		&membership.Promotion{},
		&sales.Shift{},
		&sales.Transaction{},
		&procurement.ImportBatch{},
		&procurement.ImportLineItem{},
	)
	require.NoError(t, err)

	return db
}
