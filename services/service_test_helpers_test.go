package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rajatjain1997/meal-planner/config"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDB(":memory:")
	require.NoError(t, err)

	// one connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}
