package database

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/rentall-backend/internal/config"
	"github.com/javajoker/rentall-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Initialize(config.DatabaseConfig{
		Driver:     DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel:   "silent",
	})
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))
	t.Cleanup(func() { Close(db) })
	return db
}

func TestInitializeRejectsUnknownDriver(t *testing.T) {
	_, err := Initialize(config.DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
}

func TestRunMigrationsIsRepeatable(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, RunMigrations(db))
}

func TestSeedSampleData(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedSampleData(db))
	// second run must not duplicate rows
	require.NoError(t, SeedSampleData(db))

	var software []models.Software
	require.NoError(t, db.Preload("Features").Preload("PricingPlans").Preload("SupportOptions").
		Order("name").Find(&software).Error)
	require.Len(t, software, 2)

	assert.Equal(t, "AiRentoSoft", software[0].Name)
	assert.Len(t, software[0].Features, 4)
	assert.Len(t, software[0].PricingPlans, 2)
	assert.Len(t, software[0].SupportOptions, 1)
	assert.Equal(t, []string{"Email", "Phone", "Chat"}, []string(software[0].SupportOptions[0].Channels))

	var reviews int64
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	assert.Equal(t, int64(3), reviews)
}

func TestWithTransactionRollsBack(t *testing.T) {
	db := newTestDB(t)

	err := WithTransaction(db, func(tx *gorm.DB) error {
		if err := tx.Create(&models.ContactSubmission{Kind: models.ContactKindGeneral, Email: "a@example.com"}).Error; err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.ContactSubmission{}).Count(&count).Error)
	assert.Zero(t, count)
}
