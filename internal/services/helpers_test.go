package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/rentall-backend/internal/config"
	"github.com/javajoker/rentall-backend/internal/database"
)

// newSeededDB opens a private in-memory sqlite catalog with the sample
// listings loaded.
func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Initialize(config.DatabaseConfig{
		Driver:     database.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel:   "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	require.NoError(t, database.SeedSampleData(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Email: config.EmailConfig{ContactInbox: "hello@example.com"},
		Site:  config.SiteConfig{BaseURL: "https://www.example.com", UploadURL: "http://localhost:8080/uploads"},
		AWS:   config.AWSConfig{S3Bucket: "media", Region: "us-east-1"},
	}
}

type sentEmail struct {
	to, subject, body string
}

// capturingNotifier records emails instead of sending them.
func capturingNotifier(cfg *config.Config) (*NotificationService, *[]sentEmail) {
	var mu sync.Mutex
	sent := &[]sentEmail{}
	s := NewNotificationService(cfg)
	s.send = func(to, subject, body string) error {
		mu.Lock()
		defer mu.Unlock()
		*sent = append(*sent, sentEmail{to: to, subject: subject, body: body})
		return nil
	}
	return s, sent
}
