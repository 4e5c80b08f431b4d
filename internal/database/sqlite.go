// internal/database/sqlite.go
package database

import "gorm.io/gorm"

// The Postgres models use text[] and gen_random_uuid(), which sqlite cannot
// migrate, so local sqlite databases get an explicit schema instead.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Software" (
  software_id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  description TEXT,
  ui_type TEXT,
  ui_description TEXT,
  platform_supported TEXT,
  typical_customers TEXT,
  content TEXT,
  logo TEXT,
  free_trial INTEGER NOT NULL DEFAULT 0,
  free_version INTEGER NOT NULL DEFAULT 0,
  user_id TEXT,
  created_at DATETIME,
  updated_at DATETIME
)`,
	`CREATE TABLE IF NOT EXISTS "Feature" (
  feature_id TEXT PRIMARY KEY,
  software_id TEXT NOT NULL,
  feature_name TEXT NOT NULL,
  feature_description TEXT
)`,
	`CREATE TABLE IF NOT EXISTS "PricingPlan" (
  plan_id TEXT PRIMARY KEY,
  software_id TEXT NOT NULL,
  plan_name TEXT NOT NULL,
  cost REAL,
  included_features TEXT,
  payment_options TEXT
)`,
	`CREATE TABLE IF NOT EXISTS "SupportOption" (
  support_id TEXT PRIMARY KEY,
  software_id TEXT NOT NULL,
  channels TEXT,
  hours TEXT,
  training_options TEXT,
  self_help_resources INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS "Review" (
  review_id TEXT PRIMARY KEY,
  software_id TEXT NOT NULL,
  title TEXT,
  reviewer_name TEXT,
  reviewer_email TEXT,
  overall_rating INTEGER NOT NULL,
  pros TEXT,
  cons TEXT,
  experience_description TEXT,
  category_ratings TEXT,
  pricing_perception INTEGER,
  recommendation_score INTEGER,
  created_at DATETIME
)`,
	`CREATE TABLE IF NOT EXISTS contact_submissions (
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL,
  first_name TEXT,
  last_name TEXT,
  email TEXT NOT NULL,
  company TEXT,
  subject TEXT,
  message TEXT,
  contact_number TEXT,
  software_name TEXT,
  created_at DATETIME,
  updated_at DATETIME,
  deleted_at DATETIME
)`,
	`CREATE INDEX IF NOT EXISTS idx_feature_software ON "Feature"(software_id)`,
	`CREATE INDEX IF NOT EXISTS idx_pricing_plan_software ON "PricingPlan"(software_id)`,
	`CREATE INDEX IF NOT EXISTS idx_support_option_software ON "SupportOption"(software_id)`,
	`CREATE INDEX IF NOT EXISTS idx_review_software ON "Review"(software_id, created_at)`,
}

func createSQLiteSchema(db *gorm.DB) error {
	for _, stmt := range sqliteSchema {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
