// internal/models/software.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Software is a vendor listing. Table and column names follow the hosted
// store the site was built on.
type Software struct {
	SoftwareID        uuid.UUID      `json:"software_id" gorm:"column:software_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string         `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Description       string         `json:"description" gorm:"type:text"`
	UIType            pq.StringArray `json:"ui_type" gorm:"column:ui_type;type:text[]"`
	UIDescription     string         `json:"ui_description" gorm:"column:ui_description;type:text"`
	PlatformSupported pq.StringArray `json:"platform_supported" gorm:"type:text[]"`
	TypicalCustomers  pq.StringArray `json:"typical_customers" gorm:"type:text[]"`
	Content           pq.StringArray `json:"content" gorm:"type:text[]"`
	Logo              *string        `json:"logo"`
	FreeTrial         bool           `json:"free_trial" gorm:"default:false"`
	FreeVersion       bool           `json:"free_version" gorm:"default:false"`
	UserID            *uuid.UUID     `json:"user_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`

	// Relationships
	Features       []Feature       `json:"features" gorm:"foreignKey:SoftwareID;references:SoftwareID"`
	PricingPlans   []PricingPlan   `json:"pricing_plans" gorm:"foreignKey:SoftwareID;references:SoftwareID"`
	SupportOptions []SupportOption `json:"-" gorm:"foreignKey:SoftwareID;references:SoftwareID"`
}

func (Software) TableName() string { return "Software" }

func (s *Software) BeforeCreate(tx *gorm.DB) error {
	if s.SoftwareID == uuid.Nil {
		s.SoftwareID = uuid.New()
	}
	return nil
}

type Feature struct {
	FeatureID          uuid.UUID `json:"feature_id" gorm:"column:feature_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SoftwareID         uuid.UUID `json:"software_id" gorm:"type:uuid;not null;index"`
	FeatureName        string    `json:"feature_name" gorm:"size:255;not null"`
	FeatureDescription string    `json:"feature_description" gorm:"type:text"`
}

func (Feature) TableName() string { return "Feature" }

func (f *Feature) BeforeCreate(tx *gorm.DB) error {
	if f.FeatureID == uuid.Nil {
		f.FeatureID = uuid.New()
	}
	return nil
}

// PricingPlan.Cost is the monthly cost: nil means "contact vendor", zero
// means free.
type PricingPlan struct {
	PlanID           uuid.UUID      `json:"plan_id" gorm:"column:plan_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SoftwareID       uuid.UUID      `json:"software_id" gorm:"type:uuid;not null;index"`
	PlanName         string         `json:"plan_name" gorm:"size:255;not null"`
	Cost             *float64       `json:"cost" gorm:"type:decimal(10,2)"`
	IncludedFeatures string         `json:"included_features" gorm:"type:text"`
	PaymentOptions   pq.StringArray `json:"payment_options" gorm:"type:text[]"`
}

func (PricingPlan) TableName() string { return "PricingPlan" }

func (p *PricingPlan) BeforeCreate(tx *gorm.DB) error {
	if p.PlanID == uuid.Nil {
		p.PlanID = uuid.New()
	}
	return nil
}

// HasPaymentOption reports whether the plan accepts the given payment label.
func (p PricingPlan) HasPaymentOption(option string) bool {
	for _, o := range p.PaymentOptions {
		if o == option {
			return true
		}
	}
	return false
}

type SupportOption struct {
	SupportID         uuid.UUID      `json:"support_id" gorm:"column:support_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SoftwareID        uuid.UUID      `json:"software_id" gorm:"type:uuid;not null;index"`
	Channels          pq.StringArray `json:"channels" gorm:"type:text[]"`
	Hours             pq.StringArray `json:"hours" gorm:"type:text[]"`
	TrainingOptions   pq.StringArray `json:"training_options" gorm:"type:text[]"`
	SelfHelpResources bool           `json:"self_help_resources" gorm:"default:false"`
}

func (SupportOption) TableName() string { return "SupportOption" }

func (s *SupportOption) BeforeCreate(tx *gorm.DB) error {
	if s.SupportID == uuid.Nil {
		s.SupportID = uuid.New()
	}
	return nil
}
