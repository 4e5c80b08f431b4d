// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields, used by tables this service owns
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Enums
type PricingModel string

const (
	PricingModelFree       PricingModel = "Free"
	PricingModelOpenSource PricingModel = "Open Source"
	PricingModelFreeTrial  PricingModel = "Free Trial"
	PricingModelOneTime    PricingModel = "One time purchase"
	PricingModelSubscribe  PricingModel = "Subscription"
)

// Payment option labels stored on PricingPlan.payment_options
const (
	PaymentOptionSubscription = "Subscription"
	PaymentOptionOneTime      = "One time"
)

type ContactKind string

const (
	ContactKindGeneral        ContactKind = "general"
	ContactKindVendorInterest ContactKind = "vendor_interest"
)

type MediaType string

const (
	MediaTypeLogo  MediaType = "logo"
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type ReviewSort string

const (
	ReviewSortNewest  ReviewSort = "newest"
	ReviewSortOldest  ReviewSort = "oldest"
	ReviewSortHighest ReviewSort = "highest"
	ReviewSortLowest  ReviewSort = "lowest"
)
