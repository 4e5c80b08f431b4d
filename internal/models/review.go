// internal/models/review.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Review struct {
	ReviewID              uuid.UUID     `json:"review_id" gorm:"column:review_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SoftwareID            uuid.UUID     `json:"software_id" gorm:"type:uuid;not null;index"`
	Title                 string        `json:"title" gorm:"size:255"`
	ReviewerName          string        `json:"reviewer_name" gorm:"size:255"`
	ReviewerEmail         string        `json:"-" gorm:"size:255"`
	OverallRating         int           `json:"overall_rating" gorm:"not null"`
	Pros                  string        `json:"pros" gorm:"type:text"`
	Cons                  string        `json:"cons" gorm:"type:text"`
	ExperienceDescription *string       `json:"experience_description" gorm:"type:text"`
	CategoryRatings       pq.Int64Array `json:"category_ratings" gorm:"type:integer[]"`
	PricingPerception     *int          `json:"pricing_perception"`
	RecommendationScore   *int          `json:"recommendation_score"`
	CreatedAt             time.Time     `json:"created_at"`
}

func (Review) TableName() string { return "Review" }

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ReviewID == uuid.Nil {
		r.ReviewID = uuid.New()
	}
	return nil
}

// PricingLabel describes the reviewer's pricing perception score.
func (r Review) PricingLabel() string {
	if r.PricingPerception == nil || *r.PricingPerception == 0 {
		return ""
	}
	switch p := *r.PricingPerception; {
	case p <= 20:
		return "Very affordable"
	case p <= 40:
		return "Affordable"
	case p <= 60:
		return "Moderately priced"
	case p <= 80:
		return "Expensive"
	default:
		return "Very expensive"
	}
}

// RecommendationLabel describes the 0-10 recommendation score.
func (r Review) RecommendationLabel() string {
	if r.RecommendationScore == nil || *r.RecommendationScore == 0 {
		return ""
	}
	switch s := *r.RecommendationScore; {
	case s >= 9:
		return "Highly recommended"
	case s >= 7:
		return "Recommended"
	case s >= 5:
		return "Neutral"
	default:
		return "Not recommended"
	}
}
