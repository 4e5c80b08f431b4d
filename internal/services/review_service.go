// internal/services/review_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/repository"
)

type ReviewService struct {
	catalog  *repository.CatalogRepository
	software *SoftwareService
}

// CreateReviewRequest mirrors the write-review form. Category ratings of
// zero mean "not rated".
type CreateReviewRequest struct {
	Title               string `json:"title" validate:"notblank,singleline,max=255"`
	FirstName           string `json:"first_name" validate:"notblank,singleline,max=100"`
	LastName            string `json:"last_name" validate:"notblank,singleline,max=100"`
	Email               string `json:"email" validate:"required,email"`
	OverallRating       int    `json:"overall_rating" validate:"min=1,max=5"`
	Pros                string `json:"pros" validate:"notblank"`
	Cons                string `json:"cons" validate:"notblank"`
	Experience          string `json:"experience,omitempty"`
	EaseOfUse           int    `json:"ease_of_use" validate:"min=0,max=5"`
	Features            int    `json:"features" validate:"min=0,max=5"`
	CustomerSupport     int    `json:"customer_support" validate:"min=0,max=5"`
	ValueForMoney       int    `json:"value_for_money" validate:"min=0,max=5"`
	EaseOfDeployment    int    `json:"ease_of_deployment" validate:"min=0,max=5"`
	EaseOfSetup         int    `json:"ease_of_setup" validate:"min=0,max=5"`
	Pricing             string `json:"pricing" validate:"omitempty,pricing_tier"`
	RecommendationScore int    `json:"recommendation_score" validate:"min=0,max=10"`
}

type ReviewQuery struct {
	Rating int
	Sort   models.ReviewSort
}

type ReviewView struct {
	models.Review
	PricingLabel        string `json:"pricing_label"`
	RecommendationLabel string `json:"recommendation_label"`
}

type ReviewSummary struct {
	Rating       *float64    `json:"rating"`
	ReviewCount  int         `json:"review_count"`
	Distribution map[int]int `json:"distribution"`
}

type ReviewListing struct {
	Software models.Software `json:"software"`
	Summary  ReviewSummary   `json:"summary"`
	Reviews  []ReviewView    `json:"reviews"`
}

func NewReviewService(catalog *repository.CatalogRepository, software *SoftwareService) *ReviewService {
	return &ReviewService{
		catalog:  catalog,
		software: software,
	}
}

// ListForSoftware returns the reviews for the named product. The summary
// always covers every review; query narrows and orders the list.
func (s *ReviewService) ListForSoftware(ctx context.Context, name string, query ReviewQuery) (*ReviewListing, error) {
	software, err := s.software.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	reviews, err := s.catalog.ListReviews(ctx, software.SoftwareID)
	if err != nil {
		return nil, err
	}

	return &ReviewListing{
		Software: *software,
		Summary:  summarizeReviews(reviews),
		Reviews:  filterAndSortReviews(reviews, query),
	}, nil
}

func (s *ReviewService) Create(ctx context.Context, softwareID uuid.UUID, req CreateReviewRequest) (*models.Review, error) {
	if _, err := s.catalog.FindSoftwareByID(ctx, softwareID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSoftwareNotFound
		}
		return nil, fmt.Errorf("failed to find software: %w", err)
	}

	review := buildReview(softwareID, req)
	if err := s.catalog.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	logrus.WithField("software_id", softwareID).
		WithField("rating", review.OverallRating).
		Info("Review submitted")
	return review, nil
}

func buildReview(softwareID uuid.UUID, req CreateReviewRequest) *models.Review {
	review := &models.Review{
		SoftwareID:    softwareID,
		Title:         strings.TrimSpace(req.Title),
		ReviewerName:  strings.TrimSpace(req.FirstName + " " + req.LastName),
		ReviewerEmail: strings.TrimSpace(req.Email),
		OverallRating: req.OverallRating,
		Pros:          req.Pros,
		Cons:          req.Cons,
	}

	if experience := strings.TrimSpace(req.Experience); experience != "" {
		review.ExperienceDescription = &experience
	}

	var categories pq.Int64Array
	for _, r := range []int{req.EaseOfUse, req.Features, req.CustomerSupport, req.ValueForMoney, req.EaseOfDeployment, req.EaseOfSetup} {
		if r > 0 {
			categories = append(categories, int64(r))
		}
	}
	review.CategoryRatings = categories

	if req.Pricing != "" {
		perception := len(req.Pricing) * 20
		review.PricingPerception = &perception
	}

	recommendation := req.RecommendationScore
	review.RecommendationScore = &recommendation

	return review
}

func summarizeReviews(reviews []models.Review) ReviewSummary {
	summary := ReviewSummary{
		ReviewCount:  len(reviews),
		Distribution: map[int]int{5: 0, 4: 0, 3: 0, 2: 0, 1: 0},
	}
	ratings := make([]int, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.OverallRating
		if _, ok := summary.Distribution[r.OverallRating]; ok {
			summary.Distribution[r.OverallRating]++
		}
	}
	summary.Rating = AverageRating(ratings)
	return summary
}

func filterAndSortReviews(reviews []models.Review, query ReviewQuery) []ReviewView {
	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		if query.Rating != 0 && r.OverallRating != query.Rating {
			continue
		}
		views = append(views, ReviewView{
			Review:              r,
			PricingLabel:        r.PricingLabel(),
			RecommendationLabel: r.RecommendationLabel(),
		})
	}

	var less func(a, b ReviewView) bool
	switch query.Sort {
	case models.ReviewSortOldest:
		less = func(a, b ReviewView) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case models.ReviewSortHighest:
		less = func(a, b ReviewView) bool { return a.OverallRating > b.OverallRating }
	case models.ReviewSortLowest:
		less = func(a, b ReviewView) bool { return a.OverallRating < b.OverallRating }
	default:
		less = func(a, b ReviewView) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
	sort.SliceStable(views, func(i, j int) bool { return less(views[i], views[j]) })

	return views
}

// ParseReviewSort falls back to newest for unknown values.
func ParseReviewSort(raw string) models.ReviewSort {
	switch order := models.ReviewSort(raw); order {
	case models.ReviewSortOldest, models.ReviewSortHighest, models.ReviewSortLowest:
		return order
	default:
		return models.ReviewSortNewest
	}
}
