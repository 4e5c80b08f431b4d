// internal/services/software_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/repository"
	"github.com/javajoker/rentall-backend/internal/utils"
)

const (
	DirectoryPageSize = 8
	SearchResultLimit = 10
)

var ErrSoftwareNotFound = errors.New("software not found")

// SoftwareService serves the directory, detail and lookup views.
type SoftwareService struct {
	catalog    *repository.CatalogRepository
	comparison *ComparisonService
}

type DirectoryParams struct {
	utils.PaginationParams
	Search    string
	Features  []string
	Models    []models.PricingModel
	MinRating float64
}

type DirectoryPage struct {
	Items  []EnrichedProduct
	Total  int64
	Params DirectoryParams
}

type RatingOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FilterOptions struct {
	Features []string              `json:"features"`
	Models   []models.PricingModel `json:"models"`
	Ratings  []RatingOption        `json:"ratings"`
}

func NewSoftwareService(catalog *repository.CatalogRepository, comparison *ComparisonService) *SoftwareService {
	return &SoftwareService{
		catalog:    catalog,
		comparison: comparison,
	}
}

// FilterOptions lists the choices offered by the directory sidebar.
func (s *SoftwareService) FilterOptions() FilterOptions {
	return FilterOptions{
		Features: []string{
			"Customer Database",
			"API",
			"Accounting",
			"Access Controls/Permissions",
			"Activity Dashboard",
			"Fleet Management",
			"Booking System",
			"Payment Processing",
			"Reporting",
			"Mobile App",
		},
		Models: []models.PricingModel{
			models.PricingModelFree,
			models.PricingModelOpenSource,
			models.PricingModelFreeTrial,
			models.PricingModelOneTime,
			models.PricingModelSubscribe,
		},
		Ratings: []RatingOption{
			{Label: "All Reviews", Value: ""},
			{Label: "4 stars & up", Value: "4"},
			{Label: "3 stars & up", Value: "3"},
			{Label: "2 stars & up", Value: "2"},
		},
	}
}

// ListDirectory loads the catalog, applies the filters and returns one page.
func (s *SoftwareService) ListDirectory(ctx context.Context, params DirectoryParams) (*DirectoryPage, error) {
	software, err := s.catalog.ListSoftwareWithRelations(ctx, params.Search)
	if err != nil {
		return nil, err
	}

	stats, err := s.catalog.ReviewStatsBySoftware(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]EnrichedProduct, 0, len(software))
	for _, sw := range software {
		product := enrichPreloaded(sw, stats[sw.SoftwareID])
		if !matchesFeatures(product, params.Features) ||
			!matchesModels(product, params.Models) ||
			!matchesRating(product, params.MinRating) {
			continue
		}
		filtered = append(filtered, product)
	}

	return &DirectoryPage{
		Items:  utils.PaginateSlice(filtered, params.PaginationParams),
		Total:  int64(len(filtered)),
		Params: params,
	}, nil
}

// GetByName resolves an exact name first, then ignores case.
func (s *SoftwareService) GetByName(ctx context.Context, name string) (*EnrichedProduct, error) {
	software, err := s.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	product := s.comparison.EnrichProduct(ctx, *software)
	return &product, nil
}

func (s *SoftwareService) FindByName(ctx context.Context, name string) (*models.Software, error) {
	software, err := s.catalog.FindSoftwareByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		software, err = s.catalog.FindSoftwareByNameFold(ctx, name)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSoftwareNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find software: %w", err)
	}
	return software, nil
}

func (s *SoftwareService) Search(ctx context.Context, term string) ([]repository.SoftwareSummary, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []repository.SoftwareSummary{}, nil
	}
	return s.catalog.SearchSoftware(ctx, term, SearchResultLimit)
}

func (s *SoftwareService) ListOwned(ctx context.Context, userID uuid.UUID) ([]models.Software, error) {
	return s.catalog.ListSoftwareByOwner(ctx, userID)
}

func enrichPreloaded(sw models.Software, stats repository.ReviewStats) EnrichedProduct {
	product := EnrichedProduct{Software: sw}
	if product.Features == nil {
		product.Features = []models.Feature{}
	}
	if product.PricingPlans == nil {
		product.PricingPlans = []models.PricingPlan{}
	}
	if len(sw.SupportOptions) > 0 {
		option := sw.SupportOptions[0]
		product.SupportOption = &option
	}
	product.SupportOptions = nil
	product.ReviewCount = int(stats.Count)
	if stats.Count > 0 {
		avg := RoundRating(stats.Sum / float64(stats.Count))
		product.Rating = &avg
	}
	product.LowestPrice = LowestPrice(sw.PricingPlans)
	return product
}

// A product matches when any requested feature appears in one of its
// feature names or its description.
func matchesFeatures(p EnrichedProduct, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	description := strings.ToLower(p.Description)
	for _, w := range wanted {
		needle := strings.ToLower(w)
		if strings.Contains(description, needle) {
			return true
		}
		for _, f := range p.Features {
			if strings.Contains(strings.ToLower(f.FeatureName), needle) {
				return true
			}
		}
	}
	return false
}

func matchesModels(p EnrichedProduct, wanted []models.PricingModel) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, m := range wanted {
		switch m {
		case models.PricingModelFree:
			if p.FreeVersion {
				return true
			}
		case models.PricingModelFreeTrial:
			if p.FreeTrial {
				return true
			}
		case models.PricingModelSubscribe:
			if hasPaymentOption(p, models.PaymentOptionSubscription) {
				return true
			}
		case models.PricingModelOneTime:
			if hasPaymentOption(p, models.PaymentOptionOneTime) {
				return true
			}
		default:
			// no catalog data backs other models yet
			return true
		}
	}
	return false
}

func hasPaymentOption(p EnrichedProduct, option string) bool {
	for _, plan := range p.PricingPlans {
		if plan.HasPaymentOption(option) {
			return true
		}
	}
	return false
}

// Products without reviews rate as zero.
func matchesRating(p EnrichedProduct, minRating float64) bool {
	if minRating <= 0 {
		return true
	}
	rating := 0.0
	if p.Rating != nil {
		rating = *p.Rating
	}
	return rating >= minRating
}
