// internal/services/comparison_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/javajoker/rentall-backend/internal/metrics"
	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/repository"
)

const (
	MinComparisonSize = 1
	MaxComparisonSize = 4

	DefaultFetchTimeout = 3 * time.Second
)

var ErrInvalidComparisonSet = errors.New("comparison set must contain between 1 and 4 product names")

// CatalogReader is the read side of the catalog store used to assemble
// comparison and detail views. FindSoftwareByName returns
// repository.ErrNotFound when no row matches.
type CatalogReader interface {
	FindSoftwareByName(ctx context.Context, name string) (*models.Software, error)
	ListFeatures(ctx context.Context, softwareID uuid.UUID) ([]models.Feature, error)
	ListPricingPlans(ctx context.Context, softwareID uuid.UUID) ([]models.PricingPlan, error)
	ListSupportOptions(ctx context.Context, softwareID uuid.UUID) ([]models.SupportOption, error)
	ListReviewRatings(ctx context.Context, softwareID uuid.UUID) ([]int, error)
}

type ComparisonService struct {
	catalog      CatalogReader
	fetchTimeout time.Duration
	metrics      *metrics.Metrics
}

func NewComparisonService(catalog CatalogReader, fetchTimeout time.Duration, m *metrics.Metrics) *ComparisonService {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &ComparisonService{
		catalog:      catalog,
		fetchTimeout: fetchTimeout,
		metrics:      m,
	}
}

// FetchComparisonSet resolves each name and enriches the matches
// concurrently. Names that miss, fail or time out are dropped. The result
// keeps the order of names.
func (s *ComparisonService) FetchComparisonSet(ctx context.Context, names []string) ([]EnrichedProduct, error) {
	if len(names) < MinComparisonSize || len(names) > MaxComparisonSize {
		return nil, ErrInvalidComparisonSet
	}

	slots := make([]*EnrichedProduct, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			slots[i] = s.resolve(ctx, name)
			return nil
		})
	}
	// slots never report errors
	_ = g.Wait()

	products := make([]EnrichedProduct, 0, len(names))
	for _, p := range slots {
		if p != nil {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (s *ComparisonService) resolve(ctx context.Context, name string) *EnrichedProduct {
	software, err := fetchWithTimeout(ctx, s.fetchTimeout, func(ctx context.Context) (*models.Software, error) {
		return s.catalog.FindSoftwareByName(ctx, name)
	})
	if err == nil && software == nil {
		err = repository.ErrNotFound
	}
	if err != nil {
		outcome := classifyLookupError(err)
		entry := logrus.WithField("name", name).WithField("outcome", outcome)
		if outcome == metrics.OutcomeNotFound {
			entry.Debug("Comparison product not found")
		} else {
			entry.WithError(err).Warn("Comparison product lookup failed")
		}
		s.metrics.ObserveComparisonSlot(outcome)
		return nil
	}

	product := s.EnrichProduct(ctx, *software)
	s.metrics.ObserveComparisonSlot(metrics.OutcomeResolved)
	return &product
}

// EnrichProduct loads the child collections of software in parallel and
// derives its rating and lowest price. A failed child fetch leaves that
// collection empty.
func (s *ComparisonService) EnrichProduct(ctx context.Context, software models.Software) EnrichedProduct {
	start := time.Now()
	defer func() { s.metrics.ObserveEnrich(time.Since(start)) }()

	id := software.SoftwareID
	var (
		features []models.Feature
		plans    []models.PricingPlan
		support  []models.SupportOption
		ratings  []int
	)

	var g errgroup.Group
	g.Go(func() error {
		features = fetchRelation(ctx, s, "features", software.Name, func(ctx context.Context) ([]models.Feature, error) {
			return s.catalog.ListFeatures(ctx, id)
		})
		return nil
	})
	g.Go(func() error {
		plans = fetchRelation(ctx, s, "pricing_plans", software.Name, func(ctx context.Context) ([]models.PricingPlan, error) {
			return s.catalog.ListPricingPlans(ctx, id)
		})
		return nil
	})
	g.Go(func() error {
		support = fetchRelation(ctx, s, "support_options", software.Name, func(ctx context.Context) ([]models.SupportOption, error) {
			return s.catalog.ListSupportOptions(ctx, id)
		})
		return nil
	})
	g.Go(func() error {
		ratings = fetchRelation(ctx, s, "reviews", software.Name, func(ctx context.Context) ([]int, error) {
			return s.catalog.ListReviewRatings(ctx, id)
		})
		return nil
	})
	_ = g.Wait()

	product := EnrichedProduct{Software: software}
	product.Features = features
	product.PricingPlans = plans
	product.SupportOptions = nil
	// only the first support row is shown
	if len(support) > 0 {
		option := support[0]
		product.SupportOption = &option
	}
	product.Rating = AverageRating(ratings)
	product.ReviewCount = len(ratings)
	product.LowestPrice = LowestPrice(plans)
	return product
}

func fetchRelation[T any](ctx context.Context, s *ComparisonService, relation, name string, fetch func(context.Context) ([]T, error)) []T {
	items, err := fetchWithTimeout(ctx, s.fetchTimeout, fetch)
	if err != nil {
		logrus.WithError(err).
			WithField("name", name).
			WithField("relation", relation).
			Warn("Related collection fetch failed, treating as empty")
		s.metrics.IncRelationFailure(relation)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// fetchWithTimeout bounds fetch by timeout even when the store ignores ctx.
// fetch gets the deadline-bound ctx; a store that ignores it keeps its
// goroutine and connection until the call returns.
func fetchWithTimeout[T any](ctx context.Context, timeout time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := fetch(ctx)
		done <- result{value: value, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func classifyLookupError(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeTimeout
	default:
		return metrics.OutcomeError
	}
}
