// internal/repository/catalog.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javajoker/rentall-backend/internal/database"
	"github.com/javajoker/rentall-backend/internal/models"
)

// CatalogRepository reads and writes the Software table and its child
// tables (Feature, PricingPlan, SupportOption, Review).
type CatalogRepository struct {
	Base
}

type SoftwareSummary struct {
	SoftwareID  uuid.UUID `json:"software_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Logo        *string   `json:"logo"`
}

type ReviewStats struct {
	SoftwareID uuid.UUID
	Count      int64
	Sum        float64
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{Base: NewBase(db)}
}

// FindSoftwareByName matches the name exactly.
func (r *CatalogRepository) FindSoftwareByName(ctx context.Context, name string) (*models.Software, error) {
	var software models.Software
	if err := r.DB(ctx).Where("name = ?", name).First(&software).Error; err != nil {
		return nil, notFound(err)
	}
	return &software, nil
}

// FindSoftwareByNameFold matches the name ignoring case.
func (r *CatalogRepository) FindSoftwareByNameFold(ctx context.Context, name string) (*models.Software, error) {
	var software models.Software
	if err := r.DB(ctx).Where("LOWER(name) = ?", strings.ToLower(name)).First(&software).Error; err != nil {
		return nil, notFound(err)
	}
	return &software, nil
}

func (r *CatalogRepository) FindSoftwareByID(ctx context.Context, id uuid.UUID) (*models.Software, error) {
	var software models.Software
	if err := r.DB(ctx).Where("software_id = ?", id).First(&software).Error; err != nil {
		return nil, notFound(err)
	}
	return &software, nil
}

func (r *CatalogRepository) SoftwareNameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.DB(ctx).Model(&models.Software{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CatalogRepository) ListFeatures(ctx context.Context, softwareID uuid.UUID) ([]models.Feature, error) {
	features := []models.Feature{}
	if err := r.DB(ctx).Where("software_id = ?", softwareID).Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

func (r *CatalogRepository) ListPricingPlans(ctx context.Context, softwareID uuid.UUID) ([]models.PricingPlan, error) {
	plans := []models.PricingPlan{}
	if err := r.DB(ctx).Where("software_id = ?", softwareID).Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *CatalogRepository) ListSupportOptions(ctx context.Context, softwareID uuid.UUID) ([]models.SupportOption, error) {
	options := []models.SupportOption{}
	if err := r.DB(ctx).Where("software_id = ?", softwareID).Order("support_id ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// ListReviewRatings projects only overall_rating.
func (r *CatalogRepository) ListReviewRatings(ctx context.Context, softwareID uuid.UUID) ([]int, error) {
	ratings := []int{}
	if err := r.DB(ctx).Model(&models.Review{}).
		Where("software_id = ?", softwareID).
		Pluck("overall_rating", &ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListReviews returns every review for a product, newest first.
func (r *CatalogRepository) ListReviews(ctx context.Context, softwareID uuid.UUID) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := r.DB(ctx).Where("software_id = ?", softwareID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListSoftwareWithRelations loads the whole catalog with features, plans
// and support options preloaded. An empty search matches everything.
func (r *CatalogRepository) ListSoftwareWithRelations(ctx context.Context, search string) ([]models.Software, error) {
	query := r.DB(ctx).Model(&models.Software{}).
		Preload("Features").Preload("PricingPlans").
		Preload("SupportOptions", func(db *gorm.DB) *gorm.DB { return db.Order("support_id ASC") })

	if search = strings.TrimSpace(search); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	software := []models.Software{}
	if err := query.Order("name ASC").Find(&software).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch software: %w", err)
	}
	return software, nil
}

// ReviewStatsBySoftware aggregates review count and rating sum per product.
func (r *CatalogRepository) ReviewStatsBySoftware(ctx context.Context) (map[uuid.UUID]ReviewStats, error) {
	var rows []ReviewStats
	if err := r.DB(ctx).Model(&models.Review{}).
		Select("software_id, COUNT(*) AS count, COALESCE(SUM(overall_rating), 0) AS sum").
		Group("software_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	stats := make(map[uuid.UUID]ReviewStats, len(rows))
	for _, row := range rows {
		stats[row.SoftwareID] = row
	}
	return stats, nil
}

func (r *CatalogRepository) SearchSoftware(ctx context.Context, term string, limit int) ([]SoftwareSummary, error) {
	summaries := []SoftwareSummary{}
	if err := r.DB(ctx).Model(&models.Software{}).
		Select("software_id, name, description, logo").
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("name ASC").
		Limit(limit).
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to search software: %w", err)
	}
	return summaries, nil
}

func (r *CatalogRepository) ListSoftwareByOwner(ctx context.Context, userID uuid.UUID) ([]models.Software, error) {
	software := []models.Software{}
	if err := r.DB(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&software).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch owner software: %w", err)
	}
	return software, nil
}

// ListSoftwareNames feeds the sitemap.
func (r *CatalogRepository) ListSoftwareNames(ctx context.Context) ([]models.Software, error) {
	software := []models.Software{}
	if err := r.DB(ctx).Select("software_id, name, updated_at").
		Order("name ASC").
		Find(&software).Error; err != nil {
		return nil, fmt.Errorf("failed to list software names: %w", err)
	}
	return software, nil
}

func (r *CatalogRepository) CreateReview(ctx context.Context, review *models.Review) error {
	if err := r.DB(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// CreateListing inserts a product and its child rows in one transaction.
func (r *CatalogRepository) CreateListing(ctx context.Context, software *models.Software, features []models.Feature, plans []models.PricingPlan, support *models.SupportOption) error {
	return database.WithTransaction(r.DB(ctx), func(tx *gorm.DB) error {
		if err := tx.Omit("Features", "PricingPlans", "SupportOptions").Create(software).Error; err != nil {
			return fmt.Errorf("failed to create software: %w", duplicate(err))
		}

		for i := range features {
			features[i].SoftwareID = software.SoftwareID
		}
		if len(features) > 0 {
			if err := tx.Create(&features).Error; err != nil {
				return fmt.Errorf("failed to create features: %w", err)
			}
		}

		for i := range plans {
			plans[i].SoftwareID = software.SoftwareID
		}
		if len(plans) > 0 {
			if err := tx.Create(&plans).Error; err != nil {
				return fmt.Errorf("failed to create pricing plans: %w", err)
			}
		}

		if support != nil {
			support.SoftwareID = software.SoftwareID
			if err := tx.Create(support).Error; err != nil {
				return fmt.Errorf("failed to create support option: %w", err)
			}
		}

		software.Features = features
		software.PricingPlans = plans
		return nil
	})
}
