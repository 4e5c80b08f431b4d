// internal/repository/contact.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/rentall-backend/internal/models"
)

type ContactRepository struct {
	Base
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{Base: NewBase(db)}
}

func (r *ContactRepository) Create(ctx context.Context, submission *models.ContactSubmission) error {
	if err := r.DB(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to save contact submission: %w", err)
	}
	return nil
}

func (r *ContactRepository) ListByKind(ctx context.Context, kind models.ContactKind) ([]models.ContactSubmission, error) {
	submissions := []models.ContactSubmission{}
	if err := r.DB(ctx).Where("kind = ?", kind).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return submissions, nil
}
