// internal/services/listing_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/repository"
	"github.com/javajoker/rentall-backend/internal/utils"
)

var ErrSoftwareExists = errors.New("software with this name already exists")

type ListingService struct {
	catalog      *repository.CatalogRepository
	notification *NotificationService
}

type ListingFeature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListingPlan.Cost is free text such as "$49/mo".
type ListingPlan struct {
	PlanName         string   `json:"plan_name"`
	Cost             string   `json:"cost"`
	IncludedFeatures string   `json:"included_features"`
	PaymentOptions   []string `json:"payment_options"`
}

// CreateListingRequest carries the four steps of the listing wizard.
type CreateListingRequest struct {
	// Overview
	ProductName      string   `json:"product_name" validate:"notblank,singleline,max=255"`
	ShortDescription string   `json:"short_description" validate:"notblank"`
	Logo             string   `json:"logo,omitempty" validate:"omitempty,url"`
	UIType           []string `json:"ui_type"`
	UIDescription    string   `json:"ui_description"`

	// Features and pricing
	Features     []ListingFeature `json:"features"`
	PricingPlans []ListingPlan    `json:"pricing_plans"`

	// Support and platform
	FreeTrialAvailable bool     `json:"free_trial_available"`
	FreeVersion        bool     `json:"free_version"`
	SupportChannels    []string `json:"support_channels"`
	SupportHours       string   `json:"support_hours"`
	SelfHelpResources  bool     `json:"self_help_resources"`
	TrainingOptions    []string `json:"training_options"`
	Platforms          []string `json:"platforms"`
	TargetCustomers    []string `json:"target_customers"`

	// Media
	Images []string `json:"images" validate:"dive,url"`
	Videos []string `json:"videos" validate:"dive,url"`
}

func NewListingService(catalog *repository.CatalogRepository, notification *NotificationService) *ListingService {
	return &ListingService{
		catalog:      catalog,
		notification: notification,
	}
}

// Create stores the listing and its child rows in one transaction.
// ownerEmail, when known, receives a confirmation.
func (s *ListingService) Create(ctx context.Context, ownerID uuid.UUID, ownerEmail string, req CreateListingRequest) (*models.Software, error) {
	name := strings.TrimSpace(req.ProductName)

	exists, err := s.catalog.SoftwareNameExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check software name: %w", err)
	}
	if exists {
		return nil, ErrSoftwareExists
	}

	software, features, plans, support := buildListing(ownerID, name, req)
	if err := s.catalog.CreateListing(ctx, software, features, plans, support); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSoftwareExists
		}
		return nil, err
	}

	logrus.WithField("software_id", software.SoftwareID).
		WithField("user_id", ownerID).
		Info("Software listing created")

	if s.notification != nil {
		s.notification.Async("listing_created", func() error {
			return s.notification.SendListingCreatedNotification(ownerEmail, software)
		})
	}

	return software, nil
}

func buildListing(ownerID uuid.UUID, name string, req CreateListingRequest) (*models.Software, []models.Feature, []models.PricingPlan, *models.SupportOption) {
	owner := ownerID
	software := &models.Software{
		Name:              name,
		Description:       req.ShortDescription,
		UIType:            pq.StringArray(nonNil(req.UIType)),
		UIDescription:     req.UIDescription,
		PlatformSupported: pq.StringArray(nonNil(req.Platforms)),
		TypicalCustomers:  pq.StringArray(nonNil(req.TargetCustomers)),
		Content:           mediaURLs(req.Images, req.Videos),
		FreeTrial:         req.FreeTrialAvailable,
		FreeVersion:       req.FreeVersion,
		UserID:            &owner,
	}
	if logo := strings.TrimSpace(req.Logo); logo != "" {
		software.Logo = &logo
	}

	features := []models.Feature{}
	for _, f := range req.Features {
		if strings.TrimSpace(f.Name) == "" && strings.TrimSpace(f.Description) == "" {
			continue
		}
		features = append(features, models.Feature{
			FeatureName:        f.Name,
			FeatureDescription: f.Description,
		})
	}

	plans := []models.PricingPlan{}
	for _, p := range req.PricingPlans {
		if strings.TrimSpace(p.PlanName) == "" {
			continue
		}
		plans = append(plans, models.PricingPlan{
			PlanName:         p.PlanName,
			Cost:             utils.ParseCost(p.Cost),
			IncludedFeatures: p.IncludedFeatures,
			PaymentOptions:   pq.StringArray(nonNil(p.PaymentOptions)),
		})
	}

	support := &models.SupportOption{
		Channels:          pq.StringArray(nonNil(req.SupportChannels)),
		Hours:             pq.StringArray{},
		TrainingOptions:   pq.StringArray(nonNil(req.TrainingOptions)),
		SelfHelpResources: req.SelfHelpResources,
	}
	if hours := strings.TrimSpace(req.SupportHours); hours != "" {
		support.Hours = pq.StringArray{hours}
	}

	return software, features, plans, support
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func mediaURLs(images, videos []string) pq.StringArray {
	urls := make(pq.StringArray, 0, len(images)+len(videos))
	urls = append(urls, images...)
	return append(urls, videos...)
}
