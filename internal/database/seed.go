// internal/database/seed.go
package database

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/rentall-backend/internal/models"
)

type seedListing struct {
	software models.Software
	features []string
	plans    []models.PricingPlan
	support  models.SupportOption
	ratings  []int
}

func costOf(v float64) *float64 { return &v }

func sampleListings() []seedListing {
	return []seedListing{
		{
			software: models.Software{
				Name:              "AiRentoSoft",
				Description:       "AI-driven car rental management with fleet, booking and payments in one platform.",
				UIType:            pq.StringArray{"Web", "Mobile"},
				UIDescription:     "Single dashboard with one-click booking and live availability.",
				PlatformSupported: pq.StringArray{"Web", "iOS", "Android"},
				TypicalCustomers:  pq.StringArray{"Small business", "Enterprise"},
				FreeTrial:         true,
			},
			features: []string{"API", "Booking System", "Fleet Management", "Reporting"},
			plans: []models.PricingPlan{
				{PlanName: "Starter", Cost: costOf(0), IncludedFeatures: "Up to 10 vehicles", PaymentOptions: pq.StringArray{"Subscription"}},
				{PlanName: "Growth", Cost: costOf(99), IncludedFeatures: "Unlimited vehicles, API access", PaymentOptions: pq.StringArray{"Subscription"}},
			},
			support: models.SupportOption{
				Channels:          pq.StringArray{"Email", "Phone", "Chat"},
				Hours:             pq.StringArray{"24/7"},
				TrainingOptions:   pq.StringArray{"Documentation", "Webinars"},
				SelfHelpResources: true,
			},
			ratings: []int{5, 5, 4},
		},
		{
			software: models.Software{
				Name:              "Rentall",
				Description:       "Reservation and counter software for independent rental agencies.",
				UIType:            pq.StringArray{"Web"},
				PlatformSupported: pq.StringArray{"Web"},
				TypicalCustomers:  pq.StringArray{"Small business"},
			},
			features: []string{"API", "Mobile App"},
			plans: []models.PricingPlan{
				{PlanName: "Professional", Cost: costOf(149), PaymentOptions: pq.StringArray{"One time"}},
			},
			support: models.SupportOption{
				Channels: pq.StringArray{"Email"},
				Hours:    pq.StringArray{"Business hours"},
			},
		},
	}
}

// SeedSampleData fills an empty catalog with a couple of listings for local
// development.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Software{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count software: %w", err)
	}
	if count > 0 {
		logrus.WithField("software", count).Info("Catalog already populated, skipping seed")
		return nil
	}

	logrus.Info("Seeding sample catalog...")

	for _, listing := range sampleListings() {
		err := WithTransaction(db, func(tx *gorm.DB) error {
			if err := tx.Omit("Features", "PricingPlans", "SupportOptions").Create(&listing.software).Error; err != nil {
				return err
			}
			id := listing.software.SoftwareID

			for _, name := range listing.features {
				if err := tx.Create(&models.Feature{SoftwareID: id, FeatureName: name}).Error; err != nil {
					return err
				}
			}
			for i := range listing.plans {
				listing.plans[i].SoftwareID = id
				if err := tx.Create(&listing.plans[i]).Error; err != nil {
					return err
				}
			}
			listing.support.SoftwareID = id
			if err := tx.Create(&listing.support).Error; err != nil {
				return err
			}
			for i, rating := range listing.ratings {
				review := &models.Review{
					SoftwareID:    id,
					Title:         fmt.Sprintf("Review %d", i+1),
					ReviewerName:  "Sample Reviewer",
					ReviewerEmail: "reviewer@example.com",
					OverallRating: rating,
					Pros:          "Easy to use",
					Cons:          "Reporting could be deeper",
					CreatedAt:     time.Now().Add(-time.Duration(i) * time.Hour),
				}
				if err := tx.Create(review).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", listing.software.Name, err)
		}
	}

	logrus.Info("Sample catalog seeded")
	return nil
}
