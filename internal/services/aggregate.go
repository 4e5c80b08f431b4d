// internal/services/aggregate.go
package services

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/utils"
)

// EnrichedProduct is a Software row with its child collections loaded and
// the derived rating and price attached. Rating and LowestPrice are nil when
// there are no reviews or no priced plans.
type EnrichedProduct struct {
	models.Software
	SupportOption *models.SupportOption `json:"support_option"`
	Rating        *float64              `json:"rating"`
	ReviewCount   int                   `json:"review_count"`
	LowestPrice   *float64              `json:"lowest_price"`
}

// LowestPrice is the minimum positive plan cost. Free and unpriced plans
// are ignored.
func LowestPrice(plans []models.PricingPlan) *float64 {
	var lowest *float64
	for i := range plans {
		cost := plans[i].Cost
		if cost == nil || *cost <= 0 {
			continue
		}
		if lowest == nil || *cost < *lowest {
			v := *cost
			lowest = &v
		}
	}
	return lowest
}

// AverageRating is the mean of ratings rounded to one decimal place, or nil
// when there are none.
func AverageRating(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := RoundRating(float64(sum) / float64(len(ratings)))
	return &avg
}

func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// HasFeature reports whether the product lists a feature with exactly this
// name. The match is case-sensitive.
func HasFeature(product EnrichedProduct, featureName string) bool {
	for _, f := range product.Features {
		if f.FeatureName == featureName {
			return true
		}
	}
	return false
}

// BuildFeatureMatrix returns the sorted, de-duplicated union of feature
// names across products together with the membership test.
func BuildFeatureMatrix(products []EnrichedProduct) ([]string, func(EnrichedProduct, string) bool) {
	seen := make(map[string]struct{})
	names := []string{}
	for _, p := range products {
		for _, f := range p.Features {
			if _, ok := seen[f.FeatureName]; ok {
				continue
			}
			seen[f.FeatureName] = struct{}{}
			names = append(names, f.FeatureName)
		}
	}
	sort.Strings(names)
	return names, HasFeature
}

type ComparisonColumn struct {
	SoftwareID  uuid.UUID `json:"software_id"`
	Name        string    `json:"name"`
	Logo        *string   `json:"logo"`
	Rating      *float64  `json:"rating"`
	ReviewCount int       `json:"review_count"`
}

type ComparisonRow struct {
	Section   string   `json:"section"`
	Attribute string   `json:"attribute"`
	Values    []string `json:"values"`
}

type FeatureRow struct {
	Feature   string `json:"feature"`
	Available []bool `json:"available"`
}

// ComparisonTable lays out products side by side. Every row holds one value
// per column, in column order.
type ComparisonTable struct {
	Columns  []ComparisonColumn `json:"columns"`
	Rows     []ComparisonRow    `json:"rows"`
	Features []FeatureRow       `json:"features"`
}

const (
	SectionOverview = "overview"
	SectionPricing  = "pricing"
	SectionSupport  = "support"

	notSpecified = "Not specified"
)

func BuildComparisonTable(products []EnrichedProduct) ComparisonTable {
	table := ComparisonTable{
		Columns:  make([]ComparisonColumn, 0, len(products)),
		Rows:     []ComparisonRow{},
		Features: []FeatureRow{},
	}

	for _, p := range products {
		table.Columns = append(table.Columns, ComparisonColumn{
			SoftwareID:  p.SoftwareID,
			Name:        p.Name,
			Logo:        p.Logo,
			Rating:      p.Rating,
			ReviewCount: p.ReviewCount,
		})
	}

	row := func(section, attribute string, value func(EnrichedProduct) string) {
		values := make([]string, len(products))
		for i, p := range products {
			values[i] = value(p)
		}
		table.Rows = append(table.Rows, ComparisonRow{Section: section, Attribute: attribute, Values: values})
	}

	row(SectionOverview, "Description", func(p EnrichedProduct) string { return orNotSpecified(p.Description) })
	row(SectionOverview, "User Interface", func(p EnrichedProduct) string { return joinOrNotSpecified(p.UIType) })
	row(SectionOverview, "Platforms", func(p EnrichedProduct) string { return joinOrNotSpecified(p.PlatformSupported) })
	row(SectionOverview, "Typical Customers", func(p EnrichedProduct) string { return joinOrNotSpecified(p.TypicalCustomers) })
	row(SectionOverview, "Free Trial", func(p EnrichedProduct) string { return yesNo(p.FreeTrial) })
	row(SectionOverview, "Free Version", func(p EnrichedProduct) string { return yesNo(p.FreeVersion) })

	row(SectionPricing, "Starting Price", func(p EnrichedProduct) string { return utils.FormatCost(p.LowestPrice, 0) })
	row(SectionPricing, "Plans", func(p EnrichedProduct) string {
		if len(p.PricingPlans) == 0 {
			return notSpecified
		}
		plans := make([]string, len(p.PricingPlans))
		for i, plan := range p.PricingPlans {
			plans[i] = plan.PlanName + ": " + utils.FormatCost(plan.Cost, 0)
		}
		return strings.Join(plans, "; ")
	})

	row(SectionSupport, "Channels", func(p EnrichedProduct) string {
		if p.SupportOption == nil {
			return notSpecified
		}
		return joinOrNotSpecified(p.SupportOption.Channels)
	})
	row(SectionSupport, "Hours", func(p EnrichedProduct) string {
		if p.SupportOption == nil {
			return notSpecified
		}
		return joinOrNotSpecified(p.SupportOption.Hours)
	})
	row(SectionSupport, "Training", func(p EnrichedProduct) string {
		if p.SupportOption == nil {
			return notSpecified
		}
		return joinOrNotSpecified(p.SupportOption.TrainingOptions)
	})
	row(SectionSupport, "Self-help Resources", func(p EnrichedProduct) string {
		if p.SupportOption == nil {
			return notSpecified
		}
		return yesNo(p.SupportOption.SelfHelpResources)
	})

	names, has := BuildFeatureMatrix(products)
	for _, name := range names {
		available := make([]bool, len(products))
		for i, p := range products {
			available[i] = has(p, name)
		}
		table.Features = append(table.Features, FeatureRow{Feature: name, Available: available})
	}

	return table
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

func joinOrNotSpecified(values []string) string {
	if len(values) == 0 {
		return notSpecified
	}
	return strings.Join(values, ", ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
