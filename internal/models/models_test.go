package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestReviewPricingLabel(t *testing.T) {
	cases := []struct {
		perception *int
		want       string
	}{
		{nil, ""},
		{intPtr(0), ""},
		{intPtr(20), "Very affordable"},
		{intPtr(40), "Affordable"},
		{intPtr(60), "Moderately priced"},
		{intPtr(80), "Expensive"},
		{intPtr(100), "Very expensive"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Review{PricingPerception: tc.perception}.PricingLabel())
	}
}

func TestReviewRecommendationLabel(t *testing.T) {
	assert.Equal(t, "", Review{}.RecommendationLabel())
	assert.Equal(t, "", Review{RecommendationScore: intPtr(0)}.RecommendationLabel())
	assert.Equal(t, "Not recommended", Review{RecommendationScore: intPtr(3)}.RecommendationLabel())
	assert.Equal(t, "Neutral", Review{RecommendationScore: intPtr(5)}.RecommendationLabel())
	assert.Equal(t, "Recommended", Review{RecommendationScore: intPtr(8)}.RecommendationLabel())
	assert.Equal(t, "Highly recommended", Review{RecommendationScore: intPtr(10)}.RecommendationLabel())
}

func TestPricingPlanHasPaymentOption(t *testing.T) {
	plan := PricingPlan{PaymentOptions: pq.StringArray{PaymentOptionSubscription}}
	assert.True(t, plan.HasPaymentOption(PaymentOptionSubscription))
	assert.False(t, plan.HasPaymentOption(PaymentOptionOneTime))
	assert.False(t, PricingPlan{}.HasPaymentOption(PaymentOptionSubscription))
}

func TestContactSubmissionFullName(t *testing.T) {
	assert.Equal(t, "Ana Diaz", ContactSubmission{FirstName: "Ana", LastName: "Diaz"}.FullName())
	assert.Equal(t, "Ana", ContactSubmission{FirstName: "Ana"}.FullName())
	assert.Equal(t, "Diaz", ContactSubmission{LastName: "Diaz"}.FullName())
}

func TestBlogPostHasTag(t *testing.T) {
	post := BlogPost{Tags: []string{"fleet", "pricing"}}
	assert.True(t, post.HasTag("fleet"))
	assert.False(t, post.HasTag("Fleet"))
}
