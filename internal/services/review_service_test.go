package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/repository"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	catalog *repository.CatalogRepository
	service *ReviewService
	ctx     context.Context
}

func (suite *ReviewServiceTestSuite) SetupTest() {
	suite.catalog = repository.NewCatalogRepository(newSeededDB(suite.T()))
	software := NewSoftwareService(suite.catalog, NewComparisonService(suite.catalog, time.Second, nil))
	suite.service = NewReviewService(suite.catalog, software)
	suite.ctx = context.Background()
}

func validReview() CreateReviewRequest {
	return CreateReviewRequest{
		Title:               "Great for small fleets",
		FirstName:           "Dana",
		LastName:            "Reyes",
		Email:               "dana@example.com",
		OverallRating:       4,
		Pros:                "Quick setup",
		Cons:                "Few integrations",
		EaseOfUse:           5,
		CustomerSupport:     4,
		Pricing:             "$$$",
		RecommendationScore: 8,
	}
}

func (suite *ReviewServiceTestSuite) TestListForSoftware() {
	listing, err := suite.service.ListForSoftware(suite.ctx, "AiRentoSoft", ReviewQuery{})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), 3, listing.Summary.ReviewCount)
	require.NotNil(suite.T(), listing.Summary.Rating)
	assert.Equal(suite.T(), 4.7, *listing.Summary.Rating)
	assert.Equal(suite.T(), map[int]int{5: 2, 4: 1, 3: 0, 2: 0, 1: 0}, listing.Summary.Distribution)
	require.Len(suite.T(), listing.Reviews, 3)
	assert.Equal(suite.T(), "Review 1", listing.Reviews[0].Title)
}

func (suite *ReviewServiceTestSuite) TestListForSoftwareFiltersAndSorts() {
	listing, err := suite.service.ListForSoftware(suite.ctx, "airentosoft", ReviewQuery{Rating: 4})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), listing.Reviews, 1)
	assert.Equal(suite.T(), 4, listing.Reviews[0].OverallRating)
	// the summary still covers every review
	assert.Equal(suite.T(), 3, listing.Summary.ReviewCount)

	listing, err = suite.service.ListForSoftware(suite.ctx, "AiRentoSoft", ReviewQuery{Sort: models.ReviewSortLowest})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, listing.Reviews[0].OverallRating)

	listing, err = suite.service.ListForSoftware(suite.ctx, "AiRentoSoft", ReviewQuery{Sort: models.ReviewSortOldest})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Review 3", listing.Reviews[0].Title)
}

func (suite *ReviewServiceTestSuite) TestListForUnknownSoftware() {
	_, err := suite.service.ListForSoftware(suite.ctx, "Nope", ReviewQuery{})
	assert.ErrorIs(suite.T(), err, ErrSoftwareNotFound)
}

func (suite *ReviewServiceTestSuite) TestCreate() {
	software, err := suite.catalog.FindSoftwareByName(suite.ctx, "Rentall")
	require.NoError(suite.T(), err)

	review, err := suite.service.Create(suite.ctx, software.SoftwareID, validReview())
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "Dana Reyes", review.ReviewerName)
	assert.Equal(suite.T(), pq.Int64Array{5, 4}, review.CategoryRatings)
	require.NotNil(suite.T(), review.PricingPerception)
	assert.Equal(suite.T(), 60, *review.PricingPerception)
	assert.Nil(suite.T(), review.ExperienceDescription)

	listing, err := suite.service.ListForSoftware(suite.ctx, "Rentall", ReviewQuery{})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), listing.Reviews, 1)
	assert.Equal(suite.T(), "Moderately priced", listing.Reviews[0].PricingLabel)
	assert.Equal(suite.T(), "Recommended", listing.Reviews[0].RecommendationLabel)
}

func (suite *ReviewServiceTestSuite) TestCreateForMissingSoftware() {
	_, err := suite.service.Create(suite.ctx, uuid.New(), validReview())
	assert.ErrorIs(suite.T(), err, ErrSoftwareNotFound)
}

func TestReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}

func TestBuildReviewDropsUnratedCategories(t *testing.T) {
	req := validReview()
	req.EaseOfUse, req.CustomerSupport = 0, 0
	req.Pricing = ""
	req.Experience = "  Smooth rollout  "

	review := buildReview(uuid.New(), req)
	assert.Nil(t, review.CategoryRatings)
	assert.Nil(t, review.PricingPerception)
	require.NotNil(t, review.ExperienceDescription)
	assert.Equal(t, "Smooth rollout", *review.ExperienceDescription)
}

func TestParseReviewSort(t *testing.T) {
	assert.Equal(t, models.ReviewSortHighest, ParseReviewSort("highest"))
	assert.Equal(t, models.ReviewSortNewest, ParseReviewSort(""))
	assert.Equal(t, models.ReviewSortNewest, ParseReviewSort("random"))
}
