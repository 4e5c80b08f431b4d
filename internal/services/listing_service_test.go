package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/rentall-backend/internal/repository"
)

type ListingServiceTestSuite struct {
	suite.Suite
	catalog *repository.CatalogRepository
	service *ListingService
	sent    *[]sentEmail
	notify  *NotificationService
	ctx     context.Context
}

func (suite *ListingServiceTestSuite) SetupTest() {
	suite.catalog = repository.NewCatalogRepository(newSeededDB(suite.T()))
	suite.notify, suite.sent = capturingNotifier(testConfig())
	suite.service = NewListingService(suite.catalog, suite.notify)
	suite.ctx = context.Background()
}

func wizardRequest(name string) CreateListingRequest {
	return CreateListingRequest{
		ProductName:      name,
		ShortDescription: "Counter and fleet software",
		Logo:             "https://cdn.example.com/logo.png",
		UIType:           []string{"Web"},
		Features: []ListingFeature{
			{Name: "GPS Tracking", Description: "Live map"},
			{Name: " ", Description: ""},
			{Name: "", Description: "Nameless but described"},
		},
		PricingPlans: []ListingPlan{
			{PlanName: "Basic", Cost: "$49/mo", PaymentOptions: []string{"Subscription"}},
			{PlanName: "Enterprise", Cost: "Call us"},
			{PlanName: "  ", Cost: "10"},
		},
		SupportChannels: []string{"Email"},
		SupportHours:    "9am - 6pm",
		Images:          []string{"https://cdn.example.com/1.png"},
		Videos:          []string{"https://cdn.example.com/demo.mp4"},
	}
}

func (suite *ListingServiceTestSuite) TestCreate() {
	owner := uuid.New()
	software, err := suite.service.Create(suite.ctx, owner, "vendor@example.com", wizardRequest("FleetDesk"))
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), pq.StringArray{"https://cdn.example.com/1.png", "https://cdn.example.com/demo.mp4"}, software.Content)
	require.Len(suite.T(), software.Features, 2)
	assert.Equal(suite.T(), "", software.Features[1].FeatureName)

	require.Len(suite.T(), software.PricingPlans, 2)
	require.NotNil(suite.T(), software.PricingPlans[0].Cost)
	assert.Equal(suite.T(), 49.0, *software.PricingPlans[0].Cost)
	assert.Nil(suite.T(), software.PricingPlans[1].Cost)

	support, err := suite.catalog.ListSupportOptions(suite.ctx, software.SoftwareID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), support, 1)
	assert.Equal(suite.T(), pq.StringArray{"9am - 6pm"}, support[0].Hours)

	mine, err := suite.catalog.ListSoftwareByOwner(suite.ctx, owner)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), mine, 1)

	suite.notify.Wait()
	require.Len(suite.T(), *suite.sent, 1)
	assert.Equal(suite.T(), "vendor@example.com", (*suite.sent)[0].to)
	assert.Contains(suite.T(), (*suite.sent)[0].body, "https://www.example.com/product/FleetDesk")
}

func (suite *ListingServiceTestSuite) TestCreateRejectsDuplicateName() {
	_, err := suite.service.Create(suite.ctx, uuid.New(), "", wizardRequest("airentosoft"))
	assert.ErrorIs(suite.T(), err, ErrSoftwareExists)
}

func (suite *ListingServiceTestSuite) TestEmptyHoursStoreEmptyList() {
	req := wizardRequest("QuietCars")
	req.SupportHours = ""

	software, err := suite.service.Create(suite.ctx, uuid.New(), "", req)
	require.NoError(suite.T(), err)

	support, err := suite.catalog.ListSupportOptions(suite.ctx, software.SoftwareID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), support, 1)
	assert.Empty(suite.T(), support[0].Hours)

	suite.notify.Wait()
	assert.Empty(suite.T(), *suite.sent)
}

func TestListingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ListingServiceTestSuite))
}
