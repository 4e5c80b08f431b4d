package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/repository"
	"github.com/javajoker/rentall-backend/internal/utils"
)

type SoftwareServiceTestSuite struct {
	suite.Suite
	service *SoftwareService
	ctx     context.Context
}

func (suite *SoftwareServiceTestSuite) SetupTest() {
	catalog := repository.NewCatalogRepository(newSeededDB(suite.T()))
	suite.service = NewSoftwareService(catalog, NewComparisonService(catalog, time.Second, nil))
	suite.ctx = context.Background()
}

func (suite *SoftwareServiceTestSuite) list(params DirectoryParams) *DirectoryPage {
	if params.Limit == 0 {
		params.PaginationParams = utils.PaginationParams{Page: 1, Limit: DirectoryPageSize}
	}
	page, err := suite.service.ListDirectory(suite.ctx, params)
	require.NoError(suite.T(), err)
	return page
}

func names(products []EnrichedProduct) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func (suite *SoftwareServiceTestSuite) TestListDirectoryEnrichesProducts() {
	page := suite.list(DirectoryParams{})
	require.Equal(suite.T(), int64(2), page.Total)

	a := page.Items[0]
	assert.Equal(suite.T(), "AiRentoSoft", a.Name)
	require.NotNil(suite.T(), a.Rating)
	assert.Equal(suite.T(), 4.7, *a.Rating)
	assert.Equal(suite.T(), 3, a.ReviewCount)
	require.NotNil(suite.T(), a.LowestPrice)
	assert.Equal(suite.T(), 99.0, *a.LowestPrice)
	assert.NotNil(suite.T(), a.SupportOption)
	assert.Nil(suite.T(), a.SupportOptions)

	r := page.Items[1]
	assert.Nil(suite.T(), r.Rating)
	assert.Zero(suite.T(), r.ReviewCount)
}

func (suite *SoftwareServiceTestSuite) TestListDirectoryFilters() {
	assert.Equal(suite.T(), []string{"AiRentoSoft", "Rentall"}, names(suite.list(DirectoryParams{Features: []string{"api"}}).Items))
	assert.Equal(suite.T(), []string{"Rentall"}, names(suite.list(DirectoryParams{Features: []string{"mobile"}}).Items))
	// description matches count too
	assert.Equal(suite.T(), []string{"Rentall"}, names(suite.list(DirectoryParams{Features: []string{"agencies"}}).Items))

	assert.Equal(suite.T(), []string{"AiRentoSoft"}, names(suite.list(DirectoryParams{Models: []models.PricingModel{models.PricingModelFreeTrial}}).Items))
	assert.Equal(suite.T(), []string{"Rentall"}, names(suite.list(DirectoryParams{Models: []models.PricingModel{models.PricingModelOneTime}}).Items))
	assert.Empty(suite.T(), suite.list(DirectoryParams{Models: []models.PricingModel{models.PricingModelFree}}).Items)
	assert.Len(suite.T(), suite.list(DirectoryParams{Models: []models.PricingModel{models.PricingModelOpenSource}}).Items, 2)

	assert.Equal(suite.T(), []string{"AiRentoSoft"}, names(suite.list(DirectoryParams{MinRating: 4}).Items))
	assert.Equal(suite.T(), []string{"Rentall"}, names(suite.list(DirectoryParams{Search: "RENTALL"}).Items))
}

func (suite *SoftwareServiceTestSuite) TestListDirectoryPaginates() {
	page := suite.list(DirectoryParams{PaginationParams: utils.PaginationParams{Page: 2, Limit: 1}})
	assert.Equal(suite.T(), int64(2), page.Total)
	assert.Equal(suite.T(), []string{"Rentall"}, names(page.Items))

	page = suite.list(DirectoryParams{PaginationParams: utils.PaginationParams{Page: 3, Limit: 1}})
	assert.Empty(suite.T(), page.Items)
}

func (suite *SoftwareServiceTestSuite) TestGetByName() {
	product, err := suite.service.GetByName(suite.ctx, "airentosoft")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "AiRentoSoft", product.Name)
	assert.Len(suite.T(), product.Features, 4)
	assert.Equal(suite.T(), 3, product.ReviewCount)

	_, err = suite.service.GetByName(suite.ctx, "Nope")
	assert.ErrorIs(suite.T(), err, ErrSoftwareNotFound)
}

func (suite *SoftwareServiceTestSuite) TestSearch() {
	results, err := suite.service.Search(suite.ctx, "rento")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), "AiRentoSoft", results[0].Name)

	results, err = suite.service.Search(suite.ctx, "   ")
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *SoftwareServiceTestSuite) TestFilterOptions() {
	options := suite.service.FilterOptions()
	assert.Contains(suite.T(), options.Features, "Booking System")
	assert.Len(suite.T(), options.Models, 5)
	assert.Equal(suite.T(), "", options.Ratings[0].Value)
}

func TestSoftwareServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SoftwareServiceTestSuite))
}
