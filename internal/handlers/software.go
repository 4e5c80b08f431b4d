// internal/handlers/software.go
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/rentall-backend/internal/i18n"
	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/services"
	"github.com/javajoker/rentall-backend/internal/utils"
)

type SoftwareHandler struct {
	softwareService   *services.SoftwareService
	comparisonService *services.ComparisonService
}

func NewSoftwareHandler(softwareService *services.SoftwareService, comparisonService *services.ComparisonService) *SoftwareHandler {
	return &SoftwareHandler{
		softwareService:   softwareService,
		comparisonService: comparisonService,
	}
}

// GET /v1/software
func (h *SoftwareHandler) ListSoftware(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	params := services.DirectoryParams{
		PaginationParams: utils.GetPaginationParams(c, services.DirectoryPageSize),
		Search:           strings.TrimSpace(c.Query("search")),
		Features:         splitList(c.QueryArray("features")),
	}

	for _, m := range splitList(c.QueryArray("model")) {
		params.Models = append(params.Models, models.PricingModel(m))
	}

	if minRatingStr := c.Query("min_rating"); minRatingStr != "" {
		minRating, err := strconv.ParseFloat(minRatingStr, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "min_rating"), nil)
			return
		}
		params.MinRating = minRating
	}

	page, err := h.softwareService.ListDirectory(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(page.Items, page.Total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /v1/software/filters
func (h *SoftwareHandler) GetFilters(c *gin.Context) {
	utils.SuccessResponse(c, h.softwareService.FilterOptions())
}

// GET /v1/software/search
func (h *SoftwareHandler) SearchSoftware(c *gin.Context) {
	results, err := h.softwareService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"software": results,
	})
}

// GET /v1/software/:name
func (h *SoftwareHandler) GetSoftware(c *gin.Context) {
	product, err := h.softwareService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, services.ErrSoftwareNotFound) {
			utils.NotFoundResponse(c, "software")
			return
		}
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"software": product,
	})
}

// GET /v1/compare
func (h *SoftwareHandler) Compare(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	names := compareNames(c.QueryArray("names"))

	products, err := h.comparisonService.FetchComparisonSet(c.Request.Context(), names)
	if err != nil {
		if errors.Is(err, services.ErrInvalidComparisonSet) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyComparisonInvalid), gin.H{
				"min": services.MinComparisonSize,
				"max": services.MaxComparisonSize,
			})
			return
		}
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	if len(products) == 0 {
		utils.SuccessResponse(c, gin.H{
			"products": products,
			"empty":    true,
			"message":  i18n.T(lang, i18n.KeyComparisonEmpty),
		})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
		"table":    services.BuildComparisonTable(products),
		"empty":    false,
	})
}

// compareNames keeps each repeated names value as one exact product name,
// commas included. Blank values are dropped.
func compareNames(values []string) []string {
	names := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			names = append(names, value)
		}
	}
	return names
}

// splitList flattens repeated and comma separated query values, dropping
// blanks.
func splitList(values []string) []string {
	var items []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}
