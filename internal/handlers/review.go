// internal/handlers/review.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/rentall-backend/internal/i18n"
	"github.com/javajoker/rentall-backend/internal/services"
	"github.com/javajoker/rentall-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GET /v1/software/:name/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	query := services.ReviewQuery{
		Sort: services.ParseReviewSort(c.Query("sort")),
	}

	if ratingStr := c.Query("rating"); ratingStr != "" {
		rating, err := strconv.Atoi(ratingStr)
		if err != nil || rating < 1 || rating > 5 {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "rating"), nil)
			return
		}
		query.Rating = rating
	}

	listing, err := h.reviewService.ListForSoftware(c.Request.Context(), c.Param("name"), query)
	if err != nil {
		if errors.Is(err, services.ErrSoftwareNotFound) {
			utils.NotFoundResponse(c, "software")
			return
		}
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, listing)
}

// POST /v1/software/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	softwareID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "software id"), nil)
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), softwareID, req)
	if err != nil {
		if errors.Is(err, services.ErrSoftwareNotFound) {
			utils.NotFoundResponse(c, "software")
			return
		}
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReviewCreated),
		"review":  review,
	})
}
