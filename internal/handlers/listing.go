// internal/handlers/listing.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/rentall-backend/internal/i18n"
	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/services"
	"github.com/javajoker/rentall-backend/internal/utils"
)

type ListingHandler struct {
	listingService  *services.ListingService
	softwareService *services.SoftwareService
	storageService  *services.StorageService
}

func NewListingHandler(listingService *services.ListingService, softwareService *services.SoftwareService, storageService *services.StorageService) *ListingHandler {
	return &ListingHandler{
		listingService:  listingService,
		softwareService: softwareService,
		storageService:  storageService,
	}
}

// POST /v1/listings
func (h *ListingHandler) CreateListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	software, err := h.listingService.Create(c.Request.Context(), ownerID, c.GetString("user_email"), req)
	if err != nil {
		if errors.Is(err, services.ErrSoftwareExists) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeySoftwareExists))
			return
		}
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyListingCreated),
		"software": software,
	})
}

// GET /v1/listings/mine
func (h *ListingHandler) GetMyListings(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	software, err := h.softwareService.ListOwned(c.Request.Context(), ownerID)
	if err != nil {
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"software": software,
	})
}

// POST /v1/media
func (h *ListingHandler) UploadMedia(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	mediaType := models.MediaType(c.PostForm("type"))
	if _, err := h.storageService.GetUploadOptions(mediaType); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyMediaInvalidType), nil)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyMediaMissingFile), nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadMedia(c.Request.Context(), userID, mediaType, file, header)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) || errors.Is(err, services.ErrFileTypeRejected) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyMediaUploaded),
		"file":    result,
	})
}

// currentUserID reads the authenticated caller, writing the error response
// itself when there is none.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return uuid.Nil, false
	}
	return userID, true
}
