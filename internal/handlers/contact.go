// internal/handlers/contact.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/rentall-backend/internal/i18n"
	"github.com/javajoker/rentall-backend/internal/services"
	"github.com/javajoker/rentall-backend/internal/utils"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// POST /v1/contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	submission, err := h.contactService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyContactReceived),
		"id":      submission.ID,
	})
}

// POST /v1/contact/vendor-interest
func (h *ContactHandler) SubmitVendorInterest(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.VendorInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	submission, err := h.contactService.SubmitVendorInterest(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVendorInterestReceived),
		"id":      submission.ID,
	})
}
