// internal/handlers/blog.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/rentall-backend/internal/i18n"
	"github.com/javajoker/rentall-backend/internal/services"
	"github.com/javajoker/rentall-backend/internal/utils"
)

type BlogHandler struct {
	blogService *services.BlogService
}

func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// GET /v1/blogs
func (h *BlogHandler) ListPosts(c *gin.Context) {
	filter := services.BlogFilter{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Search:   c.Query("q"),
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		if featured, err := strconv.ParseBool(featuredStr); err == nil {
			filter.Featured = &featured
		}
	}

	utils.SuccessResponse(c, gin.H{
		"posts": h.blogService.List(filter),
	})
}

// GET /v1/blogs/categories
func (h *BlogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, h.blogService.Categories())
}

// GET /v1/blogs/:id
func (h *BlogHandler) GetPost(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "post id"), nil)
		return
	}

	post, err := h.blogService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrBlogPostNotFound) {
			utils.NotFoundResponse(c, "blog")
			return
		}
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"post": post,
	})
}
