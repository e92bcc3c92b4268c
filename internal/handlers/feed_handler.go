package handlers

import (
	"net/http"

	"careswipe_backend/internal/middleware"
	"careswipe_backend/internal/services"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/internal/validator"
	"careswipe_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	*BaseHandler
	feedService services.FeedService
}

func NewFeedHandler(feedService services.FeedService, v *validator.Validator) *FeedHandler {
	return &FeedHandler{
		BaseHandler: NewBaseHandler(v),
		feedService: feedService,
	}
}

func (h *FeedHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/feed", h.GetFeed)
}

// GetFeed returns the actor's next page of candidates. An empty page is a
// 200 with an empty list, not an error.
func (h *FeedHandler) GetFeed(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	role, ok := middleware.RoleFromContext(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User role missing from context"))
		return
	}

	var filters dto.FeedFilters
	if !h.BindAndValidateQuery(c, &filters) {
		return
	}
	limit := ParseQueryInt(c, "limit", 0)

	db := h.GetDB(c)
	candidates, err := h.feedService.GetCandidates(db, actorID, role, filters, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates": candidates,
		"total":      len(candidates),
	})
}
