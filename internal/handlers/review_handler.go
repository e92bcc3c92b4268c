package handlers

import (
	"net/http"

	"careswipe_backend/internal/middleware"
	"careswipe_backend/internal/models"
	"careswipe_backend/internal/services"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService, v *validator.Validator) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   NewBaseHandler(v),
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	reviewGroup := r.Group("/reviews")
	{
		reviewGroup.POST("", middleware.RoleMiddleware(models.UserRoleFamily), h.CreateReview)
		reviewGroup.GET("/caregiver/:id", h.GetCaregiverReviews)
		reviewGroup.GET("/caregiver/:id/stats", h.GetCaregiverRatingStats)
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	review, err := h.reviewService.CreateReview(db, actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetCaregiverReviews(c *gin.Context) {
	db := h.GetDB(c)
	reviews, err := h.reviewService.GetCaregiverReviews(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

func (h *ReviewHandler) GetCaregiverRatingStats(c *gin.Context) {
	db := h.GetDB(c)
	stats, err := h.reviewService.GetCaregiverRatingStats(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
