package handlers

import (
	"net/http"

	"careswipe_backend/internal/services"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService, v *validator.Validator) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    NewBaseHandler(v),
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profileGroup := r.Group("/profiles")
	{
		profileGroup.GET("/me", h.GetMyProfile)
		profileGroup.PUT("/me", h.UpdateMyProfile)
	}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	view, err := h.profileService.GetMyProfile(db, actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	view, err := h.profileService.UpdateMyProfile(db, actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
