package handlers

import (
	"net/http"

	"careswipe_backend/internal/models"
	"careswipe_backend/internal/services"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	*BaseHandler
	swipeService services.SwipeService
}

func NewSwipeHandler(swipeService services.SwipeService, v *validator.Validator) *SwipeHandler {
	return &SwipeHandler{
		BaseHandler:  NewBaseHandler(v),
		swipeService: swipeService,
	}
}

func (h *SwipeHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/swipes", h.RecordSwipe)
	r.GET("/swipes", h.ListSwipes)
	r.GET("/matches", h.ListMatches)
}

// RecordSwipe persists the decision and, for likes, immediately evaluates
// reciprocity so the client learns about a match in the same response.
func (h *SwipeHandler) RecordSwipe(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RecordSwipeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	result, err := h.swipeService.RecordSwipe(db, actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	outcome := &dto.MatchOutcome{IsMatch: false}
	if result.Swipe.Direction == models.SwipeDirectionLike {
		outcome, err = h.swipeService.EvaluateAndMatch(
			db,
			result.Swipe.FamilyID,
			result.Swipe.CaregiverID,
			result.Swipe.JobPostID,
			result.Swipe.Direction,
		)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
	}

	status := http.StatusOK
	if result.WasNew {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"swipe":    result.Swipe,
		"was_new":  result.WasNew,
		"is_match": outcome.IsMatch,
		"match":    outcome.Match,
	})
}

func (h *SwipeHandler) ListSwipes(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	swipes, err := h.swipeService.ListSwipesForUser(db, actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"swipes": swipes,
		"total":  len(swipes),
	})
}

func (h *SwipeHandler) ListMatches(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	matches, err := h.swipeService.ListMatchesForUser(db, actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"total":   len(matches),
	})
}
