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

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService, v *validator.Validator) *JobHandler {
	return &JobHandler{
		BaseHandler: NewBaseHandler(v),
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobGroup := r.Group("/jobs")
	{
		jobGroup.GET("/:id", h.GetJob)

		familyOnly := jobGroup.Group("", middleware.RoleMiddleware(models.UserRoleFamily))
		{
			familyOnly.POST("", h.CreateJob)
			familyOnly.GET("", h.ListMyJobs)
			familyOnly.PUT("/:id", h.UpdateJob)
			familyOnly.DELETE("/:id", h.DeleteJob)
		}
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	job, err := h.jobService.CreateJob(db, actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	db := h.GetDB(c)
	job, err := h.jobService.GetJob(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	job, err := h.jobService.UpdateJob(db, actorID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.jobService.DeleteJob(db, actorID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job post deleted"})
}

func (h *JobHandler) ListMyJobs(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	jobs, err := h.jobService.ListMyJobs(db, actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}
