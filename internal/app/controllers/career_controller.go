package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/app/services"
	"github.com/emre/alumnihub/internal/middleware"
)

// CareerController handles job posting endpoints
type CareerController struct {
	careerService *services.CareerService
}

// NewCareerController creates a new CareerController
func NewCareerController(careerService *services.CareerService) *CareerController {
	return &CareerController{careerService: careerService}
}

// ListJobs returns every posting, newest first
func (c *CareerController) ListJobs(ctx *gin.Context) {
	jobs, err := c.careerService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// JobBoard returns postings shaped for the public job board
func (c *CareerController) JobBoard(ctx *gin.Context) {
	jobs, err := c.careerService.ListBoard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// CreateJob stores a posting and queues the alumni notification emails.
// The response returns as soon as the posting commits; delivery is
// asynchronous.
func (c *CareerController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid job data"))
		return
	}

	id, err := c.careerService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateJobResponse{
		Message: "Job posted successfully",
		JobID:   id,
	})
}

// UpdateJob edits a posting
func (c *CareerController) UpdateJob(ctx *gin.Context) {
	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid job data"))
		return
	}

	if err := c.careerService.Update(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Job updated successfully"})
}

// DeleteJob removes a posting
func (c *CareerController) DeleteJob(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.careerService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted successfully"})
}
