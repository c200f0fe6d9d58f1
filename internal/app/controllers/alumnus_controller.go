package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/app/services"
	"github.com/emre/alumnihub/internal/middleware"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
)

// AlumnusController handles the alumni directory endpoints
type AlumnusController struct {
	alumnusService *services.AlumnusService
}

// NewAlumnusController creates a new AlumnusController
func NewAlumnusController(alumnusService *services.AlumnusService) *AlumnusController {
	return &AlumnusController{alumnusService: alumnusService}
}

// ListAlumni returns the directory with course names resolved. An empty
// directory answers with the message payload older clients key off of.
func (c *AlumnusController) ListAlumni(ctx *gin.Context) {
	alumni, err := c.alumnusService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if len(alumni) == 0 {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "No Alumni available"})
		return
	}
	ctx.JSON(http.StatusOK, alumni)
}

// GetAlumnus returns one profile, id passed as a query parameter. The
// profile is wrapped in a one-element array, the shape the frontend's
// detail view consumes.
func (c *AlumnusController) GetAlumnus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid alumnus ID format"))
		return
	}

	alumnus, serviceErr := c.alumnusService.Get(ctx, id)
	if serviceErr != nil {
		middleware.HandleAPIError(ctx, serviceErr)
		return
	}
	ctx.JSON(http.StatusOK, []*models.AlumnusBio{alumnus})
}

// CreateAlumnus adds a verified profile through the admin panel
func (c *AlumnusController) CreateAlumnus(ctx *gin.Context) {
	var req dto.CreateAlumnusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid alumnus data"))
		return
	}

	created, err := c.alumnusService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateAlumnus edits a profile by id
func (c *AlumnusController) UpdateAlumnus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAlumnusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid alumnus data"))
		return
	}

	updated, err := c.alumnusService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// SetStatus toggles the verified flag
func (c *AlumnusController) SetStatus(ctx *gin.Context) {
	var req dto.SetAlumnusStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid status data"))
		return
	}

	if err := c.alumnusService.SetStatus(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Status updated successfully"})
}

// DeleteAlumnus removes a profile from the directory
func (c *AlumnusController) DeleteAlumnus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.alumnusService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Alumnus deleted successfully"})
}

// UpdateAccount is the self-service profile edit, submitted as a multipart
// form with the avatar in the "image" field.
func (c *AlumnusController) UpdateAccount(ctx *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid account data"))
		return
	}

	// Missing file means the avatar stays as it is.
	avatar, err := ctx.FormFile("image")
	if err != nil {
		avatar = nil
	}

	if err := c.alumnusService.UpdateAccount(ctx, &req, avatar); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Account updated successfully"})
}
