package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/app/services"
	"github.com/emre/alumnihub/internal/middleware"
)

// SiteController handles the dashboard counts, gallery and settings
// endpoints.
type SiteController struct {
	siteService *services.SiteService
}

// NewSiteController creates a new SiteController
func NewSiteController(siteService *services.SiteService) *SiteController {
	return &SiteController{siteService: siteService}
}

// Counts returns the dashboard totals, recomputed per request
func (c *SiteController) Counts(ctx *gin.Context) {
	counts, err := c.siteService.Counts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}

// Gallery returns every photo, newest first
func (c *SiteController) Gallery(ctx *gin.Context) {
	items, err := c.siteService.Gallery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Settings returns the site settings rows. No rows answers with the
// message payload older clients key off of.
func (c *SiteController) Settings(ctx *gin.Context) {
	settings, err := c.siteService.Settings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if len(settings) == 0 {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "No Data Available"})
		return
	}
	ctx.JSON(http.StatusOK, settings)
}
