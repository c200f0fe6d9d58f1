package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/app/services"
	"github.com/emre/alumnihub/internal/middleware"
)

// AuthController handles login, signup and session endpoints
type AuthController struct {
	authService  *services.AuthService
	cookieName   string
	cookieMaxAge int
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, cookieName string, cookieMaxAge int) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
	}
}

// Login verifies credentials and sets the session cookie. A failed login
// answers 200 with loginStatus false, the shape the frontend switches on.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email and password are required"))
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if resp.LoginStatus {
		ctx.SetCookie(c.cookieName, resp.Token, c.cookieMaxAge, "/", "", false, true)
	}

	ctx.JSON(http.StatusOK, resp)
}

// Signup registers an alumnus or student account
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid signup data"))
		return
	}

	resp, err := c.authService.Signup(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RegisterAdmin registers an admin account
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.AdminRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid registration data"))
		return
	}

	resp, err := c.authService.RegisterAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Logout clears the session cookie
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}
