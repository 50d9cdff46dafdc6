package handlers

import (
	"net/http"

	"jobify_backend/internal/auth"
	"jobify_backend/internal/middleware"
	"jobify_backend/internal/services"
	"jobify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService  services.AuthService
	cookieSecure bool
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  base,
		authService:  authService,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/logout", h.Logout)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.Register(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "user created"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	maxAge := int(auth.TokenTTL().Seconds())
	c.SetCookie(middleware.TokenCookieName, response.Token, maxAge, "/", "", h.cookieSecure, true)

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookieName, "logout", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"msg": "user logged out"})
}
