package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"jobify_backend/internal/middleware"
	"jobify_backend/internal/models"
	"jobify_backend/internal/services"
	"jobify_backend/internal/services/dto"
	"jobify_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	*BaseHandler
	userService      services.UserService
	maxAvatarSize    int64
	allowedMimeTypes []string
}

func NewUserHandler(base *BaseHandler, userService services.UserService, maxAvatarSize int64, allowedMimeTypes []string) *UserHandler {
	return &UserHandler{
		BaseHandler:      base,
		userService:      userService,
		maxAvatarSize:    maxAvatarSize,
		allowedMimeTypes: allowedMimeTypes,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/current-user", h.GetCurrentUser)
		users.PATCH("/update-user", h.UpdateUser)

		admin := users.Group("/admin")
		admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
		{
			admin.GET("/app-stats", h.GetApplicationStats)
		}
	}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.userService.CurrentUser(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser accepts either a JSON body or a multipart form; only the
// multipart form may carry an avatar file. The file is spooled to a
// local temp file first; the service owns its cleanup.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	avatar, ok := h.extractAvatar(c)
	if !ok {
		return
	}

	if err := h.userService.UpdateUser(c.Request.Context(), middleware.GetUserID(c), &req, avatar); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "user updated"})
}

func (h *UserHandler) GetApplicationStats(c *gin.Context) {
	stats, err := h.userService.AppStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// extractAvatar spools an attached avatar file to the OS temp dir and
// validates its size and type. Returns (nil, true) when no file was sent.
func (h *UserHandler) extractAvatar(c *gin.Context) (*dto.AvatarUpload, bool) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, true
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		// no file attached is fine for a plain profile update
		return nil, true
	}

	if h.maxAvatarSize > 0 && file.Size > h.maxAvatarSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError(
			fmt.Sprintf("Avatar file too large (max %d bytes)", h.maxAvatarSize)))
		return nil, false
	}

	contentType := file.Header.Get("Content-Type")
	if len(h.allowedMimeTypes) > 0 && !containsString(h.allowedMimeTypes, contentType) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Avatar must be an image"))
		return nil, false
	}

	ext := filepath.Ext(file.Filename)
	tempPath := filepath.Join(os.TempDir(), "avatar-"+uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return nil, false
	}

	return &dto.AvatarUpload{
		TempPath:    tempPath,
		ContentType: contentType,
		Ext:         ext,
	}, true
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
