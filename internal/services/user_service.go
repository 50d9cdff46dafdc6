package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"jobify_backend/internal/logger"
	"jobify_backend/internal/models"
	"jobify_backend/internal/repositories"
	"jobify_backend/internal/services/dto"
	"jobify_backend/internal/storage"
	"jobify_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UserService interface {
	CurrentUser(userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserRequest, avatar *dto.AvatarUpload) error
	AppStats() (*dto.AppStatsResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	store    storage.Storage
}

func NewUserService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository, store storage.Storage) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		store:    store,
	}
}

func (s *UserServiceImpl) CurrentUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateUser applies a partial profile update. The request DTO carries no
// password field, so the stored credential cannot change through this
// path. With an avatar attached the update runs as a three-state swap;
// see avatarSwap below.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserRequest, avatar *dto.AvatarUpload) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}

	if avatar == nil {
		if len(fields) == 0 {
			return nil
		}
		if _, err := s.userRepo.UpdateProfile(userID, fields); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.InternalError(err)
		}
		return nil
	}

	swap := &avatarSwap{store: s.store, userRepo: s.userRepo}
	return swap.run(ctx, userID, fields, avatar)
}

func (s *UserServiceImpl) AppStats() (*dto.AppStatsResponse, error) {
	users, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobs, err := s.jobRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AppStatsResponse{Users: users, Jobs: jobs}, nil
}

// avatarSwap is the two-phase avatar replacement: upload the new image,
// persist the new reference, then delete the old image. The old image is
// never deleted before the record durably points at the new one; if the
// persist step fails, the previous avatar stays intact. Failing to delete
// the old object is logged and swallowed (an orphaned object, not a
// broken profile).
type avatarSwap struct {
	store    storage.Storage
	userRepo repositories.UserRepository
	state    swapState
}

type swapState int

const (
	stateUploading swapState = iota
	statePersisting
	stateCleaningUpOld
)

func (a *avatarSwap) run(ctx context.Context, userID string, fields map[string]interface{}, avatar *dto.AvatarUpload) error {
	a.state = stateUploading

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.NewString(), avatar.Ext)

	err := a.upload(ctx, key, avatar)
	// temp file is removed no matter how the upload went
	if rmErr := os.Remove(avatar.TempPath); rmErr != nil && !os.IsNotExist(rmErr) {
		logger.CtxWarn(ctx, "failed to remove temp avatar file", "path", avatar.TempPath, "error", rmErr.Error())
	}
	if err != nil {
		return apperrors.ExternalServiceError(err, "Failed to upload avatar")
	}

	a.state = statePersisting

	url, err := a.store.GetURL(ctx, key)
	if err != nil {
		return apperrors.ExternalServiceError(err, "Failed to resolve avatar URL")
	}

	fields["avatar"] = url
	fields["avatar_key"] = key

	previous, err := a.userRepo.UpdateProfile(userID, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	a.state = stateCleaningUpOld

	if previous.AvatarKey != "" && previous.AvatarKey != key {
		if err := a.store.Delete(ctx, previous.AvatarKey); err != nil {
			// non-fatal: the record already points at the new image
			logger.CtxWarn(ctx, "failed to delete replaced avatar", "key", previous.AvatarKey, "error", err.Error())
		}
	}

	return nil
}

func (a *avatarSwap) upload(ctx context.Context, key string, avatar *dto.AvatarUpload) error {
	file, err := os.Open(avatar.TempPath)
	if err != nil {
		return fmt.Errorf("failed to open temp file: %w", err)
	}
	defer file.Close()

	contentType := avatar.ContentType
	if contentType == "" {
		contentType = mimeTypeFromExt(filepath.Ext(avatar.TempPath))
	}

	return a.store.Save(ctx, key, file, contentType)
}

func mimeTypeFromExt(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
