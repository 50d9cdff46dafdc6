package services

import (
	"jobify_backend/internal/auth"
	"jobify_backend/internal/models"
	"jobify_backend/internal/repositories"
	"jobify_backend/internal/services/dto"
	"jobify_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
	}
}

// Register creates an account. The very first registered account becomes
// the admin.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	role := models.UserRoleUser
	count, err := s.userRepo.CountAll()
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count == 0 {
		role = models.UserRoleAdmin
	}

	user := &models.User{
		Name:         req.Name,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Location:     req.Location,
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// Login verifies the credentials and issues a session token.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Msg:   "user logged in",
		Token: token,
		User:  user,
	}, nil
}
