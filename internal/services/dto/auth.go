package dto

import "jobify_backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	LastName string `json:"lastName"`
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required"`
	Location string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Msg   string       `json:"msg"`
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
