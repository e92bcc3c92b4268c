package dto

import "careswipe_backend/internal/models"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
	Role     string `json:"role" binding:"required" validate:"required,is-user-role"`
	Name     string `json:"name" binding:"required" validate:"required,min=2,max=120"`
	Location string `json:"location" validate:"max=200"`
	Phone    string `json:"phone" validate:"max=30"`
	Bio      string `json:"bio" validate:"max=2000"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	UserID      string          `json:"user_id"`
	Role        models.UserRole `json:"role"`
}
