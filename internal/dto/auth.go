package dto

import "github.com/alisyos/daily-report-sub000/internal/core/domain"

// LoginRequest carries employee credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed session token and the principal it embeds.
type LoginResponse struct {
	Token     string           `json:"token"`
	Principal domain.Principal `json:"principal"`
}
