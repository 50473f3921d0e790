package dto

import (
	"time"

	"github.com/google/uuid"

	"fitcoach_backend/internals/features/users/users/model"
)

// ====================
// Response DTO
// ====================
type UserDTO struct {
	UserID         uuid.UUID  `json:"user_id"`
	UserName       string     `json:"user_name"`
	UserEmail      string     `json:"user_email"`
	UserRole       string     `json:"user_role"`
	UserCoachID    *uuid.UUID `json:"user_coach_id,omitempty"`
	UserGoalWeight *float64   `json:"user_goal_weight,omitempty"`
	UserHeightCm   *float64   `json:"user_height_cm,omitempty"`
	UserIsActive   bool       `json:"user_is_active"`
	UserCreatedAt  time.Time  `json:"user_created_at"`
}

// ====================
// Request DTO
// ====================
type UpdateProfileRequest struct {
	UserName       *string  `json:"user_name" validate:"omitempty,min=2,max=100"`
	UserGoalWeight *float64 `json:"user_goal_weight" validate:"omitempty,gt=0"`
	UserHeightCm   *float64 `json:"user_height_cm" validate:"omitempty,gt=0"`
}

// ====================
// Converter
// ====================
func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:         m.UserID,
		UserName:       m.UserName,
		UserEmail:      m.UserEmail,
		UserRole:       m.UserRole,
		UserCoachID:    m.UserCoachID,
		UserGoalWeight: m.UserGoalWeight,
		UserHeightCm:   m.UserHeightCm,
		UserIsActive:   m.UserIsActive,
		UserCreatedAt:  m.UserCreatedAt,
	}
}
