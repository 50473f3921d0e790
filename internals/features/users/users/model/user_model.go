// file: internals/features/users/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel: profil client/coach. Identitas & kredensial dikelola identity
// provider eksternal; user_id di sini = subject dari token JWT.
type UserModel struct {
	UserID    uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid" json:"user_id"`
	UserName  string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserRole  string    `gorm:"column:user_role;type:varchar(10);not null;default:'client'" json:"user_role"`

	// Linkage client → coach
	UserCoachID *uuid.UUID `gorm:"column:user_coach_id;type:uuid;index" json:"user_coach_id,omitempty"`

	// Target untuk milestone berat badan
	UserGoalWeight *float64 `gorm:"column:user_goal_weight" json:"user_goal_weight,omitempty"`
	UserHeightCm   *float64 `gorm:"column:user_height_cm" json:"user_height_cm,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

// TableName mengikat model ke tabel users
func (UserModel) TableName() string {
	return "users"
}
