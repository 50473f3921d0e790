package dto

import (
	"time"

	"github.com/google/uuid"

	"fitcoach_backend/internals/features/billing/subscriptions/model"
)

// ====================
// Response DTO
// ====================
type SubscriptionDTO struct {
	SubscriptionID        uuid.UUID  `json:"subscription_id"`
	SubscriptionUserID    uuid.UUID  `json:"subscription_user_id"`
	SubscriptionPlan      string     `json:"subscription_plan"`
	SubscriptionAmount    int        `json:"subscription_amount"`
	SubscriptionStatus    string     `json:"subscription_status"`
	SubscriptionOrderID   string     `json:"subscription_order_id"`
	SubscriptionPaidAt    *time.Time `json:"subscription_paid_at,omitempty"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
	SubscriptionCreatedAt time.Time  `json:"subscription_created_at"`
}

// ====================
// Request DTO
// ====================
type CreateSubscriptionRequest struct {
	SubscriptionPlan string `json:"subscription_plan" validate:"required,oneof=monthly quarterly yearly"`
}

// ====================
// Converter
// ====================
func ToSubscriptionDTO(m model.SubscriptionModel) SubscriptionDTO {
	return SubscriptionDTO{
		SubscriptionID:        m.SubscriptionID,
		SubscriptionUserID:    m.SubscriptionUserID,
		SubscriptionPlan:      m.SubscriptionPlan,
		SubscriptionAmount:    m.SubscriptionAmount,
		SubscriptionStatus:    m.SubscriptionStatus,
		SubscriptionOrderID:   m.SubscriptionOrderID,
		SubscriptionPaidAt:    m.SubscriptionPaidAt,
		SubscriptionExpiresAt: m.SubscriptionExpiresAt,
		SubscriptionCreatedAt: m.SubscriptionCreatedAt,
	}
}
