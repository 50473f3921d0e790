// file: internals/features/billing/subscriptions/model/subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status langganan
const (
	SubscriptionStatusPending  = "pending"
	SubscriptionStatusActive   = "active"
	SubscriptionStatusExpired  = "expired"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusFailed   = "failed"
)

// Plan yang tersedia beserta harganya (IDR)
var PlanPrices = map[string]int{
	"monthly":   150000,
	"quarterly": 400000,
	"yearly":    1400000,
}

// Durasi tiap plan
var PlanDurations = map[string]time.Duration{
	"monthly":   30 * 24 * time.Hour,
	"quarterly": 90 * 24 * time.Hour,
	"yearly":    365 * 24 * time.Hour,
}

type SubscriptionModel struct {
	SubscriptionID       uuid.UUID `gorm:"column:subscription_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"subscription_id"`
	SubscriptionUserID   uuid.UUID `gorm:"column:subscription_user_id;type:uuid;not null;index" json:"subscription_user_id"`
	SubscriptionPlan     string    `gorm:"column:subscription_plan;type:varchar(20);not null" json:"subscription_plan"`
	SubscriptionAmount   int       `gorm:"column:subscription_amount;not null" json:"subscription_amount"`
	SubscriptionStatus   string    `gorm:"column:subscription_status;type:varchar(20);not null;default:'pending'" json:"subscription_status"`
	SubscriptionOrderID  string    `gorm:"column:subscription_order_id;type:varchar(100);not null;uniqueIndex" json:"subscription_order_id"`
	SubscriptionPaymentGateway string `gorm:"column:subscription_payment_gateway;type:varchar(20);not null;default:'midtrans'" json:"subscription_payment_gateway"`
	SubscriptionPaymentToken   string `gorm:"column:subscription_payment_token;type:varchar(255)" json:"subscription_payment_token,omitempty"`

	SubscriptionPaidAt    *time.Time `gorm:"column:subscription_paid_at" json:"subscription_paid_at,omitempty"`
	SubscriptionExpiresAt *time.Time `gorm:"column:subscription_expires_at" json:"subscription_expires_at,omitempty"`

	SubscriptionCreatedAt time.Time      `gorm:"column:subscription_created_at;autoCreateTime" json:"subscription_created_at"`
	SubscriptionUpdatedAt time.Time      `gorm:"column:subscription_updated_at;autoUpdateTime" json:"subscription_updated_at"`
	SubscriptionDeletedAt gorm.DeletedAt `gorm:"column:subscription_deleted_at;index" json:"subscription_deleted_at,omitempty"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
