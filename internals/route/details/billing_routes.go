package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subscriptionRoute "fitcoach_backend/internals/features/billing/subscriptions/route"
)

func BillingUserRoutes(user fiber.Router, db *gorm.DB) {
	subscriptionRoute.SubscriptionUserRoutes(user, db)
}

func BillingPublicRoutes(public fiber.Router, db *gorm.DB) {
	subscriptionRoute.SubscriptionWebhookRoutes(public, db)
}
