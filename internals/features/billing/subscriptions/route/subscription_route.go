package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/billing/subscriptions/controller"
)

func SubscriptionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubscriptionController(db)

	user.Post("/subscriptions", ctrl.CreateSubscription)  // ➕ Buat langganan + snap token
	user.Get("/subscriptions", ctrl.GetMySubscriptions)   // 📄 Riwayat langganan
}

// SubscriptionWebhookRoutes dipasang tanpa auth; path-nya di-skip AuthMiddleware
func SubscriptionWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubscriptionController(db)

	api.Post("/subscriptions/notification", ctrl.HandleMidtransNotification) // 🟢 Webhook Midtrans
}
