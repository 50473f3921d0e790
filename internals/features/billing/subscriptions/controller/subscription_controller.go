// 📁 controller/subscription_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/billing/subscriptions/dto"
	"fitcoach_backend/internals/features/billing/subscriptions/model"
	subscriptionService "fitcoach_backend/internals/features/billing/subscriptions/service"
	userModel "fitcoach_backend/internals/features/users/users/model"
	helper "fitcoach_backend/internals/helpers"
)

var validate = validator.New()

type SubscriptionController struct {
	DB *gorm.DB
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db}
}

// ➕ POST /api/u/subscriptions — buat langganan baru & snap token Midtrans
func (ctrl *SubscriptionController) CreateSubscription(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateSubscriptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	amount, ok := model.PlanPrices[body.SubscriptionPlan]
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown subscription plan")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	// 🧾 Generate order ID unik
	orderID := fmt.Sprintf("SUBSCRIPTION-%d", time.Now().UnixNano())

	sub := model.SubscriptionModel{
		SubscriptionUserID:         userID,
		SubscriptionPlan:           body.SubscriptionPlan,
		SubscriptionAmount:         amount,
		SubscriptionStatus:         model.SubscriptionStatusPending,
		SubscriptionOrderID:        orderID,
		SubscriptionPaymentGateway: "midtrans",
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subscription")
	}

	// 🔐 Buat snap token Midtrans untuk pembayaran
	token, err := subscriptionService.GenerateSnapToken(sub, user.UserName, user.UserEmail)
	if err != nil {
		log.Println("[ERROR] Gagal membuat snap token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment token")
	}

	sub.SubscriptionPaymentToken = token
	ctrl.DB.Save(&sub)

	return helper.JsonCreated(c, "Subscription created. Please continue with payment.", fiber.Map{
		"subscription": dto.ToSubscriptionDTO(sub),
		"snap_token":   token,
	})
}

// 📄 GET /api/u/subscriptions — riwayat langganan user
func (ctrl *SubscriptionController) GetMySubscriptions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var subs []model.SubscriptionModel
	if err := ctrl.DB.
		Where("subscription_user_id = ?", userID).
		Order("subscription_created_at DESC").
		Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve subscriptions")
	}

	resp := make([]dto.SubscriptionDTO, len(subs))
	for i, s := range subs {
		resp[i] = dto.ToSubscriptionDTO(s)
	}

	return helper.JsonOK(c, "Subscriptions fetched successfully", resp)
}

// 🟢 POST /api/subscriptions/notification — webhook Midtrans (tanpa auth)
func (ctrl *SubscriptionController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	if err := subscriptionService.HandleSubscriptionStatusWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Notification processed", nil)
}
