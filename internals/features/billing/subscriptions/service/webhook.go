package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"fitcoach_backend/internals/features/billing/subscriptions/model"
)

// HandleSubscriptionStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
func HandleSubscriptionStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var sub model.SubscriptionModel
	if err := db.Where("subscription_order_id = ?", orderID).First(&sub).Error; err != nil {
		log.Println("[ERROR] Langganan tidak ditemukan:", err)
		return fmt.Errorf("subscription with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		sub.SubscriptionStatus = model.SubscriptionStatusActive
		sub.SubscriptionPaidAt = &now

		// Hitung masa berlaku dari plan yang dibayar
		if dur, ok := model.PlanDurations[sub.SubscriptionPlan]; ok {
			expires := now.Add(dur)
			sub.SubscriptionExpiresAt = &expires
		}

	case "expire":
		sub.SubscriptionStatus = model.SubscriptionStatusExpired
	case "cancel", "deny":
		sub.SubscriptionStatus = model.SubscriptionStatusCanceled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	if err := db.Save(&sub).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status langganan:", err)
		return err
	}

	return nil
}
