package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/checkins/checkins/controller"
	"fitcoach_backend/internals/middlewares"
)

func CheckinUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCheckinController(db)

	// 📚 Group: /checkins
	checkin := user.Group("/checkins")
	checkin.Post("/", ctrl.CreateCheckin)                     // ➕ Check-in spontan
	checkin.Get("/", ctrl.GetMyCheckins)                      // 📄 Riwayat check-in sendiri
	checkin.Get("/:id", ctrl.GetCheckinByID)                  // 🔍 Detail check-in
	checkin.Patch("/:id/submit", ctrl.SubmitScheduledCheckin) // ✏️ Isi seed pending dari jadwal
	checkin.Post("/:id/photos",
		middlewares.PhotoUploadRateLimiter(),
		ctrl.UploadCheckinPhoto) // 📷 Upload foto progress
}
