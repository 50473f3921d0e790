package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/checkins/checkins/controller"
)

func CheckinAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCheckinController(db)

	admin.Get("/clients/:client_id/checkins", ctrl.GetClientCheckins) // 📄 Riwayat check-in client
	admin.Patch("/checkins/:id/feedback", ctrl.GiveCheckinFeedback)   // ✏️ Feedback + review coach
}
