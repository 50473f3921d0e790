package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/progress/analytics/controller"
)

func ProgressUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgressController(db)

	user.Get("/progress", ctrl.GetMyProgress) // 🔍 Progres sendiri
}

func ProgressAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgressController(db)

	admin.Get("/clients/:client_id/progress", ctrl.GetClientProgress) // 🔍 Progres client coach
}
