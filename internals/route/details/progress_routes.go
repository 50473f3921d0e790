package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressRoute "fitcoach_backend/internals/features/progress/analytics/route"
)

func ProgressUserRoutes(user fiber.Router, db *gorm.DB) {
	progressRoute.ProgressUserRoutes(user, db)
}

func ProgressAdminRoutes(admin fiber.Router, db *gorm.DB) {
	progressRoute.ProgressAdminRoutes(admin, db)
}
