package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "fitcoach_backend/internals/features/users/users/route"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	userRoute.UserProfileRoutes(user, db)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
}
