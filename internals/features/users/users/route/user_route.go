package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/users/users/controller"
)

func UserProfileRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	user.Get("/me", ctrl.GetMe)      // 🔍 Profil sendiri
	user.Patch("/me", ctrl.UpdateMe) // ✏️ Update profil & goal
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	admin.Get("/clients", ctrl.GetMyClients) // 📄 Daftar client coach
}
