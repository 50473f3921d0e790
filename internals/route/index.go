// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/constants"
	authMiddleware "fitcoach_backend/internals/middlewares/auth"
	routeDetails "fitcoach_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================

	// PUBLIC → tanpa auth (webhook payment gateway)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	// PRIVATE (USER) → semua role login
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)

	// ADMIN → coach & owner saja
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorCoach("mengelola data coaching"),
			constants.RoleCoach, constants.RoleOwner,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(user, db)
	routeDetails.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Checkin routes...")
	routeDetails.CheckinUserRoutes(user, db)
	routeDetails.CheckinAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Progress routes...")
	routeDetails.ProgressUserRoutes(user, db)
	routeDetails.ProgressAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Billing routes...")
	routeDetails.BillingUserRoutes(user, db)
	routeDetails.BillingPublicRoutes(public, db)
}
