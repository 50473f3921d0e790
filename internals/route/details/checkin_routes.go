package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinRoute "fitcoach_backend/internals/features/checkins/checkins/route"
	questionRoute "fitcoach_backend/internals/features/checkins/questionnaire/route"
	scheduleRoute "fitcoach_backend/internals/features/checkins/schedule/route"
)

func CheckinUserRoutes(user fiber.Router, db *gorm.DB) {
	checkinRoute.CheckinUserRoutes(user, db)
	questionRoute.CheckinQuestionUserRoutes(user, db)
}

func CheckinAdminRoutes(admin fiber.Router, db *gorm.DB) {
	checkinRoute.CheckinAdminRoutes(admin, db)
	questionRoute.CheckinQuestionAdminRoutes(admin, db)
	scheduleRoute.CheckinScheduleAdminRoutes(admin, db)
}
