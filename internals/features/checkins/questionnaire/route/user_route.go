package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/checkins/questionnaire/controller"
)

func CheckinQuestionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCheckinQuestionController(db)

	question := user.Group("/checkin-questions")
	question.Get("/active", ctrl.GetActiveCheckinQuestions) // 📄 Pertanyaan aktif untuk form check-in
}
