package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/checkins/questionnaire/controller"
)

func CheckinQuestionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCheckinQuestionController(db)

	// 📚 Group: /checkin-questions
	question := admin.Group("/checkin-questions")
	question.Post("/", ctrl.CreateCheckinQuestion)      // ➕ Buat pertanyaan check-in
	question.Get("/", ctrl.GetAllCheckinQuestions)      // 📄 Lihat semua pertanyaan
	question.Patch("/:id", ctrl.UpdateCheckinQuestion)  // ✏️ Edit pertanyaan
	question.Delete("/:id", ctrl.DeleteCheckinQuestion) // ❌ Hapus pertanyaan
}
