package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/checkins/schedule/controller"
)

func CheckinScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCheckinScheduleController(db)

	// 📚 Group: /checkin-schedules
	schedule := admin.Group("/checkin-schedules")
	schedule.Post("/", ctrl.CreateCheckinSchedule)      // ➕ Buat jadwal check-in + seed 3 bulan
	schedule.Get("/", ctrl.GetCheckinSchedules)         // 📄 Lihat semua jadwal coach
	schedule.Get("/:id", ctrl.GetCheckinScheduleByID)   // 🔍 Detail jadwal
	schedule.Patch("/:id", ctrl.UpdateCheckinSchedule)  // ✏️ Edit jadwal
	schedule.Delete("/:id", ctrl.DeleteCheckinSchedule) // ❌ Hapus jadwal
}
