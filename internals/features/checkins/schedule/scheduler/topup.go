package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"fitcoach_backend/internals/features/checkins/schedule/model"
	"fitcoach_backend/internals/features/checkins/schedule/service"
)

// StartCheckinTopupScheduler mengisi ulang seed check-in pending untuk semua
// schedule aktif (horizon 1 bulan). Idempoten: tanggal yang sudah ada dilewati,
// jadi aman dijalankan berulang.
func StartCheckinTopupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[TOPUP] Menjalankan top-up check-in terjadwal...")

			var schedules []model.CheckinScheduleModel
			if err := db.
				Where("checkin_schedule_is_active = ?", true).
				Find(&schedules).Error; err != nil {
				log.Printf("[TOPUP ERROR] Gagal ambil schedule aktif: %v", err)
			} else {
				total := 0
				for _, sched := range schedules {
					seeded, err := service.MaterializeSchedule(db, sched, time.Now(), service.TopupHorizon)
					if err != nil {
						log.Printf("[TOPUP ERROR] Gagal materialisasi schedule %s: %v", sched.CheckinScheduleID, err)
						continue
					}
					total += seeded
				}
				if total > 0 {
					log.Printf("[TOPUP] %d seed check-in baru dibuat dari %d schedule", total, len(schedules))
				} else {
					log.Println("[TOPUP] Tidak ada seed baru yang perlu dibuat")
				}
			}

			// Jalankan tiap 24 jam
			time.Sleep(24 * time.Hour)
		}
	}()
}
