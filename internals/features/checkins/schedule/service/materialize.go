// file: internals/features/checkins/schedule/service/materialize.go
package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	checkinModel "fitcoach_backend/internals/features/checkins/checkins/model"
	"fitcoach_backend/internals/features/checkins/schedule/model"
)

// MaterializeSchedule meng-expand schedule jadi seed check-in pending di
// rentang (ref, ref+horizon], lalu insert HANYA tanggal yang belum ada.
// Idempoten: dipanggil ulang dengan ref yang sama tidak menduplikasi apa pun.
// Return jumlah seed baru.
func MaterializeSchedule(db *gorm.DB, sched model.CheckinScheduleModel, ref time.Time, horizon time.Duration) (int, error) {
	dates := UpcomingDates(SpecFromModel(sched), ref, horizon)
	if len(dates) == 0 {
		return 0, nil
	}

	// Ambil tanggal yang sudah pernah di-seed untuk schedule ini
	var existing []time.Time
	if err := db.Model(&checkinModel.CheckinModel{}).
		Where("checkin_schedule_id = ?", sched.CheckinScheduleID).
		Pluck("checkin_date", &existing).Error; err != nil {
		return 0, err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		seen[dayKey(d)] = struct{}{}
	}

	scheduleID := sched.CheckinScheduleID
	coachID := sched.CheckinScheduleCoachID

	var seeds []checkinModel.CheckinModel
	for _, d := range dates {
		if _, dup := seen[dayKey(d)]; dup {
			continue
		}
		seeds = append(seeds, checkinModel.CheckinModel{
			CheckinClientID:   sched.CheckinScheduleClientID,
			CheckinCoachID:    &coachID,
			CheckinScheduleID: &scheduleID,
			CheckinDate:       d,
			CheckinStatus:     checkinModel.CheckinStatusPending,
		})
	}
	if len(seeds) == 0 {
		return 0, nil
	}

	if err := db.Create(&seeds).Error; err != nil {
		return 0, err
	}

	log.Printf("[SCHEDULE] %d seed check-in dibuat untuk schedule %s", len(seeds), sched.CheckinScheduleID)
	return len(seeds), nil
}

// dayKey: dedup per hari kalender (zona waktu tanggal seed)
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// IsWindowOpenAt: cek apakah t berada dalam response window schedule.
// Window didefinisikan per minggu: buka (day,time) .. tutup (day,time),
// boleh melewati pergantian minggu. Tanpa window → selalu terbuka.
func IsWindowOpenAt(sched model.CheckinScheduleModel, t time.Time) bool {
	if sched.CheckinScheduleWindowOpenDay == nil || sched.CheckinScheduleWindowOpenTime == nil ||
		sched.CheckinScheduleWindowCloseDay == nil || sched.CheckinScheduleWindowCloseTime == nil {
		return true
	}

	open := weekMinute(*sched.CheckinScheduleWindowOpenDay, sched.CheckinScheduleWindowOpenTime.Minutes())
	close := weekMinute(*sched.CheckinScheduleWindowCloseDay, sched.CheckinScheduleWindowCloseTime.Minutes())
	now := weekMinute(int(t.Weekday()), t.Hour()*60+t.Minute())

	if open <= close {
		return now >= open && now <= close
	}
	// window melewati akhir minggu (mis. Sabtu → Senin)
	return now >= open || now <= close
}

const minutesPerWeek = 7 * 24 * 60

func weekMinute(day, minuteOfDay int) int {
	m := day*24*60 + minuteOfDay
	// jaga-jaga kalau day di luar 0..6
	return ((m % minutesPerWeek) + minutesPerWeek) % minutesPerWeek
}
