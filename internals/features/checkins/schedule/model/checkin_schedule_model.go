// file: internals/features/checkins/schedule/model/checkin_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fitcoach_backend/internals/helpers/dbtime"
)

// Frekuensi recurrence
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
	FrequencyCustom   = "custom"
)

// Satuan interval custom. "months" sengaja TIDAK didukung planner
// (lihat DESIGN.md) dan ditolak di validasi DTO.
const (
	IntervalUnitDays  = "days"
	IntervalUnitWeeks = "weeks"
)

type CheckinScheduleModel struct {
	CheckinScheduleID       uuid.UUID `gorm:"column:checkin_schedule_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"checkin_schedule_id"`
	CheckinScheduleCoachID  uuid.UUID `gorm:"column:checkin_schedule_coach_id;type:uuid;not null" json:"checkin_schedule_coach_id"`
	CheckinScheduleClientID uuid.UUID `gorm:"column:checkin_schedule_client_id;type:uuid;not null;index" json:"checkin_schedule_client_id"`

	CheckinScheduleFrequency     string         `gorm:"column:checkin_schedule_frequency;type:varchar(16);not null" json:"checkin_schedule_frequency"`
	CheckinScheduleSelectedDays  datatypes.JSON `gorm:"column:checkin_schedule_selected_days;type:jsonb;not null;default:'[]'" json:"checkin_schedule_selected_days"` // [1,3] → Senin, Rabu (0=Minggu)
	CheckinScheduleIntervalValue *int           `gorm:"column:checkin_schedule_interval_value" json:"checkin_schedule_interval_value,omitempty"`
	CheckinScheduleIntervalUnit  *string        `gorm:"column:checkin_schedule_interval_unit;type:varchar(8)" json:"checkin_schedule_interval_unit,omitempty"`
	CheckinScheduleStartAt       time.Time      `gorm:"column:checkin_schedule_start_at;not null" json:"checkin_schedule_start_at"`

	// Response window: check-in terjadwal hanya boleh diisi di antara
	// (open day+time) .. (close day+time). Nil = tanpa pembatasan.
	CheckinScheduleWindowOpenDay   *int        `gorm:"column:checkin_schedule_window_open_day" json:"checkin_schedule_window_open_day,omitempty"`
	CheckinScheduleWindowOpenTime  *dbtime.Tod `gorm:"column:checkin_schedule_window_open_time;type:time" json:"checkin_schedule_window_open_time,omitempty"`
	CheckinScheduleWindowCloseDay  *int        `gorm:"column:checkin_schedule_window_close_day" json:"checkin_schedule_window_close_day,omitempty"`
	CheckinScheduleWindowCloseTime *dbtime.Tod `gorm:"column:checkin_schedule_window_close_time;type:time" json:"checkin_schedule_window_close_time,omitempty"`

	CheckinScheduleIsActive bool `gorm:"column:checkin_schedule_is_active;not null;default:true;index" json:"checkin_schedule_is_active"`

	CheckinScheduleCreatedAt time.Time      `gorm:"column:checkin_schedule_created_at;autoCreateTime" json:"checkin_schedule_created_at"`
	CheckinScheduleUpdatedAt time.Time      `gorm:"column:checkin_schedule_updated_at;autoUpdateTime" json:"checkin_schedule_updated_at"`
	CheckinScheduleDeletedAt gorm.DeletedAt `gorm:"column:checkin_schedule_deleted_at;index" json:"checkin_schedule_deleted_at,omitempty"`
}

// TableName mengikat model ke tabel checkin_schedules
func (CheckinScheduleModel) TableName() string {
	return "checkin_schedules"
}

// IsOwnedBy: schedule hanya boleh dikelola coach pembuatnya
func (m CheckinScheduleModel) IsOwnedBy(coachID uuid.UUID) bool {
	return m.CheckinScheduleCoachID == coachID
}
