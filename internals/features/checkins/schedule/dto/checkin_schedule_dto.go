package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fitcoach_backend/internals/features/checkins/schedule/model"
)

// ====================
// Response DTO
// ====================
type CheckinScheduleDTO struct {
	CheckinScheduleID       uuid.UUID `json:"checkin_schedule_id"`
	CheckinScheduleCoachID  uuid.UUID `json:"checkin_schedule_coach_id"`
	CheckinScheduleClientID uuid.UUID `json:"checkin_schedule_client_id"`

	CheckinScheduleFrequency     string         `json:"checkin_schedule_frequency"`
	CheckinScheduleSelectedDays  datatypes.JSON `json:"checkin_schedule_selected_days"`
	CheckinScheduleIntervalValue *int           `json:"checkin_schedule_interval_value,omitempty"`
	CheckinScheduleIntervalUnit  *string        `json:"checkin_schedule_interval_unit,omitempty"`
	CheckinScheduleStartAt       time.Time      `json:"checkin_schedule_start_at"`

	CheckinScheduleWindowOpenDay   *int    `json:"checkin_schedule_window_open_day,omitempty"`
	CheckinScheduleWindowOpenTime  *string `json:"checkin_schedule_window_open_time,omitempty"`
	CheckinScheduleWindowCloseDay  *int    `json:"checkin_schedule_window_close_day,omitempty"`
	CheckinScheduleWindowCloseTime *string `json:"checkin_schedule_window_close_time,omitempty"`

	CheckinScheduleIsActive  bool      `json:"checkin_schedule_is_active"`
	CheckinScheduleCreatedAt time.Time `json:"checkin_schedule_created_at"`
}

// ====================
// Request DTO
// ====================

// Catatan: interval_unit "months" sengaja ditolak di sini (belum didukung
// planner), jadi kesalahan konfigurasi ketahuan di 422, bukan diam-diam
// menghasilkan schedule kosong.
type CreateCheckinScheduleRequest struct {
	CheckinScheduleClientID uuid.UUID `json:"checkin_schedule_client_id" validate:"required"`

	CheckinScheduleFrequency     string    `json:"checkin_schedule_frequency" validate:"required,oneof=daily weekly biweekly monthly custom"`
	CheckinScheduleSelectedDays  []int     `json:"checkin_schedule_selected_days" validate:"required_if=CheckinScheduleFrequency weekly,required_if=CheckinScheduleFrequency biweekly,omitempty,max=7,dive,min=0,max=6"`
	CheckinScheduleIntervalValue *int      `json:"checkin_schedule_interval_value" validate:"required_if=CheckinScheduleFrequency custom,omitempty,gt=0"`
	CheckinScheduleIntervalUnit  *string   `json:"checkin_schedule_interval_unit" validate:"required_if=CheckinScheduleFrequency custom,omitempty,oneof=days weeks"`
	CheckinScheduleStartAt       time.Time `json:"checkin_schedule_start_at" validate:"required"`

	CheckinScheduleWindowOpenDay   *int    `json:"checkin_schedule_window_open_day" validate:"omitempty,min=0,max=6"`
	CheckinScheduleWindowOpenTime  *string `json:"checkin_schedule_window_open_time" validate:"omitempty"`
	CheckinScheduleWindowCloseDay  *int    `json:"checkin_schedule_window_close_day" validate:"omitempty,min=0,max=6"`
	CheckinScheduleWindowCloseTime *string `json:"checkin_schedule_window_close_time" validate:"omitempty"`
}

type UpdateCheckinScheduleRequest struct {
	CheckinScheduleFrequency     *string    `json:"checkin_schedule_frequency" validate:"omitempty,oneof=daily weekly biweekly monthly custom"`
	CheckinScheduleSelectedDays  []int      `json:"checkin_schedule_selected_days" validate:"omitempty,max=7,dive,min=0,max=6"`
	CheckinScheduleIntervalValue *int       `json:"checkin_schedule_interval_value" validate:"omitempty,gt=0"`
	CheckinScheduleIntervalUnit  *string    `json:"checkin_schedule_interval_unit" validate:"omitempty,oneof=days weeks"`
	CheckinScheduleStartAt       *time.Time `json:"checkin_schedule_start_at"`
	CheckinScheduleIsActive      *bool      `json:"checkin_schedule_is_active"`
}

// ====================
// Converter
// ====================
func ToCheckinScheduleDTO(m model.CheckinScheduleModel) CheckinScheduleDTO {
	d := CheckinScheduleDTO{
		CheckinScheduleID:             m.CheckinScheduleID,
		CheckinScheduleCoachID:        m.CheckinScheduleCoachID,
		CheckinScheduleClientID:       m.CheckinScheduleClientID,
		CheckinScheduleFrequency:      m.CheckinScheduleFrequency,
		CheckinScheduleSelectedDays:   m.CheckinScheduleSelectedDays,
		CheckinScheduleIntervalValue:  m.CheckinScheduleIntervalValue,
		CheckinScheduleIntervalUnit:   m.CheckinScheduleIntervalUnit,
		CheckinScheduleStartAt:        m.CheckinScheduleStartAt,
		CheckinScheduleWindowOpenDay:  m.CheckinScheduleWindowOpenDay,
		CheckinScheduleWindowCloseDay: m.CheckinScheduleWindowCloseDay,
		CheckinScheduleIsActive:       m.CheckinScheduleIsActive,
		CheckinScheduleCreatedAt:      m.CheckinScheduleCreatedAt,
	}
	if m.CheckinScheduleWindowOpenTime != nil {
		s := m.CheckinScheduleWindowOpenTime.Format("15:04:05")
		d.CheckinScheduleWindowOpenTime = &s
	}
	if m.CheckinScheduleWindowCloseTime != nil {
		s := m.CheckinScheduleWindowCloseTime.Format("15:04:05")
		d.CheckinScheduleWindowCloseTime = &s
	}
	return d
}
