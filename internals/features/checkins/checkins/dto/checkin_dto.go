package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fitcoach_backend/internals/features/checkins/checkins/model"
)

// ====================
// Response DTO
// ====================
type CheckinDTO struct {
	CheckinID         uuid.UUID  `json:"checkin_id"`
	CheckinClientID   uuid.UUID  `json:"checkin_client_id"`
	CheckinCoachID    *uuid.UUID `json:"checkin_coach_id,omitempty"`
	CheckinScheduleID *uuid.UUID `json:"checkin_schedule_id,omitempty"`

	CheckinDate        time.Time  `json:"checkin_date"`
	CheckinCheckedInAt *time.Time `json:"checkin_checked_in_at,omitempty"`

	CheckinAnswers      datatypes.JSON `json:"checkin_answers"`
	CheckinScores       datatypes.JSON `json:"checkin_scores"`
	CheckinMeasurements datatypes.JSON `json:"checkin_measurements"`
	CheckinPhotos       datatypes.JSON `json:"checkin_photos"`

	CheckinNotes  *string `json:"checkin_notes,omitempty"`
	CheckinStatus string  `json:"checkin_status"`

	CheckinCoachFeedback   *string    `json:"checkin_coach_feedback,omitempty"`
	CheckinCoachFeedbackAt *time.Time `json:"checkin_coach_feedback_at,omitempty"`

	CheckinCreatedAt time.Time `json:"checkin_created_at"`
}

// ====================
// Request DTO
// ====================

// SubmitCheckinRequest dipakai dua arah:
// - POST /checkins           → check-in spontan (tanpa seed)
// - PATCH /checkins/:id/submit → mengisi seed pending dari schedule
type SubmitCheckinRequest struct {
	CheckinAnswers      map[int]int        `json:"checkin_answers" validate:"required,min=1,dive,min=1,max=5"`
	CheckinMeasurements map[string]float64 `json:"checkin_measurements" validate:"omitempty,dive,gt=0"`
	CheckinNotes        *string            `json:"checkin_notes" validate:"omitempty,max=2000"`
}

type CoachFeedbackRequest struct {
	CheckinCoachFeedback string `json:"checkin_coach_feedback" validate:"required,min=1,max=2000"`
	CheckinStatus        string `json:"checkin_status" validate:"omitempty,oneof=reviewed flagged"`
}

// ====================
// Converter
// ====================
func ToCheckinDTO(m model.CheckinModel) CheckinDTO {
	return CheckinDTO{
		CheckinID:              m.CheckinID,
		CheckinClientID:        m.CheckinClientID,
		CheckinCoachID:         m.CheckinCoachID,
		CheckinScheduleID:      m.CheckinScheduleID,
		CheckinDate:            m.CheckinDate,
		CheckinCheckedInAt:     m.CheckinCheckedInAt,
		CheckinAnswers:         m.CheckinAnswers,
		CheckinScores:          m.CheckinScores,
		CheckinMeasurements:    m.CheckinMeasurements,
		CheckinPhotos:          m.CheckinPhotos,
		CheckinNotes:           m.CheckinNotes,
		CheckinStatus:          m.CheckinStatus,
		CheckinCoachFeedback:   m.CheckinCoachFeedback,
		CheckinCoachFeedbackAt: m.CheckinCoachFeedbackAt,
		CheckinCreatedAt:       m.CheckinCreatedAt,
	}
}
