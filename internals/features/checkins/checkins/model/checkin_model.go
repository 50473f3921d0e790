// file: internals/features/checkins/checkins/model/checkin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lifecycle status check-in (soft lifecycle, record tidak pernah dihapus di flow normal)
const (
	CheckinStatusPending   = "pending"   // seed dari schedule, belum diisi client
	CheckinStatusCompleted = "completed" // sudah disubmit client
	CheckinStatusReviewed  = "reviewed"  // sudah dinilai coach
	CheckinStatusFlagged   = "flagged"   // ditandai coach untuk follow-up
)

// Sudut foto progress yang dikenali
const (
	PhotoAngleFront = "front"
	PhotoAngleBack  = "back"
	PhotoAngleSide  = "side"
)

type CheckinModel struct {
	CheckinID         uuid.UUID  `gorm:"column:checkin_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"checkin_id"`
	CheckinClientID   uuid.UUID  `gorm:"column:checkin_client_id;type:uuid;not null;index:idx_checkins_client_date" json:"checkin_client_id"`
	CheckinCoachID    *uuid.UUID `gorm:"column:checkin_coach_id;type:uuid" json:"checkin_coach_id,omitempty"`
	CheckinScheduleID *uuid.UUID `gorm:"column:checkin_schedule_id;type:uuid;index" json:"checkin_schedule_id,omitempty"`

	CheckinDate        time.Time  `gorm:"column:checkin_date;not null;index:idx_checkins_client_date" json:"checkin_date"`
	CheckinCheckedInAt *time.Time `gorm:"column:checkin_checked_in_at" json:"checkin_checked_in_at,omitempty"`

	// Payload jsonb:
	// answers      {"1":4,"2":5}
	// scores       {"overall":4.4,"categories":{"nutrition":{"score":6,"maxPossible":7.5,"percentage":80}}}
	// measurements {"weight":83.0,"waist":78.5}
	// photos       {"front":"https://...","side":"https://..."}
	CheckinAnswers      datatypes.JSON `gorm:"column:checkin_answers;type:jsonb;not null;default:'{}'" json:"checkin_answers"`
	CheckinScores       datatypes.JSON `gorm:"column:checkin_scores;type:jsonb;not null;default:'{}'" json:"checkin_scores"`
	CheckinMeasurements datatypes.JSON `gorm:"column:checkin_measurements;type:jsonb;not null;default:'{}'" json:"checkin_measurements"`
	CheckinPhotos       datatypes.JSON `gorm:"column:checkin_photos;type:jsonb;not null;default:'{}'" json:"checkin_photos"`

	CheckinNotes  *string `gorm:"column:checkin_notes;type:text" json:"checkin_notes,omitempty"`
	CheckinStatus string  `gorm:"column:checkin_status;type:varchar(16);not null;default:'pending';index" json:"checkin_status"`

	CheckinCoachFeedback   *string    `gorm:"column:checkin_coach_feedback;type:text" json:"checkin_coach_feedback,omitempty"`
	CheckinCoachFeedbackAt *time.Time `gorm:"column:checkin_coach_feedback_at" json:"checkin_coach_feedback_at,omitempty"`

	CheckinCreatedAt time.Time      `gorm:"column:checkin_created_at;autoCreateTime" json:"checkin_created_at"`
	CheckinUpdatedAt time.Time      `gorm:"column:checkin_updated_at;autoUpdateTime" json:"checkin_updated_at"`
	CheckinDeletedAt gorm.DeletedAt `gorm:"column:checkin_deleted_at;index" json:"checkin_deleted_at,omitempty"`
}

// TableName mengikat model ke tabel checkins
func (CheckinModel) TableName() string {
	return "checkins"
}

// IsQualifying: status yang dihitung untuk streak & completion rate
func (m CheckinModel) IsQualifying() bool {
	return m.CheckinStatus == CheckinStatusCompleted || m.CheckinStatus == CheckinStatusReviewed
}

// IsCoachedBy: check-in sudah ter-assign ke coach ini
func (m CheckinModel) IsCoachedBy(coachID uuid.UUID) bool {
	return m.CheckinCoachID != nil && *m.CheckinCoachID == coachID
}
