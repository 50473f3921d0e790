// file: internals/features/checkins/questionnaire/model/checkin_question_model.go
package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Kategori pertanyaan check-in: enum tertutup + bucket "other"
// supaya typo kategori tidak diam-diam bikin kategori baru.
const (
	CategoryNutrition = "nutrition"
	CategoryTraining  = "training"
	CategoryRecovery  = "recovery"
	CategoryLifestyle = "lifestyle"
	CategoryMindset   = "mindset"
	CategoryOther     = "other"
)

var KnownCategories = []string{
	CategoryNutrition,
	CategoryTraining,
	CategoryRecovery,
	CategoryLifestyle,
	CategoryMindset,
}

// NormalizeCategory: kategori tak dikenal masuk ke "other"
func NormalizeCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range KnownCategories {
		if s == c {
			return c
		}
	}
	return CategoryOther
}

type CheckinQuestionModel struct {
	CheckinQuestionID       int            `gorm:"column:checkin_question_id;primaryKey;autoIncrement" json:"checkin_question_id"`
	CheckinQuestionText     string         `gorm:"column:checkin_question_text;type:text;not null" json:"checkin_question_text"`
	CheckinQuestionCategory string         `gorm:"column:checkin_question_category;type:varchar(20);not null" json:"checkin_question_category"`
	CheckinQuestionWeight   float64        `gorm:"column:checkin_question_weight;not null;default:1.0" json:"checkin_question_weight"`
	CheckinQuestionOptions  datatypes.JSON `gorm:"column:checkin_question_options;type:jsonb;not null;default:'[]'" json:"checkin_question_options"` // [{"value":1,"label":"..."}]
	CheckinQuestionIsActive bool           `gorm:"column:checkin_question_is_active;not null;default:true" json:"checkin_question_is_active"`

	CheckinQuestionCreatedAt time.Time      `gorm:"column:checkin_question_created_at;autoCreateTime" json:"checkin_question_created_at"`
	CheckinQuestionUpdatedAt time.Time      `gorm:"column:checkin_question_updated_at;autoUpdateTime" json:"checkin_question_updated_at"`
	CheckinQuestionDeletedAt gorm.DeletedAt `gorm:"column:checkin_question_deleted_at;index" json:"checkin_question_deleted_at,omitempty"`
}

// TableName mengikat model ke tabel checkin_questions
func (CheckinQuestionModel) TableName() string {
	return "checkin_questions"
}
