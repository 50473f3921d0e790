package dto

import (
	"time"

	"gorm.io/datatypes"

	"fitcoach_backend/internals/features/checkins/questionnaire/model"
)

// ====================
// Response DTO
// ====================
type CheckinQuestionDTO struct {
	CheckinQuestionID       int            `json:"checkin_question_id"`
	CheckinQuestionText     string         `json:"checkin_question_text"`
	CheckinQuestionCategory string         `json:"checkin_question_category"`
	CheckinQuestionWeight   float64        `json:"checkin_question_weight"`
	CheckinQuestionOptions  datatypes.JSON `json:"checkin_question_options"`
	CheckinQuestionIsActive bool           `json:"checkin_question_is_active"`
	CheckinQuestionCreatedAt time.Time     `json:"checkin_question_created_at"`
}

// ====================
// Request DTO
// ====================
type CreateCheckinQuestionRequest struct {
	CheckinQuestionText     string          `json:"checkin_question_text" validate:"required,min=3"`
	CheckinQuestionCategory string          `json:"checkin_question_category" validate:"required,oneof=nutrition training recovery lifestyle mindset other"`
	CheckinQuestionWeight   float64         `json:"checkin_question_weight" validate:"omitempty,gt=0"`
	CheckinQuestionOptions  []QuestionOption `json:"checkin_question_options" validate:"required,min=2,max=5,dive"`
}

type QuestionOption struct {
	Value int    `json:"value" validate:"required,min=1,max=5"`
	Label string `json:"label" validate:"required"`
}

type UpdateCheckinQuestionRequest struct {
	CheckinQuestionText     *string          `json:"checkin_question_text" validate:"omitempty,min=3"`
	CheckinQuestionCategory *string          `json:"checkin_question_category" validate:"omitempty,oneof=nutrition training recovery lifestyle mindset other"`
	CheckinQuestionWeight   *float64         `json:"checkin_question_weight" validate:"omitempty,gt=0"`
	CheckinQuestionOptions  []QuestionOption `json:"checkin_question_options" validate:"omitempty,min=2,max=5,dive"`
	CheckinQuestionIsActive *bool            `json:"checkin_question_is_active"`
}

// ====================
// Converter
// ====================
func ToCheckinQuestionDTO(m model.CheckinQuestionModel) CheckinQuestionDTO {
	return CheckinQuestionDTO{
		CheckinQuestionID:        m.CheckinQuestionID,
		CheckinQuestionText:      m.CheckinQuestionText,
		CheckinQuestionCategory:  m.CheckinQuestionCategory,
		CheckinQuestionWeight:    m.CheckinQuestionWeight,
		CheckinQuestionOptions:   m.CheckinQuestionOptions,
		CheckinQuestionIsActive:  m.CheckinQuestionIsActive,
		CheckinQuestionCreatedAt: m.CheckinQuestionCreatedAt,
	}
}
