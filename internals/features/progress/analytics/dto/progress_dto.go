package dto

import (
	"github.com/google/uuid"

	"fitcoach_backend/internals/features/progress/analytics/service"
)

// ====================
// Response DTO
// ====================
type ClientProgressDTO struct {
	ClientID         uuid.UUID                         `json:"client_id"`
	Metrics          map[string]service.MetricProgress `json:"metrics"`
	CurrentStreak    int                               `json:"current_streak"`
	LongestStreak    int                               `json:"longest_streak"`
	CompletionRate   float64                           `json:"completion_rate"`
	ConsistencyScore float64                           `json:"consistency_score"`
	TotalCheckins    int                               `json:"total_checkins"`
	Milestones       []service.Milestone               `json:"milestones"`
}

// ====================
// Converter
// ====================
func ToClientProgressDTO(m service.ClientProgressMetrics) ClientProgressDTO {
	return ClientProgressDTO{
		ClientID:         m.ClientID,
		Metrics:          m.Metrics,
		CurrentStreak:    m.CurrentStreak,
		LongestStreak:    m.LongestStreak,
		CompletionRate:   m.CompletionRate,
		ConsistencyScore: m.ConsistencyScore,
		TotalCheckins:    m.TotalCheckins,
		Milestones:       m.Milestones,
	}
}
