// file: internals/features/checkins/questionnaire/service/scorer.go
package service

import (
	"fitcoach_backend/internals/features/checkins/questionnaire/model"
)

const (
	minOptionValue = 1
	maxOptionValue = 5
)

// AnswerSet: question id → nilai opsi terpilih (1..5)
type AnswerSet map[int]int

// CategoryScore disimpan sebagai bagian dari payload scores di record check-in.
// Key JSON mengikuti format interchange yang dibaca dashboard.
type CategoryScore struct {
	Score       float64 `json:"score"`
	MaxPossible float64 `json:"maxPossible"`
	Percentage  float64 `json:"percentage"`
}

type QuestionnaireScore struct {
	Overall    float64                  `json:"overall"`
	Categories map[string]CategoryScore `json:"categories"`
}

// ScoreQuestionnaire menghitung skor tertimbang dari jawaban kuesioner.
//
// Aturan:
//   - pertanyaan yang tidak dijawab tidak masuk pembilang maupun penyebut
//   - jawaban yang menunjuk id tak dikenal / nilai di luar 1..5 diabaikan
//   - overall = Σ(nilai×bobot) / Σ(bobot) → rentang [1,5], 0 kalau tidak ada jawaban
//   - persentase kategori = skor / (5×Σbobot) × 100, 0 kalau kategori kosong
//
// Fungsi murni: deterministik, tanpa side effect.
func ScoreQuestionnaire(answers AnswerSet, questions []model.CheckinQuestionModel) QuestionnaireScore {
	result := QuestionnaireScore{
		Categories: make(map[string]CategoryScore),
	}
	if len(answers) == 0 || len(questions) == 0 {
		return result
	}

	var weightedSum, weightSum float64

	for _, q := range questions {
		value, answered := answers[q.CheckinQuestionID]
		if !answered || value < minOptionValue || value > maxOptionValue {
			continue
		}

		weight := q.CheckinQuestionWeight
		if weight <= 0 {
			weight = 1.0
		}

		category := model.NormalizeCategory(q.CheckinQuestionCategory)
		cs := result.Categories[category]
		cs.Score += float64(value) * weight
		cs.MaxPossible += float64(maxOptionValue) * weight
		result.Categories[category] = cs

		weightedSum += float64(value) * weight
		weightSum += weight
	}

	for category, cs := range result.Categories {
		if cs.MaxPossible > 0 {
			cs.Percentage = cs.Score / cs.MaxPossible * 100
		}
		result.Categories[category] = cs
	}

	if weightSum > 0 {
		result.Overall = weightedSum / weightSum
	}
	return result
}
