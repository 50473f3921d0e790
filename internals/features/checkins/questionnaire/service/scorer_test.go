package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitcoach_backend/internals/features/checkins/questionnaire/model"
)

func question(id int, category string, weight float64) model.CheckinQuestionModel {
	return model.CheckinQuestionModel{
		CheckinQuestionID:       id,
		CheckinQuestionText:     "q",
		CheckinQuestionCategory: category,
		CheckinQuestionWeight:   weight,
		CheckinQuestionIsActive: true,
	}
}

func TestScoreQuestionnaireWeighted(t *testing.T) {
	questions := []model.CheckinQuestionModel{
		question(1, model.CategoryNutrition, 1.5),
		question(2, model.CategoryTraining, 1.0),
	}
	answers := AnswerSet{1: 4, 2: 5}

	result := ScoreQuestionnaire(answers, questions)

	// (4*1.5 + 5*1.0) / (1.5 + 1.0) = 11 / 2.5
	assert.InDelta(t, 4.4, result.Overall, 0.0001)

	nutrition := result.Categories[model.CategoryNutrition]
	assert.InDelta(t, 6.0, nutrition.Score, 0.0001)
	assert.InDelta(t, 7.5, nutrition.MaxPossible, 0.0001)
	assert.InDelta(t, 80.0, nutrition.Percentage, 0.0001)

	training := result.Categories[model.CategoryTraining]
	assert.InDelta(t, 100.0, training.Percentage, 0.0001)
}

func TestScoreQuestionnaireOverallBounds(t *testing.T) {
	questions := []model.CheckinQuestionModel{
		question(1, model.CategoryTraining, 2.0),
		question(2, model.CategoryRecovery, 0.5),
		question(3, model.CategoryMindset, 1.0),
	}

	allMin := ScoreQuestionnaire(AnswerSet{1: 1, 2: 1, 3: 1}, questions)
	assert.InDelta(t, 1.0, allMin.Overall, 0.0001)

	allMax := ScoreQuestionnaire(AnswerSet{1: 5, 2: 5, 3: 5}, questions)
	assert.InDelta(t, 5.0, allMax.Overall, 0.0001)
}

func TestScoreQuestionnaireEmptyAnswers(t *testing.T) {
	questions := []model.CheckinQuestionModel{
		question(1, model.CategoryNutrition, 1.0),
	}

	result := ScoreQuestionnaire(AnswerSet{}, questions)

	assert.Zero(t, result.Overall)
	assert.Empty(t, result.Categories)
}

func TestScoreQuestionnaireIgnoresInvalidAnswers(t *testing.T) {
	questions := []model.CheckinQuestionModel{
		question(1, model.CategoryNutrition, 1.0),
		question(2, model.CategoryTraining, 1.0),
	}
	// id 99 tidak dikenal, nilai 7 di luar rentang
	answers := AnswerSet{1: 3, 2: 7, 99: 5}

	result := ScoreQuestionnaire(answers, questions)

	assert.InDelta(t, 3.0, result.Overall, 0.0001)
	assert.Len(t, result.Categories, 1)
	assert.Contains(t, result.Categories, model.CategoryNutrition)
}

func TestScoreQuestionnaireUnansweredSkipsDenominator(t *testing.T) {
	questions := []model.CheckinQuestionModel{
		question(1, model.CategoryNutrition, 1.0),
		question(2, model.CategoryTraining, 3.0), // tidak dijawab
	}

	result := ScoreQuestionnaire(AnswerSet{5: 4, 1: 4}, questions)

	assert.InDelta(t, 4.0, result.Overall, 0.0001)
	assert.NotContains(t, result.Categories, model.CategoryTraining)
}

func TestScoreQuestionnaireZeroWeightFallsBackToOne(t *testing.T) {
	questions := []model.CheckinQuestionModel{
		question(1, model.CategoryNutrition, 0),
		question(2, model.CategoryNutrition, 1.0),
	}

	result := ScoreQuestionnaire(AnswerSet{1: 2, 2: 4}, questions)

	assert.InDelta(t, 3.0, result.Overall, 0.0001)
}

func TestScoreQuestionnaireUnknownCategoryBucketedAsOther(t *testing.T) {
	questions := []model.CheckinQuestionModel{
		question(1, "sleep_quality", 1.0),
	}

	result := ScoreQuestionnaire(AnswerSet{1: 5}, questions)

	assert.Contains(t, result.Categories, model.CategoryOther)
}
