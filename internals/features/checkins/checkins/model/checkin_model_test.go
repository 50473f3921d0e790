package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsCoachedBy(t *testing.T) {
	coach := uuid.New()
	assigned := CheckinModel{CheckinCoachID: &coach}

	assert.True(t, assigned.IsCoachedBy(coach))
	assert.False(t, assigned.IsCoachedBy(uuid.New()))
	assert.False(t, CheckinModel{}.IsCoachedBy(coach), "tanpa coach ter-assign")
}

func TestIsQualifying(t *testing.T) {
	assert.True(t, CheckinModel{CheckinStatus: CheckinStatusCompleted}.IsQualifying())
	assert.True(t, CheckinModel{CheckinStatus: CheckinStatusReviewed}.IsQualifying())
	assert.False(t, CheckinModel{CheckinStatus: CheckinStatusPending}.IsQualifying())
	assert.False(t, CheckinModel{CheckinStatus: CheckinStatusFlagged}.IsQualifying())
}
