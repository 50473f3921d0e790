package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsOwnedBy(t *testing.T) {
	owner := uuid.New()
	sched := CheckinScheduleModel{CheckinScheduleCoachID: owner}

	assert.True(t, sched.IsOwnedBy(owner))
	assert.False(t, sched.IsOwnedBy(uuid.New()), "coach lain tidak boleh mengelola schedule ini")
}
