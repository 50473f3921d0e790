package service

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	checkinModel "fitcoach_backend/internals/features/checkins/checkins/model"
)

func checkinAt(date time.Time, status string, measurements map[string]float64) checkinModel.CheckinModel {
	ci := checkinModel.CheckinModel{
		CheckinID:     uuid.New(),
		CheckinDate:   date,
		CheckinStatus: status,
	}
	if measurements != nil {
		raw, _ := sonic.Marshal(measurements)
		ci.CheckinMeasurements = datatypes.JSON(raw)
	}
	return ci
}

func dayUTC(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeTrend(t *testing.T) {
	mk := func(values ...float64) []MetricPoint {
		points := make([]MetricPoint, len(values))
		for i, v := range values {
			points[i] = MetricPoint{Date: dayUTC(2024, time.January, 1+i), Value: v}
		}
		return points
	}

	assert.Equal(t, TrendStable, computeTrend(mk(10, 10, 10)))
	assert.Equal(t, TrendDown, computeTrend(mk(10, 9, 7)))     // avg change -1.5
	assert.Equal(t, TrendUp, computeTrend(mk(70, 71, 72.5)))   // avg change +1.25
	assert.Equal(t, TrendStable, computeTrend(mk(10, 10.4, 10.9))) // avg change +0.45, di bawah ambang
	assert.Equal(t, TrendStable, computeTrend(mk(10, 8)), "kurang dari 3 titik selalu stable")
}

func TestComputeProgressWeightHistory(t *testing.T) {
	clientID := uuid.New()
	checkins := []checkinModel.CheckinModel{
		checkinAt(dayUTC(2024, time.January, 1), checkinModel.CheckinStatusCompleted, map[string]float64{"weight": 85}),
		checkinAt(dayUTC(2024, time.January, 8), checkinModel.CheckinStatusCompleted, map[string]float64{"weight": 84}),
		checkinAt(dayUTC(2024, time.January, 15), checkinModel.CheckinStatusReviewed, map[string]float64{"weight": 83}),
	}
	now := dayUTC(2024, time.January, 16)

	result := ComputeProgress(checkins, ClientMeta{ClientID: clientID}, now)

	weight, ok := result.Metrics["weight"]
	assert.True(t, ok)
	assert.InDelta(t, 83.0, weight.Current, 0.0001)
	assert.InDelta(t, 85.0, weight.Initial, 0.0001)
	assert.InDelta(t, -2.0, weight.TotalChange, 0.0001)
	assert.Equal(t, TrendDown, weight.Trend) // (83-85)/2 = -1.0
	assert.Len(t, weight.History, 3)

	assert.Equal(t, 3, result.TotalCheckins)
	assert.Equal(t, clientID, result.ClientID)

	// Jeda 7 hari memutus streak, tapi check-in terakhir masih segar
	assert.Equal(t, 1, result.CurrentStreak)
	assert.Equal(t, 1, result.LongestStreak)

	// Semua record di jendela selesai → 3/3
	assert.InDelta(t, 100.0, result.CompletionRate, 0.0001)

	// streak 1*10*0.4 + completion 100*0.4 + regularity 100*0.2 (jarak seragam 7 hari)
	assert.InDelta(t, 64.0, result.ConsistencyScore, 0.0001)
}

func TestComputeCompletionRatePendingWeighsDenominator(t *testing.T) {
	// 2 selesai + 2 seed pending terlewat di jendela yang sama → 50%
	checkins := []checkinModel.CheckinModel{
		checkinAt(dayUTC(2024, time.January, 1), checkinModel.CheckinStatusCompleted, nil),
		checkinAt(dayUTC(2024, time.January, 3), checkinModel.CheckinStatusPending, nil),
		checkinAt(dayUTC(2024, time.January, 5), checkinModel.CheckinStatusReviewed, nil),
		checkinAt(dayUTC(2024, time.January, 7), checkinModel.CheckinStatusPending, nil),
	}

	result := ComputeProgress(checkins, ClientMeta{ClientID: uuid.New()}, dayUTC(2024, time.January, 8))

	assert.InDelta(t, 50.0, result.CompletionRate, 0.0001)
}

func TestComputeCompletionRateIgnoresFutureSeeds(t *testing.T) {
	// Seed pending untuk tanggal di depan tidak ikut memberatkan penyebut
	checkins := []checkinModel.CheckinModel{
		checkinAt(dayUTC(2024, time.January, 1), checkinModel.CheckinStatusCompleted, nil),
		checkinAt(dayUTC(2024, time.January, 20), checkinModel.CheckinStatusPending, nil),
	}

	result := ComputeProgress(checkins, ClientMeta{ClientID: uuid.New()}, dayUTC(2024, time.January, 2))

	assert.InDelta(t, 100.0, result.CompletionRate, 0.0001)
}

func TestComputeProgressPendingExcluded(t *testing.T) {
	checkins := []checkinModel.CheckinModel{
		checkinAt(dayUTC(2024, time.January, 1), checkinModel.CheckinStatusPending, map[string]float64{"weight": 85}),
		checkinAt(dayUTC(2024, time.January, 2), checkinModel.CheckinStatusFlagged, map[string]float64{"weight": 84}),
	}

	result := ComputeProgress(checkins, ClientMeta{ClientID: uuid.New()}, dayUTC(2024, time.January, 3))

	assert.Zero(t, result.TotalCheckins)
	assert.Empty(t, result.Metrics)
	assert.Zero(t, result.CurrentStreak)
	assert.Zero(t, result.CompletionRate)
}

func TestComputeProgressEmptyHistory(t *testing.T) {
	result := ComputeProgress(nil, ClientMeta{ClientID: uuid.New()}, time.Now())

	assert.Zero(t, result.TotalCheckins)
	assert.Empty(t, result.Metrics)
	assert.Zero(t, result.CurrentStreak)
	assert.Zero(t, result.LongestStreak)
	assert.Zero(t, result.CompletionRate)
	assert.Zero(t, result.ConsistencyScore)
	assert.Empty(t, result.Milestones)
}

func TestComputeStreaksGapTolerance(t *testing.T) {
	dates := []time.Time{
		dayUTC(2024, time.January, 1),
		dayUTC(2024, time.January, 4), // jeda 3 hari → masih nyambung
		dayUTC(2024, time.January, 8), // jeda 4 hari → putus
	}

	current, longest := computeStreaks(dates, dayUTC(2024, time.January, 9))

	assert.Equal(t, 1, current)
	assert.Equal(t, 2, longest)
}

func TestComputeStreaksSkipFlaggedBetweenCompleted(t *testing.T) {
	// Record flagged tidak menghentikan streak; ia dilewati dan jeda antar
	// check-in qualifying yang dihitung (selama <= toleransi 3 hari)
	checkins := []checkinModel.CheckinModel{
		checkinAt(dayUTC(2024, time.January, 1), checkinModel.CheckinStatusCompleted, nil),
		checkinAt(dayUTC(2024, time.January, 2), checkinModel.CheckinStatusFlagged, nil),
		checkinAt(dayUTC(2024, time.January, 3), checkinModel.CheckinStatusCompleted, nil),
	}

	result := ComputeProgress(checkins, ClientMeta{ClientID: uuid.New()}, dayUTC(2024, time.January, 4))

	assert.Equal(t, 2, result.CurrentStreak)
	assert.Equal(t, 2, result.LongestStreak)
}

func TestComputeStreaksStaleCurrent(t *testing.T) {
	dates := []time.Time{
		dayUTC(2024, time.January, 1),
		dayUTC(2024, time.January, 2),
		dayUTC(2024, time.January, 3),
	}

	// Check-in terakhir sudah 10 hari lalu → current streak hangus
	current, longest := computeStreaks(dates, dayUTC(2024, time.January, 13))

	assert.Equal(t, 0, current)
	assert.Equal(t, 3, longest)
}

func TestComputeProgressStreakMilestone(t *testing.T) {
	var checkins []checkinModel.CheckinModel
	for i := 0; i < 7; i++ {
		checkins = append(checkins, checkinAt(
			dayUTC(2024, time.January, 1+i),
			checkinModel.CheckinStatusCompleted,
			nil,
		))
	}

	result := ComputeProgress(checkins, ClientMeta{ClientID: uuid.New()}, dayUTC(2024, time.January, 8))

	assert.Equal(t, 7, result.CurrentStreak)
	assert.Equal(t, 7, result.LongestStreak)

	achieved, upcoming := splitMilestones(result.Milestones)
	assert.Contains(t, achieved, "7-day streak")
	assert.NotContains(t, achieved, "30-day streak")

	// 30 hari jadi target berikutnya: 7/30
	assert.Contains(t, upcoming, "30-day streak")
	for _, m := range result.Milestones {
		if m.Label == "30-day streak" {
			assert.False(t, m.Achieved)
			assert.Nil(t, m.AchievedAt)
			assert.InDelta(t, 23.3, m.Progress, 0.0001)
		}
	}
}

func splitMilestones(milestones []Milestone) (achieved, upcoming []string) {
	for _, m := range milestones {
		if m.Achieved {
			achieved = append(achieved, m.Label)
		} else {
			upcoming = append(upcoming, m.Label)
		}
	}
	return achieved, upcoming
}

func TestComputeProgressWeightMilestones(t *testing.T) {
	goal := 80.0
	checkins := []checkinModel.CheckinModel{
		checkinAt(dayUTC(2024, time.January, 1), checkinModel.CheckinStatusCompleted, map[string]float64{"weight": 90}),
		checkinAt(dayUTC(2024, time.February, 1), checkinModel.CheckinStatusCompleted, map[string]float64{"weight": 84}),
		checkinAt(dayUTC(2024, time.March, 1), checkinModel.CheckinStatusCompleted, map[string]float64{"weight": 79.5}),
	}

	result := ComputeProgress(checkins, ClientMeta{ClientID: uuid.New(), GoalWeight: &goal}, dayUTC(2024, time.March, 2))

	achieved, _ := splitMilestones(result.Milestones)
	assert.Contains(t, achieved, "Lost 5 kg")
	assert.Contains(t, achieved, "Lost 10 kg")
	assert.Contains(t, achieved, "Reached goal weight")

	for _, m := range result.Milestones {
		if m.Achieved {
			assert.NotNil(t, m.AchievedAt)
			assert.InDelta(t, 100.0, m.Progress, 0.0001)
		}
	}
}

func TestComputeProgressUpcomingMilestones(t *testing.T) {
	// Baru turun 3 kg dari 90 → target terdekat "Lost 5 kg" 60%,
	// goal 80 → 3 dari 10 kg = 30%
	goal := 80.0
	checkins := []checkinModel.CheckinModel{
		checkinAt(dayUTC(2024, time.January, 1), checkinModel.CheckinStatusCompleted, map[string]float64{"weight": 90}),
		checkinAt(dayUTC(2024, time.January, 8), checkinModel.CheckinStatusCompleted, map[string]float64{"weight": 87}),
	}

	result := ComputeProgress(checkins, ClientMeta{ClientID: uuid.New(), GoalWeight: &goal}, dayUTC(2024, time.January, 9))

	achieved, upcoming := splitMilestones(result.Milestones)
	assert.Empty(t, achieved)
	assert.Contains(t, upcoming, "Lost 5 kg")
	assert.NotContains(t, upcoming, "Lost 10 kg") // hanya target terdekat
	assert.Contains(t, upcoming, "Reached goal weight")

	for _, m := range result.Milestones {
		switch m.Label {
		case "Lost 5 kg":
			assert.InDelta(t, 60.0, m.Progress, 0.0001)
			assert.InDelta(t, 3.0, m.Value, 0.0001)
		case "Reached goal weight":
			assert.InDelta(t, 30.0, m.Progress, 0.0001)
		}
	}
}

func TestComputeProgressConsistencyClamped(t *testing.T) {
	// 30 hari check-in berturut-turut → semua komponen mentok di 100
	var checkins []checkinModel.CheckinModel
	for i := 0; i < 30; i++ {
		checkins = append(checkins, checkinAt(
			dayUTC(2024, time.January, 1).AddDate(0, 0, i),
			checkinModel.CheckinStatusCompleted,
			nil,
		))
	}

	result := ComputeProgress(checkins, ClientMeta{ClientID: uuid.New()}, dayUTC(2024, time.January, 30))

	assert.InDelta(t, 100.0, result.ConsistencyScore, 0.0001)
	assert.InDelta(t, 100.0, result.CompletionRate, 0.0001)
	assert.Equal(t, 30, result.CurrentStreak)
}

func TestComputeProgressIgnoresNonPositiveMeasurements(t *testing.T) {
	checkins := []checkinModel.CheckinModel{
		checkinAt(dayUTC(2024, time.January, 1), checkinModel.CheckinStatusCompleted, map[string]float64{"weight": 0, "waist": -3}),
	}

	result := ComputeProgress(checkins, ClientMeta{ClientID: uuid.New()}, dayUTC(2024, time.January, 2))

	assert.Empty(t, result.Metrics)
	assert.Equal(t, 1, result.TotalCheckins)
}
