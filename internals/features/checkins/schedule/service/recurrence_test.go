package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitcoach_backend/internals/features/checkins/schedule/model"
	"fitcoach_backend/internals/helpers/dbtime"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDatesDaily(t *testing.T) {
	spec := RecurrenceSpec{
		Frequency: model.FrequencyDaily,
		Start:     day(2023, time.January, 1),
	}

	dates := GenerateDates(spec, 3*24*time.Hour)

	assert.Equal(t, []time.Time{
		day(2023, time.January, 2),
		day(2023, time.January, 3),
		day(2023, time.January, 4),
	}, dates)
}

func TestGenerateDatesWeeklySelectedDays(t *testing.T) {
	// 2024-01-01 = Senin; Senin (1) & Rabu (3), horizon 2 minggu
	spec := RecurrenceSpec{
		Frequency:    model.FrequencyWeekly,
		SelectedDays: []int{1, 3},
		Start:        day(2024, time.January, 1),
	}

	dates := GenerateDates(spec, 14*24*time.Hour)

	// Hari start sendiri tidak pernah ikut
	assert.Equal(t, []time.Time{
		day(2024, time.January, 3),
		day(2024, time.January, 8),
		day(2024, time.January, 10),
		day(2024, time.January, 15),
	}, dates)
}

func TestGenerateDatesBiweekly(t *testing.T) {
	spec := RecurrenceSpec{
		Frequency:    model.FrequencyBiweekly,
		SelectedDays: []int{1},
		Start:        day(2024, time.January, 1), // Senin
	}

	dates := GenerateDates(spec, 28*24*time.Hour)

	assert.Equal(t, []time.Time{
		day(2024, time.January, 15),
		day(2024, time.January, 29),
	}, dates)
}

func TestGenerateDatesMonthly(t *testing.T) {
	spec := RecurrenceSpec{
		Frequency: model.FrequencyMonthly,
		Start:     day(2023, time.January, 15),
	}

	dates := GenerateDates(spec, 90*24*time.Hour)

	assert.Equal(t, []time.Time{
		day(2023, time.February, 15),
		day(2023, time.March, 15),
		day(2023, time.April, 15),
	}, dates)
}

func TestGenerateDatesCustomDays(t *testing.T) {
	spec := RecurrenceSpec{
		Frequency:     model.FrequencyCustom,
		IntervalValue: 10,
		IntervalUnit:  model.IntervalUnitDays,
		Start:         day(2023, time.January, 1),
	}

	dates := GenerateDates(spec, 30*24*time.Hour)

	assert.Equal(t, []time.Time{
		day(2023, time.January, 11),
		day(2023, time.January, 21),
		day(2023, time.January, 31),
	}, dates)
}

func TestGenerateDatesCustomWeeks(t *testing.T) {
	spec := RecurrenceSpec{
		Frequency:     model.FrequencyCustom,
		IntervalValue: 2,
		IntervalUnit:  model.IntervalUnitWeeks,
		Start:         day(2023, time.January, 1),
	}

	dates := GenerateDates(spec, 30*24*time.Hour)

	assert.Equal(t, []time.Time{
		day(2023, time.January, 15),
		day(2023, time.January, 29),
	}, dates)
}

func TestGenerateDatesInvalidConfig(t *testing.T) {
	start := day(2023, time.January, 1)

	cases := map[string]RecurrenceSpec{
		"weekly tanpa selected days": {Frequency: model.FrequencyWeekly, Start: start},
		"custom interval nol":        {Frequency: model.FrequencyCustom, IntervalValue: 0, IntervalUnit: model.IntervalUnitDays, Start: start},
		"custom interval negatif":    {Frequency: model.FrequencyCustom, IntervalValue: -3, IntervalUnit: model.IntervalUnitDays, Start: start},
		"custom unit months":         {Frequency: model.FrequencyCustom, IntervalValue: 1, IntervalUnit: "months", Start: start},
		"frequency tak dikenal":      {Frequency: "yearly", Start: start},
	}

	for name, spec := range cases {
		assert.Empty(t, GenerateDates(spec, 30*24*time.Hour), name)
	}
}

func TestGenerateDatesZeroHorizon(t *testing.T) {
	spec := RecurrenceSpec{
		Frequency: model.FrequencyDaily,
		Start:     day(2023, time.January, 1),
	}

	assert.Empty(t, GenerateDates(spec, 0))
}

func TestGenerateDatesIdempotent(t *testing.T) {
	spec := RecurrenceSpec{
		Frequency:    model.FrequencyWeekly,
		SelectedDays: []int{3, 1}, // urutan tak berpengaruh
		Start:        day(2024, time.January, 1),
	}

	first := GenerateDates(spec, ScheduleHorizon)
	second := GenerateDates(spec, ScheduleHorizon)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i].After(first[i-1]), "tanggal harus terurut & unik")
	}
}

func TestGenerateDatesStrictBounds(t *testing.T) {
	start := day(2023, time.June, 1)
	spec := RecurrenceSpec{Frequency: model.FrequencyDaily, Start: start}

	dates := GenerateDates(spec, 7*24*time.Hour)

	bound := start.Add(7 * 24 * time.Hour)
	for _, d := range dates {
		assert.True(t, d.After(start))
		assert.False(t, d.After(bound))
	}
}

func TestUpcomingDatesMovesWithReferenceTime(t *testing.T) {
	// Schedule lama: start 2024-01-01, top-up dijalankan 2024-06-01.
	// Jendela harus (ref, ref+horizon], bukan terpaku di start — kalau tidak,
	// setelah horizon awal lewat job top-up tidak pernah menghasilkan seed baru.
	spec := RecurrenceSpec{
		Frequency: model.FrequencyDaily,
		Start:     day(2024, time.January, 1),
	}
	ref := day(2024, time.June, 1)

	dates := UpcomingDates(spec, ref, TopupHorizon)

	assert.NotEmpty(t, dates)
	bound := ref.Add(TopupHorizon)
	for _, d := range dates {
		assert.True(t, d.After(ref))
		assert.False(t, d.After(bound))
	}
	assert.Equal(t, day(2024, time.June, 2), dates[0])
	assert.Equal(t, bound, dates[len(dates)-1])
}

func TestUpcomingDatesBeyondInitialHorizon(t *testing.T) {
	// Top-up tetap jalan setelah start+90 hari terlewati
	spec := RecurrenceSpec{
		Frequency:    model.FrequencyWeekly,
		SelectedDays: []int{1},
		Start:        day(2024, time.January, 1),
	}
	initialBound := spec.Start.Add(ScheduleHorizon)

	dates := UpcomingDates(spec, day(2024, time.December, 1), TopupHorizon)

	assert.NotEmpty(t, dates)
	for _, d := range dates {
		assert.True(t, d.After(initialBound))
	}
}

func TestUpcomingDatesBeforeStart(t *testing.T) {
	// Ref sebelum start: hanya tanggal di (ref, ref+horizon] yang keluar,
	// dan tidak pernah termasuk hari start sendiri
	spec := RecurrenceSpec{
		Frequency: model.FrequencyDaily,
		Start:     day(2024, time.June, 1),
	}

	dates := UpcomingDates(spec, day(2024, time.May, 20), TopupHorizon)

	assert.NotEmpty(t, dates)
	assert.Equal(t, day(2024, time.June, 2), dates[0])
	assert.Equal(t, day(2024, time.June, 19), dates[len(dates)-1])
}

func TestUpcomingDatesWindowEndsBeforeStart(t *testing.T) {
	spec := RecurrenceSpec{
		Frequency: model.FrequencyDaily,
		Start:     day(2024, time.June, 1),
	}

	// bound (ref+horizon) masih sebelum start → belum ada yang bisa di-seed
	assert.Empty(t, UpcomingDates(spec, day(2024, time.January, 1), TopupHorizon))
	assert.Empty(t, UpcomingDates(spec, day(2024, time.January, 1), 0))
}

func TestIsWindowOpenAt(t *testing.T) {
	open, _ := dbtime.Parse("08:00")
	closeT, _ := dbtime.Parse("20:00")
	fri, sun := 5, 0

	sched := model.CheckinScheduleModel{
		CheckinScheduleWindowOpenDay:   &fri,
		CheckinScheduleWindowOpenTime:  &open,
		CheckinScheduleWindowCloseDay:  &sun,
		CheckinScheduleWindowCloseTime: &closeT,
	}

	// Window Jumat 08:00 → Minggu 20:00 melewati pergantian minggu
	friday := time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)   // Jumat siang
	sunday := time.Date(2024, time.January, 7, 19, 0, 0, 0, time.UTC)   // Minggu sore
	tuesday := time.Date(2024, time.January, 9, 12, 0, 0, 0, time.UTC)  // Selasa
	earlyFri := time.Date(2024, time.January, 5, 7, 0, 0, 0, time.UTC)

	assert.True(t, IsWindowOpenAt(sched, friday))
	assert.True(t, IsWindowOpenAt(sched, sunday))
	assert.False(t, IsWindowOpenAt(sched, tuesday))
	assert.False(t, IsWindowOpenAt(sched, earlyFri))
}

func TestIsWindowOpenAtNoWindow(t *testing.T) {
	assert.True(t, IsWindowOpenAt(model.CheckinScheduleModel{}, time.Now()))
}
