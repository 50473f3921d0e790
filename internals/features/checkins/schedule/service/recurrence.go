// file: internals/features/checkins/schedule/service/recurrence.go
package service

import (
	"sort"
	"time"

	"github.com/bytedance/sonic"

	"fitcoach_backend/internals/features/checkins/schedule/model"
)

// Horizon materialisasi tanggal check-in ke depan.
// Saat coach membuat schedule kita isi ±3 bulan sekaligus; job top-up
// harian hanya mengisi ±1 bulan. Perbedaan ini mengikuti perilaku
// produk yang sudah jalan (lihat DESIGN.md).
const (
	ScheduleHorizon = 90 * 24 * time.Hour
	TopupHorizon    = 30 * 24 * time.Hour
)

// RecurrenceSpec: input murni untuk GenerateDates.
type RecurrenceSpec struct {
	Frequency     string
	SelectedDays  []int // 0=Minggu .. 6=Sabtu
	IntervalValue int
	IntervalUnit  string
	Start         time.Time
}

// SpecFromModel membangun RecurrenceSpec dari row schedule.
func SpecFromModel(m model.CheckinScheduleModel) RecurrenceSpec {
	spec := RecurrenceSpec{
		Frequency: m.CheckinScheduleFrequency,
		Start:     m.CheckinScheduleStartAt,
	}
	if m.CheckinScheduleIntervalValue != nil {
		spec.IntervalValue = *m.CheckinScheduleIntervalValue
	}
	if m.CheckinScheduleIntervalUnit != nil {
		spec.IntervalUnit = *m.CheckinScheduleIntervalUnit
	}
	if len(m.CheckinScheduleSelectedDays) > 0 {
		var days []int
		if err := sonic.Unmarshal(m.CheckinScheduleSelectedDays, &days); err == nil {
			spec.SelectedDays = days
		}
	}
	return spec
}

// GenerateDates meng-expand RecurrenceSpec menjadi daftar tanggal check-in
// terurut & unik, semuanya di rentang (start, start+horizon].
//
// Fungsi murni & idempoten: dua kali panggil dengan input sama → hasil sama.
// Konfigurasi tidak valid (weekday kosong, interval <= 0, unit tak didukung)
// menghasilkan daftar kosong, bukan error atau loop tak berhingga.
func GenerateDates(spec RecurrenceSpec, horizon time.Duration) []time.Time {
	if horizon <= 0 {
		return nil
	}
	start := spec.Start
	bound := start.Add(horizon)

	var dates []time.Time

	switch spec.Frequency {
	case model.FrequencyDaily:
		for cursor := start.AddDate(0, 0, 1); !cursor.After(bound); cursor = cursor.AddDate(0, 0, 1) {
			dates = append(dates, cursor)
		}

	case model.FrequencyWeekly, model.FrequencyBiweekly:
		if len(spec.SelectedDays) == 0 {
			return nil
		}
		step := 7
		if spec.Frequency == model.FrequencyBiweekly {
			step = 14
		}
		for cursor := start; !cursor.After(bound); cursor = cursor.AddDate(0, 0, step) {
			for _, wd := range spec.SelectedDays {
				if wd < 0 || wd > 6 {
					continue
				}
				d := nextWeekdayOnOrAfter(cursor, time.Weekday(wd))
				if d.After(start) && !d.After(bound) {
					dates = append(dates, d)
				}
			}
		}

	case model.FrequencyMonthly:
		for cursor := start.AddDate(0, 1, 0); !cursor.After(bound); cursor = cursor.AddDate(0, 1, 0) {
			dates = append(dates, cursor)
		}

	case model.FrequencyCustom:
		if spec.IntervalValue <= 0 {
			return nil
		}
		var stepDays int
		switch spec.IntervalUnit {
		case model.IntervalUnitDays:
			stepDays = spec.IntervalValue
		case model.IntervalUnitWeeks:
			stepDays = spec.IntervalValue * 7
		default:
			// termasuk "months": tidak didukung, defensif → kosong
			return nil
		}
		for cursor := start.AddDate(0, 0, stepDays); !cursor.After(bound); cursor = cursor.AddDate(0, 0, stepDays) {
			dates = append(dates, cursor)
		}

	default:
		return nil
	}

	return sortAndDedupe(dates)
}

// UpcomingDates: hasil expand yang jatuh di (ref, ref+horizon]. Jendela ini
// bergerak mengikuti waktu berjalan, bukan terpaku di start schedule — job
// top-up harian mengandalkan ini supaya tetap menghasilkan seed baru setelah
// horizon materialisasi awal terlewati.
func UpcomingDates(spec RecurrenceSpec, ref time.Time, horizon time.Duration) []time.Time {
	if horizon <= 0 {
		return nil
	}
	bound := ref.Add(horizon)
	span := bound.Sub(spec.Start)
	if span <= 0 {
		return nil
	}

	var out []time.Time
	for _, d := range GenerateDates(spec, span) {
		if d.After(ref) {
			out = append(out, d)
		}
	}
	return out
}

func nextWeekdayOnOrAfter(from time.Time, wd time.Weekday) time.Time {
	delta := (int(wd) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, delta)
}

func sortAndDedupe(dates []time.Time) []time.Time {
	if len(dates) == 0 {
		return dates
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := dates[:1]
	for _, d := range dates[1:] {
		if !d.Equal(out[len(out)-1]) {
			out = append(out, d)
		}
	}
	return out
}
