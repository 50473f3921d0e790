// file: internals/features/progress/analytics/service/analytics.go
package service

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	checkinModel "fitcoach_backend/internals/features/checkins/checkins/model"
)

// ====================
// Konstanta analitik
// ====================
const (
	// Arah tren dianggap berubah bila rata-rata perubahan 2 titik terakhir
	// melewati ambang ini
	TrendThreshold = 0.5

	// Jeda maksimum antar check-in yang masih dihitung beruntun
	StreakMaxGapDays = 3

	// Jendela untuk completion rate & keteraturan
	CompletionWindowDays = 30
)

// Metrik pengukuran tubuh yang dilacak dari checkin_measurements
var TrackedMetrics = []string{"weight", "body_fat", "chest", "waist", "hips", "arms", "thighs"}

const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// ====================
// Tipe hasil
// ====================
type MetricPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type MetricProgress struct {
	Metric      string        `json:"metric"`
	Current     float64       `json:"current"`
	Initial     float64       `json:"initial"`
	TotalChange float64       `json:"total_change"`
	Trend       string        `json:"trend"`
	History     []MetricPoint `json:"history"`
}

// Milestone mencakup yang sudah tercapai (Achieved=true, Progress=100) dan
// target terdekat berikutnya (Achieved=false, Progress = persen menuju ambang).
type Milestone struct {
	Type       string     `json:"type"`
	Label      string     `json:"label"`
	Achieved   bool       `json:"achieved"`
	AchievedAt *time.Time `json:"achieved_at,omitempty"`
	Value      float64    `json:"value"`
	Progress   float64    `json:"progress"`
}

type ClientMeta struct {
	ClientID   uuid.UUID
	GoalWeight *float64
}

type ClientProgressMetrics struct {
	ClientID         uuid.UUID                 `json:"client_id"`
	Metrics          map[string]MetricProgress `json:"metrics"`
	CurrentStreak    int                       `json:"current_streak"`
	LongestStreak    int                       `json:"longest_streak"`
	CompletionRate   float64                   `json:"completion_rate"`
	ConsistencyScore float64                   `json:"consistency_score"`
	TotalCheckins    int                       `json:"total_checkins"`
	Milestones       []Milestone               `json:"milestones"`
}

// ComputeProgress menghitung seluruh metrik progres dari riwayat check-in.
// checkins wajib terurut ascending by checkin_date; fungsi ini murni
// (tidak menyentuh DB) supaya gampang dites.
func ComputeProgress(checkins []checkinModel.CheckinModel, meta ClientMeta, now time.Time) ClientProgressMetrics {
	result := ClientProgressMetrics{
		ClientID:   meta.ClientID,
		Metrics:    map[string]MetricProgress{},
		Milestones: []Milestone{},
	}

	qualifying := filterQualifying(checkins)
	result.TotalCheckins = len(qualifying)

	// Riwayat per metrik
	histories := buildMetricHistories(qualifying)
	for _, metric := range TrackedMetrics {
		points := histories[metric]
		if len(points) == 0 {
			continue
		}
		result.Metrics[metric] = summarizeMetric(metric, points)
	}

	// Streak & kedisiplinan
	dates := qualifyingDates(qualifying)
	result.CurrentStreak, result.LongestStreak = computeStreaks(dates, now)
	result.CompletionRate = computeCompletionRate(checkins, now)
	result.ConsistencyScore = computeConsistencyScore(result.CurrentStreak, result.CompletionRate, dates, now)

	result.Milestones = detectMilestones(histories["weight"], meta.GoalWeight, result.LongestStreak, dates)

	return result
}

// filterQualifying buang record pending/flagged; hanya completed & reviewed
// yang masuk hitungan progres
func filterQualifying(checkins []checkinModel.CheckinModel) []checkinModel.CheckinModel {
	out := make([]checkinModel.CheckinModel, 0, len(checkins))
	for _, ci := range checkins {
		if ci.IsQualifying() {
			out = append(out, ci)
		}
	}
	return out
}

func buildMetricHistories(checkins []checkinModel.CheckinModel) map[string][]MetricPoint {
	histories := map[string][]MetricPoint{}
	for _, ci := range checkins {
		if len(ci.CheckinMeasurements) == 0 {
			continue
		}
		var measurements map[string]float64
		if err := sonic.Unmarshal(ci.CheckinMeasurements, &measurements); err != nil {
			log.Printf("[ANALYTICS] ⚠️ Gagal parse measurements checkin %s: %v", ci.CheckinID, err)
			continue
		}
		for _, metric := range TrackedMetrics {
			v, ok := measurements[metric]
			if !ok || v <= 0 {
				continue
			}
			histories[metric] = append(histories[metric], MetricPoint{
				Date:  ci.CheckinDate,
				Value: v,
			})
		}
	}
	return histories
}

func summarizeMetric(metric string, points []MetricPoint) MetricProgress {
	first := points[0]
	last := points[len(points)-1]
	return MetricProgress{
		Metric:      metric,
		Current:     last.Value,
		Initial:     first.Value,
		TotalChange: round1(last.Value - first.Value),
		Trend:       computeTrend(points),
		History:     points,
	}
}

// computeTrend: rata-rata perubahan 2 titik terakhir = (v[n] - v[n-2]) / 2.
// Butuh minimal 3 titik; di bawah itu selalu stable.
func computeTrend(points []MetricPoint) string {
	n := len(points)
	if n < 3 {
		return TrendStable
	}
	avgChange := (points[n-1].Value - points[n-3].Value) / 2
	switch {
	case avgChange > TrendThreshold:
		return TrendUp
	case avgChange < -TrendThreshold:
		return TrendDown
	default:
		return TrendStable
	}
}

func qualifyingDates(checkins []checkinModel.CheckinModel) []time.Time {
	seen := map[string]bool{}
	dates := make([]time.Time, 0, len(checkins))
	for _, ci := range checkins {
		d := truncateDay(ci.CheckinDate)
		key := d.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// computeStreaks: rangkaian check-in dengan jeda <= StreakMaxGapDays hari.
// Current streak putus (jadi 0) kalau check-in terakhir sudah lewat dari
// toleransi jeda dihitung dari now.
func computeStreaks(dates []time.Time, now time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	run := 1
	longest = 1
	for i := 1; i < len(dates); i++ {
		gap := daysBetween(dates[i-1], dates[i])
		if gap <= StreakMaxGapDays {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// run sekarang = panjang rangkaian yang berakhir di check-in terakhir
	sinceLast := daysBetween(dates[len(dates)-1], truncateDay(now))
	if sinceLast > StreakMaxGapDays {
		return 0, longest
	}
	return run, longest
}

// computeCompletionRate: check-in completed/reviewed dibagi SEMUA record
// dalam jendela 30 hari terakhir (seed pending yang terlewat ikut memberatkan
// penyebut). Tanpa record di jendela = 0.
func computeCompletionRate(checkins []checkinModel.CheckinModel, now time.Time) float64 {
	today := truncateDay(now)
	cutoff := today.AddDate(0, 0, -CompletionWindowDays)

	total, completed := 0, 0
	for _, ci := range checkins {
		d := truncateDay(ci.CheckinDate)
		if !d.After(cutoff) || d.After(today) {
			continue
		}
		total++
		if ci.IsQualifying() {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return round1(float64(completed) / float64(total) * 100)
}

// computeConsistencyScore: gabungan streak (40%), completion (40%) dan
// keteraturan jarak antar check-in (20%), di-clamp ke [0,100].
func computeConsistencyScore(currentStreak int, completionRate float64, dates []time.Time, now time.Time) float64 {
	streakScore := float64(currentStreak) * 10
	if streakScore > 100 {
		streakScore = 100
	}

	regularity := computeRegularity(dates, now)

	score := streakScore*0.4 + completionRate*0.4 + regularity*0.2
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return round1(score)
}

// computeRegularity: 100 - (stdev jarak antar check-in dalam jendela * 100),
// floor di 0. Kurang dari 2 check-in dalam jendela = 0 (belum ada pola).
func computeRegularity(dates []time.Time, now time.Time) float64 {
	cutoff := truncateDay(now).AddDate(0, 0, -CompletionWindowDays)
	var window []time.Time
	for _, d := range dates {
		if d.After(cutoff) {
			window = append(window, d)
		}
	}
	if len(window) < 2 {
		return 0
	}

	gaps := make([]float64, 0, len(window)-1)
	for i := 1; i < len(window); i++ {
		gaps = append(gaps, float64(daysBetween(window[i-1], window[i])))
	}

	mean := 0.0
	for _, g := range gaps {
		mean += g
	}
	mean /= float64(len(gaps))

	variance := 0.0
	for _, g := range gaps {
		variance += (g - mean) * (g - mean)
	}
	variance /= float64(len(gaps))
	stdDev := math.Sqrt(variance)

	reg := 100 - stdDev*100
	if reg < 0 {
		reg = 0
	}
	return reg
}

var (
	weightLossThresholds = []float64{5, 10}
	streakThresholds     = []int{7, 30}
)

// detectMilestones: pencapaian berat badan (turun 5/10 kg, capai goal) dan
// streak (7/30 hari). Ambang yang belum tercapai dilaporkan sebagai target
// terdekat berikutnya dengan persen progres ke arahnya.
func detectMilestones(weightHistory []MetricPoint, goalWeight *float64, longestStreak int, dates []time.Time) []Milestone {
	milestones := []Milestone{}

	if len(weightHistory) >= 2 {
		initial := weightHistory[0].Value
		currentLoss := initial - weightHistory[len(weightHistory)-1].Value

		for _, threshold := range weightLossThresholds {
			at, loss, achieved := firstLossReaching(weightHistory, threshold)
			if achieved {
				milestones = append(milestones, Milestone{
					Type:       "weight_loss",
					Label:      fmt.Sprintf("Lost %g kg", threshold),
					Achieved:   true,
					AchievedAt: &at,
					Value:      round1(loss),
					Progress:   100,
				})
				continue
			}
			milestones = append(milestones, Milestone{
				Type:     "weight_loss",
				Label:    fmt.Sprintf("Lost %g kg", threshold),
				Value:    round1(currentLoss),
				Progress: progressPct(currentLoss, threshold),
			})
			break // cukup satu target berikutnya
		}

		if goalWeight != nil && initial > *goalWeight {
			if at, value, achieved := firstValueAtOrBelow(weightHistory, *goalWeight); achieved {
				milestones = append(milestones, Milestone{
					Type:       "goal_weight",
					Label:      "Reached goal weight",
					Achieved:   true,
					AchievedAt: &at,
					Value:      value,
					Progress:   100,
				})
			} else {
				milestones = append(milestones, Milestone{
					Type:     "goal_weight",
					Label:    "Reached goal weight",
					Value:    weightHistory[len(weightHistory)-1].Value,
					Progress: progressPct(currentLoss, initial-*goalWeight),
				})
			}
		}
	}

	if len(dates) > 0 {
		last := dates[len(dates)-1]
		for _, threshold := range streakThresholds {
			if longestStreak >= threshold {
				at := last
				milestones = append(milestones, Milestone{
					Type:       "streak",
					Label:      fmt.Sprintf("%d-day streak", threshold),
					Achieved:   true,
					AchievedAt: &at,
					Value:      float64(longestStreak),
					Progress:   100,
				})
				continue
			}
			milestones = append(milestones, Milestone{
				Type:     "streak",
				Label:    fmt.Sprintf("%d-day streak", threshold),
				Value:    float64(longestStreak),
				Progress: progressPct(float64(longestStreak), float64(threshold)),
			})
			break
		}
	}

	return milestones
}

// firstLossReaching: titik pertama dengan penurunan >= threshold dari berat awal
func firstLossReaching(history []MetricPoint, threshold float64) (time.Time, float64, bool) {
	initial := history[0].Value
	for _, p := range history[1:] {
		if loss := initial - p.Value; loss >= threshold {
			return p.Date, loss, true
		}
	}
	return time.Time{}, 0, false
}

func firstValueAtOrBelow(history []MetricPoint, target float64) (time.Time, float64, bool) {
	for _, p := range history[1:] {
		if p.Value <= target {
			return p.Date, p.Value, true
		}
	}
	return time.Time{}, 0, false
}

func progressPct(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := value / target * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return round1(pct)
}

// ====================
// Util tanggal & angka
// ====================
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(a, b time.Time) int {
	return int(truncateDay(b).Sub(truncateDay(a)).Hours() / 24)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
