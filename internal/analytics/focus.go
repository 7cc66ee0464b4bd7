package analytics

import (
	"time"

	"github.com/chronodesk/chronodesk/internal/models"
)

// FocusMetrics scores how concentrated recent work has been
type FocusMetrics struct {
	FocusScore         float64 `json:"focus_score"`         // 0-100
	FragmentationScore float64 `json:"fragmentation_score"` // 0-100, lower = more fragmented
	AvgSessionLength   float64 `json:"avg_session_length"`
	SessionCount       int     `json:"session_count"`
	TotalHours         float64 `json:"total_hours"`
	LongestStreakDays  int     `json:"longest_streak_days"`
	CurrentStreakDays  int     `json:"current_streak_days"`
}

// shortSessionThreshold marks a session as fragmented, in hours
const shortSessionThreshold = 1.0

// ComputeFocus blends session length, fragmentation and streak into a
// 0-100 focus score. windowSessions is the analytics window under
// review; allDates is every session date on record, since streaks look
// past the window edge.
func ComputeFocus(windowSessions []models.Session, allDates []string, now time.Time) FocusMetrics {
	summary := Compute(windowSessions).Summary

	short := 0
	for i := range windowSessions {
		if windowSessions[i].Hours < shortSessionThreshold {
			short++
		}
	}
	fragmentation := 100.0
	if summary.TotalSessions > 0 {
		fragmentation = 100 - float64(short)/float64(summary.TotalSessions)*100
	}

	current, longest := Streaks(allDates, now)

	lengthPoints := summary.AvgSessionLength / 4 * 40
	if lengthPoints > 40 {
		lengthPoints = 40
	}
	streakPoints := float64(current) / 7 * 30
	if streakPoints > 30 {
		streakPoints = 30
	}
	score := lengthPoints + fragmentation*0.3 + streakPoints
	if score > 100 {
		score = 100
	}

	return FocusMetrics{
		FocusScore:         score,
		FragmentationScore: fragmentation,
		AvgSessionLength:   summary.AvgSessionLength,
		SessionCount:       summary.TotalSessions,
		TotalHours:         summary.TotalHours,
		LongestStreakDays:  longest,
		CurrentStreakDays:  current,
	}
}
