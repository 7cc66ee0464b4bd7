package analytics

import (
	"fmt"
	"math"

	"github.com/chronodesk/chronodesk/internal/models"
)

// Severity grades a single burnout factor
const (
	SeverityOK      = "ok"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

// Risk levels ordered by score
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

// BurnoutFactor is one graded contributor to burnout risk
type BurnoutFactor struct {
	Name      string `json:"name"`
	Severity  string `json:"severity"`
	Value     string `json:"value"`
	Threshold string `json:"threshold"`
}

// BurnoutRisk is the combined assessment over a trailing window
type BurnoutRisk struct {
	RiskLevel       string          `json:"risk_level"`
	RiskScore       float64         `json:"risk_score"`
	Factors         []BurnoutFactor `json:"factors"`
	Recommendations []string        `json:"recommendations"`
}

// ComputeBurnout grades four independent factors over sessions from a
// trailing window of the given length in days (normally 14) and sums
// their fixed point contributions into a risk score.
func ComputeBurnout(sessions []models.Session, days int) BurnoutRisk {
	weeks := float64(days) / 7
	factors := make([]BurnoutFactor, 0, 4)
	var score float64
	var recommendations []string

	// Weekly hours
	var totalHours float64
	for i := range sessions {
		totalHours += sessions[i].Hours
	}
	weeklyHours := totalHours / weeks
	severity, points := SeverityOK, 0.0
	switch {
	case weeklyHours > 60:
		severity, points = SeverityDanger, 35
	case weeklyHours > 50:
		severity, points = SeverityWarning, 20
	}
	factors = append(factors, BurnoutFactor{
		Name:      "Weekly Hours",
		Severity:  severity,
		Value:     fmt.Sprintf("%.1fh/week", weeklyHours),
		Threshold: "Under 50h",
	})
	score += points
	if severity != SeverityOK {
		recommendations = append(recommendations, "Reduce weekly hours to under 50 for sustainability.")
	}

	// Longest single session
	var longest float64
	for i := range sessions {
		longest = math.Max(longest, sessions[i].Hours)
	}
	severity, points = SeverityOK, 0
	switch {
	case longest > 10:
		severity, points = SeverityDanger, 25
	case longest > 8:
		severity, points = SeverityWarning, 15
	}
	factors = append(factors, BurnoutFactor{
		Name:      "Longest Session",
		Severity:  severity,
		Value:     fmt.Sprintf("%.1fh", longest),
		Threshold: "Under 8h",
	})
	score += points
	if severity != SeverityOK {
		recommendations = append(recommendations, "Break long sessions into smaller blocks with breaks.")
	}

	// Rest days in the window
	activeDays := make(map[string]bool)
	for i := range sessions {
		activeDays[sessions[i].Date] = true
	}
	restDays := days - len(activeDays)
	severity, points = SeverityOK, 0
	switch {
	case restDays < 2:
		severity, points = SeverityDanger, 30
	case restDays < 4:
		severity, points = SeverityWarning, 15
	}
	factors = append(factors, BurnoutFactor{
		Name:      fmt.Sprintf("Rest Days (%d weeks)", int(weeks)),
		Severity:  severity,
		Value:     fmt.Sprintf("%d days", restDays),
		Threshold: "At least 4 days",
	})
	score += points
	if severity != SeverityOK {
		recommendations = append(recommendations, "Schedule at least 2 full rest days per week.")
	}

	// Daily-hours spread
	hoursPerDay := make(map[string]float64)
	for i := range sessions {
		hoursPerDay[sessions[i].Date] += sessions[i].Hours
	}
	var deviation float64
	if len(hoursPerDay) > 0 {
		var mean float64
		for _, h := range hoursPerDay {
			mean += h
		}
		mean /= float64(len(hoursPerDay))
		var variance float64
		for _, h := range hoursPerDay {
			variance += (h - mean) * (h - mean)
		}
		deviation = math.Sqrt(variance / float64(len(hoursPerDay)))
	}
	severity, points = SeverityOK, 0
	if deviation > 4 {
		severity, points = SeverityWarning, 10
	}
	factors = append(factors, BurnoutFactor{
		Name:      "Schedule Consistency",
		Severity:  severity,
		Value:     fmt.Sprintf("±%.1fh variation", deviation),
		Threshold: "Under ±4h",
	})
	score += points
	if severity != SeverityOK {
		recommendations = append(recommendations, "Establish a more consistent daily schedule.")
	}

	level := RiskLow
	switch {
	case score >= 70:
		level = RiskCritical
	case score >= 45:
		level = RiskHigh
	case score >= 20:
		level = RiskModerate
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Great work-life balance! Keep it up.")
	}

	return BurnoutRisk{
		RiskLevel:       level,
		RiskScore:       score,
		Factors:         factors,
		Recommendations: recommendations,
	}
}
