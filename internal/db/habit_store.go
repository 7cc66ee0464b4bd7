package db

import (
	"fmt"
	"time"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/models"
)

// ListHabits returns all habits with their streaks computed from the
// completion log. Streaks are derived per query, never stored.
func (s *Store) ListHabits() ([]models.Habit, error) {
	var habits []models.Habit
	if err := s.db.Order("name").Find(&habits).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range habits {
		dates, err := s.HabitCompletionDates(habits[i].ID)
		if err != nil {
			return nil, err
		}
		habits[i].TotalCompletions = len(dates)
		habits[i].CurrentStreak, habits[i].BestStreak = analytics.Streaks(dates, now)
	}
	return habits, nil
}

// GetHabit retrieves a habit by ID
func (s *Store) GetHabit(id uint) (*models.Habit, error) {
	var habit models.Habit
	if err := s.db.First(&habit, id).Error; err != nil {
		return nil, fmt.Errorf("habit #%d: %w", id, ErrNotFound)
	}
	return &habit, nil
}

// CreateHabit adds a new habit
func (s *Store) CreateHabit(habit *models.Habit) error {
	if habit.Name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if _, err := models.ParseTriggerType(string(habit.TriggerType)); err != nil {
		return err
	}
	return s.db.Create(habit).Error
}

// UpdateHabit saves changes to a habit
func (s *Store) UpdateHabit(habit *models.Habit) error {
	return s.db.Save(habit).Error
}

// DeleteHabit removes a habit and its completion log
func (s *Store) DeleteHabit(id uint) error {
	if err := s.db.Where("habit_id = ?", id).Delete(&models.HabitLog{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.Habit{}, id).Error
}

// LogHabitCompletion appends one completion to the log
func (s *Store) LogHabitCompletion(habitID uint, notes string) (*models.HabitLog, error) {
	if _, err := s.GetHabit(habitID); err != nil {
		return nil, err
	}
	log := models.HabitLog{HabitID: habitID, CompletedAt: time.Now(), Notes: notes}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// HabitCompletionDates returns the distinct days a habit was completed
func (s *Store) HabitCompletionDates(habitID uint) ([]string, error) {
	var logs []models.HabitLog
	if err := s.db.Where("habit_id = ?", habitID).Find(&logs).Error; err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(logs))
	var dates []string
	for i := range logs {
		d := analytics.DateOf(logs[i].CompletedAt)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	return dates, nil
}

// PendingHabits returns active habits whose trigger fired today and
// which have not been completed today
func (s *Store) PendingHabits(now time.Time) ([]models.Habit, error) {
	today := analytics.DateOf(now)
	sessions, err := s.SessionsByDate(today)
	if err != nil {
		return nil, err
	}
	var totalHours float64
	for i := range sessions {
		totalHours += sessions[i].Hours
	}
	sessionCount := len(sessions)

	habits, err := s.ListHabits()
	if err != nil {
		return nil, err
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var completedToday []models.HabitLog
	err = s.db.Where("completed_at >= ? AND completed_at < ?", midnight, midnight.AddDate(0, 0, 1)).
		Find(&completedToday).Error
	if err != nil {
		return nil, err
	}
	done := make(map[uint]bool, len(completedToday))
	for i := range completedToday {
		done[completedToday[i].HabitID] = true
	}

	var pending []models.Habit
	for _, h := range habits {
		if !h.IsActive || done[h.ID] {
			continue
		}
		switch h.TriggerType {
		case models.TriggerAfterSession:
			if float64(sessionCount) >= h.TriggerValue {
				pending = append(pending, h)
			}
		case models.TriggerAfterHours:
			if totalHours >= h.TriggerValue {
				pending = append(pending, h)
			}
		case models.TriggerDaily:
			pending = append(pending, h)
		}
	}
	return pending, nil
}
