package db

import (
	"time"

	"gorm.io/gorm/clause"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/models"
)

// ListAchievements joins the static definition table against the
// unlock set. The definition list is never mutated.
func (s *Store) ListAchievements() ([]models.Achievement, error) {
	unlocked, err := s.UnlockedAchievementIDs()
	if err != nil {
		return nil, err
	}
	out := make([]models.Achievement, 0, len(models.Achievements))
	for _, def := range models.Achievements {
		a := models.Achievement{AchievementDef: def}
		if at, ok := unlocked[def.ID]; ok {
			a.Unlocked = true
			t := at
			a.UnlockedAt = &t
		}
		out = append(out, a)
	}
	return out, nil
}

// UnlockedAchievementIDs returns the unlock set keyed by id
func (s *Store) UnlockedAchievementIDs() (map[string]time.Time, error) {
	var rows []models.UnlockedAchievement
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	unlocked := make(map[string]time.Time, len(rows))
	for i := range rows {
		unlocked[rows[i].ID] = rows[i].UnlockedAt
	}
	return unlocked, nil
}

// UnlockAchievement inserts an unlock if absent. Returns true only when
// the row was newly inserted; unlocking is monotonic and idempotent.
func (s *Store) UnlockAchievement(id string, at time.Time) (bool, error) {
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UnlockedAchievement{ID: id, UnlockedAt: at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ========== ACHIEVEMENT FACT QUERIES ==========

// CountTotalSessions counts every logged session
func (s *Store) CountTotalSessions() (int64, error) {
	var count int64
	err := s.db.Model(&models.Session{}).Count(&count).Error
	return count, err
}

// CountDistinctSessionDays counts the distinct days with any session
func (s *Store) CountDistinctSessionDays() (int64, error) {
	var count int64
	err := s.db.Model(&models.Session{}).Distinct("date").Count(&count).Error
	return count, err
}

// CountDistinctSessionWeeks counts the distinct calendar weeks with any
// session
func (s *Store) CountDistinctSessionWeeks() (int64, error) {
	var dates []string
	if err := s.db.Model(&models.Session{}).Distinct().Pluck("date", &dates).Error; err != nil {
		return 0, err
	}
	weeks := make(map[string]bool)
	for _, d := range dates {
		if wk, ok := analytics.WeekKey(d); ok {
			weeks[wk] = true
		}
	}
	return int64(len(weeks)), nil
}

// TotalHours sums hours across every session
func (s *Store) TotalHours() (float64, error) {
	var total *float64
	err := s.db.Model(&models.Session{}).Select("SUM(hours)").Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

// HasPaidSession reports whether any session carries actual pay
func (s *Store) HasPaidSession() (bool, error) {
	var count int64
	err := s.db.Model(&models.Session{}).
		Where("pay_type IN ? AND (hourly_rate > 0 OR fixed_amount > 0)",
			[]string{string(models.PayHourly), string(models.PayFixed)}).
		Count(&count).Error
	return count > 0, err
}

// ListAllSessions returns every session without preloads, for the
// balance predicates that scan full history
func (s *Store) ListAllSessions() ([]models.Session, error) {
	var sessions []models.Session
	if err := s.db.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
