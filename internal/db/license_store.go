package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/chronodesk/chronodesk/internal/models"
)

// GetLicense returns the stored license, or the Free default when none
// has been saved yet
func (s *Store) GetLicense() (models.License, error) {
	var license models.License
	err := s.db.First(&license).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultLicense(), nil
	}
	if err != nil {
		return models.License{}, err
	}
	license.Tier = models.ParseTier(string(license.Tier))
	return license, nil
}

// SaveLicense replaces the single license row
func (s *Store) SaveLicense(license models.License) error {
	if err := s.db.Where("1 = 1").Delete(&models.License{}).Error; err != nil {
		return err
	}
	license.ID = 0
	return s.db.Create(&license).Error
}

// GetSetting returns a setting value, nil when unset
func (s *Store) GetSetting(key string) (*string, error) {
	var setting models.Setting
	err := s.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting.Value, nil
}

// SetSetting upserts a setting value
func (s *Store) SetSetting(key, value string) error {
	return s.db.Save(&models.Setting{Key: key, Value: value}).Error
}

// LimitCheck reports whether a tier-limited feature may be used again
type LimitCheck struct {
	Allowed bool
	Current int64
	Limit   *int
	Feature string
}

// CanCreateSessionType checks the category count against the tier limit
func (s *Store) CanCreateSessionType() (LimitCheck, error) {
	license, err := s.GetLicense()
	if err != nil {
		return LimitCheck{}, err
	}
	limits := models.LimitsForTier(license.Tier)
	count, err := s.CountSessionTypes()
	if err != nil {
		return LimitCheck{}, err
	}
	return newLimitCheck("session_types", count, limits.MaxSessionTypes), nil
}

// CanCreateGoal checks the goal count against the tier limit
func (s *Store) CanCreateGoal() (LimitCheck, error) {
	license, err := s.GetLicense()
	if err != nil {
		return LimitCheck{}, err
	}
	limits := models.LimitsForTier(license.Tier)
	count, err := s.CountGoals()
	if err != nil {
		return LimitCheck{}, err
	}
	return newLimitCheck("goals", count, limits.MaxGoals), nil
}

func newLimitCheck(feature string, current int64, limit *int) LimitCheck {
	check := LimitCheck{Allowed: true, Current: current, Limit: limit, Feature: feature}
	if limit != nil && current >= int64(*limit) {
		check.Allowed = false
	}
	return check
}

// RequireFeature returns a friendly error when the tier lacks a feature
func RequireFeature(enabled bool, feature string) error {
	if !enabled {
		return fmt.Errorf("%s requires a Pro license. Activate one with 'chronodesk license activate'", feature)
	}
	return nil
}
