package db

import (
	"fmt"

	"github.com/chronodesk/chronodesk/internal/models"
)

// ListGoals returns all financial goals, newest first
func (s *Store) ListGoals() ([]models.FinancialGoal, error) {
	var goals []models.FinancialGoal
	if err := s.db.Order("created_date DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// GetGoal retrieves a goal by ID
func (s *Store) GetGoal(id uint) (*models.FinancialGoal, error) {
	var goal models.FinancialGoal
	if err := s.db.First(&goal, id).Error; err != nil {
		return nil, fmt.Errorf("goal #%d: %w", id, ErrNotFound)
	}
	return &goal, nil
}

// CreateGoal adds a new financial goal
func (s *Store) CreateGoal(req models.NewGoal) (*models.FinancialGoal, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid goal: %w", err)
	}
	goal := models.FinancialGoal{
		GoalType:      req.GoalType,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		CreatedDate:   req.CreatedDate,
		TargetDate:    req.TargetDate,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal saves changes to a goal
func (s *Store) UpdateGoal(goal *models.FinancialGoal) error {
	if goal.Name == "" {
		return fmt.Errorf("goal name cannot be empty")
	}
	if goal.TargetAmount <= 0 {
		return fmt.Errorf("target amount must be positive")
	}
	if goal.CurrentAmount < 0 {
		return fmt.Errorf("current amount cannot be negative")
	}
	return s.db.Save(goal).Error
}

// AddContribution moves a goal's current amount forward
func (s *Store) AddContribution(goalID uint, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("contribution amount must be positive")
	}
	goal, err := s.GetGoal(goalID)
	if err != nil {
		return err
	}
	goal.CurrentAmount += amount
	return s.db.Save(goal).Error
}

// DeleteGoal removes a goal
func (s *Store) DeleteGoal(id uint) error {
	return s.db.Delete(&models.FinancialGoal{}, id).Error
}

// CountGoals returns the number of goals, used for tier limit checks
func (s *Store) CountGoals() (int64, error) {
	var count int64
	err := s.db.Model(&models.FinancialGoal{}).Count(&count).Error
	return count, err
}

// CountSessionTypes returns the number of categories, used for tier
// limit checks
func (s *Store) CountSessionTypes() (int64, error) {
	var count int64
	err := s.db.Model(&models.SessionType{}).Count(&count).Error
	return count, err
}
