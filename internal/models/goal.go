package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GoalType describes what a financial goal is for
type GoalType string

const (
	GoalDebt     GoalType = "Debt"
	GoalPurchase GoalType = "Purchase"
	GoalSavings  GoalType = "Savings"
)

// ParseGoalType converts a stored string into a GoalType
func ParseGoalType(s string) (GoalType, error) {
	switch s {
	case "Debt":
		return GoalDebt, nil
	case "Purchase":
		return GoalPurchase, nil
	case "Savings":
		return GoalSavings, nil
	default:
		return "", fmt.Errorf("invalid goal type: %q", s)
	}
}

// FinancialGoal is a named target amount with current progress
type FinancialGoal struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GoalType      GoalType `gorm:"not null" json:"goal_type"`
	Name          string   `gorm:"not null" json:"name"`
	TargetAmount  float64  `gorm:"not null" json:"target_amount"`
	CurrentAmount float64  `gorm:"default:0" json:"current_amount"`
	CreatedDate   string   `gorm:"not null" json:"created_date"` // YYYY-MM-DD
	TargetDate    *string  `json:"target_date"`
}

// ProgressPercent returns completion as a percentage, capped at 100
func (g *FinancialGoal) ProgressPercent() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.CurrentAmount / g.TargetAmount * 100
	if p > 100 {
		return 100
	}
	return p
}

// RemainingAmount returns what is still owed toward the target, never negative
func (g *FinancialGoal) RemainingAmount() float64 {
	r := g.TargetAmount - g.CurrentAmount
	if r < 0 {
		return 0
	}
	return r
}

// NewGoal holds the data needed to create a goal
type NewGoal struct {
	GoalType      GoalType `validate:"required"`
	Name          string   `validate:"required"`
	TargetAmount  float64  `validate:"gt=0"`
	CurrentAmount float64  `validate:"gte=0"`
	CreatedDate   string   `validate:"required"`
	TargetDate    *string
}
