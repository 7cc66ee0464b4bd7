package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// TriggerType describes when a habit becomes due
type TriggerType string

const (
	TriggerAfterSession TriggerType = "after_session"
	TriggerAfterHours   TriggerType = "after_hours"
	TriggerDaily        TriggerType = "daily"
)

// ParseTriggerType converts a stored string into a TriggerType
func ParseTriggerType(s string) (TriggerType, error) {
	switch s {
	case "after_session":
		return TriggerAfterSession, nil
	case "after_hours":
		return TriggerAfterHours, nil
	case "daily":
		return TriggerDaily, nil
	default:
		return "", fmt.Errorf("invalid trigger type: %q", s)
	}
}

// Habit is a recurring behaviour tied to a work trigger
type Habit struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name              string      `gorm:"not null" json:"name"`
	Description       string      `json:"description"`
	TriggerType       TriggerType `gorm:"not null" json:"trigger_type"`
	TriggerValue      float64     `gorm:"default:0" json:"trigger_value"`
	RewardDescription string      `json:"reward_description"`
	IsActive          bool        `gorm:"default:true" json:"is_active"`

	// Computed per query from completion dates, never stored
	CurrentStreak    int `gorm:"-" json:"current_streak"`
	BestStreak       int `gorm:"-" json:"best_streak"`
	TotalCompletions int `gorm:"-" json:"total_completions"`
}

// HabitLog is one completion of a habit, append-only
type HabitLog struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	HabitID     uint      `gorm:"not null;index" json:"habit_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
	Notes       string    `json:"notes"`
}

// AppEvent is a timestamped application fact, append-only
type AppEvent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	EventType string  `gorm:"not null;index" json:"event_type"`
	EventData *string `json:"event_data"`
}
