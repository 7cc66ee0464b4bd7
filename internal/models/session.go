package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// PayType describes how a session is compensated
type PayType string

const (
	PayNone   PayType = "None"
	PayHourly PayType = "Hourly"
	PayFixed  PayType = "Fixed"
)

// ParsePayType converts a stored string into a PayType
func ParsePayType(s string) (PayType, error) {
	switch s {
	case "None", "":
		return PayNone, nil
	case "Hourly":
		return PayHourly, nil
	case "Fixed":
		return PayFixed, nil
	default:
		return "", fmt.Errorf("invalid pay type: %q", s)
	}
}

// ParsePayFlag parses the case-insensitive spelling used on the command
// line ("hourly", "Fixed", ...) into the stored PayType
func ParsePayFlag(s string) (PayType, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return PayNone, nil
	case "hourly":
		return PayHourly, nil
	case "fixed":
		return PayFixed, nil
	default:
		return "", fmt.Errorf("invalid pay type: %q", s)
	}
}

// SessionType is a user-defined work category
type SessionType struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string   `gorm:"unique;not null" json:"name"`
	Color      string   `gorm:"default:#6366F1" json:"color"`
	HourlyRate *float64 `json:"hourly_rate"`
}

// Session represents one logged block of work on a given date
type Session struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SessionTypeID uint     `gorm:"not null;index" json:"session_type_id"`
	Date          string   `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	ProjectName   string   `gorm:"not null" json:"project_name"`
	Hours         float64  `gorm:"not null" json:"hours"`
	Description   string   `json:"description"`
	PayType       PayType  `gorm:"default:None" json:"pay_type"`
	HourlyRate    *float64 `json:"hourly_rate"`
	FixedAmount   *float64 `json:"fixed_amount"`

	// Relationships
	SessionType SessionType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"session_type"`
}

// Pay returns the earnings for this session based on its pay type
func (s *Session) Pay() float64 {
	switch s.PayType {
	case PayHourly:
		if s.HourlyRate != nil {
			return *s.HourlyRate * s.Hours
		}
	case PayFixed:
		if s.FixedAmount != nil {
			return *s.FixedAmount
		}
	}
	return 0
}

// CategoryName returns the session type name, or "Unknown" when the
// category can no longer be resolved
func (s *Session) CategoryName() string {
	if s.SessionType.Name == "" {
		return "Unknown"
	}
	return s.SessionType.Name
}

// NewSession holds the data needed to log a session
type NewSession struct {
	SessionTypeID uint    `validate:"required"`
	Date          string  `validate:"required"`
	ProjectName   string  `validate:"required"`
	Hours         float64 `validate:"gte=0.1,lte=24"`
	Description   string
	PayType       PayType
	HourlyRate    *float64
	FixedAmount   *float64
}
