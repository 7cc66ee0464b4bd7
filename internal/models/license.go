package models

import "time"

// Tier is the feature-gating level
type Tier string

const (
	TierFree     Tier = "Free"
	TierPro      Tier = "Pro"
	TierLifetime Tier = "Lifetime"
)

// ParseTier converts a stored string into a Tier. Unknown values fall
// back to Free so a corrupted license row can never grant features.
func ParseTier(s string) Tier {
	switch s {
	case "Pro":
		return TierPro
	case "Lifetime":
		return TierLifetime
	default:
		return TierFree
	}
}

// License is the single locally stored license row
type License struct {
	ID          uint    `gorm:"primarykey" json:"-"`
	Tier        Tier    `gorm:"default:Free" json:"tier"`
	LicenseKey  *string `json:"license_key"`
	ActivatedAt *string `json:"activated_at"`
	ExpiresAt   *string `json:"expires_at"`
}

// DefaultLicense is the unactivated Free state
func DefaultLicense() License {
	return License{Tier: TierFree}
}

// FeatureLimits describe what a tier may do. Nil means unlimited.
type FeatureLimits struct {
	MaxSessionTypes *int
	MaxGoals        *int
	AnalyticsDays   *int
	HasInvoices     bool
	HasSimulator    bool
	HasAdvisor      bool
}

// LimitsForTier returns the feature limits for a tier
func LimitsForTier(t Tier) FeatureLimits {
	if t == TierPro || t == TierLifetime {
		return FeatureLimits{
			HasInvoices:  true,
			HasSimulator: true,
			HasAdvisor:   true,
		}
	}
	two, three, seven := 2, 3, 7
	return FeatureLimits{
		MaxSessionTypes: &two,
		MaxGoals:        &three,
		AnalyticsDays:   &seven,
		HasAdvisor:      true, // Free keeps a small daily advisor quota
	}
}

// Setting is a string key/value row (device id, cached license key)
type Setting struct {
	Key       string    `gorm:"primarykey" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Project caches recently used project names per category for autocomplete
type Project struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	ProjectName   string `gorm:"not null;index" json:"project_name"`
	SessionTypeID uint   `gorm:"not null;index" json:"session_type_id"`
	LastUsed      string `json:"last_used"` // YYYY-MM-DD
	UseCount      int    `gorm:"default:1" json:"use_count"`
}
