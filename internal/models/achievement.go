package models

import "time"

// AchievementCategory groups achievements on the trophy screen
type AchievementCategory string

const (
	CategoryPresence   AchievementCategory = "Presence"
	CategoryAwareness  AchievementCategory = "Awareness"
	CategoryBalance    AchievementCategory = "Balance"
	CategoryCommitment AchievementCategory = "Commitment"
	CategoryFinancial  AchievementCategory = "Financial"
)

// AchievementDef is a static achievement definition
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Category    AchievementCategory
	Icon        string
}

// Achievement is a definition joined with its unlock state
type Achievement struct {
	AchievementDef
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at"`
}

// UnlockedAchievement records a single monotonic unlock
type UnlockedAchievement struct {
	ID         string    `gorm:"primarykey" json:"id"`
	UnlockedAt time.Time `gorm:"not null" json:"unlocked_at"`
}

// Achievements is the fixed v1 set. Never mutated at runtime.
var Achievements = []AchievementDef{
	// Presence
	{ID: "first_step", Name: "First Step", Description: "Logged your first session", Category: CategoryPresence, Icon: "🌱"},
	{ID: "back_again", Name: "Back Again", Description: "Used ChronoDesk on 3 different days", Category: CategoryPresence, Icon: "👋"},
	{ID: "getting_comfortable", Name: "Getting Comfortable", Description: "Logged 10 total sessions", Category: CategoryPresence, Icon: "🪴"},
	{ID: "part_of_routine", Name: "Part of the Routine", Description: "Used ChronoDesk across 7 different days", Category: CategoryPresence, Icon: "🌿"},

	// Awareness
	{ID: "curious_mind", Name: "Curious Mind", Description: "Opened Analytics for the first time", Category: CategoryAwareness, Icon: "🧠"},
	{ID: "pattern_noticed", Name: "Pattern Noticed", Description: "Viewed Analytics on 5 different days", Category: CategoryAwareness, Icon: "🔍"},
	{ID: "zoomed_out", Name: "Zoomed Out", Description: "Explored at least 3 different time ranges in Analytics", Category: CategoryAwareness, Icon: "🔭"},
	{ID: "connecting_dots", Name: "Connecting the Dots", Description: "Used Analytics and Advisor in the same day", Category: CategoryAwareness, Icon: "🧩"},

	// Balance
	{ID: "paced_yourself", Name: "Paced Yourself", Description: "No session longer than 6 hours in a full week", Category: CategoryBalance, Icon: "⚖️"},
	{ID: "sustainable_week", Name: "Sustainable Week", Description: "Averaged under 8 hours per day for a full week", Category: CategoryBalance, Icon: "🌊"},
	{ID: "human_weekend", Name: "Human Weekend", Description: "Logged less than 3 hours total on a weekend", Category: CategoryBalance, Icon: "☀️"},

	// Commitment
	{ID: "long_run", Name: "In It for the Long Run", Description: "Logged sessions in 3 different calendar weeks", Category: CategoryCommitment, Icon: "🏃"},
	{ID: "one_full_month", Name: "One Full Month", Description: "Tracked time across 4 different weeks", Category: CategoryCommitment, Icon: "📅"},
	{ID: "hundred_hours", Name: "Hundred Hours", Description: "Tracked 100 total hours", Category: CategoryCommitment, Icon: "💯"},

	// Financial
	{ID: "first_dollar", Name: "First Dollar", Description: "Tracked your first paid session", Category: CategoryFinancial, Icon: "💵"},
}
