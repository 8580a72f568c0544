package models

import "time"

// Reward catalog statuses.
const (
	RewardStatusLocked     = "locked"
	RewardStatusUnlocked   = "unlocked"
	RewardStatusComingSoon = "coming-soon"
)

// Reward is one redeemable catalog entry. The database catalog is
// authoritative; the seed list only provisions an empty table.
type Reward struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:128;not null" json:"name"`
	Description    string    `gorm:"size:512" json:"description"`
	Icon           string    `gorm:"size:16" json:"icon"`
	PointsRequired int       `gorm:"not null;default:0" json:"points_required"`
	Status         string    `gorm:"size:16;not null;default:'locked'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
