package models

import "time"

// Redemption statuses. Pending redemptions that are never fulfilled are
// expired by the background janitor, which refunds the points.
const (
	RedemptionStatusPending   = "pending"
	RedemptionStatusFulfilled = "fulfilled"
	RedemptionStatusExpired   = "expired"
)

// Redemption records one reward redemption and the points spent on it.
type Redemption struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	RewardID    uint      `gorm:"index;not null" json:"reward_id"`
	PointsSpent int       `gorm:"not null" json:"points_spent"`
	Status      string    `gorm:"size:16;not null;default:'pending'" json:"status"`
	ExpireAt    time.Time `gorm:"index" json:"expire_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
