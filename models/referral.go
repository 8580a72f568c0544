package models

import "time"

// Referral links a new account to the user whose code it registered with.
type Referral struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReferrerID    uint      `gorm:"index;not null" json:"referrer_id"`
	ReferredID    uint      `gorm:"uniqueIndex;not null" json:"referred_id"`
	Code          string    `gorm:"size:36;not null" json:"code"`
	PointsAwarded int       `gorm:"not null" json:"points_awarded"`
	CreatedAt     time.Time `json:"created_at"`
}
