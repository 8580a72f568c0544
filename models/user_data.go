package models

import "time"

// UserData holds the reward counters for one user. One row per user, created
// at registration with zero-valued counters, mutated only through the claim,
// referral and redemption flows.
//
// LastClaimDate is stored as a plain YYYY-MM-DD string so that "same day" is
// decided by date-only equality, never by timestamp comparison.
type UserData struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName     string    `gorm:"size:64" json:"first_name"`
	Points        int       `gorm:"not null;default:0" json:"points"`
	PointsEarned  int       `gorm:"not null;default:0" json:"points_earned"`
	DailyStreak   int       `gorm:"not null;default:0" json:"daily_streak"`
	LastClaimDate *string   `gorm:"size:10" json:"last_claim_date"`
	Referrals     int       `gorm:"not null;default:0" json:"referrals"`
	ReferralCode  string    `gorm:"size:36;uniqueIndex" json:"referral_code"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName keeps the original user_data table name.
func (UserData) TableName() string {
	return "user_data"
}
