package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/flowva/rewardshub/middleware"
	"github.com/flowva/rewardshub/models"
)

// getUserID extracts the authenticated user ID placed by the auth middleware.
func getUserID(ctx *gin.Context) (uint, bool) {
	v, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// userResponse shapes the account payload returned to clients.
func userResponse(user models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"provider":   user.Provider,
		"avatar_url": user.AvatarURL,
		"created_at": user.CreatedAt,
	}
}

// userDataResponse shapes the reward-state payload returned to clients.
func userDataResponse(data models.UserData) gin.H {
	return gin.H{
		"user_id":         data.UserID,
		"first_name":      data.FirstName,
		"points":          data.Points,
		"points_earned":   data.PointsEarned,
		"daily_streak":    data.DailyStreak,
		"last_claim_date": data.LastClaimDate,
		"referrals":       data.Referrals,
		"referral_code":   data.ReferralCode,
	}
}
