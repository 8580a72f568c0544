package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flowva/rewardshub/config"
	"github.com/flowva/rewardshub/models"
	"github.com/flowva/rewardshub/utils"
)

// ReferralController exposes the caller's referral code and history.
type ReferralController struct {
	db *gorm.DB
}

// NewReferralController creates a new controller instance.
func NewReferralController(db *gorm.DB) *ReferralController {
	return &ReferralController{db: db}
}

// MyReferrals returns the caller's referral code and completed referrals.
func (r *ReferralController) MyReferrals(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var data models.UserData
	if err := r.db.Where("user_id = ?", userID).First(&data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40420, "reward data not provisioned")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to load reward data")
		return
	}

	var history []models.Referral
	if err := r.db.Where("referrer_id = ?", userID).Order("created_at DESC").Limit(50).Find(&history).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to load referrals")
		return
	}

	utils.Success(ctx, gin.H{
		"referral_code":    data.ReferralCode,
		"referrals":        data.Referrals,
		"points_per_refer": config.Get().ReferralRewardPoints,
		"history":          history,
	})
}

// completeReferral credits the owner of code for referring referredID. Called
// inside the registration transaction; an unknown or self-referencing code is
// ignored rather than failing the signup.
func completeReferral(tx *gorm.DB, code string, referredID uint) error {
	var referrer models.UserData
	err := tx.Where("referral_code = ?", code).First(&referrer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if referrer.UserID == referredID {
		return nil
	}

	award := config.Get().ReferralRewardPoints
	if err := tx.Create(&models.Referral{
		ReferrerID:    referrer.UserID,
		ReferredID:    referredID,
		Code:          code,
		PointsAwarded: award,
	}).Error; err != nil {
		return err
	}

	return tx.Model(&models.UserData{}).
		Where("user_id = ?", referrer.UserID).
		Updates(map[string]interface{}{
			"points":        gorm.Expr("points + ?", award),
			"points_earned": gorm.Expr("points_earned + ?", award),
			"referrals":     gorm.Expr("referrals + 1"),
			"updated_at":    time.Now(),
		}).Error
}
