package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flowva/rewardshub/config"
	"github.com/flowva/rewardshub/models"
	"github.com/flowva/rewardshub/utils"
)

// RewardsController serves the reward catalog and redemptions.
type RewardsController struct {
	db *gorm.DB
}

// NewRewardsController creates a new controller instance.
func NewRewardsController(db *gorm.DB) *RewardsController {
	return &RewardsController{db: db}
}

// ListRewards returns the catalog ordered by points_required, optionally
// filtered by status. The database catalog is authoritative.
func (r *RewardsController) ListRewards(ctx *gin.Context) {
	status := strings.TrimSpace(ctx.Query("status"))

	cacheKey := "cache:rewards:all"
	if status != "" {
		cacheKey = "cache:rewards:status:" + status
	}
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	q := r.db.Order("points_required ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rewards []models.Reward
	if err := q.Find(&rewards).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load rewards")
		return
	}

	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: gin.H{"items": rewards}}
	utils.CacheSetJSON(cacheKey, wrapper, 10*time.Minute)
	utils.Success(ctx, gin.H{"items": rewards})
}

// Redeem exchanges points for a catalog reward. The deduction is a single
// conditional update guarded on the current balance, so two concurrent
// redemptions cannot overspend.
func (r *RewardsController) Redeem(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var reward models.Reward
	if err := r.db.First(&reward, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40440, "reward not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to load reward")
		return
	}

	if reward.Status == models.RewardStatusComingSoon {
		utils.Error(ctx, http.StatusBadRequest, 40041, "reward is not available yet")
		return
	}

	cfg := config.Get()
	var redemption models.Redemption
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.UserData{}).
			Where("user_id = ? AND points >= ?", userID, reward.PointsRequired).
			Updates(map[string]interface{}{
				"points":     gorm.Expr("points - ?", reward.PointsRequired),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errInsufficientPoints
		}

		redemption = models.Redemption{
			UserID:      userID,
			RewardID:    reward.ID,
			PointsSpent: reward.PointsRequired,
			Status:      models.RedemptionStatusPending,
			ExpireAt:    time.Now().Add(time.Duration(cfg.RedemptionHoldHours) * time.Hour),
		}
		return tx.Create(&redemption).Error
	})
	if err != nil {
		if errors.Is(err, errInsufficientPoints) {
			utils.Error(ctx, http.StatusBadRequest, 40042, "insufficient points")
			return
		}
		utils.Sugar.Errorf("redeem failed user=%d reward=%d: %v", userID, reward.ID, err)
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to redeem reward")
		return
	}

	// Balance from the durable row, not the pre-computed one.
	var data models.UserData
	if err := r.db.Where("user_id = ?", userID).First(&data).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to load reward data")
		return
	}

	utils.Success(ctx, gin.H{
		"redemption_id": redemption.ID,
		"reward":        reward,
		"points_spent":  redemption.PointsSpent,
		"points":        data.Points,
		"status":        redemption.Status,
	})
}

// ListRedemptions returns the caller's redemption history, newest first.
func (r *RewardsController) ListRedemptions(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var items []models.Redemption
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(50).Find(&items).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50044, "failed to load redemptions")
		return
	}
	utils.Success(ctx, gin.H{"items": items})
}

var errInsufficientPoints = errors.New("insufficient points")
