package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flowva/rewardshub/config"
	"github.com/flowva/rewardshub/models"
	"github.com/flowva/rewardshub/services"
	"github.com/flowva/rewardshub/utils"
)

// StatsController exposes aggregate program numbers for the public landing page.
type StatsController struct {
	db *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

const statsCacheKey = "cache:stats:overview"

// Overview returns member count, points in circulation, today's claim count
// and total redemptions. Cached briefly since the counts are approximate anyway.
func (s *StatsController) Overview(ctx *gin.Context) {
	if raw, ok := utils.CacheGetBytes(statsCacheKey); ok {
		var cached utils.JSONResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			ctx.JSON(http.StatusOK, cached)
			return
		}
	}

	var users int64
	if err := s.db.Model(&models.UserData{}).Count(&users).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to load stats")
		return
	}

	var points struct {
		Total int64
	}
	if err := s.db.Model(&models.UserData{}).
		Select("COALESCE(SUM(points), 0) AS total").Scan(&points).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to load stats")
		return
	}

	today := services.Today(claimLocation(config.Get()))
	var claimsToday int64
	if err := s.db.Model(&models.UserData{}).
		Where("last_claim_date = ?", string(today)).Count(&claimsToday).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to load stats")
		return
	}

	var redemptions int64
	if err := s.db.Model(&models.Redemption{}).Count(&redemptions).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to load stats")
		return
	}

	payload := utils.JSONResponse{
		Code:    0,
		Message: "success",
		Data: gin.H{
			"members":            users,
			"points_outstanding": points.Total,
			"claims_today":       claimsToday,
			"redemptions":        redemptions,
		},
	}

	utils.CacheSetJSON(statsCacheKey, payload, 60*time.Second)
	ctx.JSON(http.StatusOK, payload)
}
