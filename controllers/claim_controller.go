package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flowva/rewardshub/config"
	"github.com/flowva/rewardshub/models"
	"github.com/flowva/rewardshub/services"
	"github.com/flowva/rewardshub/utils"
)

// ClaimController handles daily point claim endpoints.
type ClaimController struct {
	db *gorm.DB
}

// errClaimConflict signals that the conditional write matched zero rows:
// another session advanced last_claim_date between our read and write.
var errClaimConflict = errors.New("claim state changed concurrently")

// NewClaimController creates a new controller instance.
func NewClaimController(db *gorm.DB) *ClaimController {
	return &ClaimController{db: db}
}

type claimResult struct {
	already bool
	awarded int
	data    models.UserData
}

// DailyClaim grants today's points if the user has not claimed yet.
//
// The flow is read -> evaluate -> conditional write keyed on the
// last_claim_date that was read. A write that matches zero rows means a
// concurrent claimer won; we then re-read and re-evaluate once, which
// normally resolves to "already claimed". The response is always built
// from the durable row, never from the locally computed delta.
func (c *ClaimController) DailyClaim(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	cfg := config.Get()
	today := services.Today(claimLocation(cfg))

	// One outstanding claim per user at a time; a second trigger is a no-op.
	if !utils.TryAcquireClaim(userID, 10*time.Second) {
		utils.Error(ctx, http.StatusConflict, 40930, "a claim is already in progress")
		return
	}
	defer utils.ReleaseClaim(userID)

	result, err := c.claimOnce(userID, today, cfg.DailyClaimPoints)
	if errors.Is(err, errClaimConflict) {
		// Lost the race: treat as a fresh attempt against the new state.
		result, err = c.claimOnce(userID, today, cfg.DailyClaimPoints)
	}
	if err != nil {
		switch {
		case errors.Is(err, errClaimConflict):
			utils.Error(ctx, http.StatusConflict, 40931, "claim conflict, please retry")
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.Error(ctx, http.StatusNotFound, 40420, "reward data not provisioned")
		default:
			utils.Sugar.Errorf("daily claim failed user=%d: %v", userID, err)
			utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to claim points")
		}
		return
	}

	if result.already {
		utils.Success(ctx, gin.H{
			"claimed":         false,
			"already_claimed": true,
			"daily_streak":    result.data.DailyStreak,
			"points":          result.data.Points,
			"last_claim_date": result.data.LastClaimDate,
		})
		return
	}

	utils.Success(ctx, gin.H{
		"claimed":         true,
		"already_claimed": false,
		"points_awarded":  result.awarded,
		"points":          result.data.Points,
		"points_earned":   result.data.PointsEarned,
		"daily_streak":    result.data.DailyStreak,
		"last_claim_date": result.data.LastClaimDate,
		"message":         "You've claimed your daily points! Come back tomorrow for more!",
	})
}

// claimOnce performs one read-evaluate-conditional-write round.
func (c *ClaimController) claimOnce(userID uint, today services.CalendarDate, award int) (*claimResult, error) {
	var data models.UserData
	if err := c.db.Where("user_id = ?", userID).First(&data).Error; err != nil {
		return nil, err
	}

	decision := services.EvaluateClaim(rewardStateOf(data), today, award)
	if decision.AlreadyClaimed {
		return &claimResult{already: true, data: data}, nil
	}

	d := decision.Delta
	q := c.db.Model(&models.UserData{}).Where("user_id = ?", userID)
	// Condition the write on the exact value we read so two racing sessions
	// cannot both apply the award.
	if data.LastClaimDate == nil {
		q = q.Where("last_claim_date IS NULL")
	} else {
		q = q.Where("last_claim_date = ?", *data.LastClaimDate)
	}
	res := q.Updates(map[string]interface{}{
		"points":          d.Points,
		"points_earned":   d.PointsEarned,
		"daily_streak":    d.DailyStreak,
		"last_claim_date": d.LastClaimDate.String(),
		"updated_at":      time.Now(),
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errClaimConflict
	}
	awarded := d.PointsEarned - data.PointsEarned

	// Refresh from the durable row so the caller never sees a value the
	// database did not actually store.
	if err := c.db.Where("user_id = ?", userID).First(&data).Error; err != nil {
		return nil, err
	}
	return &claimResult{awarded: awarded, data: data}, nil
}

// ClaimStatus returns whether today's claim is still available plus the
// current counters.
func (c *ClaimController) ClaimStatus(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var data models.UserData
	if err := c.db.Where("user_id = ?", userID).First(&data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40420, "reward data not provisioned")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to load reward data")
		return
	}

	cfg := config.Get()
	today := services.Today(claimLocation(cfg))
	state := rewardStateOf(data)

	utils.Success(ctx, gin.H{
		"can_claim":       state.LastClaimDate != today,
		"points":          data.Points,
		"points_earned":   data.PointsEarned,
		"daily_streak":    data.DailyStreak,
		"last_claim_date": data.LastClaimDate,
		"today":           today.String(),
	})
}

func rewardStateOf(data models.UserData) services.RewardState {
	state := services.RewardState{
		Points:       data.Points,
		PointsEarned: data.PointsEarned,
		DailyStreak:  data.DailyStreak,
	}
	if data.LastClaimDate != nil {
		state.LastClaimDate = services.CalendarDate(*data.LastClaimDate)
	}
	return state
}

func claimLocation(cfg config.AppConfig) *time.Location {
	if cfg.ClaimTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(cfg.ClaimTimezone)
	if err != nil {
		utils.Sugar.Warnf("invalid claim timezone %q, falling back to local", cfg.ClaimTimezone)
		return time.Local
	}
	return loc
}
