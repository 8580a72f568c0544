package utils

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/flowva/rewardshub/config"
	"github.com/flowva/rewardshub/models"
)

// StartRedemptionJanitor launches a background goroutine that periodically
// expires pending redemptions past their hold window and refunds the points.
// It is best-effort and logs failures.
func StartRedemptionJanitor(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		for {
			// Sleep first to avoid racing immediately at startup
			time.Sleep(interval)
			db := config.DB()
			if db == nil {
				continue
			}
			var items []models.Redemption
			if err := db.Where("status = ? AND expire_at <= ?", models.RedemptionStatusPending, time.Now()).
				Limit(100).Find(&items).Error; err != nil {
				log.Printf("redemption janitor query failed: %v", err)
				continue
			}
			for _, it := range items {
				if err := expireRedemption(db, it); err != nil {
					log.Printf("redemption janitor expire id=%d failed: %v", it.ID, err)
				}
			}
		}
	}()
}

// expireRedemption flips one pending redemption to expired and refunds the
// points. The status check inside the update keeps a concurrent fulfillment
// from being refunded.
func expireRedemption(db *gorm.DB, r models.Redemption) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Redemption{}).
			Where("id = ? AND status = ?", r.ID, models.RedemptionStatusPending).
			Updates(map[string]interface{}{
				"status":     models.RedemptionStatusExpired,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// already fulfilled or expired by another worker
			return nil
		}
		return tx.Model(&models.UserData{}).
			Where("user_id = ?", r.UserID).
			Updates(map[string]interface{}{
				"points":     gorm.Expr("points + ?", r.PointsSpent),
				"updated_at": time.Now(),
			}).Error
	})
}
