package main

import (
	"time"

	"github.com/flowva/rewardshub/config"
	"github.com/flowva/rewardshub/models"
	"github.com/flowva/rewardshub/routes"
	"github.com/flowva/rewardshub/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.UserData{},
		&models.Reward{},
		&models.Redemption{},
		&models.Referral{},
	)

	if n, err := models.SeedRewards(db); err != nil {
		utils.Sugar.Warnf("rewards catalog seed failed: %v", err)
	} else if n > 0 {
		utils.Sugar.Infof("seeded rewards catalog with %d entries", n)
	}

	r := routes.SetupRouter(db)

	// Expire stale pending redemptions in the background
	utils.StartRedemptionJanitor(5 * time.Minute)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
