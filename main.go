package main

import (
	"github.com/joho/godotenv"

	"github.com/silvergames/braingym/config"
	"github.com/silvergames/braingym/models"
	"github.com/silvergames/braingym/routes"
	"github.com/silvergames/braingym/utils"
)

func main() {
	// .env is optional; deployments configure via config.json or the environment
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.GameScore{}, &models.DailyProgress{}, &models.DailyActivity{})

	r := routes.SetupRouter(db)

	// Nightly retention purge for activity counters (best-effort)
	utils.StartMaintenance(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
