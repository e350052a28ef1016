package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/silvergames/braingym/models"
	"github.com/silvergames/braingym/utils"
)

// StatsController provides aggregate figures such as counts and daily active players.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns aggregate statistics for the service.
func (s *StatsController) GetStats(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes("cache:stats"); ok {
		ctx.Data(200, "application/json", b)
		return
	}

	var userCount int64
	var playCount int64
	var completionsToday int64
	var dailyActive int64

	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		// Fall back to 0 instead of failing the whole endpoint
		userCount = 0
	}

	if err := s.db.Model(&models.GameScore{}).
		Where("source = ?", models.ScoreSourcePlay).
		Count(&playCount).Error; err != nil {
		playCount = 0
	}

	// String date equality avoids timezone/type mismatches with the column
	today := time.Now().In(time.Local).Format("2006-01-02")
	if err := s.db.Model(&models.DailyProgress{}).
		Where("date = ? AND current_step = ?", today, 4).
		Count(&completionsToday).Error; err != nil {
		completionsToday = 0
	}

	if err := s.db.Model(&models.DailyActivity{}).
		Where("date = ?", today).
		Select("COALESCE(SUM(count),0)").
		Scan(&dailyActive).Error; err != nil {
		dailyActive = 0
	}

	payload := gin.H{
		"user_count":         userCount,
		"play_count":         playCount,
		"completions_today":  completionsToday,
		"daily_active_count": dailyActive,
	}
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON("cache:stats", wrapper, time.Minute)
	utils.Success(ctx, payload)
}
