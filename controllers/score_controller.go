package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/silvergames/braingym/daily"
	"github.com/silvergames/braingym/models"
	"github.com/silvergames/braingym/utils"
)

// ScoreController records finished plays and serves score history.
type ScoreController struct {
	db *gorm.DB
}

// NewScoreController creates a new controller instance.
func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{db: db}
}

func validGameID(id string) bool {
	for _, g := range daily.Catalog {
		if string(g) == id {
			return true
		}
	}
	return false
}

// Submit stores one finished mini-game play.
func (s *ScoreController) Submit(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		GameID string `json:"game_id" binding:"required"`
		Level  int    `json:"level"`
		Score  int    `json:"score"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}
	if !validGameID(req.GameID) {
		utils.Error(ctx, http.StatusBadRequest, 40031, "unknown game id")
		return
	}
	if req.Score < 0 {
		utils.Error(ctx, http.StatusBadRequest, 40032, "invalid score")
		return
	}
	if req.Level <= 0 {
		req.Level = 1
	}

	record := models.GameScore{
		UserID:   userID,
		GameID:   req.GameID,
		Level:    req.Level,
		Score:    req.Score,
		Source:   models.ScoreSourcePlay,
		PlayedAt: time.Now(),
	}
	if err := s.db.Create(&record).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to record score")
		return
	}

	utils.Success(ctx, record)
}

// History returns the user's score history, newest first, optionally filtered
// by game.
func (s *ScoreController) History(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	page, pageSize := 1, 20
	if v := strings.TrimSpace(ctx.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := strings.TrimSpace(ctx.Query("page_size")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}

	query := s.db.Model(&models.GameScore{}).Where("user_id = ?", userID)
	if gameID := strings.TrimSpace(ctx.Query("game_id")); gameID != "" {
		if !validGameID(gameID) {
			utils.Error(ctx, http.StatusBadRequest, 40031, "unknown game id")
			return
		}
		query = query.Where("game_id = ?", gameID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to count scores")
		return
	}

	var items []models.GameScore
	if err := query.Order("played_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&items).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to retrieve scores")
		return
	}

	utils.Success(ctx, gin.H{
		"items": items,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	})
}

// Best returns the user's best score per game.
func (s *ScoreController) Best(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type row struct {
		GameID string `json:"game_id"`
		Best   int    `json:"best"`
		Plays  int64  `json:"plays"`
	}
	var rows []row
	err := s.db.Model(&models.GameScore{}).
		Select("game_id, MAX(score) AS best, COUNT(*) AS plays").
		Where("user_id = ? AND source = ?", userID, models.ScoreSourcePlay).
		Group("game_id").
		Scan(&rows).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50033, "failed to aggregate scores")
		return
	}

	utils.Success(ctx, gin.H{"items": rows})
}
