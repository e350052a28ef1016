package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/silvergames/braingym/daily"
	"github.com/silvergames/braingym/models"
	"github.com/silvergames/braingym/utils"
)

// DailyController exposes the daily rotation: resolving today's record,
// syncing a client copy, advancing through the rotation and the cycle window.
type DailyController struct {
	db     *gorm.DB
	engine *daily.Engine
}

// NewDailyController creates a controller around the progress engine.
func NewDailyController(db *gorm.DB, engine *daily.Engine) *DailyController {
	return &DailyController{db: db, engine: engine}
}

func today() daily.Day {
	return daily.DayOf(time.Now().In(time.Local))
}

// GetDaily resolves and returns today's record with streak and cycle window.
func (d *DailyController) GetDaily(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	day := today()
	rec := d.engine.ResolveToday(ctx.Request.Context(), userID, day)

	utils.Success(ctx, gin.H{
		"record": rec,
		"streak": rec.Streak,
		"cycle":  daily.CycleWindow(rec.CycleStartDate, day, rec.History),
	})
}

type syncRequest struct {
	Date           string                 `json:"date" binding:"required"`
	Games          []daily.GameAssignment `json:"games"`
	CurrentStep    int                    `json:"current_step"`
	History        []string               `json:"history"`
	CycleStartDate string                 `json:"cycle_start_date"`
}

// SyncDaily accepts the client's cached copy of its progress record and
// reconciles it against the stored one. The stored remote copy still wins for
// today; the pushed copy only fills gaps (offline play, first sync on a new
// device).
func (d *DailyController) SyncDaily(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req syncRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	date, err := daily.ParseDay(req.Date)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid date key")
		return
	}
	if req.CurrentStep < daily.StepNotStarted || req.CurrentStep > daily.StepDone {
		utils.Error(ctx, http.StatusBadRequest, 40022, "invalid current step")
		return
	}

	client := daily.Record{
		UserID:      userID,
		Date:        date,
		Games:       req.Games,
		CurrentStep: req.CurrentStep,
	}
	for _, raw := range req.History {
		h, err := daily.ParseDay(raw)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40023, "invalid history entry")
			return
		}
		client.History.Add(h)
	}
	if req.CycleStartDate != "" {
		anchor, err := daily.ParseDay(req.CycleStartDate)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40024, "invalid cycle start date")
			return
		}
		client.CycleStartDate = anchor
	}

	rec := d.engine.SyncClient(ctx.Request.Context(), userID, today(), client)
	utils.Success(ctx, gin.H{"record": rec, "streak": rec.Streak})
}

// AdvanceDaily applies one step transition and, on completing the rotation,
// credits the bonus points to the user. Stale or duplicated requests fall
// through as no-ops with the unchanged record.
func (d *DailyController) AdvanceDaily(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		PlayedStep *int `json:"played_step" binding:"required"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40025, "invalid request payload")
		return
	}

	day := today()
	rec := d.engine.ResolveToday(ctx.Request.Context(), userID, day)
	rec, bonus := d.engine.AdvanceStep(ctx.Request.Context(), rec, *req.PlayedStep, day)

	if bonus.Awarded {
		if err := d.creditBonus(userID, rec, bonus, day); err != nil {
			// The completion itself is already persisted; points can be
			// reconciled later, so the request still succeeds.
			utils.Sugar.Warnf("bonus credit failed for user %d: %v", userID, err)
		}
	}

	utils.Success(ctx, gin.H{
		"record": rec,
		"streak": rec.Streak,
		"bonus":  bonus,
	})
}

// creditBonus adds the award to the user's balance and records it as a score
// row, mirroring a normal play entry.
func (d *DailyController) creditBonus(userID uint, rec daily.Record, bonus daily.Bonus, day daily.Day) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}

		now := time.Now()
		user.Points += bonus.Points
		user.LastCompletedAt = &now
		if rec.Streak > user.BestStreak {
			user.BestStreak = rec.Streak
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		gameID := "daily"
		if len(rec.Games) > 0 {
			gameID = string(rec.Games[len(rec.Games)-1].GameID)
		}
		return tx.Create(&models.GameScore{
			UserID:   userID,
			GameID:   gameID,
			Level:    1,
			Score:    bonus.Points,
			Source:   models.ScoreSourceBonus,
			PlayedAt: now,
		}).Error
	})
}

// GetCycle returns the 7-day window projection for the bonus chest display.
func (d *DailyController) GetCycle(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	day := today()
	rec := d.engine.ResolveToday(ctx.Request.Context(), userID, day)
	utils.Success(ctx, daily.CycleWindow(rec.CycleStartDate, day, rec.History))
}
