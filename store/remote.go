// Package store provides the two persistence collaborators behind
// daily.Store: a durable MySQL copy and a redis cache standing in for the
// client's localStorage copy.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/silvergames/braingym/daily"
	"github.com/silvergames/braingym/models"
)

// Remote persists progress records to the daily_progresses table, one row per
// user and day, upserted on the composite key.
type Remote struct {
	db *gorm.DB
}

// NewRemote creates the durable store.
func NewRemote(db *gorm.DB) *Remote {
	return &Remote{db: db}
}

// LoadRemote returns the user's newest progress row or nil when none exists.
func (r *Remote) LoadRemote(ctx context.Context, userID uint) (*daily.Record, error) {
	var row models.DailyProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load daily progress: %w", err)
	}
	return fromRow(row)
}

// SaveRemote upserts the record's row for its date.
func (r *Remote) SaveRemote(ctx context.Context, userID uint, rec daily.Record) error {
	row, err := toRow(userID, rec)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"games", "current_step", "history", "cycle_start_date", "streak", "updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save daily progress: %w", err)
	}
	return nil
}

func toRow(userID uint, rec daily.Record) (models.DailyProgress, error) {
	games, err := json.Marshal(rec.Games)
	if err != nil {
		return models.DailyProgress{}, fmt.Errorf("encode games: %w", err)
	}
	history, err := json.Marshal(rec.History)
	if err != nil {
		return models.DailyProgress{}, fmt.Errorf("encode history: %w", err)
	}
	return models.DailyProgress{
		UserID:         userID,
		Date:           string(rec.Date),
		Games:          string(games),
		CurrentStep:    rec.CurrentStep,
		History:        string(history),
		CycleStartDate: string(rec.CycleStartDate),
		Streak:         rec.Streak,
	}, nil
}

func fromRow(row models.DailyProgress) (*daily.Record, error) {
	rec := daily.Record{
		UserID:         row.UserID,
		Date:           daily.Day(row.Date),
		CurrentStep:    row.CurrentStep,
		CycleStartDate: daily.Day(row.CycleStartDate),
		Streak:         row.Streak,
	}
	if row.Games != "" {
		if err := json.Unmarshal([]byte(row.Games), &rec.Games); err != nil {
			return nil, fmt.Errorf("decode games: %w", err)
		}
	}
	if row.History != "" {
		if err := json.Unmarshal([]byte(row.History), &rec.History); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
	}
	return &rec, nil
}
