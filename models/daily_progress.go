package models

import "time"

// DailyProgress is the durable copy of a user's daily progress record. One row
// per user per active day; rows are superseded by the next day's row, never
// deleted, so the table doubles as an audit trail. Games and History hold the
// engine's JSON encoding.
type DailyProgress struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_daily_user_date,priority:1" json:"user_id"`
	Date           string    `gorm:"size:10;not null;uniqueIndex:idx_daily_user_date,priority:2" json:"date"`
	Games          string    `gorm:"type:text" json:"games"`
	CurrentStep    int       `gorm:"default:0" json:"current_step"`
	History        string    `gorm:"type:text" json:"history"`
	CycleStartDate string    `gorm:"size:10" json:"cycle_start_date"`
	Streak         int       `gorm:"default:0" json:"streak"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
