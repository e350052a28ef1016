package models

import "time"

// DailyActivity counts authenticated API requests per day and path. Feeds the
// daily-active figure on the stats endpoint; old rows are purged by the
// maintenance job.
type DailyActivity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;uniqueIndex:idx_activity_date_path,priority:1" json:"date"`
	Path      string    `gorm:"size:255;uniqueIndex:idx_activity_date_path,priority:2" json:"path"`
	Count     int64     `gorm:"default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
