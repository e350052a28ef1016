package utils

import (
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"

	"github.com/silvergames/braingym/config"
	"github.com/silvergames/braingym/models"
)

// StartMaintenance schedules the nightly housekeeping job: activity counters
// older than the retention window are purged and table sizes are logged.
// Best-effort; failures only log.
func StartMaintenance(db *gorm.DB) {
	s := gocron.NewScheduler(time.Local)
	if _, err := s.Every(1).Day().At("03:30").Do(func() { runMaintenance(db) }); err != nil {
		Sugar.Warnf("maintenance job not scheduled: %v", err)
		return
	}
	s.StartAsync()
}

func runMaintenance(db *gorm.DB) {
	cfg := config.Get()
	cutoff := time.Now().AddDate(0, 0, -cfg.ActivityRetentionDays)

	res := db.Where("date < ?", cutoff).Delete(&models.DailyActivity{})
	if res.Error != nil {
		Sugar.Warnf("activity purge failed: %v", res.Error)
	} else if res.RowsAffected > 0 {
		Sugar.Infof("activity purge removed %d rows older than %s", res.RowsAffected, cutoff.Format("2006-01-02"))
	}

	var users, scores, progresses int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.GameScore{}).Count(&scores)
	db.Model(&models.DailyProgress{}).Count(&progresses)
	Sugar.Infof("maintenance snapshot: users=%d scores=%d daily_rows=%d", users, scores, progresses)
}
