package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/silvergames/braingym/models"
)

// ActivityRecorder counts successful authenticated API requests per day and
// path, feeding the daily-active figure on the stats endpoint.
func ActivityRecorder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 400 {
			return
		}

		// Only count requests from identified users; health checks and the
		// public endpoints would skew the active-player figure.
		if _, ok := c.Get(ContextUserIDKey); !ok {
			return
		}

		path := c.FullPath()
		if path == "" || strings.HasSuffix(path, "/stats") {
			return
		}

		// Local midnight to align with the DATE column
		now := time.Now().In(time.Local)
		localMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		// Atomic upsert to avoid duplicate key errors under concurrency
		_ = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "path"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1"), "updated_at": time.Now()}),
		}).Create(&models.DailyActivity{Date: localMidnight, Path: path, Count: 1}).Error
	}
}
