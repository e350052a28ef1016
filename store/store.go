package store

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/silvergames/braingym/daily"
)

// Combined joins the durable and cache halves into the engine's Store.
type Combined struct {
	*Remote
	*Local
}

var _ daily.Store = (*Combined)(nil)

// NewCombined wires both halves over the shared connections.
func NewCombined(db *gorm.DB, rdb *redis.Client) *Combined {
	return &Combined{Remote: NewRemote(db), Local: NewLocal(rdb)}
}
