package models

import "time"

// Score sources; bonus rows record daily-completion rewards next to normal plays.
const (
	ScoreSourcePlay  = "play"
	ScoreSourceBonus = "bonus"
)

// GameScore stores one finished mini-game play or awarded bonus.
type GameScore struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	GameID    string    `gorm:"size:32;index;not null" json:"game_id"`
	Level     int       `gorm:"default:1" json:"level"`
	Score     int       `json:"score"`
	Source    string    `gorm:"size:16;default:'play'" json:"source"`
	PlayedAt  time.Time `gorm:"index;not null" json:"played_at"`
	CreatedAt time.Time `json:"created_at"`
}
