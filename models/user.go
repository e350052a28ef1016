package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a player account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Username        string         `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email           string         `gorm:"size:255" json:"email"`
	PasswordHash    string         `gorm:"size:255" json:"-"`
	Nickname        string         `gorm:"size:64" json:"nickname"`
	BirthYear       int            `json:"birth_year"`
	Points          int            `gorm:"default:0" json:"points"`
	BestStreak      int            `gorm:"default:0" json:"best_streak"`
	LastCompletedAt *time.Time     `json:"last_completed_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Scores          []GameScore    `json:"-"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
