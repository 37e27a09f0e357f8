package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SessionModel is the GORM model for the sessions table. Sessions are created
// by the identity service; this service only checks for their presence.
type SessionModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;not null;size:512"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (SessionModel) TableName() string {
	return "sessions"
}

// GormSessionRepository checks bearer tokens against the sessions table.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// HasSession reports whether the token has a live session for the given user.
func (r *GormSessionRepository) HasSession(ctx context.Context, userID int64, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SessionModel{}).
		Where("user_id = ? AND token = ?", userID, token).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return count > 0, nil
}
