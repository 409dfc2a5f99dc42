package db_models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel carries the numeric identity every table pages over plus unix-second
// timestamps. There is no soft delete: removals must reach the FK cascades.
type BaseModel struct {
	ID        uint  `gorm:"primaryKey"`
	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	return nil
}
