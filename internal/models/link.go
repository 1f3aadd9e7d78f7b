package models

import (
	"time"
)

// Link represents a submitted link
type Link struct {
	ID          int64     `json:"id" db:"id" gorm:"primaryKey"`
	Description string    `json:"description" db:"description" gorm:"not null"`
	URL         string    `json:"url" db:"url" gorm:"column:url;not null"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}
