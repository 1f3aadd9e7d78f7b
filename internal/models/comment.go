package models

import (
	"time"
)

// Comment represents a comment posted on a link
type Comment struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	Body      string    `json:"body" db:"body" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime;index:idx_comments_link_created,priority:2,sort:desc"`
	LinkID    int64     `json:"link_id" db:"link_id" gorm:"not null;index:idx_comments_link_created,priority:1"`

	// Link is only declared so AutoMigrate creates the foreign key; resolvers never load it.
	Link *Link `json:"-" db:"-" gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
}
