package models

import "time"

type News struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	Title         string        `json:"title" gorm:"not null"`
	Slug          string        `json:"slug" gorm:"uniqueIndex;not null"`
	Type          *string       `json:"type"`
	PlatformID    *uint         `json:"platform_id"`
	Content       *string       `json:"content"`
	ContentBlocks ContentBlocks `json:"content_blocks" gorm:"type:jsonb"`
	Status        string        `json:"status" gorm:"default:'draft'"`
	AuthorID      *uint         `json:"author_id"`
	AuthorName    *string       `json:"author_name"`
	CreatedBy     *uint         `json:"created_by"`
	UpdatedBy     *uint         `json:"updated_by"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	PlatformName *string `json:"platform_name" gorm:"->;-:migration"`
	PlatformLogo *string `json:"platform_logo" gorm:"->;-:migration"`
}

func (News) TableName() string {
	return "news"
}
