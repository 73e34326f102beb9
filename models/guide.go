package models

import "time"

type Guide struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	Title         string        `json:"title" gorm:"not null"`
	Slug          string        `json:"slug" gorm:"uniqueIndex;not null"`
	Category      *string       `json:"category"`
	Excerpt       *string       `json:"excerpt"`
	Content       *string       `json:"content"`
	ContentBlocks ContentBlocks `json:"content_blocks" gorm:"type:jsonb"`
	ReadTime      *string       `json:"read_time"`
	Status        string        `json:"status" gorm:"default:'draft'"`
	AuthorID      *uint         `json:"author_id"`
	AuthorName    *string       `json:"author_name"`
	CreatedBy     *uint         `json:"created_by"`
	UpdatedBy     *uint         `json:"updated_by"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
