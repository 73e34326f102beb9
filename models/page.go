package models

import "time"

type Page struct {
	ID              uint          `json:"id" gorm:"primarykey"`
	Title           string        `json:"title" gorm:"not null"`
	Slug            string        `json:"slug" gorm:"uniqueIndex;not null"`
	Content         *string       `json:"content"`
	ContentBlocks   ContentBlocks `json:"content_blocks" gorm:"type:jsonb"`
	MetaDescription *string       `json:"meta_description"`
	Status          string        `json:"status" gorm:"default:'published'"`
	CreatedBy       *uint         `json:"created_by"`
	UpdatedBy       *uint         `json:"updated_by"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
