package models

import (
	"time"

	"github.com/lib/pq"
)

type TopList struct {
	ID          uint          `json:"id" gorm:"primarykey"`
	Title       string        `json:"title" gorm:"not null"`
	Slug        string        `json:"slug" gorm:"uniqueIndex;not null"`
	Description *string       `json:"description"`
	PlatformIDs pq.Int64Array `json:"platform_ids" gorm:"type:integer[]"`
	Status      string        `json:"status" gorm:"default:'published'"`
	CreatedBy   *uint         `json:"created_by"`
	UpdatedBy   *uint         `json:"updated_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Platforms is resolved from PlatformIDs, ordered by rating descending.
	Platforms []Platform `json:"platforms" gorm:"-"`
}
