package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLogEntry is append-only. Username is copied at write time so the
// history stays readable after the user is deleted.
type ActivityLogEntry struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	UserID      *uint          `json:"user_id"`
	Username    string         `json:"username"`
	Action      string         `json:"action" gorm:"not null"`
	EntityType  string         `json:"entity_type" gorm:"not null"`
	EntityID    *uint          `json:"entity_id"`
	EntityTitle string         `json:"entity_title"`
	Details     datatypes.JSON `json:"details" gorm:"type:jsonb"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (ActivityLogEntry) TableName() string {
	return "activity_log"
}

type Notification struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Type      string    `json:"type" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationInbox struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unread_count"`
}
