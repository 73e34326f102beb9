package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Platform struct {
	ID             uint           `json:"id" gorm:"primarykey"`
	Name           string         `json:"name" gorm:"not null"`
	Slug           string         `json:"slug" gorm:"uniqueIndex;not null"`
	Rating         float64        `json:"rating" gorm:"type:decimal(2,1);default:0"`
	PayoutSpeed    *string        `json:"payout_speed"`
	Bonus          *string        `json:"bonus"`
	Type           pq.StringArray `json:"type" gorm:"type:text[]"`
	Strengths      pq.StringArray `json:"strengths" gorm:"type:text[]"`
	Considerations pq.StringArray `json:"considerations" gorm:"type:text[]"`
	Logo           *string        `json:"logo"`
	Description    *string        `json:"description"`
	Markets        pq.StringArray `json:"markets" gorm:"type:text[]"`
	Payments       pq.StringArray `json:"payments" gorm:"type:text[]"`
	Security       *string        `json:"security"`
	Support        *string        `json:"support"`
	Features       datatypes.JSON `json:"features" gorm:"type:jsonb"`
	AffiliateURL   *string        `json:"affiliate_url"`
	Status         string         `json:"status" gorm:"default:'draft'"`
	CreatedBy      *uint          `json:"created_by"`
	UpdatedBy      *uint          `json:"updated_by"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
