package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type LoginRequest struct {
	// Username accepts either the username or the email address.
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Avatar *string `json:"avatar"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type CreateUserRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
	Role     Role    `json:"role"`
	IsActive *bool   `json:"is_active"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Name     *string `json:"name"`
	Role     *Role   `json:"role"`
	IsActive *bool   `json:"is_active"`
	Avatar   *string `json:"avatar"`
	Password *string `json:"password"`
}

// ChangedKeys lists the request keys that were supplied, for the audit trail.
func (r UpdateUserRequest) ChangedKeys() []string {
	var keys []string
	if r.Username != nil {
		keys = append(keys, "username")
	}
	if r.Email != nil {
		keys = append(keys, "email")
	}
	if r.Name != nil {
		keys = append(keys, "name")
	}
	if r.Role != nil {
		keys = append(keys, "role")
	}
	if r.IsActive != nil {
		keys = append(keys, "is_active")
	}
	if r.Avatar != nil {
		keys = append(keys, "avatar")
	}
	if r.Password != nil {
		keys = append(keys, "password")
	}
	return keys
}

type UserListParams struct {
	Role   string `form:"role"`
	Status string `form:"status"`
}

type PlatformRequest struct {
	Name           *string         `json:"name"`
	Slug           *string         `json:"slug"`
	Rating         *float64        `json:"rating" validate:"omitempty,min=0,max=5"`
	PayoutSpeed    *string         `json:"payout_speed"`
	Bonus          *string         `json:"bonus"`
	Type           *pq.StringArray `json:"type"`
	Strengths      *pq.StringArray `json:"strengths"`
	Considerations *pq.StringArray `json:"considerations"`
	Logo           *string         `json:"logo"`
	Description    *string         `json:"description"`
	Markets        *pq.StringArray `json:"markets"`
	Payments       *pq.StringArray `json:"payments"`
	Security       *string         `json:"security"`
	Support        *string         `json:"support"`
	Features       *datatypes.JSON `json:"features"`
	AffiliateURL   *string         `json:"affiliate_url"`
	Status         *string         `json:"status"`
}

// Fields returns the supplied columns only; omitted fields stay unchanged.
func (r PlatformRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	setString(f, "name", r.Name)
	setString(f, "slug", r.Slug)
	if r.Rating != nil {
		f["rating"] = *r.Rating
	}
	setString(f, "payout_speed", r.PayoutSpeed)
	setString(f, "bonus", r.Bonus)
	setArray(f, "type", r.Type)
	setArray(f, "strengths", r.Strengths)
	setArray(f, "considerations", r.Considerations)
	setString(f, "logo", r.Logo)
	setString(f, "description", r.Description)
	setArray(f, "markets", r.Markets)
	setArray(f, "payments", r.Payments)
	setString(f, "security", r.Security)
	setString(f, "support", r.Support)
	if r.Features != nil {
		f["features"] = *r.Features
	}
	setString(f, "affiliate_url", r.AffiliateURL)
	setString(f, "status", r.Status)
	return f
}

type PlatformListParams struct {
	Status string `form:"status"`
	Type   string `form:"type"`
}

type GuideRequest struct {
	Title         *string        `json:"title"`
	Slug          *string        `json:"slug"`
	Category      *string        `json:"category"`
	Excerpt       *string        `json:"excerpt"`
	Content       *string        `json:"content"`
	ContentBlocks *ContentBlocks `json:"content_blocks"`
	ReadTime      *string        `json:"read_time"`
	Status        *string        `json:"status"`
}

func (r GuideRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	setString(f, "title", r.Title)
	setString(f, "slug", r.Slug)
	setString(f, "category", r.Category)
	setString(f, "excerpt", r.Excerpt)
	setString(f, "content", r.Content)
	setBlocks(f, r.ContentBlocks)
	setString(f, "read_time", r.ReadTime)
	setString(f, "status", r.Status)
	return f
}

type GuideListParams struct {
	Status   string `form:"status"`
	Category string `form:"category"`
}

type NewsRequest struct {
	Title         *string        `json:"title"`
	Slug          *string        `json:"slug"`
	Type          *string        `json:"type"`
	PlatformID    *uint          `json:"platform_id"`
	Content       *string        `json:"content"`
	ContentBlocks *ContentBlocks `json:"content_blocks"`
	Status        *string        `json:"status"`
}

func (r NewsRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	setString(f, "title", r.Title)
	setString(f, "slug", r.Slug)
	setString(f, "type", r.Type)
	if r.PlatformID != nil {
		f["platform_id"] = *r.PlatformID
	}
	setString(f, "content", r.Content)
	setBlocks(f, r.ContentBlocks)
	setString(f, "status", r.Status)
	return f
}

type NewsListParams struct {
	Status string `form:"status"`
	Type   string `form:"type"`
}

type PageRequest struct {
	Title           *string        `json:"title"`
	Slug            *string        `json:"slug"`
	Content         *string        `json:"content"`
	ContentBlocks   *ContentBlocks `json:"content_blocks"`
	MetaDescription *string        `json:"meta_description"`
	Status          *string        `json:"status"`
}

func (r PageRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	setString(f, "title", r.Title)
	setString(f, "slug", r.Slug)
	setString(f, "content", r.Content)
	setBlocks(f, r.ContentBlocks)
	setString(f, "meta_description", r.MetaDescription)
	setString(f, "status", r.Status)
	return f
}

type PageListParams struct {
	Status string `form:"status"`
}

type TopListRequest struct {
	Title       *string        `json:"title"`
	Slug        *string        `json:"slug"`
	Description *string        `json:"description"`
	PlatformIDs *pq.Int64Array `json:"platform_ids"`
	Status      *string        `json:"status"`
}

func (r TopListRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	setString(f, "title", r.Title)
	setString(f, "slug", r.Slug)
	setString(f, "description", r.Description)
	if r.PlatformIDs != nil {
		f["platform_ids"] = *r.PlatformIDs
	}
	setString(f, "status", r.Status)
	return f
}

type TopListListParams struct {
	Status string `form:"status"`
}

type CreateSettingRequest struct {
	Key         string  `json:"key" validate:"required,max=100"`
	Value       *string `json:"value"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}

type UpdateSettingRequest struct {
	Value *string `json:"value"`
}

type NotificationListParams struct {
	UnreadOnly bool `form:"unread_only"`
	Limit      int  `form:"limit,default=20"`
}

type ActivityListParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

func setString(f map[string]interface{}, column string, v *string) {
	if v != nil {
		f[column] = *v
	}
}

func setArray(f map[string]interface{}, column string, v *pq.StringArray) {
	if v != nil {
		f[column] = *v
	}
}

func setBlocks(f map[string]interface{}, v *ContentBlocks) {
	if v != nil {
		f["content_blocks"] = *v
	}
}
