package models

import (
	"time"
)

type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleWriter     Role = "writer"
	RoleViewer     Role = "viewer"
)

var roleRanks = map[Role]int{
	RoleSuperadmin: 5,
	RoleAdmin:      4,
	RoleEditor:     3,
	RoleWriter:     2,
	RoleViewer:     1,
}

// Rank returns the position of the role in the hierarchy. Unknown roles rank 0.
func (r Role) Rank() int {
	return roleRanks[r]
}

func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

type RoleInfo struct {
	Value       Role   `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var RoleCatalog = []RoleInfo{
	{Value: RoleSuperadmin, Label: "Super Admin", Description: "Full access to everything"},
	{Value: RoleAdmin, Label: "Admin", Description: "Manage users and all content"},
	{Value: RoleEditor, Label: "Editor", Description: "Edit and publish content"},
	{Value: RoleWriter, Label: "Writer", Description: "Create and edit own content"},
	{Value: RoleViewer, Label: "Viewer", Description: "View dashboard only"},
}

type User struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	Username  string     `json:"username" gorm:"uniqueIndex;not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Password  string     `json:"-" gorm:"not null"`
	Name      *string    `json:"name"`
	Role      Role       `json:"role" gorm:"type:user_role;default:'viewer'"`
	Avatar    *string    `json:"avatar"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DisplayName is what gets denormalised into author_name on content rows.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Username
}
