package domain

import "time"

// Role tiers. Higher values carry more privilege.
const (
	RoleAdmin      = 10
	RoleSuperAdmin = 90
)

// User models a dashboard account. Users are deactivated, never deleted.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         int       `json:"role"`
	SiteType     SiteType  `json:"siteType"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserInfo is the public snapshot of a user that is safe to embed in session
// tokens and API responses. It carries no credentials.
type UserInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     int      `json:"role"`
	SiteType SiteType `json:"siteType"`
	Active   bool     `json:"active"`
}

// Info returns the public snapshot of u.
func (u *User) Info() *UserInfo {
	return &UserInfo{
		ID:       u.ID,
		Name:     u.Name,
		Role:     u.Role,
		SiteType: u.SiteType,
		Active:   u.Active,
	}
}
