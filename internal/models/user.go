package models

import "time"

type UserRole string

const (
	RoleRoot UserRole = "root"
	RoleUser UserRole = "user"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username     string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Subdomain    *string  `gorm:"size:100;uniqueIndex" json:"subdomain"`
	Role         UserRole `gorm:"size:20;not null;default:user" json:"role"`
	IsActive     bool     `gorm:"not null;default:true" json:"is_active"`
	MaxInvite    int      `gorm:"not null;default:1" json:"max_invite"`

	// Relationships
	Intros []Intro `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (u *User) IsRoot() bool {
	return u.Role == RoleRoot
}
