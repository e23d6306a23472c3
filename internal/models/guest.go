package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest is an invitee of an intro. The earliest-created guest of an
// intro is the demo guest and cannot be deleted through the API.
type Guest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IntroID          uuid.UUID `gorm:"type:uuid;not null;index" json:"intro_id"`
	Name             string    `gorm:"size:255;not null;index" json:"name"`
	UserRelationship string    `gorm:"size:100;not null" json:"user_relationship"`
	Confirm          bool      `gorm:"not null;default:false" json:"confirm"`

	// Relationships
	Intro Intro `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
