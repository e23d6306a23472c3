package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Intro is the root of a wedding landing page. Every section, image,
// album and guest hangs off it and is removed with it.
type Intro struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID        uint   `gorm:"not null;index" json:"user_id"`
	GroomName     string `gorm:"size:255;not null" json:"groom_name"`
	GroomFullName string `gorm:"size:255;not null" json:"groom_full_name"`
	BrideName     string `gorm:"size:255;not null" json:"bride_name"`
	BrideFullName string `gorm:"size:255;not null" json:"bride_full_name"`

	// Relationships
	User               User                `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	DateOfOrganization *DateOfOrganization `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	HeaderSection      *HeaderSection      `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	FamilySection      *FamilySection      `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	InviteSection      *InviteSection      `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	FooterSection      *FooterSection      `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	SessionImages      []SessionImage      `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	AlbumSessions      []AlbumSession      `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Guests             []Guest             `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (i *Intro) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
