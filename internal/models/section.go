package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The four landing-page sections. Each is a singleton child of an
// intro (unique intro_id) whose image references are nullable and
// cleared when the referenced session image is deleted.

type HeaderSection struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IntroID        uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"intro_id"`
	SessionImageID *uuid.UUID `gorm:"type:uuid" json:"session_image_id"`

	// Relationships
	Intro        Intro         `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	SessionImage *SessionImage `gorm:"foreignKey:SessionImageID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}

func (h *HeaderSection) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

type FamilySection struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IntroID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"intro_id"`

	GroomFatherName string `gorm:"size:255;not null" json:"groom_father_name"`
	GroomMotherName string `gorm:"size:255;not null" json:"groom_mother_name"`
	GroomAddress    string `gorm:"type:text;not null" json:"groom_address"`
	BrideFatherName string `gorm:"size:255;not null" json:"bride_father_name"`
	BrideMotherName string `gorm:"size:255;not null" json:"bride_mother_name"`
	BrideAddress    string `gorm:"type:text;not null" json:"bride_address"`

	SessionImageID *uuid.UUID `gorm:"type:uuid" json:"session_image_id"`
	GroomImageID   *uuid.UUID `gorm:"type:uuid" json:"groom_image_id"`
	BrideImageID   *uuid.UUID `gorm:"type:uuid" json:"bride_image_id"`

	// Relationships
	Intro        Intro         `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	SessionImage *SessionImage `gorm:"foreignKey:SessionImageID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	GroomImage   *SessionImage `gorm:"foreignKey:GroomImageID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	BrideImage   *SessionImage `gorm:"foreignKey:BrideImageID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}

func (f *FamilySection) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type InviteSection struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IntroID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"intro_id"`

	LeftImageID   *uuid.UUID `gorm:"type:uuid" json:"left_image_id"`
	CenterImageID *uuid.UUID `gorm:"type:uuid" json:"center_image_id"`
	RightImageID  *uuid.UUID `gorm:"type:uuid" json:"right_image_id"`

	GreetingText          *string `gorm:"type:text" json:"greeting_text"`
	AttendanceRequestText *string `gorm:"type:text" json:"attendance_request_text"`

	// Relationships
	Intro       Intro         `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	LeftImage   *SessionImage `gorm:"foreignKey:LeftImageID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	CenterImage *SessionImage `gorm:"foreignKey:CenterImageID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	RightImage  *SessionImage `gorm:"foreignKey:RightImageID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}

func (i *InviteSection) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type FooterSection struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IntroID        uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"intro_id"`
	ThankYouText   *string    `gorm:"type:text" json:"thank_you_text"`
	ClosingMessage *string    `gorm:"type:text" json:"closing_message"`
	SessionImageID *uuid.UUID `gorm:"type:uuid" json:"session_image_id"`

	// Relationships
	Intro        Intro         `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	SessionImage *SessionImage `gorm:"foreignKey:SessionImageID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}

func (f *FooterSection) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
