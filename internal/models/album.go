package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlbumSession is a titled photo album within an intro. Its own Order
// is caller-managed; only the images inside it are kept dense.
type AlbumSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IntroID uuid.UUID `gorm:"type:uuid;not null;index" json:"intro_id"`
	Title   string    `gorm:"size:255" json:"title"`
	Order   int       `gorm:"column:order;not null;default:0" json:"order"`

	// Relationships
	Intro       Intro        `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	AlbumImages []AlbumImage `gorm:"foreignKey:AlbumSessionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (a *AlbumSession) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// AlbumImage places a session image inside an album. Order values for
// one album session form a contiguous 1..N sequence after every
// mutating operation completes.
type AlbumImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AlbumSessionID uuid.UUID `gorm:"type:uuid;not null;index" json:"album_session_id"`
	SessionImageID uuid.UUID `gorm:"type:uuid;not null" json:"session_image_id"`
	Order          int       `gorm:"column:order;not null;default:0" json:"order"`

	// Relationships
	AlbumSession AlbumSession `gorm:"foreignKey:AlbumSessionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	SessionImage SessionImage `gorm:"foreignKey:SessionImageID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (a *AlbumImage) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
