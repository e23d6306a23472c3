package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionImage is an uploaded or linked image scoped to an intro.
// Sections reference it through nullable FKs with SET NULL on delete,
// so removing an image silently unlinks it everywhere.
type SessionImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IntroID uuid.UUID `gorm:"type:uuid;not null;index" json:"intro_id"`
	URL     string    `gorm:"size:500;not null" json:"url"`

	// Relationships
	Intro Intro `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (s *SessionImage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
