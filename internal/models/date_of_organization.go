package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateOfOrganization holds the wedding date and venue for an intro.
// The lunar day is kept as display text alongside the calendar date.
type DateOfOrganization struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IntroID      uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"intro_id"`
	LunarDay     string         `gorm:"size:100;not null" json:"lunar_day"`
	CalendarDay  datatypes.Date `gorm:"not null" json:"calendar_day"`
	EventTime    datatypes.Time `gorm:"not null" json:"event_time"`
	VenueAddress *string        `gorm:"type:text" json:"venue_address"`
	MapIframe    *string        `gorm:"type:text" json:"map_iframe"`

	// Relationships
	Intro Intro `gorm:"foreignKey:IntroID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (d *DateOfOrganization) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
