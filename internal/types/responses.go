package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Subdomain *string   `json:"subdomain"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	MaxInvite int       `json:"max_invite"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type IntroResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uint      `json:"user_id"`
	GroomName     string    `json:"groom_name"`
	GroomFullName string    `json:"groom_full_name"`
	BrideName     string    `json:"bride_name"`
	BrideFullName string    `json:"bride_full_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DateOfOrganizationResponse struct {
	ID           uuid.UUID      `json:"id"`
	IntroID      uuid.UUID      `json:"intro_id"`
	LunarDay     string         `json:"lunar_day"`
	CalendarDay  datatypes.Date `json:"calendar_day"`
	EventTime    datatypes.Time `json:"event_time"`
	VenueAddress *string        `json:"venue_address"`
	MapIframe    *string        `json:"map_iframe"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type HeaderSectionResponse struct {
	ID             uuid.UUID  `json:"id"`
	IntroID        uuid.UUID  `json:"intro_id"`
	SessionImageID *uuid.UUID `json:"session_image_id"`
	PhotoURL       *string    `json:"photo_url"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type FamilySectionResponse struct {
	ID              uuid.UUID  `json:"id"`
	IntroID         uuid.UUID  `json:"intro_id"`
	GroomFatherName string     `json:"groom_father_name"`
	GroomMotherName string     `json:"groom_mother_name"`
	GroomAddress    string     `json:"groom_address"`
	BrideFatherName string     `json:"bride_father_name"`
	BrideMotherName string     `json:"bride_mother_name"`
	BrideAddress    string     `json:"bride_address"`
	SessionImageID  *uuid.UUID `json:"session_image_id"`
	PhotoURL        *string    `json:"photo_url"`
	GroomImageID    *uuid.UUID `json:"groom_image_id"`
	GroomImageURL   *string    `json:"groom_image_url"`
	BrideImageID    *uuid.UUID `json:"bride_image_id"`
	BrideImageURL   *string    `json:"bride_image_url"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type InviteSectionResponse struct {
	ID                    uuid.UUID  `json:"id"`
	IntroID               uuid.UUID  `json:"intro_id"`
	LeftImageID           *uuid.UUID `json:"left_image_id"`
	LeftImageURL          *string    `json:"left_image_url"`
	CenterImageID         *uuid.UUID `json:"center_image_id"`
	CenterImageURL        *string    `json:"center_image_url"`
	RightImageID          *uuid.UUID `json:"right_image_id"`
	RightImageURL         *string    `json:"right_image_url"`
	GreetingText          *string    `json:"greeting_text"`
	AttendanceRequestText *string    `json:"attendance_request_text"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type FooterSectionResponse struct {
	ID             uuid.UUID  `json:"id"`
	IntroID        uuid.UUID  `json:"intro_id"`
	ThankYouText   *string    `json:"thank_you_text"`
	ClosingMessage *string    `json:"closing_message"`
	SessionImageID *uuid.UUID `json:"session_image_id"`
	PhotoURL       *string    `json:"photo_url"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type SessionImageResponse struct {
	ID        uuid.UUID `json:"id"`
	IntroID   uuid.UUID `json:"intro_id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AlbumImageResponse struct {
	ID       uuid.UUID `json:"id"`
	ImageURL *string   `json:"image_url"`
	Order    int       `json:"order"`
}

type AlbumSessionResponse struct {
	ID        uuid.UUID            `json:"id"`
	IntroID   uuid.UUID            `json:"intro_id"`
	Title     string               `json:"title"`
	Order     int                  `json:"order"`
	Images    []AlbumImageResponse `json:"images"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type GuestResponse struct {
	ID               uuid.UUID `json:"id"`
	IntroID          uuid.UUID `json:"intro_id"`
	Name             string    `json:"name"`
	UserRelationship string    `json:"user_relationship"`
	Confirm          bool      `json:"confirm"`
	GuestURL         string    `json:"guest_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type GuestStatsResponse struct {
	TotalGuests int64 `json:"total_guests"`
	Confirmed   int64 `json:"confirmed"`
	Pending     int64 `json:"pending"`
	MaxGuests   int   `json:"max_guests"`
}

type PaginatedGuestsResponse struct {
	Items []GuestResponse `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Pages int             `json:"pages"`
}

// LandingPageResponse is the complete public read-model for one
// tenant. Missing singleton sections come through as null, never as
// an error; the guest field is only set on guest-scoped lookups.
type LandingPageResponse struct {
	Guest              *GuestResponse              `json:"guest"`
	Intro              IntroResponse               `json:"intro"`
	DateOfOrganization *DateOfOrganizationResponse `json:"date_of_organization"`
	HeaderSection      *HeaderSectionResponse      `json:"header_section"`
	FamilySection      *FamilySectionResponse      `json:"family_section"`
	InviteSection      *InviteSectionResponse      `json:"invite_section"`
	AlbumSessions      []AlbumSessionResponse      `json:"album_sessions"`
	FooterSection      *FooterSectionResponse      `json:"footer_section"`
}
