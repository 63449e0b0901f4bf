package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Plan is the pricing tier chosen at event creation. Both the marketing-page
// names (Basic/Premium/Corporate) and the create-flow names (free/starter/pro)
// are accepted; comparison is case-insensitive.
type Plan string

const (
	PlanBasic     Plan = "Basic"
	PlanPremium   Plan = "Premium"
	PlanCorporate Plan = "Corporate"
	PlanFree      Plan = "free"
	PlanStarter   Plan = "starter"
	PlanPro       Plan = "pro"
)

// MaxUploads returns the event-wide upload capacity for a plan.
// Basic maps to 50, Premium to 200, every other tier to 1000.
func (p Plan) MaxUploads() int {
	switch {
	case strings.EqualFold(string(p), string(PlanBasic)):
		return 50
	case strings.EqualFold(string(p), string(PlanPremium)):
		return 200
	default:
		return 1000
	}
}

func (p Plan) Valid() bool {
	for _, known := range []Plan{PlanBasic, PlanPremium, PlanCorporate, PlanFree, PlanStarter, PlanPro} {
		if strings.EqualFold(string(p), string(known)) {
			return true
		}
	}
	return false
}

// GalleryViewing controls when the shared gallery opens to guests.
type GalleryViewing string

const (
	GalleryDuring   GalleryViewing = "During"
	GalleryAfter    GalleryViewing = "After"
	Gallery12hAfter GalleryViewing = "12h after"
	Gallery24hAfter GalleryViewing = "24h after"
)

func (g GalleryViewing) Valid() bool {
	switch g {
	case GalleryDuring, GalleryAfter, Gallery12hAfter, Gallery24hAfter:
		return true
	}
	return false
}

// FilterPreset names a CSS filter applied by the guest camera client. The
// server only validates the name; the CSS itself lives client-side.
type FilterPreset string

const (
	FilterNone    FilterPreset = "None"
	FilterVintage FilterPreset = "Vintage"
	FilterBW      FilterPreset = "B&W"
	FilterVibrant FilterPreset = "Vibrant"
	FilterWarm    FilterPreset = "Warm"
	FilterCool    FilterPreset = "Cool"
)

func (f FilterPreset) Valid() bool {
	switch f {
	case FilterNone, FilterVintage, FilterBW, FilterVibrant, FilterWarm, FilterCool:
		return true
	}
	return false
}

// Branding is the organizer-configured look of the guest camera page. It is
// stored as a single serialized column rather than normalized fields.
type Branding struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	PrimaryColor string `json:"primaryColor"`
	Font         string `json:"font"`
	ShowVintage  bool   `json:"showVintage"`
}

// DefaultBranding returns the branding applied until the organizer customizes
// it from the dashboard.
func DefaultBranding(eventName string) Branding {
	return Branding{
		Title:        eventName,
		PrimaryColor: "#facc15",
		Font:         "sans",
	}
}

// Value implements the driver.Valuer interface so the whole object is stored
// as one JSON column.
func (b Branding) Value() (driver.Value, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize branding: %w", err)
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface.
func (b *Branding) Scan(value interface{}) error {
	if value == nil {
		*b = Branding{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to scan Branding, %v", value)
	}

	if len(data) == 0 {
		*b = Branding{}
		return nil
	}

	return json.Unmarshal(data, b)
}

type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// OrganizerToken grants full read/write, CameraToken guest-scoped access.
	// Both are generated once at creation and never change.
	OrganizerToken string `gorm:"uniqueIndex;not null" json:"organizerToken"`
	CameraToken    string `gorm:"uniqueIndex;not null" json:"cameraToken"`

	Name    string     `gorm:"not null" json:"name"`
	Email   string     `gorm:"not null" json:"email"`
	Date    time.Time  `gorm:"not null" json:"date"`
	EndDate *time.Time `json:"endDate"`

	Plan          Plan   `gorm:"type:varchar(20);not null" json:"plan"`
	PaymentStatus string `gorm:"type:varchar(20);default:'PAID'" json:"paymentStatus"`

	MaxUploads         int `gorm:"not null" json:"maxUploads"`
	GuestLimit         int `gorm:"default:10" json:"guestLimit"`
	MediaLimitPerGuest int `gorm:"default:25" json:"mediaLimitPerGuest"`

	Branding          Branding       `gorm:"type:jsonb" json:"branding"`
	Filters           FilterPreset   `gorm:"type:varchar(20);default:'None'" json:"filters"`
	GalleryViewing    GalleryViewing `gorm:"type:varchar(20);default:'During'" json:"galleryViewing"`
	AllowGuestGallery bool           `gorm:"default:false" json:"allowGuestGallery"`
	BackgroundPoster  string         `json:"backgroundPoster"`
	QRPath            string         `json:"qr_path"`

	// UniqueParticipants is recomputed from the uploads table after every
	// recorded upload, never mutated independently.
	UniqueParticipants int `gorm:"default:0" json:"uniqueParticipants"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Uploads []Upload `gorm:"foreignKey:EventID" json:"uploads,omitempty"`
}

// Upload records that a guest captured one media item. No media bytes are
// stored; captures stay on the guest's device.
type Upload struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID       uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	ParticipantID string    `gorm:"index;not null" json:"participant_id"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
