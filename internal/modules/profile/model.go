package profile

import (
	"time"

	"github.com/google/uuid"
)

// Theme is the storefront color scheme.
type Theme struct {
	Accent string `json:"accent"`
	Bg     string `json:"bg"`
	Card   string `json:"card"`
}

// Profile is one configured storefront identity. Exactly one profile is
// current at a time, referenced by id.
type Profile struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	SheetURL       string    `json:"sheet_url"`
	Theme          Theme     `json:"theme"`
	Logo           string    `json:"logo,omitempty"` // data URI, optional
	CreatedAt      time.Time `json:"created_at"`
}

// Branding is the resolved page identity for the current profile, or the
// built-in defaults when no profile is selected.
type Branding struct {
	Initials     string `json:"initials"`
	Logo         string `json:"logo,omitempty"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	WhatsAppLink string `json:"whatsapp_link"`
	FooterText   string `json:"footer_text"`
	Theme        Theme  `json:"theme"`
}

// DefaultTheme is applied whenever no profile is current.
var DefaultTheme = Theme{Accent: "#2f8f4a", Bg: "#f7f9f8", Card: "#ffffff"}

const (
	defaultInitials = "JS"
	defaultSubtitle = "Skincare & Bodycare — Fee Rp10.000/item"
	defaultDesc     = "Order sebelum 16:00, saya belanja sore ini dan sampai Cilejit malamnya. Free kemasan rapi."
	defaultFooter   = "Jastip • Jadwal: Senin–Jumat • Order cutoff 16:00"
)
