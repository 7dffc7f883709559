package profile

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jastipid/storefront/internal/apperror"
)

// Service defines storefront profile business logic.
type Service interface {
	// Save creates a new profile or updates the current one in place, then
	// makes the saved profile current.
	Save(ctx context.Context, req SaveRequest) (*Profile, error)

	// Use switches the current profile. Unknown ids are a not-found error.
	Use(ctx context.Context, id string) (*Profile, error)

	// DeleteCurrent removes the current profile and clears the pointer.
	DeleteCurrent(ctx context.Context) error

	// Reset clears the whole profile list and the pointer.
	Reset(ctx context.Context) error

	Current(ctx context.Context) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)

	// Branding resolves the page identity of the current profile, or the
	// built-in defaults when none is selected.
	Branding(ctx context.Context) (*Branding, error)
}

// SaveRequest holds the profile form fields.
type SaveRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	WhatsAppNumber string `json:"whatsapp_number"`
	SheetURL       string `json:"sheet_url"`
	Theme          Theme  `json:"theme"`
	Logo           string `json:"logo,omitempty"`
}

type service struct{ repo Repository }

// NewService creates a new profile service.
func NewService(repo Repository) Service { return &service{repo: repo} }

var sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([^/]+)`)

// SheetID extracts the spreadsheet id path segment from a CSV export link.
// Returns "" when the link does not carry one.
func SheetID(sheetURL string) string {
	m := sheetIDPattern.FindStringSubmatch(sheetURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// validSheetURL checks the expected export-link shape: a spreadsheet-id path
// segment plus the export-as-CSV query marker.
func validSheetURL(u string) bool {
	return strings.Contains(u, "/spreadsheets/d/") && strings.Contains(u, "export?format=csv")
}

func (s *service) Save(ctx context.Context, req SaveRequest) (*Profile, error) {
	name := strings.TrimSpace(req.Name)
	desc := strings.TrimSpace(req.Description)
	wa := strings.TrimSpace(req.WhatsAppNumber)
	sheet := strings.TrimSpace(req.SheetURL)

	if name == "" || desc == "" || wa == "" || sheet == "" {
		return nil, apperror.Validation("name, description, whatsapp number and sheet url are required")
	}
	if !validSheetURL(sheet) {
		return nil, apperror.Validation("sheet url must contain /spreadsheets/d/ and export?format=csv")
	}

	theme := req.Theme
	if theme.Accent == "" {
		theme.Accent = DefaultTheme.Accent
	}
	if theme.Bg == "" {
		theme.Bg = DefaultTheme.Bg
	}
	if theme.Card == "" {
		theme.Card = DefaultTheme.Card
	}

	profiles, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	currentID, err := s.repo.CurrentID(ctx)
	if err != nil {
		return nil, err
	}

	var saved *Profile
	if currentID != "" {
		for i := range profiles {
			if profiles[i].ID.String() == currentID {
				profiles[i].Name = name
				profiles[i].Description = desc
				profiles[i].WhatsAppNumber = wa
				profiles[i].SheetURL = sheet
				profiles[i].Theme = theme
				if req.Logo != "" {
					profiles[i].Logo = req.Logo
				}
				saved = &profiles[i]
				break
			}
		}
	}

	if saved == nil {
		p := Profile{
			ID:             uuid.New(),
			Name:           name,
			Description:    desc,
			WhatsAppNumber: wa,
			SheetURL:       sheet,
			Theme:          theme,
			Logo:           req.Logo,
			CreatedAt:      time.Now().UTC(),
		}
		profiles = append(profiles, p)
		saved = &profiles[len(profiles)-1]
	}

	if err := s.repo.SaveAll(ctx, profiles); err != nil {
		return nil, err
	}
	if err := s.repo.SetCurrentID(ctx, saved.ID.String()); err != nil {
		return nil, err
	}

	out := *saved
	return &out, nil
}

func (s *service) Use(ctx context.Context, id string) (*Profile, error) {
	profiles, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].ID.String() == id {
			if err := s.repo.SetCurrentID(ctx, id); err != nil {
				return nil, err
			}
			out := profiles[i]
			return &out, nil
		}
	}
	return nil, apperror.NotFound("profile not found")
}

func (s *service) DeleteCurrent(ctx context.Context) error {
	currentID, err := s.repo.CurrentID(ctx)
	if err != nil {
		return err
	}
	if currentID == "" {
		return apperror.Validation("no profile selected")
	}

	profiles, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	kept := profiles[:0]
	for _, p := range profiles {
		if p.ID.String() != currentID {
			kept = append(kept, p)
		}
	}
	if err := s.repo.SaveAll(ctx, kept); err != nil {
		return err
	}
	return s.repo.ClearCurrentID(ctx)
}

func (s *service) Reset(ctx context.Context) error {
	if err := s.repo.SaveAll(ctx, nil); err != nil {
		return err
	}
	return s.repo.ClearCurrentID(ctx)
}

func (s *service) Current(ctx context.Context) (*Profile, error) {
	currentID, err := s.repo.CurrentID(ctx)
	if err != nil {
		return nil, err
	}
	if currentID == "" {
		return nil, apperror.NotFound("no profile selected")
	}
	profiles, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].ID.String() == currentID {
			out := profiles[i]
			return &out, nil
		}
	}
	// Dangling pointer: the profile was deleted out from under the id.
	return nil, apperror.NotFound("current profile no longer exists")
}

func (s *service) List(ctx context.Context) ([]Profile, error) {
	return s.repo.LoadAll(ctx)
}

func (s *service) Branding(ctx context.Context) (*Branding, error) {
	p, err := s.Current(ctx)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return defaultBranding(), nil
		}
		return nil, err
	}

	initials := defaultInitials
	if p.Name != "" {
		initials = strings.ToUpper(firstRunes(p.Name, 2))
	}
	return &Branding{
		Initials:     initials,
		Logo:         p.Logo,
		Subtitle:     p.Name,
		Description:  p.Description,
		WhatsAppLink: "https://wa.me/" + p.WhatsAppNumber,
		FooterText:   p.Name + " • Jadwal: Senin–Jumat • Order cutoff 16:00",
		Theme:        p.Theme,
	}, nil
}

func defaultBranding() *Branding {
	return &Branding{
		Initials:     defaultInitials,
		Subtitle:     defaultSubtitle,
		Description:  defaultDesc,
		WhatsAppLink: "#",
		FooterText:   defaultFooter,
		Theme:        DefaultTheme,
	}
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
