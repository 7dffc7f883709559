package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/jastipid/storefront/internal/apperror"
	"github.com/jastipid/storefront/internal/modules/profile"
)

// ProfileSource provides the current storefront profile, whose sheet URL is
// the catalog source.
type ProfileSource interface {
	Current(ctx context.Context) (*profile.Profile, error)
}

// Service defines catalog business logic.
type Service interface {
	// Refresh fetches and reparses the current profile's sheet. On any
	// failure the previous snapshot is left unchanged.
	Refresh(ctx context.Context) error

	// Products returns the current snapshot, optionally filtered by category.
	Products(category string) []Product

	// Categories returns the distinct categories in first-seen order.
	Categories() []string

	// Clear drops the snapshot (profile deleted or reset).
	Clear()
}

type service struct {
	profiles ProfileSource
	client   *http.Client
	log      *zap.Logger

	mu         sync.Mutex
	products   []Product
	categories []string
}

// NewService creates a new catalog service. client controls the fetch timeout.
func NewService(profiles ProfileSource, client *http.Client, log *zap.Logger) Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &service{profiles: profiles, client: client, log: log}
}

func (s *service) Refresh(ctx context.Context) error {
	p, err := s.profiles.Current(ctx)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return apperror.Validation("select or create a profile first")
		}
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.SheetURL, nil)
	if err != nil {
		return apperror.Fetch("invalid sheet url", err)
	}
	res, err := s.client.Do(req)
	if err != nil {
		return apperror.Fetch("failed to fetch catalog sheet", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return apperror.Fetch(fmt.Sprintf("catalog sheet returned status %d", res.StatusCode), nil)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return apperror.Fetch("failed to read catalog sheet", err)
	}

	products := parseCSV(string(body))
	categories := categoriesOf(products)

	s.mu.Lock()
	s.products = products
	s.categories = categories
	s.mu.Unlock()

	s.log.Info("catalog refreshed",
		zap.String("sheet_id", profile.SheetID(p.SheetURL)),
		zap.Int("products", len(products)),
		zap.Int("categories", len(categories)))
	return nil
}

func (s *service) Products(category string) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.categories = nil
}
