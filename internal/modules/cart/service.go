package cart

import (
	"context"
	"sort"
	"strings"

	"github.com/jastipid/storefront/internal/apperror"
)

// Service defines cart business logic. Every mutation is a single
// read-modify-write against the persisted map and returns the fresh summary.
type Service interface {
	// Add increments the quantity for name, creating the line at zero first
	// if absent. unitPrice is refreshed on every add.
	Add(ctx context.Context, name string, unitPrice int64) (*Summary, error)

	// ChangeQuantity applies delta; a resulting quantity of zero or less
	// removes the line entirely. Unknown names are a not-found error.
	ChangeQuantity(ctx context.Context, name string, delta int64) (*Summary, error)

	// Remove deletes the line unconditionally; removing an absent line is
	// not an error.
	Remove(ctx context.Context, name string) (*Summary, error)

	Summary(ctx context.Context) (*Summary, error)
	Clear(ctx context.Context) error
}

type service struct{ repo Repository }

// NewService creates a new cart service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Add(ctx context.Context, name string, unitPrice int64) (*Summary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("product name is required")
	}
	if unitPrice < 0 {
		return nil, apperror.Validation("unit price cannot be negative")
	}

	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	line := lines[name]
	line.Name = name
	line.UnitPrice = unitPrice
	line.Quantity++
	lines[name] = line

	if err := s.repo.Save(ctx, lines); err != nil {
		return nil, err
	}
	return summarize(lines), nil
}

func (s *service) ChangeQuantity(ctx context.Context, name string, delta int64) (*Summary, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	line, ok := lines[name]
	if !ok {
		return nil, apperror.NotFound("cart line not found")
	}

	line.Quantity += delta
	if line.Quantity <= 0 {
		delete(lines, name)
	} else {
		lines[name] = line
	}

	if err := s.repo.Save(ctx, lines); err != nil {
		return nil, err
	}
	return summarize(lines), nil
}

func (s *service) Remove(ctx context.Context, name string) (*Summary, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	delete(lines, name)

	if err := s.repo.Save(ctx, lines); err != nil {
		return nil, err
	}
	return summarize(lines), nil
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(lines), nil
}

func (s *service) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func summarize(lines map[string]Line) *Summary {
	sum := &Summary{Lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		sum.Lines = append(sum.Lines, l)
		sum.Total += l.UnitPrice * l.Quantity
		sum.TotalQuantity += l.Quantity
	}
	sort.Slice(sum.Lines, func(i, j int) bool { return sum.Lines[i].Name < sum.Lines[j].Name })
	sum.DrawerOpen = len(sum.Lines) > 0
	return sum
}
