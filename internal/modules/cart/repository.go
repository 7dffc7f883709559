package cart

import "context"

// Repository persists the cart map. Every mutation rewrites the whole map.
type Repository interface {
	Load(ctx context.Context) (map[string]Line, error)
	Save(ctx context.Context, lines map[string]Line) error
	Clear(ctx context.Context) error
}
