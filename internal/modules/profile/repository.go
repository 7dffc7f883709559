package profile

import "context"

// Repository persists the profile list and the current-profile pointer.
// Every mutation rewrites the full list; there are no partial updates.
type Repository interface {
	LoadAll(ctx context.Context) ([]Profile, error)
	SaveAll(ctx context.Context, profiles []Profile) error
	CurrentID(ctx context.Context) (string, error) // "" when unset
	SetCurrentID(ctx context.Context, id string) error
	ClearCurrentID(ctx context.Context) error
}
