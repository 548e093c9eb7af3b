package match

import "context"

// Repository exposes match storage. List returns newest first with team names resolved.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	Create(ctx context.Context, item Match) (Match, error)
}
