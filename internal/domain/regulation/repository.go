package regulation

import "context"

// Repository exposes regulation storage ordered by OrderIndex.
type Repository interface {
	List(ctx context.Context) ([]Regulation, error)
	Create(ctx context.Context, item Regulation) (Regulation, error)
	Update(ctx context.Context, item Regulation) (bool, error)
}
