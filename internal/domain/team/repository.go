package team

import "context"

// Repository describes team persistence needs from use cases. List orders by
// conference, then id.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	// Update reports false when no team has item.ID.
	Update(ctx context.Context, item Team) (bool, error)
}
