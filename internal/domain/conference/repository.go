package conference

import "context"

// Repository exposes conference storage. List returns conferences without teams.
type Repository interface {
	List(ctx context.Context) ([]Conference, error)
	Rename(ctx context.Context, id int64, name string) (bool, error)
}
