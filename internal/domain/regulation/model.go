package regulation

import "fmt"

// Regulation is one section of the league rulebook. Content is Markdown.
type Regulation struct {
	ID         int64  `json:"id,omitempty" db:"id"`
	Title      string `json:"title" db:"title" validate:"required"`
	Content    string `json:"content" db:"content" validate:"required"`
	OrderIndex int    `json:"order_index" db:"order_index"`
}

func (r Regulation) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("regulation title is required")
	}
	if r.Content == "" {
		return fmt.Errorf("regulation content is required")
	}

	return nil
}
