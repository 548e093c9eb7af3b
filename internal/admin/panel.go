package admin

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const unsupportedAction = "Это действие недоступно, обновите страницу"

// State is what a panel renders: the list, the form draft and an optional
// notice. Loaded is false when the list was not read during this request.
type State[T any] struct {
	Items  []T
	Loaded bool
	Draft  Draft[T]
	Notice *Notice
}

type panelText struct {
	invalid      string
	created      string
	createFailed string
	updated      string
	updateFailed string
}

// Panel is the list plus create/edit form shared by every admin tab. A nil
// create or update disables that half of the form.
type Panel[T any] struct {
	name   string
	list   func(context.Context) ([]T, error)
	create func(context.Context, T) error
	update func(context.Context, T) error
	id     func(T) int64
	idle   func() Draft[T]
	text   panelText
	logger *logging.Logger
}

func (p *Panel[T]) Name() string {
	return p.name
}

// Idle is the draft the form shows when nothing is being edited.
func (p *Panel[T]) Idle() Draft[T] {
	return p.idle()
}

// Load reads the list once and starts from the idle draft.
func (p *Panel[T]) Load(ctx context.Context) State[T] {
	return State[T]{
		Items:  p.readList(ctx),
		Loaded: true,
		Draft:  p.idle(),
	}
}

// Edit starts editing the row with the given id. Unknown ids, or panels
// without an update call, fall back to the idle draft.
func (p *Panel[T]) Edit(items []T, id int64) Draft[T] {
	if p.update == nil || id <= 0 {
		return p.idle()
	}
	for _, item := range items {
		if p.id(item) == id {
			return Edit(item)
		}
	}
	return p.idle()
}

// Submit validates the draft and sends exactly one write for it. Only a
// successful write is followed by a single list read and a reset draft. Any
// failure keeps the draft and leaves the list unread.
func (p *Panel[T]) Submit(ctx context.Context, draft Draft[T]) State[T] {
	state := State[T]{Draft: draft}

	var (
		write     func(context.Context, T) error
		succeeded string
		failed    string
	)
	switch draft.Kind {
	case Creating:
		write, succeeded, failed = p.create, p.text.created, p.text.createFailed
	case Editing:
		write, succeeded, failed = p.update, p.text.updated, p.text.updateFailed
	default:
		return state
	}
	if write == nil {
		p.logger.WarnContext(ctx, "admin draft kind not supported", "panel", p.name, "kind", draft.Kind.String())
		state.Draft = p.idle()
		state.Notice = errorNotice(unsupportedAction)
		return state
	}

	if err := validate.StructCtx(ctx, draft.Entity); err != nil {
		p.logger.DebugContext(ctx, "admin draft rejected", "panel", p.name, "kind", draft.Kind.String(), "error", err)
		state.Notice = errorNotice(p.text.invalid)
		return state
	}

	if err := write(ctx, draft.Entity); err != nil {
		p.logger.WarnContext(ctx, "admin write failed", "panel", p.name, "kind", draft.Kind.String(), "error", err)
		state.Notice = errorNotice(failed)
		return state
	}

	state.Draft = p.idle()
	state.Notice = successNotice(succeeded)
	state.Items = p.readList(ctx)
	state.Loaded = true
	return state
}

func (p *Panel[T]) readList(ctx context.Context) []T {
	items, err := p.list(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "admin list read failed", "panel", p.name, "error", err)
		return nil
	}
	return items
}
