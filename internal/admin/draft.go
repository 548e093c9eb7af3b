package admin

// DraftKind tags the in-progress form entity of a panel.
type DraftKind int

const (
	NoDraft DraftKind = iota
	Creating
	Editing
)

func (k DraftKind) String() string {
	switch k {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "none"
	}
}

// ParseDraftKind reads the hidden form field written by String.
func ParseDraftKind(v string) DraftKind {
	switch v {
	case "creating":
		return Creating
	case "editing":
		return Editing
	default:
		return NoDraft
	}
}

// Draft is an unsaved entity. It only lives in the form that carries it, so
// leaving the page discards it.
type Draft[T any] struct {
	Kind   DraftKind
	Entity T
}

func None[T any]() Draft[T] {
	return Draft[T]{Kind: NoDraft}
}

func Create[T any](entity T) Draft[T] {
	return Draft[T]{Kind: Creating, Entity: entity}
}

func Edit[T any](entity T) Draft[T] {
	return Draft[T]{Kind: Editing, Entity: entity}
}

func (d Draft[T]) IsEditing() bool {
	return d.Kind == Editing
}

func (d Draft[T]) IsCreating() bool {
	return d.Kind == Creating
}

func (d Draft[T]) IsEmpty() bool {
	return d.Kind == NoDraft
}
