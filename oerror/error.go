package oerror

import "fmt"

// Kind classifies a locomotion failure. None of the kinds are fatal: each one degrades to
// "no destination this frame" or "skip the cosmetic effect".
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindQueryMiss means the spatial query found no geometry.
	KindQueryMiss
	// KindNotWalkable means geometry was hit but it could not be projected onto a walkable surface.
	KindNotWalkable
	// KindNoActiveController means no player controller was bound when a fade was requested.
	KindNoActiveController
	// KindMissingConfiguration means an optional asset (curve, material) was not configured.
	KindMissingConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindQueryMiss:
		return "query miss"
	case KindNotWalkable:
		return "not walkable"
	case KindNoActiveController:
		return "no active controller"
	case KindMissingConfiguration:
		return "missing configuration"
	default:
		return "unknown"
	}
}

var (
	ErrQueryMiss            = &OomphError{Kind: KindQueryMiss, Err: "spatial query found no hit"}
	ErrNotWalkable          = &OomphError{Kind: KindNotWalkable, Err: "hit could not be projected onto a walkable surface"}
	ErrNoActiveController   = &OomphError{Kind: KindNoActiveController, Err: "no player controller bound"}
	ErrMissingConfiguration = &OomphError{Kind: KindMissingConfiguration, Err: "feature not configured"}
)

type OomphError struct {
	Kind Kind
	Err  string
}

// New returns an error of unknown kind with a formatted message.
func New(format string, args ...any) *OomphError {
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

// Newf returns an error of the given kind with a formatted message. It matches the
// sentinel of the same kind through errors.Is.
func Newf(kind Kind, format string, args ...any) *OomphError {
	return &OomphError{Kind: kind, Err: fmt.Sprintf(format, args...)}
}

func (e *OomphError) Error() string {
	if e.Kind == KindUnknown {
		return e.Err
	}
	return e.Kind.String() + ": " + e.Err
}

// Is reports whether target is an OomphError of the same, known kind.
func (e *OomphError) Is(target error) bool {
	t, ok := target.(*OomphError)
	if !ok {
		return false
	}
	return e.Kind != KindUnknown && e.Kind == t.Kind
}
