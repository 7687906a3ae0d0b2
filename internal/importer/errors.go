package importer

import (
	"errors"
	"fmt"
)

// Kind classifies an import failure.
type Kind int

const (
	// KindParseFailure means the document could not be read or parsed.
	KindParseFailure Kind = iota + 1
	// KindMissingRequiredAttribute means a corner's position index is
	// absent or out of range.
	KindMissingRequiredAttribute
	// KindUnsupportedFace means a face is not a triangle.
	KindUnsupportedFace
)

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrParseFailure             = errors.New("parse failure")
	ErrMissingRequiredAttribute = errors.New("missing required attribute")
	ErrUnsupportedFace          = errors.New("unsupported face")
)

func (k Kind) sentinel() error {
	switch k {
	case KindParseFailure:
		return ErrParseFailure
	case KindMissingRequiredAttribute:
		return ErrMissingRequiredAttribute
	case KindUnsupportedFace:
		return ErrUnsupportedFace
	}
	return nil
}

func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by Import. Face and Corner are -1 when not applicable.
type Error struct {
	Kind   Kind
	Path   string
	Face   int
	Corner int
	Err    error
}

func (e *Error) Error() string {
	s := "importer: " + e.Kind.String()
	if e.Path != "" {
		s += " in " + e.Path
	}
	if e.Face >= 0 {
		s += fmt.Sprintf(" (face %d", e.Face)
		if e.Corner >= 0 {
			s += fmt.Sprintf(", corner %d", e.Corner)
		}
		s += ")"
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}
