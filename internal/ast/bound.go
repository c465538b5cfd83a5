package ast

import (
	"errors"
	"fmt"
)

// ErrNoIdentifier is returned when a statement binds no name.
var ErrNoIdentifier = errors.New("statement binds no identifier")

// BoundIdent returns the name a statement binds. Only let statements bind
// one; anything else yields an error wrapping ErrNoIdentifier.
func BoundIdent(s Statement) (*Identifier, error) {
	switch st := s.(type) {
	case *LetStatement:
		if st.Name == nil {
			return nil, fmt.Errorf("let statement at %s: %w", st.Pos(), ErrNoIdentifier)
		}
		return st.Name, nil
	case *ReturnStatement:
		return nil, fmt.Errorf("%s statement: %w", st.Kind(), ErrNoIdentifier)
	case nil:
		return nil, fmt.Errorf("nil statement: %w", ErrNoIdentifier)
	default:
		return nil, fmt.Errorf("%T: %w", s, ErrNoIdentifier)
	}
}
