// Package validate checks raw movement input before it reaches the engine.
//
// The engine treats labels as a caller contract and panics on anything
// outside a-t, so every label arriving from a terminal prompt or an MCP tool
// goes through this package first. Origins are restricted to e-t (columns and
// hand cells) and destinations to a-m (foundations and columns), the only
// ranges the rules of the game can ever permit.
package validate

import (
	"errors"
	"fmt"

	"github.com/matt-harvey/king-albert/game/engine"
)

var (
	ErrNotSingleLabel = errors.New("label must be a single character")
	ErrBadOrigin      = errors.New("origin must be a letter from e to t")
	ErrBadDestination = errors.New("destination must be a letter from a to m")
)

// Origin validates a raw origin label. Legal origins are columns and hand
// cells, e-t.
func Origin(raw string) (byte, error) {
	label, err := singleLabel(raw)
	if err != nil {
		return 0, err
	}
	if label < engine.FirstColumnLabel || label > engine.LastHandLabel {
		return 0, fmt.Errorf("%w: got %q", ErrBadOrigin, raw)
	}
	return label, nil
}

// Destination validates a raw destination label. Legal destinations are
// foundations and columns, a-m.
func Destination(raw string) (byte, error) {
	label, err := singleLabel(raw)
	if err != nil {
		return 0, err
	}
	if label < engine.FirstFoundationLabel || label > engine.LastColumnLabel {
		return 0, fmt.Errorf("%w: got %q", ErrBadDestination, raw)
	}
	return label, nil
}

// Movement validates an (origin, destination) pair of raw labels and builds
// the engine movement.
func Movement(origin, destination string) (engine.Movement, error) {
	o, err := Origin(origin)
	if err != nil {
		return engine.Movement{}, err
	}
	d, err := Destination(destination)
	if err != nil {
		return engine.Movement{}, err
	}
	return engine.Movement{Origin: o, Destination: d}, nil
}

func singleLabel(raw string) (byte, error) {
	if len(raw) != 1 {
		return 0, fmt.Errorf("%w: got %q", ErrNotSingleLabel, raw)
	}
	return raw[0], nil
}
