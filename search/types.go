package search

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search package.
var (
	// ErrInvalidSize indicates a grid dimension of zero or less.
	ErrInvalidSize = errors.New("search: grid size must be at least 1")

	// ErrNegativeDamage indicates a negative entry in the damage map.
	ErrNegativeDamage = errors.New("search: negative cell damage")

	// ErrNilField indicates FromField was called with a nil field.
	ErrNilField = errors.New("search: damage field is nil")

	// ErrBadMaxDamage indicates WithMaxDamage was given a negative limit.
	ErrBadMaxDamage = errors.New("search: MaxDamage must be non-negative")

	// ErrUnknownDirection indicates a route symbol outside {N,S,L,O}.
	ErrUnknownDirection = errors.New("search: unknown direction symbol")
)

// Direction is one route symbol.
type Direction byte

// Route symbols. East and West use the Portuguese initials of the original
// output format: Leste and Oeste.
const (
	North Direction = 'N'
	South Direction = 'S'
	East  Direction = 'L'
	West  Direction = 'O'
)

// Delta returns the (row, col) step of d and whether d is a known symbol.
func (d Direction) Delta() (dr, dc int, ok bool) {
	switch d {
	case North:
		return -1, 0, true
	case South:
		return 1, 0, true
	case East:
		return 0, 1, true
	case West:
		return 0, -1, true
	default:
		return 0, 0, false
	}
}

// Route is an ordered sequence of direction symbols.
type Route string

// Len returns the number of moves in r.
func (r Route) Len() int { return len(r) }

// Result is the outcome of one search.
type Result struct {
	Route    Route // chosen route; empty when the goal was not reached
	Damage   int   // accumulated damage along Route
	Reached  bool  // whether the goal was popped from the frontier
	Expanded int   // number of cells settled before termination
}

// Options configures the search.
//
// MaxDamage – frontier entries whose accumulated damage exceeds this value
// are never pushed. Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	MaxDamage int
}

// Option represents a functional option for Search.
type Option func(*Options)

// WithMaxDamage caps the accumulated damage a route may reach. A goal that
// can only be reached above the cap is reported as unreachable.
// Negative limits panic with ErrBadMaxDamage.
func WithMaxDamage(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadMaxDamage.Error())
		}
		o.MaxDamage = limit
	}
}

// DefaultOptions returns Options with no damage cap.
func DefaultOptions() Options {
	return Options{MaxDamage: math.MaxInt}
}
