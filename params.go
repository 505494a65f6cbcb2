package annulus

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Params is the struct form of a Place call, suitable for embedding in a
// host application's YAML document:
//
//	count: 6
//	offset: {x: 100, y: 50}
//	minimum: 10
//	maximum: 20
type Params struct {
	Count   int   `yaml:"count"`
	Offset  Point `yaml:"offset"`
	Minimum int   `yaml:"minimum"`
	Maximum int   `yaml:"maximum"`
}

// DefaultParams returns Params for count points with the default radii and
// no offset.
func DefaultParams(count int) Params {
	return Params{Count: count, Minimum: DefaultMinimum, Maximum: DefaultMaximum}
}

// Validate checks that the count and radii are positive and that the
// minimum radius is below the maximum. Place does not call Validate.
func (p Params) Validate() error {
	switch {
	case p.Count <= 0:
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidParams, p.Count)
	case p.Minimum <= 0:
		return fmt.Errorf("%w: minimum radius must be positive, got %d", ErrInvalidParams, p.Minimum)
	case p.Maximum <= 0:
		return fmt.Errorf("%w: maximum radius must be positive, got %d", ErrInvalidParams, p.Maximum)
	case p.Minimum >= p.Maximum:
		return fmt.Errorf("%w: minimum radius %d must be below maximum radius %d",
			ErrInvalidParams, p.Minimum, p.Maximum)
	}
	return nil
}

// Options returns the options equivalent to p, for use with Place.
func (p Params) Options() []Option {
	return []Option{WithOffset(p.Offset), WithBounds(p.Minimum, p.Maximum)}
}

// Place calls Place with the parameters in p.
func (p Params) Place() (Placement, error) {
	return Place(p.Count, p.Options()...)
}

// DecodeParams reads a single YAML document into Params. Omitted radii take
// the defaults; unknown fields are rejected. The result is validated.
func DecodeParams(r io.Reader) (Params, error) {
	p := DefaultParams(0)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Params{}, fmt.Errorf("%w: empty document", ErrInvalidParams)
		}
		return Params{}, fmt.Errorf("annulus: failed to parse params: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
