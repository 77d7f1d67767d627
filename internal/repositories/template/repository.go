// Package template persists special templates registered at runtime so they
// survive restarts.
package template

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=templatemock github.com/KirkDiggler/rpg-roller/internal/repositories/template Repository

// Repository stores special templates keyed by name
type Repository interface {
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// Record is the stored form of a template
type Record struct {
	Name       string    `json:"name"`
	Stacks     bool      `json:"stacks"`
	Derivation string    `json:"derivation"`
	Min        *int      `json:"min,omitempty"`
	Max        *int      `json:"max,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewRecord converts a template into its stored form. Only templates with a
// serializable derivation can be stored.
func NewRecord(t special.Special, createdAt time.Time) (*Record, error) {
	if !t.IsTemplate() {
		return nil, errors.InvalidArgumentf("%s is not a template", t.Name()).
			WithMeta(errors.MetaName, t.Name())
	}
	if !t.Derivation().Serializable() {
		return nil, errors.InvalidArgumentf("template %s has a custom derivation and cannot be stored", t.Name()).
			WithMeta(errors.MetaName, t.Name())
	}

	bounds, _ := t.Bounds()
	return &Record{
		Name:       t.Name(),
		Stacks:     t.Stacks(),
		Derivation: t.Derivation().String(),
		Min:        bounds.Min,
		Max:        bounds.Max,
		CreatedAt:  createdAt,
	}, nil
}

// Template rebuilds the template described by the record
func (r *Record) Template() (special.Special, error) {
	d, err := special.ParseDerivation(r.Derivation)
	if err != nil {
		return special.Special{}, errors.Wrapf(err, "stored template %s", r.Name)
	}
	return special.NewTemplate(r.Name, r.Stacks,
		special.WithBounds(r.Min, r.Max),
		special.WithDerivation(d))
}

// CreateInput contains the template to store
type CreateInput struct {
	Template special.Special
}

// CreateOutput contains the stored record
type CreateOutput struct {
	Record *Record
}

// GetInput identifies a template by name
type GetInput struct {
	Name string
}

// GetOutput contains the stored template
type GetOutput struct {
	Template special.Special
	Record   *Record
}

// DeleteInput identifies a template by name
type DeleteInput struct {
	Name string
}

// DeleteOutput is empty; a missing template is reported as NotFound
type DeleteOutput struct{}

// ListInput has no filters yet
type ListInput struct{}

// ListOutput contains every stored template sorted by name
type ListOutput struct {
	Templates []special.Special
}
