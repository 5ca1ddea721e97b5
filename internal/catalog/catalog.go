// Package catalog supplies the property collection consumed by the search
// pipeline and presentation layers.
package catalog

import (
	"context"

	"estatehub/internal/models"
)

// Source yields the current property collection.
type Source interface {
	Properties(ctx context.Context) ([]models.Property, error)
}

// StaticSource serves a fixed in-memory collection.
type StaticSource struct {
	props []models.Property
}

// NewStaticSource copies the given properties into a fixed source.
func NewStaticSource(props []models.Property) *StaticSource {
	out := make([]models.Property, len(props))
	copy(out, props)
	return &StaticSource{props: out}
}

func (s *StaticSource) Properties(_ context.Context) ([]models.Property, error) {
	out := make([]models.Property, len(s.props))
	copy(out, s.props)
	return out, nil
}
