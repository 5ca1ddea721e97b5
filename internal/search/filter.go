// Package search implements the pure property filtering, sorting and
// autocomplete suggestion pipeline.
package search

import (
	"sort"
	"strings"

	"estatehub/internal/models"
)

// FilterAndSort applies the criteria's predicate stages to the input and
// orders the survivors by the requested sort key. It is pure: the input
// slice is never mutated, and equal sort keys keep their input order.
//
// The zero-value Criteria passes every property through unchanged.
func FilterAndSort(props []models.Property, c models.Criteria) []models.Property {
	out := make([]models.Property, 0, len(props))
	for _, p := range props {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	sortProperties(out, c.SortBy)
	return out
}

func matches(p models.Property, c models.Criteria) bool {
	return matchesQuery(p, c.Query) &&
		matchesType(p, c.PropertyType) &&
		inRange(p.Price, c.MinPrice, c.MaxPrice) &&
		inIntSet(p.Bedrooms, c.Bedrooms) &&
		inIntSet(p.Bathrooms, c.Bathrooms) &&
		hasAnyAmenity(p, c.Amenities) &&
		inRange(p.AreaSqft, c.MinArea, c.MaxArea) &&
		matchesCountry(p, c.Country) &&
		matchesState(p, c.State)
}

// matchesQuery is a case-insensitive substring match across title, city,
// state, address, description and every amenity label; any one hit passes.
func matchesQuery(p models.Property, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{p.Title, p.City, p.State, p.Address, p.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, amenity := range p.Amenities {
		if strings.Contains(strings.ToLower(amenity), q) {
			return true
		}
	}
	return false
}

func matchesType(p models.Property, t models.PropertyType) bool {
	return t == "" || p.PropertyType == t
}

// inRange checks inclusive bounds; a max of 0 means unbounded.
func inRange(v, min, max float64) bool {
	if v < min {
		return false
	}
	if max > 0 && v > max {
		return false
	}
	return true
}

// inIntSet passes through when the set is empty.
func inIntSet(v int, set []int) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// hasAnyAmenity passes through on an empty wanted set, otherwise requires
// at least one overlap (case-insensitive).
func hasAnyAmenity(p models.Property, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		for _, a := range p.Amenities {
			if strings.EqualFold(w, a) {
				return true
			}
		}
	}
	return false
}

func matchesCountry(p models.Property, country string) bool {
	return country == "" || CountryForState(p.State) == country
}

func matchesState(p models.Property, state string) bool {
	return state == "" || StateName(p.State) == state
}

func sortProperties(props []models.Property, key models.SortKey) {
	var less func(a, b models.Property) bool

	switch key {
	case models.SortPriceAsc:
		less = func(a, b models.Property) bool { return a.Price < b.Price }
	case models.SortPriceDesc:
		less = func(a, b models.Property) bool { return a.Price > b.Price }
	case models.SortAreaAsc:
		less = func(a, b models.Property) bool { return a.AreaSqft < b.AreaSqft }
	case models.SortAreaDesc:
		less = func(a, b models.Property) bool { return a.AreaSqft > b.AreaSqft }
	case models.SortNewest:
		less = func(a, b models.Property) bool { return a.CreatedAt.After(b.CreatedAt) }
	case models.SortOldest:
		less = func(a, b models.Property) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case models.SortRating:
		// Missing ratings sort as 0.
		less = func(a, b models.Property) bool { return a.Rating > b.Rating }
	default:
		return
	}

	sort.SliceStable(props, func(i, j int) bool { return less(props[i], props[j]) })
}
