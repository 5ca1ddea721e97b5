package search

import (
	"strings"
	"unicode/utf8"

	"estatehub/internal/common/metrics"
	"estatehub/internal/models"
)

const (
	// MinQueryLength suppresses the dropdown for one-character queries,
	// counted in runes.
	MinQueryLength = 2

	// MaxSuggestions caps the dropdown size.
	MaxSuggestions = 8

	maxLocationSuggestions = 3
	maxTypeSuggestions     = 2
	maxAmenitySuggestions  = 3

	// popularThreshold: popular phrases are only consulted when the
	// category scan produced fewer matches than this.
	popularThreshold = 3
)

// popularTerms are appended when a query matches little else.
var popularTerms = []string{
	"Luxury apartments",
	"Family homes",
	"Downtown condos",
	"Waterfront properties",
	"Pet-friendly rentals",
}

// Suggest derives a ranked, capped suggestion list for the query from the
// given properties. The output order is a display contract, not a relevance
// ranking: property title matches come first in input order, then up to 3
// deduplicated locations, up to 2 transaction types, up to 3 deduplicated
// amenities, and finally popular phrases while the total stays under the cap.
func Suggest(query string, props []models.Property) []models.Suggestion {
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil
	}

	q := strings.ToLower(query)

	var out []models.Suggestion

	var locations, propertyTypes, amenities []string
	seenLocation := make(map[string]bool)
	seenType := make(map[string]bool)
	seenAmenity := make(map[string]bool)

	for _, p := range props {
		if strings.Contains(strings.ToLower(p.City), q) {
			loc := p.Location()
			if !seenLocation[loc] {
				seenLocation[loc] = true
				locations = append(locations, loc)
			}
		}
		if strings.Contains(strings.ToLower(p.State), q) {
			if !seenLocation[p.State] {
				seenLocation[p.State] = true
				locations = append(locations, p.State)
			}
		}
		if strings.Contains(string(p.PropertyType), q) {
			if !seenType[string(p.PropertyType)] {
				seenType[string(p.PropertyType)] = true
				propertyTypes = append(propertyTypes, string(p.PropertyType))
			}
		}
		for _, amenity := range p.Amenities {
			if strings.Contains(strings.ToLower(amenity), q) && !seenAmenity[amenity] {
				seenAmenity[amenity] = true
				amenities = append(amenities, amenity)
			}
		}
		if strings.Contains(strings.ToLower(p.Title), q) {
			out = append(out, models.Suggestion{
				Type:     models.SuggestionProperty,
				Text:     p.Title,
				Subtitle: p.Location(),
			})
		}
	}

	for i, loc := range locations {
		if i == maxLocationSuggestions {
			break
		}
		out = append(out, models.Suggestion{
			Type:     models.SuggestionLocation,
			Text:     loc,
			Subtitle: "Location",
		})
	}

	for i, t := range propertyTypes {
		if i == maxTypeSuggestions {
			break
		}
		label := "For Rent"
		if t == string(models.TypeSale) {
			label = "For Sale"
		}
		out = append(out, models.Suggestion{
			Type:     models.SuggestionPropType,
			Text:     label,
			Subtitle: "Property Type",
		})
	}

	for i, amenity := range amenities {
		if i == maxAmenitySuggestions {
			break
		}
		out = append(out, models.Suggestion{
			Type:     models.SuggestionAmenity,
			Text:     amenity,
			Subtitle: "Amenity",
		})
	}

	if len(out) < popularThreshold {
		for _, term := range popularTerms {
			if len(out) >= MaxSuggestions {
				break
			}
			if strings.Contains(strings.ToLower(term), q) {
				out = append(out, models.Suggestion{
					Type:     models.SuggestionPopular,
					Text:     term,
					Subtitle: "Popular search",
				})
			}
		}
	}

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}

	metrics.SuggestionResults.Observe(float64(len(out)))
	return out
}
