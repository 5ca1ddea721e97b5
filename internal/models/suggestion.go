package models

// SuggestionType categorizes an autocomplete suggestion.
type SuggestionType string

const (
	SuggestionProperty SuggestionType = "property"
	SuggestionLocation SuggestionType = "location"
	SuggestionPropType SuggestionType = "type"
	SuggestionAmenity  SuggestionType = "amenity"
	SuggestionPopular  SuggestionType = "popular"
)

// Suggestion is one entry in the search autocomplete dropdown.
type Suggestion struct {
	Type     SuggestionType `json:"type"`
	Text     string         `json:"text"`
	Subtitle string         `json:"subtitle,omitempty"`
}
