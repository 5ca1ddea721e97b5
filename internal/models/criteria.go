package models

// SortKey orders a filtered result set.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortAreaAsc   SortKey = "area-asc"
	SortAreaDesc  SortKey = "area-desc"
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortRating    SortKey = "rating"
)

// Criteria is the filter bundle applied by the search pipeline. The zero
// value is the widest filter: empty sets and zero maxima constrain nothing,
// so FilterAndSort(props, Criteria{}) returns props unchanged.
//
// All range bounds are inclusive. MaxPrice/MaxArea of 0 mean unbounded.
type Criteria struct {
	Query        string       `json:"query,omitempty"`
	PropertyType PropertyType `json:"property_type,omitempty"`
	MinPrice     float64      `json:"min_price,omitempty"`
	MaxPrice     float64      `json:"max_price,omitempty"`
	Bedrooms     []int        `json:"bedrooms,omitempty"`
	Bathrooms    []int        `json:"bathrooms,omitempty"`
	Amenities    []string     `json:"amenities,omitempty"`
	MinArea      float64      `json:"min_area,omitempty"`
	MaxArea      float64      `json:"max_area,omitempty"`
	Country      string       `json:"country,omitempty"`
	State        string       `json:"state,omitempty"`
	SortBy       SortKey      `json:"sort_by,omitempty"`
}
