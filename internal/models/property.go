package models

import (
	"fmt"
	"time"
)

// PropertyType is the transaction kind of a listing.
type PropertyType string

const (
	TypeSale PropertyType = "sale"
	TypeRent PropertyType = "rent"
)

// Status is the lifecycle state of a listing.
type Status string

const (
	StatusActive  Status = "active"
	StatusPending Status = "pending"
	StatusSold    Status = "sold"
	StatusRented  Status = "rented"
)

// Property is a full real-estate listing record. ID is the sole identity
// key; two properties are the same listing iff their IDs match.
type Property struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	PropertyType PropertyType `json:"property_type"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	AreaSqft     float64      `json:"area_sqft"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	ZipCode      string       `json:"zip_code"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	Images       []string     `json:"images"`
	Amenities    []string     `json:"amenities"`
	Status       Status       `json:"status"`
	Rating       float64      `json:"rating,omitempty"`
	Reviews      int          `json:"reviews,omitempty"`
	UserID       string       `json:"user_id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Location renders the display location ("City, State").
func (p Property) Location() string {
	return fmt.Sprintf("%s, %s", p.City, p.State)
}

// CondensedProperty is the reduced projection stored in the favorites and
// comparison collections. It is a value copy taken at add time; it does not
// track later changes to the source Property.
type CondensedProperty struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Price       float64      `json:"price"`
	Location    string       `json:"location"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Area        float64      `json:"area"`
	Type        PropertyType `json:"type"`
	Image       string       `json:"image"`
	Description string       `json:"description,omitempty"`
	Amenities   []string     `json:"amenities,omitempty"`
	Rating      float64      `json:"rating,omitempty"`
	Reviews     int          `json:"reviews,omitempty"`
}

// Condense projects a Property to its collection form.
func Condense(p Property) CondensedProperty {
	c := CondensedProperty{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Location:    p.Location(),
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Area:        p.AreaSqft,
		Type:        p.PropertyType,
		Description: p.Description,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
	}
	if len(p.Images) > 0 {
		c.Image = p.Images[0]
	}
	if len(p.Amenities) > 0 {
		c.Amenities = append([]string(nil), p.Amenities...)
	}
	return c
}
