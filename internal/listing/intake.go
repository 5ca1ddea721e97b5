// Package listing implements the multi-step property submission flow:
// a draft accumulated across form steps, schema validation of the
// assembled payload, and the final mint of a Property record.
package listing

import (
	"encoding/json"
	"fmt"
	"time"

	stderrors "estatehub/internal/common/errors"
	"estatehub/internal/common/logger"
	"estatehub/internal/models"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

const draftSchema = `{
  "type": "object",
  "required": ["title", "description", "price", "property_type",
               "bedrooms", "bathrooms", "area_sqft",
               "address", "city", "state", "zip_code"],
  "properties": {
    "title":         {"type": "string", "minLength": 5, "maxLength": 120},
    "description":   {"type": "string", "minLength": 20},
    "price":         {"type": "number", "exclusiveMinimum": 0},
    "property_type": {"type": "string", "enum": ["sale", "rent"]},
    "bedrooms":      {"type": "integer", "minimum": 0},
    "bathrooms":     {"type": "integer", "minimum": 0},
    "area_sqft":     {"type": "number", "exclusiveMinimum": 0},
    "address":       {"type": "string", "minLength": 1},
    "city":          {"type": "string", "minLength": 1},
    "state":         {"type": "string", "minLength": 1},
    "zip_code":      {"type": "string", "minLength": 1},
    "images":        {"type": "array", "items": {"type": "string"}},
    "amenities":     {"type": "array", "items": {"type": "string"}},
    "contact_name":  {"type": "string"},
    "contact_email": {"type": "string", "pattern": "^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$"},
    "contact_phone": {"type": "string"}
  }
}`

// Draft is the accumulated form state across submission steps.
type Draft struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Price        float64             `json:"price"`
	PropertyType models.PropertyType `json:"property_type"`
	Bedrooms     int                 `json:"bedrooms"`
	Bathrooms    int                 `json:"bathrooms"`
	AreaSqft     float64             `json:"area_sqft"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	ZipCode      string              `json:"zip_code"`
	Images       []string            `json:"images,omitempty"`
	Amenities    []string            `json:"amenities,omitempty"`
	ContactName  string              `json:"contact_name,omitempty"`
	ContactEmail string              `json:"contact_email,omitempty"`
	ContactPhone string              `json:"contact_phone,omitempty"`
}

// FieldError is one schema violation, addressed to a form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Intake accumulates a draft and validates it before submission.
type Intake struct {
	draft  Draft
	log    logger.Logger
	schema *gojsonschema.Schema
}

// NewIntake starts an empty submission flow.
func NewIntake(log logger.Logger) (*Intake, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(draftSchema))
	if err != nil {
		return nil, fmt.Errorf("compile listing schema: %w", err)
	}
	return &Intake{
		log:    log.WithFields(map[string]interface{}{"component": "listing-intake"}),
		schema: schema,
	}, nil
}

// SetDetails fills the first form step.
func (i *Intake) SetDetails(title, description string, price float64, propertyType models.PropertyType) {
	i.draft.Title = title
	i.draft.Description = description
	i.draft.Price = price
	i.draft.PropertyType = propertyType
}

// SetLocation fills the address step.
func (i *Intake) SetLocation(address, city, state, zipCode string) {
	i.draft.Address = address
	i.draft.City = city
	i.draft.State = state
	i.draft.ZipCode = zipCode
}

// SetFeatures fills the physical-attributes step.
func (i *Intake) SetFeatures(bedrooms, bathrooms int, areaSqft float64, amenities []string) {
	i.draft.Bedrooms = bedrooms
	i.draft.Bathrooms = bathrooms
	i.draft.AreaSqft = areaSqft
	i.draft.Amenities = append([]string(nil), amenities...)
}

// AddPhoto appends an image reference; order is display order.
func (i *Intake) AddPhoto(url string) {
	i.draft.Images = append(i.draft.Images, url)
}

// SetContact fills the contact step.
func (i *Intake) SetContact(name, email, phone string) {
	i.draft.ContactName = name
	i.draft.ContactEmail = email
	i.draft.ContactPhone = phone
}

// Draft returns a copy of the accumulated form state.
func (i *Intake) Draft() Draft {
	return i.draft
}

// Validate checks the assembled draft against the listing schema and
// returns one error per violated field, nil when valid.
func (i *Intake) Validate() ([]FieldError, error) {
	payload, err := json.Marshal(i.draft)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}

	result, err := i.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("validate draft: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	fieldErrors := make([]FieldError, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   verr.Field(),
			Message: verr.Description(),
		})
	}
	return fieldErrors, nil
}

// Submit validates the draft and mints the Property record with a fresh id,
// active status and creation timestamps. Validation failures are returned
// as a LISTING_VALIDATION_FAILED error carrying the field details.
func (i *Intake) Submit(userID string) (models.Property, error) {
	fieldErrors, err := i.Validate()
	if err != nil {
		return models.Property{}, err
	}
	if len(fieldErrors) > 0 {
		details, _ := json.Marshal(fieldErrors)
		i.log.Warn("listing rejected", map[string]interface{}{
			"violations": len(fieldErrors),
		})
		return models.Property{}, stderrors.NewListingValidationError(string(details))
	}

	now := time.Now().UTC()
	p := models.Property{
		ID:           uuid.NewString(),
		Title:        i.draft.Title,
		Description:  i.draft.Description,
		Price:        i.draft.Price,
		PropertyType: i.draft.PropertyType,
		Bedrooms:     i.draft.Bedrooms,
		Bathrooms:    i.draft.Bathrooms,
		AreaSqft:     i.draft.AreaSqft,
		Address:      i.draft.Address,
		City:         i.draft.City,
		State:        i.draft.State,
		ZipCode:      i.draft.ZipCode,
		Images:       append([]string(nil), i.draft.Images...),
		Amenities:    append([]string(nil), i.draft.Amenities...),
		Status:       models.StatusActive,
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	i.log.Info("listing submitted", map[string]interface{}{
		"propertyId": p.ID,
		"type":       string(p.PropertyType),
	})
	return p, nil
}
