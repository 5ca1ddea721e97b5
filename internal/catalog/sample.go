package catalog

import (
	"time"

	"estatehub/internal/models"
)

// SampleProperties are the seeded listings used when no database catalog is
// configured.
func SampleProperties() []models.Property {
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	return []models.Property{
		{
			ID:           "prop-001",
			Title:        "Modern Downtown Loft",
			Description:  "Spacious loft with floor-to-ceiling windows and skyline views.",
			Price:        850000,
			PropertyType: models.TypeSale,
			Bedrooms:     2,
			Bathrooms:    2,
			AreaSqft:     1400,
			Address:      "120 Mercer St",
			City:         "New York City",
			State:        "NY",
			ZipCode:      "10012",
			Images:       []string{"https://images.estatehub.example/prop-001/main.jpg"},
			Amenities:    []string{"Gym", "Doorman", "Rooftop Deck"},
			Status:       models.StatusActive,
			Rating:       4.7,
			Reviews:      32,
			UserID:       "user-owner-1",
			CreatedAt:    base,
			UpdatedAt:    base,
		},
		{
			ID:           "prop-002",
			Title:        "Sunny Venice Bungalow",
			Description:  "Charming two-bedroom bungalow three blocks from the beach.",
			Price:        4200,
			PropertyType: models.TypeRent,
			Bedrooms:     2,
			Bathrooms:    1,
			AreaSqft:     950,
			Address:      "14 Breeze Ave",
			City:         "Los Angeles",
			State:        "CA",
			ZipCode:      "90291",
			Images:       []string{"https://images.estatehub.example/prop-002/main.jpg"},
			Amenities:    []string{"Garden", "Parking", "Pet Friendly"},
			Status:       models.StatusActive,
			Rating:       4.5,
			Reviews:      18,
			UserID:       "user-owner-2",
			CreatedAt:    base.AddDate(0, 0, 4),
			UpdatedAt:    base.AddDate(0, 0, 4),
		},
		{
			ID:           "prop-003",
			Title:        "Austin Hill Country Home",
			Description:  "Four-bedroom family home on a quiet cul-de-sac with a pool.",
			Price:        675000,
			PropertyType: models.TypeSale,
			Bedrooms:     4,
			Bathrooms:    3,
			AreaSqft:     2600,
			Address:      "88 Lakeview Dr",
			City:         "Austin",
			State:        "TX",
			ZipCode:      "78731",
			Images:       []string{"https://images.estatehub.example/prop-003/main.jpg"},
			Amenities:    []string{"Pool", "Garage", "Fireplace"},
			Status:       models.StatusActive,
			Rating:       4.9,
			Reviews:      41,
			UserID:       "user-owner-3",
			CreatedAt:    base.AddDate(0, 0, 9),
			UpdatedAt:    base.AddDate(0, 0, 9),
		},
		{
			ID:           "prop-004",
			Title:        "Miami Waterfront Condo",
			Description:  "High-rise condo with private balcony overlooking Biscayne Bay.",
			Price:        3100,
			PropertyType: models.TypeRent,
			Bedrooms:     1,
			Bathrooms:    1,
			AreaSqft:     780,
			Address:      "501 Bayshore Blvd",
			City:         "Miami",
			State:        "FL",
			ZipCode:      "33131",
			Images:       []string{"https://images.estatehub.example/prop-004/main.jpg"},
			Amenities:    []string{"Pool", "Gym", "Concierge"},
			Status:       models.StatusActive,
			Rating:       4.3,
			Reviews:      12,
			UserID:       "user-owner-4",
			CreatedAt:    base.AddDate(0, 0, 14),
			UpdatedAt:    base.AddDate(0, 0, 14),
		},
		{
			ID:           "prop-005",
			Title:        "Victorian Terrace in Kensington",
			Description:  "Restored three-storey terrace with period features throughout.",
			Price:        1250000,
			PropertyType: models.TypeSale,
			Bedrooms:     3,
			Bathrooms:    2,
			AreaSqft:     1850,
			Address:      "7 Holland Park Rd",
			City:         "London",
			State:        "England",
			ZipCode:      "W14 8LZ",
			Images:       []string{"https://images.estatehub.example/prop-005/main.jpg"},
			Amenities:    []string{"Garden", "Fireplace"},
			Status:       models.StatusActive,
			Rating:       4.8,
			Reviews:      27,
			UserID:       "user-owner-5",
			CreatedAt:    base.AddDate(0, 0, 20),
			UpdatedAt:    base.AddDate(0, 0, 20),
		},
		{
			ID:           "prop-006",
			Title:        "Toronto Harbourfront Apartment",
			Description:  "Bright one-bedroom with lake views, steps from the waterfront.",
			Price:        2400,
			PropertyType: models.TypeRent,
			Bedrooms:     1,
			Bathrooms:    1,
			AreaSqft:     640,
			Address:      "33 Queens Quay W",
			City:         "Toronto",
			State:        "Ontario",
			ZipCode:      "M5J 2Y5",
			Images:       []string{"https://images.estatehub.example/prop-006/main.jpg"},
			Amenities:    []string{"Gym", "Concierge", "Pet Friendly"},
			Status:       models.StatusActive,
			Rating:       4.4,
			Reviews:      9,
			UserID:       "user-owner-6",
			CreatedAt:    base.AddDate(0, 0, 25),
			UpdatedAt:    base.AddDate(0, 0, 25),
		},
		{
			ID:           "prop-007",
			Title:        "Sydney Harbour View Penthouse",
			Description:  "Top-floor penthouse with wraparound terrace and harbour views.",
			Price:        2950000,
			PropertyType: models.TypeSale,
			Bedrooms:     3,
			Bathrooms:    3,
			AreaSqft:     2100,
			Address:      "2 Circular Quay E",
			City:         "Sydney",
			State:        "New South Wales",
			ZipCode:      "2000",
			Images:       []string{"https://images.estatehub.example/prop-007/main.jpg"},
			Amenities:    []string{"Pool", "Gym", "Rooftop Deck", "Concierge"},
			Status:       models.StatusActive,
			Rating:       5.0,
			Reviews:      53,
			UserID:       "user-owner-7",
			CreatedAt:    base.AddDate(0, 1, 0),
			UpdatedAt:    base.AddDate(0, 1, 0),
		},
		{
			ID:           "prop-008",
			Title:        "Boston Back Bay Brownstone",
			Description:  "Classic brownstone flat with exposed brick and bay windows.",
			Price:        3600,
			PropertyType: models.TypeRent,
			Bedrooms:     2,
			Bathrooms:    1,
			AreaSqft:     1100,
			Address:      "212 Commonwealth Ave",
			City:         "Boston",
			State:        "MA",
			ZipCode:      "02116",
			Images:       []string{"https://images.estatehub.example/prop-008/main.jpg"},
			Amenities:    []string{"Fireplace", "Laundry", "Pet Friendly"},
			Status:       models.StatusActive,
			Rating:       4.6,
			Reviews:      22,
			UserID:       "user-owner-8",
			CreatedAt:    base.AddDate(0, 1, 6),
			UpdatedAt:    base.AddDate(0, 1, 6),
		},
	}
}
