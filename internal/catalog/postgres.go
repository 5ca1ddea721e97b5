package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"estatehub/internal/common/database"
	stderrors "estatehub/internal/common/errors"
	"estatehub/internal/models"

	"github.com/lib/pq"
)

const listActiveQuery = `
SELECT id, title, description, price, property_type, bedrooms, bathrooms,
       area_sqft, address, city, state, zip_code, latitude, longitude,
       images, amenities, status, rating, reviews, user_id,
       created_at, updated_at
FROM properties
WHERE status = 'active'
ORDER BY created_at DESC`

// PostgresSource loads the property collection from the listings database.
type PostgresSource struct {
	db *database.PostgresClient
}

// NewPostgresSource wraps an already-connected postgres client.
func NewPostgresSource(db *database.PostgresClient) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Properties(ctx context.Context) ([]models.Property, error) {
	rows, err := s.db.Query(ctx, listActiveQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", stderrors.NewCatalogQueryError("list active properties"), err)
	}
	defer rows.Close()

	var props []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", stderrors.NewCatalogQueryError("iterate properties"), err)
	}
	return props, nil
}

func scanProperty(rows *sql.Rows) (models.Property, error) {
	var (
		p        models.Property
		lat, lng sql.NullFloat64
	)

	err := rows.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.PropertyType,
		&p.Bedrooms, &p.Bathrooms, &p.AreaSqft, &p.Address, &p.City,
		&p.State, &p.ZipCode, &lat, &lng,
		pq.Array(&p.Images), pq.Array(&p.Amenities),
		&p.Status, &p.Rating, &p.Reviews, &p.UserID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return models.Property{}, fmt.Errorf("%w: %v", stderrors.NewCatalogScanError("scan property row"), err)
	}

	if lat.Valid {
		p.Latitude = &lat.Float64
	}
	if lng.Valid {
		p.Longitude = &lng.Float64
	}
	return p, nil
}
