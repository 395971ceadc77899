package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
)

var locationTable = table{
	name:    "location",
	alias:   "l",
	columns: []string{"id", "street_address", "postal_code", "city", "state_province", "country_id"},
	sortable: map[string]string{
		"id":            "id",
		"streetAddress": "street_address",
		"postalCode":    "postal_code",
		"city":          "city",
		"stateProvince": "state_province",
	},
}

type locationRepository struct {
	db Querier
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db Querier) LocationRepository {
	return &locationRepository{db: db}
}

func scanLocation(row pgx.Row) (domain.Location, error) {
	var (
		e         domain.Location
		countryID *int64
	)
	if err := row.Scan(&e.ID, &e.StreetAddress, &e.PostalCode, &e.City, &e.StateProvince, &countryID); err != nil {
		return domain.Location{}, err
	}
	if countryID != nil {
		e.Country = &domain.Country{ID: *countryID}
	}
	return e, nil
}

func locationSpecification(c *criteria.LocationCriteria) *specification {
	s := newSpecification()
	if c == nil {
		return s
	}
	t := locationTable
	ranged(s, t.col("id"), c.ID)
	text(s, t.col("street_address"), c.StreetAddress)
	text(s, t.col("postal_code"), c.PostalCode)
	text(s, t.col("city"), c.City)
	text(s, t.col("state_province"), c.StateProvince)
	ranged(s, t.col("country_id"), c.CountryID)
	return s
}

func countryID(c *domain.Country) *int64 {
	if c == nil {
		return nil
	}
	return &c.ID
}

const locationReturning = `RETURNING id, street_address, postal_code, city, state_province, country_id`

func (r *locationRepository) Create(ctx context.Context, e domain.Location) (domain.Location, error) {
	created, err := scanLocation(r.db.QueryRow(ctx,
		`INSERT INTO location (street_address, postal_code, city, state_province, country_id)
		 VALUES ($1, $2, $3, $4, $5) `+locationReturning,
		e.StreetAddress, e.PostalCode, e.City, e.StateProvince, countryID(e.Country),
	))
	if err != nil {
		return domain.Location{}, fmt.Errorf("failed to create location: %w", constraintError(err))
	}
	return created, nil
}

func (r *locationRepository) Update(ctx context.Context, e domain.Location) (domain.Location, error) {
	updated, err := scanLocation(r.db.QueryRow(ctx,
		`UPDATE location SET street_address = $2, postal_code = $3, city = $4,
		 state_province = $5, country_id = $6 WHERE id = $1 `+locationReturning,
		e.ID, e.StreetAddress, e.PostalCode, e.City, e.StateProvince, countryID(e.Country),
	))
	if err != nil {
		return domain.Location{}, notFound(err, locationTable, e.ID, "update")
	}
	return updated, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id int64) (domain.Location, error) {
	return getByID(ctx, r.db, locationTable, id, scanLocation)
}

func (r *locationRepository) FindByCriteria(ctx context.Context, c *criteria.LocationCriteria, page domain.Page) ([]domain.Location, int64, error) {
	return findPage(ctx, r.db, locationTable, locationSpecification(c), c.IsDistinct(), page, scanLocation)
}

func (r *locationRepository) CountByCriteria(ctx context.Context, c *criteria.LocationCriteria) (int64, error) {
	return count(ctx, r.db, locationTable, locationSpecification(c), c.IsDistinct())
}

func (r *locationRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, locationTable, id)
}

func (r *locationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, locationTable, id)
}
