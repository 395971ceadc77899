package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
)

var countryTable = table{
	name:    "country",
	alias:   "c",
	columns: []string{"id", "country_name", "region_id"},
	sortable: map[string]string{
		"id":          "id",
		"countryName": "country_name",
	},
}

type countryRepository struct {
	db Querier
}

// NewCountryRepository creates a new country repository
func NewCountryRepository(db Querier) CountryRepository {
	return &countryRepository{db: db}
}

func scanCountry(row pgx.Row) (domain.Country, error) {
	var (
		e        domain.Country
		regionID *int64
	)
	if err := row.Scan(&e.ID, &e.CountryName, &regionID); err != nil {
		return domain.Country{}, err
	}
	if regionID != nil {
		e.Region = &domain.Region{ID: *regionID}
	}
	return e, nil
}

func countrySpecification(c *criteria.CountryCriteria) *specification {
	s := newSpecification()
	if c == nil {
		return s
	}
	t := countryTable
	ranged(s, t.col("id"), c.ID)
	text(s, t.col("country_name"), c.CountryName)
	ranged(s, t.col("region_id"), c.RegionID)
	return s
}

func regionID(r *domain.Region) *int64 {
	if r == nil {
		return nil
	}
	return &r.ID
}

func (r *countryRepository) Create(ctx context.Context, e domain.Country) (domain.Country, error) {
	created, err := scanCountry(r.db.QueryRow(ctx,
		`INSERT INTO country (country_name, region_id) VALUES ($1, $2)
		 RETURNING id, country_name, region_id`,
		e.CountryName, regionID(e.Region),
	))
	if err != nil {
		return domain.Country{}, fmt.Errorf("failed to create country: %w", constraintError(err))
	}
	return created, nil
}

func (r *countryRepository) Update(ctx context.Context, e domain.Country) (domain.Country, error) {
	updated, err := scanCountry(r.db.QueryRow(ctx,
		`UPDATE country SET country_name = $2, region_id = $3 WHERE id = $1
		 RETURNING id, country_name, region_id`,
		e.ID, e.CountryName, regionID(e.Region),
	))
	if err != nil {
		return domain.Country{}, notFound(err, countryTable, e.ID, "update")
	}
	return updated, nil
}

func (r *countryRepository) GetByID(ctx context.Context, id int64) (domain.Country, error) {
	return getByID(ctx, r.db, countryTable, id, scanCountry)
}

func (r *countryRepository) FindByCriteria(ctx context.Context, c *criteria.CountryCriteria, page domain.Page) ([]domain.Country, int64, error) {
	return findPage(ctx, r.db, countryTable, countrySpecification(c), c.IsDistinct(), page, scanCountry)
}

func (r *countryRepository) CountByCriteria(ctx context.Context, c *criteria.CountryCriteria) (int64, error) {
	return count(ctx, r.db, countryTable, countrySpecification(c), c.IsDistinct())
}

func (r *countryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, countryTable, id)
}

func (r *countryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, countryTable, id)
}
