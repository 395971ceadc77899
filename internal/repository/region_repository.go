package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
)

var regionTable = table{
	name:    "region",
	alias:   "r",
	columns: []string{"id", "region_name"},
	sortable: map[string]string{
		"id":         "id",
		"regionName": "region_name",
	},
}

type regionRepository struct {
	db Querier
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(db Querier) RegionRepository {
	return &regionRepository{db: db}
}

func scanRegion(row pgx.Row) (domain.Region, error) {
	var e domain.Region
	err := row.Scan(&e.ID, &e.RegionName)
	return e, err
}

func regionSpecification(c *criteria.RegionCriteria) *specification {
	s := newSpecification()
	if c == nil {
		return s
	}
	t := regionTable
	ranged(s, t.col("id"), c.ID)
	text(s, t.col("region_name"), c.RegionName)
	return s
}

func (r *regionRepository) Create(ctx context.Context, e domain.Region) (domain.Region, error) {
	created, err := scanRegion(r.db.QueryRow(ctx,
		`INSERT INTO region (region_name) VALUES ($1) RETURNING id, region_name`,
		e.RegionName,
	))
	if err != nil {
		return domain.Region{}, fmt.Errorf("failed to create region: %w", constraintError(err))
	}
	return created, nil
}

func (r *regionRepository) Update(ctx context.Context, e domain.Region) (domain.Region, error) {
	updated, err := scanRegion(r.db.QueryRow(ctx,
		`UPDATE region SET region_name = $2 WHERE id = $1 RETURNING id, region_name`,
		e.ID, e.RegionName,
	))
	if err != nil {
		return domain.Region{}, notFound(err, regionTable, e.ID, "update")
	}
	return updated, nil
}

func (r *regionRepository) GetByID(ctx context.Context, id int64) (domain.Region, error) {
	return getByID(ctx, r.db, regionTable, id, scanRegion)
}

func (r *regionRepository) FindByCriteria(ctx context.Context, c *criteria.RegionCriteria, page domain.Page) ([]domain.Region, int64, error) {
	return findPage(ctx, r.db, regionTable, regionSpecification(c), c.IsDistinct(), page, scanRegion)
}

func (r *regionRepository) CountByCriteria(ctx context.Context, c *criteria.RegionCriteria) (int64, error) {
	return count(ctx, r.db, regionTable, regionSpecification(c), c.IsDistinct())
}

func (r *regionRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, regionTable, id)
}

func (r *regionRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, regionTable, id)
}
