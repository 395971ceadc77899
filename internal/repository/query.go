package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rpattn/hrapi/internal/domain"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidSort is returned for a sort field that is not sortable.
	ErrInvalidSort = errors.New("invalid sort property")
	// ErrConstraint is returned when a write violates a foreign key, unique
	// or check constraint, e.g. a reference to a missing row.
	ErrConstraint = errors.New("constraint violation")
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// table describes how one entity is selected and ordered.
type table struct {
	name     string
	alias    string
	columns  []string
	sortable map[string]string
}

func (t table) from() string {
	return t.name + " " + t.alias
}

func (t table) col(name string) string {
	return t.alias + "." + name
}

func (t table) selectList() string {
	cols := make([]string, len(t.columns))
	for i, c := range t.columns {
		cols[i] = t.col(c)
	}
	return strings.Join(cols, ", ")
}

func (t table) orderBy(sorts []domain.Sort) (string, error) {
	orderings := make([]string, 0, len(sorts)+1)
	hasID := false
	for _, s := range sorts {
		column, ok := t.sortable[s.Field]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrInvalidSort, s.Field)
		}
		if column == "id" {
			hasID = true
		}
		direction := "ASC"
		if s.Direction == domain.SortDirectionDesc {
			direction = "DESC"
		}
		orderings = append(orderings, fmt.Sprintf("%s %s", t.col(column), direction))
	}
	if !hasID {
		orderings = append(orderings, t.col("id")+" ASC")
	}
	return " ORDER BY " + strings.Join(orderings, ", "), nil
}

func (t table) selectQuery(spec *specification, distinct bool, page domain.Page) (string, error) {
	order, err := t.orderBy(page.Sort)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("SELECT ")
	if distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString(t.selectList())
	b.WriteString(" FROM ")
	b.WriteString(t.from())
	b.WriteString(spec.Where())
	b.WriteString(order)
	if page.Size > 0 {
		fmt.Fprintf(&b, " LIMIT %s OFFSET %s", spec.addArg(page.Size), spec.addArg(page.Offset()))
	}
	return b.String(), nil
}

func (t table) countQuery(spec *specification, distinct bool) string {
	target := t.col("id")
	if distinct {
		target = "DISTINCT " + target
	}
	return fmt.Sprintf("SELECT COUNT(%s) FROM %s%s", target, t.from(), spec.Where())
}

func (t table) byIDQuery() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.selectList(), t.from(), t.col("id"))
}

func findPage[E any](
	ctx context.Context,
	q Querier,
	t table,
	spec *specification,
	distinct bool,
	page domain.Page,
	scan func(pgx.Row) (E, error),
) ([]E, int64, error) {
	total, err := count(ctx, q, t, spec, distinct)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []E{}, 0, nil
	}

	sql, err := t.selectQuery(spec, distinct, page)
	if err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, sql, spec.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query %s: %w", t.name, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (E, error) {
		return scan(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan %s: %w", t.name, err)
	}
	return items, total, nil
}

// count must run before selectQuery appends the paging arguments.
func count(ctx context.Context, q Querier, t table, spec *specification, distinct bool) (int64, error) {
	var total int64
	if err := q.QueryRow(ctx, t.countQuery(spec, distinct), spec.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.name, err)
	}
	return total, nil
}

func getByID[E any](ctx context.Context, q Querier, t table, id int64, scan func(pgx.Row) (E, error)) (E, error) {
	e, err := scan(q.QueryRow(ctx, t.byIDQuery(), id))
	if err != nil {
		var zero E
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, fmt.Errorf("%s %d: %w", t.name, id, ErrNotFound)
		}
		return zero, fmt.Errorf("failed to get %s: %w", t.name, err)
	}
	return e, nil
}

func exists(ctx context.Context, q Querier, t table, id int64) (bool, error) {
	var found bool
	sql := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", t.name)
	if err := q.QueryRow(ctx, sql, id).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", t.name, err)
	}
	return found, nil
}

func deleteByID(ctx context.Context, q Querier, t table, id int64) error {
	tag, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", t.name, constraintError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", t.name, id, ErrNotFound)
	}
	return nil
}

// notFound maps pgx.ErrNoRows from a RETURNING clause to ErrNotFound.
func notFound(err error, t table, id int64, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", t.name, id, ErrNotFound)
	}
	return fmt.Errorf("failed to %s %s: %w", action, t.name, constraintError(err))
}

// constraintError tags integrity violations (SQLSTATE class 23) with
// ErrConstraint and leaves other errors untouched.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}
	return err
}
