package repository

import (
	"fmt"
	"strings"

	"github.com/rpattn/hrapi/internal/filter"
)

// specification accumulates the WHERE conditions and positional arguments
// derived from a criteria object. All conditions are joined with AND.
type specification struct {
	args  *[]any
	where []string
}

func newSpecification() *specification {
	return &specification{args: new([]any)}
}

// nested shares the argument list so placeholders stay globally numbered.
func (s *specification) nested() *specification {
	return &specification{args: s.args}
}

func (s *specification) addArg(value any) string {
	*s.args = append(*s.args, value)
	return fmt.Sprintf("$%d", len(*s.args))
}

func (s *specification) add(format string, a ...any) {
	s.where = append(s.where, fmt.Sprintf(format, a...))
}

// Args returns the positional arguments in placeholder order.
func (s *specification) Args() []any {
	return *s.args
}

// Where renders the conjunction, or "" when nothing constrains the query.
func (s *specification) Where() string {
	if len(s.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(s.where, " AND ")
}

func equality[T any](s *specification, column string, f *filter.Filter[T]) {
	if f == nil {
		return
	}
	if f.Equals != nil {
		s.add("%s = %s", column, s.addArg(*f.Equals))
	}
	if f.NotEquals != nil {
		s.add("%s <> %s", column, s.addArg(*f.NotEquals))
	}
	if f.Specified != nil {
		if *f.Specified {
			s.add("%s IS NOT NULL", column)
		} else {
			s.add("%s IS NULL", column)
		}
	}
	if f.In != nil {
		s.add("%s = ANY(%s)", column, s.addArg(f.In))
	}
	if f.NotIn != nil {
		s.add("%s <> ALL(%s)", column, s.addArg(f.NotIn))
	}
}

func ranged[T any](s *specification, column string, f *filter.RangeFilter[T]) {
	if f == nil {
		return
	}
	equality(s, column, &f.Filter)
	if f.GreaterThan != nil {
		s.add("%s > %s", column, s.addArg(*f.GreaterThan))
	}
	if f.LessThan != nil {
		s.add("%s < %s", column, s.addArg(*f.LessThan))
	}
	if f.GreaterThanOrEqual != nil {
		s.add("%s >= %s", column, s.addArg(*f.GreaterThanOrEqual))
	}
	if f.LessThanOrEqual != nil {
		s.add("%s <= %s", column, s.addArg(*f.LessThanOrEqual))
	}
}

func text(s *specification, column string, f *filter.StringFilter) {
	if f == nil {
		return
	}
	equality(s, column, &f.Filter)
	if f.Contains != nil {
		s.add("UPPER(%s) LIKE %s", column, s.addArg(likePattern(*f.Contains)))
	}
	if f.DoesNotContain != nil {
		s.add("UPPER(%s) NOT LIKE %s", column, s.addArg(likePattern(*f.DoesNotContain)))
	}
}

// related constrains a to-many relationship through a correlated subquery.
// from is the subquery's FROM/WHERE head correlating it with the outer row,
// e.g. "rel_job__task rt WHERE rt.job_id = j.id"; column is the related id.
func related(s *specification, from, column string, f *filter.LongFilter) {
	if f == nil {
		return
	}
	if f.Specified != nil {
		if *f.Specified {
			s.add("EXISTS (SELECT 1 FROM %s)", from)
		} else {
			s.add("NOT EXISTS (SELECT 1 FROM %s)", from)
		}
	}
	rest := f.Copy()
	rest.Specified = nil
	inner := s.nested()
	ranged(inner, column, rest)
	if len(inner.where) > 0 {
		s.add("EXISTS (SELECT 1 FROM %s AND %s)", from, strings.Join(inner.where, " AND "))
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(value string) string {
	return "%" + strings.ToUpper(likeEscaper.Replace(value)) + "%"
}
