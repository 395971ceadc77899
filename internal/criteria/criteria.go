// Package criteria defines one filter bundle per entity. Each criteria is built
// fresh from a request's query string and handed to the matching repository.
package criteria

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/filter"
)

// Criteria is implemented by every per-entity criteria type.
type Criteria interface {
	fmt.Stringer
	// Binders maps query-string field names to their filter binders.
	Binders() map[string]filter.Binder
	// IsDistinct reports whether result rows must be deduplicated.
	IsDistinct() bool
}

// LanguageFilter filters on domain.Language attributes.
type LanguageFilter = filter.Filter[domain.Language]

func isDistinct(distinct *bool) bool {
	return distinct != nil && *distinct
}

func ensure[T any](p **T) *T {
	if *p == nil {
		*p = new(T)
	}
	return *p
}

func copyFlag(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// set appends name=value when p is non-nil.
func set[P interface {
	*E
	fmt.Stringer
}, E any](parts []string, name string, p P) []string {
	if p == nil {
		return parts
	}
	return append(parts, name+"="+p.String())
}

func render(name string, parts []string, distinct *bool) string {
	if distinct != nil {
		parts = append(parts, "distinct="+strconv.FormatBool(*distinct))
	}
	return name + "{" + strings.Join(parts, ", ") + "}"
}

// equal compares two criteria values structurally. It dereferences first so
// that cmp does not dispatch back into the criteria's own Equal method.
func equal[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp.Equal(*a, *b)
}
