package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SortDirection represents ordering direction for sortable fields.
type SortDirection string

const (
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

// ErrInvalidPage is returned for malformed page, size or sort parameters.
var ErrInvalidPage = errors.New("invalid page request")

// Sort is one ordering term; Field is the API attribute name (e.g. "startDate").
type Sort struct {
	Field     string
	Direction SortDirection
}

// Page captures pagination and ordering preferences for list queries.
type Page struct {
	Number int
	Size   int
	Sort   []Sort
}

// Offset returns the row offset of the page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Unpaged returns a page that selects every row.
func Unpaged() Page {
	return Page{Number: 0, Size: 0}
}

// ParsePage reads `page`, `size` and repeated `sort=field,dir` parameters.
func ParsePage(page, size string, sorts []string) (Page, error) {
	p := Page{Number: 0, Size: DefaultPageSize}
	if raw := strings.TrimSpace(page); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Page{}, fmt.Errorf("%w: page must be zero or positive", ErrInvalidPage)
		}
		p.Number = n
	}
	if p.Number > math.MaxInt/MaxPageSize {
		return Page{}, fmt.Errorf("%w: page %d is out of range", ErrInvalidPage, p.Number)
	}
	if raw := strings.TrimSpace(size); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Page{}, fmt.Errorf("%w: size must be a positive integer", ErrInvalidPage)
		}
		p.Size = min(n, MaxPageSize)
	}
	for _, raw := range sorts {
		s, err := parseSort(raw)
		if err != nil {
			return Page{}, err
		}
		p.Sort = append(p.Sort, s)
	}
	return p, nil
}

func parseSort(raw string) (Sort, error) {
	field, dir, _ := strings.Cut(raw, ",")
	s := Sort{Field: strings.TrimSpace(field), Direction: SortDirectionAsc}
	if s.Field == "" {
		return Sort{}, fmt.Errorf("%w: sort field is required", ErrInvalidPage)
	}
	switch SortDirection(strings.ToLower(strings.TrimSpace(dir))) {
	case "", SortDirectionAsc:
	case SortDirectionDesc:
		s.Direction = SortDirectionDesc
	default:
		return Sort{}, fmt.Errorf("%w: invalid sort direction %q", ErrInvalidPage, dir)
	}
	return s, nil
}
