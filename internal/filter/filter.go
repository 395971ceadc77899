// Package filter holds the typed, optional predicates that criteria objects are
// built from. A nil predicate field always means "no constraint".
package filter

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// Filter carries the predicates shared by every attribute type.
type Filter[T any] struct {
	Equals    *T
	NotEquals *T
	Specified *bool
	In        []T
	NotIn     []T
}

// RangeFilter adds ordering bounds for numeric and temporal attributes.
type RangeFilter[T any] struct {
	Filter[T]
	GreaterThan        *T
	LessThan           *T
	GreaterThanOrEqual *T
	LessThanOrEqual    *T
}

// StringFilter adds substring matching for text attributes.
type StringFilter struct {
	Filter[string]
	Contains       *string
	DoesNotContain *string
}

type (
	LongFilter    = RangeFilter[int64]
	InstantFilter = RangeFilter[time.Time]
	BooleanFilter = Filter[bool]
)

// Copy returns an independent copy of f; nil stays nil.
func (f *Filter[T]) Copy() *Filter[T] {
	if f == nil {
		return nil
	}
	c := f.clone()
	return &c
}

func (f *Filter[T]) clone() Filter[T] {
	return Filter[T]{
		Equals:    clonePtr(f.Equals),
		NotEquals: clonePtr(f.NotEquals),
		Specified: clonePtr(f.Specified),
		In:        slices.Clone(f.In),
		NotIn:     slices.Clone(f.NotIn),
	}
}

// Copy returns an independent copy of f; nil stays nil.
func (f *RangeFilter[T]) Copy() *RangeFilter[T] {
	if f == nil {
		return nil
	}
	return &RangeFilter[T]{
		Filter:             f.Filter.clone(),
		GreaterThan:        clonePtr(f.GreaterThan),
		LessThan:           clonePtr(f.LessThan),
		GreaterThanOrEqual: clonePtr(f.GreaterThanOrEqual),
		LessThanOrEqual:    clonePtr(f.LessThanOrEqual),
	}
}

// Copy returns an independent copy of f; nil stays nil.
func (f *StringFilter) Copy() *StringFilter {
	if f == nil {
		return nil
	}
	return &StringFilter{
		Filter:         f.Filter.clone(),
		Contains:       clonePtr(f.Contains),
		DoesNotContain: clonePtr(f.DoesNotContain),
	}
}

// IsEmpty reports whether no predicate is set.
func (f *Filter[T]) IsEmpty() bool {
	return f == nil || len(f.parts()) == 0
}

// IsEmpty reports whether no predicate is set.
func (f *RangeFilter[T]) IsEmpty() bool {
	return f == nil || len(f.parts()) == 0
}

// IsEmpty reports whether no predicate is set.
func (f *StringFilter) IsEmpty() bool {
	return f == nil || len(f.parts()) == 0
}

func (f *Filter[T]) String() string {
	if f == nil {
		return "<nil>"
	}
	return render(typeName[T](), f.parts())
}

func (f *RangeFilter[T]) String() string {
	if f == nil {
		return "<nil>"
	}
	return render(typeName[T](), f.parts())
}

func (f *StringFilter) String() string {
	if f == nil {
		return "<nil>"
	}
	return render("StringFilter", f.parts())
}

func (f *Filter[T]) parts() []string {
	var p []string
	p = appendPtr(p, "equals", f.Equals)
	p = appendPtr(p, "notEquals", f.NotEquals)
	p = appendPtr(p, "specified", f.Specified)
	p = appendList(p, "in", f.In)
	p = appendList(p, "notIn", f.NotIn)
	return p
}

func (f *RangeFilter[T]) parts() []string {
	p := f.Filter.parts()
	p = appendPtr(p, "greaterThan", f.GreaterThan)
	p = appendPtr(p, "lessThan", f.LessThan)
	p = appendPtr(p, "greaterThanOrEqual", f.GreaterThanOrEqual)
	p = appendPtr(p, "lessThanOrEqual", f.LessThanOrEqual)
	return p
}

func (f *StringFilter) parts() []string {
	p := f.Filter.parts()
	p = appendPtr(p, "contains", f.Contains)
	p = appendPtr(p, "doesNotContain", f.DoesNotContain)
	return p
}

// Map converts the generic predicates of f into a Filter over another type.
// It is used where the storage representation differs from the domain one,
// e.g. enums persisted as text.
func Map[T, U any](f *Filter[T], fn func(T) U) *Filter[U] {
	if f == nil {
		return nil
	}
	out := &Filter[U]{Specified: clonePtr(f.Specified)}
	if f.Equals != nil {
		v := fn(*f.Equals)
		out.Equals = &v
	}
	if f.NotEquals != nil {
		v := fn(*f.NotEquals)
		out.NotEquals = &v
	}
	out.In = mapSlice(f.In, fn)
	out.NotIn = mapSlice(f.NotIn, fn)
	return out
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	if in == nil {
		return nil
	}
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func appendPtr[T any](parts []string, name string, p *T) []string {
	if p == nil {
		return parts
	}
	return append(parts, name+"="+formatValue(*p))
}

func appendList[T any](parts []string, name string, values []T) []string {
	if values == nil {
		return parts
	}
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = formatValue(v)
	}
	return append(parts, name+"=["+strings.Join(items, ", ")+"]")
}

func render(name string, parts []string) string {
	return name + " [" + strings.Join(parts, ", ") + "]"
}

func formatValue(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return fmt.Sprint(v)
}

func typeName[T any]() string {
	var zero T
	switch any(zero).(type) {
	case int64:
		return "LongFilter"
	case time.Time:
		return "InstantFilter"
	case bool:
		return "BooleanFilter"
	case string:
		return "StringFilter"
	}
	return reflect.TypeOf(zero).Name() + "Filter"
}
