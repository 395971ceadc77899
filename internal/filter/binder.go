package filter

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Query-string operator names, as in `startDate.greaterThan=...`.
const (
	OpEquals             = "equals"
	OpNotEquals          = "notEquals"
	OpSpecified          = "specified"
	OpIn                 = "in"
	OpNotIn              = "notIn"
	OpGreaterThan        = "greaterThan"
	OpLessThan           = "lessThan"
	OpGreaterThanOrEqual = "greaterThanOrEqual"
	OpLessThanOrEqual    = "lessThanOrEqual"
	OpContains           = "contains"
	OpDoesNotContain     = "doesNotContain"
)

var (
	// ErrUnsupportedOperator is returned when a known field is used with an
	// operator its filter type does not support.
	ErrUnsupportedOperator = errors.New("unsupported filter operator")
	// ErrMissingValue is returned when an operator is given no value.
	ErrMissingValue = errors.New("missing filter value")
)

// BindError reports a query parameter that could not be bound to a criteria.
type BindError struct {
	Param string
	Value string
	Err   error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("invalid filter parameter %s=%q: %v", e.Param, e.Value, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Binder applies one operator of a query parameter to a criteria field.
type Binder interface {
	Bind(op string, values []string) error
}

// BinderFunc adapts a function to Binder.
type BinderFunc func(op string, values []string) error

func (fn BinderFunc) Bind(op string, values []string) error {
	return fn(op, values)
}

// Parser converts one raw query value into T.
type Parser[T any] func(string) (T, error)

// Decode binds every `field.operator=value` parameter whose field has a binder.
// Parameters without a binder (sort, page, size, ...) are ignored.
func Decode(values url.Values, binders map[string]Binder) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		field, op, _ := strings.Cut(key, ".")
		binder, ok := binders[field]
		if !ok {
			continue
		}
		if err := binder.Bind(op, values[key]); err != nil {
			return &BindError{Param: key, Value: strings.Join(values[key], ","), Err: err}
		}
	}
	return nil
}

// BindFilter returns a Binder that allocates *target on first successful bind.
func BindFilter[T any](target **Filter[T], parse Parser[T]) Binder {
	return BinderFunc(func(op string, values []string) error {
		f := *target
		if f == nil {
			f = &Filter[T]{}
		}
		handled, err := f.apply(op, values, parse)
		if err != nil {
			return err
		}
		if !handled {
			return fmt.Errorf("%w %q", ErrUnsupportedOperator, op)
		}
		*target = f
		return nil
	})
}

// BindRange returns a Binder for range-capable filters.
func BindRange[T any](target **RangeFilter[T], parse Parser[T]) Binder {
	return BinderFunc(func(op string, values []string) error {
		f := *target
		if f == nil {
			f = &RangeFilter[T]{}
		}
		handled, err := f.Filter.apply(op, values, parse)
		if err != nil {
			return err
		}
		if !handled {
			var bound **T
			switch op {
			case OpGreaterThan:
				bound = &f.GreaterThan
			case OpLessThan:
				bound = &f.LessThan
			case OpGreaterThanOrEqual:
				bound = &f.GreaterThanOrEqual
			case OpLessThanOrEqual:
				bound = &f.LessThanOrEqual
			default:
				return fmt.Errorf("%w %q", ErrUnsupportedOperator, op)
			}
			if *bound, err = single(values, parse); err != nil {
				return err
			}
		}
		*target = f
		return nil
	})
}

// BindString returns a Binder for text filters.
func BindString(target **StringFilter) Binder {
	return BinderFunc(func(op string, values []string) error {
		f := *target
		if f == nil {
			f = &StringFilter{}
		}
		handled, err := f.Filter.apply(op, values, ParseString)
		if err != nil {
			return err
		}
		if !handled {
			switch op {
			case OpContains:
				f.Contains, err = single(values, ParseString)
			case OpDoesNotContain:
				f.DoesNotContain, err = single(values, ParseString)
			default:
				return fmt.Errorf("%w %q", ErrUnsupportedOperator, op)
			}
			if err != nil {
				return err
			}
		}
		*target = f
		return nil
	})
}

// BindFlag binds a bare boolean parameter such as `distinct=true`.
func BindFlag(target **bool) Binder {
	return BinderFunc(func(op string, values []string) error {
		if op != "" {
			return fmt.Errorf("%w %q", ErrUnsupportedOperator, op)
		}
		v, err := single(values, ParseBool)
		if err != nil {
			return err
		}
		*target = v
		return nil
	})
}

func (f *Filter[T]) apply(op string, values []string, parse Parser[T]) (bool, error) {
	var err error
	switch op {
	case OpEquals:
		f.Equals, err = single(values, parse)
	case OpNotEquals:
		f.NotEquals, err = single(values, parse)
	case OpSpecified:
		f.Specified, err = single(values, ParseBool)
	case OpIn:
		f.In, err = list(values, parse)
	case OpNotIn:
		f.NotIn, err = list(values, parse)
	default:
		return false, nil
	}
	return true, err
}

func single[T any](values []string, parse Parser[T]) (*T, error) {
	if len(values) == 0 {
		return nil, ErrMissingValue
	}
	v, err := parse(values[0])
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// list accepts both `in=a,b` and `in=a&in=b`.
func list[T any](values []string, parse Parser[T]) ([]T, error) {
	var out []T
	for _, raw := range values {
		for _, item := range strings.Split(raw, ",") {
			if strings.TrimSpace(item) == "" {
				continue
			}
			v, err := parse(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, ErrMissingValue
	}
	return out, nil
}

// ParseString accepts any value.
func ParseString(raw string) (string, error) {
	return raw, nil
}

// ParseInt64 parses a base-10 integer.
func ParseInt64(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

// ParseBool parses true/false.
func ParseBool(raw string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(raw))
}

// ParseInstant parses an RFC 3339 timestamp and normalises it to UTC.
func ParseInstant(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
