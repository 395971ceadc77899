// Package mapper converts between persisted entities and their transfer
// objects. Every function is a pure structural copy: scalars are copied by
// value and relationships are reduced to a reference DTO holding the related
// id (plus the display field where one is declared).
package mapper

func mapAll[A, B any](in []A, fn func(A) B) []B {
	if in == nil {
		return nil
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// idPtr renders an unsaved (zero) id as an absent one.
func idPtr(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func idValue(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// patch overwrites *dst when src is set.
func patch[T any](dst **T, src *T) {
	if src != nil {
		*dst = clone(src)
	}
}
