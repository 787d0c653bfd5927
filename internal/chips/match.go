package chips

import "reflect"

// FilterFunc narrows records to those matching value on key. Match is the
// default; callers can install their own with WithFilterFunc.
type FilterFunc func(records []Record, key FilterKey, value any) []Record

// Predicate is a chip value that decides a match itself. Only MatchPredicate
// invokes predicates; under Match they never match anything.
type Predicate func(fieldValue any) bool

// Match returns the records whose value at any field in key equals target, or,
// for sequence-valued fields, contains target. Records missing every field are
// dropped. Input order is preserved and records are never modified.
func Match(records []Record, key FilterKey, target any) []Record {
	return filterRecords(records, key, func(v any) bool {
		return fieldMatches(v, target)
	})
}

// MatchPredicate behaves like Match except that a Predicate target is called
// with each field value (each element, for sequence fields).
func MatchPredicate(records []Record, key FilterKey, target any) []Record {
	pred, ok := target.(Predicate)
	if !ok {
		if fn, isFunc := target.(func(any) bool); isFunc {
			pred, ok = fn, true
		}
	}
	if !ok {
		return Match(records, key, target)
	}
	return filterRecords(records, key, func(v any) bool {
		if elems, isSeq := sequence(v); isSeq {
			for _, e := range elems {
				if pred(e) {
					return true
				}
			}
			return false
		}
		return pred(v)
	})
}

func filterRecords(records []Record, key FilterKey, keep func(v any) bool) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		for _, field := range key {
			v, ok := r[field]
			if ok && keep(v) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func fieldMatches(v, target any) bool {
	if elems, ok := sequence(v); ok {
		for _, e := range elems {
			if strictEqual(e, target) {
				return true
			}
		}
		return false
	}
	return strictEqual(v, target)
}

// sequence returns the elements of v when v is a slice or array. Strings are
// scalars here.
func sequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case nil, string:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// strictEqual compares without coercion: both dynamic types must be identical
// and comparable.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	defer func() {
		// Interface-typed struct fields can still hold uncomparable values.
		_ = recover()
	}()
	return a == b
}
