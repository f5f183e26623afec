package modules

import "reflect"

// Subtype reports whether candidate is a strict transitive subtype of super.
// A type is never a subtype of itself.
//
// Two relations count:
//   - super is an interface and candidate (or *candidate) implements it;
//   - super is a struct and candidate embeds it, directly or through a
//     chain of embedded fields (pointer embeds included).
func Subtype(candidate, super reflect.Type) bool {
	if candidate == nil || super == nil || candidate == super {
		return false
	}
	switch super.Kind() {
	case reflect.Interface:
		if candidate.Implements(super) {
			return true
		}
		// Value types commonly implement interfaces via pointer receivers.
		return candidate.Kind() != reflect.Pointer &&
			reflect.PointerTo(candidate).Implements(super)
	case reflect.Struct:
		if candidate.Kind() != reflect.Struct {
			return false
		}
		return embeds(candidate, super, make(map[reflect.Type]bool))
	default:
		return false
	}
}

// embeds walks the embedded fields of t looking for super. visited guards
// against embedding cycles through pointers.
func embeds(t, super reflect.Type, visited map[reflect.Type]bool) bool {
	if visited[t] {
		return false
	}
	visited[t] = true

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous {
			continue
		}
		ft := field.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft == super {
			return true
		}
		if ft.Kind() == reflect.Struct && embeds(ft, super, visited) {
			return true
		}
	}
	return false
}
