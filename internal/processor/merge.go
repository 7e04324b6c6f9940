package processor

import (
	"reflect"
)

// mergeValue writes the merge of a and b to out. Struct fields merge
// recursively, pointers merge their targets, and any other value of b wins
// unless it is zero.
func mergeValue(a, b, out reflect.Value) {
	switch a.Kind() {
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(a.Type()) {
			if !f.IsExported() || f.Anonymous {
				continue
			}
			mergeValue(a.FieldByIndex(f.Index), b.FieldByIndex(f.Index), out.FieldByIndex(f.Index))
		}
	case reflect.Pointer:
		switch {
		case a.IsNil():
			out.Set(b)
		case b.IsNil():
			out.Set(a)
		default:
			out.Set(reflect.New(a.Type().Elem()))
			mergeValue(a.Elem(), b.Elem(), out.Elem())
		}
	default:
		if b.IsZero() {
			out.Set(a)
		} else {
			out.Set(b)
		}
	}
}

// Merge returns a with all non-zero fields of b applied on top.
func Merge[T any](a T, b T) T {
	var out T
	mergeValue(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem(), reflect.ValueOf(&out).Elem())
	return out
}
