package tform

import (
	"reflect"
	"strings"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key used in Path segments.
// Priority: tform:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("tform"); gt != "" {
		parts := strings.Split(gt, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// Prop builds a struct-field lens for T. The selector must return the address
// of a (possibly nested) field, e.g.:
//
//	Prop(func(o *Order) *string { return &o.User.UserID })
//
// This guarantees compile-time errors if the field is renamed or removed. The
// operator's path is one key segment per struct hop, resolved via
// ResolveStructKey. Forward reads the field; Backward returns a copy of the
// container with the field replaced.
//
// Limitations: only descends through struct fields (non-pointer). Pointer
// hops are not supported.
func Prop[T any, F any](selector func(*T) *F) OperatorWithPath[T, F] {
	if selector == nil {
		panic("tform.Prop: selector must not be nil")
	}
	var zero T
	target := reflect.ValueOf(selector(&zero)).Pointer()
	ft := reflect.TypeOf((*F)(nil)).Elem()
	chain, keys, ok := findFieldChain(reflect.ValueOf(&zero).Elem(), target, ft, 0)
	if !ok || len(chain) == 0 {
		panic("tform.Prop: selector must return the address of a struct field of T")
	}
	path := make(Path, len(keys))
	for i, k := range keys {
		path[i] = Key(k)
	}
	return OperatorWithPath[T, F]{
		Operator: Operator[T, F]{
			Forward: func(t T) F {
				v := reflect.ValueOf(&t).Elem()
				for _, i := range chain {
					v = v.Field(i)
				}
				f, _ := v.Interface().(F)
				return f
			},
			Backward: func(f F, t T) T {
				v := reflect.ValueOf(&t).Elem()
				for _, i := range chain {
					v = v.Field(i)
				}
				fv := reflect.ValueOf(f)
				if fv.IsValid() {
					v.Set(fv)
				} else {
					v.Set(reflect.Zero(v.Type()))
				}
				return t
			},
		},
		Path: path,
	}
}

const _maxPropDepth = 32

// findFieldChain locates the addressed field within v, returning the field
// index chain and resolved key names top-level-first. The field type must
// match ft so that selecting a struct's first member is not confused with
// selecting the struct itself (they share an address).
func findFieldChain(v reflect.Value, target uintptr, ft reflect.Type, depth int) ([]int, []string, bool) {
	if depth > _maxPropDepth {
		return nil, nil, false
	}
	t := v.Type()
	if t.Kind() != reflect.Struct {
		return nil, nil, false
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.CanAddr() && fv.Addr().Pointer() == target && fv.Type() == ft {
			name := ResolveStructKey(sf)
			if name == "" || name == "-" {
				return nil, nil, false
			}
			return []int{i}, []string{name}, true
		}
		// Recurse into nested structs only (skip pointers for safety)
		if fv.Kind() == reflect.Struct {
			if restChain, restKeys, ok := findFieldChain(fv, target, ft, depth+1); ok {
				name := ResolveStructKey(sf)
				if name == "" || name == "-" {
					return nil, nil, false
				}
				return append([]int{i}, restChain...), append([]string{name}, restKeys...), true
			}
		}
	}
	return nil, nil, false
}
