package ads

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// DeriveMask builds the update field mask for a partially-populated payload
// struct. A field is considered set when it is a non-nil pointer, slice, or
// map, or a non-zero value of any other kind. Paths come from the json tag
// when present, otherwise from the lowerCamel form of the field name. Fields
// tagged `mask:"-"` (identifiers) are never included.
//
// Deriving the mask from the payload instead of hand-listing paths keeps the
// two from drifting: the mask names exactly the fields that are populated.
func DeriveMask(v any) (*fieldmaskpb.FieldMask, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("derive mask: nil %T", v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive mask: %T is not a struct", v)
	}

	mask := &fieldmaskpb.FieldMask{}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() || f.Tag.Get("mask") == "-" {
			continue
		}
		if !fieldSet(rv.Field(i)) {
			continue
		}
		mask.Paths = append(mask.Paths, maskPath(f))
	}
	return mask, nil
}

// MaskString renders a mask in the comma-joined form the REST surface takes.
func MaskString(m *fieldmaskpb.FieldMask) string {
	return strings.Join(m.GetPaths(), ",")
}

func fieldSet(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return !v.IsNil()
	default:
		return !v.IsZero()
	}
}

func maskPath(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return strcase.ToLowerCamel(f.Name)
}
