package store

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"sort"

	"jsonstore/internal/jsonvalue"
)

var (
	bigIntType   = reflect.TypeOf(big.Int{})
	bigFloatType = reflect.TypeOf(big.Float{})
	bigRatType   = reflect.TypeOf(big.Rat{})

	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// normalizeValues checks every value in values and converts it to its
// generic JSON form. Nothing is returned unless all values pass.
func normalizeValues(values map[string]any) (Value, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Value, len(values))
	for _, k := range keys {
		v, err := normalize(k, values[k])
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// normalize converts v to map[string]any, []any, string, bool, nil or a
// number by round-tripping it through encoding/json. Numbers stay float64
// only when that is exact; larger integers become int64, uint64 or
// json.Number.
func normalize(key string, v any) (any, error) {
	if t, ok := unsupported(reflect.ValueOf(v), make(map[uintptr]bool)); ok {
		return nil, &SerializationError{Key: key, Type: t.String(), Err: ErrUnsupportedType}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, &SerializationError{Key: key, Type: fmt.Sprintf("%T", v), Err: err}
	}
	out, err := jsonvalue.Decode(data)
	if err != nil {
		return nil, &SerializationError{Key: key, Type: fmt.Sprintf("%T", v), Err: err}
	}
	return out, nil
}

// unsupported walks v and returns the first type JSON cannot represent.
// Arbitrary-precision number types are rejected: encoding/json prints
// big.Int and big.Rat in forms that do not read back as the same value.
func unsupported(v reflect.Value, seen map[uintptr]bool) (reflect.Type, bool) {
	if !v.IsValid() {
		return nil, false
	}
	t := v.Type()

	switch t {
	case bigIntType, bigFloatType, bigRatType:
		return t, true
	}
	if t.Kind() == reflect.Pointer {
		switch t.Elem() {
		case bigIntType, bigFloatType, bigRatType:
			return t, true
		}
	}

	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return t, true
	}

	// Types that marshal themselves are trusted; json.Marshal reports
	// anything they get wrong.
	if t.Implements(jsonMarshalerType) || t.Implements(textMarshalerType) {
		return nil, false
	}

	switch t.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil, false
		}
		if seen[v.Pointer()] {
			return nil, false
		}
		seen[v.Pointer()] = true
		return unsupported(v.Elem(), seen)
	case reflect.Interface:
		if v.IsNil() {
			return nil, false
		}
		return unsupported(v.Elem(), seen)
	case reflect.Map:
		if v.IsNil() || seen[v.Pointer()] {
			return nil, false
		}
		seen[v.Pointer()] = true
		for _, k := range v.MapKeys() {
			if bad, ok := unsupported(v.MapIndex(k), seen); ok {
				return bad, true
			}
		}
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		for i := 0; i < v.Len(); i++ {
			if bad, ok := unsupported(v.Index(i), seen); ok {
				return bad, true
			}
		}
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if (!f.IsExported() && !f.Anonymous) || f.Tag.Get("json") == "-" {
				continue
			}
			if bad, ok := unsupported(v.Field(i), seen); ok {
				return bad, true
			}
		}
	}
	return nil, false
}

// cloneValue returns a deep copy of a generic JSON value.
func cloneValue(v Value) Value {
	if v == nil {
		return nil
	}
	out := make(Value, len(v))
	for k, e := range v {
		out[k] = cloneAny(e)
	}
	return out
}

func cloneAny(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return cloneValue(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneAny(e)
		}
		return out
	default:
		return x
	}
}
