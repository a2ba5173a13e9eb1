// Package jsonvalue decodes JSON into generic Go values without losing
// numeric precision.
//
// encoding/json turns every number into a float64, which silently rounds
// integers beyond 2^53. Decode keeps a number as float64 only when float64
// holds it exactly, and otherwise uses int64, uint64 or json.Number, all of
// which encode back to the same literal.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"strconv"
)

// Decode parses a single JSON document into a generic value: nil, bool,
// string, a number (see Number), []any or map[string]any.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid character after top-level value")
	}
	return convert(v), nil
}

// Number converts a decoded number to the narrowest exact Go type:
// float64 if it survives the round trip, then int64, then uint64. Anything
// else stays a json.Number.
func Number(n json.Number) any {
	s := n.String()
	if f, err := strconv.ParseFloat(s, 64); err == nil && exactFloat(s, f) {
		return f
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	return n
}

// Float64s returns a copy of v with every json.Number replaced by its
// nearest float64. Validators that do not understand json.Number run on
// this view; it must not be persisted.
func Float64s(v any) any {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Float64s(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Float64s(e)
		}
		return out
	default:
		return v
	}
}

func convert(v any) any {
	switch t := v.(type) {
	case json.Number:
		return Number(t)
	case map[string]any:
		for k, e := range t {
			t[k] = convert(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = convert(e)
		}
		return t
	default:
		return v
	}
}

// exactFloat reports whether f encodes back to the same numeric value as
// the literal s.
func exactFloat(s string, f float64) bool {
	want, ok := new(big.Rat).SetString(s)
	if !ok {
		return false
	}
	got, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	return ok && want.Cmp(got) == 0
}
