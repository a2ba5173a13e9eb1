package jsonvalue

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"0", float64(0)},
		{"14", float64(14)},
		{"-3.5", -3.5},
		{"0.1", 0.1},
		{"1e3", float64(1000)},
		{"9007199254740992", float64(9007199254740992)},
		{"9007199254740993", int64(9007199254740993)},
		{"-9223372036854775808", int64(math.MinInt64)},
		{"18446744073709551615", uint64(math.MaxUint64)},
		{"123456789012345678901234567890", json.Number("123456789012345678901234567890")},
		{"0.10000000000000000000000001", json.Number("0.10000000000000000000000001")},
	}

	for _, tt := range tests {
		got := Number(json.Number(tt.in))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Number(%s) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestDecode_RoundTripsLiterals(t *testing.T) {
	doc := `{"big":9007199254740993,"max":18446744073709551615,"huge":123456789012345678901234567890,"small":1.5,"list":[12345678901234567890]}`

	v, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"big":9007199254740993,"huge":123456789012345678901234567890,"list":[12345678901234567890],"max":18446744073709551615,"small":1.5}`
	if string(out) != want {
		t.Errorf("round trip = %s, want %s", out, want)
	}
}

func TestDecode_RejectsTrailingData(t *testing.T) {
	for _, doc := range []string{`{} {}`, `{"a":1} x`, `[1,2`, ``} {
		if _, err := Decode([]byte(doc)); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", doc)
		}
	}
}

func TestDecode_AllowsTrailingWhitespace(t *testing.T) {
	v, err := Decode([]byte("{\"a\": 1}\n\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"a": float64(1)}) {
		t.Errorf("Decode = %#v", v)
	}
}

func TestFloat64s(t *testing.T) {
	in := map[string]any{
		"n":    json.Number("123456789012345678901234567890"),
		"list": []any{json.Number("2.5"), "x"},
		"i":    int64(9007199254740993),
	}

	got := Float64s(in).(map[string]any)

	if _, ok := got["n"].(float64); !ok {
		t.Errorf("n = %T, want float64", got["n"])
	}
	if got["list"].([]any)[0] != 2.5 {
		t.Errorf("list[0] = %#v, want 2.5", got["list"].([]any)[0])
	}
	if got["i"] != int64(9007199254740993) {
		t.Errorf("i = %#v, want unchanged int64", got["i"])
	}
	if _, ok := in["n"].(json.Number); !ok {
		t.Error("Float64s modified its input")
	}
}
