package entity

import (
	"encoding/json"
	"testing"
)

func TestValueFromJSONByDeclaredType(t *testing.T) {
	v := ValueFromJSON("number", json.RawMessage(`1500000`))
	if v.Kind != KindNumber || v.Num != 1500000 {
		t.Errorf("number: %+v", v)
	}

	// Numbers sometimes arrive quoted.
	v = ValueFromJSON("number", json.RawMessage(`"2,500.75"`))
	if v.Kind == KindNumber {
		// Quoted with separators parses only via AsNumber.
		t.Errorf("comma-separated quoted number coerced eagerly: %+v", v)
	}
	if n, ok := v.AsNumber(); !ok || n != 2500.75 {
		t.Errorf("AsNumber = %v/%v, want 2500.75", n, ok)
	}

	v = ValueFromJSON("boolean", json.RawMessage(`"true"`))
	if v.Kind != KindBoolean || !v.Bool {
		t.Errorf("quoted boolean: %+v", v)
	}

	v = ValueFromJSON("array", json.RawMessage(`["a","b"]`))
	if v.Kind != KindArray || len(v.List) != 2 {
		t.Errorf("array: %+v", v)
	}

	v = ValueFromJSON("date", json.RawMessage(`"2026-01-01"`))
	if v.Kind != KindDate || v.Str != "2026-01-01" {
		t.Errorf("date: %+v", v)
	}

	v = ValueFromJSON("string", nil)
	if v.Kind != KindNull {
		t.Errorf("nil raw: %+v", v)
	}
	v = ValueFromJSON("string", json.RawMessage(`null`))
	if v.Kind != KindNull {
		t.Errorf("json null: %+v", v)
	}
}

func TestIsEmptyMarkers(t *testing.T) {
	for _, s := range []string{`""`, `"N/A"`, `"null"`, `"NONE"`, `"  n/a  "`} {
		v := ValueFromJSON("string", json.RawMessage(s))
		if !v.IsEmpty() {
			t.Errorf("%s should be empty", s)
		}
	}
	if ValueFromJSON("string", json.RawMessage(`"0"`)).IsEmpty() {
		t.Error(`"0" is a value, not an empty marker`)
	}
	if ValueFromJSON("number", json.RawMessage(`0`)).IsEmpty() {
		t.Error("numeric zero is not empty")
	}
	if ValueFromJSON("boolean", json.RawMessage(`false`)).IsEmpty() {
		t.Error("boolean false is not empty")
	}
	if !ValueFromJSON("array", json.RawMessage(`[]`)).IsEmpty() {
		t.Error("empty array is empty")
	}
}

func TestToJSONRoundTrip(t *testing.T) {
	cases := []struct {
		fieldType string
		raw       string
		want      string
	}{
		{"number", `42`, `42`},
		{"boolean", `true`, `true`},
		{"string", `"hello"`, `"hello"`},
		{"array", `["x","y"]`, `["x","y"]`},
		{"string", `null`, `null`},
	}
	for _, tc := range cases {
		v := ValueFromJSON(tc.fieldType, json.RawMessage(tc.raw))
		if got := string(v.ToJSON()); got != tc.want {
			t.Errorf("ToJSON(%s %s) = %s, want %s", tc.fieldType, tc.raw, got, tc.want)
		}
	}
}

func TestIsTrue(t *testing.T) {
	if !ValueFromJSON("boolean", json.RawMessage(`true`)).IsTrue() {
		t.Error("true should be true")
	}
	if ValueFromJSON("boolean", json.RawMessage(`false`)).IsTrue() {
		t.Error("false should not be true")
	}
	if !ValueFromJSON("string", json.RawMessage(`"TRUE"`)).IsTrue() {
		t.Error("string TRUE should count as true")
	}
	if ValueFromJSON("string", json.RawMessage(`"yes"`)).IsTrue() {
		t.Error("only literal true counts")
	}
}
