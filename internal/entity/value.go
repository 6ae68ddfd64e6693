package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FieldKind tags the variant held by a FieldValue.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindNumber  FieldKind = "number"
	KindBoolean FieldKind = "boolean"
	KindDate    FieldKind = "date"
	KindArray   FieldKind = "array"
	KindNull    FieldKind = "null"
)

// FieldValue is the tagged representation of a polymorphic extracted value.
// The tag follows the template field's declared type, not the runtime shape
// of whatever JSON the backend returned.
type FieldValue struct {
	Kind FieldKind
	Str  string
	Num  float64
	Bool bool
	List []string
}

var emptyMarkers = map[string]struct{}{
	"":     {},
	"n/a":  {},
	"null": {},
	"none": {},
}

// ValueFromJSON converts a raw extracted value into a FieldValue keyed by
// the template field's declared type. Values that cannot be coerced keep
// their string form so validation can report on them.
func ValueFromJSON(fieldType string, raw json.RawMessage) FieldValue {
	if len(raw) == 0 || string(raw) == "null" {
		return FieldValue{Kind: KindNull}
	}

	switch strings.ToLower(fieldType) {
	case "number":
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return FieldValue{Kind: KindNumber, Num: n, Str: strconv.FormatFloat(n, 'f', -1, 64)}
		}
		// Numbers sometimes arrive quoted.
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				return FieldValue{Kind: KindNumber, Num: n, Str: s}
			}
			return FieldValue{Kind: KindString, Str: s}
		}
	case "boolean":
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return FieldValue{Kind: KindBoolean, Bool: b, Str: strconv.FormatBool(b)}
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if b, err := strconv.ParseBool(strings.TrimSpace(strings.ToLower(s))); err == nil {
				return FieldValue{Kind: KindBoolean, Bool: b, Str: s}
			}
			return FieldValue{Kind: KindString, Str: s}
		}
	case "array":
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			return FieldValue{Kind: KindArray, List: list, Str: strings.Join(list, ", ")}
		}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		kind := KindString
		if strings.ToLower(fieldType) == "date" {
			kind = KindDate
		}
		return FieldValue{Kind: kind, Str: s}
	}
	// Opaque shape: keep the raw JSON text.
	return FieldValue{Kind: KindString, Str: string(raw)}
}

// ToJSON renders the value back into the generic stored representation.
func (v FieldValue) ToJSON() json.RawMessage {
	var out any
	switch v.Kind {
	case KindNull:
		return json.RawMessage("null")
	case KindNumber:
		out = v.Num
	case KindBoolean:
		out = v.Bool
	case KindArray:
		out = v.List
	default:
		out = v.Str
	}
	b, err := json.Marshal(out)
	if err != nil {
		return json.RawMessage(fmt.Sprintf("%q", v.Str))
	}
	return b
}

// IsEmpty reports whether the value counts as absent: null, an empty array,
// or a string matching the empty markers ("", "N/A", "NULL", "NONE") after
// trimming, case-insensitive.
func (v FieldValue) IsEmpty() bool {
	switch v.Kind {
	case KindNull:
		return true
	case KindArray:
		return len(v.List) == 0
	case KindNumber, KindBoolean:
		return false
	}
	_, ok := emptyMarkers[strings.ToLower(strings.TrimSpace(v.Str))]
	return ok
}

// AsNumber returns the numeric value, parsing string forms when needed.
func (v FieldValue) AsNumber() (float64, bool) {
	if v.Kind == KindNumber {
		return v.Num, true
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(v.Str, ",", "")), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsTrue reports whether the value is literally boolean true.
func (v FieldValue) IsTrue() bool {
	if v.Kind == KindBoolean {
		return v.Bool
	}
	return strings.EqualFold(strings.TrimSpace(v.Str), "true")
}
