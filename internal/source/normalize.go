// Package source holds helpers shared by the per-market normalizers.
package source

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number decodes a numeric field that upstreams send as a JSON number, a
// numeric string, an empty string or null. Valid is false unless a number
// was actually present.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	}
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*n = Number{Value: v, Valid: true}
	return nil
}

// Int returns the rounded value, or 0 when absent.
func (n Number) Int() int {
	if !n.Valid {
		return 0
	}
	return int(math.Round(n.Value))
}

// PositiveIntPtr returns the rounded value when it is greater than zero.
func (n Number) PositiveIntPtr() *int {
	if !n.Valid || n.Value <= 0 {
		return nil
	}
	v := int(math.Round(n.Value))
	return &v
}

// USD converts an upstream price with a fixed rate. Missing, zero and
// negative prices (the "-1" sentinel) yield nil.
func USD(price Number, rate float64) *int64 {
	if !price.Valid || price.Value <= 0 {
		return nil
	}
	v := int64(math.Round(price.Value * rate))
	return &v
}

// Translate maps an upstream vocabulary value. Unknown values fall back to
// def; an empty def means "leave unset".
func Translate(vocab map[string]string, value, def string) *string {
	if mapped, ok := vocab[strings.TrimSpace(value)]; ok {
		return &mapped
	}
	if def == "" {
		return nil
	}
	return &def
}

// OptionalString returns nil for blank strings.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// FirstNonEmpty returns the first non-blank value.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// PriceChange is the payload of a price-only "changed" entry.
type PriceChange struct {
	NewPrice *Number `json:"new_price"`
}

// DecodePriceChange reports whether payload is a price-only change.
func DecodePriceChange(payload json.RawMessage) (Number, bool) {
	if len(payload) == 0 {
		return Number{}, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return Number{}, false
	}
	if _, hasMake := fields["mark"]; hasMake {
		return Number{}, false
	}

	var pc PriceChange
	if err := json.Unmarshal(payload, &pc); err != nil || pc.NewPrice == nil || !pc.NewPrice.Valid {
		return Number{}, false
	}
	return *pc.NewPrice, true
}
