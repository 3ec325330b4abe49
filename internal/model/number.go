package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Number is a float64 that survives the loosely-typed JSON the trading
// backend produces. A field may arrive as a JSON number, a numeric string,
// null, or be absent entirely; anything that does not parse to a finite
// float is recorded as invalid rather than failing the whole payload.
type Number struct {
	Value float64
	Valid bool
}

// Num is a convenience constructor for a valid Number.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Float returns the numeric value, or NaN when the field was missing or
// not coercible to a finite number.
func (n Number) Float() float64 {
	if !n.Valid {
		return math.NaN()
	}
	return n.Value
}

// UnmarshalJSON accepts numbers, numeric strings, and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil
		}
		*n = Number{Value: v, Valid: true}
		return nil
	}

	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	*n = Number{Value: v, Valid: true}
	return nil
}

// MarshalJSON writes the value as a JSON number, or null when invalid.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
