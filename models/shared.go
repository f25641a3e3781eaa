package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber is a float64 that tolerates sloppy JSON input. Plain numbers
// and numeric strings decode normally; anything else (null, "abc", objects)
// decodes to zero instead of failing the request. This is the single
// coerce-or-zero helper for all quantity and money fields.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = FlexNumber(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, perr := strconv.ParseFloat(strings.TrimSpace(s), 64); perr == nil {
			*n = FlexNumber(f)
			return nil
		}
	}
	*n = 0
	return nil
}

func (n FlexNumber) Float64() float64 {
	return float64(n)
}
