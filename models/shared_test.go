package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain number", input: `3`, want: 3},
		{name: "decimal", input: `12.5`, want: 12.5},
		{name: "numeric string", input: `"42.75"`, want: 42.75},
		{name: "padded numeric string", input: `" 7 "`, want: 7},
		{name: "non-numeric string", input: `"abc"`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "boolean", input: `true`, want: 0},
		{name: "object", input: `{"a":1}`, want: 0},
		{name: "array", input: `[1]`, want: 0},
		{name: "empty string", input: `""`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexNumber
			err := json.Unmarshal([]byte(tt.input), &n)
			require.NoError(t, err)
			require.Equal(t, tt.want, n.Float64())
		})
	}
}

func TestFlexNumberInStruct(t *testing.T) {
	var row struct {
		Quantity  FlexNumber `json:"quantity"`
		UnitPrice FlexNumber `json:"unitPrice"`
	}
	err := json.Unmarshal([]byte(`{"quantity":"abc","unitPrice":"999"}`), &row)
	require.NoError(t, err)
	require.Equal(t, 0.0, row.Quantity.Float64())
	require.Equal(t, 999.0, row.UnitPrice.Float64())
}
