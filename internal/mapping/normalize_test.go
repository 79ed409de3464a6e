package mapping

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *float64
	}{
		{"nil", nil, nil},
		{"float", 45.0, floatPtr(45)},
		{"int", 42, floatPtr(42)},
		{"int64", int64(-7), floatPtr(-7)},
		{"json number", json.Number("9.19"), floatPtr(9.19)},
		{"numeric string", "45.123456", floatPtr(45.123456)},
		{"padded string", " 9.0 ", floatPtr(9)},
		{"negative string", "-3.5", floatPtr(-3.5)},
		{"garbage string", "not-a-number", nil},
		{"empty string", "", nil},
		{"NaN string", "NaN", nil},
		{"infinity string", "Inf", nil},
		{"bool", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumber(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseNumber_DecodedJSON(t *testing.T) {
	var raw struct {
		Lat any `json:"lat"`
		Lng any `json:"lng"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lat":"45.123456","lng":42}`), &raw))

	assert.Equal(t, 45.123456, *ParseNumber(raw.Lat))
	assert.Equal(t, 42.0, *ParseNumber(raw.Lng))
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *int
	}{
		{"nil", nil, nil},
		{"string", "3", intPtr(3)},
		{"padded string", " 4 ", intPtr(4)},
		{"fractional string", "2.7", intPtr(2)},
		{"float", 2.0, intPtr(2)},
		{"zero", 0.0, intPtr(0)},
		{"garbage", "tre", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInteger(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
