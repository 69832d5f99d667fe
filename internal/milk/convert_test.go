package milk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_SingleUnit(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		unit  string
		value float64
	}{
		{"liters to gallons", `{"liters": 3.78541}`, "gallons", 1.0},
		{"gallons to liters", `{"gallons": 1}`, "liters", 3.78541},
		{"litres to pints", `{"litres": 2}`, "pints", 3.5195},
		{"pints to litres", `{"pints": 1.75975}`, "litres", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseConversion([]byte(tt.body))
			require.NoError(t, err)

			res, err := c.Convert()
			require.NoError(t, err)
			assert.Equal(t, tt.unit, res.Unit)
			assert.InDelta(t, tt.value, res.Value, 1e-6)
		})
	}
}

func TestConvert_Invalid(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"gallons": 1, "liters": 2}`,
		`{"litres": 1, "liters": 2}`,
		`{"gallons": 1, "pints": 2}`,
		`{"litres": 1, "pints": 2}`,
		`{"apples": 3}`,
	}

	for _, body := range bodies {
		c, err := ParseConversion([]byte(body))
		require.NoError(t, err, body)

		_, err = c.Convert()
		assert.ErrorIs(t, err, ErrInvalidConversion, body)
	}
}

func TestParseConversion_Malformed(t *testing.T) {
	for _, body := range []string{``, `[]`, `{"liters": "lots"}`, `{"liters":`, `null`} {
		_, err := ParseConversion([]byte(body))
		assert.ErrorIs(t, err, ErrInvalidConversion, body)
	}
}

func TestConvert_NonConflictingPairUsesFirstUnit(t *testing.T) {
	c, err := ParseConversion([]byte(`{"gallons": 2, "litres": 5}`))
	require.NoError(t, err)

	res, err := c.Convert()
	require.NoError(t, err)
	assert.Equal(t, "liters", res.Unit)
}

func TestConvert_KeysAreCaseSensitive(t *testing.T) {
	c, err := ParseConversion([]byte(`{"Gallons": 1, "liters": 3.78541}`))
	require.NoError(t, err)
	assert.Nil(t, c.Gallons)

	res, err := c.Convert()
	require.NoError(t, err)
	assert.Equal(t, "gallons", res.Unit)
	assert.InDelta(t, 1.0, res.Value, 1e-6)
}

func TestResult_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Result{Unit: "gallons", Value: 1.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"gallons": 1.5}`, string(data))
}
