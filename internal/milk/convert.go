package milk

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	litersPerGallon = 3.78541
	pintsPerLitre   = 1.75975
)

// ErrInvalidConversion is returned when a conversion request is empty,
// ambiguous or cannot be decoded.
var ErrInvalidConversion = errors.New("invalid conversion request")

// Conversion is the JSON payload accepted by the milk endpoint. Exactly one
// of the fields is expected to be set.
//
// "liters" and "litres" are distinct keys: liters convert to US gallons while
// litres convert to imperial pints.
type Conversion struct {
	Gallons *float64 `json:"gallons"`
	Liters  *float64 `json:"liters"`
	Litres  *float64 `json:"litres"`
	Pints   *float64 `json:"pints"`
}

// Result is a single converted quantity.
type Result struct {
	Unit  string
	Value float64
}

// MarshalJSON encodes the result as an object with the unit as its only key.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{r.Unit: r.Value})
}

// ParseConversion decodes a conversion payload. Unit keys match exactly;
// differently cased keys are ignored like any other unknown key, and a null
// value counts as absent.
func ParseConversion(data []byte) (Conversion, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Conversion{}, fmt.Errorf("%w: %v", ErrInvalidConversion, err)
	}
	if fields == nil {
		return Conversion{}, fmt.Errorf("%w: not an object", ErrInvalidConversion)
	}

	var c Conversion
	for _, f := range []struct {
		key string
		dst **float64
	}{
		{"gallons", &c.Gallons},
		{"liters", &c.Liters},
		{"litres", &c.Litres},
		{"pints", &c.Pints},
	} {
		raw, ok := fields[f.key]
		if !ok || string(raw) == "null" {
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return Conversion{}, fmt.Errorf("%w: %s: %v", ErrInvalidConversion, f.key, err)
		}
		*f.dst = &v
	}
	return c, nil
}

// Convert returns the converted quantity for the single field that is set.
func (c Conversion) Convert() (Result, error) {
	switch {
	case c.Gallons != nil && c.Liters != nil,
		c.Litres != nil && c.Liters != nil,
		c.Gallons != nil && c.Pints != nil,
		c.Litres != nil && c.Pints != nil:
		return Result{}, fmt.Errorf("%w: conflicting units", ErrInvalidConversion)
	}

	switch {
	case c.Gallons != nil:
		return Result{Unit: "liters", Value: GallonsToLiters(*c.Gallons)}, nil
	case c.Liters != nil:
		return Result{Unit: "gallons", Value: LitersToGallons(*c.Liters)}, nil
	case c.Litres != nil:
		return Result{Unit: "pints", Value: LitresToPints(*c.Litres)}, nil
	case c.Pints != nil:
		return Result{Unit: "litres", Value: PintsToLitres(*c.Pints)}, nil
	}
	return Result{}, fmt.Errorf("%w: no unit given", ErrInvalidConversion)
}

// LitersToGallons converts liters to US gallons.
func LitersToGallons(liters float64) float64 { return liters / litersPerGallon }

// GallonsToLiters converts US gallons to liters.
func GallonsToLiters(gallons float64) float64 { return gallons * litersPerGallon }

// LitresToPints converts litres to imperial pints.
func LitresToPints(litres float64) float64 { return litres * pintsPerLitre }

// PintsToLitres converts imperial pints to litres.
func PintsToLitres(pints float64) float64 { return pints / pintsPerLitre }
