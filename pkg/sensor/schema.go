// Package sensor describes the plant sensor reading the classifier was trained on.
package sensor

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// FeatureColumns is the training-time column order. Changing it invalidates
// every exported model artifact.
var FeatureColumns = []string{
	"Soil_Moisture",
	"Ambient_Temperature",
	"Soil_Temperature",
	"Humidity",
	"Light_Intensity",
	"Soil_pH",
	"Nitrogen_Level",
	"Phosphorus_Level",
	"Potassium_Level",
	"Chlorophyll_Content",
	"Electrochemical_Signal",
}

// Reading is a decoded JSON object as sent by the client. Numbers are kept
// as json.Number so they render exactly as received.
type Reading map[string]interface{}

// ParseReading decodes a JSON object body. An empty body or a non-object
// payload is reported as an error.
func ParseReading(body []byte) (Reading, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	dec := json.NewDecoder(strings.NewReader(string(body)))
	dec.UseNumber()

	var reading Reading
	if err := dec.Decode(&reading); err != nil {
		return nil, fmt.Errorf("decode reading: %w", err)
	}
	if reading == nil {
		return nil, fmt.Errorf("reading must be a JSON object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after reading")
	}
	return reading, nil
}

// Missing lists every canonical column absent from r, in canonical order.
func (r Reading) Missing() []string {
	var missing []string
	for _, col := range FeatureColumns {
		if _, ok := r[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// Vector extracts the canonical columns in training order, ignoring extras.
func (r Reading) Vector() ([]float64, error) {
	if missing := r.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("missing features: %s", strings.Join(missing, ", "))
	}
	vec := make([]float64, len(FeatureColumns))
	for i, col := range FeatureColumns {
		v, err := toFloat(r[col])
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = fmt.Errorf("value is not finite")
		}
		if err != nil {
			return nil, &InvalidValueError{Field: col, Err: err}
		}
		vec[i] = v
	}
	return vec, nil
}

// String returns the optional free-text field key, or fallback.
func (r Reading) String(key, fallback string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return fallback
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return fallback
	}
	return s
}

// Format renders the canonical columns as "- Soil Moisture: 35.2" lines.
func (r Reading) Format() string {
	lines := make([]string, 0, len(FeatureColumns))
	for _, col := range FeatureColumns {
		v, ok := r[col]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %v", strings.ReplaceAll(col, "_", " "), v))
	}
	return strings.Join(lines, "\n")
}

type InvalidValueError struct {
	Field string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Field, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case json.Number:
		return t.Float64()
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(t), 64)
	case nil:
		return 0, fmt.Errorf("value is null")
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
