package sensor

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullReading = `{
	"Electrochemical_Signal": 1.1,
	"Soil_Moisture": 35.2,
	"Ambient_Temperature": 22,
	"Soil_Temperature": 19.5,
	"Humidity": 60,
	"Light_Intensity": 540,
	"Soil_pH": 6.5,
	"Nitrogen_Level": 30,
	"Phosphorus_Level": 25,
	"Potassium_Level": 28,
	"Chlorophyll_Content": "41.7",
	"Plant_ID": 7,
	"predicted_status": "High Stress"
}`

func TestParseReadingRejectsNonObjects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"null", "null"},
		{"array", "[1,2]"},
		{"broken", "{\"Soil_pH\":"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseReading([]byte(tt.body)); err == nil {
				t.Errorf("ParseReading(%q) expected error", tt.body)
			}
		})
	}
}

func TestVectorUsesCanonicalOrderAndIgnoresExtras(t *testing.T) {
	r, err := ParseReading([]byte(fullReading))
	require.NoError(t, err)

	assert.Empty(t, r.Missing())

	vec, err := r.Vector()
	require.NoError(t, err)
	require.Len(t, vec, len(FeatureColumns))
	assert.Equal(t, 35.2, vec[0])
	assert.Equal(t, 41.7, vec[9])
	assert.Equal(t, 1.1, vec[10])
}

func TestMissingListsEveryAbsentField(t *testing.T) {
	r, err := ParseReading([]byte(`{"Soil_Moisture": 1, "Humidity": 2, "Soil_pH": 6}`))
	require.NoError(t, err)

	missing := r.Missing()
	assert.Len(t, missing, 8)
	assert.Equal(t, "Ambient_Temperature", missing[0])
	assert.Equal(t, "Electrochemical_Signal", missing[7])
	assert.NotContains(t, missing, "Humidity")

	_, err = r.Vector()
	assert.ErrorContains(t, err, "Ambient_Temperature")
}

func TestVectorRejectsNonNumeric(t *testing.T) {
	body := strings.Replace(fullReading, `"Soil_pH": 6.5`, `"Soil_pH": "acidic"`, 1)
	r, err := ParseReading([]byte(body))
	require.NoError(t, err)

	_, err = r.Vector()
	var invalid *InvalidValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Soil_pH", invalid.Field)
}

func TestVectorRejectsNonFinite(t *testing.T) {
	for _, value := range []string{`"NaN"`, `"Inf"`, `"-Inf"`, `"+Infinity"`} {
		t.Run(value, func(t *testing.T) {
			body := strings.Replace(fullReading, `"Soil_pH": 6.5`, `"Soil_pH": `+value, 1)
			r, err := ParseReading([]byte(body))
			require.NoError(t, err)

			_, err = r.Vector()
			var invalid *InvalidValueError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, "Soil_pH", invalid.Field)
		})
	}
}

func TestParseReadingRejectsTrailingData(t *testing.T) {
	tests := []string{
		fullReading + "garbage",
		fullReading + `{"Soil_pH": 7}`,
		`{"a": 1} [1]`,
	}

	for _, body := range tests {
		_, err := ParseReading([]byte(body))
		assert.Error(t, err)
	}

	// trailing whitespace is fine
	_, err := ParseReading([]byte(fullReading + "\n\t "))
	assert.NoError(t, err)
}

func TestFormatRendersReadableLines(t *testing.T) {
	r, err := ParseReading([]byte(fullReading))
	require.NoError(t, err)

	out := r.Format()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(FeatureColumns))
	assert.Equal(t, "- Soil Moisture: 35.2", lines[0])
	assert.Equal(t, "- Soil pH: 6.5", lines[5])
	assert.NotContains(t, out, "Plant_ID")
	assert.NotContains(t, out, "predicted")
}

func TestStringFallback(t *testing.T) {
	r, err := ParseReading([]byte(fullReading))
	require.NoError(t, err)

	assert.Equal(t, "High Stress", r.String("predicted_status", "an issue detected"))
	assert.Equal(t, "an issue detected", r.String("missing_key", "an issue detected"))
}
