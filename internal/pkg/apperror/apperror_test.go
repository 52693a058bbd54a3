package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusByKind(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"bad request", BadRequest("missing %s", "message"), http.StatusBadRequest},
		{"unavailable", Unavailable("model not loaded"), http.StatusServiceUnavailable},
		{"upstream", Upstream("generation failed", errors.New("quota")), http.StatusInternalServerError},
		{"internal", Internal("oops", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Status(); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMissingFieldsListsEveryName(t *testing.T) {
	err := MissingFields("Missing required features", []string{"Soil_pH", "Humidity"})

	assert.Equal(t, "Missing required features: Soil_pH, Humidity", err.Message)
	assert.Equal(t, []string{"Soil_pH", "Humidity"}, err.Missing)
	assert.Equal(t, KindBadRequest, err.Kind)
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", Unavailable("down"))
	assert.Equal(t, KindUnavailable, From(wrapped).Kind)
	assert.True(t, IsKind(wrapped, KindUnavailable))

	plain := From(errors.New("kaboom"))
	assert.Equal(t, KindInternal, plain.Kind)
	assert.Equal(t, "An unexpected server error occurred.", plain.Detail())

	assert.Nil(t, From(nil))
}

func TestUpstreamDetailExposesCause(t *testing.T) {
	err := Upstream("generation failed", errors.New("rate limited")).
		WithFallback("response", "Error connecting to Plant Assistant.")

	assert.Equal(t, "rate limited", err.Detail())
	assert.Equal(t, "response", err.Fallback.Key)
	assert.ErrorContains(t, err, "generation failed: rate limited")
}
