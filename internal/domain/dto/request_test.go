package dto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestCalculateScenarioRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       CalculateScenarioRequest
		expectedError error
	}{
		{
			name:    "valid request",
			request: CalculateScenarioRequest{AdoptionRate: ptr(0.5)},
		},
		{
			name:    "zero adoption is valid",
			request: CalculateScenarioRequest{AdoptionRate: ptr(0)},
		},
		{
			name:    "full adoption with effect size",
			request: CalculateScenarioRequest{AdoptionRate: ptr(1), EffectSize: ptr(-2.68)},
		},
		{
			name:          "missing adoption rate",
			request:       CalculateScenarioRequest{},
			expectedError: ErrInvalidAdoptionRate,
		},
		{
			name:          "negative adoption rate",
			request:       CalculateScenarioRequest{AdoptionRate: ptr(-0.1)},
			expectedError: ErrInvalidAdoptionRate,
		},
		{
			name:          "adoption rate above one",
			request:       CalculateScenarioRequest{AdoptionRate: ptr(1.5)},
			expectedError: ErrInvalidAdoptionRate,
		},
		{
			name:          "NaN adoption rate",
			request:       CalculateScenarioRequest{AdoptionRate: ptr(math.NaN())},
			expectedError: ErrInvalidAdoptionRate,
		},
		{
			name:          "infinite effect size",
			request:       CalculateScenarioRequest{AdoptionRate: ptr(0.5), EffectSize: ptr(math.Inf(-1))},
			expectedError: ErrInvalidEffectSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculateScenarioRequest_EffectSizeOr(t *testing.T) {
	withEffect := CalculateScenarioRequest{AdoptionRate: ptr(0.5), EffectSize: ptr(-1.12)}
	withoutEffect := CalculateScenarioRequest{AdoptionRate: ptr(0.5)}

	assert.Equal(t, -1.12, withEffect.EffectSizeOr(-1.9))
	assert.Equal(t, -1.9, withoutEffect.EffectSizeOr(-1.9))
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name          string
		validationErr *ValidationError
		expected      string
	}{
		{
			name:          "adoption rate message",
			validationErr: ErrInvalidAdoptionRate,
			expected:      "adoption_rate: must be between 0 and 1",
		},
		{
			name: "custom field",
			validationErr: &ValidationError{
				Field:   "table",
				Message: "unknown",
			},
			expected: "table: unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.validationErr.Error())
		})
	}
}
