// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "math"

// CalculateScenarioRequest represents the JSON request body for the scenario calculation endpoint.
//
// AdoptionRate is required and must lie in [0, 1].
// EffectSize is optional - if not provided, the parameter set's mean effect size is used.
//
// @Description Request to calculate courses avoided for one adoption scenario
// @Example {"adoption_rate": 0.5}
// @Example {"adoption_rate": 0.5, "effect_size": -2.68}
type CalculateScenarioRequest struct {
	// AdoptionRate is the fraction of children with RRTI who receive the lysate.
	AdoptionRate *float64 `json:"adoption_rate" binding:"required" example:"0.5" minimum:"0" maximum:"1"`
	// EffectSize is the change in annual antibiotic courses per treated child.
	EffectSize *float64 `json:"effect_size,omitempty" example:"-1.9"`
} // @name CalculateScenarioRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidAdoptionRate is returned when adoption_rate is missing or outside [0, 1].
	ErrInvalidAdoptionRate = &ValidationError{
		Field:   "adoption_rate",
		Message: "must be between 0 and 1",
	}
	// ErrInvalidEffectSize is returned when effect_size is not a finite number.
	ErrInvalidEffectSize = &ValidationError{
		Field:   "effect_size",
		Message: "must be a finite number",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *CalculateScenarioRequest) Validate() error {
	if r.AdoptionRate == nil || math.IsNaN(*r.AdoptionRate) || *r.AdoptionRate < 0 || *r.AdoptionRate > 1 {
		return ErrInvalidAdoptionRate
	}
	if r.EffectSize != nil && (math.IsNaN(*r.EffectSize) || math.IsInf(*r.EffectSize, 0)) {
		return ErrInvalidEffectSize
	}
	return nil
}

// EffectSizeOr returns the requested effect size, or fallback when none was sent.
func (r *CalculateScenarioRequest) EffectSizeOr(fallback float64) float64 {
	if r.EffectSize == nil {
		return fallback
	}
	return *r.EffectSize
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
