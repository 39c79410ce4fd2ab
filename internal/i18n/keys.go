// Package i18n provides internationalization support for the lysate impact service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyValidationAdoptionRate indicates an adoption rate outside [0,1].
	ErrKeyValidationAdoptionRate = "error.validation.adoption_rate"
	// ErrKeyValidationEffectSize indicates a non-finite effect size.
	ErrKeyValidationEffectSize = "error.validation.effect_size"
	// ErrKeyConfiguration indicates a misconfigured parameter set.
	ErrKeyConfiguration = "error.configuration"
	// ErrKeyUnknownTable indicates an export table that does not exist.
	ErrKeyUnknownTable = "error.unknown_table"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Console summary translation keys.
const (
	SummaryKeyTitle          = "summary.title"
	SummaryKeyPopulation     = "summary.population"
	SummaryKeyBaseline       = "summary.baseline"
	SummaryKeyScenarios      = "summary.scenarios"
	SummaryKeyIntervals      = "summary.confidence_intervals"
	SummaryKeySensitivity    = "summary.sensitivity"
	SummaryKeyAdoption       = "summary.adoption"
	SummaryKeyTreated        = "summary.children_treated"
	SummaryKeyCoursesAvoided = "summary.courses_avoided"
	SummaryKeyReduction      = "summary.reduction"
	SummaryKeyPrevalence     = "summary.prevalence"
	SummaryKeyLowerBound     = "summary.lower_bound"
	SummaryKeyPointEstimate  = "summary.point_estimate"
	SummaryKeyUpperBound     = "summary.upper_bound"
)
