// Package model defines the core domain entities for the lysate impact calculator.
package model

import (
	"fmt"
	"math"
	"slices"
)

// fractionTolerance bounds float drift when checking that bucket fractions sum to one.
const fractionTolerance = 1e-9

// TreatmentBucket is one row of the treatment distribution: the share of
// children with RRTI that historically received a given number of courses.
//
// @Description Treatment distribution bucket
type TreatmentBucket struct {
	// Label identifies the bucket, e.g. "4-5 courses"
	Label string `json:"label" yaml:"label" example:"4-5 courses"`
	// Fraction is the share of children in this bucket
	Fraction float64 `json:"fraction" yaml:"fraction" example:"0.32"`
	// Midpoint is the representative annual course count for the bucket
	Midpoint float64 `json:"midpoint" yaml:"midpoint" example:"4.5"`
} // @name TreatmentBucket

// AntibioticClass is a named share of all antibiotic courses.
//
// @Description Antibiotic class split
type AntibioticClass struct {
	Name     string  `json:"name" yaml:"name" example:"Penicillins"`
	Fraction float64 `json:"fraction" yaml:"fraction" example:"0.6"`
} // @name AntibioticClass

// EffectSize holds the meta-analysis mean difference in courses per treated
// child and its two published 95% interval edges.
//
// The edges are stored as published: CILower is the edge closer to zero.
//
// @Description Meta-analysis effect size
type EffectSize struct {
	Mean    float64 `json:"mean" yaml:"mean" example:"-1.9"`
	CILower float64 `json:"ci_lower" yaml:"ci_lower" example:"-1.12"`
	CIUpper float64 `json:"ci_upper" yaml:"ci_upper" example:"-2.68"`
} // @name EffectSize

// ParameterSet is the immutable set of epidemiological and clinical inputs.
// It is constructed once at startup and passed by value into every calculation.
//
// @Description Parameter set used for all scenarios
type ParameterSet struct {
	// Population is the total pediatric population
	Population int64 `json:"population" yaml:"population" example:"80158328"`
	// Prevalence is the RRTI prevalence as a fraction in [0,1]
	Prevalence float64 `json:"prevalence" yaml:"prevalence" example:"0.1"`
	// TreatmentDistribution lists the course-count buckets; fractions sum to 1.0
	TreatmentDistribution []TreatmentBucket `json:"treatment_distribution" yaml:"treatment_distribution"`
	// EffectSize is the mean difference and its 95% interval
	EffectSize EffectSize `json:"effect_size" yaml:"effect_size"`
	// AntibioticClasses need not sum to 1.0; the remainder is an implied "other" class
	AntibioticClasses []AntibioticClass `json:"antibiotic_classes" yaml:"antibiotic_classes"`
	// AdoptionRates are the fixed scenario adoption fractions
	AdoptionRates []float64 `json:"adoption_rates" yaml:"adoption_rates"`
	// SensitivityPrevalences are the prevalence values swept in the sensitivity analysis
	SensitivityPrevalences []float64 `json:"sensitivity_prevalences" yaml:"sensitivity_prevalences"`
	// SensitivityAdoptionRate is the adoption rate held fixed during the sweep
	SensitivityAdoptionRate float64 `json:"sensitivity_adoption_rate" yaml:"sensitivity_adoption_rate" example:"0.5"`
} // @name ParameterSet

// DefaultParameters returns the published parameter set.
func DefaultParameters() ParameterSet {
	return ParameterSet{
		Population: 80_158_328,
		Prevalence: 0.10,
		TreatmentDistribution: []TreatmentBucket{
			{Label: "2-3 courses", Fraction: 0.38, Midpoint: 2.5},
			{Label: "4-5 courses", Fraction: 0.32, Midpoint: 4.5},
			{Label: "6-7 courses", Fraction: 0.20, Midpoint: 6.5},
			{Label: "8+ courses", Fraction: 0.10, Midpoint: 9.0},
		},
		EffectSize: EffectSize{
			Mean:    -1.90,
			CILower: -1.12,
			CIUpper: -2.68,
		},
		AntibioticClasses: []AntibioticClass{
			{Name: "Penicillins", Fraction: 0.60},
			{Name: "Macrolides", Fraction: 0.20},
		},
		AdoptionRates:           []float64{0.25, 0.50, 0.75, 1.00},
		SensitivityPrevalences:  []float64{0.06, 0.10, 0.20},
		SensitivityAdoptionRate: 0.50,
	}
}

// ChildrenWithRRTI returns the target population, round(population × prevalence).
func (p ParameterSet) ChildrenWithRRTI() int64 {
	return int64(math.Round(float64(p.Population) * p.Prevalence))
}

// WeightedMeanCourses returns Σ(fraction × midpoint) over the treatment distribution.
func (p ParameterSet) WeightedMeanCourses() float64 {
	var mean float64
	for _, b := range p.TreatmentDistribution {
		mean += b.Fraction * b.Midpoint
	}
	return mean
}

// OtherClassFraction returns the share of courses not covered by a named class.
func (p ParameterSet) OtherClassFraction() float64 {
	var sum float64
	for _, c := range p.AntibioticClasses {
		sum += c.Fraction
	}
	return math.Max(0, 1-sum)
}

// WithPrevalence returns a copy of the parameter set with a different prevalence.
// The receiver is left untouched.
func (p ParameterSet) WithPrevalence(prevalence float64) ParameterSet {
	out := p.Clone()
	out.Prevalence = prevalence
	return out
}

// Clone returns a deep copy so callers can never alias the slices of a shared set.
func (p ParameterSet) Clone() ParameterSet {
	out := p
	out.TreatmentDistribution = slices.Clone(p.TreatmentDistribution)
	out.AntibioticClasses = slices.Clone(p.AntibioticClasses)
	out.AdoptionRates = slices.Clone(p.AdoptionRates)
	out.SensitivityPrevalences = slices.Clone(p.SensitivityPrevalences)
	return out
}

// Validate checks the parameter set and returns a configuration error describing
// the first problem found.
func (p ParameterSet) Validate() error {
	if p.Population <= 0 {
		return invalidParameters("population must be positive, got %d", p.Population)
	}
	if !isFraction(p.Prevalence) {
		return invalidParameters("prevalence must be in [0,1], got %v", p.Prevalence)
	}
	if len(p.TreatmentDistribution) == 0 {
		return invalidParameters("treatment distribution must not be empty")
	}

	var fractionSum float64
	for _, b := range p.TreatmentDistribution {
		if !isFraction(b.Fraction) {
			return invalidParameters("bucket %q fraction must be in [0,1], got %v", b.Label, b.Fraction)
		}
		if b.Midpoint < 0 || math.IsNaN(b.Midpoint) || math.IsInf(b.Midpoint, 0) {
			return invalidParameters("bucket %q midpoint must be a non-negative number, got %v", b.Label, b.Midpoint)
		}
		fractionSum += b.Fraction
	}
	if math.Abs(fractionSum-1) > fractionTolerance {
		return invalidParameters("bucket fractions must sum to 1.0, got %v", fractionSum)
	}

	var classSum float64
	for _, c := range p.AntibioticClasses {
		if !isFraction(c.Fraction) {
			return invalidParameters("class %q fraction must be in [0,1], got %v", c.Name, c.Fraction)
		}
		classSum += c.Fraction
	}
	if classSum > 1+fractionTolerance {
		return invalidParameters("class fractions must not exceed 1.0, got %v", classSum)
	}

	for _, v := range []float64{p.EffectSize.Mean, p.EffectSize.CILower, p.EffectSize.CIUpper} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidParameters("effect sizes must be finite, got %v", v)
		}
	}

	for _, r := range p.AdoptionRates {
		if !isFraction(r) {
			return invalidParameters("adoption rate must be in [0,1], got %v", r)
		}
	}
	for _, prev := range p.SensitivityPrevalences {
		if !isFraction(prev) {
			return invalidParameters("sensitivity prevalence must be in [0,1], got %v", prev)
		}
	}
	if !isFraction(p.SensitivityAdoptionRate) {
		return invalidParameters("sensitivity adoption rate must be in [0,1], got %v", p.SensitivityAdoptionRate)
	}

	return nil
}

// IsFraction reports whether v is a finite number in [0,1].
func IsFraction(v float64) bool {
	return isFraction(v)
}

func isFraction(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

func invalidParameters(format string, args ...any) error {
	return &Error{
		Kind: KindConfiguration,
		Op:   "validate parameters",
		Err:  fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameters}, args...)...),
	}
}
