package model

// ClassAvoided is the number of avoided courses attributed to one antibiotic class.
//
// @Description Avoided courses for one antibiotic class
type ClassAvoided struct {
	Class    string  `json:"class" example:"Penicillins"`
	Fraction float64 `json:"fraction" example:"0.6"`
	Courses  int64   `json:"courses" example:"4569025"`
} // @name ClassAvoided

// ScenarioResult is the outcome of one (adoption rate, effect size) calculation.
// Every integer field is rounded independently at its own pipeline stage.
//
// @Description Scenario calculation result
// @Example {"adoption_rate": 0.5, "effect_size": -1.9, "children_treated": 4007917, "courses_reduced": 7615042}
type ScenarioResult struct {
	// AdoptionRate is the share of eligible children receiving lysates
	AdoptionRate float64 `json:"adoption_rate" example:"0.5"`
	// EffectSize is the courses-per-child difference used for this scenario
	EffectSize float64 `json:"effect_size" example:"-1.9"`
	// Prevalence is the RRTI prevalence the target population was derived from
	Prevalence float64 `json:"prevalence" example:"0.1"`
	// ChildrenWithRRTI is the target population, round(population × prevalence)
	ChildrenWithRRTI int64 `json:"children_with_rrti" example:"8015833"`
	// ChildrenTreated is round(children_with_rrti × adoption_rate)
	ChildrenTreated int64 `json:"children_treated" example:"4007917"`
	// CoursesReduced is round(children_treated × |effect_size|)
	CoursesReduced int64 `json:"courses_reduced" example:"7615042"`
	// PercentageReduction is relative to the baseline total courses
	PercentageReduction float64 `json:"percentage_reduction" example:"20.7"`
	// ClassAvoided lists avoided courses per named antibiotic class
	ClassAvoided []ClassAvoided `json:"class_avoided"`
	// OtherAvoided is the residual not covered by a named class
	OtherAvoided int64 `json:"other_avoided" example:"1523008"`
} // @name ScenarioResult

// ClassCourses returns the avoided courses for the named class, or zero.
func (r ScenarioResult) ClassCourses(name string) int64 {
	for _, c := range r.ClassAvoided {
		if c.Class == name {
			return c.Courses
		}
	}
	return 0
}

// NamedClassTotal returns the sum of avoided courses over the named classes.
func (r ScenarioResult) NamedClassTotal() int64 {
	var total int64
	for _, c := range r.ClassAvoided {
		total += c.Courses
	}
	return total
}

// ConfidenceIntervalResult is the banded estimate for one adoption rate.
// UpperBound is always the scenario with the larger |effect size|.
//
// @Description Point estimate with its 95% interval scenarios
type ConfidenceIntervalResult struct {
	AdoptionRate float64        `json:"adoption_rate" example:"0.5"`
	Point        ScenarioResult `json:"point"`
	LowerBound   ScenarioResult `json:"lower_bound"`
	UpperBound   ScenarioResult `json:"upper_bound"`
} // @name ConfidenceIntervalResult

// SensitivityResult is one point of the prevalence sweep.
//
// @Description Sensitivity analysis point
type SensitivityResult struct {
	Prevalence    float64        `json:"prevalence" example:"0.2"`
	BaselineTotal float64        `json:"baseline_total" example:"73585347"`
	Scenario      ScenarioResult `json:"scenario"`
} // @name SensitivityResult

// BucketCourses is a treatment bucket with the derived child and course counts.
//
// @Description Treatment distribution row with derived counts
type BucketCourses struct {
	TreatmentBucket
	Children int64   `json:"children" example:"2565067"`
	Courses  float64 `json:"courses" example:"11542800"`
} // @name BucketCourses

// Report gathers every table derived from one parameter set.
//
// @Description Full scenario report
type Report struct {
	Parameters            ParameterSet               `json:"parameters"`
	ChildrenWithRRTI      int64                      `json:"children_with_rrti" example:"8015833"`
	WeightedMeanCourses   float64                    `json:"weighted_mean_courses" example:"4.59"`
	BaselineTotal         float64                    `json:"baseline_total" example:"36792673.47"`
	TreatmentDistribution []BucketCourses            `json:"treatment_distribution"`
	Scenarios             []ScenarioResult           `json:"scenarios"`
	ConfidenceIntervals   []ConfidenceIntervalResult `json:"confidence_intervals"`
	Sensitivity           []SensitivityResult        `json:"sensitivity"`
} // @name Report
