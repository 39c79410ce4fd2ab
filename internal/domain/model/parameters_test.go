package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()

	require.NoError(t, p.Validate())
	assert.Equal(t, int64(8_015_833), p.ChildrenWithRRTI())
	assert.InDelta(t, 4.59, p.WeightedMeanCourses(), 1e-12)
	assert.InDelta(t, 0.20, p.OtherClassFraction(), 1e-12)
	assert.Len(t, p.TreatmentDistribution, 4)
	assert.Equal(t, []float64{0.25, 0.50, 0.75, 1.00}, p.AdoptionRates)
	assert.Equal(t, []float64{0.06, 0.10, 0.20}, p.SensitivityPrevalences)
}

func TestParameterSet_WithPrevalence(t *testing.T) {
	p := DefaultParameters()

	doubled := p.WithPrevalence(0.20)

	assert.Equal(t, 0.10, p.Prevalence, "original must not change")
	assert.Equal(t, 0.20, doubled.Prevalence)
	assert.Equal(t, 2*p.ChildrenWithRRTI(), doubled.ChildrenWithRRTI())

	doubled.TreatmentDistribution[0].Fraction = 0
	assert.Equal(t, 0.38, p.TreatmentDistribution[0].Fraction, "slices must not alias")
}

func TestParameterSet_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ParameterSet)
	}{
		{
			name:   "zero population",
			mutate: func(p *ParameterSet) { p.Population = 0 },
		},
		{
			name:   "prevalence above one",
			mutate: func(p *ParameterSet) { p.Prevalence = 1.5 },
		},
		{
			name:   "NaN prevalence",
			mutate: func(p *ParameterSet) { p.Prevalence = math.NaN() },
		},
		{
			name:   "empty distribution",
			mutate: func(p *ParameterSet) { p.TreatmentDistribution = nil },
		},
		{
			name:   "fractions do not sum to one",
			mutate: func(p *ParameterSet) { p.TreatmentDistribution[0].Fraction = 0.5 },
		},
		{
			name:   "negative midpoint",
			mutate: func(p *ParameterSet) { p.TreatmentDistribution[1].Midpoint = -1 },
		},
		{
			name:   "class fractions exceed one",
			mutate: func(p *ParameterSet) { p.AntibioticClasses[1].Fraction = 0.5 },
		},
		{
			name:   "infinite effect size",
			mutate: func(p *ParameterSet) { p.EffectSize.CIUpper = math.Inf(-1) },
		},
		{
			name:   "adoption rate out of range",
			mutate: func(p *ParameterSet) { p.AdoptionRates = []float64{0.5, 1.2} },
		},
		{
			name:   "sensitivity prevalence out of range",
			mutate: func(p *ParameterSet) { p.SensitivityPrevalences = []float64{-0.1} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)

			err := p.Validate()

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameters))
			assert.Equal(t, KindConfiguration, KindOf(err))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))

	err := NewError(KindInvalidArgument, "calculate", ErrInvalidAdoptionRate)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
	assert.ErrorIs(t, err, ErrInvalidAdoptionRate)
	assert.Equal(t, "calculate: adoption rate must be in [0,1]", err.Error())
	assert.Equal(t, "invalid_argument", KindInvalidArgument.String())
	assert.Equal(t, "io", KindIO.String())
}

func TestScenarioResult_ClassTotals(t *testing.T) {
	r := ScenarioResult{
		CoursesReduced: 100,
		ClassAvoided: []ClassAvoided{
			{Class: "Penicillins", Fraction: 0.6, Courses: 60},
			{Class: "Macrolides", Fraction: 0.2, Courses: 20},
		},
		OtherAvoided: 20,
	}

	assert.Equal(t, int64(60), r.ClassCourses("Penicillins"))
	assert.Equal(t, int64(0), r.ClassCourses("Cephalosporins"))
	assert.Equal(t, int64(80), r.NamedClassTotal())
}
