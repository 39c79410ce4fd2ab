package service

import (
	"context"
	"math"
	"time"

	"github.com/guttosm/lysate-impact/internal/domain/model"
	"github.com/guttosm/lysate-impact/internal/logger"
	"github.com/guttosm/lysate-impact/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// AdoptionScenarios computes the point-estimate scenario for each configured adoption rate.
func (s *ScenarioCalculatorService) AdoptionScenarios() ([]model.ScenarioResult, error) {
	start := time.Now()
	results, err := s.adoptionScenarios()
	recordSweep("adoption_scenarios", start, err)
	return results, err
}

func (s *ScenarioCalculatorService) adoptionScenarios() ([]model.ScenarioResult, error) {
	results := make([]model.ScenarioResult, 0, len(s.params.AdoptionRates))
	for _, rate := range s.params.AdoptionRates {
		result, err := s.calculate(rate, s.params.EffectSize.Mean)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// ConfidenceIntervals computes the point, lower and upper scenarios for each adoption rate.
//
// The published interval lists -1.12 as the lower edge and -2.68 as the upper
// edge. Labels here follow avoided courses: UpperBound always comes from the
// edge with the larger magnitude, whichever field supplies it.
func (s *ScenarioCalculatorService) ConfidenceIntervals() ([]model.ConfidenceIntervalResult, error) {
	start := time.Now()
	results, err := s.confidenceIntervals()
	recordSweep("confidence_intervals", start, err)
	return results, err
}

func (s *ScenarioCalculatorService) confidenceIntervals() ([]model.ConfidenceIntervalResult, error) {
	smaller, larger := orderByMagnitude(s.params.EffectSize.CILower, s.params.EffectSize.CIUpper)

	results := make([]model.ConfidenceIntervalResult, 0, len(s.params.AdoptionRates))
	for _, rate := range s.params.AdoptionRates {
		point, err := s.calculate(rate, s.params.EffectSize.Mean)
		if err != nil {
			return nil, err
		}
		lower, err := s.calculate(rate, smaller)
		if err != nil {
			return nil, err
		}
		upper, err := s.calculate(rate, larger)
		if err != nil {
			return nil, err
		}
		results = append(results, model.ConfidenceIntervalResult{
			AdoptionRate: rate,
			Point:        point,
			LowerBound:   lower,
			UpperBound:   upper,
		})
	}
	return results, nil
}

// Sensitivity recomputes the target population under each configured prevalence
// and calculates the point estimate at the fixed sensitivity adoption rate.
// Each prevalence gets its own baseline, derived from its own parameter set.
func (s *ScenarioCalculatorService) Sensitivity() ([]model.SensitivityResult, error) {
	start := time.Now()
	results, err := s.sensitivity()
	recordSweep("sensitivity", start, err)
	return results, err
}

func (s *ScenarioCalculatorService) sensitivity() ([]model.SensitivityResult, error) {
	results := make([]model.SensitivityResult, 0, len(s.params.SensitivityPrevalences))
	for _, prevalence := range s.params.SensitivityPrevalences {
		sub, err := s.forPrevalence(prevalence)
		if err != nil {
			return nil, err
		}
		result, err := sub.calculate(s.params.SensitivityAdoptionRate, s.params.EffectSize.Mean)
		if err != nil {
			return nil, err
		}
		results = append(results, model.SensitivityResult{
			Prevalence:    prevalence,
			BaselineTotal: sub.baselineTotal,
			Scenario:      result,
		})
	}
	return results, nil
}

// forPrevalence derives a calculator for the same parameters under another prevalence.
// The cache is shared because keys already include the prevalence.
func (s *ScenarioCalculatorService) forPrevalence(prevalence float64) (*ScenarioCalculatorService, error) {
	if !model.IsFraction(prevalence) {
		return nil, model.NewError(model.KindInvalidArgument, "sensitivity sweep", model.ErrInvalidPrevalence)
	}
	if prevalence == s.params.Prevalence {
		return s, nil
	}
	return NewScenarioCalculatorService(
		WithParameters(s.params.WithPrevalence(prevalence)),
		WithCacheInterface(s.cache),
	)
}

// TreatmentDistribution returns each bucket with its derived child and course counts.
func (s *ScenarioCalculatorService) TreatmentDistribution() []model.BucketCourses {
	rows := make([]model.BucketCourses, 0, len(s.params.TreatmentDistribution))
	for _, b := range s.params.TreatmentDistribution {
		rows = append(rows, model.BucketCourses{
			TreatmentBucket: b,
			Children:        roundCount(float64(s.childrenWithRRTI) * b.Fraction),
			Courses:         b.Fraction * b.Midpoint * float64(s.childrenWithRRTI),
		})
	}
	return rows
}

// Report assembles every table. The three sweeps are independent pure
// computations and run concurrently.
func (s *ScenarioCalculatorService) Report(ctx context.Context) (model.Report, error) {
	start := time.Now()

	report := model.Report{
		Parameters:            s.params.Clone(),
		ChildrenWithRRTI:      s.childrenWithRRTI,
		WeightedMeanCourses:   s.weightedMean,
		BaselineTotal:         s.baselineTotal,
		TreatmentDistribution: s.TreatmentDistribution(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		scenarios, err := s.adoptionScenarios()
		report.Scenarios = scenarios
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		intervals, err := s.confidenceIntervals()
		report.ConfidenceIntervals = intervals
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		sensitivity, err := s.sensitivity()
		report.Sensitivity = sensitivity
		return err
	})

	err := g.Wait()
	recordSweep("report", start, err)
	if err != nil {
		return model.Report{}, err
	}

	logger.Logger().Info().
		Int("scenarios", len(report.Scenarios)).
		Int("confidence_intervals", len(report.ConfidenceIntervals)).
		Int("sensitivity_points", len(report.Sensitivity)).
		Dur("duration", time.Since(start)).
		Msg("Scenario report generated")

	return report, nil
}

// orderByMagnitude returns the two effect sizes ordered by absolute value.
func orderByMagnitude(a, b float64) (smaller, larger float64) {
	if math.Abs(a) <= math.Abs(b) {
		return a, b
	}
	return b, a
}

func recordSweep(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = model.KindOf(err).String()
	}
	metrics.RecordScenarioCalculation(operation, time.Since(start), status)
}
