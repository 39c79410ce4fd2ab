package service

import (
	"context"
	"math"
	"time"

	"github.com/guttosm/lysate-impact/internal/domain/model"
	"github.com/guttosm/lysate-impact/internal/logger"
	"github.com/guttosm/lysate-impact/internal/metrics"
	"github.com/guttosm/lysate-impact/internal/service/cache"
)

// ScenarioCalculator defines the interface for scenario calculation operations.
type ScenarioCalculator interface {
	// Calculate computes one scenario for the given adoption rate and effect size.
	Calculate(adoptionRate, effectSize float64) (model.ScenarioResult, error)
	// AdoptionScenarios computes the point-estimate scenario for every configured adoption rate.
	AdoptionScenarios() ([]model.ScenarioResult, error)
	// ConfidenceIntervals computes point, lower and upper scenarios for every adoption rate.
	ConfidenceIntervals() ([]model.ConfidenceIntervalResult, error)
	// Sensitivity sweeps the configured prevalence values at a fixed adoption rate.
	Sensitivity() ([]model.SensitivityResult, error)
	// TreatmentDistribution returns the buckets with derived child and course counts.
	TreatmentDistribution() []model.BucketCourses
	// Report assembles every table for the parameter set.
	Report(ctx context.Context) (model.Report, error)
	// Parameters returns a copy of the parameter set.
	Parameters() model.ParameterSet
	// BaselineTotal returns the annual baseline courses used as the percentage denominator.
	BaselineTotal() float64
	// Close releases the cache's background resources
	Close()
}

// Option configures a ScenarioCalculatorService.
type Option func(*ScenarioCalculatorService)

// ScenarioCalculatorService implements ScenarioCalculator for one immutable
// parameter set. The baseline total is derived once at construction and shared
// by every scenario, so all percentages use the exact same denominator.
type ScenarioCalculatorService struct {
	params           model.ParameterSet
	childrenWithRRTI int64
	weightedMean     float64
	baselineTotal    float64
	cache            cache.Cache
}

// NewScenarioCalculatorService validates the parameter set and derives the baseline.
// It fails with a configuration error rather than producing NaN percentages later.
func NewScenarioCalculatorService(opts ...Option) (*ScenarioCalculatorService, error) {
	s := &ScenarioCalculatorService{
		params: model.DefaultParameters(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.params.Validate(); err != nil {
		return nil, err
	}

	baseline, err := BaselineTotal(s.params)
	if err != nil {
		return nil, err
	}

	s.childrenWithRRTI = s.params.ChildrenWithRRTI()
	s.weightedMean = s.params.WeightedMeanCourses()
	s.baselineTotal = baseline

	logger.Logger().Debug().
		Int64("children_with_rrti", s.childrenWithRRTI).
		Float64("weighted_mean_courses", s.weightedMean).
		Float64("baseline_total", s.baselineTotal).
		Msg("Scenario calculator initialized")

	return s, nil
}

// WithParameters replaces the default parameter set.
func WithParameters(p model.ParameterSet) Option {
	return func(s *ScenarioCalculatorService) {
		s.params = p.Clone()
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *ScenarioCalculatorService) {
		if capacity <= 0 {
			return
		}
		c, err := newRistrettoCache(capacity, ttl)
		if err != nil {
			logger.Logger().Warn().Err(err).Msg("Scenario cache disabled")
			return
		}
		s.cache = c
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *ScenarioCalculatorService) {
		s.cache = c
	}
}

// BaselineTotal returns Σ(bucket fraction × bucket midpoint) × children with RRTI.
// A non-positive result means the distribution is misconfigured.
func BaselineTotal(p model.ParameterSet) (float64, error) {
	baseline := p.WeightedMeanCourses() * float64(p.ChildrenWithRRTI())
	if !(baseline > 0) || math.IsInf(baseline, 0) {
		return 0, model.NewError(model.KindConfiguration, "compute baseline", model.ErrZeroBaseline)
	}
	return baseline, nil
}

// Parameters returns a copy of the parameter set.
func (s *ScenarioCalculatorService) Parameters() model.ParameterSet {
	return s.params.Clone()
}

// BaselineTotal returns the baseline computed at construction.
func (s *ScenarioCalculatorService) BaselineTotal() float64 {
	return s.baselineTotal
}

// ChildrenWithRRTI returns the target population for the parameter set.
func (s *ScenarioCalculatorService) ChildrenWithRRTI() int64 {
	return s.childrenWithRRTI
}

// Calculate computes one scenario.
func (s *ScenarioCalculatorService) Calculate(adoptionRate, effectSize float64) (model.ScenarioResult, error) {
	start := time.Now()

	result, err := s.calculate(adoptionRate, effectSize)

	status := "success"
	if err != nil {
		status = model.KindOf(err).String()
	}
	metrics.RecordScenarioCalculation("calculate", time.Since(start), status)

	return result, err
}

// calculate runs the pipeline without recording metrics, so sweeps count once.
func (s *ScenarioCalculatorService) calculate(adoptionRate, effectSize float64) (model.ScenarioResult, error) {
	if !model.IsFraction(adoptionRate) {
		return model.ScenarioResult{}, model.NewError(model.KindInvalidArgument, "calculate scenario", model.ErrInvalidAdoptionRate)
	}
	if math.IsNaN(effectSize) || math.IsInf(effectSize, 0) {
		return model.ScenarioResult{}, model.NewError(model.KindInvalidArgument, "calculate scenario", model.ErrInvalidEffectSize)
	}

	key := scenarioKey(s.params.Prevalence, adoptionRate, effectSize)
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			return result, nil
		}
	}

	result := s.calculateCore(adoptionRate, effectSize)

	if s.cache != nil {
		s.cache.Set(key, result)
	}

	return result, nil
}

// calculateCore rounds each derived field independently, in pipeline order.
func (s *ScenarioCalculatorService) calculateCore(adoptionRate, effectSize float64) model.ScenarioResult {
	childrenTreated := roundCount(float64(s.childrenWithRRTI) * adoptionRate)
	coursesReduced := roundCount(float64(childrenTreated) * math.Abs(effectSize))

	classAvoided := make([]model.ClassAvoided, 0, len(s.params.AntibioticClasses))
	var named int64
	for _, class := range s.params.AntibioticClasses {
		courses := roundCount(float64(coursesReduced) * class.Fraction)
		named += courses
		classAvoided = append(classAvoided, model.ClassAvoided{
			Class:    class.Name,
			Fraction: class.Fraction,
			Courses:  courses,
		})
	}

	// Independent rounding can push the named classes a course or two past the total.
	other := coursesReduced - named
	if other < 0 {
		other = 0
	}

	return model.ScenarioResult{
		AdoptionRate:        adoptionRate,
		EffectSize:          effectSize,
		Prevalence:          s.params.Prevalence,
		ChildrenWithRRTI:    s.childrenWithRRTI,
		ChildrenTreated:     childrenTreated,
		CoursesReduced:      coursesReduced,
		PercentageReduction: 100 * float64(coursesReduced) / s.baselineTotal,
		ClassAvoided:        classAvoided,
		OtherAvoided:        other,
	}
}

// Close stops the cache. Later calculations miss the cache and recompute.
func (s *ScenarioCalculatorService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// roundCount rounds half away from zero, matching the published tables.
func roundCount(v float64) int64 {
	return int64(math.Round(v))
}
