package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/lysate-impact/internal/domain/dto"
	"github.com/guttosm/lysate-impact/internal/domain/model"
	"github.com/guttosm/lysate-impact/internal/export"
	"github.com/guttosm/lysate-impact/internal/i18n"
	"github.com/guttosm/lysate-impact/internal/metrics"
	"github.com/guttosm/lysate-impact/internal/service"
)

// ParametersResponse is the parameter set together with its derived baseline.
//
// @Description Parameter set with derived totals
type ParametersResponse struct {
	Parameters          model.ParameterSet `json:"parameters"`
	ChildrenWithRRTI    int64              `json:"children_with_rrti" example:"8015833"`
	WeightedMeanCourses float64            `json:"weighted_mean_courses" example:"4.59"`
	OtherClassFraction  float64            `json:"other_class_fraction" example:"0.2"`
	BaselineTotal       float64            `json:"baseline_total" example:"36792673.47"`
} // @name ParametersResponse

// Handler provides HTTP handlers for scenario routes.
type Handler struct {
	calculator service.ScenarioCalculator
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.ScenarioCalculator) *Handler {
	return &Handler{calculator: calculator}
}

// GetParameters handles GET /api/parameters requests.
//
// @Summary      Get parameter set
// @Description  Returns the literature constants every scenario is computed from, with the derived baseline.
// @Tags         Parameters
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=ParametersResponse}
// @Router       /api/parameters [get]
func (h *Handler) GetParameters(c *gin.Context) {
	params := h.calculator.Parameters()
	NewResponseBuilder(c).SuccessOK(ParametersResponse{
		Parameters:          params,
		ChildrenWithRRTI:    params.ChildrenWithRRTI(),
		WeightedMeanCourses: params.WeightedMeanCourses(),
		OtherClassFraction:  params.OtherClassFraction(),
		BaselineTotal:       h.calculator.BaselineTotal(),
	})
}

// CalculateScenario handles POST /api/scenarios/calculate requests.
//
// @Summary      Calculate one scenario
// @Description  Computes children treated, courses avoided and the reduction against baseline for one adoption rate. The mean effect size is used unless effect_size is given.
// @Tags         Scenarios
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateScenarioRequest true "Scenario inputs"
// @Success      200 {object} dto.SuccessResponse{data=model.ScenarioResult}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/scenarios/calculate [post]
func (h *Handler) CalculateScenario(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CalculateScenarioRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		switch {
		case errors.As(err, &validationErr) && validationErr == dto.ErrInvalidEffectSize:
			metrics.RecordScenarioCalculation("calculate", 0, "validation_error")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationEffectSize, err)
		case errors.As(err, &validationErr):
			metrics.RecordScenarioCalculation("calculate", 0, "validation_error")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationAdoptionRate, err)
		default:
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	effectSize := req.EffectSizeOr(h.calculator.Parameters().EffectSize.Mean)
	result, err := h.calculator.Calculate(*req.AdoptionRate, effectSize)
	if err != nil {
		builder.CalculationError(err)
		return
	}

	builder.SuccessOK(result)
}

// ListScenarios handles GET /api/scenarios requests.
//
// @Summary      Adoption scenarios
// @Description  Point-estimate scenario for every configured adoption rate.
// @Tags         Scenarios
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.ScenarioResult}
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/scenarios [get]
func (h *Handler) ListScenarios(c *gin.Context) {
	respond(c, h.calculator.AdoptionScenarios)
}

// ConfidenceIntervals handles GET /api/scenarios/confidence-intervals requests.
//
// @Summary      Confidence intervals
// @Description  Point, lower and upper scenarios per adoption rate. The upper bound always avoids the most courses.
// @Tags         Scenarios
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.ConfidenceIntervalResult}
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/scenarios/confidence-intervals [get]
func (h *Handler) ConfidenceIntervals(c *gin.Context) {
	respond(c, h.calculator.ConfidenceIntervals)
}

// Sensitivity handles GET /api/scenarios/sensitivity requests.
//
// @Summary      Prevalence sensitivity
// @Description  Recomputes the scenario at the fixed sensitivity adoption rate for each configured prevalence.
// @Tags         Scenarios
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.SensitivityResult}
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/scenarios/sensitivity [get]
func (h *Handler) Sensitivity(c *gin.Context) {
	respond(c, h.calculator.Sensitivity)
}

// TreatmentDistribution handles GET /api/treatment-distribution requests.
//
// @Summary      Treatment distribution
// @Description  Course-count buckets with derived child and course counts.
// @Tags         Parameters
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.BucketCourses}
// @Router       /api/treatment-distribution [get]
func (h *Handler) TreatmentDistribution(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.calculator.TreatmentDistribution())
}

// GetReport handles GET /api/report requests.
//
// @Summary      Full report
// @Description  Every table derived from the parameter set.
// @Tags         Report
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.Report}
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/report [get]
func (h *Handler) GetReport(c *gin.Context) {
	report, err := h.calculator.Report(c.Request.Context())
	if err != nil {
		NewResponseBuilder(c).CalculationError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(report)
}

// GetCharts handles GET /api/charts requests.
//
// @Summary      Chart series
// @Description  Ribbon, stacked class and forest series with course counts in millions.
// @Tags         Report
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=export.Charts}
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/charts [get]
func (h *Handler) GetCharts(c *gin.Context) {
	report, err := h.calculator.Report(c.Request.Context())
	if err != nil {
		NewResponseBuilder(c).CalculationError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(export.BuildCharts(report))
}

// ExportTable handles GET /api/export/:table requests.
//
// @Summary      Export a table as CSV
// @Description  One of scenario_results, confidence_intervals, treatment_distribution, sensitivity_analysis.
// @Tags         Report
// @Produce      text/csv
// @Param        table path string true "Table name"
// @Success      200 {string} string "CSV document"
// @Failure      404 {object} dto.ErrorResponse "Unknown table"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/export/{table} [get]
func (h *Handler) ExportTable(c *gin.Context) {
	name := c.Param("table")
	builder := NewResponseBuilder(c)

	report, err := h.calculator.Report(c.Request.Context())
	if err != nil {
		builder.CalculationError(err)
		return
	}

	table, err := export.BuildTable(report, name)
	if err != nil {
		metrics.RecordExport("unknown", "not_found")
		builder.CalculationError(err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, table); err != nil {
		metrics.RecordExport(name, "error")
		builder.CalculationError(model.NewError(model.KindIO, "export "+name, err))
		return
	}

	metrics.RecordExport(name, "success")
	c.Header("Content-Disposition", `attachment; filename="`+name+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// respond runs a sweep and writes its result or mapped error.
func respond[T any](c *gin.Context, sweep func() (T, error)) {
	result, err := sweep()
	if err != nil {
		NewResponseBuilder(c).CalculationError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(result)
}
