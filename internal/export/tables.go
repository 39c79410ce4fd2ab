// Package export renders a scenario report as CSV tables, a console summary
// and chart-ready series. It performs no calculation beyond unit conversion
// and formatting.
package export

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/guttosm/lysate-impact/internal/domain/model"
	"github.com/guttosm/lysate-impact/internal/logger"
	"github.com/guttosm/lysate-impact/internal/metrics"
)

// Table names, also used as CSV file stems.
const (
	TableScenarioResults       = "scenario_results"
	TableConfidenceIntervals   = "confidence_intervals"
	TableTreatmentDistribution = "treatment_distribution"
	TableSensitivityAnalysis   = "sensitivity_analysis"
)

// ErrUnknownTable is returned when a table name is not one of TableNames.
var ErrUnknownTable = model.NewError(model.KindInvalidArgument, "export", errors.New("unknown table"))

// Table is a header plus rows of already formatted cells.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// TableNames lists the exportable tables in write order.
func TableNames() []string {
	return []string{
		TableScenarioResults,
		TableConfidenceIntervals,
		TableTreatmentDistribution,
		TableSensitivityAnalysis,
	}
}

// BuildTable renders one named table from the report.
func BuildTable(report model.Report, name string) (Table, error) {
	switch name {
	case TableScenarioResults:
		return scenarioTable(report), nil
	case TableConfidenceIntervals:
		return intervalTable(report), nil
	case TableTreatmentDistribution:
		return distributionTable(report), nil
	case TableSensitivityAnalysis:
		return sensitivityTable(report), nil
	default:
		return Table{}, ErrUnknownTable
	}
}

func scenarioTable(report model.Report) Table {
	header := []string{"adoption_rate", "children_treated", "courses_reduced", "percentage_reduction"}
	for _, class := range report.Parameters.AntibioticClasses {
		header = append(header, classColumn(class.Name))
	}
	header = append(header, "other_avoided")

	rows := make([][]string, 0, len(report.Scenarios))
	for _, s := range report.Scenarios {
		row := []string{
			formatRate(s.AdoptionRate),
			formatCount(s.ChildrenTreated),
			formatCount(s.CoursesReduced),
			formatPercent(s.PercentageReduction),
		}
		for _, class := range report.Parameters.AntibioticClasses {
			row = append(row, formatCount(s.ClassCourses(class.Name)))
		}
		rows = append(rows, append(row, formatCount(s.OtherAvoided)))
	}
	return Table{Name: TableScenarioResults, Header: header, Rows: rows}
}

func intervalTable(report model.Report) Table {
	header := []string{
		"adoption_rate",
		"point_courses_reduced", "lower_courses_reduced", "upper_courses_reduced",
		"point_percentage", "lower_percentage", "upper_percentage",
	}
	rows := make([][]string, 0, len(report.ConfidenceIntervals))
	for _, ci := range report.ConfidenceIntervals {
		rows = append(rows, []string{
			formatRate(ci.AdoptionRate),
			formatCount(ci.Point.CoursesReduced),
			formatCount(ci.LowerBound.CoursesReduced),
			formatCount(ci.UpperBound.CoursesReduced),
			formatPercent(ci.Point.PercentageReduction),
			formatPercent(ci.LowerBound.PercentageReduction),
			formatPercent(ci.UpperBound.PercentageReduction),
		})
	}
	return Table{Name: TableConfidenceIntervals, Header: header, Rows: rows}
}

func distributionTable(report model.Report) Table {
	header := []string{"bucket", "fraction", "midpoint", "children", "courses"}
	rows := make([][]string, 0, len(report.TreatmentDistribution))
	for _, b := range report.TreatmentDistribution {
		rows = append(rows, []string{
			b.Label,
			formatRate(b.Fraction),
			strconv.FormatFloat(b.Midpoint, 'f', -1, 64),
			formatCount(b.Children),
			strconv.FormatFloat(b.Courses, 'f', 2, 64),
		})
	}
	return Table{Name: TableTreatmentDistribution, Header: header, Rows: rows}
}

func sensitivityTable(report model.Report) Table {
	header := []string{"prevalence", "children_with_rrti", "children_treated", "courses_reduced", "percentage_reduction"}
	rows := make([][]string, 0, len(report.Sensitivity))
	for _, p := range report.Sensitivity {
		rows = append(rows, []string{
			formatRate(p.Prevalence),
			formatCount(p.Scenario.ChildrenWithRRTI),
			formatCount(p.Scenario.ChildrenTreated),
			formatCount(p.Scenario.CoursesReduced),
			formatPercent(p.Scenario.PercentageReduction),
		})
	}
	return Table{Name: TableSensitivityAnalysis, Header: header, Rows: rows}
}

// WriteCSV writes the table with its header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteAll writes every table to dir as <name>.csv, creating dir if needed.
// It returns the written paths. Failures are KindIO errors and are not retried.
func WriteAll(dir string, report model.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, model.NewError(model.KindIO, "create export dir", err)
	}

	paths := make([]string, 0, len(TableNames()))
	for _, name := range TableNames() {
		table, err := BuildTable(report, name)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, name+".csv")
		if err := writeFile(path, table); err != nil {
			metrics.RecordExport(name, "error")
			return paths, model.NewError(model.KindIO, "write "+name, err)
		}
		metrics.RecordExport(name, "success")
		paths = append(paths, path)
	}

	logger.Logger().Info().
		Str("dir", dir).
		Int("tables", len(paths)).
		Msg("Report exported")

	return paths, nil
}

func writeFile(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(f, t)
}

func classColumn(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_")) + "_avoided"
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatCount(v int64) string {
	return strconv.FormatInt(v, 10)
}
