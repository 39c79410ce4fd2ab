package export

import (
	"fmt"

	"github.com/guttosm/lysate-impact/internal/domain/model"
)

// OtherClassLabel names the residual antibiotic class in chart stacks.
const OtherClassLabel = "Other"

// Charts holds the series behind the three report figures. Course counts are
// expressed in millions.
//
// @Description Chart-ready series derived from the report
type Charts struct {
	Ribbon     []RibbonPoint `json:"ribbon"`
	ClassStack []ClassStack  `json:"class_stack"`
	Forest     []ForestRow   `json:"forest"`
} // @name Charts

// RibbonPoint is one adoption step of the courses-avoided line with its interval band.
type RibbonPoint struct {
	AdoptionPercent float64 `json:"adoption_percent" example:"50"`
	Point           float64 `json:"point_millions" example:"7.615042"`
	Lower           float64 `json:"lower_millions" example:"4.488867"`
	Upper           float64 `json:"upper_millions" example:"10.741218"`
} // @name RibbonPoint

// ClassStack is one stacked bar: avoided courses per antibiotic class.
type ClassStack struct {
	AdoptionPercent float64        `json:"adoption_percent" example:"50"`
	Segments        []ClassSegment `json:"segments"`
} // @name ClassStack

// ClassSegment is one antibiotic class within a stacked bar.
type ClassSegment struct {
	Class    string  `json:"class" example:"Penicillins"`
	Millions float64 `json:"millions" example:"4.569025"`
} // @name ClassSegment

// ForestRow is a horizontal bar with whiskers for one adoption rate.
type ForestRow struct {
	Label       string  `json:"label" example:"50% adoption"`
	Point       float64 `json:"point_millions" example:"7.615042"`
	WhiskerLow  float64 `json:"whisker_low_millions" example:"4.488867"`
	WhiskerHigh float64 `json:"whisker_high_millions" example:"10.741218"`
	Percentage  string  `json:"percentage" example:"20.7%"`
} // @name ForestRow

// BuildCharts converts the report into chart series.
func BuildCharts(report model.Report) Charts {
	charts := Charts{
		Ribbon:     make([]RibbonPoint, 0, len(report.ConfidenceIntervals)),
		ClassStack: make([]ClassStack, 0, len(report.Scenarios)),
		Forest:     make([]ForestRow, 0, len(report.ConfidenceIntervals)),
	}

	for _, ci := range report.ConfidenceIntervals {
		charts.Ribbon = append(charts.Ribbon, RibbonPoint{
			AdoptionPercent: ci.AdoptionRate * 100,
			Point:           millions(ci.Point.CoursesReduced),
			Lower:           millions(ci.LowerBound.CoursesReduced),
			Upper:           millions(ci.UpperBound.CoursesReduced),
		})
		charts.Forest = append(charts.Forest, ForestRow{
			Label:       percentLabel(ci.AdoptionRate) + " adoption",
			Point:       millions(ci.Point.CoursesReduced),
			WhiskerLow:  millions(ci.LowerBound.CoursesReduced),
			WhiskerHigh: millions(ci.UpperBound.CoursesReduced),
			Percentage:  fmt.Sprintf("%.1f%%", ci.Point.PercentageReduction),
		})
	}

	for _, s := range report.Scenarios {
		segments := make([]ClassSegment, 0, len(s.ClassAvoided)+1)
		for _, c := range s.ClassAvoided {
			segments = append(segments, ClassSegment{Class: c.Class, Millions: millions(c.Courses)})
		}
		segments = append(segments, ClassSegment{Class: OtherClassLabel, Millions: millions(s.OtherAvoided)})
		charts.ClassStack = append(charts.ClassStack, ClassStack{
			AdoptionPercent: s.AdoptionRate * 100,
			Segments:        segments,
		})
	}

	return charts
}

func millions(courses int64) float64 {
	return float64(courses) / 1e6
}
