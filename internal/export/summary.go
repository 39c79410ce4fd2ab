package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guttosm/lysate-impact/internal/domain/model"
	"github.com/guttosm/lysate-impact/internal/i18n"
)

const (
	labelWidth = 12
	cellWidth  = 20
)

// summaryStyles holds the styles bound to one output's renderer, so plain
// writers (files, buffers) receive unstyled text.
type summaryStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	cell    lipgloss.Style
}

func newSummaryStyles(w io.Writer) summaryStyles {
	r := lipgloss.NewRenderer(w)
	return summaryStyles{
		title:   r.NewStyle().Bold(true).Underline(true),
		section: r.NewStyle().Bold(true).MarginTop(1),
		label:   r.NewStyle().Width(labelWidth),
		cell:    r.NewStyle().Width(cellWidth).Align(lipgloss.Right),
	}
}

// WriteSummary prints a human-readable restatement of the report in the given
// locale. Numbers use the locale's digit grouping.
func WriteSummary(w io.Writer, report model.Report, locale string) error {
	t := i18n.GetTranslator()
	p := i18n.Printer(locale)
	st := newSummaryStyles(w)
	tr := func(key string) string { return t.Translate(key, locale) }

	var b strings.Builder
	line := func(s string) { b.WriteString(s + "\n") }
	row := func(label string, cells ...string) {
		parts := []string{st.label.Render(label)}
		for _, c := range cells {
			parts = append(parts, st.cell.Render(c))
		}
		line(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	line(st.title.Render(tr(i18n.SummaryKeyTitle)))
	line(p.Sprintf("%s: %d", tr(i18n.SummaryKeyPopulation), report.ChildrenWithRRTI))
	line(p.Sprintf("%s: %.0f", tr(i18n.SummaryKeyBaseline), report.BaselineTotal))

	line(st.section.Render(tr(i18n.SummaryKeyScenarios)))
	row(tr(i18n.SummaryKeyAdoption), tr(i18n.SummaryKeyTreated), tr(i18n.SummaryKeyCoursesAvoided), tr(i18n.SummaryKeyReduction))
	for _, s := range report.Scenarios {
		row(percentLabel(s.AdoptionRate),
			p.Sprintf("%d", s.ChildrenTreated),
			p.Sprintf("%d", s.CoursesReduced),
			p.Sprintf("%.1f%%", s.PercentageReduction))
	}

	line(st.section.Render(tr(i18n.SummaryKeyIntervals)))
	row(tr(i18n.SummaryKeyAdoption), tr(i18n.SummaryKeyLowerBound), tr(i18n.SummaryKeyPointEstimate), tr(i18n.SummaryKeyUpperBound))
	for _, ci := range report.ConfidenceIntervals {
		row(percentLabel(ci.AdoptionRate),
			p.Sprintf("%d", ci.LowerBound.CoursesReduced),
			p.Sprintf("%d", ci.Point.CoursesReduced),
			p.Sprintf("%d", ci.UpperBound.CoursesReduced))
	}

	line(st.section.Render(tr(i18n.SummaryKeySensitivity)))
	row(tr(i18n.SummaryKeyPrevalence), tr(i18n.SummaryKeyPopulation), tr(i18n.SummaryKeyCoursesAvoided), tr(i18n.SummaryKeyReduction))
	for _, sr := range report.Sensitivity {
		row(percentLabel(sr.Prevalence),
			p.Sprintf("%d", sr.Scenario.ChildrenWithRRTI),
			p.Sprintf("%d", sr.Scenario.CoursesReduced),
			p.Sprintf("%.1f%%", sr.Scenario.PercentageReduction))
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return model.NewError(model.KindIO, "write summary", err)
	}
	return nil
}

// percentLabel renders a fraction as a whole or one-decimal percentage, e.g. "25%" or "12.5%".
func percentLabel(v float64) string {
	s := fmt.Sprintf("%.1f", v*100)
	s = strings.TrimSuffix(s, ".0")
	return s + "%"
}
