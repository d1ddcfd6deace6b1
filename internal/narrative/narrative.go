// Package narrative renders an assembled plan record into multi-paragraph
// prose. It is a single-pass, purely functional transform over the plan's
// target table and qualitative sections.
package narrative

import (
	"errors"
	"fmt"
	"strings"

	"stratplan/internal/plan"
)

// ErrMissingSwot reports that narrative generation was asked to run against a
// plan whose SWOT section was never supplied. The check happens before any
// interpolation so a missing section can never produce partial text.
var ErrMissingSwot = errors.New("missing required section: swot_analysis")

// Narrate produces the strategic narrative: six paragraphs separated by blank
// lines, covering the company identity, the year-by-year targets in table
// order, the Winning Moves, the SWOT analysis, execution discipline and a
// forward-looking close.
func Narrate(record plan.PlanRecord) (string, error) {
	if record.Swot == nil {
		return "", ErrMissingSwot
	}

	paragraphs := []string{
		intro(record.Profile),
		targetsParagraph(record.Targets),
		movesParagraph(record.Moves),
		swotParagraph(*record.Swot),
		executionParagraph,
		closing(record.Profile),
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

func intro(profile plan.CompanyProfile) string {
	return fmt.Sprintf(
		"%s exists to %s. Our vision is to %s. To achieve this ambition, we have created a three-year strategic plan grounded in our core values: %s.",
		profile.Name, profile.Mission, profile.Vision, strings.Join(profile.CoreValues, ", "),
	)
}

func targetsParagraph(rows []plan.TargetRow) string {
	sentences := make([]string, 0, len(rows))
	for _, row := range rows {
		sentences = append(sentences, targetSentence(row))
	}
	return strings.Join(sentences, " ")
}

// targetSentence emits one sentence per table row. Metrics with no value for
// the row are skipped entirely, never rendered as zero or "N/A".
func targetSentence(row plan.TargetRow) string {
	var goals []string
	if row.Revenue != nil {
		goals = append(goals, fmt.Sprintf("generate %s in revenue", formatMoney(*row.Revenue)))
	}
	if row.Customers != nil {
		goals = append(goals, fmt.Sprintf("serve %s customers", formatCount(*row.Customers)))
	}

	var b strings.Builder
	extras := row.Extras
	switch {
	case len(goals) > 0:
		fmt.Fprintf(&b, "In %d, we aim to %s", row.Year, strings.Join(goals, " and "))
		if row.GrossMargin != nil {
			fmt.Fprintf(&b, ", achieving a gross margin of %s", formatPercent(*row.GrossMargin))
		}
	case row.GrossMargin != nil:
		fmt.Fprintf(&b, "In %d, we aim to achieve a gross margin of %s", row.Year, formatPercent(*row.GrossMargin))
	default:
		// Rows exist only for years with at least one value, so extras carry
		// the whole sentence here.
		first := extras[0]
		fmt.Fprintf(&b, "In %d, we aim for %s of %s", row.Year, metricLabel(first.Name), formatMoney(first.Value))
		extras = extras[1:]
	}
	for _, metric := range extras {
		fmt.Fprintf(&b, " with %s of %s", metricLabel(metric.Name), formatMoney(metric.Value))
	}
	b.WriteString(".")
	return b.String()
}

func movesParagraph(moves plan.StrategicMoves) string {
	return fmt.Sprintf(
		"To realise these goals, we will pursue a focused set of Winning Moves. On the revenue side we will: %s. On the profitability side we will: %s.",
		joinMoves(moves.RevenueMoves), joinMoves(moves.ProfitMoves),
	)
}

func joinMoves(moves []plan.Move) string {
	descriptions := make([]string, 0, len(moves))
	for _, move := range moves {
		descriptions = append(descriptions, move.Description)
	}
	return strings.Join(descriptions, "; ")
}

func swotParagraph(swot plan.SwotAnalysis) string {
	return fmt.Sprintf(
		"Our SWOT analysis reveals that our strengths—%s—position us well to capitalise on opportunities such as %s. However, we must mitigate weaknesses like %s and guard against threats such as %s.",
		strings.Join(swot.Strengths, ", "),
		strings.Join(swot.Opportunities, ", "),
		strings.Join(swot.Weaknesses, ", "),
		strings.Join(swot.Threats, ", "),
	)
}

const executionParagraph = "We will execute against clear milestones every six months and monitor key performance indicators across finance, customers, marketing, operations and HR. " +
	"Our plan leverages best-in-class service providers for legal, accounting, payroll, marketing and AI-enabled HR to build a strong operational foundation."

func closing(profile plan.CompanyProfile) string {
	return fmt.Sprintf(
		"By aligning our team around this roadmap and measuring our progress relentlessly, %s will be well positioned to achieve its three-year objectives and move closer to its long-term vision.",
		profile.Name,
	)
}

// metricLabel turns a metric key like "net_profit" into prose ("net profit").
func metricLabel(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
