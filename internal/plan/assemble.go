package plan

import (
	"fmt"
	"sort"

	"stratplan/internal/catalog"
)

// AssembleInput carries everything one plan assembly needs. Callers construct
// it per request; Assemble reads it and returns a new record, so one assembler
// can serve concurrent requests without shared mutable state.
type AssembleInput struct {
	ID              string
	Profile         CompanyProfile
	BaselineMetrics map[string]any

	RevenueTargets  map[int]float64
	CustomerTargets map[int]float64
	MarginTargets   map[int]float64
	// OtherTargets maps metric name -> year -> value for arbitrary extra
	// metrics (net profit, EBITDA, ...).
	OtherTargets map[string]map[int]float64

	Moves StrategicMoves
	Swot  *SwotAnalysis

	// StartYear anchors the milestone timeline. Zero means "use the first
	// target year", falling back to nothing sensible only when the plan has
	// no targets at all, in which case milestones are anchored at year 1 of
	// an empty plan and the caller should have set it.
	StartYear          int
	MonthsPerMilestone int
}

// Assemble builds the normalized plan record. The target table's year set is
// the union of years across all four target mappings, sorted ascending; a year
// missing a particular metric holds nil for it. Assembly itself has no failure
// modes: absent optional inputs become empty containers.
func Assemble(in AssembleInput) PlanRecord {
	years := unionYears(in)
	rows := make([]TargetRow, 0, len(years))
	extraNames := sortedMetricNames(in.OtherTargets)
	for _, year := range years {
		row := TargetRow{Year: year}
		if v, ok := in.RevenueTargets[year]; ok {
			row.Revenue = ptr(v)
		}
		if v, ok := in.CustomerTargets[year]; ok {
			row.Customers = ptr(v)
		}
		if v, ok := in.MarginTargets[year]; ok {
			row.GrossMargin = ptr(v)
		}
		for _, name := range extraNames {
			if v, ok := in.OtherTargets[name][year]; ok {
				row.Extras = append(row.Extras, ExtraMetric{Name: name, Value: v})
			}
		}
		rows = append(rows, row)
	}

	startYear := in.StartYear
	if startYear == 0 && len(years) > 0 {
		startYear = years[0]
	}

	id := in.ID
	if id == "" {
		id = fmt.Sprintf("PLAN-%d", startYear)
	}

	baseline := in.BaselineMetrics
	if baseline == nil {
		baseline = map[string]any{}
	}

	return PlanRecord{
		ID:               id,
		ExecutiveSummary: executiveSummary(in.Profile),
		Profile:          in.Profile,
		BaselineMetrics:  baseline,
		Targets:          rows,
		Moves:            in.Moves,
		Swot:             in.Swot,
		Milestones:       Milestones(startYear, in.MonthsPerMilestone),
		KPIs:             catalog.KPIs(),
		Services:         catalog.Services(),
	}
}

func executiveSummary(profile CompanyProfile) string {
	return fmt.Sprintf(
		"%s aims to realise its vision of %s by executing a three-year plan built around SMART goals, clear milestones and disciplined measurement.",
		profile.Name, profile.Vision,
	)
}

func unionYears(in AssembleInput) []int {
	seen := make(map[int]struct{})
	for year := range in.RevenueTargets {
		seen[year] = struct{}{}
	}
	for year := range in.CustomerTargets {
		seen[year] = struct{}{}
	}
	for year := range in.MarginTargets {
		seen[year] = struct{}{}
	}
	for _, byYear := range in.OtherTargets {
		for year := range byYear {
			seen[year] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

func sortedMetricNames(targets map[string]map[int]float64) []string {
	if len(targets) == 0 {
		return nil
	}
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ptr(v float64) *float64 {
	return &v
}
