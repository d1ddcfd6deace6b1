// Package plan assembles caller-supplied business inputs into a normalized
// strategic plan record. Assembly is a pure transform: no instance state, no
// I/O, nothing survives a single call.
package plan

import "stratplan/internal/catalog"

// CompanyProfile is the identity block of a plan. Immutable once supplied.
type CompanyProfile struct {
	Name       string   `json:"name" yaml:"name"`
	Mission    string   `json:"mission" yaml:"mission"`
	Vision     string   `json:"vision" yaml:"vision"`
	CoreValues []string `json:"core_values" yaml:"core_values"`
}

// Move is one strategic initiative. Only the description is structural;
// owner, criteria and projections are optional passthrough metadata.
type Move struct {
	Description      string   `json:"description" yaml:"description"`
	Owner            string   `json:"owner,omitempty" yaml:"owner,omitempty"`
	SuccessCriteria  string   `json:"success_criteria,omitempty" yaml:"success_criteria,omitempty"`
	ProjectedRevenue *float64 `json:"projected_revenue,omitempty" yaml:"projected_revenue,omitempty"`
	TestingMetrics   string   `json:"testing_metrics,omitempty" yaml:"testing_metrics,omitempty"`
}

// StrategicMoves holds the Winning Moves split by intent: growing revenue
// versus improving profitability.
type StrategicMoves struct {
	RevenueMoves []Move `json:"revenue_moves" yaml:"revenue_moves"`
	ProfitMoves  []Move `json:"profit_moves" yaml:"profit_moves"`
}

// SwotAnalysis is the four-category qualitative analysis. The plan carries it
// as a pointer: nil means the section was never supplied, which narrative
// generation treats as a hard failure rather than empty prose.
type SwotAnalysis struct {
	Strengths     []string `json:"strengths" yaml:"strengths"`
	Weaknesses    []string `json:"weaknesses" yaml:"weaknesses"`
	Opportunities []string `json:"opportunities" yaml:"opportunities"`
	Threats       []string `json:"threats" yaml:"threats"`
}

// ExtraMetric is a named target value on a single year's row. Represented as
// a slice entry (not a map key) to keep JSON output deterministic.
type ExtraMetric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TargetRow is one year of the unified target table. A metric absent from its
// source mapping for that year is nil, never zero; the narrative step skips
// absent metrics entirely.
type TargetRow struct {
	Year        int           `json:"year"`
	Revenue     *float64      `json:"revenue,omitempty"`
	Customers   *float64      `json:"customers,omitempty"`
	GrossMargin *float64      `json:"gross_margin,omitempty"`
	Extras      []ExtraMetric `json:"extras,omitempty"`
}

// Milestone is one dated checkpoint on the execution timeline.
type Milestone struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// PlanRecord is the fully assembled plan. Built fresh per request, never
// mutated after construction, never persisted.
type PlanRecord struct {
	ID               string                    `json:"id"`
	ExecutiveSummary string                    `json:"executive_summary"`
	Profile          CompanyProfile            `json:"company_profile"`
	BaselineMetrics  map[string]any            `json:"baseline_metrics"`
	Targets          []TargetRow               `json:"strategic_targets"`
	Moves            StrategicMoves            `json:"winning_moves"`
	Swot             *SwotAnalysis             `json:"swot_analysis"`
	Milestones       []Milestone               `json:"milestones"`
	KPIs             []catalog.KPICategory     `json:"recommended_kpis"`
	Services         []catalog.ServiceCategory `json:"service_recommendations"`
}
