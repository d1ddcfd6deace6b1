// Package request defines the inbound plan request record and converts it
// into the typed assembler input, rejecting non-numeric target values and
// malformed structure with typed errors before any assembly runs.
package request

import (
	"encoding/json"
	"fmt"
	"strconv"

	"stratplan/internal/plan"
)

// TargetYear is one year's worth of inbound targets. Values are decoded
// loosely so a present-but-non-numeric value can be rejected with a typed
// error naming the year and metric instead of a generic decode failure.
type TargetYear struct {
	Revenue   any `json:"revenue,omitempty" yaml:"revenue,omitempty"`
	Customers any `json:"customers,omitempty" yaml:"customers,omitempty"`
	Margin    any `json:"margin,omitempty" yaml:"margin,omitempty"`
}

// MoveRecord is one inbound Winning Move. Kind routes it to the revenue or
// profit list; an empty kind counts as a revenue move.
type MoveRecord struct {
	Description      string `json:"description" yaml:"description"`
	Kind             string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Owner            string `json:"owner,omitempty" yaml:"owner,omitempty"`
	SuccessCriteria  string `json:"success_criteria,omitempty" yaml:"success_criteria,omitempty"`
	ProjectedRevenue any    `json:"projected_revenue,omitempty" yaml:"projected_revenue,omitempty"`
	TestingMetrics   string `json:"testing_metrics,omitempty" yaml:"testing_metrics,omitempty"`
}

// SwotRecord mirrors plan.SwotAnalysis on the wire.
type SwotRecord struct {
	Strengths     []string `json:"strengths" yaml:"strengths"`
	Weaknesses    []string `json:"weaknesses" yaml:"weaknesses"`
	Opportunities []string `json:"opportunities" yaml:"opportunities"`
	Threats       []string `json:"threats" yaml:"threats"`
}

// PlanRequest is the validated inbound record. Targets are keyed
// "year1"/"year2"/"year3" relative to the start year; other_targets carries
// arbitrary extra metrics with the same year keys.
type PlanRequest struct {
	CompanyName     string                    `json:"company_name" yaml:"company_name"`
	Mission         string                    `json:"mission" yaml:"mission"`
	Vision          string                    `json:"vision" yaml:"vision"`
	CoreValues      []string                  `json:"core_values" yaml:"core_values"`
	StartYear       int                       `json:"start_year,omitempty" yaml:"start_year,omitempty"`
	Targets         map[string]TargetYear     `json:"targets" yaml:"targets"`
	OtherTargets    map[string]map[string]any `json:"other_targets,omitempty" yaml:"other_targets,omitempty"`
	WinningMoves    []MoveRecord              `json:"winning_moves" yaml:"winning_moves"`
	Swot            *SwotRecord               `json:"swot" yaml:"swot"`
	BaselineMetrics map[string]any            `json:"baseline_metrics" yaml:"baseline_metrics"`
}

// Convert validates the request and produces the assembler input.
// defaultStartYear anchors the "year1"/"year2"/"year3" keys when the request
// does not carry its own start_year; callers pass the current year.
func Convert(req PlanRequest, defaultStartYear int) (plan.AssembleInput, error) {
	if req.CompanyName == "" {
		return plan.AssembleInput{}, &MalformedRequestError{Field: "company_name", Reason: "is required"}
	}

	startYear := req.StartYear
	if startYear == 0 {
		startYear = defaultStartYear
	}

	in := plan.AssembleInput{
		Profile: plan.CompanyProfile{
			Name:       req.CompanyName,
			Mission:    req.Mission,
			Vision:     req.Vision,
			CoreValues: req.CoreValues,
		},
		BaselineMetrics: req.BaselineMetrics,
		RevenueTargets:  map[int]float64{},
		CustomerTargets: map[int]float64{},
		MarginTargets:   map[int]float64{},
		StartYear:       startYear,
	}

	for key, targets := range req.Targets {
		year, err := resolveYearKey(key, startYear)
		if err != nil {
			return plan.AssembleInput{}, err
		}
		if targets.Revenue != nil {
			v, err := toNumber(targets.Revenue, year, "revenue")
			if err != nil {
				return plan.AssembleInput{}, err
			}
			in.RevenueTargets[year] = v
		}
		if targets.Customers != nil {
			v, err := toNumber(targets.Customers, year, "customers")
			if err != nil {
				return plan.AssembleInput{}, err
			}
			in.CustomerTargets[year] = v
		}
		if targets.Margin != nil {
			v, err := toNumber(targets.Margin, year, "margin")
			if err != nil {
				return plan.AssembleInput{}, err
			}
			if v < 0 || v > 1 {
				return plan.AssembleInput{}, &InvalidTargetValueError{Year: year, Metric: "margin", Value: targets.Margin}
			}
			in.MarginTargets[year] = v
		}
	}

	if len(req.OtherTargets) > 0 {
		in.OtherTargets = make(map[string]map[int]float64, len(req.OtherTargets))
		for metric, byYear := range req.OtherTargets {
			if metric == "" {
				return plan.AssembleInput{}, &MalformedRequestError{Field: "other_targets", Reason: "metric name must not be empty"}
			}
			values := make(map[int]float64, len(byYear))
			for key, raw := range byYear {
				year, err := resolveYearKey(key, startYear)
				if err != nil {
					return plan.AssembleInput{}, err
				}
				if raw == nil {
					continue
				}
				v, err := toNumber(raw, year, metric)
				if err != nil {
					return plan.AssembleInput{}, err
				}
				values[year] = v
			}
			in.OtherTargets[metric] = values
		}
	}

	for idx, move := range req.WinningMoves {
		converted, err := convertMove(move, idx)
		if err != nil {
			return plan.AssembleInput{}, err
		}
		if move.Kind == "profit" {
			in.Moves.ProfitMoves = append(in.Moves.ProfitMoves, converted)
		} else {
			in.Moves.RevenueMoves = append(in.Moves.RevenueMoves, converted)
		}
	}

	if req.Swot != nil {
		in.Swot = &plan.SwotAnalysis{
			Strengths:     req.Swot.Strengths,
			Weaknesses:    req.Swot.Weaknesses,
			Opportunities: req.Swot.Opportunities,
			Threats:       req.Swot.Threats,
		}
	}

	return in, nil
}

func convertMove(move MoveRecord, idx int) (plan.Move, error) {
	if move.Description == "" {
		return plan.Move{}, &MalformedRequestError{
			Field:  fmt.Sprintf("winning_moves[%d].description", idx),
			Reason: "is required",
		}
	}
	if move.Kind != "" && move.Kind != "revenue" && move.Kind != "profit" {
		return plan.Move{}, &MalformedRequestError{
			Field:  fmt.Sprintf("winning_moves[%d].kind", idx),
			Reason: fmt.Sprintf("must be \"revenue\" or \"profit\", got %q", move.Kind),
		}
	}
	converted := plan.Move{
		Description:     move.Description,
		Owner:           move.Owner,
		SuccessCriteria: move.SuccessCriteria,
		TestingMetrics:  move.TestingMetrics,
	}
	if move.ProjectedRevenue != nil {
		if v, ok := asFloat(move.ProjectedRevenue); ok {
			converted.ProjectedRevenue = &v
		}
		// Non-numeric projections are free-form metadata; they are dropped
		// rather than rejected since nothing downstream computes with them.
	}
	return converted, nil
}

// resolveYearKey maps "year1".."yearN" onto calendar years relative to the
// start year. A bare calendar year ("2025") is accepted as well.
func resolveYearKey(key string, startYear int) (int, error) {
	if len(key) > 4 && key[:4] == "year" {
		offset, err := strconv.Atoi(key[4:])
		if err == nil && offset >= 1 {
			return startYear + offset - 1, nil
		}
	}
	if year, err := strconv.Atoi(key); err == nil && year > 0 {
		return year, nil
	}
	return 0, &MalformedRequestError{Field: "targets", Reason: fmt.Sprintf("unrecognized year key %q", key)}
}

func toNumber(raw any, year int, metric string) (float64, error) {
	if v, ok := asFloat(raw); ok {
		return v, nil
	}
	return 0, &InvalidTargetValueError{Year: year, Metric: metric, Value: raw}
}

// asFloat accepts the numeric shapes JSON and YAML decoding produce.
func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
