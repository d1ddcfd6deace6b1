package request

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConvertYearKeysRelativeToStartYear(t *testing.T) {
	req := PlanRequest{
		CompanyName: "Acme",
		Targets: map[string]TargetYear{
			"year1": {Revenue: 1_000_000.0, Customers: 100, Margin: 0.2},
			"year3": {Revenue: 3_000_000.0},
		},
	}

	in, err := Convert(req, 2025)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got := in.RevenueTargets[2025]; got != 1_000_000 {
		t.Fatalf("year1 revenue = %v, want 1000000", got)
	}
	if got := in.CustomerTargets[2025]; got != 100 {
		t.Fatalf("year1 customers = %v, want 100", got)
	}
	if got := in.RevenueTargets[2027]; got != 3_000_000 {
		t.Fatalf("year3 revenue = %v, want 3000000", got)
	}
	if _, ok := in.RevenueTargets[2026]; ok {
		t.Fatalf("year2 should be absent")
	}
}

func TestConvertBareCalendarYearKeys(t *testing.T) {
	req := PlanRequest{
		CompanyName: "Acme",
		Targets: map[string]TargetYear{
			"2031": {Margin: 0.5},
		},
	}
	in, err := Convert(req, 2025)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got := in.MarginTargets[2031]; got != 0.5 {
		t.Fatalf("2031 margin = %v, want 0.5", got)
	}
}

func TestConvertRejectsNonNumericTarget(t *testing.T) {
	req := PlanRequest{
		CompanyName: "Acme",
		Targets: map[string]TargetYear{
			"year1": {Revenue: "a lot"},
		},
	}

	_, err := Convert(req, 2025)
	var invalid *InvalidTargetValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidTargetValueError", err)
	}
	if invalid.Year != 2025 || invalid.Metric != "revenue" {
		t.Fatalf("error names %s/%d, want revenue/2025", invalid.Metric, invalid.Year)
	}
}

func TestConvertRejectsMarginOutOfRange(t *testing.T) {
	req := PlanRequest{
		CompanyName: "Acme",
		Targets: map[string]TargetYear{
			"year1": {Margin: 35.0},
		},
	}

	_, err := Convert(req, 2025)
	var invalid *InvalidTargetValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidTargetValueError", err)
	}
	if invalid.Metric != "margin" {
		t.Fatalf("error names %s, want margin", invalid.Metric)
	}
}

func TestConvertRequiresCompanyName(t *testing.T) {
	_, err := Convert(PlanRequest{}, 2025)
	var malformed *MalformedRequestError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedRequestError", err)
	}
	if malformed.Field != "company_name" {
		t.Fatalf("error names field %q, want company_name", malformed.Field)
	}
}

func TestConvertRejectsUnknownYearKey(t *testing.T) {
	req := PlanRequest{
		CompanyName: "Acme",
		Targets:     map[string]TargetYear{"q1": {Revenue: 1.0}},
	}
	_, err := Convert(req, 2025)
	var malformed *MalformedRequestError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedRequestError", err)
	}
}

func TestConvertRoutesMovesByKind(t *testing.T) {
	req := PlanRequest{
		CompanyName: "Acme",
		WinningMoves: []MoveRecord{
			{Description: "Launch X"},
			{Description: "Cut costs", Kind: "profit", Owner: "COO"},
		},
	}

	in, err := Convert(req, 2025)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(in.Moves.RevenueMoves) != 1 || in.Moves.RevenueMoves[0].Description != "Launch X" {
		t.Fatalf("revenue moves = %+v", in.Moves.RevenueMoves)
	}
	if len(in.Moves.ProfitMoves) != 1 || in.Moves.ProfitMoves[0].Owner != "COO" {
		t.Fatalf("profit moves = %+v", in.Moves.ProfitMoves)
	}
}

func TestConvertRejectsUnknownMoveKind(t *testing.T) {
	req := PlanRequest{
		CompanyName:  "Acme",
		WinningMoves: []MoveRecord{{Description: "X", Kind: "growth"}},
	}
	_, err := Convert(req, 2025)
	var malformed *MalformedRequestError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedRequestError", err)
	}
}

func TestConvertSwotAbsentStaysAbsent(t *testing.T) {
	in, err := Convert(PlanRequest{CompanyName: "Acme"}, 2025)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if in.Swot != nil {
		t.Fatalf("swot should stay absent, got %+v", in.Swot)
	}
}

func TestLoadFile(t *testing.T) {
	yml := `
company_name: DemoCo
mission: simplify home automation
vision: smart homes everywhere
core_values: ["Innovation", "Reliability"]
start_year: 2025
targets:
  year1:
    revenue: 2000000
    customers: 250
    margin: 0.3
other_targets:
  net_profit:
    year1: 200000
winning_moves:
  - description: Launch subscription services
  - description: Negotiate supplier contracts
    kind: profit
swot:
  strengths: ["Proprietary technology"]
  weaknesses: ["Limited brand recognition"]
  opportunities: ["Growing smart home market"]
  threats: ["Entrenched competitors"]
baseline_metrics:
  annual_revenue: 1000000
`
	path := filepath.Join(t.TempDir(), "plan.yml")
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	req, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if req.CompanyName != "DemoCo" || req.StartYear != 2025 {
		t.Fatalf("unexpected header fields: %+v", req)
	}

	in, err := Convert(req, 2024)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if in.StartYear != 2025 {
		t.Fatalf("start year = %d, want request's own 2025", in.StartYear)
	}
	if got := in.RevenueTargets[2025]; got != 2_000_000 {
		t.Fatalf("revenue = %v, want 2000000", got)
	}
	if got := in.OtherTargets["net_profit"][2025]; got != 200_000 {
		t.Fatalf("net_profit = %v, want 200000", got)
	}
	if len(in.Moves.ProfitMoves) != 1 {
		t.Fatalf("profit moves = %+v", in.Moves.ProfitMoves)
	}
	if in.Swot == nil || len(in.Swot.Strengths) != 1 {
		t.Fatalf("swot = %+v", in.Swot)
	}
}

func TestLoadFileMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("company_name: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	var malformed *MalformedRequestError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedRequestError", err)
	}
}
