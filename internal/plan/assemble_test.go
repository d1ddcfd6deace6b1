package plan

import "testing"

func TestAssembleUnionOfYearsSortedNoDuplicates(t *testing.T) {
	record := Assemble(AssembleInput{
		Profile:         CompanyProfile{Name: "DemoCo"},
		RevenueTargets:  map[int]float64{2026: 2_000_000, 2025: 1_000_000},
		CustomerTargets: map[int]float64{2026: 400},
		MarginTargets:   map[int]float64{2027: 0.4},
		OtherTargets: map[string]map[int]float64{
			"net_profit": {2028: 500_000, 2025: 100_000},
		},
	})

	wantYears := []int{2025, 2026, 2027, 2028}
	if len(record.Targets) != len(wantYears) {
		t.Fatalf("got %d rows, want %d: %+v", len(record.Targets), len(wantYears), record.Targets)
	}
	for i, row := range record.Targets {
		if row.Year != wantYears[i] {
			t.Fatalf("row %d year = %d, want %d", i, row.Year, wantYears[i])
		}
	}
}

func TestAssembleAbsentMetricsAreNilNotZero(t *testing.T) {
	record := Assemble(AssembleInput{
		RevenueTargets: map[int]float64{2025: 1_000_000},
		MarginTargets:  map[int]float64{2026: 0.3},
	})

	first := record.Targets[0]
	if first.Revenue == nil || *first.Revenue != 1_000_000 {
		t.Fatalf("2025 revenue = %v, want 1000000", first.Revenue)
	}
	if first.Customers != nil {
		t.Fatalf("2025 customers should be absent, got %v", *first.Customers)
	}
	if first.GrossMargin != nil {
		t.Fatalf("2025 margin should be absent, got %v", *first.GrossMargin)
	}

	second := record.Targets[1]
	if second.Revenue != nil {
		t.Fatalf("2026 revenue should be absent, got %v", *second.Revenue)
	}
	if second.GrossMargin == nil || *second.GrossMargin != 0.3 {
		t.Fatalf("2026 margin = %v, want 0.3", second.GrossMargin)
	}
}

func TestAssembleExtraMetricOnlyYearStillGetsRow(t *testing.T) {
	record := Assemble(AssembleInput{
		RevenueTargets: map[int]float64{2025: 1},
		OtherTargets: map[string]map[int]float64{
			"ebitda": {2027: 42},
		},
	})

	if len(record.Targets) != 2 {
		t.Fatalf("got %d rows, want 2", len(record.Targets))
	}
	row := record.Targets[1]
	if row.Year != 2027 {
		t.Fatalf("second row year = %d, want 2027", row.Year)
	}
	if row.Revenue != nil || row.Customers != nil || row.GrossMargin != nil {
		t.Fatalf("2027 core metrics should all be absent: %+v", row)
	}
	if len(row.Extras) != 1 || row.Extras[0].Name != "ebitda" || row.Extras[0].Value != 42 {
		t.Fatalf("2027 extras = %+v, want ebitda=42", row.Extras)
	}
}

func TestAssembleEmptyTargetsIsValid(t *testing.T) {
	record := Assemble(AssembleInput{Profile: CompanyProfile{Name: "NoTargets"}, StartYear: 2025})
	if len(record.Targets) != 0 {
		t.Fatalf("expected empty target table, got %+v", record.Targets)
	}
	if len(record.Milestones) == 0 {
		t.Fatalf("milestones should still be generated for an empty plan")
	}
}

func TestAssembleExtrasSortedByName(t *testing.T) {
	record := Assemble(AssembleInput{
		OtherTargets: map[string]map[int]float64{
			"net_profit": {2025: 1},
			"ebitda":     {2025: 2},
		},
	})
	extras := record.Targets[0].Extras
	if len(extras) != 2 || extras[0].Name != "ebitda" || extras[1].Name != "net_profit" {
		t.Fatalf("extras not sorted by name: %+v", extras)
	}
}

func TestAssembleAttachesCatalogs(t *testing.T) {
	record := Assemble(AssembleInput{StartYear: 2025})
	if len(record.KPIs) != 5 {
		t.Fatalf("got %d KPI categories, want 5", len(record.KPIs))
	}
	if len(record.Services) != 5 {
		t.Fatalf("got %d service categories, want 5", len(record.Services))
	}
}
