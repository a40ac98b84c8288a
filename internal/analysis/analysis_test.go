package analysis

import (
	"math"
	"testing"

	"gotrial/models"
)

// TestDescribe pins the descriptive statistics on a small known sample.
func TestDescribe(t *testing.T) {
	d := Describe([]float64{1, 2, 3, 4, 5})

	if d.N != 5 {
		t.Errorf("N = %d, want 5", d.N)
	}
	if d.Mean != 3 {
		t.Errorf("Mean = %v, want 3", d.Mean)
	}
	if d.Median != 3 {
		t.Errorf("Median = %v, want 3", d.Median)
	}
	if d.Min != 1 || d.Max != 5 {
		t.Errorf("Min/Max = %v/%v, want 1/5", d.Min, d.Max)
	}
	if math.Abs(d.StdDev-math.Sqrt(2)) > 0.001 {
		t.Errorf("StdDev = %v, want sqrt(2)", d.StdDev)
	}
}

// TestDescribeEmpty verifies an empty sample yields zeroes, not NaN.
func TestDescribeEmpty(t *testing.T) {
	d := Describe(nil)
	if d.N != 0 || d.Mean != 0 || d.StdDev != 0 {
		t.Errorf("empty sample produced %+v", d)
	}
}

// TestGroupBySourceSkipsFreeText verifies non-numeric response values drop
// out of the numeric groups.
func TestGroupBySourceSkipsFreeText(t *testing.T) {
	responses := []models.TestResponse{
		{ContentSource: "ai", ResponseValue: "5"},
		{ContentSource: "ai", ResponseValue: "quite informative"},
		{ContentSource: "original", ResponseValue: "3"},
	}

	groups := GroupBySource(responses)
	if len(groups["ai"]) != 1 {
		t.Errorf("ai group holds %d values, want 1", len(groups["ai"]))
	}
	if len(groups["original"]) != 1 {
		t.Errorf("original group holds %d values, want 1", len(groups["original"]))
	}
}

// TestOneWayANOVAKnownValues checks F and effect size on a hand-computed
// example: groups {1,2,3}, {2,3,4}, {3,4,5} give F(2,6) = 3.
func TestOneWayANOVAKnownValues(t *testing.T) {
	result, err := OneWayANOVA([][]float64{
		{1, 2, 3},
		{2, 3, 4},
		{3, 4, 5},
	})
	if err != nil {
		t.Fatalf("OneWayANOVA: %v", err)
	}

	if math.Abs(result.FStatistic-3.0) > 0.0001 {
		t.Errorf("F = %v, want 3.0", result.FStatistic)
	}
	if result.DFBetween != 2 || result.DFWithin != 6 {
		t.Errorf("df = (%d, %d), want (2, 6)", result.DFBetween, result.DFWithin)
	}
	if math.Abs(result.EtaSquared-0.5) > 0.0001 {
		t.Errorf("eta squared = %v, want 0.5", result.EtaSquared)
	}
	// F(2,6) of 3.0 sits above the 0.05 threshold (critical value 5.14).
	if result.Significant {
		t.Error("F = 3.0 on (2, 6) df flagged significant")
	}
	if result.PValue < 0.1 || result.PValue > 0.15 {
		t.Errorf("p = %v, want about 0.125", result.PValue)
	}
}

// TestOneWayANOVAIdenticalGroups verifies equal means give F of zero.
func TestOneWayANOVAIdenticalGroups(t *testing.T) {
	result, err := OneWayANOVA([][]float64{
		{2, 4, 6},
		{2, 4, 6},
	})
	if err != nil {
		t.Fatalf("OneWayANOVA: %v", err)
	}
	if result.FStatistic != 0 {
		t.Errorf("F = %v, want 0", result.FStatistic)
	}
	if result.Significant {
		t.Error("identical groups flagged significant")
	}
}

// TestOneWayANOVARequiresTwoGroups verifies degenerate inputs are rejected.
func TestOneWayANOVARequiresTwoGroups(t *testing.T) {
	if _, err := OneWayANOVA([][]float64{{1, 2, 3}}); err == nil {
		t.Error("single group accepted")
	}
	if _, err := OneWayANOVA([][]float64{{1, 2}, {5}}); err == nil {
		t.Error("group with one observation counted toward the minimum")
	}
	if _, err := OneWayANOVA(nil); err == nil {
		t.Error("empty input accepted")
	}
}
