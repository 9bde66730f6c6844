package metrics

import (
	"math"
	"reflect"
	"testing"
)

func TestScoreQuotes_RanksByCompositeScore(t *testing.T) {
	quotes := []QuoteInput{
		{VendorCode: "V-CHEAP", UnitPrice: 100, LeadTimeDays: 20, QualityScore: 70, PerformanceScore: 70},
		{VendorCode: "V-FAST", UnitPrice: 150, LeadTimeDays: 5, QualityScore: 70, PerformanceScore: 70},
		{VendorCode: "V-MID", UnitPrice: 120, LeadTimeDays: 10, QualityScore: 70, PerformanceScore: 70},
	}

	scored, err := ScoreQuotes(quotes, DefaultWeights)
	if err != nil {
		t.Fatalf("ScoreQuotes failed: %v", err)
	}

	if len(scored) != 3 {
		t.Fatalf("got %d scored quotes, want 3", len(scored))
	}
	if scored[0].Rank != "L1" || scored[1].Rank != "L2" || scored[2].Rank != "L3" {
		t.Errorf("ranks = %s %s %s, want L1 L2 L3", scored[0].Rank, scored[1].Rank, scored[2].Rank)
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].WeightedScore > scored[i-1].WeightedScore {
			t.Errorf("scores not descending at position %d", i)
		}
	}
}

func TestScoreQuotes_LowestPriceTakesFullPriceComponent(t *testing.T) {
	// All else equal, the cheapest vendor must not score lower.
	quotes := []QuoteInput{
		{VendorCode: "V-A", UnitPrice: 200, LeadTimeDays: 10, QualityScore: 80, PerformanceScore: 80},
		{VendorCode: "V-B", UnitPrice: 100, LeadTimeDays: 10, QualityScore: 80, PerformanceScore: 80},
	}

	scored, err := ScoreQuotes(quotes, DefaultWeights)
	if err != nil {
		t.Fatalf("ScoreQuotes failed: %v", err)
	}

	if scored[0].VendorCode != "V-B" {
		t.Errorf("L1 = %s, want the cheaper V-B", scored[0].VendorCode)
	}
	if !scored[0].LowestPrice {
		t.Error("cheapest quote not flagged LowestPrice")
	}
}

func TestScoreQuotes_DominanceMonotonicity(t *testing.T) {
	// A quote with both the lowest price and highest quality must not rank
	// worse than one it dominates on both dimensions.
	quotes := []QuoteInput{
		{VendorCode: "V-DOM", UnitPrice: 90, LeadTimeDays: 12, QualityScore: 95, PerformanceScore: 60},
		{VendorCode: "V-WEAK", UnitPrice: 140, LeadTimeDays: 12, QualityScore: 60, PerformanceScore: 60},
	}

	scored, err := ScoreQuotes(quotes, DefaultWeights)
	if err != nil {
		t.Fatalf("ScoreQuotes failed: %v", err)
	}
	if scored[0].VendorCode != "V-DOM" {
		t.Errorf("dominating quote ranked %s, want L1", scored[1].Rank)
	}
}

func TestScoreQuotes_Deterministic(t *testing.T) {
	quotes := []QuoteInput{
		{VendorCode: "V-1", UnitPrice: 100, LeadTimeDays: 7, QualityScore: 88, PerformanceScore: 75},
		{VendorCode: "V-2", UnitPrice: 95, LeadTimeDays: 14, QualityScore: 92, PerformanceScore: 80},
		{VendorCode: "V-3", UnitPrice: 110, LeadTimeDays: 10, QualityScore: 78, PerformanceScore: 90},
	}

	first, err := ScoreQuotes(quotes, DefaultWeights)
	if err != nil {
		t.Fatalf("ScoreQuotes failed: %v", err)
	}
	second, err := ScoreQuotes(quotes, DefaultWeights)
	if err != nil {
		t.Fatalf("ScoreQuotes failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("scoring the same input twice produced different results")
	}
}

func TestScoreQuotes_TieBreakByVendorCode(t *testing.T) {
	quotes := []QuoteInput{
		{VendorCode: "V-ZULU", UnitPrice: 100, LeadTimeDays: 10, QualityScore: 80, PerformanceScore: 80},
		{VendorCode: "V-ALPHA", UnitPrice: 100, LeadTimeDays: 10, QualityScore: 80, PerformanceScore: 80},
	}

	scored, err := ScoreQuotes(quotes, DefaultWeights)
	if err != nil {
		t.Fatalf("ScoreQuotes failed: %v", err)
	}
	if scored[0].VendorCode != "V-ALPHA" {
		t.Errorf("tied scores: L1 = %s, want V-ALPHA", scored[0].VendorCode)
	}
}

func TestScoreQuotes_ComplianceGatesEligibilityNotScore(t *testing.T) {
	base := QuoteInput{UnitPrice: 100, LeadTimeDays: 10, QualityScore: 80, PerformanceScore: 80}

	compliant := base
	compliant.VendorCode = "V-OK"
	nonCompliant := base
	nonCompliant.VendorCode = "V-BAD"
	nonCompliant.NonCompliant = true

	scored, err := ScoreQuotes([]QuoteInput{compliant, nonCompliant}, DefaultWeights)
	if err != nil {
		t.Fatalf("ScoreQuotes failed: %v", err)
	}

	var ok, bad ScoredQuote
	for _, s := range scored {
		switch s.VendorCode {
		case "V-OK":
			ok = s
		case "V-BAD":
			bad = s
		}
	}

	if ok.WeightedScore != bad.WeightedScore {
		t.Errorf("compliance changed the score: %v vs %v", ok.WeightedScore, bad.WeightedScore)
	}
	if !ok.AwardEligible {
		t.Error("compliant quote not award eligible")
	}
	if bad.AwardEligible {
		t.Error("non-compliant quote marked award eligible")
	}
}

func TestScoreQuotes_RejectsBadInput(t *testing.T) {
	valid := QuoteInput{VendorCode: "V-1", UnitPrice: 100, LeadTimeDays: 10, QualityScore: 80, PerformanceScore: 80}

	if _, err := ScoreQuotes(nil, DefaultWeights); err == nil {
		t.Error("expected error for empty quote set")
	}
	if _, err := ScoreQuotes([]QuoteInput{valid}, Weights{Price: 50, LeadTime: 20, Quality: 25, Performance: 15}); err == nil {
		t.Error("expected error for weights not summing to 100")
	}

	bad := valid
	bad.UnitPrice = math.NaN()
	if _, err := ScoreQuotes([]QuoteInput{bad}, DefaultWeights); err == nil {
		t.Error("expected error for NaN price")
	}

	bad = valid
	bad.UnitPrice = 0
	if _, err := ScoreQuotes([]QuoteInput{bad}, DefaultWeights); err == nil {
		t.Error("expected error for zero price")
	}

	bad = valid
	bad.QualityScore = 120
	if _, err := ScoreQuotes([]QuoteInput{bad}, DefaultWeights); err == nil {
		t.Error("expected error for out-of-range quality score")
	}
}
