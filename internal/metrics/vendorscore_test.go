package metrics

import (
	"math"
	"testing"
)

func TestComputeScorecard_DerivedRisk(t *testing.T) {
	tests := []struct {
		name        string
		performance float64
		wantRisk    string
	}{
		{"strong performer", 8.5, RiskLow},
		{"exactly at low boundary", 7.0, RiskLow},
		{"middling performer", 6.0, RiskMedium},
		{"exactly at medium boundary", 5.0, RiskMedium},
		{"weak performer", 4.0, RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := ComputeScorecard(SubScores{
				Quality:     7,
				Delivery:    7,
				SLA:         7,
				Performance: tt.performance,
			}, "")
			if err != nil {
				t.Fatalf("ComputeScorecard failed: %v", err)
			}
			if card.RiskTier != tt.wantRisk {
				t.Errorf("risk = %s, want %s", card.RiskTier, tt.wantRisk)
			}
			if card.RiskOverridden {
				t.Error("risk marked overridden without an override")
			}
			if want := tt.performance * 10; card.OverallPct != want {
				t.Errorf("overall = %v, want %v", card.OverallPct, want)
			}
		})
	}
}

func TestComputeScorecard_OverrideWins(t *testing.T) {
	card, err := ComputeScorecard(SubScores{Quality: 9, Delivery: 9, SLA: 9, Performance: 9}, RiskHigh)
	if err != nil {
		t.Fatalf("ComputeScorecard failed: %v", err)
	}
	if card.RiskTier != RiskHigh {
		t.Errorf("risk = %s, want override high", card.RiskTier)
	}
	if !card.RiskOverridden {
		t.Error("override not flagged")
	}
}

func TestComputeScorecard_DisplayPercentages(t *testing.T) {
	card, err := ComputeScorecard(SubScores{Quality: 8, Delivery: 6.5, SLA: 9, Performance: 7.2}, "")
	if err != nil {
		t.Fatalf("ComputeScorecard failed: %v", err)
	}
	if card.QualityPct != 80 || card.DeliveryPct != 65 || card.SLAPct != 90 || card.OverallPct != 72 {
		t.Errorf("percentages = %v %v %v %v, want 80 65 90 72",
			card.QualityPct, card.DeliveryPct, card.SLAPct, card.OverallPct)
	}
}

func TestComputeScorecard_RejectsBadInput(t *testing.T) {
	if _, err := ComputeScorecard(SubScores{Quality: 11}, ""); err == nil {
		t.Error("expected error for score above 10")
	}
	if _, err := ComputeScorecard(SubScores{Quality: math.NaN()}, ""); err == nil {
		t.Error("expected error for NaN score")
	}
	if _, err := ComputeScorecard(SubScores{Quality: 5, Delivery: 5, SLA: 5, Performance: 5}, "severe"); err == nil {
		t.Error("expected error for unknown risk override")
	}
}
