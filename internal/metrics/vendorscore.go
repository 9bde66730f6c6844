package metrics

import "fmt"

// Risk tier labels for vendor scorecards.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// SubScores are the four stored vendor sub-scores, each on a 0-10 scale.
type SubScores struct {
	Quality     float64
	Delivery    float64
	SLA         float64
	Performance float64
}

// Scorecard is the derived display view: percentages on a 0-100 scale plus a
// risk tier.
type Scorecard struct {
	OverallPct     float64
	QualityPct     float64
	DeliveryPct    float64
	SLAPct         float64
	RiskTier       string
	RiskOverridden bool
}

// ComputeScorecard derives display percentages and a risk tier from stored
// sub-scores. Risk is computed from the overall percentage (below 50 high,
// below 70 medium, otherwise low) unless a reviewer override is supplied, in
// which case the override wins.
func ComputeScorecard(s SubScores, riskOverride string) (Scorecard, error) {
	for _, v := range []float64{s.Quality, s.Delivery, s.SLA, s.Performance} {
		if !isFinite(v) {
			return Scorecard{}, fmt.Errorf("non-finite vendor sub-score")
		}
		if v < 0 || v > 10 {
			return Scorecard{}, fmt.Errorf("vendor sub-score %v outside 0-10", v)
		}
	}

	card := Scorecard{
		OverallPct:  s.Performance * 10,
		QualityPct:  s.Quality * 10,
		DeliveryPct: s.Delivery * 10,
		SLAPct:      s.SLA * 10,
	}

	switch {
	case card.OverallPct < 50:
		card.RiskTier = RiskHigh
	case card.OverallPct < 70:
		card.RiskTier = RiskMedium
	default:
		card.RiskTier = RiskLow
	}

	if riskOverride != "" {
		switch riskOverride {
		case RiskLow, RiskMedium, RiskHigh:
			card.RiskTier = riskOverride
			card.RiskOverridden = true
		default:
			return Scorecard{}, fmt.Errorf("unknown risk override %q", riskOverride)
		}
	}

	return card, nil
}
