package metrics

import (
	"fmt"
	"math"
	"sort"
)

// Weights is the scoring weight vector. The four weights must sum to 100.
type Weights struct {
	Price       float64
	LeadTime    float64
	Quality     float64
	Performance float64
}

// DefaultWeights is the standard quotation scoring weight vector.
var DefaultWeights = Weights{Price: 40, LeadTime: 20, Quality: 25, Performance: 15}

// QuoteInput is one vendor's quote. Quality and performance scores are on a
// 0-100 scale; lower price and lead time are better.
type QuoteInput struct {
	VendorCode       string
	UnitPrice        float64
	LeadTimeDays     int
	QualityScore     float64
	PerformanceScore float64
	NonCompliant     bool
}

// ScoredQuote is the scoring output for one quote. Rank L1 is the best
// composite score. The highlight flags are independent of the composite.
type ScoredQuote struct {
	VendorCode     string
	WeightedScore  float64
	Rank           string
	AwardEligible  bool
	LowestPrice    bool
	ShortestLead   bool
	HighestQuality bool
}

// ScoreQuotes computes weighted composite scores and L1/L2/... ranks for a
// set of competing quotes.
//
// Price and lead time are normalized relative to the best (lowest) value in
// the set, so the cheapest quote always takes the full price component.
// Compliance gates award eligibility but never changes the score.
func ScoreQuotes(quotes []QuoteInput, w Weights) ([]ScoredQuote, error) {
	if len(quotes) == 0 {
		return nil, fmt.Errorf("no quotes to score")
	}
	if err := validateWeights(w); err != nil {
		return nil, err
	}

	bestPrice := math.Inf(1)
	bestLead := math.MaxInt
	bestQuality := math.Inf(-1)
	for _, q := range quotes {
		if !isFinite(q.UnitPrice) || !isFinite(q.QualityScore) || !isFinite(q.PerformanceScore) {
			return nil, fmt.Errorf("quote %s has non-finite inputs", q.VendorCode)
		}
		if q.UnitPrice <= 0 {
			return nil, fmt.Errorf("quote %s has non-positive unit price", q.VendorCode)
		}
		if q.LeadTimeDays <= 0 {
			return nil, fmt.Errorf("quote %s has non-positive lead time", q.VendorCode)
		}
		if q.QualityScore < 0 || q.QualityScore > 100 || q.PerformanceScore < 0 || q.PerformanceScore > 100 {
			return nil, fmt.Errorf("quote %s has scores outside 0-100", q.VendorCode)
		}
		if q.UnitPrice < bestPrice {
			bestPrice = q.UnitPrice
		}
		if q.LeadTimeDays < bestLead {
			bestLead = q.LeadTimeDays
		}
		if q.QualityScore > bestQuality {
			bestQuality = q.QualityScore
		}
	}

	scored := make([]ScoredQuote, 0, len(quotes))
	for _, q := range quotes {
		priceComponent := bestPrice / q.UnitPrice * 100
		leadComponent := float64(bestLead) / float64(q.LeadTimeDays) * 100

		composite := (priceComponent*w.Price +
			leadComponent*w.LeadTime +
			q.QualityScore*w.Quality +
			q.PerformanceScore*w.Performance) / 100

		scored = append(scored, ScoredQuote{
			VendorCode:     q.VendorCode,
			WeightedScore:  composite,
			AwardEligible:  !q.NonCompliant,
			LowestPrice:    q.UnitPrice == bestPrice,
			ShortestLead:   q.LeadTimeDays == bestLead,
			HighestQuality: q.QualityScore == bestQuality,
		})
	}

	// Descending score, stable tie-break by vendor code.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].WeightedScore != scored[j].WeightedScore {
			return scored[i].WeightedScore > scored[j].WeightedScore
		}
		return scored[i].VendorCode < scored[j].VendorCode
	})

	for i := range scored {
		scored[i].Rank = fmt.Sprintf("L%d", i+1)
	}

	return scored, nil
}

func validateWeights(w Weights) error {
	for _, v := range []float64{w.Price, w.LeadTime, w.Quality, w.Performance} {
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("invalid scoring weight %v", v)
		}
	}
	sum := w.Price + w.LeadTime + w.Quality + w.Performance
	if math.Abs(sum-100) > 1e-9 {
		return fmt.Errorf("scoring weights sum to %v, want 100", sum)
	}
	return nil
}
