package scoring

// Weights holds the component weights as percentages. They must sum to
// 100; Composer validation enforces it.
type Weights struct {
	Demand          float64
	Competition     float64
	Profitability   float64
	Differentiation float64
}

// DefaultWeights returns the standard component weights.
func DefaultWeights() Weights {
	return Weights{
		Demand:          35,
		Competition:     30,
		Profitability:   25,
		Differentiation: 10,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Demand + w.Competition + w.Profitability + w.Differentiation
}
