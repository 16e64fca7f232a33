// Package scoring implements the Star Score composer. It turns the
// normalized signals of a candidate that cleared every discard rule
// into four weighted sub-scores and a 0-100 composite.
package scoring

// Component is one weighted sub-score. Weights are percentages and sum
// to 100 across a StarScore's components; Score is clamped to [0,100].
type Component struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Score       int     `json:"score"`
	Explanation string  `json:"explanation"`
}

// StarScore is the composite result. Immutable once computed.
type StarScore struct {
	TotalScore  int         `json:"totalScore"`
	Passed      bool        `json:"passed"`
	Components  []Component `json:"components"`
	Explanation string      `json:"explanation"`
}
