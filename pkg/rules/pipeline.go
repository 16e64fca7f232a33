package rules

import (
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
)

// Pipeline runs discard rules in order with short-circuit semantics.
// A Pipeline is stateless and safe for concurrent use.
type Pipeline struct {
	rules []Rule
}

// NewPipeline creates a pipeline over the given rules, evaluated in the
// order supplied.
func NewPipeline(rules ...Rule) *Pipeline {
	return &Pipeline{rules: rules}
}

// DefaultPipeline returns the standard five-rule pipeline.
func DefaultPipeline() *Pipeline {
	return NewPipeline(DefaultRules(DefaultThresholds())...)
}

// Run folds the rule sequence over (signals, context). Evaluation stops
// at the first failing rule; rules after it do not run and produce no
// outcome. Derived data written by earlier rules (the margin breakdown)
// is carried on the accumulator.
func (p *Pipeline) Run(sig product.Signals, ctx request.Context) Evaluation {
	var ev Evaluation
	ev.Outcomes = make([]Outcome, 0, len(p.rules))
	for _, r := range p.rules {
		out := r.Evaluate(sig, ctx)
		ev.Outcomes = append(ev.Outcomes, out)
		if out.Margin != nil {
			ev.Derived.Margin = out.Margin
		}
		if !out.Passed {
			break
		}
	}
	return ev
}
