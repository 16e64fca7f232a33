// Package surface defines output rendering for evaluation results.
// Implementations handle different output targets: terminal, JSON.
package surface

import (
	"io"

	"github.com/sellerscope/sellerscope/pkg/decision"
)

// Renderer produces formatted output from an evaluation Result.
type Renderer interface {
	// Render writes the formatted result to the writer.
	Render(w io.Writer, result *decision.Result) error
}
