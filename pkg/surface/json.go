package surface

import (
	"encoding/json"
	"io"

	"github.com/sellerscope/sellerscope/pkg/decision"
)

// JSONRenderer marshals the Result to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *decision.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
