// Package block emits the program fragment for BWM motion/IO modules.
//
// Each module occupies three consecutive network addresses: the first
// carries the four input bits plus the feedback bit, the next two stage the
// analog channels.
package block

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hausbus/isygltgen/internal/codegen/alloc"
	"github.com/hausbus/isygltgen/internal/plan"
)

// Generate writes one statement block per module in list order. Module i
// gets the span [BlockStart+3i, BlockStart+3i+2].
func Generate(logger *slog.Logger, w io.Writer, p *plan.Plan) error {
	cur := alloc.NewCursor(plan.BlockStart)
	var b strings.Builder
	b.WriteString("; === BWM Bewegungs-/IO-Module ===\n")
	for _, id := range p.Blocks {
		var span alloc.Span
		span, cur = cur.Alloc(plan.BlockStride)
		fmt.Fprintf(&b, "\n; BWM %d\n", id)
		fmt.Fprintf(&b, "TRANS N%d.1-4 = E%d.1-4\n", span.At(0), id)
		fmt.Fprintf(&b, "COPY N%d.8 = A%d.1\n", span.At(0), id)
		fmt.Fprintf(&b, "ATRANS N%d = %d.1\n", span.At(1), id)
		fmt.Fprintf(&b, "ATRANS N%d = %d.2\n", span.At(2), id)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write block fragment: %w", err)
	}
	logger.Debug("generated block fragment", "modules", len(p.Blocks), "nextAddress", cur.Next())
	return nil
}
