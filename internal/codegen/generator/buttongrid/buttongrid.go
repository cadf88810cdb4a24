// Package buttongrid emits the program fragment for button-grid panels.
//
// Each panel occupies two consecutive network addresses: one for the six
// button bits, one for the seven LED feedback bits. Edge markers are keyed
// by the panel's module ID, not by the allocated address; the two numbering
// schemes are independent.
package buttongrid

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hausbus/isygltgen/internal/codegen/alloc"
	"github.com/hausbus/isygltgen/internal/plan"
)

const (
	buttonBits = 6
	ledBits    = 7
)

// Generate writes one statement block per panel in list order. Panel i gets
// the span [ButtonGridStart+2i, ButtonGridStart+2i+1].
func Generate(logger *slog.Logger, w io.Writer, p *plan.Plan) error {
	cur := alloc.NewCursor(plan.ButtonGridStart)
	var b strings.Builder
	b.WriteString("; === TASTER Tastenfelder ===\n")
	for _, id := range p.Panels {
		var span alloc.Span
		span, cur = cur.Alloc(plan.ButtonGridStride)
		buttons, leds := span.At(0), span.At(1)
		fmt.Fprintf(&b, "\n; TASTER %d\n", id)
		// The poller needs a stable window to observe each press; the bit
		// clears itself one cycle after being set.
		for k := 1; k <= buttonBits; k++ {
			fmt.Fprintf(&b, "ARESET N%d.%d AFTER 1\n", buttons, k)
		}
		for k := 1; k <= buttonBits; k++ {
			fmt.Fprintf(&b, "EDGE M%d.%d = E%d.%d\n", id, k, id, k)
		}
		for k := 1; k <= buttonBits; k++ {
			fmt.Fprintf(&b, "SET N%d.%d = M%d.%d\n", buttons, k, id, k)
		}
		for k := 1; k <= ledBits; k++ {
			fmt.Fprintf(&b, "COPY N%d.%d = A%d.%d\n", leds, k, id, k)
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write buttongrid fragment: %w", err)
	}
	logger.Debug("generated buttongrid fragment", "panels", len(p.Panels), "nextAddress", cur.Next())
	return nil
}
