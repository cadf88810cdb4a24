// Package dimmer emits the program fragment for paired-channel dimmer
// modules.
//
// Each module advances the address bank by three, but its two channel
// sub-blocks reference four addresses: base and base+2 gate the channels,
// base+1 and base+3 hold the stored brightness levels. base+3 is the first
// address of the next module's span. That overlap matches the installed
// wiring; do not "fix" it without re-commissioning every dimmer.
package dimmer

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hausbus/isygltgen/internal/codegen/alloc"
	"github.com/hausbus/isygltgen/internal/plan"
)

// Generate writes two channel sub-blocks per module in list order,
// consuming two entries of the name table per module. It refuses to run
// when the name table does not pair up, even when called outside the usual
// validated path.
func Generate(logger *slog.Logger, w io.Writer, p *plan.Plan) error {
	if want := 2 * len(p.Dimmers); len(p.DimmerNames) != want {
		return fmt.Errorf("%w: %d dimmer modules need %d channel names, table has %d",
			plan.ErrNameTableMismatch, len(p.Dimmers), want, len(p.DimmerNames))
	}

	cur := alloc.NewCursor(plan.DimmerStart)
	var b strings.Builder
	b.WriteString("; === DIM Dimmermodule ===\n")
	name := 0
	for _, id := range p.Dimmers {
		var span alloc.Span
		span, cur = cur.Alloc(plan.DimmerStride)
		base, level := span.At(0), span.At(1)
		writeChannel(&b, id, 1, level, base, p.DimmerNames[name])
		name++
		writeChannel(&b, id, 2, level+2, base+2, p.DimmerNames[name])
		name++
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write dimmer fragment: %w", err)
	}
	logger.Debug("generated dimmer fragment", "modules", len(p.Dimmers), "nextAddress", cur.Next())
	return nil
}

// writeChannel emits one dimming sub-block: ramp toward the stored level on
// the rising gate bit, ramp to zero on its complement, full-on on the
// second gate bit.
func writeChannel(b *strings.Builder, id, ch, level, gate int, name string) {
	fmt.Fprintf(b, "\n; DIM %d.%d %s\n", id, ch, name)
	fmt.Fprintf(b, "DIMM %d.%d = N%d WHEN N%d.1\n", id, ch, level, gate)
	fmt.Fprintf(b, "DIMM %d.%d = 0 WHEN !N%d.1\n", id, ch, gate)
	fmt.Fprintf(b, "BDIM %d.%d = 255 WHEN N%d.2\n", id, ch, gate)
}
