package plan

import "github.com/hausbus/isygltgen/internal/codegen/alloc"

// Assignment records the network-address span allocated to one module.
type Assignment struct {
	Class string
	ID    int
	First int
	Last  int
}

// AddressMap returns every module's allocated span in emission order. This
// is the contract the downstream register poller consumes; the generators
// embed exactly these addresses in the emitted text.
func AddressMap(p *Plan) []Assignment {
	var out []Assignment
	appendClass := func(class string, ids []int, start, stride int) {
		cur := alloc.NewCursor(start)
		for _, id := range ids {
			var span alloc.Span
			span, cur = cur.Alloc(stride)
			out = append(out, Assignment{
				Class: class,
				ID:    id,
				First: span.At(0),
				Last:  span.End() - 1,
			})
		}
	}
	appendClass("block", p.Blocks, BlockStart, BlockStride)
	appendClass("dimmer", p.Dimmers, DimmerStart, DimmerStride)
	appendClass("buttongrid", p.Panels, ButtonGridStart, ButtonGridStride)
	return out
}
