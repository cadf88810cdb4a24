package plan

import (
	"errors"
	"fmt"

	"github.com/hausbus/isygltgen/internal/codegen/alloc"
)

// MaxModuleID is the highest physical module ID on the bus. Module IDs and
// network addresses are independent numbering schemes; they only happen to
// share a byte-sized range.
const MaxModuleID = 255

// Validation errors. All are structural input problems: generation must not
// start, and nothing may reach the output sink, once one is detected.
var (
	// ErrDuplicateID means the same module ID appears twice in one class
	// list. Two modules would alias the same address span.
	ErrDuplicateID = errors.New("duplicate device identifier")

	// ErrNameTableMismatch means the dimmer name table does not hold exactly
	// two entries per dimmer module.
	ErrNameTableMismatch = errors.New("dimmer name table length mismatch")

	// ErrAddressRange means a module ID falls outside [1, MaxModuleID] or an
	// allocated network address falls outside [1, alloc.MaxAddress].
	ErrAddressRange = errors.New("address out of range")
)

// Validate checks the whole plan before any text is generated.
func Validate(p *Plan) error {
	if want := 2 * len(p.Dimmers); len(p.DimmerNames) != want {
		return fmt.Errorf("%w: %d dimmer modules need %d channel names, table has %d",
			ErrNameTableMismatch, len(p.Dimmers), want, len(p.DimmerNames))
	}

	classes := []struct {
		name          string
		ids           []int
		start, stride int
		// overshoot counts addresses referenced past the last allocated
		// span; the dimmer sub-blocks reach one address into the gap.
		overshoot int
	}{
		{"block", p.Blocks, BlockStart, BlockStride, 0},
		{"dimmer", p.Dimmers, DimmerStart, DimmerStride, 1},
		{"buttongrid", p.Panels, ButtonGridStart, ButtonGridStride, 0},
	}
	for _, c := range classes {
		if err := checkIDs(c.name, c.ids); err != nil {
			return err
		}
		if err := checkRange(c.name, c.start, c.stride, len(c.ids), c.overshoot); err != nil {
			return err
		}
	}
	return nil
}

func checkIDs(class string, ids []int) error {
	seen := make(map[int]int, len(ids))
	for i, id := range ids {
		if id < 1 || id > MaxModuleID {
			return fmt.Errorf("%w: %s list index %d has module ID %d (want 1..%d)",
				ErrAddressRange, class, i, id, MaxModuleID)
		}
		if first, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s list has module ID %d at index %d and index %d",
				ErrDuplicateID, class, id, first, i)
		}
		seen[id] = i
	}
	return nil
}

func checkRange(class string, start, stride, count, overshoot int) error {
	if start < 1 {
		return fmt.Errorf("%w: %s bank starts at address %d", ErrAddressRange, class, start)
	}
	if count == 0 {
		return nil
	}
	last := start + stride*count - 1 + overshoot
	if last > alloc.MaxAddress {
		return fmt.Errorf("%w: %s bank with %d modules reaches address %d (max %d)",
			ErrAddressRange, class, count, last, alloc.MaxAddress)
	}
	return nil
}
