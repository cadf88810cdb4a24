// Package alloc implements the network-address allocation arithmetic shared
// by the fragment generators.
//
// A Cursor is an immutable allocation state: Alloc returns the allocated
// span together with the advanced cursor. Because nothing mutates in place,
// the order in which a generator renders its statement templates can never
// change the addresses they reference.
package alloc

// MaxAddress is the highest usable ISYGLT network address. Addresses are a
// single byte on the wire.
const MaxAddress = 255

// Span is a run of consecutive network addresses [Base, Base+Len).
type Span struct {
	Base int
	Len  int
}

// At returns the address at offset off within the span. Offsets past the end
// are legal for references that deliberately reach into the next span.
func (s Span) At(off int) int { return s.Base + off }

// End returns the first address after the span.
func (s Span) End() int { return s.Base + s.Len }

// Cursor allocates consecutive address spans. The zero value is not usable;
// construct with NewCursor.
type Cursor struct {
	next int
}

// NewCursor returns a cursor whose first allocation starts at start.
func NewCursor(start int) Cursor { return Cursor{next: start} }

// Alloc reserves n consecutive addresses and returns the span together with
// the advanced cursor. The receiver is unchanged.
func (c Cursor) Alloc(n int) (Span, Cursor) {
	return Span{Base: c.next, Len: n}, Cursor{next: c.next + n}
}

// Next returns the address the next allocation would start at.
func (c Cursor) Next() int { return c.next }
