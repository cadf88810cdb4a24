package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hausbus/isygltgen/internal/codegen/alloc"
)

func TestCursorAlloc(t *testing.T) {
	cur := alloc.NewCursor(101)

	first, next := cur.Alloc(3)
	assert.Equal(t, 101, first.Base)
	assert.Equal(t, 3, first.Len)
	assert.Equal(t, 104, next.Next())

	// The original cursor is a value; allocating from it again yields the
	// same span.
	again, _ := cur.Alloc(3)
	assert.Equal(t, first, again)

	second, next := next.Alloc(3)
	assert.Equal(t, 104, second.Base)
	assert.Equal(t, 107, next.Next())
}

func TestSpanOffsets(t *testing.T) {
	s := alloc.Span{Base: 51, Len: 2}
	assert.Equal(t, 51, s.At(0))
	assert.Equal(t, 52, s.At(1))
	assert.Equal(t, 53, s.End())
	// Reaching past the span is allowed for cross-span references.
	assert.Equal(t, 54, s.At(3))
}
