package generator_test

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausbus/isygltgen/internal/codegen/generator"
	"github.com/hausbus/isygltgen/internal/plan"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenAllOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generator.New(&buf, plan.Default(), discardLogger()).GenAll())
	out := buf.String()

	blockAt := strings.Index(out, "; === BWM")
	dimmerAt := strings.Index(out, "; === DIM")
	gridAt := strings.Index(out, "; === TASTER")
	require.NotEqual(t, -1, blockAt)
	require.NotEqual(t, -1, dimmerAt)
	require.NotEqual(t, -1, gridAt)
	assert.Less(t, blockAt, dimmerAt)
	assert.Less(t, dimmerAt, gridAt)
}

func TestGenAllIsByteStable(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, generator.New(&first, plan.Default(), discardLogger()).GenAll())
	require.NoError(t, generator.New(&second, plan.Default(), discardLogger()).GenAll())
	assert.Equal(t, first.String(), second.String())
}

func TestGenAllInvalidPlanWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	p := plan.Default()
	p.Blocks = append(p.Blocks, p.Blocks[0])

	err := generator.New(&buf, p, discardLogger()).GenAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, plan.ErrDuplicateID)
	assert.Zero(t, buf.Len())
}

func TestGenerateClass(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generator.New(&buf, plan.Default(), discardLogger()).GenerateClass("dimmer"))
	out := buf.String()

	assert.Contains(t, out, "; === DIM")
	assert.NotContains(t, out, "; === BWM")
	assert.NotContains(t, out, "; === TASTER")
}

func TestGenerateClassValidates(t *testing.T) {
	var buf bytes.Buffer
	p := plan.Default()
	p.DimmerNames = p.DimmerNames[:1]

	err := generator.New(&buf, p, discardLogger()).GenerateClass("buttongrid")
	require.Error(t, err)
	assert.ErrorIs(t, err, plan.ErrNameTableMismatch)
	assert.Zero(t, buf.Len())
}

func TestGenerateClassUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := generator.New(&buf, plan.Default(), discardLogger()).GenerateClass("thermostat")
	assert.ErrorContains(t, err, "unsupported class 'thermostat'")
}

func TestAddressMapMatchesGeneratedText(t *testing.T) {
	p := plan.Default()
	var buf bytes.Buffer
	require.NoError(t, generator.New(&buf, p, discardLogger()).GenAll())
	out := buf.String()

	for _, a := range plan.AddressMap(p) {
		assert.Contains(t, out, fmt.Sprintf("N%d", a.First),
			"class %s module %d first address missing", a.Class, a.ID)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"block", "dimmer", "buttongrid"}, generator.Names())
}
