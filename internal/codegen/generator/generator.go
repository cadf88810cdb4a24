// Package generator orchestrates fragment generation across the device
// classes.
package generator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hausbus/isygltgen/internal/codegen/generator/block"
	"github.com/hausbus/isygltgen/internal/codegen/generator/buttongrid"
	"github.com/hausbus/isygltgen/internal/codegen/generator/dimmer"
	"github.com/hausbus/isygltgen/internal/plan"
)

// ClassGenerator renders the fragment for one device class into w.
type ClassGenerator func(logger *slog.Logger, w io.Writer, p *plan.Plan) error

// classes lists the generators in emission order. The order is part of the
// output contract: block, then dimmer, then button grid.
var classes = []struct {
	Name string
	Gen  ClassGenerator
}{
	{"block", block.Generate},
	{"dimmer", dimmer.Generate},
	{"buttongrid", buttongrid.Generate},
}

// Names returns the class names in emission order.
func Names() []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = c.Name
	}
	return out
}

// Generator renders program fragments for a plan into a sink.
type Generator struct {
	out    io.Writer
	plan   *plan.Plan
	logger *slog.Logger
}

func New(out io.Writer, p *plan.Plan, logger *slog.Logger) *Generator {
	return &Generator{
		out:    out,
		plan:   p,
		logger: logger,
	}
}

// GenAll validates the plan once and runs every class generator in emission
// order. Nothing is written when validation fails.
func (g *Generator) GenAll() error {
	if err := plan.Validate(g.plan); err != nil {
		return fmt.Errorf("validate plan: %w", err)
	}
	for i, c := range classes {
		if i > 0 {
			if _, err := io.WriteString(g.out, "\n"); err != nil {
				return fmt.Errorf("write fragment separator: %w", err)
			}
		}
		if err := c.Gen(g.logger, g.out, g.plan); err != nil {
			return fmt.Errorf("generate %s fragment: %w", c.Name, err)
		}
	}
	return nil
}

// GenerateClass validates the plan and runs the generator for the named
// class only.
func (g *Generator) GenerateClass(name string) error {
	for _, c := range classes {
		if c.Name != name {
			continue
		}
		if err := plan.Validate(g.plan); err != nil {
			return fmt.Errorf("validate plan: %w", err)
		}
		return c.Gen(g.logger, g.out, g.plan)
	}
	return fmt.Errorf("unsupported class '%s' (supported: %v)", name, Names())
}
