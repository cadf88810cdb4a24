package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/hausbus/isygltgen/internal/codegen/generator"
	"github.com/hausbus/isygltgen/internal/plan"
)

type Generate struct {
	Output string `help:"Destination file ('-' for stdout)" default:"-" env:"ISYGLTGEN_OUTPUT"`
	Class  string `help:"Device class to generate, or 'all'" default:"all" enum:"block,dimmer,buttongrid,all" env:"ISYGLTGEN_CLASS"`
	Plan   string `help:"Plan file (json/yaml/toml); compiled-in tables when empty" env:"ISYGLTGEN_PLAN"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	p, err := resolvePlan(g.Plan, logger)
	if err != nil {
		return err
	}

	out := os.Stdout
	if g.Output != "-" {
		f, err := os.Create(g.Output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	} else if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Info("writing program text to a terminal; use --output to write a file for the ISYGLT editor")
	}

	gen := generator.New(out, p, logger)
	if g.Class == "all" {
		return gen.GenAll()
	}
	return gen.GenerateClass(g.Class)
}

func resolvePlan(path string, logger *slog.Logger) (*plan.Plan, error) {
	if path == "" {
		return plan.Default(), nil
	}
	p, err := plan.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded plan file", "path", path)
	return p, nil
}
