package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/hausbus/isygltgen/internal/configpaths"
	"github.com/hausbus/isygltgen/internal/plan"
)

// PlanCommand groups plan-related subcommands.
type PlanCommand struct {
	Init PlanInit `cmd:"" help:"Write a plan file template"`
	Show PlanShow `cmd:"" help:"Print the resolved address map"`
}

// PlanInit scaffolds a plan file from the compiled-in device tables.
type PlanInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"yaml"`
	Output string `help:"Destination file path (defaults to plan.<format> in the current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

func (c *PlanInit) Run(logger *slog.Logger) error {
	dest := c.Output
	if dest == "" {
		dest = "plan." + c.Format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}

	data, err := plan.Marshal(plan.Default(), c.Format)
	if err != nil {
		return err
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	logger.Info("wrote plan template", "path", dest)
	return nil
}

// PlanShow prints the class/module/address table without emitting any
// program text. This is the allocation contract the register poller needs.
type PlanShow struct {
	Plan string `help:"Plan file (json/yaml/toml); compiled-in tables when empty" env:"ISYGLTGEN_PLAN"`
}

func (c *PlanShow) Run(logger *slog.Logger) error {
	p, err := resolvePlan(c.Plan, logger)
	if err != nil {
		return err
	}
	if err := plan.Validate(p); err != nil {
		return fmt.Errorf("validate plan: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tMODULE\tADDRESSES")
	for _, a := range plan.AddressMap(p) {
		fmt.Fprintf(w, "%s\t%d\tN%d-N%d\n", a.Class, a.ID, a.First, a.Last)
	}
	return w.Flush()
}
