// Package config defines the CLI surface parsed by Kong.
package config

import "github.com/hausbus/isygltgen/internal/cmd"

type LogConfig struct {
	Level string `help:"Log level: debug, info, warn, error" default:"info" env:"ISYGLTGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"ISYGLTGEN_LOG_FILE"`
}

type CLI struct {
	Log LogConfig `embed:"" prefix:"log."`

	Generate cmd.Generate    `cmd:"" default:"withargs" help:"Emit ISYGLT program fragments"`
	Plan     cmd.PlanCommand `cmd:"" help:"Inspect or scaffold the device plan"`

	Config string `help:"Path to a config file" type:"path"`
}
