package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spectrum/internal/config"
	"github.com/alexisbeaulieu97/spectrum/internal/logger"
)

// appContext holds what every command needs once flags are parsed.
type appContext struct {
	flags    *rootFlags
	log      *logger.Logger
	presets  *config.File
	fromDisk bool
}

func (a *appContext) load(cmd *cobra.Command) error {
	level := a.flags.logLevel
	if a.flags.verbose {
		level = "debug"
	}
	errOut := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: logger.IsTerminal(errOut),
		Writer:        errOut,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.log = log.WithFields(map[string]any{"command": cmd.Name()})

	presets, fromDisk, err := config.Load(a.flags.presetsPath)
	if err != nil {
		return fmt.Errorf("load presets: %w", err)
	}
	a.presets = presets
	a.fromDisk = fromDisk
	if !fromDisk {
		a.log.WithFields(map[string]any{"path": a.flags.presetsPath}).Debug("presets file not found, using built-in presets")
	}
	a.log.Debug("command started")
	return nil
}
