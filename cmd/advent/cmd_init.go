package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initForce bool

// initCmd writes a starter configuration file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Writes the effective configuration (defaults plus any ADVENT_* env
overrides) to the --config path so it can be edited.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists; use --force to overwrite", configPath)
		}
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", configPath)
	return nil
}
