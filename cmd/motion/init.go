package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/motion/internal/config"
)

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a motion.json with defaults",
		Long: `Create a motion.json in the current directory.

Examples:
  motion init
  motion init --name=schedule-app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name")
	return cmd
}

func runInit(name string) error {
	if config.Exists(".") {
		return fmt.Errorf("motion.json already exists")
	}

	cfg := config.New()
	cfg.Name = name
	if err := cfg.SaveTo(config.ConfigFileName); err != nil {
		return err
	}

	success("Created %s", config.ConfigFileName)
	info("Run `motion preview` to start the preview server")
	return nil
}
