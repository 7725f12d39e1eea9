// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecco-mesh/ecco/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "load and validate node configuration",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.LoaderOptions{ConfigDir: configDir, SkipValidation: true})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	errs := config.ValidateConfiguration(cfg)
	if len(errs) == 0 {
		fmt.Println("configuration is valid")
		return nil
	}

	failed := false
	for _, e := range errs {
		fmt.Println(e.String())
		if e.Level == "error" {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("configuration has validation errors")
	}
	return nil
}
