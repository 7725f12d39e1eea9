// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "eccod",
	Short: "ecco node runner - runs a single agent overlay node",
	Long: `eccod runs one ecco node: it loads configuration, wires the
identity, discovery, capability, bridge, settlement and reputation
layers together, and keeps the node running until interrupted.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "config", "directory containing environment config files")
}
