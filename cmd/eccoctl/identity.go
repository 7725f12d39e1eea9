// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecco-mesh/ecco/identity"
)

var (
	keyPath string
	genKey  bool
)

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "show or generate the node identity key file",
	RunE:  runIdentity,
}

func init() {
	rootCmd.AddCommand(identityCmd)

	identityCmd.Flags().StringVar(&keyPath, "key-path", "", "identity key file path (default: platform default for --node-id)")
	identityCmd.Flags().BoolVar(&genKey, "generate", false, "generate a new key if none exists at key-path")
	identityCmd.Flags().StringVar(&nodeIDFlag, "node-id", "", "node id used to resolve the default key path")
}

var nodeIDFlag string

func runIdentity(cmd *cobra.Command, args []string) error {
	path := keyPath
	if path == "" {
		var err error
		path, err = identity.DefaultKeyPath(nodeIDFlag)
		if err != nil {
			return fmt.Errorf("resolve default key path: %w", err)
		}
	}

	id, err := identity.LoadOrGenerate(path, genKey)
	if err != nil {
		return fmt.Errorf("load identity: %w", err)
	}

	fmt.Printf("key path:        %s\n", path)
	fmt.Printf("peer id:         %s\n", id.PeerID())
	fmt.Printf("payment address: %s\n", id.PaymentAddress())
	return nil
}
