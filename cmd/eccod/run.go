// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/ecco-mesh/ecco/config"
	"github.com/ecco-mesh/ecco/identity"
	"github.com/ecco-mesh/ecco/internal/logger"
	"github.com/ecco-mesh/ecco/node"
	"github.com/ecco-mesh/ecco/reputation"
	"github.com/ecco-mesh/ecco/settlement"
	"github.com/ecco-mesh/ecco/storage"
	"github.com/ecco-mesh/ecco/transport"
	"github.com/ecco-mesh/ecco/transport/ble"
	"github.com/ecco-mesh/ecco/transport/wsmesh"
)

var (
	listenAddr string
	pgURL      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run a node until interrupted",
	RunE:  runNode,
}

func init() {
	runCmd.Flags().StringVar(&listenAddr, "listen", "", "wsmesh inbound listen address (empty: dial-only)")
	runCmd.Flags().StringVar(&pgURL, "postgres-host", "", "PostgreSQL host for durable ledger/reputation storage (empty: in-memory)")
	rootCmd.AddCommand(runCmd)
}

func runNode(cmd *cobra.Command, args []string) error {
	log := logger.GetDefaultLogger()

	cfg, err := config.Load(config.LoaderOptions{ConfigDir: configDir})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var id *identity.Identity
	if cfg.Authentication.Enabled {
		path := cfg.Authentication.KeyPath
		if path == "" {
			path, err = identity.DefaultKeyPath(cfg.NodeID)
			if err != nil {
				return fmt.Errorf("resolve key path: %w", err)
			}
		}
		id, err = identity.LoadOrGenerate(path, cfg.Authentication.GenerateKeys)
		if err != nil {
			return fmt.Errorf("load identity: %w", err)
		}
	} else {
		id, err = identity.Generate()
		if err != nil {
			return fmt.Errorf("generate ephemeral identity: %w", err)
		}
	}

	nodeCfg := node.Config{
		NodeID:             cfg.NodeID,
		Capabilities:       cfg.Capabilities,
		NetworkID:          cfg.NetworkID,
		ProtocolVersion:    cfg.Protocol.Version,
		MinProtocolVersion: cfg.Protocol.MinVersion,
		ConstitutionHash:   cfg.Protocol.ConstitutionHash,
		Enforcement:        cfg.Protocol.Enforcement,
		Adapters:           buildAdapters(id.PeerID()),
		PubSub:             nil,
		Log:                log,
		FallbackToP2P:      cfg.FallbackToP2P,
	}
	nodeCfg.Bootstrap.Enabled = cfg.Bootstrap.Enabled
	nodeCfg.Bootstrap.Peers = cfg.Bootstrap.Peers
	nodeCfg.Bootstrap.Timeout = cfg.Bootstrap.Timeout
	nodeCfg.Bootstrap.MinPeers = cfg.Bootstrap.MinPeers

	nodeCfg.Authentication.Enabled = cfg.Authentication.Enabled
	nodeCfg.Authentication.KeyPath = cfg.Authentication.KeyPath
	nodeCfg.Authentication.GenerateKeys = cfg.Authentication.GenerateKeys
	nodeCfg.Authentication.WalletAutoInit = cfg.Authentication.WalletAutoInit
	nodeCfg.Authentication.WalletRPCURLs = cfg.Authentication.WalletRPCURLs

	nodeCfg.MemoryLimits.MaxPeers = cfg.MemoryLimits.MaxPeers
	nodeCfg.MemoryLimits.StalePeerTimeout = cfg.MemoryLimits.StalePeerTimeout

	nodeCfg.FloodProtection.DedupMaxMessages = cfg.FloodProtection.DedupMaxMessages
	nodeCfg.FloodProtection.DedupFalsePositiveRate = cfg.FloodProtection.DedupFalsePositiveRate
	nodeCfg.FloodProtection.RateLimitMaxTokens = cfg.FloodProtection.RateLimitMaxTokens
	nodeCfg.FloodProtection.RateLimitRefillRate = cfg.FloodProtection.RateLimitRefillRate
	nodeCfg.FloodProtection.RateLimitRefillInterval = cfg.FloodProtection.RateLimitRefillInterval

	if cfg.Registry != nil {
		nodeCfg.Registry = &node.RegistryConfig{
			URL:        cfg.Registry.URL,
			AuthToken:  cfg.Registry.AuthToken,
			AuthSecret: cfg.Registry.AuthSecret,
		}
	}

	ledger, committer, closeStorage, err := buildStorage(cmd.Context())
	if err != nil {
		return fmt.Errorf("build storage: %w", err)
	}
	if closeStorage != nil {
		defer closeStorage()
	}
	nodeCfg.Settlement.Ledger = ledger
	nodeCfg.Settlement.Pay = refusePay
	nodeCfg.Reputation.Committer = committer

	n, err := node.New(nodeCfg)
	if err != nil {
		return fmt.Errorf("construct node: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := n.Start(ctx); err != nil {
		return fmt.Errorf("start node: %w", err)
	}
	log.Info("node started", logger.String("peer_id", id.PeerID()))

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return n.Stop(shutdownCtx)
}

// buildAdapters wires the two concrete transport.Adapter backends this
// repository ships. The map key must match what each adapter reports as
// its own Variant(), since node.Node looks adapters up by a discovered
// peer's reported transport: wsmesh dials/listens over a websocket mesh
// but reports itself as the libp2p variant, and the BLE adapter is a
// simulated proximity medium reporting bluetooth-le.
func buildAdapters(selfID string) map[transport.Variant]transport.Adapter {
	return map[transport.Variant]transport.Adapter{
		transport.VariantLibp2p: wsmesh.New(wsmesh.Config{
			SelfID:     selfID,
			ListenAddr: listenAddr,
		}),
		transport.VariantBluetoothLE: ble.New(ble.Config{
			SelfID: selfID,
			Medium: ble.NewMedium(),
		}),
	}
}

// buildStorage returns the settlement ledger and reputation committer
// backing this node: PostgreSQL-backed when --postgres-host is set, in-memory
// otherwise. The returned close func is nil for the in-memory case.
func buildStorage(ctx context.Context) (settlement.LedgerStore, reputation.Committer, func(), error) {
	if pgURL == "" {
		return storage.NewMemoryLedgerStore(), storage.NewMemoryReputationStore(), nil, nil
	}

	store, err := storage.NewStore(ctx, storage.Config{Host: pgURL, SSLMode: "disable"})
	if err != nil {
		return nil, nil, nil, err
	}
	return store.LedgerStore(), store.ReputationStore(), func() { store.Close() }, nil
}

// refusePay is the default PayFunc when no wallet integration is
// configured: settlement intents queue but never settle, matching
// spec.md's explicit wallet/payment non-goal for the core.
func refusePay(ctx context.Context, invoice []byte) (common.Hash, error) {
	return common.Hash{}, fmt.Errorf("no payment backend configured")
}
