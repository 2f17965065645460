// Command walletsyncd opens wallets through a wallet RPC server, keeps the
// active one synchronized with the daemon and reports its progress.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/walletsync/internal/config"
	"github.com/gabapcia/walletsync/internal/handlers/cli"
	"github.com/gabapcia/walletsync/internal/infra/storage/redis"
	"github.com/gabapcia/walletsync/internal/infra/walletrpc"
	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/telemetry"
	"github.com/gabapcia/walletsync/internal/pkg/transport/http"
	"github.com/gabapcia/walletsync/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletsync/internal/session"
	"github.com/gabapcia/walletsync/internal/wallet"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// shutdownTimeout bounds the telemetry flush on exit.
const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		// The logger may not be initialized yet when configuration fails.
		fmt.Fprintln(os.Stderr, "walletsyncd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName,
		telemetry.WithEnabled(cfg.Telemetry.Enabled),
		telemetry.WithServiceVersion(version),
	)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	network := cfg.LedgerNetwork()

	httpClient := http.NewClient(http.WithTimeout(cfg.WalletRPC.Timeout))
	engine := walletrpc.New(
		jsonrpc.NewClient(httpClient, cfg.WalletRPC.Endpoint),
		network,
		walletrpc.WithRefreshInterval(cfg.WalletRPC.RefreshInterval),
	)

	wallets := wallet.New(engine)
	wallets.SetDaemon(cfg.DaemonAddress, network)

	sessionOpts := []session.Option{session.WithWalletDir(cfg.WalletDir)}
	deps := cli.Deps{
		Wallets:   wallets,
		WalletDir: cfg.WalletDir,
	}

	if cfg.JournalEnabled() {
		journal, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer journal.Close()

		sessionOpts = append(sessionOpts, session.WithJournal(journal), session.WithResumeHeights(journal))
		deps.Journal = journal
	}

	deps.Sessions = session.New(wallets, sessionOpts...)

	logger.Debug(ctx, "walletsyncd configured",
		"wallet.dir", cfg.WalletDir,
		"wallet.network", network.String(),
		"walletrpc.endpoint", cfg.WalletRPC.Endpoint,
		"journal.enabled", cfg.JournalEnabled(),
	)

	return cli.Run(ctx, deps)
}
