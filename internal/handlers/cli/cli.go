package cli

import (
	"context"
	"errors"
	"os"

	"github.com/gabapcia/walletsync/internal/session"
	"github.com/gabapcia/walletsync/internal/wallet"

	"github.com/urfave/cli/v3"
)

var (
	// ErrWalletExists is returned when create or recover targets a wallet
	// that is already on disk.
	ErrWalletExists = errors.New("wallet already exists")

	// ErrJournalDisabled is returned by status when no journal is configured.
	ErrJournalDisabled = errors.New("session journal is not configured")
)

// Deps holds the services the commands operate on.
type Deps struct {
	Sessions  session.Service
	Wallets   wallet.Service
	Journal   session.JournalReader // nil when the journal is disabled
	WalletDir string
}

// newApp builds the root command.
func newApp(deps Deps) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletsyncd",
		Description:           "Opens wallets, keeps them synchronized with the daemon and reports their progress.",
		Usage:                 "walletsyncd [command] [flags]",
		Commands: []*cli.Command{
			openWalletCommand(deps.Sessions),
			listWalletsCommand(deps.Wallets, deps.WalletDir),
			createWalletCommand(deps.Wallets, deps.WalletDir),
			recoverWalletCommand(deps.Wallets, deps.WalletDir),
			statusCommand(deps.Journal),
		},
	}
}

// Run initializes and executes the walletsyncd CLI application.
//
// It registers all available commands:
//
//   - `open`: Runs a wallet session until interrupted.
//   - `list`: Lists the wallets in the wallet directory.
//   - `create`: Creates a new wallet.
//   - `recover`: Restores a wallet from its mnemonic seed.
//   - `status`: Shows the journaled session state.
func Run(ctx context.Context, deps Deps) error {
	return newApp(deps).Run(ctx, os.Args)
}
