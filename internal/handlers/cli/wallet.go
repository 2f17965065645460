package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/validator"
	"github.com/gabapcia/walletsync/internal/session"
	"github.com/gabapcia/walletsync/internal/wallet"

	"github.com/urfave/cli/v3"
)

// walletFlag selects a wallet by name inside the wallet directory.
func walletFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "wallet",
		Usage:    usage,
		Required: true,
	}
}

// newWalletPath validates walletID and resolves it inside dir, failing if a
// wallet with that name already exists.
func newWalletPath(ws wallet.Service, dir, walletID string) (string, error) {
	if err := validator.Var(walletID, "required,walletid"); err != nil {
		return "", err
	}

	path := filepath.Join(dir, walletID)
	if ws.WalletExists(path) {
		return "", fmt.Errorf("%w: %s", ErrWalletExists, walletID)
	}
	return path, nil
}

// release closes a handle opened only to create or restore a wallet.
func release(ctx context.Context, ws wallet.Service, walletID string, h *wallet.Handle) error {
	if err := ws.Close(ctx, h); err != nil {
		logger.Error(ctx, "failed to close wallet", "wallet.id", walletID, "error", err)
		return err
	}
	return nil
}

// listWalletsCommand returns a CLI command that lists the wallets found in
// the wallet directory with their primary address.
//
// Usage example:
//
//	walletsyncd list
func listWalletsCommand(ws wallet.Service, dir string) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "Lists the wallets stored in the wallet directory.",
		Usage:       "Prints one line per wallet: name and address.",
		Action: func(ctx context.Context, c *cli.Command) error {
			wallets, err := ws.FindWallets(ctx, dir)
			if err != nil {
				return err
			}

			out := c.Root().Writer
			for _, w := range wallets {
				fmt.Fprintf(out, "%s\t%s\n", w.Name, w.Address)
			}
			return nil
		},
	}
}

// createWalletCommand returns a CLI command that creates a new wallet in the
// wallet directory.
//
// Usage example:
//
//	walletsyncd create --wallet bob --language English
func createWalletCommand(ws wallet.Service, dir string) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Creates a new wallet in the wallet directory.",
		Usage:       "Creates a wallet. Fails if a wallet with the same name exists.",
		Flags: []cli.Flag{
			walletFlag("Name of the wallet to create"),
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Wallet password",
				Sources: cli.EnvVars("WALLETSYNC_WALLET_PASSWORD"),
			},
			&cli.StringFlag{
				Name:  "language",
				Usage: "Mnemonic seed language",
				Value: "English",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			walletID := c.String("wallet")
			path, err := newWalletPath(ws, dir, walletID)
			if err != nil {
				return err
			}

			h, err := ws.CreateWallet(ctx, path, c.String("password"), c.String("language"))
			if err != nil {
				return err
			}
			if err := release(ctx, ws, walletID, h); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "created wallet %s\n", walletID)
			return nil
		},
	}
}

// recoverWalletCommand returns a CLI command that restores a wallet from its
// mnemonic seed.
//
// Usage example:
//
//	walletsyncd recover --wallet carol --restore-height 1200000
func recoverWalletCommand(ws wallet.Service, dir string) *cli.Command {
	return &cli.Command{
		Name:        "recover",
		Description: "Restores a wallet from its mnemonic seed into the wallet directory.",
		Usage:       "Restores a wallet. The seed is read from --seed or WALLETSYNC_WALLET_SEED.",
		Flags: []cli.Flag{
			walletFlag("Name of the restored wallet"),
			&cli.StringFlag{
				Name:     "seed",
				Usage:    "Mnemonic seed words",
				Required: true,
				Sources:  cli.EnvVars("WALLETSYNC_WALLET_SEED"),
			},
			&cli.Uint64Flag{
				Name:  "restore-height",
				Usage: "Block height to start scanning from",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			walletID := c.String("wallet")
			path, err := newWalletPath(ws, dir, walletID)
			if err != nil {
				return err
			}

			h, err := ws.RecoverWallet(ctx, path, c.String("seed"), c.Uint64("restore-height"))
			if err != nil {
				return err
			}
			if err := release(ctx, ws, walletID, h); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "recovered wallet %s\n", walletID)
			return nil
		},
	}
}

// statusCommand returns a CLI command that prints the journaled session
// state: the active session and, for --wallet, the last stored height.
//
// Usage example:
//
//	walletsyncd status --wallet alice
func statusCommand(jr session.JournalReader) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Shows the session recorded in the journal.",
		Usage:       "Prints the active session and, optionally, a wallet's last synchronized height.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "wallet",
				Usage: "Wallet whose last synchronized height is printed",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if jr == nil {
				return ErrJournalDisabled
			}

			out := c.Root().Writer

			rec, err := jr.ActiveSession(ctx)
			switch {
			case errors.Is(err, session.ErrNoRecord):
				fmt.Fprintln(out, "no active session")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "active session %s: wallet=%s started=%s\n",
					rec.SessionID, rec.WalletID, rec.StartedAt.Format(time.RFC3339))
			}

			walletID := c.String("wallet")
			if walletID == "" {
				return nil
			}

			height, err := jr.LastHeight(ctx, walletID)
			switch {
			case errors.Is(err, session.ErrNoRecord):
				fmt.Fprintf(out, "wallet %s: never synchronized\n", walletID)
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "wallet %s: last height %d\n", walletID, height)
			}
			return nil
		},
	}
}
