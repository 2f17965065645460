package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/walletsync/internal/pkg/validator"
	"github.com/gabapcia/walletsync/internal/session"

	"github.com/urfave/cli/v3"
)

// openWalletCommand returns a CLI command that runs a session for one wallet,
// printing progress and refresh notifications.
//
// Usage example:
//
//	walletsyncd open --wallet alice
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or the
// session fails to start.
func openWalletCommand(ss session.Service) *cli.Command {
	return &cli.Command{
		Name:        "open",
		Description: "Opens a wallet from the wallet directory and keeps it synchronized.",
		Usage:       "Runs a wallet session. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "wallet",
				Usage:    "Wallet name inside the wallet directory",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Wallet password",
				Sources: cli.EnvVars("WALLETSYNC_WALLET_PASSWORD"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			walletID := c.String("wallet")
			if err := validator.Var(walletID, "required,walletid"); err != nil {
				return err
			}

			observer := newConsoleObserver(c.Root().Writer)
			ss.BindObserver(observer)

			if err := ss.Start(ctx); err != nil {
				return err
			}
			defer ss.Close()

			quit, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := ss.RequestStart(quit, walletID, c.String("password")); err != nil {
				return err
			}

			select {
			case <-quit.Done():
				return nil
			case err := <-observer.failures:
				return err
			}
		},
	}
}
