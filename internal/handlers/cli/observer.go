package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/gabapcia/walletsync/internal/session"
	"github.com/gabapcia/walletsync/internal/wallet"
)

// consoleObserver prints session notifications and hands the first failure
// to the command waiting on it.
type consoleObserver struct {
	mu  sync.Mutex
	out io.Writer

	failures chan error
}

var _ session.Observer = (*consoleObserver)(nil)

func newConsoleObserver(out io.Writer) *consoleObserver {
	return &consoleObserver{
		out:      out,
		failures: make(chan error, 1),
	}
}

func (o *consoleObserver) printf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()

	fmt.Fprintf(o.out, format+"\n", args...)
}

func (o *consoleObserver) OnRefreshed(h *wallet.Handle, full bool) {
	snap, err := h.Snapshot()
	if err != nil {
		return
	}

	if !full {
		o.printf("block %d", snap.Height)
		return
	}

	o.printf("wallet %s: height=%d balance=%s unlocked=%s synchronized=%t connection=%s",
		snap.ID,
		snap.Height,
		formatAmount(snap.Balance),
		formatAmount(snap.UnlockedBalance),
		snap.Synchronized,
		snap.ConnectionStatus,
	)
}

func (o *consoleObserver) OnProgressText(text string) {
	o.printf("%s", text)
}

func (o *consoleObserver) OnProgress(percent int) {
	o.printf("progress %d%%", percent)
}

func (o *consoleObserver) OnError(walletID string, err error) {
	o.printf("wallet %s: %v", walletID, err)

	select {
	case o.failures <- fmt.Errorf("wallet %s: %w", walletID, err):
	default:
	}
}

// atomicUnitsPerCoin is the number of atomic units in one coin.
const atomicUnitsPerCoin = 1_000_000_000_000

// formatAmount renders atomic units as a decimal coin amount.
func formatAmount(atomic uint64) string {
	return fmt.Sprintf("%d.%012d", atomic/atomicUnitsPerCoin, atomic%atomicUnitsPerCoin)
}
