package walletrpc

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/types"
	"github.com/gabapcia/walletsync/internal/wallet"
)

// nativeWallet is the wallet held by the RPC server, with the last values
// read from it cached for concurrent queries.
type nativeWallet struct {
	engine   *engine
	filename string

	mu           sync.RWMutex
	status       wallet.Status
	released     bool
	listener     wallet.EventListener
	startHeight  uint64
	height       uint64
	balance      uint64
	unlocked     uint64
	synchronized bool
	connection   wallet.ConnectionStatus

	refreshCancel context.CancelFunc
	refreshDone   chan struct{}

	// seen holds the transfers already reported. Only the refresh goroutine
	// touches it.
	seen types.Set[string]
}

// Ensure compile-time compliance with the wallet.NativeWallet interface.
var _ wallet.NativeWallet = (*nativeWallet)(nil)

func newNativeWallet(e *engine, path string, startHeight uint64) *nativeWallet {
	return &nativeWallet{
		engine:      e,
		filename:    path,
		status:      wallet.Status{Code: wallet.StatusOk},
		startHeight: startHeight,
		connection:  wallet.ConnectionDisconnected,
		seen:        types.NewSet[string](),
	}
}

func (w *nativeWallet) Filename() string {
	return w.filename
}

func (w *nativeWallet) Status() wallet.Status {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.status
}

// Init points the server at daemonAddress and reads the wallet height.
// restoreHeight is used as the start height of the first refresh when the
// wallet was not restored with one already.
func (w *nativeWallet) Init(ctx context.Context, daemonAddress string, restoreHeight uint64) error {
	w.setConnection(wallet.ConnectionConnecting)

	if err := w.engine.call(ctx, "set_daemon", setDaemonParams{Address: daemonAddress}, nil); err != nil {
		w.setConnection(wallet.ConnectionDisconnected)
		return err
	}

	var res HeightResponse
	if err := w.engine.call(ctx, "get_height", nil, &res); err != nil {
		w.setConnection(wallet.ConnectionDisconnected)
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.height = res.Height
	w.connection = wallet.ConnectionConnected
	if w.startHeight == 0 {
		w.startHeight = restoreHeight
	}
	return nil
}

// StartRefresh launches the polling loop. It is a no-op while running.
func (w *nativeWallet) StartRefresh() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.refreshCancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	w.refreshCancel = cancel
	w.refreshDone = done
	go w.refreshLoop(ctx, done)
}

// PauseRefresh stops the polling loop and waits for it to exit, so no
// listener callback runs once it returns.
func (w *nativeWallet) PauseRefresh() {
	w.mu.Lock()
	cancel, done := w.refreshCancel, w.refreshDone
	w.refreshCancel, w.refreshDone = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

func (w *nativeWallet) SetListener(l wallet.EventListener) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.listener = l
}

func (w *nativeWallet) Balance() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.balance
}

func (w *nativeWallet) UnlockedBalance() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.unlocked
}

func (w *nativeWallet) BlockchainHeight() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.height
}

func (w *nativeWallet) IsSynchronized() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.synchronized
}

func (w *nativeWallet) ConnectionStatus() wallet.ConnectionStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.connection
}

func (w *nativeWallet) setConnection(c wallet.ConnectionStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.connection = c
}

func (w *nativeWallet) isReleased() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.released
}

func (w *nativeWallet) markReleased() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.released = true
}

// refreshLoop runs one refresh cycle immediately and then one per interval.
func (w *nativeWallet) refreshLoop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.engine.refreshInterval)
	defer ticker.Stop()

	for {
		w.refresh(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// cycle is what one refresh read from the server.
type cycle struct {
	height    uint64
	balance   BalanceResponse
	transfers TransfersResponse
}

// poll reads the wallet state after asking the server to refresh.
func (w *nativeWallet) poll(ctx context.Context, since uint64) (cycle, error) {
	var c cycle

	w.mu.RLock()
	start := w.startHeight
	w.mu.RUnlock()

	var refreshed RefreshResponse
	if err := w.engine.call(ctx, "refresh", refreshParams{StartHeight: start}, &refreshed); err != nil {
		return c, err
	}

	var height HeightResponse
	if err := w.engine.call(ctx, "get_height", nil, &height); err != nil {
		return c, err
	}
	c.height = height.Height

	if err := w.engine.call(ctx, "get_balance", balanceParams{AccountIndex: 0}, &c.balance); err != nil {
		return c, err
	}

	params := transfersParams{In: true, Out: true, Pool: true, FilterByHeight: true, MinHeight: since}
	if err := w.engine.call(ctx, "get_transfers", params, &c.transfers); err != nil {
		return c, err
	}

	return c, nil
}

// refresh runs one cycle and reports what changed to the listener:
// NewBlock per new height, one callback per unseen transfer, Updated when
// the balance or history changed, and finally Refreshed.
func (w *nativeWallet) refresh(ctx context.Context) {
	w.mu.RLock()
	prevHeight, prevBalance, prevUnlocked := w.height, w.balance, w.unlocked
	w.mu.RUnlock()

	c, err := w.poll(ctx, prevHeight)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.setConnection(wallet.ConnectionDisconnected)
		logger.Warn(ctx, "wallet refresh failed", "wallet.path", w.filename, "error", err)
		return
	}

	w.mu.Lock()
	w.height = c.height
	w.balance = c.balance.Balance
	w.unlocked = c.balance.UnlockedBalance
	w.synchronized = true
	w.connection = wallet.ConnectionConnected
	w.startHeight = 0
	l := w.listener
	w.mu.Unlock()

	changed := c.balance.Balance != prevBalance || c.balance.UnlockedBalance != prevUnlocked
	if w.hasUnseen(c.transfers) {
		changed = true
	}

	if l == nil {
		return
	}

	if c.height > prevHeight {
		from := prevHeight + 1
		if c.height-prevHeight > maxBlockEventsPerCycle {
			from = c.height - maxBlockEventsPerCycle + 1
		}
		for h := from; h <= c.height; h++ {
			l.NewBlock(h)
		}
	}

	for _, t := range c.transfers.Out {
		if w.firstSeen("out:" + t.TxID) {
			l.MoneySpent(t.TxID, t.Amount)
		}
	}
	for _, t := range c.transfers.In {
		if w.firstSeen("in:" + t.TxID) {
			l.MoneyReceived(t.TxID, t.Amount)
		}
	}
	for _, t := range c.transfers.Pool {
		if w.firstSeen("pool:" + t.TxID) {
			l.UnconfirmedMoneyReceived(t.TxID, t.Amount)
		}
	}

	if changed {
		l.Updated()
	}
	l.Refreshed()
}

// hasUnseen reports whether transfers holds anything not reported yet, without
// marking it as reported.
func (w *nativeWallet) hasUnseen(transfers TransfersResponse) bool {
	for prefix, list := range map[string][]TransferResponse{
		"out:":  transfers.Out,
		"in:":   transfers.In,
		"pool:": transfers.Pool,
	} {
		for _, t := range list {
			if !w.seen.Has(prefix + t.TxID) {
				return true
			}
		}
	}
	return false
}

// firstSeen marks key as reported and reports whether it was new.
func (w *nativeWallet) firstSeen(key string) bool {
	return w.seen.Insert(key)
}
