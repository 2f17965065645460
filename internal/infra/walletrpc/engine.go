// Package walletrpc implements wallet.Engine on top of a wallet JSON-RPC
// server (monero-wallet-rpc method set). The server holds at most one open
// wallet; the engine mirrors that and drives the refresh polling loop that
// emits wallet events.
package walletrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletsync/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletsync/internal/wallet"
)

var (
	// ErrNetworkMismatch is returned when a wallet is requested for a network
	// other than the one the RPC server runs on.
	ErrNetworkMismatch = errors.New("network does not match the wallet rpc server")

	// ErrWalletAlreadyOpen is returned when a second wallet is opened while
	// the server still holds one.
	ErrWalletAlreadyOpen = errors.New("wallet rpc server already holds an open wallet")

	// ErrForeignWallet is returned when CloseWallet receives a NativeWallet
	// that this engine did not create.
	ErrForeignWallet = errors.New("native wallet does not belong to this engine")
)

const (
	// defaultRefreshInterval is the delay between two refresh cycles.
	defaultRefreshInterval = 10 * time.Second

	// maxBlockEventsPerCycle caps the NewBlock callbacks of one refresh cycle.
	// Only the most recent heights are reported during a long catch-up.
	maxBlockEventsPerCycle = 1000
)

// engine is the wallet.Engine over a wallet JSON-RPC server.
type engine struct {
	conn            jsonrpc.Client
	retry           retry.Retry
	network         wallet.Network
	refreshInterval time.Duration

	mu   sync.Mutex
	open *nativeWallet // wallet currently held by the server
}

// Ensure compile-time compliance with the wallet.Engine interface.
var _ wallet.Engine = (*engine)(nil)

// config holds optional settings for New.
type config struct {
	retry           retry.Retry
	refreshInterval time.Duration
}

// Option configures the engine.
type Option func(*config)

// WithRetry replaces the retry policy applied to every RPC call. The default
// retries transport failures only, never errors returned by the server.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithRefreshInterval sets the delay between refresh cycles. Default: 10s.
func WithRefreshInterval(d time.Duration) Option {
	return func(c *config) {
		c.refreshInterval = d
	}
}

// New creates an engine talking to a wallet RPC server that runs on network.
func New(conn jsonrpc.Client, network wallet.Network, opts ...Option) *engine {
	cfg := config{
		retry:           retry.New(retry.WithRetryIf(isTransient)),
		refreshInterval: defaultRefreshInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &engine{
		conn:            conn,
		retry:           cfg.retry,
		network:         network,
		refreshInterval: cfg.refreshInterval,
	}
}

// isTransient reports whether err may succeed on a later attempt.
func isTransient(err error) bool {
	return !errors.Is(err, jsonrpc.ErrProviderReturnedError)
}

// call invokes method and decodes its result into result when not nil.
func (e *engine) call(ctx context.Context, method string, params, result any) error {
	var data json.RawMessage
	err := e.retry.Execute(ctx, method, func() error {
		var err error
		data, err = e.conn.Fetch(ctx, method, params)
		return err
	})
	if err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	return json.Unmarshal(data, result)
}

// reserve verifies the requested network and claims the server for a new
// wallet at path in one step. A failed call must be undone with unreserve.
func (e *engine) reserve(network wallet.Network, path string, startHeight uint64) (*nativeWallet, error) {
	if network != e.network {
		return nil, fmt.Errorf("%w: requested %s, server runs %s", ErrNetworkMismatch, network, e.network)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.open != nil {
		return nil, fmt.Errorf("%w: %s", ErrWalletAlreadyOpen, e.open.filename)
	}

	e.open = newNativeWallet(e, path, startHeight)
	return e.open, nil
}

// unreserve frees the server if w still holds it.
func (e *engine) unreserve(w *nativeWallet) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.open == w {
		e.open = nil
	}
}

// CreateWallet creates and opens a new wallet. The server resolves the file
// name inside its own wallet directory.
func (e *engine) CreateWallet(ctx context.Context, path, password, language string, network wallet.Network) (wallet.NativeWallet, error) {
	w, err := e.reserve(network, path, 0)
	if err != nil {
		return nil, err
	}

	params := createWalletParams{
		Filename: filepath.Base(path),
		Password: password,
		Language: language,
	}
	if err := e.call(ctx, "create_wallet", params, nil); err != nil {
		e.unreserve(w)
		return nil, err
	}

	return w, nil
}

// OpenWallet opens an existing wallet. A wallet the server refuses to open
// (e.g. wrong password) is returned with an error Status, like the native
// library does; only transport failures are returned as errors.
func (e *engine) OpenWallet(ctx context.Context, path, password string, network wallet.Network) (wallet.NativeWallet, error) {
	w, err := e.reserve(network, path, 0)
	if err != nil {
		return nil, err
	}

	params := openWalletParams{
		Filename: filepath.Base(path),
		Password: password,
	}
	if err := e.call(ctx, "open_wallet", params, nil); err != nil {
		e.unreserve(w)
		if !errors.Is(err, jsonrpc.ErrProviderReturnedError) {
			return nil, err
		}

		w.mu.Lock()
		w.status = wallet.Status{Code: wallet.StatusError, Message: err.Error()}
		w.released = true
		w.mu.Unlock()
		return w, nil
	}

	return w, nil
}

// RecoverWallet restores a wallet from its mnemonic seed and opens it.
func (e *engine) RecoverWallet(ctx context.Context, path, mnemonic string, network wallet.Network, restoreHeight uint64) (wallet.NativeWallet, error) {
	w, err := e.reserve(network, path, restoreHeight)
	if err != nil {
		return nil, err
	}

	params := restoreWalletParams{
		Filename:        filepath.Base(path),
		Seed:            mnemonic,
		RestoreHeight:   restoreHeight,
		AutosaveCurrent: true,
	}
	if err := e.call(ctx, "restore_deterministic_wallet", params, nil); err != nil {
		e.unreserve(w)
		return nil, err
	}

	return w, nil
}

// CloseWallet stops the refresh loop, then stores and closes the wallet on
// the server. On failure the wallet stays open and usable.
func (e *engine) CloseWallet(ctx context.Context, w wallet.NativeWallet) error {
	nw, ok := w.(*nativeWallet)
	if !ok || nw.engine != e {
		return ErrForeignWallet
	}

	nw.PauseRefresh()
	if nw.isReleased() {
		return nil
	}

	if err := e.call(ctx, "close_wallet", closeWalletParams{AutosaveCurrent: true}, nil); err != nil {
		return err
	}

	nw.markReleased()
	e.unreserve(nw)

	logger.Debug(ctx, "wallet rpc session closed", "wallet.path", nw.filename)
	return nil
}

// WalletExists reports whether the wallet's key file exists at path.
func (e *engine) WalletExists(path string) bool {
	_, err := os.Stat(path + wallet.KeysFileExtension)
	return err == nil
}
