package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEngine is the root of every failure reported by the wallet engine.
var ErrEngine = errors.New("wallet engine error")

// EngineError wraps a failure returned by the external wallet engine together
// with the operation that produced it. It matches both ErrEngine and the
// engine's own error through errors.Is.
type EngineError struct {
	Op  string // engine operation (e.g., "open", "close")
	Err error  // diagnostic returned by the engine
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrEngine, e.Op, e.Err)
}

// Unwrap exposes both ErrEngine and the underlying engine error.
func (e *EngineError) Unwrap() []error {
	return []error{ErrEngine, e.Err}
}

// Network identifies the ledger network a wallet belongs to.
type Network int

const (
	Mainnet Network = iota
	Testnet
	Stagenet
)

// ErrUnknownNetwork is returned by ParseNetwork for unsupported names.
var ErrUnknownNetwork = errors.New("unknown network")

// ParseNetwork converts a network name (case-insensitive) into a Network.
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet", "main":
		return Mainnet, nil
	case "testnet", "test":
		return Testnet, nil
	case "stagenet", "stage":
		return Stagenet, nil
	default:
		return Mainnet, fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
	}
}

// String returns the canonical network name.
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Stagenet:
		return "stagenet"
	default:
		return fmt.Sprintf("network(%d)", int(n))
	}
}

// StatusCode is the coarse health reported by the engine for a wallet.
type StatusCode int

const (
	StatusOk StatusCode = iota
	StatusError
)

// Status is the engine-reported wallet status: Ok, or Error with a message.
type Status struct {
	Code    StatusCode
	Message string
}

// IsOk reports whether the status is StatusOk.
func (s Status) IsOk() bool {
	return s.Code == StatusOk
}

// String renders the status for logs.
func (s Status) String() string {
	if s.IsOk() {
		return "ok"
	}
	return "error: " + s.Message
}

// ConnectionStatus describes the link between a wallet and its daemon.
type ConnectionStatus int

const (
	ConnectionDisconnected ConnectionStatus = iota
	ConnectionConnecting
	ConnectionConnected
	ConnectionWrongVersion
)

// String returns a human readable connection status.
func (c ConnectionStatus) String() string {
	switch c {
	case ConnectionDisconnected:
		return "disconnected"
	case ConnectionConnecting:
		return "connecting"
	case ConnectionConnected:
		return "connected"
	case ConnectionWrongVersion:
		return "wrong_version"
	default:
		return fmt.Sprintf("connection(%d)", int(c))
	}
}

// EventListener receives raw events from a wallet's background refresh loop.
//
// Callbacks are invoked on the engine's own refresh goroutine and must not
// block it.
type EventListener interface {
	// MoneySpent is called when an outgoing transfer is detected.
	MoneySpent(txID string, amount uint64)

	// MoneyReceived is called when a confirmed incoming transfer is detected.
	MoneyReceived(txID string, amount uint64)

	// UnconfirmedMoneyReceived is called when an incoming transfer reaches the pool.
	UnconfirmedMoneyReceived(txID string, amount uint64)

	// NewBlock is called for each block the wallet processes.
	NewBlock(height uint64)

	// Updated is called whenever the wallet's balance or history changed.
	Updated()

	// Refreshed is called at the end of every refresh cycle.
	Refreshed()
}

// NativeWallet is one opaque wallet session owned by the engine.
//
// Query methods must be safe to call concurrently with the refresh loop.
type NativeWallet interface {
	// Filename returns the path the wallet was opened from.
	Filename() string

	// Status returns the engine-reported status of the wallet.
	Status() Status

	// Init connects the wallet to the daemon at daemonAddress, scanning from
	// restoreHeight when the wallet has no history yet.
	Init(ctx context.Context, daemonAddress string, restoreHeight uint64) error

	// StartRefresh begins the background polling loop.
	StartRefresh()

	// PauseRefresh stops the background polling loop. When it returns no
	// further listener callbacks are in flight.
	PauseRefresh()

	// SetListener installs l as the event listener. A nil value detaches the
	// current listener.
	SetListener(l EventListener)

	Balance() uint64
	UnlockedBalance() uint64
	BlockchainHeight() uint64
	IsSynchronized() bool
	ConnectionStatus() ConnectionStatus
}

// Engine is the capability surface of the external wallet engine.
type Engine interface {
	// CreateWallet creates a new wallet file at path and opens it.
	CreateWallet(ctx context.Context, path, password, language string, network Network) (NativeWallet, error)

	// OpenWallet opens the existing wallet at path.
	OpenWallet(ctx context.Context, path, password string, network Network) (NativeWallet, error)

	// RecoverWallet restores a wallet from its mnemonic seed into path.
	RecoverWallet(ctx context.Context, path, mnemonic string, network Network, restoreHeight uint64) (NativeWallet, error)

	// CloseWallet stores and releases the native session. On failure the
	// session remains usable.
	CloseWallet(ctx context.Context, w NativeWallet) error

	// WalletExists reports whether a wallet's key file exists at path.
	WalletExists(path string) bool
}
