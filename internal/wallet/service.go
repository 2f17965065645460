// Package wallet manages open wallet sessions on top of an external wallet
// engine. It owns the handle lifecycle (open, init, refresh, close), keeps the
// process-wide registry of open wallets consistent, and discovers wallet files
// on disk.
package wallet

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/walletsync/internal/walletregistry"
)

var (
	// ErrDaemonNotConfigured is returned by operations that need the daemon
	// address or network before SetDaemon was called.
	ErrDaemonNotConfigured = errors.New("daemon not configured: call SetDaemon first")

	// ErrCloseFailed is returned when the engine could not release a wallet.
	// The handle stays registered and usable.
	ErrCloseFailed = errors.New("wallet close failed")
)

// Service is the wallet manager: the only way to obtain and release handles.
type Service interface {
	// SetDaemon configures the daemon address and ledger network used by
	// every subsequent open, create, recover and init.
	SetDaemon(address string, network Network)

	// DaemonAddress returns the configured daemon address or ErrDaemonNotConfigured.
	DaemonAddress() (string, error)

	// Network returns the configured network or ErrDaemonNotConfigured.
	Network() (Network, error)

	// WalletExists reports whether a wallet's key file exists at path.
	WalletExists(path string) bool

	// OpenWallet opens the wallet at path and registers its handle.
	//
	// Returns walletregistry.ErrAlreadyManaged without touching the engine if
	// the same wallet is already open, or an *EngineError if the engine fails.
	OpenWallet(ctx context.Context, path, password string) (*Handle, error)

	// CreateWallet creates a new wallet at path and registers its handle.
	CreateWallet(ctx context.Context, path, password, language string) (*Handle, error)

	// RecoverWallet restores a wallet from mnemonic into path and registers its handle.
	RecoverWallet(ctx context.Context, path, mnemonic string, restoreHeight uint64) (*Handle, error)

	// Close unregisters h and releases its native session. If the engine
	// fails, h is registered again and ErrCloseFailed is returned. Closing a
	// handle twice returns ErrUseAfterClose.
	Close(ctx context.Context, h *Handle) error

	// Lookup returns the open handle registered under id.
	Lookup(id string) (*Handle, bool)

	// FindWallets lists the wallets stored in dir.
	FindWallets(ctx context.Context, dir string) ([]Info, error)
}

// daemonConfig is the daemon connection context shared by all handles.
type daemonConfig struct {
	address string
	network Network
	set     bool
}

// service is the default Service implementation.
type service struct {
	engine   Engine
	registry walletregistry.Service[*Handle]

	mu     sync.RWMutex
	daemon daemonConfig
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// config holds optional settings for New.
type config struct {
	registry walletregistry.Service[*Handle]
}

// Option configures the wallet Service.
type Option func(*config)

// WithRegistry shares an existing registry instead of creating a private one.
func WithRegistry(r walletregistry.Service[*Handle]) Option {
	return func(c *config) {
		c.registry = r
	}
}

// New creates a wallet Service backed by engine.
//
// By default the Service owns a fresh registry; use WithRegistry to share a
// process-scoped one.
func New(engine Engine, opts ...Option) *service {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.registry == nil {
		cfg.registry = walletregistry.New[*Handle]()
	}

	return &service{
		engine:   engine,
		registry: cfg.registry,
	}
}

// SetDaemon configures the daemon address and ledger network.
func (s *service) SetDaemon(address string, network Network) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.daemon = daemonConfig{address: address, network: network, set: true}
}

// DaemonAddress returns the configured daemon address.
func (s *service) DaemonAddress() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.daemon.set {
		return "", ErrDaemonNotConfigured
	}
	return s.daemon.address, nil
}

// Network returns the configured ledger network.
func (s *service) Network() (Network, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.daemon.set {
		return Mainnet, ErrDaemonNotConfigured
	}
	return s.daemon.network, nil
}

// Lookup returns the open handle registered under id.
func (s *service) Lookup(id string) (*Handle, bool) {
	return s.registry.Lookup(id)
}
