package wallet

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/walletregistry"
)

// Identifier derives the wallet identifier from the wallet's path: its
// canonical file name.
func Identifier(path string) string {
	return filepath.Base(filepath.Clean(path))
}

// openFunc calls one of the engine's open variants.
type openFunc func(network Network) (NativeWallet, error)

// WalletExists reports whether a wallet's key file exists at path.
func (s *service) WalletExists(path string) bool {
	return s.engine.WalletExists(path)
}

// OpenWallet opens the existing wallet at path.
func (s *service) OpenWallet(ctx context.Context, path, password string) (*Handle, error) {
	return s.register(ctx, "open", path, func(network Network) (NativeWallet, error) {
		return s.engine.OpenWallet(ctx, path, password, network)
	})
}

// CreateWallet creates a new wallet at path using the given seed language.
func (s *service) CreateWallet(ctx context.Context, path, password, language string) (*Handle, error) {
	return s.register(ctx, "create", path, func(network Network) (NativeWallet, error) {
		return s.engine.CreateWallet(ctx, path, password, language, network)
	})
}

// RecoverWallet restores a wallet from its mnemonic seed.
func (s *service) RecoverWallet(ctx context.Context, path, mnemonic string, restoreHeight uint64) (*Handle, error) {
	return s.register(ctx, "recover", path, func(network Network) (NativeWallet, error) {
		return s.engine.RecoverWallet(ctx, path, mnemonic, network, restoreHeight)
	})
}

// register runs open against the engine and records the resulting handle.
//
// The registry is consulted before the engine so that a second open of an
// already managed wallet never reaches the engine. If a concurrent open wins
// the race between the engine call and Manage, the freshly opened native
// session is released again.
func (s *service) register(ctx context.Context, op, path string, open openFunc) (*Handle, error) {
	network, err := s.Network()
	if err != nil {
		return nil, err
	}

	id := Identifier(path)
	if _, ok := s.registry.Lookup(id); ok {
		return nil, fmt.Errorf("%w: %s", walletregistry.ErrAlreadyManaged, id)
	}

	native, err := open(network)
	if err != nil {
		return nil, &EngineError{Op: op, Err: err}
	}

	h := newHandle(id, native, s)
	if err := s.registry.Manage(id, h); err != nil {
		if closeErr := s.engine.CloseWallet(ctx, native); closeErr != nil {
			logger.Error(ctx, "failed to release wallet after losing registration race",
				"wallet.id", id,
				"error", closeErr,
			)
		}
		return nil, err
	}

	logger.Debug(ctx, "managing wallet",
		"wallet.id", id,
		"wallet.op", op,
		"wallet.network", network.String(),
	)
	return h, nil
}

// Close unregisters h before asking the engine to release it so that a
// half-closed handle is never visible as open. A failed release registers the
// handle again.
func (s *service) Close(ctx context.Context, h *Handle) error {
	if h.isClosed() {
		return ErrUseAfterClose
	}

	if err := s.registry.Unmanage(h.id); err != nil {
		return err
	}

	if err := s.engine.CloseWallet(ctx, h.native); err != nil {
		if manageErr := s.registry.Manage(h.id, h); manageErr != nil {
			return errors.Join(ErrCloseFailed, &EngineError{Op: "close", Err: err}, manageErr)
		}
		return errors.Join(ErrCloseFailed, &EngineError{Op: "close", Err: err})
	}

	h.markClosed()

	logger.Debug(ctx, "wallet closed", "wallet.id", h.id)
	return nil
}
