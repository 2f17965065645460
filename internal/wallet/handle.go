package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/gabapcia/walletsync/internal/walletregistry"
)

var (
	// ErrProgramming is the root of caller contract violations. It is the same
	// value as walletregistry.ErrProgramming so a single errors.Is check covers
	// registry and handle misuse.
	ErrProgramming = walletregistry.ErrProgramming

	// ErrUseAfterClose is returned by any operation on a closed handle.
	ErrUseAfterClose = fmt.Errorf("%w: wallet handle used after close", ErrProgramming)

	// ErrInvalidTransition is returned when a lifecycle operation is not valid
	// from the handle's current state.
	ErrInvalidTransition = fmt.Errorf("%w: invalid wallet state transition", ErrProgramming)
)

// State is the lifecycle state of a Handle.
type State int

const (
	StateCreated State = iota
	StateInitializing
	StateRefreshing
	StatePaused
	StateClosed
)

// String returns a human readable state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateInitializing:
		return "initializing"
	case StateRefreshing:
		return "refreshing"
	case StatePaused:
		return "paused"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Snapshot is a point-in-time view of an open wallet.
type Snapshot struct {
	ID               string
	State            State
	Status           Status
	ConnectionStatus ConnectionStatus
	Balance          uint64 // atomic units
	UnlockedBalance  uint64 // atomic units
	Height           uint64
	Synchronized     bool
}

// Handle wraps exactly one native wallet session.
//
// A Handle is created by a successful open, create or recover through the
// wallet Service and must not be used after Close.
type Handle struct {
	id     string
	native NativeWallet
	owner  *service

	mu    sync.RWMutex
	state State
}

func newHandle(id string, native NativeWallet, owner *service) *Handle {
	return &Handle{
		id:     id,
		native: native,
		owner:  owner,
		state:  StateCreated,
	}
}

// ID returns the wallet identifier the handle is registered under.
func (h *Handle) ID() string {
	return h.id
}

// Path returns the path of the wallet file backing the handle.
func (h *Handle) Path() string {
	return h.native.Filename()
}

// State returns the current lifecycle state.
func (h *Handle) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state
}

// Status returns the engine-reported status.
func (h *Handle) Status() (Status, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.state == StateClosed {
		return Status{}, ErrUseAfterClose
	}

	return h.native.Status(), nil
}

// Snapshot reads the wallet's balances, height and connection state.
func (h *Handle) Snapshot() (Snapshot, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.state == StateClosed {
		return Snapshot{}, ErrUseAfterClose
	}

	return Snapshot{
		ID:               h.id,
		State:            h.state,
		Status:           h.native.Status(),
		ConnectionStatus: h.native.ConnectionStatus(),
		Balance:          h.native.Balance(),
		UnlockedBalance:  h.native.UnlockedBalance(),
		Height:           h.native.BlockchainHeight(),
		Synchronized:     h.native.IsSynchronized(),
	}, nil
}

// Init moves the handle from Created to Initializing and connects the native
// wallet to the configured daemon.
//
// It is only valid from Created. A missing daemon configuration is reported
// without changing state.
func (h *Handle) Init(ctx context.Context, restoreHeight uint64) error {
	h.mu.Lock()
	switch h.state {
	case StateCreated:
	case StateClosed:
		h.mu.Unlock()
		return ErrUseAfterClose
	default:
		state := h.state
		h.mu.Unlock()
		return fmt.Errorf("%w: init from %s", ErrInvalidTransition, state)
	}

	daemonAddress, err := h.owner.DaemonAddress()
	if err != nil {
		h.mu.Unlock()
		return err
	}

	h.state = StateInitializing
	h.mu.Unlock()

	if err := h.native.Init(ctx, daemonAddress, restoreHeight); err != nil {
		return &EngineError{Op: "init", Err: err}
	}

	return nil
}

// StartRefresh starts the engine's polling loop. Calling it while already
// refreshing is a no-op.
func (h *Handle) StartRefresh() error {
	h.mu.Lock()
	switch h.state {
	case StateInitializing, StatePaused:
	case StateRefreshing:
		h.mu.Unlock()
		return nil
	case StateClosed:
		h.mu.Unlock()
		return ErrUseAfterClose
	default:
		state := h.state
		h.mu.Unlock()
		return fmt.Errorf("%w: start refresh from %s", ErrInvalidTransition, state)
	}

	h.state = StateRefreshing
	h.mu.Unlock()

	h.native.StartRefresh()
	return nil
}

// PauseRefresh stops the engine's polling loop and returns once no listener
// callback is in flight. Calling it while already paused is a no-op.
//
// The handle lock is not held while waiting for the loop so that listener
// callbacks reading the handle cannot deadlock against it.
func (h *Handle) PauseRefresh() error {
	h.mu.Lock()
	switch h.state {
	case StateRefreshing:
	case StatePaused:
		h.mu.Unlock()
		return nil
	case StateClosed:
		h.mu.Unlock()
		return ErrUseAfterClose
	default:
		state := h.state
		h.mu.Unlock()
		return fmt.Errorf("%w: pause refresh from %s", ErrInvalidTransition, state)
	}

	h.state = StatePaused
	h.mu.Unlock()

	h.native.PauseRefresh()
	return nil
}

// SetListener installs l on the native wallet. A nil value detaches it.
func (h *Handle) SetListener(l EventListener) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.state == StateClosed {
		return ErrUseAfterClose
	}

	h.native.SetListener(l)
	return nil
}

// Close releases the native session through the owning Service.
func (h *Handle) Close(ctx context.Context) error {
	return h.owner.Close(ctx, h)
}

// isClosed reports whether the handle reached StateClosed.
func (h *Handle) isClosed() bool {
	return h.State() == StateClosed
}

// markClosed moves the handle to its terminal state.
func (h *Handle) markClosed() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state = StateClosed
}
