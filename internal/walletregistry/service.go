// Package walletregistry tracks which wallets are currently open ("managed")
// inside the process. It is the single source of truth used to reject a
// second concurrent open of the same wallet file.
package walletregistry

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrProgramming is the root of every caller contract violation reported by
	// the registry. Errors wrapping it indicate a bug in the caller and must not
	// be retried.
	ErrProgramming = errors.New("programming error")

	// ErrAlreadyManaged is returned by Manage when the identifier is already present.
	ErrAlreadyManaged = fmt.Errorf("%w: wallet already under management", ErrProgramming)

	// ErrNotManaged is returned by Unmanage when the identifier is absent.
	ErrNotManaged = fmt.Errorf("%w: wallet not under management", ErrProgramming)
)

// Service defines the registry of live wallet handles keyed by wallet identifier.
//
// An identifier is present if and only if exactly one handle for it is
// currently open. Implementations must be safe for concurrent use.
type Service[T any] interface {
	// Manage registers handle under id.
	//
	// Returns ErrAlreadyManaged if id is already present. No side effects
	// beyond the map mutation.
	Manage(id string, handle T) error

	// Unmanage removes id from the registry.
	//
	// Returns ErrNotManaged if id is absent.
	Unmanage(id string) error

	// Lookup returns the handle registered under id, if any.
	Lookup(id string) (T, bool)

	// Len returns the number of managed wallets.
	Len() int
}

// service is the in-memory implementation of Service guarded by a RWMutex.
type service[T any] struct {
	mu      sync.RWMutex
	handles map[string]T
}

// Ensure compile-time compliance with the Service interface.
var _ Service[struct{}] = (*service[struct{}])(nil)

// New creates an empty registry.
//
// The registry is meant to be constructed once by the host and passed to
// every component that opens or closes wallets.
func New[T any]() *service[T] {
	return &service[T]{
		handles: make(map[string]T),
	}
}
