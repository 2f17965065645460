package walletregistry

import "fmt"

// Manage registers handle under id, failing with ErrAlreadyManaged when the
// identifier is already present.
func (s *service[T]) Manage(id string, handle T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handles[id]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyManaged, id)
	}

	s.handles[id] = handle
	return nil
}

// Unmanage removes id from the registry, failing with ErrNotManaged when the
// identifier is absent.
func (s *service[T]) Unmanage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handles[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotManaged, id)
	}

	delete(s.handles, id)
	return nil
}

// Lookup is a pure read of the handle registered under id.
func (s *service[T]) Lookup(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	handle, ok := s.handles[id]
	return handle, ok
}

// Len returns the number of managed wallets.
func (s *service[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.handles)
}
