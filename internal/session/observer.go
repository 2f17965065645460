package session

import (
	"sync"

	"github.com/gabapcia/walletsync/internal/wallet"
)

// Observer receives progress and refresh notifications for the active
// session. At most one Observer is bound at a time.
//
// Refresh callbacks run on the wallet engine's refresh goroutine; progress
// and error callbacks run on the session worker. Implementations must not
// block either of them, and must not bind or unbind an Observer from inside
// a callback.
type Observer interface {
	// OnRefreshed is called after a refresh cycle. full is true when the
	// wallet's balance or history changed, false for a new block only.
	OnRefreshed(h *wallet.Handle, full bool)

	// OnProgressText reports a milestone label while a session starts.
	OnProgressText(text string)

	// OnProgress reports coarse start completion in percent (0..100).
	OnProgress(percent int)

	// OnError reports a lifecycle request that failed for walletID.
	OnError(walletID string, err error)
}

// observerSlot is the single, swappable Observer binding. Every notify
// method is a no-op while the slot is empty.
//
// Deliveries hold the read lock for the whole callback, so once bind or
// unbind returns the previous Observer receives nothing more.
type observerSlot struct {
	mu       sync.RWMutex
	observer Observer
}

func (s *observerSlot) bind(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observer = o
}

func (s *observerSlot) unbind() {
	s.bind(nil)
}

// refreshed forwards a refresh notification and reports whether an Observer
// received it.
func (s *observerSlot) refreshed(h *wallet.Handle, full bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.observer == nil {
		return false
	}

	s.observer.OnRefreshed(h, full)
	return true
}

func (s *observerSlot) progressText(text string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.observer != nil {
		s.observer.OnProgressText(text)
	}
}

func (s *observerSlot) progress(percent int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.observer != nil {
		s.observer.OnProgress(percent)
	}
}

// failed forwards err and reports whether an Observer received it.
func (s *observerSlot) failed(walletID string, err error) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.observer == nil {
		return false
	}

	s.observer.OnError(walletID, err)
	return true
}
