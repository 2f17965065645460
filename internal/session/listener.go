package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/wallet"
	"golang.org/x/time/rate"
)

// BlockNotifyInterval is the minimum time between two forwarded new block
// notifications.
const BlockNotifyInterval = 2000 * time.Millisecond

// eventListener adapts raw engine events for one session into Observer
// notifications.
//
// Callbacks arrive on the engine's refresh goroutine. After detach every
// callback is a no-op, so a late event from the engine can never reach the
// Observer of a stopped session.
type eventListener struct {
	handle    *wallet.Handle
	observers *observerSlot
	metrics   *metrics
	now       func() time.Time

	// updatedPending is true while a balance or history change has not been
	// delivered as a full notification.
	updatedPending atomic.Bool

	// blocks admits one new block notification per BlockNotifyInterval.
	blocks *rate.Limiter

	detached atomic.Bool
}

// Ensure compile-time compliance with the wallet.EventListener interface.
var _ wallet.EventListener = (*eventListener)(nil)

func newEventListener(h *wallet.Handle, observers *observerSlot, m *metrics, now func() time.Time) *eventListener {
	l := &eventListener{
		handle:    h,
		observers: observers,
		metrics:   m,
		now:       now,
		blocks:    rate.NewLimiter(rate.Every(BlockNotifyInterval), 1),
	}

	// A fresh session has never delivered its state, so the first refresh
	// cycle always produces a full notification.
	l.updatedPending.Store(true)
	return l
}

// detach stops all further forwarding.
func (l *eventListener) detach() {
	l.detached.Store(true)
}

func (l *eventListener) MoneySpent(txID string, amount uint64) {
	if l.detached.Load() {
		return
	}
	logger.Debug(context.Background(), "money spent",
		"wallet.id", l.handle.ID(),
		"tx.id", txID,
		"tx.amount", amount,
	)
}

func (l *eventListener) MoneyReceived(txID string, amount uint64) {
	if l.detached.Load() {
		return
	}
	logger.Debug(context.Background(), "money received",
		"wallet.id", l.handle.ID(),
		"tx.id", txID,
		"tx.amount", amount,
	)
}

func (l *eventListener) UnconfirmedMoneyReceived(txID string, amount uint64) {
	if l.detached.Load() {
		return
	}
	logger.Debug(context.Background(), "unconfirmed money received",
		"wallet.id", l.handle.ID(),
		"tx.id", txID,
		"tx.amount", amount,
	)
}

// NewBlock forwards a lightweight notification unless one was already
// forwarded within BlockNotifyInterval. The window advances whether or not an
// Observer is bound.
func (l *eventListener) NewBlock(height uint64) {
	if l.detached.Load() {
		return
	}

	ctx := context.Background()
	if !l.blocks.AllowN(l.now(), 1) {
		l.metrics.throttled(ctx)
		return
	}

	if l.observers.refreshed(l.handle, false) {
		l.metrics.forwarded(ctx, kindBlock)
	}
	logger.Debug(ctx, "new block", "wallet.id", l.handle.ID(), "wallet.height", height)
}

// Updated marks a pending balance or history change. It never notifies.
func (l *eventListener) Updated() {
	if l.detached.Load() {
		return
	}
	l.updatedPending.Store(true)
}

// Refreshed forwards a full notification when a change is pending. The
// pending flag is only cleared once an Observer received the notification.
func (l *eventListener) Refreshed() {
	if l.detached.Load() || !l.updatedPending.Load() {
		return
	}

	if l.observers.refreshed(l.handle, true) {
		l.updatedPending.Store(false)
		l.metrics.forwarded(context.Background(), kindFull)
	}
}
