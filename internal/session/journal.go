package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoRecord is returned by a JournalReader when nothing was recorded.
var ErrNoRecord = errors.New("no session record")

// Record describes one started session.
type Record struct {
	SessionID string    // unique per Start
	WalletID  string    // wallet the session belongs to
	StartedAt time.Time // when the session became active
}

// Journal persists session lifecycle facts outside the process.
//
// Journal failures never affect the session itself; the worker only logs
// them.
type Journal interface {
	// SessionStarted records rec as the active session.
	SessionStarted(ctx context.Context, rec Record) error

	// SessionStopped clears the active session and stores the last wallet
	// height observed before close.
	SessionStopped(ctx context.Context, rec Record, lastHeight uint64) error
}

// JournalReader reads back what a Journal recorded.
type JournalReader interface {
	// ActiveSession returns the session recorded as active, or ErrNoRecord.
	ActiveSession(ctx context.Context) (Record, error)

	// LastHeight returns the height stored when walletID's last session
	// stopped, or ErrNoRecord.
	LastHeight(ctx context.Context, walletID string) (uint64, error)
}

// nopJournal is used when no Journal is configured.
type nopJournal struct{}

func (nopJournal) SessionStarted(context.Context, Record) error { return nil }

func (nopJournal) SessionStopped(context.Context, Record, uint64) error { return nil }
