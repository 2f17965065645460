package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/validator"
	"github.com/gabapcia/walletsync/internal/pkg/x/chflow"
	"github.com/gabapcia/walletsync/internal/wallet"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Progress milestones reported while a session starts.
const (
	ProgressReceived      = 10
	ProgressPathResolved  = 20
	ProgressDaemonChecked = 30
	ProgressOpened        = 55
	ProgressStatusOk      = 60
	ProgressInitialized   = 90
	ProgressRefreshing    = 95
)

// ProgressTextLoading is the milestone label sent when a Start request is
// picked up.
const ProgressTextLoading = "loading wallet"

// processRequests consumes the queue until ctx is canceled. Each request runs
// to completion: cancellation is only observed between requests.
func (s *service) processRequests(ctx context.Context, queue <-chan Request, done chan<- struct{}) {
	defer close(done)

	for {
		req, ok := chflow.Receive(ctx, queue)
		if !ok {
			return
		}

		reqCtx := context.WithoutCancel(ctx)
		switch req.Kind {
		case KindStart:
			s.handleStart(reqCtx, req)
		case KindStop:
			s.handleStop(reqCtx)
		}
	}
}

// startProcessRequests launches the worker goroutine.
func (s *service) startProcessRequests(ctx context.Context, queue <-chan Request, done chan<- struct{}) {
	go s.processRequests(ctx, queue, done)
}

// handleStart opens req.WalletID and starts refreshing it. A Start while a
// session is active is a no-op: the session is never silently replaced.
func (s *service) handleStart(ctx context.Context, req Request) {
	ctx, span := s.tracer.Start(ctx, "session.start",
		trace.WithAttributes(attribute.String("wallet.id", req.WalletID)),
	)
	defer span.End()

	s.observers.progressText(ProgressTextLoading)
	s.observers.progress(ProgressReceived)

	if state := s.State(); state != StateIdle {
		logger.Debug(ctx, "session already running, ignoring start",
			"wallet.id", req.WalletID,
			"session.state", state.String(),
		)
		return
	}

	s.setState(StateLoading, nil)

	current, err := s.startSession(ctx, req)
	if err != nil {
		s.setState(StateIdle, nil)

		span.RecordError(err)
		span.SetStatus(codes.Error, "session start failed")
		s.reportError(ctx, req.WalletID, err)
		return
	}

	s.setState(StateActive, current)
	s.observers.progress(ProgressRefreshing)

	if err := s.journal.SessionStarted(ctx, current.record); err != nil {
		logger.Warn(ctx, "failed to journal session start",
			"session.id", current.record.SessionID,
			"wallet.id", current.record.WalletID,
			"error", err,
		)
	}

	logger.Info(ctx, "session started",
		"session.id", current.record.SessionID,
		"wallet.id", current.record.WalletID,
	)
}

// startSession walks a wallet from disk to a refreshing handle. Any handle
// opened along the way is closed again on failure.
func (s *service) startSession(ctx context.Context, req Request) (*active, error) {
	path, err := s.walletPath(req.WalletID)
	if err != nil {
		return nil, err
	}
	s.observers.progress(ProgressPathResolved)

	network, err := s.wallets.Network()
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "resolved wallet",
		"wallet.id", req.WalletID,
		"wallet.path", path,
		"wallet.network", network.String(),
	)
	s.observers.progress(ProgressDaemonChecked)

	if !s.wallets.WalletExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrWalletNotFound, req.WalletID)
	}

	h, err := s.wallets.OpenWallet(ctx, path, req.Password)
	if err != nil {
		return nil, err
	}
	s.observers.progress(ProgressOpened)

	status, err := h.Status()
	if err != nil {
		s.discard(ctx, h)
		return nil, err
	}
	if !status.IsOk() {
		s.discard(ctx, h)
		return nil, fmt.Errorf("%w: %s", ErrWalletStatus, status.Message)
	}
	s.observers.progress(ProgressStatusOk)

	if err := h.Init(ctx, s.resumeHeight(ctx, req.WalletID)); err != nil {
		s.discard(ctx, h)
		return nil, err
	}
	s.observers.progress(ProgressInitialized)

	listener := newEventListener(h, &s.observers, s.metrics, s.now)
	if err := h.SetListener(listener); err != nil {
		s.discard(ctx, h)
		return nil, err
	}
	if err := h.StartRefresh(); err != nil {
		listener.detach()
		s.discard(ctx, h)
		return nil, err
	}

	return &active{
		record: Record{
			SessionID: newSessionID(),
			WalletID:  h.ID(),
			StartedAt: s.now(),
		},
		handle:   h,
		listener: listener,
	}, nil
}

// handleStop tears down the active session. The Observer is always unbound
// first, so nothing is forwarded to a caller that is going away. Without an
// active session it makes no engine calls.
func (s *service) handleStop(ctx context.Context) {
	s.observers.unbind()

	current := s.session()
	if current == nil {
		return
	}

	ctx, span := s.tracer.Start(ctx, "session.stop",
		trace.WithAttributes(
			attribute.String("wallet.id", current.record.WalletID),
			attribute.String("session.id", current.record.SessionID),
		),
	)
	defer span.End()

	s.setState(StateStopping, nil)

	h := current.handle
	if err := h.PauseRefresh(); err != nil {
		logger.Error(ctx, "failed to pause refresh", "wallet.id", h.ID(), "error", err)
	}
	if err := h.SetListener(nil); err != nil {
		logger.Error(ctx, "failed to detach listener", "wallet.id", h.ID(), "error", err)
	}
	current.listener.detach()

	var lastHeight uint64
	if snap, err := h.Snapshot(); err == nil {
		lastHeight = snap.Height
	}

	if err := h.Close(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "wallet close failed")
		logger.Error(ctx, "failed to close wallet",
			"session.id", current.record.SessionID,
			"wallet.id", h.ID(),
			"error", err,
		)
	}

	if err := s.journal.SessionStopped(ctx, current.record, lastHeight); err != nil {
		logger.Warn(ctx, "failed to journal session stop",
			"session.id", current.record.SessionID,
			"wallet.id", current.record.WalletID,
			"error", err,
		)
	}

	s.setState(StateIdle, nil)

	logger.Info(ctx, "session stopped",
		"session.id", current.record.SessionID,
		"wallet.id", current.record.WalletID,
		"wallet.height", lastHeight,
	)
}

// walletPath resolves a wallet id inside the configured wallet directory.
func (s *service) walletPath(walletID string) (string, error) {
	if s.walletDir == "" {
		return "", ErrWalletDirNotConfigured
	}
	if walletID == "" || !validator.IsWalletID(walletID) {
		return "", fmt.Errorf("%w: wallet id %q", ErrInvalidRequest, walletID)
	}

	return filepath.Join(s.walletDir, walletID), nil
}

// resumeHeight returns the height walletID's last session stopped at, or 0
// to let the engine pick its own starting point.
func (s *service) resumeHeight(ctx context.Context, walletID string) uint64 {
	if s.heights == nil {
		return 0
	}

	height, err := s.heights.LastHeight(ctx, walletID)
	if errors.Is(err, ErrNoRecord) {
		return 0
	}
	if err != nil {
		logger.Warn(ctx, "failed to read last wallet height", "wallet.id", walletID, "error", err)
		return 0
	}
	return height
}

// discard closes a handle that never became an active session.
func (s *service) discard(ctx context.Context, h *wallet.Handle) {
	if err := h.Close(ctx); err != nil {
		logger.Error(ctx, "failed to discard wallet", "wallet.id", h.ID(), "error", err)
	}
}

// reportError forwards a failed request to the Observer, or only logs it
// when none is bound.
func (s *service) reportError(ctx context.Context, walletID string, err error) {
	logger.Error(ctx, "session request failed", "wallet.id", walletID, "error", err)
	s.observers.failed(walletID, err)
}

// newSessionID returns a time-ordered session identifier.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
