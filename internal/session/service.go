// Package session runs the lifecycle of the single open wallet session.
//
// Start and Stop requests are processed one at a time, in arrival order, by a
// dedicated worker goroutine. A started session installs an event listener on
// the wallet handle that throttles engine events before forwarding them to
// the bound Observer.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/x/chflow"
	"github.com/gabapcia/walletsync/internal/wallet"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrServiceNotStarted is returned when a request is submitted before
	// Start or after Close.
	ErrServiceNotStarted = errors.New("service not started")

	// ErrInvalidRequest is returned for malformed lifecycle requests.
	ErrInvalidRequest = errors.New("invalid session request")

	// ErrWalletDirNotConfigured is reported by Start requests when no wallet
	// directory was configured.
	ErrWalletDirNotConfigured = errors.New("wallet directory not configured")

	// ErrWalletNotFound is reported when no wallet exists for the requested id.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrWalletStatus is reported when the engine opened a wallet in a non-ok
	// status.
	ErrWalletStatus = errors.New("wallet opened with error status")

	// ErrNoActiveSession is returned by Wallet while no session is active.
	ErrNoActiveSession = errors.New("no active session")
)

// requestQueueBufferSize bounds the requests waiting for the worker. Submit
// blocks while the queue is full.
const requestQueueBufferSize = 32

// State is the session worker state.
type State int32

const (
	StateIdle State = iota
	StateLoading
	StateActive
	StateStopping
)

// String returns a human readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateStopping:
		return "stopping"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Service owns the session worker and the Observer binding.
type Service interface {
	// Start launches the worker goroutine.
	//
	// Returns ErrServiceAlreadyStarted if called more than once. Call Close
	// to stop the worker.
	Start(ctx context.Context) error

	// Close stops the worker once the request in progress completes and
	// tears down the active session, if any. It is safe to call Close even if
	// the service was never started.
	Close()

	// Submit validates req and enqueues it. It blocks while the queue is full
	// and returns ctx.Err() if ctx ends first.
	Submit(ctx context.Context, req Request) error

	// RequestStart enqueues a Start request for walletID.
	RequestStart(ctx context.Context, walletID, password string) error

	// RequestStop enqueues a Stop request.
	RequestStop(ctx context.Context) error

	// BindObserver replaces the bound Observer.
	BindObserver(o Observer)

	// UnbindObserver clears the Observer binding.
	UnbindObserver()

	// State returns the current worker state.
	State() State

	// Wallet returns the handle of the active session or ErrNoActiveSession.
	Wallet() (*wallet.Handle, error)
}

// closeFunc stops the worker and releases what it holds.
type closeFunc func()

// active is the bookkeeping of a running session, owned by the worker.
type active struct {
	record   Record
	handle   *wallet.Handle
	listener *eventListener
}

// service is the default Service implementation.
type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool
	closeFunc closeFunc
	queue     chan Request

	wallets   wallet.Service
	walletDir string
	journal   Journal
	heights   JournalReader
	now       func() time.Time
	tracer    trace.Tracer
	metrics   *metrics

	observers observerSlot

	// sessionMu guards state and current. Both are written by the worker only.
	sessionMu sync.RWMutex
	state     State
	current   *active
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// config holds optional settings for New.
type config struct {
	walletDir     string
	journal       Journal
	heights       JournalReader
	clock         func() time.Time
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
}

// Option configures the session Service.
type Option func(*config)

// WithWalletDir sets the directory wallet ids are resolved against.
func WithWalletDir(dir string) Option {
	return func(c *config) {
		c.walletDir = dir
	}
}

// WithJournal records session lifecycle facts in j.
func WithJournal(j Journal) Option {
	return func(c *config) {
		c.journal = j
	}
}

// WithResumeHeights makes every session resume scanning from the height
// r recorded when the wallet's previous session stopped.
func WithResumeHeights(r JournalReader) Option {
	return func(c *config) {
		c.heights = r
	}
}

// WithClock replaces time.Now for session timestamps and the new block
// throttle.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.clock = now
	}
}

// WithTracer replaces the tracer taken from the global TracerProvider.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		c.tracer = t
	}
}

// WithMeterProvider replaces the global MeterProvider for listener metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// New creates a session Service that opens wallets through wallets.
func New(wallets wallet.Service, opts ...Option) *service {
	cfg := config{
		journal: nopJournal{},
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.tracer == nil {
		cfg.tracer = defaultTracer()
	}
	if cfg.meterProvider == nil {
		cfg.meterProvider = otel.GetMeterProvider()
	}

	return &service{
		wallets:   wallets,
		walletDir: cfg.walletDir,
		journal:   cfg.journal,
		heights:   cfg.heights,
		now:       cfg.clock,
		tracer:    cfg.tracer,
		metrics:   newMetrics(cfg.meterProvider),
		state:     StateIdle,
	}
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var (
		queue = make(chan Request, requestQueueBufferSize)
		done  = make(chan struct{})
	)

	s.startProcessRequests(ctx, queue, done)

	s.closeFunc = func() {
		cancel()
		<-done

		stopCtx := context.WithoutCancel(ctx)
		if dropped := chflow.Drain(queue); dropped > 0 {
			logger.Warn(stopCtx, "dropping queued session requests", "session.dropped", dropped)
		}
		s.handleStop(stopCtx)
	}
	s.queue = queue
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.queue = nil
	s.isStarted = false
}

func (s *service) Submit(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return errors.Join(ErrInvalidRequest, err)
	}

	s.mu.Lock()
	queue := s.queue
	s.mu.Unlock()

	if queue == nil {
		return ErrServiceNotStarted
	}

	if !chflow.Send(ctx, queue, req) {
		return ctx.Err()
	}
	return nil
}

func (s *service) RequestStart(ctx context.Context, walletID, password string) error {
	return s.Submit(ctx, StartRequest(walletID, password))
}

func (s *service) RequestStop(ctx context.Context) error {
	return s.Submit(ctx, StopRequest())
}

func (s *service) BindObserver(o Observer) {
	s.observers.bind(o)
}

func (s *service) UnbindObserver() {
	s.observers.unbind()
}

func (s *service) State() State {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()

	return s.state
}

func (s *service) Wallet() (*wallet.Handle, error) {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()

	if s.state != StateActive || s.current == nil {
		return nil, ErrNoActiveSession
	}
	return s.current.handle, nil
}

// setState records the worker state, and the active session when entering
// StateActive or StateIdle.
func (s *service) setState(state State, current *active) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	s.state = state
	if state == StateActive || state == StateIdle {
		s.current = current
	}
}

// session returns the active session bookkeeping, if any.
func (s *service) session() *active {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()

	return s.current
}
