package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/walletsync/internal/wallet"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// fakeNative is an in-memory wallet.NativeWallet driven by the test.
type fakeNative struct {
	mu sync.Mutex

	filename   string
	status     wallet.Status
	initErr    error
	height     uint64
	refreshing bool

	listener   wallet.EventListener
	pauseCalls int
	startCalls int
	initCalls  int
	initHeight uint64
}

func (n *fakeNative) Filename() string { return n.filename }

func (n *fakeNative) Status() wallet.Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.status
}

func (n *fakeNative) Init(_ context.Context, _ string, restoreHeight uint64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.initCalls++
	n.initHeight = restoreHeight
	return n.initErr
}

func (n *fakeNative) StartRefresh() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.startCalls++
	n.refreshing = true
}

func (n *fakeNative) PauseRefresh() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pauseCalls++
	n.refreshing = false
}

func (n *fakeNative) SetListener(l wallet.EventListener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listener = l
}

// currentListener returns the installed listener, or nil.
func (n *fakeNative) currentListener() wallet.EventListener {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.listener
}

func (n *fakeNative) Balance() uint64         { return 0 }
func (n *fakeNative) UnlockedBalance() uint64 { return 0 }

func (n *fakeNative) BlockchainHeight() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.height
}

func (n *fakeNative) IsSynchronized() bool { return false }

func (n *fakeNative) ConnectionStatus() wallet.ConnectionStatus {
	return wallet.ConnectionConnected
}

// fakeEngine is a wallet.Engine over fakeNative sessions.
type fakeEngine struct {
	mu sync.Mutex

	existing map[string]bool
	status   wallet.Status
	initErr  error
	closeErr error
	height   uint64

	opens   int
	closes  int
	natives []*fakeNative
}

func newFakeEngine(existing ...string) *fakeEngine {
	e := &fakeEngine{existing: make(map[string]bool)}
	for _, path := range existing {
		e.existing[path] = true
	}
	return e
}

func (e *fakeEngine) OpenWallet(_ context.Context, path, _ string, _ wallet.Network) (wallet.NativeWallet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opens++
	n := &fakeNative{filename: path, status: e.status, initErr: e.initErr, height: e.height}
	e.natives = append(e.natives, n)
	return n, nil
}

func (e *fakeEngine) CreateWallet(context.Context, string, string, string, wallet.Network) (wallet.NativeWallet, error) {
	return nil, errors.New("not supported")
}

func (e *fakeEngine) RecoverWallet(context.Context, string, string, wallet.Network, uint64) (wallet.NativeWallet, error) {
	return nil, errors.New("not supported")
}

func (e *fakeEngine) CloseWallet(context.Context, wallet.NativeWallet) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closes++
	return e.closeErr
}

func (e *fakeEngine) WalletExists(path string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.existing[path]
}

func (e *fakeEngine) setCloseErr(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeErr = err
}

// counts returns the number of open and close calls.
func (e *fakeEngine) counts() (opens, closes int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opens, e.closes
}

// lastNative returns the most recently opened native session.
func (e *fakeEngine) lastNative(t *testing.T) *fakeNative {
	t.Helper()

	e.mu.Lock()
	defer e.mu.Unlock()
	require.NotEmpty(t, e.natives)
	return e.natives[len(e.natives)-1]
}

// refreshCall is one OnRefreshed notification.
type refreshCall struct {
	walletID string
	full     bool
	at       time.Time
}

// recordingObserver is a thread-safe Observer recording every callback.
type recordingObserver struct {
	mu    sync.Mutex
	clock *fakeClock

	refreshes []refreshCall
	texts     []string
	progress  []int
	errs      []error
}

func (o *recordingObserver) OnRefreshed(h *wallet.Handle, full bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	call := refreshCall{walletID: h.ID(), full: full}
	if o.clock != nil {
		call.at = o.clock.Now()
	}
	o.refreshes = append(o.refreshes, call)
}

func (o *recordingObserver) OnProgressText(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.texts = append(o.texts, text)
}

func (o *recordingObserver) OnProgress(percent int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress = append(o.progress, percent)
}

func (o *recordingObserver) OnError(_ string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errs = append(o.errs, err)
}

func (o *recordingObserver) refreshCalls() []refreshCall {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]refreshCall(nil), o.refreshes...)
}

func (o *recordingObserver) progressCalls() []int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]int(nil), o.progress...)
}

func (o *recordingObserver) textCalls() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.texts...)
}

func (o *recordingObserver) errorCalls() []error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]error(nil), o.errs...)
}

// blockingObserver holds its first OnProgress call until release is closed.
type blockingObserver struct {
	recordingObserver

	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newBlockingObserver() *blockingObserver {
	return &blockingObserver{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (o *blockingObserver) OnProgress(percent int) {
	o.once.Do(func() { close(o.entered) })
	<-o.release
	o.recordingObserver.OnProgress(percent)
}

// fakeHeights is a JournalReader over a fixed set of last heights.
type fakeHeights struct {
	heights map[string]uint64
	err     error
}

func (f fakeHeights) ActiveSession(context.Context) (Record, error) {
	return Record{}, ErrNoRecord
}

func (f fakeHeights) LastHeight(_ context.Context, walletID string) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	height, ok := f.heights[walletID]
	if !ok {
		return 0, ErrNoRecord
	}
	return height, nil
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testWalletDir is the wallet directory used by session tests.
const testWalletDir = "/wallets"

// newTestService builds a session service over engine with the daemon
// configured and telemetry disabled.
func newTestService(t *testing.T, engine *fakeEngine, opts ...Option) (*service, wallet.Service) {
	t.Helper()

	wallets := wallet.New(engine)
	wallets.SetDaemon("node:38081", wallet.Stagenet)

	base := []Option{
		WithWalletDir(testWalletDir),
		WithTracer(tracenoop.NewTracerProvider().Tracer("test")),
		WithMeterProvider(metricnoop.NewMeterProvider()),
	}
	return New(wallets, append(base, opts...)...), wallets
}
