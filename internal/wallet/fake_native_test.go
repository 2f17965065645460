package wallet

import (
	"context"
	"sync"
)

// fakeNative is an in-memory NativeWallet recording the calls it receives.
type fakeNative struct {
	mu sync.Mutex

	filename string
	status   Status
	initErr  error

	initCalls     int
	initAddress   string
	initHeight    uint64
	startCalls    int
	pauseCalls    int
	listener      EventListener
	listenerCalls int

	balance  uint64
	unlocked uint64
	height   uint64
}

func newFakeNative(filename string) *fakeNative {
	return &fakeNative{filename: filename}
}

func (f *fakeNative) Filename() string { return f.filename }

func (f *fakeNative) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeNative) Init(_ context.Context, daemonAddress string, restoreHeight uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.initCalls++
	f.initAddress = daemonAddress
	f.initHeight = restoreHeight
	return f.initErr
}

func (f *fakeNative) StartRefresh() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startCalls++
}

func (f *fakeNative) PauseRefresh() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pauseCalls++
}

func (f *fakeNative) SetListener(l EventListener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listener = l
	f.listenerCalls++
}

func (f *fakeNative) Balance() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance
}

func (f *fakeNative) UnlockedBalance() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unlocked
}

func (f *fakeNative) BlockchainHeight() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.height
}

func (f *fakeNative) IsSynchronized() bool { return true }

func (f *fakeNative) ConnectionStatus() ConnectionStatus { return ConnectionConnected }

// nopListener satisfies EventListener without doing anything.
type nopListener struct{}

func (nopListener) MoneySpent(string, uint64)               {}
func (nopListener) MoneyReceived(string, uint64)            {}
func (nopListener) UnconfirmedMoneyReceived(string, uint64) {}
func (nopListener) NewBlock(uint64)                         {}
func (nopListener) Updated()                                {}
func (nopListener) Refreshed()                              {}
