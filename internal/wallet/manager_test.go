package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/gabapcia/walletsync/internal/walletregistry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "alice", Identifier("/wallets/alice"))
	assert.Equal(t, "alice", Identifier("/wallets/./alice/"))
	assert.Equal(t, "alice", Identifier("alice"))
}

func TestService_Daemon(t *testing.T) {
	t.Run("should fail before SetDaemon", func(t *testing.T) {
		svc := New(NewEngineMock(t))

		_, err := svc.DaemonAddress()
		assert.ErrorIs(t, err, ErrDaemonNotConfigured)

		_, err = svc.Network()
		assert.ErrorIs(t, err, ErrDaemonNotConfigured)
	})

	t.Run("should return the configured daemon", func(t *testing.T) {
		svc := New(NewEngineMock(t))
		svc.SetDaemon("node:28081", Testnet)

		address, err := svc.DaemonAddress()
		require.NoError(t, err)
		assert.Equal(t, "node:28081", address)

		network, err := svc.Network()
		require.NoError(t, err)
		assert.Equal(t, Testnet, network)
	})
}

func TestService_OpenWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("should register the opened wallet", func(t *testing.T) {
		engine := NewEngineMock(t)
		svc := New(engine)
		svc.SetDaemon("node:18081", Mainnet)

		native := newFakeNative("/wallets/alice")
		engine.EXPECT().OpenWallet(mock.Anything, "/wallets/alice", "pw", Mainnet).Return(native, nil).Once()

		h, err := svc.OpenWallet(ctx, "/wallets/alice", "pw")
		require.NoError(t, err)
		assert.Equal(t, "alice", h.ID())
		assert.Equal(t, StateCreated, h.State())

		got, ok := svc.Lookup("alice")
		require.True(t, ok)
		assert.Same(t, h, got)
	})

	t.Run("should not reach the engine for an already managed wallet", func(t *testing.T) {
		engine := NewEngineMock(t)
		svc := New(engine)
		svc.SetDaemon("node:18081", Mainnet)

		engine.EXPECT().OpenWallet(mock.Anything, "/wallets/alice", "pw", Mainnet).Return(newFakeNative("/wallets/alice"), nil).Once()

		_, err := svc.OpenWallet(ctx, "/wallets/alice", "pw")
		require.NoError(t, err)

		_, err = svc.OpenWallet(ctx, "/other/alice", "pw")
		assert.ErrorIs(t, err, walletregistry.ErrAlreadyManaged)
		assert.ErrorIs(t, err, ErrProgramming)
	})

	t.Run("should wrap engine failures", func(t *testing.T) {
		engine := NewEngineMock(t)
		svc := New(engine)
		svc.SetDaemon("node:18081", Mainnet)

		cause := errors.New("bad password")
		engine.EXPECT().OpenWallet(mock.Anything, "/wallets/alice", "nope", Mainnet).Return(nil, cause).Once()

		h, err := svc.OpenWallet(ctx, "/wallets/alice", "nope")
		assert.Nil(t, h)

		var engineErr *EngineError
		require.ErrorAs(t, err, &engineErr)
		assert.Equal(t, "open", engineErr.Op)
		assert.ErrorIs(t, err, cause)

		_, ok := svc.Lookup("alice")
		assert.False(t, ok)
	})

	t.Run("should require a configured daemon", func(t *testing.T) {
		svc := New(NewEngineMock(t))

		_, err := svc.OpenWallet(ctx, "/wallets/alice", "pw")
		assert.ErrorIs(t, err, ErrDaemonNotConfigured)
	})

	t.Run("should release the session when registration loses a race", func(t *testing.T) {
		engine := NewEngineMock(t)
		registry := walletregistry.New[*Handle]()
		svc := New(engine, WithRegistry(registry))
		svc.SetDaemon("node:18081", Mainnet)

		native := newFakeNative("/wallets/alice")
		engine.EXPECT().
			OpenWallet(mock.Anything, "/wallets/alice", "pw", Mainnet).
			RunAndReturn(func(context.Context, string, string, Network) (NativeWallet, error) {
				require.NoError(t, registry.Manage("alice", &Handle{id: "alice"}))
				return native, nil
			}).
			Once()
		engine.EXPECT().CloseWallet(mock.Anything, native).Return(nil).Once()

		_, err := svc.OpenWallet(ctx, "/wallets/alice", "pw")
		assert.ErrorIs(t, err, walletregistry.ErrAlreadyManaged)
	})
}

func TestService_CreateAndRecover(t *testing.T) {
	ctx := context.Background()

	t.Run("should register a created wallet", func(t *testing.T) {
		engine := NewEngineMock(t)
		svc := New(engine)
		svc.SetDaemon("node:38081", Stagenet)

		engine.EXPECT().
			CreateWallet(mock.Anything, "/wallets/bob", "pw", "English", Stagenet).
			Return(newFakeNative("/wallets/bob"), nil).
			Once()

		h, err := svc.CreateWallet(ctx, "/wallets/bob", "pw", "English")
		require.NoError(t, err)
		assert.Equal(t, "bob", h.ID())
	})

	t.Run("should register a recovered wallet", func(t *testing.T) {
		engine := NewEngineMock(t)
		svc := New(engine)
		svc.SetDaemon("node:38081", Stagenet)

		engine.EXPECT().
			RecoverWallet(mock.Anything, "/wallets/carol", "seed words", Stagenet, uint64(1000)).
			Return(newFakeNative("/wallets/carol"), nil).
			Once()

		h, err := svc.RecoverWallet(ctx, "/wallets/carol", "seed words", 1000)
		require.NoError(t, err)
		assert.Equal(t, "carol", h.ID())
	})

	t.Run("should report the failing operation", func(t *testing.T) {
		engine := NewEngineMock(t)
		svc := New(engine)
		svc.SetDaemon("node:38081", Stagenet)

		engine.EXPECT().
			RecoverWallet(mock.Anything, "/wallets/carol", "bad seed", Stagenet, uint64(0)).
			Return(nil, errors.New("invalid mnemonic")).
			Once()

		_, err := svc.RecoverWallet(ctx, "/wallets/carol", "bad seed", 0)

		var engineErr *EngineError
		require.ErrorAs(t, err, &engineErr)
		assert.Equal(t, "recover", engineErr.Op)
	})
}

func TestService_Close(t *testing.T) {
	ctx := context.Background()

	t.Run("should unregister and release the wallet", func(t *testing.T) {
		native := newFakeNative("/wallets/alice")
		h, engine, svc := openHandle(t, native)
		engine.EXPECT().CloseWallet(mock.Anything, native).Return(nil).Once()

		require.NoError(t, svc.Close(ctx, h))

		_, ok := svc.Lookup("alice")
		assert.False(t, ok)
		assert.Equal(t, StateClosed, h.State())
	})

	t.Run("should keep the handle registered when the engine fails", func(t *testing.T) {
		native := newFakeNative("/wallets/alice")
		h, engine, svc := openHandle(t, native)

		cause := errors.New("store failed")
		engine.EXPECT().CloseWallet(mock.Anything, native).Return(cause).Once()

		err := svc.Close(ctx, h)
		assert.ErrorIs(t, err, ErrCloseFailed)
		assert.ErrorIs(t, err, ErrEngine)
		assert.ErrorIs(t, err, cause)

		got, ok := svc.Lookup("alice")
		require.True(t, ok)
		assert.Same(t, h, got)
		assert.NotEqual(t, StateClosed, h.State())

		engine.EXPECT().CloseWallet(mock.Anything, native).Return(nil).Once()
		require.NoError(t, svc.Close(ctx, h))
	})

	t.Run("should allow reopening after close", func(t *testing.T) {
		native := newFakeNative("/wallets/alice")
		h, engine, svc := openHandle(t, native)
		engine.EXPECT().CloseWallet(mock.Anything, native).Return(nil).Once()
		require.NoError(t, svc.Close(ctx, h))

		reopened := newFakeNative("/wallets/alice")
		engine.EXPECT().OpenWallet(mock.Anything, "/wallets/alice", "pw", Stagenet).Return(reopened, nil).Once()

		h2, err := svc.OpenWallet(ctx, "/wallets/alice", "pw")
		require.NoError(t, err)
		assert.NotSame(t, h, h2)
	})

	t.Run("should reject a second close", func(t *testing.T) {
		native := newFakeNative("/wallets/alice")
		h, engine, svc := openHandle(t, native)
		engine.EXPECT().CloseWallet(mock.Anything, native).Return(nil).Once()

		require.NoError(t, svc.Close(ctx, h))
		assert.ErrorIs(t, svc.Close(ctx, h), ErrUseAfterClose)
	})
}
