package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/walletsync/internal/session"

	"github.com/redis/go-redis/v9"
)

// sessionKeyPrefix namespaces every key written by the journal.
const sessionKeyPrefix = "walletsync"

// Hash fields of the active session record.
const (
	fieldSessionID = "session_id"
	fieldWalletID  = "wallet_id"
	fieldStartedAt = "started_at"
)

// activeSessionKey is the hash holding the session currently running.
//
// Format: "walletsync:session:active"
func activeSessionKey() string {
	return fmt.Sprintf("%s:session:active", sessionKeyPrefix)
}

// lastHeightKey holds the height a wallet reached when its last session stopped.
//
// Format: "walletsync:wallet:<walletID>:height"
func lastHeightKey(walletID string) string {
	return fmt.Sprintf("%s:wallet:%s:height", sessionKeyPrefix, walletID)
}

// clearActiveScript deletes the active session hash only if it still belongs
// to the given session, so a stale stop never clears a newer session.
var clearActiveScript = redis.NewScript(`
if redis.call("HGET", KEYS[1], ARGV[1]) == ARGV[2] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// encodeRecord converts rec into the hash fields stored in Redis.
func encodeRecord(rec session.Record) map[string]any {
	return map[string]any{
		fieldSessionID: rec.SessionID,
		fieldWalletID:  rec.WalletID,
		fieldStartedAt: rec.StartedAt.UTC().Format(time.RFC3339Nano),
	}
}

// decodeRecord parses the hash fields written by encodeRecord.
func decodeRecord(fields map[string]string) (session.Record, error) {
	if len(fields) == 0 {
		return session.Record{}, session.ErrNoRecord
	}

	startedAt, err := time.Parse(time.RFC3339Nano, fields[fieldStartedAt])
	if err != nil {
		return session.Record{}, fmt.Errorf("invalid %s: %w", fieldStartedAt, err)
	}

	return session.Record{
		SessionID: fields[fieldSessionID],
		WalletID:  fields[fieldWalletID],
		StartedAt: startedAt,
	}, nil
}

// SessionStarted replaces the active session record with rec.
func (c *client) SessionStarted(ctx context.Context, rec session.Record) error {
	key := activeSessionKey()

	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, encodeRecord(rec))
		return nil
	})
	return err
}

// SessionStopped stores lastHeight for the wallet and clears the active
// session record if it still describes rec.
func (c *client) SessionStopped(ctx context.Context, rec session.Record, lastHeight uint64) error {
	if err := c.conn.Set(ctx, lastHeightKey(rec.WalletID), lastHeight, 0).Err(); err != nil {
		return err
	}

	keys := []string{activeSessionKey()}
	return clearActiveScript.Run(ctx, c.conn, keys, fieldSessionID, rec.SessionID).Err()
}

// ActiveSession returns the recorded active session, or session.ErrNoRecord.
func (c *client) ActiveSession(ctx context.Context) (session.Record, error) {
	fields, err := c.conn.HGetAll(ctx, activeSessionKey()).Result()
	if err != nil {
		return session.Record{}, err
	}

	return decodeRecord(fields)
}

// LastHeight returns the height stored by the wallet's last stopped session,
// or session.ErrNoRecord.
func (c *client) LastHeight(ctx context.Context, walletID string) (uint64, error) {
	val, err := c.conn.Get(ctx, lastHeightKey(walletID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = session.ErrNoRecord
		}

		return 0, err
	}

	return strconv.ParseUint(val, 10, 64)
}

// Compile-time assertions to ensure client implements the journal interfaces.
var (
	_ session.Journal       = new(client)
	_ session.JournalReader = new(client)
)
