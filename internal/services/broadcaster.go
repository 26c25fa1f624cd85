package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ykarpenko/ledger-sync/internal/logger"
	"github.com/ykarpenko/ledger-sync/internal/models"
	"github.com/ykarpenko/ledger-sync/internal/ws"
)

// SyncChannel is the Redis pub/sub channel carrying cross-instance sync
// signals.
const SyncChannel = "ledger:sync"

// SnapshotPusher pushes a serialized snapshot to all connected viewers.
type SnapshotPusher interface {
	PushToAll(payload []byte)
}

// syncSignal tells other instances sharing the store that something
// committed. It carries no ledger data; every receiver re-reads the store.
type syncSignal struct {
	InstanceID string `json:"instance_id"`
}

// SyncBroadcaster re-reads the ledger after every committed mutation and
// pushes the full ordered snapshot to every registered viewer. Each push is
// a full-state replace; no diffs and no cached snapshots.
type SyncBroadcaster struct {
	readRepo   TransactionReader
	pusher     SnapshotPusher
	redis      *redis.Client
	instanceID string
}

// NewSyncBroadcaster creates a broadcaster over the given reader and pusher.
// rdb may be nil, which disables the cross-instance relay.
func NewSyncBroadcaster(readRepo TransactionReader, pusher SnapshotPusher, rdb *redis.Client) *SyncBroadcaster {
	return &SyncBroadcaster{
		readRepo:   readRepo,
		pusher:     pusher,
		redis:      rdb,
		instanceID: uuid.NewString(),
	}
}

// NotifyMutated pushes a fresh snapshot to all local viewers and signals
// other instances. Callers invoke it only after the store has acknowledged
// the write.
func (b *SyncBroadcaster) NotifyMutated(ctx context.Context) {
	b.pushSnapshot(ctx)
	b.publishSignal(ctx)
}

// pushSnapshot reads the ledger fresh and fans it out to local viewers.
// A failed read degrades to an empty snapshot at this read-only boundary.
func (b *SyncBroadcaster) pushSnapshot(ctx context.Context) {
	txns, err := b.readRepo.List(ctx)
	if err != nil {
		logger.Log.Warnw("snapshot read failed, broadcasting empty ledger", "error", err)
		txns = nil
	}
	if txns == nil {
		txns = []models.TransactionDB{}
	}

	payload, err := json.Marshal(ws.Envelope{Event: ws.EventTransactionsData, Data: txns})
	if err != nil {
		logger.Log.Errorw("failed to marshal snapshot", "error", err)
		return
	}

	b.pusher.PushToAll(payload)
	logger.Log.Infow("snapshot broadcast", "transactions", len(txns))
}

// publishSignal notifies other instances through Redis. Fire-and-forget:
// a publish failure never fails the mutation that triggered it.
func (b *SyncBroadcaster) publishSignal(ctx context.Context) {
	if b.redis == nil {
		return
	}

	data, err := json.Marshal(syncSignal{InstanceID: b.instanceID})
	if err != nil {
		logger.Log.Errorw("failed to marshal sync signal", "error", err)
		return
	}

	if err := b.redis.Publish(ctx, SyncChannel, data).Err(); err != nil {
		logger.Log.Errorw("failed to publish sync signal", "error", err)
	}
}

// Run relays sync signals from other instances sharing the same store,
// re-reading and re-pushing on each one. Signals published by this instance
// are filtered out. It blocks until ctx is done and is a no-op when Redis is
// not configured.
func (b *SyncBroadcaster) Run(ctx context.Context) {
	if b.redis == nil {
		return
	}

	sub := b.redis.Subscribe(ctx, SyncChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var sig syncSignal
			if err := json.Unmarshal([]byte(msg.Payload), &sig); err != nil {
				logger.Log.Warnw("ignoring malformed sync signal", "error", err)
				continue
			}
			if sig.InstanceID == b.instanceID {
				continue
			}
			b.pushSnapshot(ctx)
		}
	}
}
