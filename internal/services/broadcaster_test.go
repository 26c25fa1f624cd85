package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ykarpenko/ledger-sync/internal/models"
	"github.com/ykarpenko/ledger-sync/internal/ws"
)

// decodeSnapshot pulls the transaction list out of a pushed payload.
func decodeSnapshot(t *testing.T, payload []byte) (string, []models.TransactionDB) {
	t.Helper()
	var env struct {
		Event string                 `json:"event"`
		Data  []models.TransactionDB `json:"data"`
	}
	err := json.Unmarshal(payload, &env)
	assert.NoError(t, err)
	return env.Event, env.Data
}

func TestSyncBroadcaster_NotifyMutated(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockTransactionReader(ctrl)
	pusher := NewMockSnapshotPusher(ctrl)

	txns := []models.TransactionDB{
		{TransactionID: uuid.New(), Amount: 100, Description: "rent", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{TransactionID: uuid.New(), Amount: -20, Description: "coffee", Date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
	}

	var pushed []byte
	reader.EXPECT().List(ctx).Return(txns, nil)
	pusher.EXPECT().PushToAll(gomock.Any()).Do(func(payload []byte) {
		pushed = payload
	})

	b := NewSyncBroadcaster(reader, pusher, nil)
	b.NotifyMutated(ctx)

	event, data := decodeSnapshot(t, pushed)
	assert.Equal(t, ws.EventTransactionsData, event)
	assert.Len(t, data, 2)
	assert.Equal(t, txns[0].TransactionID, data[0].TransactionID)
	assert.Equal(t, 100.0, data[0].Amount)
}

func TestSyncBroadcaster_NotifyMutated_DegradedRead(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockTransactionReader(ctrl)
	pusher := NewMockSnapshotPusher(ctrl)

	var pushed []byte
	reader.EXPECT().List(ctx).Return(nil, errors.New("store unavailable"))
	pusher.EXPECT().PushToAll(gomock.Any()).Do(func(payload []byte) {
		pushed = payload
	})

	b := NewSyncBroadcaster(reader, pusher, nil)
	b.NotifyMutated(ctx)

	event, data := decodeSnapshot(t, pushed)
	assert.Equal(t, ws.EventTransactionsData, event)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestSyncBroadcaster_SequentialMutationsProduceSequentialSnapshots(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockTransactionReader(ctrl)
	pusher := NewMockSnapshotPusher(ctrl)

	first := []models.TransactionDB{{TransactionID: uuid.New(), Description: "rent"}}
	second := append([]models.TransactionDB{{TransactionID: uuid.New(), Description: "groceries"}}, first...)

	var pushes [][]byte
	gomock.InOrder(
		reader.EXPECT().List(ctx).Return(first, nil),
		pusher.EXPECT().PushToAll(gomock.Any()).Do(func(payload []byte) { pushes = append(pushes, payload) }),
		reader.EXPECT().List(ctx).Return(second, nil),
		pusher.EXPECT().PushToAll(gomock.Any()).Do(func(payload []byte) { pushes = append(pushes, payload) }),
	)

	b := NewSyncBroadcaster(reader, pusher, nil)
	b.NotifyMutated(ctx)
	b.NotifyMutated(ctx)

	assert.Len(t, pushes, 2)
	_, data1 := decodeSnapshot(t, pushes[0])
	_, data2 := decodeSnapshot(t, pushes[1])
	assert.Len(t, data1, 1)
	assert.Len(t, data2, 2)
}

func TestSyncBroadcaster_RunWithoutRedisReturns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockTransactionReader(ctrl)
	pusher := NewMockSnapshotPusher(ctrl)

	b := NewSyncBroadcaster(reader, pusher, nil)

	done := make(chan struct{})
	go func() {
		b.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return immediately when Redis is not configured")
	}
}
