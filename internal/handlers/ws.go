package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/ykarpenko/ledger-sync/internal/logger"
	"github.com/ykarpenko/ledger-sync/internal/models"
	"github.com/ykarpenko/ledger-sync/internal/ws"
)

// SocketSnapshotReader defines the interface that the service must implement.
type SocketSnapshotReader interface {
	SnapshotOrEmpty(ctx context.Context) ([]models.TransactionDB, bool)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWSHandler returns the HTTP handler for the viewer push surface. It
// upgrades the connection, registers the viewer with the hub so it receives
// every post-mutation snapshot, and answers on-demand snapshot requests on
// that connection only. The viewer is deregistered when the connection drops.
func NewWSHandler(hub *ws.Hub, svc SocketSnapshotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Errorw("websocket upgrade failed", "error", err)
			return
		}

		client := ws.NewClient(conn)
		hub.Join(client)
		go client.WritePump()

		client.ReadLoop(func(payload []byte) {
			var env ws.Envelope
			if err := json.Unmarshal(payload, &env); err != nil {
				// Tolerate a bare event name without the envelope.
				env.Event = strings.Trim(strings.TrimSpace(string(payload)), `"`)
			}
			if env.Event != ws.EventGetTransactions {
				return
			}

			txns, degraded := svc.SnapshotOrEmpty(r.Context())
			if degraded {
				logger.Log.Warnw("serving degraded snapshot to viewer")
			}

			out, err := json.Marshal(ws.Envelope{Event: ws.EventTransactionsData, Data: txns})
			if err != nil {
				logger.Log.Errorw("failed to marshal snapshot", "error", err)
				return
			}
			client.Send(out)
		})

		hub.Leave(client)
	}
}
