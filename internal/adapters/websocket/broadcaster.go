package websocket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/salespulse/sales_pulse_app/internal/core/domain"
	portssvc "github.com/salespulse/sales_pulse_app/internal/core/ports/services"
	"github.com/salespulse/sales_pulse_app/internal/dto"
)

// Event names pushed to dashboard clients.
const (
	EventNewTransaction  = "newTransaction"
	EventAnalyticsUpdate = "analyticsUpdate"
)

// envelope is the wire format of every pushed message.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Broadcaster fans events out to every connected websocket client. Delivery
// is at-most-once: a client whose write fails is dropped, never retried.
type Broadcaster struct {
	clients  map[*websocket.Conn]struct{}
	mu       sync.Mutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewBroadcaster creates a Broadcaster with no connected clients. The
// upgrader accepts any origin; cross-origin policy for the dashboard is
// enforced at the HTTP layer.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		clients:  make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		logger:   logger,
	}
}

// BroadcastNewTransaction pushes a newly created transaction to all subscribers.
func (b *Broadcaster) BroadcastNewTransaction(txn domain.Transaction) {
	b.broadcast(EventNewTransaction, dto.ToTransactionResponse(&txn))
}

// BroadcastAnalyticsUpdate pushes refreshed analytics to all subscribers.
func (b *Broadcaster) BroadcastAnalyticsUpdate(analytics domain.Analytics) {
	b.broadcast(EventAnalyticsUpdate, dto.ToAnalyticsResponse(&analytics))
}

func (b *Broadcaster) broadcast(event string, payload any) {
	msg, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		b.logger.Error("Failed to marshal broadcast payload",
			slog.String("event", event), slog.String("error", err.Error()))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			b.logger.Warn("Websocket write failed, dropping client",
				slog.String("event", event), slog.String("error", err.Error()))
			conn.Close()
			delete(b.clients, conn)
		}
	}
}

// Handler returns an http.HandlerFunc that upgrades the request and registers
// the connection for broadcasts. A per-connection read loop detects
// disconnects; inbound messages are otherwise ignored.
func (b *Broadcaster) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := b.upgrader.Upgrade(w, r, nil)
		if err != nil {
			b.logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		b.mu.Lock()
		b.clients[conn] = struct{}{}
		clientCount := len(b.clients)
		b.mu.Unlock()
		b.logger.Info("Websocket client connected", slog.Int("clients", clientCount))

		go func() {
			defer func() {
				b.mu.Lock()
				delete(b.clients, conn)
				b.mu.Unlock()
				conn.Close()
				b.logger.Info("Websocket client disconnected")
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}

// Ensure the implementation satisfies the port at compile time
var _ portssvc.TransactionBroadcaster = (*Broadcaster)(nil)
