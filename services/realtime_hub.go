package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/JashanBansal182304/MessMate/store"
)

type WSClient struct {
	Role string
	Conn *websocket.Conn
}

// RealtimeHub fans events out to connected dashboard clients. It carries
// the cross-tab synchronization of the original: a snapshot write in one
// tab triggers a reload in every other.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends payload to every connected client.
func (h *RealtimeHub) Broadcast(payload any) {
	h.broadcast("", payload)
}

// BroadcastRole sends payload only to clients of one role.
func (h *RealtimeHub) BroadcastRole(role string, payload any) {
	h.broadcast(role, payload)
}

func (h *RealtimeHub) broadcast(role string, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Warn("broadcast payload not serializable")
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if role != "" && c.Role != role {
			continue
		}
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// WatchStore relays snapshot change events to all clients as
// "snapshot.changed" messages, so a dashboard can reload the affected
// view when another session wrote the same key.
func (h *RealtimeHub) WatchStore(st store.Store, keys ...string) {
	for _, key := range keys {
		ch := st.Subscribe(key)
		go func() {
			for ev := range ch {
				h.Broadcast(map[string]any{
					"kind":        "snapshot.changed",
					"key":         ev.Key,
					"lastUpdated": ev.LastUpdated,
				})
			}
		}()
	}
}
