package notifier

import (
	"sync"

	"peso-job-portal/pkg/logger"
)

// Hub tracks live websocket connections per account. It satisfies
// domain.ConnectionResolver; the dispatcher uses it for best-effort
// real-time pushes.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
	}
}

// Run owns the client map mutations. Call it once in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if h.clients[client.accountID] == nil {
				h.clients[client.accountID] = make(map[*Client]bool)
			}
			h.clients[client.accountID][client] = true
			h.mutex.Unlock()
			logger.Log.Debug("Websocket connected", "account_id", client.accountID)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if conns, ok := h.clients[client.accountID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
				}
				if len(conns) == 0 {
					delete(h.clients, client.accountID)
				}
			}
			h.mutex.Unlock()
			logger.Log.Debug("Websocket disconnected", "account_id", client.accountID)
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Resolve returns a send function covering every live connection of the
// account, or false when none are connected.
func (h *Hub) Resolve(accountID string) (func(payload []byte) error, bool) {
	h.mutex.RLock()
	conns := make([]*Client, 0, len(h.clients[accountID]))
	for c := range h.clients[accountID] {
		conns = append(conns, c)
	}
	h.mutex.RUnlock()

	if len(conns) == 0 {
		return nil, false
	}
	return func(payload []byte) error {
		for _, client := range conns {
			select {
			case client.send <- payload:
			default:
				// Slow consumer; drop the connection rather than block.
				h.Unregister(client)
			}
		}
		return nil
	}, true
}

// ClientCount reports live connections across all accounts.
func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	total := 0
	for _, conns := range h.clients {
		total += len(conns)
	}
	return total
}
