package routes

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const timestampLayout = "2006-01-02 15:04:05"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// WaiterHandler logs waiter-call events and pushes them to any staff
// dashboard connected over the websocket. No state is persisted.
type WaiterHandler struct {
	log       *slog.Logger
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan []byte
}

func NewWaiterHandler(log *slog.Logger) *WaiterHandler {
	h := &WaiterHandler{
		log:       log,
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan []byte, 100), // Buffered to prevent blocking
	}
	go h.run()
	return h
}

func (h *WaiterHandler) run() {
	for message := range h.broadcast {
		h.mu.Lock()
		for client := range h.clients {
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				h.log.Error("websocket write failed", "error", err)
				client.Close()
				delete(h.clients, client)
			}
		}
		h.mu.Unlock()
	}
}

// Call registers a waiter-call event: logged, broadcast to staff, and
// acknowledged to the diner.
func (h *WaiterHandler) Call(c *fiber.Ctx) error {
	timestamp := time.Now().Format(timestampLayout)
	eventID := uuid.New().String()

	h.log.Info("waiter called", "event", eventID, "timestamp", timestamp)

	payload, _ := json.Marshal(fiber.Map{
		"event":     "waiter_call",
		"id":        eventID,
		"timestamp": timestamp,
	})
	select {
	case h.broadcast <- payload:
	default:
		// Staff channel full; the log already carries the event.
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Waiter notified successfully",
		"timestamp": timestamp,
	})
}

// Status is the liveness payload for the waiter service.
func (h *WaiterHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service":   "waiter-notification",
		"status":    "active",
		"timestamp": time.Now().Format(timestampLayout),
	})
}

// Socket upgrades a staff dashboard connection and keeps it subscribed to
// waiter-call events until it disconnects.
func (h *WaiterHandler) Socket() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.log.Error("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()
		h.log.Info("staff client connected", "remote", conn.RemoteAddr().String())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					h.log.Error("websocket read failed", "error", err)
				}
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				h.log.Info("staff client disconnected", "remote", conn.RemoteAddr().String())
				break
			}
		}
	})
}
