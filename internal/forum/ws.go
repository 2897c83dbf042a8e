package forum

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"watchhive/internal/common"
	"watchhive/internal/config"
)

// wsChannel adapts a gorilla websocket connection to the registry's Channel
// interface. Writes are serialized: gorilla allows only one concurrent writer.
type wsChannel struct {
	conn         *websocket.Conn
	writeMu      sync.Mutex
	writeTimeout time.Duration
}

func newWSChannel(conn *websocket.Conn, writeTimeout time.Duration) *wsChannel {
	return &wsChannel{conn: conn, writeTimeout: writeTimeout}
}

func (c *wsChannel) Send(message string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.writeTimeout > 0 {
		c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return c.conn.WriteMessage(websocket.TextMessage, []byte(message))
}

func (c *wsChannel) Close() error {
	return c.conn.Close()
}

// WSHandler upgrades push-channel requests and wires the resulting
// connections into the registry.
type WSHandler struct {
	registry *Registry
	upgrader websocket.Upgrader
	timeout  time.Duration
}

func NewWSHandler(registry *Registry, cfg *config.Config) *WSHandler {
	return &WSHandler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.Forum.ReadBufferSize,
			WriteBufferSize: cfg.Forum.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		timeout: time.Duration(cfg.Forum.WriteTimeout) * time.Second,
	}
}

func (h *WSHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/ws/forum_groups/{id:[0-9]+}", h.Subscribe).Methods("GET")
}

// Subscribe accepts a persistent push channel for one forum group. The client
// sends nothing meaningful over it; inbound frames are drained purely to
// notice when the remote end goes away.
//
// Browsers cannot set an Authorization header on a websocket handshake, so
// the token rides on a `token` query parameter; a Bearer header is accepted
// too for non-browser clients.
func (h *WSHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if _, err := common.ValidToken(subscribeToken(r)); err != nil {
		common.WriteError(w, http.StatusUnauthorized, "invalid or missing token")
		return
	}

	groupID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	ch := newWSChannel(conn, h.timeout)
	h.registry.Connect(groupID, ch)
	defer func() {
		h.registry.Disconnect(groupID, ch)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func subscribeToken(r *http.Request) string {
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
