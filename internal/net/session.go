package net

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"StudyInk/internal/state"
)

// A shared session relays ink between peers viewing the same document.
// The host accepts websocket connections and re-broadcasts everything it
// receives; clients dial the host. Both sides apply remote messages
// through the normal DocumentDrawingState mutation path, so local undo
// stays coherent, and stroke-ID dedup makes relay echoes harmless.

// LinkScheme prefixes the share links shown in the UI.
const LinkScheme = "studyink://"

// Message is the wire format for session traffic.
type Message struct {
	Type   string       `json:"type"` // "stroke" or "clear"
	Page   int          `json:"page"`
	Stroke state.Stroke `json:"stroke,omitempty"`
}

const (
	msgStroke = "stroke"
	msgClear  = "clear"
)

// apply lands a remote message in the local drawing state. Reports whether
// anything changed.
func apply(doc *state.DocumentDrawingState, msg Message) bool {
	switch msg.Type {
	case msgStroke:
		return doc.CommitStroke(msg.Page, msg.Stroke)
	case msgClear:
		return doc.ClearPage(msg.Page)
	default:
		log.Printf("[SESSION] ignoring unknown message type %q", msg.Type)
		return false
	}
}

// Host accepts peers and relays their messages to everyone else.
type Host struct {
	doc       *state.DocumentDrawingState
	onApplied func(page int)

	server   *http.Server
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// StartHost listens for session peers on the given port. onApplied fires
// after a remote message changes the drawing state, with the affected page.
func StartHost(port int, doc *state.DocumentDrawingState, onApplied func(page int)) (*Host, error) {
	h := &Host{
		doc:       doc,
		onApplied: onApplied,
		conns:     make(map[*websocket.Conn]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWS)
	h.server = &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

	go func() {
		log.Printf("[SESSION] host listening on port %d", port)
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[SESSION] host server stopped: %v", err)
		}
	}()
	return h, nil
}

func (h *Host) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SESSION] upgrade failed: %v", err)
		return
	}
	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()
	log.Printf("[SESSION] peer connected: %s", conn.RemoteAddr())

	go h.readLoop(conn)
}

func (h *Host) readLoop(conn *websocket.Conn) {
	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
		log.Printf("[SESSION] peer disconnected: %s", conn.RemoteAddr())
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		changed := apply(h.doc, msg)
		h.broadcast(msg, conn)
		if changed && h.onApplied != nil {
			h.onApplied(msg.Page)
		}
	}
}

// broadcast sends msg to every peer except the one it came from.
// Pass nil to reach everyone.
func (h *Host) broadcast(msg Message, exclude *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if conn == exclude {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("[SESSION] send to %s failed: %v", conn.RemoteAddr(), err)
		}
	}
}

// SendStroke relays a locally committed stroke to all peers.
func (h *Host) SendStroke(page int, s state.Stroke) {
	h.broadcast(Message{Type: msgStroke, Page: page, Stroke: s}, nil)
}

// SendClear relays a local page clear to all peers.
func (h *Host) SendClear(page int) {
	h.broadcast(Message{Type: msgClear, Page: page}, nil)
}

// Close disconnects all peers and stops listening.
func (h *Host) Close() {
	h.mu.Lock()
	for conn := range h.conns {
		conn.Close()
	}
	h.conns = make(map[*websocket.Conn]bool)
	h.mu.Unlock()
	h.server.Close()
}

// ShareLink builds the link peers use to join a hosted session.
func ShareLink(port int) string {
	ip, err := GetOutgoingIP()
	if err != nil {
		ip = "127.0.0.1"
	}
	return fmt.Sprintf("%s%s:%d", LinkScheme, ip, port)
}

// Client is the joining side of a shared session.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Join dials a studyink:// share link and starts applying the host's
// messages to the local drawing state.
func Join(link string, doc *state.DocumentDrawingState, onApplied func(page int)) (*Client, error) {
	addr := strings.TrimPrefix(link, LinkScheme)
	addr = strings.TrimSuffix(addr, "/")
	url := fmt.Sprintf("ws://%s/ws", addr)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("join session %q: %w", link, err)
	}
	log.Printf("[SESSION] joined host at %s", addr)

	c := &Client{conn: conn}
	go func() {
		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				log.Printf("[SESSION] disconnected from host: %v", err)
				return
			}
			if apply(doc, msg) && onApplied != nil {
				onApplied(msg.Page)
			}
		}
	}()
	return c, nil
}

func (c *Client) send(msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(msg); err != nil {
		log.Printf("[SESSION] send failed: %v", err)
	}
}

// SendStroke forwards a locally committed stroke to the host.
func (c *Client) SendStroke(page int, s state.Stroke) {
	c.send(Message{Type: msgStroke, Page: page, Stroke: s})
}

// SendClear forwards a local page clear to the host.
func (c *Client) SendClear(page int) {
	c.send(Message{Type: msgClear, Page: page})
}

// Close drops the connection to the host.
func (c *Client) Close() {
	c.conn.Close()
}
