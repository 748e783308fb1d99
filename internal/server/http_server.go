package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/isleen/lilybot/internal/config"
	"github.com/isleen/lilybot/internal/sim"
)

type HttpServer struct {
	logger   *slog.Logger
	server   *http.Server
	manager  *sim.Manager
	wsServer *WebSocketServer
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn *websocket.Conn
	send chan []byte
}

type WebSocketServer struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

func NewWebSocketServer() *WebSocketServer {
	return &WebSocketServer{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (s *WebSocketServer) Run() {
	for {
		select {
		case client := <-s.register:
			s.clients[client] = true
		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}
		case message := <-s.broadcast:
			for client := range s.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(s.clients, client)
				}
			}
		}
	}
}

func (s *WebSocketServer) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade connection to WebSocket", "error", err)
		return
	}

	client := &Client{conn: conn, send: make(chan []byte, 256)}
	s.register <- client

	go s.writePump(client)
	go s.readPump(client)
}

func (s *WebSocketServer) writePump(client *Client) {
	defer client.conn.Close()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (s *WebSocketServer) readPump(client *Client) {
	defer func() {
		s.unregister <- client
		client.conn.Close()
	}()

	for {
		_, _, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("WebSocket read error", "error", err)
			}
			break
		}
	}
}

func New(logger *slog.Logger, manager *sim.Manager) *HttpServer {
	return &HttpServer{
		logger:   logger,
		manager:  manager,
		wsServer: NewWebSocketServer(),
	}
}

// statusData is the payload streamed to every websocket client and served
// on /status: live sessions with their debug sidecars, plus finished
// reports.
type statusData struct {
	Sessions []sim.SessionStatus `json:"sessions"`
	Reports  []sim.Report        `json:"reports"`
}

// BroadcastStatus pushes the live status to all clients once per second.
func (s *HttpServer) BroadcastStatus() {
	for {
		payload, err := json.Marshal(s.getStatusData())
		if err != nil {
			slog.Error("Failed to marshal status data", "error", err)
			continue
		}

		s.wsServer.broadcast <- payload
		time.Sleep(1 * time.Second)
	}
}

func (s *HttpServer) getStatusData() statusData {
	return statusData{
		Sessions: s.manager.Status(),
		Reports:  s.manager.Reports(),
	}
}

func (s *HttpServer) Listen(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.status)
	mux.HandleFunc("/start", s.startSession)
	mux.HandleFunc("/stop", s.stopSession)
	mux.HandleFunc("/characters", s.characters)
	mux.HandleFunc("/reload", s.reloadConfig)
	mux.HandleFunc("/ws", s.wsServer.HandleWebSocket)

	go s.wsServer.Run()
	go s.BroadcastStatus()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *HttpServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *HttpServer) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.getStatusData())
}

func (s *HttpServer) characters(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(config.Characters))
	for name := range config.Characters {
		names = append(names, name)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(names)
}

// reloadConfig re-reads every profile from disk. Running sessions keep the
// config they started with.
func (s *HttpServer) reloadConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	if err := config.Load("config"); err != nil {
		s.logger.Error("Config reload failed", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HttpServer) startSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	character := r.URL.Query().Get("character")
	id, err := s.manager.Start(character)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"session": id})
}

func (s *HttpServer) stopSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	if err := s.manager.Stop(r.URL.Query().Get("session")); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
