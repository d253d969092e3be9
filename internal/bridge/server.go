// internal/bridge/server.go
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"hand-invaders/internal/event"
	"hand-invaders/internal/input"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // страница трекера открывается с другого origin
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Server — мост между браузерным трекером ладони и игрой.
// Входящие JSON-сэмплы пишутся в input.Latest, события партии уходят
// в браузер msgpack-сообщениями.
type Server struct {
	latest *input.Latest
	mapper input.GestureMapper
	now    func() time.Time

	mu        sync.Mutex
	clients   map[*client]struct{}
	sessionID string
	hud       HUDMsg
}

func NewServer(latest *input.Latest, mapper input.GestureMapper) *Server {
	return &Server{
		latest:  latest,
		mapper:  mapper,
		now:     time.Now,
		clients: make(map[*client]struct{}),
		hud:     HUDMsg{Type: MsgTypeHUD, Wave: 1, BulletCount: 1},
	}
}

// Handler возвращает обработчик с маршрутом /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Serve слушает addr до отмены ctx.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bridge listen: %w", err)
	}
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		s.closeClients()
	}()

	slog.Info("bridge listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("bridge serve: %w", err)
	}
	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("bridge upgrade error", "error", err)
		return
	}

	c := &client{id: uuid.New(), conn: conn, send: make(chan []byte, sendBuffer)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	welcome := WelcomeMsg{Type: MsgTypeWelcome, SessionID: s.sessionID}
	hud := s.hud
	s.mu.Unlock()
	slog.Info("bridge client connected", "client", c.id, "remote", r.RemoteAddr)

	s.sendTo(c, welcome)
	s.sendTo(c, hud)

	go s.writePump(c)
	go s.readPump(c)
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
		slog.Info("bridge client disconnected", "client", c.id)
	}
}

func (s *Server) closeClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
	}
}

// Clients — число подключённых браузеров.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// SetSession сообщает браузерам о новой сессии и сбрасывает HUD.
func (s *Server) SetSession(id string) {
	s.mu.Lock()
	s.sessionID = id
	s.hud = HUDMsg{Type: MsgTypeHUD, Wave: 1, BulletCount: 1}
	s.mu.Unlock()
	s.Broadcast(WelcomeMsg{Type: MsgTypeWelcome, SessionID: id})
}

// OnEvent пересылает события партии в браузер. Вызывается из игрового цикла,
// поэтому никогда не блокируется.
func (s *Server) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ScoreChangedData:
		s.Broadcast(s.updateHUD(func(h *HUDMsg) { h.Score = data.Score }))
	case event.WaveStartedData:
		s.Broadcast(s.updateHUD(func(h *HUDMsg) { h.Wave = data.Wave }))
	case event.PlayerUpgradedData:
		s.Broadcast(s.updateHUD(func(h *HUDMsg) { h.BulletCount = data.BulletCount }))
	case event.GameOverData:
		s.Broadcast(GameOverMsg{Type: MsgTypeGameOver, Score: data.Score, Wave: data.Wave, Reason: string(data.Reason)})
	}
}

// Subscribe подписывает мост на события, которые он пересылает.
func (s *Server) Subscribe(d *event.Dispatcher) []event.SubscriptionID {
	return d.SubscribeAll(s, event.ScoreChanged, event.WaveStarted, event.PlayerUpgraded, event.GameOver)
}

func (s *Server) updateHUD(fn func(h *HUDMsg)) HUDMsg {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.hud)
	return s.hud
}

// Broadcast рассылает сообщение всем клиентам. Медленный клиент
// теряет сообщение, а не тормозит игру.
func (s *Server) Broadcast(msg any) {
	data, err := msgpack.Marshal(msg)
	if err != nil {
		slog.Error("bridge marshal error", "error", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			slog.Debug("bridge client too slow, message dropped", "client", c.id)
		}
	}
}

func (s *Server) sendTo(c *client, msg any) {
	data, err := msgpack.Marshal(msg)
	if err != nil {
		slog.Error("bridge marshal error", "error", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; !ok {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
