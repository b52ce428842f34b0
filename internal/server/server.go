package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/example/cropdoctor/internal/catalog"
	"github.com/example/cropdoctor/internal/chat"
	"github.com/example/cropdoctor/internal/diagnose"
	"github.com/example/cropdoctor/internal/i18n"
	"github.com/example/cropdoctor/internal/logger"
	"github.com/example/cropdoctor/internal/models"
	"github.com/example/cropdoctor/internal/session"
	"github.com/example/cropdoctor/internal/weather"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, this should be more restrictive
	},
}

// Server hosts the websocket endpoint driving per-client sessions plus the
// static UI shell.
type Server struct {
	db            catalog.DB
	analyzer      diagnose.Analyzer
	assistant     *chat.Assistant
	weatherClient *weather.Client
	clients       sync.Map
	debug         bool
}

func New(db catalog.DB, analyzer diagnose.Analyzer, assistant *chat.Assistant, weatherClient *weather.Client, debug bool) *Server {
	if debug {
		logger.Info("debug mode enabled")
	}
	return &Server{
		db:            db,
		analyzer:      analyzer,
		assistant:     assistant,
		weatherClient: weatherClient,
		debug:         debug,
	}
}

func (s *Server) Start(port, staticDir string) error {
	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	http.HandleFunc("/ws", s.handleWebSocket)
	http.HandleFunc("/health", s.handleHealth)

	fs := http.FileServer(http.Dir(staticDir))
	http.Handle("/", fs)

	go func() {
		logger.Info("starting server", "port", port)
		if err := http.ListenAndServe(":"+port, nil); err != nil {
			logger.Error("listen and serve", "err", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	logger.Info("shutting down server")
	return nil
}

// client pairs a websocket connection with its session. The write mutex keeps
// async session pushes and read-loop replies from interleaving frames.
type client struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex
	session *session.Session
}

func (c *client) sendMessage(messageType string, data any) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	msg := map[string]any{
		"type": messageType,
		"data": data,
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		logger.Warn("error sending message", "client", c.id, "type", messageType, "err", err)
	}
}

func (c *client) sendError(message string) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	msg := map[string]any{
		"type":    "error",
		"message": message,
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		logger.Warn("error sending error message", "client", c.id, "err", err)
	}
}

// Events implementation pushing session changes to the client.

func (c *client) StateChanged(snap session.StateSnapshot) { c.sendMessage("state", snap) }

func (c *client) ScanResult(result *models.DiagnosisResult) { c.sendMessage("scan_result", result) }

func (c *client) ScanError(message string) { c.sendMessage("scan_error", message) }

func (c *client) WeatherReady(snapshot *models.WeatherSnapshot) { c.sendMessage("weather", snapshot) }

func (c *client) ChatAppended(msg models.ChatMessage) { c.sendMessage("chat_message", msg) }

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	c := &client{id: uuid.New().String(), conn: conn}
	c.session = session.New(s.analyzer, s.assistant, s.weatherClient, c)
	s.clients.Store(c.id, c)
	defer s.clients.Delete(c.id)

	// Initial push so the shell can render before any user action.
	c.sendMessage("bundle", bundlePayload(models.LangEnglish))
	c.sendMessage("state", c.session.State())
	for _, msg := range c.session.Transcript() {
		c.sendMessage("chat_message", msg)
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			logger.Debug("client disconnected", "client", c.id, "err", err)
			break
		}

		var msg struct {
			Type string         `json:"type"`
			Data map[string]any `json:"data"`
		}
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Warn("error parsing message", "client", c.id, "err", err)
			continue
		}

		s.handleMessage(r.Context(), c, msg.Type, msg.Data)
	}
}

func (s *Server) handleMessage(ctx context.Context, c *client, messageType string, data map[string]any) {
	switch messageType {
	case "scan":
		s.handleScan(c, data)
	case "dismiss":
		c.session.DismissResult()
	case "set_view":
		view, _ := data["view"].(string)
		c.session.SetView(models.ParseAppView(view))
	case "set_language":
		code, _ := data["language"].(string)
		lang := models.ParseLanguage(code)
		c.session.SetLanguage(lang)
		c.sendMessage("bundle", bundlePayload(lang))
	case "open_chat":
		c.session.OpenChat()
	case "close_chat":
		c.session.CloseChat()
	case "chat":
		text, _ := data["text"].(string)
		if !c.session.SendChat(context.Background(), text) {
			c.sendError("Assistant is busy")
		}
	case "location":
		lat, latOK := data["latitude"].(float64)
		lon, lonOK := data["longitude"].(float64)
		if !latOK || !lonOK {
			c.sendError("Invalid coordinates")
			return
		}
		go c.session.ResolveWeather(context.Background(), lat, lon)
	case "location_denied":
		c.session.FailWeather()
	case "get_market":
		s.handleListMarket(ctx, c, models.KindCrop, "market_items")
	case "get_rental":
		s.handleListMarket(ctx, c, models.KindEquipment, "rental_items")
	case "get_feed":
		s.handleFeed(ctx, c)
	case "get_bundle":
		code, _ := data["language"].(string)
		c.sendMessage("bundle", bundlePayload(models.ParseLanguage(code)))
	default:
		c.sendError("Unknown message type")
	}
}

func (s *Server) handleScan(c *client, data map[string]any) {
	imageStr, ok := data["image"].(string)
	if !ok {
		c.sendError("Invalid image data")
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(imageStr)
	if err != nil {
		logger.Warn("error decoding image", "client", c.id, "err", err)
		c.sendError("Invalid image format")
		return
	}

	// In-flight analyses are never cancelled, so the capture runs on a
	// connection-independent context.
	if !c.session.BeginCapture(context.Background(), imageData) {
		c.sendError("Analysis already in progress")
	}
}

func (s *Server) handleListMarket(ctx context.Context, c *client, kind models.MarketItemKind, messageType string) {
	items, err := s.db.ListMarketItems(ctx, kind)
	if err != nil {
		logger.Error("error listing market items", "kind", kind, "err", err)
		c.sendError("Failed to load listings")
		return
	}
	c.sendMessage(messageType, items)
}

func (s *Server) handleFeed(ctx context.Context, c *client) {
	posts, err := s.db.ListPosts(ctx)
	if err != nil {
		logger.Error("error listing posts", "err", err)
		c.sendError("Failed to load community feed")
		return
	}
	c.sendMessage("posts", posts)
}

// bundlePayload bundles the localized strings with the language metadata the
// shell needs (display names for the picker, BCP 47 tags for speech input).
func bundlePayload(lang models.Language) map[string]any {
	return map[string]any{
		"language":        lang,
		"strings":         i18n.Get(lang),
		"languageNames":   i18n.LanguageNames,
		"speechLangCodes": i18n.SpeechLangCodes,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
