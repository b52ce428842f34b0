// Package session owns the per-client UI state: active view, language,
// weather sub-state, capture pipeline and chat transcript. All mutations go
// through typed transition methods under one mutex; async completions apply
// whenever they arrive, since in-flight requests are neither cancelled nor
// timed out.
package session

import (
	"context"
	"encoding/base64"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/cropdoctor/internal/chat"
	"github.com/example/cropdoctor/internal/diagnose"
	"github.com/example/cropdoctor/internal/i18n"
	"github.com/example/cropdoctor/internal/logger"
	"github.com/example/cropdoctor/internal/models"
	"github.com/example/cropdoctor/internal/weather"
)

// failedAnalysisMsg is the blocking notification shown when a scan fails,
// regardless of whether the provider or the parser was at fault.
const failedAnalysisMsg = "Failed to analyze image. Please try again."

// WeatherState is the session-scoped weather sub-state machine. It leaves
// Locating exactly once and is terminal afterwards.
type WeatherState string

const (
	WeatherLocating WeatherState = "locating"
	WeatherLocated  WeatherState = "located"
	WeatherFallback WeatherState = "fallback"
)

// Events receives state pushes. The server implements it with websocket
// writes; tests implement it with slices.
type Events interface {
	StateChanged(s StateSnapshot)
	ScanResult(result *models.DiagnosisResult)
	ScanError(message string)
	WeatherReady(snapshot *models.WeatherSnapshot)
	ChatAppended(msg models.ChatMessage)
}

// StateSnapshot is the denormalized view of the session pushed to the client.
type StateSnapshot struct {
	View         models.AppView          `json:"view"`
	Language     models.Language         `json:"language"`
	ChatOpen     bool                    `json:"chatOpen"`
	WeatherState WeatherState            `json:"weatherState"`
	Weather      *models.WeatherSnapshot `json:"weather,omitempty"`
	Capture      models.CaptureSession   `json:"capture"`
}

// Session is the view-state orchestrator for one connected client.
type Session struct {
	mu sync.Mutex

	view         models.AppView
	language     models.Language
	chatOpen     bool
	weatherState WeatherState
	weather      *models.WeatherSnapshot
	capture      models.CaptureSession
	transcript   []models.ChatMessage
	chatBusy     bool

	analyzer      diagnose.Analyzer
	assistant     *chat.Assistant
	weatherClient *weather.Client
	events        Events

	now func() time.Time
}

// New creates a session at the home view in English with the weather
// sub-state machine in Locating.
func New(analyzer diagnose.Analyzer, assistant *chat.Assistant, weatherClient *weather.Client, events Events) *Session {
	s := &Session{
		view:          models.ViewHome,
		language:      models.LangEnglish,
		weatherState:  WeatherLocating,
		analyzer:      analyzer,
		assistant:     assistant,
		weatherClient: weatherClient,
		events:        events,
		now:           time.Now,
	}
	s.transcript = []models.ChatMessage{s.welcomeMessage()}
	return s
}

func (s *Session) welcomeMessage() models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.New().String(),
		Text:      i18n.Get(s.language).Chat.Welcome,
		Sender:    models.SenderBot,
		Timestamp: s.now(),
	}
}

func (s *Session) snapshotLocked() StateSnapshot {
	return StateSnapshot{
		View:         s.view,
		Language:     s.language,
		ChatOpen:     s.chatOpen,
		WeatherState: s.weatherState,
		Weather:      s.weather,
		Capture:      s.capture,
	}
}

// State returns the current snapshot.
func (s *Session) State() StateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Transcript returns a copy of the chat transcript.
func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// SetView switches the active screen.
func (s *Session) SetView(view models.AppView) {
	s.mu.Lock()
	s.view = view
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.events.StateChanged(snap)
}

// SetLanguage switches the UI language and reseeds the chat transcript with
// the new language's welcome message. Language change is the only transcript
// reset trigger; reopening the chat panel keeps the history.
func (s *Session) SetLanguage(lang models.Language) {
	s.mu.Lock()
	if lang == s.language {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.events.StateChanged(snap)
		return
	}
	s.language = lang
	welcome := s.welcomeMessage()
	s.transcript = []models.ChatMessage{welcome}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.events.StateChanged(snap)
	s.events.ChatAppended(welcome)
}

// OpenChat and CloseChat toggle the assistant panel without touching the
// transcript.
func (s *Session) OpenChat() {
	s.mu.Lock()
	s.chatOpen = true
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.events.StateChanged(snap)
}

func (s *Session) CloseChat() {
	s.mu.Lock()
	s.chatOpen = false
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.events.StateChanged(snap)
}

// BeginCapture starts the capture pipeline: the preview and the Scan view are
// set synchronously before the analyzer is invoked. Returns false when an
// analysis is already in flight; overlapping triggers are ignored to keep a
// single capture pipeline per session.
func (s *Session) BeginCapture(ctx context.Context, imageData []byte) bool {
	s.mu.Lock()
	if s.capture.IsAnalyzing {
		s.mu.Unlock()
		logger.Debug("capture ignored, analysis already in flight")
		return false
	}
	s.capture = models.CaptureSession{
		PreviewImage: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageData),
		IsAnalyzing:  true,
	}
	s.view = models.ViewScan
	languageName := i18n.LanguageName(s.language)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.events.StateChanged(snap)

	go func() {
		result, err := s.analyzer.Analyze(ctx, imageData, languageName)
		s.finishCapture(result, err)
	}()
	return true
}

// finishCapture applies the analyzer outcome. A failure reverts to the
// pre-capture scan screen with the preview kept and no diagnosis; provider
// and parse failures read the same to the user.
func (s *Session) finishCapture(result *models.DiagnosisResult, err error) {
	s.mu.Lock()
	s.capture.IsAnalyzing = false
	if err == nil {
		s.capture.Diagnosis = result
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if err != nil {
		logger.Error("analysis failed", "err", err)
		s.events.StateChanged(snap)
		s.events.ScanError(failedAnalysisMsg)
		return
	}
	s.events.StateChanged(snap)
	s.events.ScanResult(result)
}

// DismissResult clears the diagnosis and the preview and returns Home.
// Ignored while an analysis is in flight: clearing IsAnalyzing early would
// re-arm the capture guard and allow a second concurrent scan.
func (s *Session) DismissResult() {
	s.mu.Lock()
	if s.capture.IsAnalyzing {
		s.mu.Unlock()
		return
	}
	s.capture = models.CaptureSession{}
	s.view = models.ViewHome
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.events.StateChanged(snap)
}

// ResolveWeather fetches the snapshot for the reported coordinates. Entered
// at most once: repeat calls after the sub-state left Locating are ignored.
// Any fetch failure substitutes the fixed default snapshot.
func (s *Session) ResolveWeather(ctx context.Context, lat, lon float64) {
	s.mu.Lock()
	if s.weatherState != WeatherLocating {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	snapshot, err := s.weatherClient.Fetch(ctx, lat, lon)

	s.mu.Lock()
	if s.weatherState != WeatherLocating {
		s.mu.Unlock()
		return
	}
	if err != nil {
		logger.Warn("weather fetch failed, using default snapshot", "err", err)
		s.weather = weather.DefaultSnapshot()
		s.weatherState = WeatherFallback
	} else {
		s.weather = snapshot
		s.weatherState = WeatherLocated
	}
	result := s.weather
	s.mu.Unlock()
	s.events.WeatherReady(result)
}

// FailWeather is the geolocation-denied path: it settles the weather
// sub-state on the default snapshot without any network call.
func (s *Session) FailWeather() {
	s.mu.Lock()
	if s.weatherState != WeatherLocating {
		s.mu.Unlock()
		return
	}
	s.weather = weather.DefaultSnapshot()
	s.weatherState = WeatherFallback
	result := s.weather
	s.mu.Unlock()
	s.events.WeatherReady(result)
}

// SendChat appends the user message and asks the assistant for a reply.
// Returns false while a previous question is still being answered.
func (s *Session) SendChat(ctx context.Context, text string) bool {
	if text == "" {
		return false
	}

	s.mu.Lock()
	if s.chatBusy {
		s.mu.Unlock()
		return false
	}
	s.chatBusy = true
	userMsg := models.ChatMessage{
		ID:        uuid.New().String(),
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: s.now(),
	}
	s.transcript = append(s.transcript, userMsg)
	languageName := i18n.LanguageName(s.language)
	s.mu.Unlock()
	s.events.ChatAppended(userMsg)

	go func() {
		reply := s.assistant.Ask(ctx, text, languageName, "")

		s.mu.Lock()
		botMsg := models.ChatMessage{
			ID:        uuid.New().String(),
			Text:      reply,
			Sender:    models.SenderBot,
			Timestamp: s.now(),
		}
		s.transcript = append(s.transcript, botMsg)
		s.chatBusy = false
		s.mu.Unlock()
		s.events.ChatAppended(botMsg)
	}()
	return true
}
