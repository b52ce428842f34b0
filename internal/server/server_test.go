package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/cropdoctor/internal/catalog"
	"github.com/example/cropdoctor/internal/chat"
	"github.com/example/cropdoctor/internal/config"
	"github.com/example/cropdoctor/internal/diagnose"
	"github.com/example/cropdoctor/internal/models"
	"github.com/example/cropdoctor/internal/session"
	"github.com/example/cropdoctor/internal/weather"
)

// frame is the wire envelope: sendMessage fills type+data, sendError
// type+message.
type frame struct {
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type cannedGenerator struct{}

func (cannedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "Rotate crops every season.", nil
}

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	db, err := catalog.NewSQLiteDB(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	t.Cleanup(down.Close)
	weatherClient := weather.NewClient(config.WeatherConfig{ForecastURL: down.URL, GeocodeURL: down.URL})

	srv := New(db, &diagnose.StubAnalyzer{}, chat.New(cannedGenerator{}), weatherClient, false)
	ts := httptest.NewServer(http.HandlerFunc(srv.handleWebSocket))
	t.Cleanup(ts.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// awaitFrame reads frames until one of the wanted type arrives, skipping
// unrelated pushes.
func awaitFrame(t *testing.T, conn *websocket.Conn, wantType string) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var f frame
		require.NoError(t, conn.ReadJSON(&f))
		if f.Type == wantType {
			return f
		}
	}
}

func send(t *testing.T, conn *websocket.Conn, messageType string, data map[string]any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]any{"type": messageType, "data": data}))
}

func TestConnectPushesBundleStateAndWelcome(t *testing.T) {
	conn := dialTestServer(t)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first, second, third frame
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))
	require.NoError(t, conn.ReadJSON(&third))

	assert.Equal(t, "bundle", first.Type)
	var bundle struct {
		Language models.Language `json:"language"`
	}
	require.NoError(t, json.Unmarshal(first.Data, &bundle))
	assert.Equal(t, models.LangEnglish, bundle.Language)

	assert.Equal(t, "state", second.Type)
	var state session.StateSnapshot
	require.NoError(t, json.Unmarshal(second.Data, &state))
	assert.Equal(t, models.ViewHome, state.View)
	assert.Equal(t, session.WeatherLocating, state.WeatherState)

	assert.Equal(t, "chat_message", third.Type)
	var welcome models.ChatMessage
	require.NoError(t, json.Unmarshal(third.Data, &welcome))
	assert.Equal(t, models.SenderBot, welcome.Sender)
	assert.Equal(t, "Namaste! I am your Agri-Assistant. Ask me anything about your crops.", welcome.Text)
}

func TestScanRejectsMalformedImage(t *testing.T) {
	conn := dialTestServer(t)

	send(t, conn, "scan", map[string]any{})
	assert.Equal(t, "Invalid image data", awaitFrame(t, conn, "error").Message)

	send(t, conn, "scan", map[string]any{"image": "!!not-base64!!"})
	assert.Equal(t, "Invalid image format", awaitFrame(t, conn, "error").Message)
}

func TestScanRoutesToAnalyzer(t *testing.T) {
	conn := dialTestServer(t)
	awaitFrame(t, conn, "chat_message") // drain the initial push

	send(t, conn, "scan", map[string]any{
		"image": base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff}),
	})

	var state session.StateSnapshot
	require.NoError(t, json.Unmarshal(awaitFrame(t, conn, "state").Data, &state))
	assert.True(t, state.Capture.IsAnalyzing)
	assert.Equal(t, models.ViewScan, state.View)

	var result models.DiagnosisResult
	require.NoError(t, json.Unmarshal(awaitFrame(t, conn, "scan_result").Data, &result))
	assert.Equal(t, "Healthy Plant", result.DiseaseName)
	assert.True(t, result.IsHealthy)
}

func TestCatalogQueries(t *testing.T) {
	conn := dialTestServer(t)

	send(t, conn, "get_market", nil)
	var crops []models.MarketItem
	require.NoError(t, json.Unmarshal(awaitFrame(t, conn, "market_items").Data, &crops))
	require.Len(t, crops, 3)
	assert.Equal(t, "Fresh Tomatoes", crops[0].Name)

	send(t, conn, "get_rental", nil)
	var equipment []models.MarketItem
	require.NoError(t, json.Unmarshal(awaitFrame(t, conn, "rental_items").Data, &equipment))
	require.Len(t, equipment, 2)
	assert.Equal(t, models.KindEquipment, equipment[0].Kind)

	send(t, conn, "get_feed", nil)
	var posts []models.Post
	require.NoError(t, json.Unmarshal(awaitFrame(t, conn, "posts").Data, &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "Ramesh Kumar", posts[0].Author)
}

func TestSetLanguagePushesBundle(t *testing.T) {
	conn := dialTestServer(t)
	awaitFrame(t, conn, "chat_message") // drain the initial push

	send(t, conn, "set_language", map[string]any{"language": "mr"})

	var bundle struct {
		Language        models.Language            `json:"language"`
		SpeechLangCodes map[models.Language]string `json:"speechLangCodes"`
		LanguageNames   map[models.Language]string `json:"languageNames"`
		Strings         map[string]json.RawMessage `json:"strings"`
	}
	require.NoError(t, json.Unmarshal(awaitFrame(t, conn, "bundle").Data, &bundle))
	assert.Equal(t, models.LangMarathi, bundle.Language)
	assert.Equal(t, "mr-IN", bundle.SpeechLangCodes[models.LangMarathi])
	assert.Equal(t, "मराठी", bundle.LanguageNames[models.LangMarathi])
	assert.NotEmpty(t, bundle.Strings)
}

func TestUnknownMessageTypeRejected(t *testing.T) {
	conn := dialTestServer(t)

	send(t, conn, "reboot", nil)
	assert.Equal(t, "Unknown message type", awaitFrame(t, conn, "error").Message)
}
