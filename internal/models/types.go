package models

import (
	"time"
)

// Language is a UI language code supported by the app.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangMarathi Language = "mr"
	LangKannada Language = "kn"
)

// ParseLanguage maps a raw code to a supported Language, defaulting to English.
func ParseLanguage(code string) Language {
	switch Language(code) {
	case LangHindi, LangMarathi, LangKannada:
		return Language(code)
	default:
		return LangEnglish
	}
}

// WeatherCondition is the coarse sky condition shown on the home screen.
type WeatherCondition string

const (
	ConditionSunny  WeatherCondition = "Sunny"
	ConditionCloudy WeatherCondition = "Cloudy"
	ConditionRainy  WeatherCondition = "Rainy"
)

// WeatherSnapshot is an immutable point-in-time weather reading, fetched once
// per session. Temperature and humidity are rounded to the nearest integer.
type WeatherSnapshot struct {
	Temperature  int              `json:"temperature"`
	Humidity     int              `json:"humidity"`
	RainChance   int              `json:"rainChance"`
	LocationName string           `json:"locationName"`
	Condition    WeatherCondition `json:"condition"`
}

// DiagnosisResult is the structured outcome of analyzing a leaf image.
// Confidence is whatever the provider reported; it is not clamped to [0,100].
type DiagnosisResult struct {
	DiseaseName string   `json:"diseaseName"`
	Confidence  float64  `json:"confidence"`
	IsHealthy   bool     `json:"isHealthy"`
	Description string   `json:"description"`
	Treatments  []string `json:"treatments"`
	Preventions []string `json:"preventions"`
}

// ChatSender identifies which side of the transcript a message belongs to.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

// ChatMessage is a single entry in the assistant transcript.
type ChatMessage struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Sender    ChatSender `json:"sender"`
	Timestamp time.Time  `json:"timestamp"`
}

// AppView enumerates the mutually exclusive top-level screens.
type AppView string

const (
	ViewHome      AppView = "HOME"
	ViewScan      AppView = "SCAN"
	ViewCommunity AppView = "COMMUNITY"
	ViewMarket    AppView = "MARKET"
	ViewRental    AppView = "RENTAL"
)

// ParseAppView maps a raw view name to an AppView, defaulting to Home.
func ParseAppView(name string) AppView {
	switch AppView(name) {
	case ViewScan, ViewCommunity, ViewMarket, ViewRental:
		return AppView(name)
	default:
		return ViewHome
	}
}

// CaptureSession is the transient state of one scan: the preview shown while
// analyzing and the diagnosis once the analyzer settles. It is discarded when
// the user dismisses the result or starts a new capture.
type CaptureSession struct {
	PreviewImage string           `json:"previewImage"`
	IsAnalyzing  bool             `json:"isAnalyzing"`
	Diagnosis    *DiagnosisResult `json:"diagnosis,omitempty"`
}

// MarketItemKind distinguishes crop listings from equipment rentals.
type MarketItemKind string

const (
	KindCrop      MarketItemKind = "crop"
	KindEquipment MarketItemKind = "equipment"
)

// MarketItem is a marketplace or rental listing.
type MarketItem struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Price    string         `json:"price"`
	Unit     string         `json:"unit"`
	Location string         `json:"location"`
	Image    string         `json:"image"`
	Kind     MarketItemKind `json:"type"`
}

// Post is a community feed entry.
type Post struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Role     string `json:"role"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	TimeAgo  string `json:"timeAgo"`
}
