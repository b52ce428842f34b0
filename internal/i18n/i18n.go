// Package i18n holds the fixed display-string bundles for every supported UI
// language. Bundles are plain structs so a missing translation is an empty
// field that Validate rejects at startup, not a blank string at render time.
package i18n

import (
	"fmt"
	"reflect"

	"github.com/example/cropdoctor/internal/models"
)

// Bundle is the full set of display strings for one language.
type Bundle struct {
	AppTitle     string        `json:"appTitle"`
	Greeting     string        `json:"greeting"`
	Online       string        `json:"online"`
	Weather      WeatherText   `json:"weather"`
	ScanAction   string        `json:"scanAction"`
	ScanDesc     string        `json:"scanDesc"`
	MarketPrices string        `json:"marketPrices"`
	AskExpert    string        `json:"askExpert"`
	ExpertDesc   string        `json:"expertDesc"`
	Nav          NavText       `json:"nav"`
	Market       MarketText    `json:"market"`
	Community    CommunityText `json:"community"`
	Chat         ChatText      `json:"chat"`
	Diagnosis    DiagnosisText `json:"diagnosis"`
	Common       CommonText    `json:"common"`
}

type WeatherText struct {
	Humidity string `json:"humidity"`
	Rain     string `json:"rain"`
	Locating string `json:"locating"`
}

type NavText struct {
	Home      string `json:"home"`
	Scan      string `json:"scan"`
	Community string `json:"community"`
	Market    string `json:"market"`
	Rental    string `json:"rental"`
}

type MarketText struct {
	SellTitle string `json:"sellTitle"`
	SellDesc  string `json:"sellDesc"`
	RentTitle string `json:"rentTitle"`
	RentDesc  string `json:"rentDesc"`
}

type CommunityText struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type ChatText struct {
	Placeholder string `json:"placeholder"`
	Welcome     string `json:"welcome"`
	Listening   string `json:"listening"`
}

type DiagnosisText struct {
	Title        string `json:"title"`
	Confidence   string `json:"confidence"`
	HealthyTitle string `json:"healthyTitle"`
	HealthyDesc  string `json:"healthyDesc"`
}

type CommonText struct {
	Contact     string `json:"contact"`
	Details     string `json:"details"`
	ScanAnother string `json:"scanAnother"`
	Treatments  string `json:"treatments"`
	Prevention  string `json:"prevention"`
	Analyzing   string `json:"analyzing"`
	NoImage     string `json:"noImage"`
	TakePhoto   string `json:"takePhoto"`
	OpenCamera  string `json:"openCamera"`
}

// LanguageNames maps a language code to the name the AI prompts use when
// directing the provider to answer in that language.
var LanguageNames = map[models.Language]string{
	models.LangEnglish: "English",
	models.LangHindi:   "हिंदी",
	models.LangMarathi: "मराठी",
	models.LangKannada: "ಕನ್ನಡ",
}

// SpeechLangCodes maps a language code to the BCP 47 tag handed to the
// browser's speech-recognition API.
var SpeechLangCodes = map[models.Language]string{
	models.LangEnglish: "en-IN",
	models.LangHindi:   "hi-IN",
	models.LangMarathi: "mr-IN",
	models.LangKannada: "kn-IN",
}

// Get returns the bundle for lang, falling back to English for unknown codes.
func Get(lang models.Language) *Bundle {
	if b, ok := bundles[lang]; ok {
		return b
	}
	return bundles[models.LangEnglish]
}

// LanguageName returns the prompt-facing name for lang.
func LanguageName(lang models.Language) string {
	if name, ok := LanguageNames[lang]; ok {
		return name
	}
	return LanguageNames[models.LangEnglish]
}

// Validate checks every bundle for empty fields so a dropped translation key
// fails at startup. Called from main before the server accepts connections.
func Validate() error {
	for _, lang := range []models.Language{models.LangEnglish, models.LangHindi, models.LangMarathi, models.LangKannada} {
		b, ok := bundles[lang]
		if !ok {
			return fmt.Errorf("i18n: no bundle for language %q", lang)
		}
		if err := checkNoEmpty(reflect.ValueOf(*b), string(lang)); err != nil {
			return err
		}
		if _, ok := LanguageNames[lang]; !ok {
			return fmt.Errorf("i18n: no language name for %q", lang)
		}
		if _, ok := SpeechLangCodes[lang]; !ok {
			return fmt.Errorf("i18n: no speech code for %q", lang)
		}
	}
	return nil
}

func checkNoEmpty(v reflect.Value, path string) error {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		name := path + "." + t.Field(i).Name
		switch f.Kind() {
		case reflect.String:
			if f.String() == "" {
				return fmt.Errorf("i18n: missing translation %s", name)
			}
		case reflect.Struct:
			if err := checkNoEmpty(f, name); err != nil {
				return err
			}
		}
	}
	return nil
}
