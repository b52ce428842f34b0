package diagnose

import "github.com/example/cropdoctor/internal/config"

func testAIConfig(analyzerType string) config.AIConfig {
	return config.AIConfig{
		Type:  analyzerType,
		Model: "gemini-2.5-flash",
	}
}
