package ai

import (
	"context"
	"fmt"
)

// VisionService turns raw image bytes into a free-text analysis.
type VisionService interface {
	AnalyzeImage(ctx context.Context, imageData []byte) (string, error)
}

type Config struct {
	OpenAIAPIKey string
	OpenAIModel  string
}

func NewVisionService(config *Config) (VisionService, error) {
	if config.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("no AI API key configured")
	}
	return NewOpenAIClient(config.OpenAIAPIKey, config.OpenAIModel), nil
}
