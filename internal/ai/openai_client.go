package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = openai.GPT4o

const systemPrompt = `You are an expert image analysis AI. Analyze images comprehensively and provide detailed information in a structured format.

For each image, provide:
1. Overall description of the image
2. List of objects/items you can identify (comma-separated)
3. Any text you can read in the image
4. Emotions or mood conveyed (if people are present)
5. Scene type and context
6. Your confidence level in the analysis

Format your response as:
DESCRIPTION: [detailed description]
OBJECTS: [object1, object2, object3, ...]
TEXT: [any text found or "None detected"]
EMOTIONS: [emotion1, emotion2, ...]
SCENE: [scene description]
CONFIDENCE: [High/Medium/Low]`

const userPrompt = "Please analyze this image comprehensively according to the format specified in your system message."

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = defaultModel
	}

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenAIClient) AnalyzeImage(ctx context.Context, imageData []byte) (string, error) {
	imageBase64 := base64.StdEncoding.EncodeToString(imageData)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: userPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: fmt.Sprintf("data:image/jpeg;base64,%s", imageBase64),
						},
					},
				},
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
