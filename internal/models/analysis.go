package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Siddu230/Image-recognization1/internal/ai"
)

// ImageAnalysis is the stored result of one analyze-image call. It keeps the
// raw model reply alongside the fields parsed out of it and is never mutated
// after creation.
type ImageAnalysis struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"`
	ImageBase64      string    `json:"image_base64"`
	Analysis         string    `json:"analysis"`
	ObjectsDetected  []string  `json:"objects_detected"`
	TextFound        string    `json:"text_found"`
	Emotions         []string  `json:"emotions"`
	SceneDescription string    `json:"scene_description"`
	Confidence       string    `json:"confidence"`
	Timestamp        time.Time `json:"timestamp"`
}

// NewImageAnalysis assembles a record from the caller-supplied input, the raw
// model reply and its parsed fields, stamping a fresh ID and creation time.
func NewImageAnalysis(filename, imageBase64, analysis string, parsed ai.ParsedFields) *ImageAnalysis {
	objects := parsed.Objects
	if objects == nil {
		objects = []string{}
	}
	emotions := parsed.Emotions
	if emotions == nil {
		emotions = []string{}
	}

	return &ImageAnalysis{
		ID:               uuid.New().String(),
		Filename:         filename,
		ImageBase64:      imageBase64,
		Analysis:         analysis,
		ObjectsDetected:  objects,
		TextFound:        parsed.Text,
		Emotions:         emotions,
		SceneDescription: parsed.Scene,
		Confidence:       parsed.Confidence,
		Timestamp:        time.Now().UTC(),
	}
}
