package ai

import "strings"

// noneDetected is the sentinel the model is instructed to use for empty list fields.
const noneDetected = "None detected"

// ParsedFields holds the structured extraction from a raw analysis reply.
type ParsedFields struct {
	Objects    []string
	Text       string
	Emotions   []string
	Scene      string
	Confidence string
}

// ParseAnalysis extracts labeled fields from the model's free-text reply.
// The model is asked to answer with "LABEL: value" lines; lines that match no
// known label are ignored, including the DESCRIPTION line, which stays only in
// the raw text. Parsing never fails: missing labels leave their fields empty,
// and when a label appears more than once the later line wins.
func ParseAnalysis(raw string) ParsedFields {
	parsed := ParsedFields{
		Objects:  []string{},
		Emotions: []string{},
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "OBJECTS:") {
			parsed.Objects = splitList(strings.TrimSpace(strings.TrimPrefix(line, "OBJECTS:")))
		}
		if strings.HasPrefix(line, "TEXT:") {
			parsed.Text = strings.TrimSpace(strings.TrimPrefix(line, "TEXT:"))
		}
		if strings.HasPrefix(line, "EMOTIONS:") {
			parsed.Emotions = splitList(strings.TrimSpace(strings.TrimPrefix(line, "EMOTIONS:")))
		}
		if strings.HasPrefix(line, "SCENE:") {
			parsed.Scene = strings.TrimSpace(strings.TrimPrefix(line, "SCENE:"))
		}
		if strings.HasPrefix(line, "CONFIDENCE:") {
			parsed.Confidence = strings.TrimSpace(strings.TrimPrefix(line, "CONFIDENCE:"))
		}
	}

	return parsed
}

// splitList turns a comma-separated value into its items. The "None detected"
// sentinel maps to an empty list; empty pieces are dropped, order and
// duplicates are kept.
func splitList(value string) []string {
	items := []string{}
	if value == "" || value == noneDetected {
		return items
	}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
