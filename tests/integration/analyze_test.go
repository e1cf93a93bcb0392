package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestAnalyzeImageFlow(t *testing.T) {
	ts := setupTestServer(t, &fakeVisionService{response: structuredReply})
	defer ts.Cleanup()

	resp := analyzeImage(t, ts.Server.URL, "cat.jpg", "aW1hZ2UgYnl0ZXM=")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	result := decodeAnalysis(t, resp)

	if result.Filename != "cat.jpg" {
		t.Errorf("Expected filename cat.jpg, got %s", result.Filename)
	}
	if result.Analysis != structuredReply {
		t.Errorf("Expected raw analysis to be returned verbatim, got %q", result.Analysis)
	}
	if len(result.ObjectsDetected) != 2 || result.ObjectsDetected[0] != "cat" || result.ObjectsDetected[1] != "sofa" {
		t.Errorf("Expected objects [cat sofa], got %v", result.ObjectsDetected)
	}
	if result.TextFound != "None detected" {
		t.Errorf("Expected text_found None detected, got %q", result.TextFound)
	}
	if len(result.Emotions) != 0 {
		t.Errorf("Expected no emotions, got %v", result.Emotions)
	}
	if result.SceneDescription != "living room" {
		t.Errorf("Expected scene living room, got %q", result.SceneDescription)
	}
	if result.Confidence != "High" {
		t.Errorf("Expected confidence High, got %q", result.Confidence)
	}

	// Round-trip: fetch by id and compare every field.
	getResp, err := http.Get(ts.Server.URL + "/api/analysis/" + result.ID)
	if err != nil {
		t.Fatalf("Failed to fetch analysis: %v", err)
	}
	defer getResp.Body.Close()

	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 fetching stored analysis, got %d", getResp.StatusCode)
	}

	stored := decodeAnalysis(t, getResp)
	if stored.ID != result.ID ||
		stored.Filename != result.Filename ||
		stored.ImageBase64 != result.ImageBase64 ||
		stored.Analysis != result.Analysis ||
		stored.TextFound != result.TextFound ||
		stored.SceneDescription != result.SceneDescription ||
		stored.Confidence != result.Confidence ||
		!stored.Timestamp.Equal(result.Timestamp) {
		t.Errorf("Stored analysis differs from created one:\ncreated: %+v\nstored:  %+v", result, stored)
	}
}

func TestAnalyzeImageUnstructuredReply(t *testing.T) {
	ts := setupTestServer(t, &fakeVisionService{response: "Just a plain description with no labels."})
	defer ts.Cleanup()

	resp := analyzeImage(t, ts.Server.URL, "plain.jpg", "aW1hZ2U=")
	defer resp.Body.Close()

	// A reply without structured fields is still a valid, storable analysis.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	result := decodeAnalysis(t, resp)
	if result.ObjectsDetected == nil || len(result.ObjectsDetected) != 0 {
		t.Errorf("Expected empty objects array, got %v", result.ObjectsDetected)
	}
	if result.Emotions == nil || len(result.Emotions) != 0 {
		t.Errorf("Expected empty emotions array, got %v", result.Emotions)
	}

	count, err := countAnalysesInDB(ts.DB.Conn())
	if err != nil {
		t.Fatalf("Failed to count analyses: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 stored analysis, got %d", count)
	}
}

func TestAnalyzeImageAIFailure(t *testing.T) {
	ts := setupTestServer(t, &fakeVisionService{err: fmt.Errorf("provider unavailable")})
	defer ts.Cleanup()

	resp := analyzeImage(t, ts.Server.URL, "cat.jpg", "aW1hZ2U=")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", resp.StatusCode)
	}

	var errResp map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if errResp["detail"] == "" {
		t.Error("Expected an error detail message")
	}

	// Nothing may be persisted when the AI call fails.
	count, err := countAnalysesInDB(ts.DB.Conn())
	if err != nil {
		t.Fatalf("Failed to count analyses: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 stored analyses after AI failure, got %d", count)
	}
}

func TestAnalyzeImageNotConfigured(t *testing.T) {
	ts := setupTestServer(t, nil)
	defer ts.Cleanup()

	resp := analyzeImage(t, ts.Server.URL, "cat.jpg", "aW1hZ2U=")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", resp.StatusCode)
	}

	var errResp map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if errResp["detail"] != "AI service not configured" {
		t.Errorf("Unexpected detail: %q", errResp["detail"])
	}
}

func TestRootEndpoint(t *testing.T) {
	ts := setupTestServer(t, nil)
	defer ts.Cleanup()

	resp, err := http.Get(ts.Server.URL + "/api/")
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["message"] != "AI Image Recognition API is running!" {
		t.Errorf("Unexpected message: %q", body["message"])
	}
}
