package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Siddu230/Image-recognization1/internal/ai"
	"github.com/Siddu230/Image-recognization1/internal/api"
	"github.com/Siddu230/Image-recognization1/internal/database"
	"github.com/Siddu230/Image-recognization1/internal/models"
)

// structuredReply is a well-formed model reply used across the tests.
const structuredReply = "DESCRIPTION: a cat sitting on a sofa\n" +
	"OBJECTS: cat, sofa\n" +
	"TEXT: None detected\n" +
	"EMOTIONS: None detected\n" +
	"SCENE: living room\n" +
	"CONFIDENCE: High"

type fakeVisionService struct {
	response string
	err      error
}

func (f *fakeVisionService) AnalyzeImage(ctx context.Context, imageData []byte) (string, error) {
	return f.response, f.err
}

type TestServer struct {
	Server       *httptest.Server
	App          *api.App
	DB           *database.DB
	AnalysisRepo *database.AnalysisRepository
}

func setupTestServer(t *testing.T, vision ai.VisionService) *TestServer {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.NewDB(database.Config{
		Type:       "sqlite",
		SQLitePath: dbPath,
	})
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}

	analysisRepo := database.NewAnalysisRepository(db)

	app := &api.App{
		DB:            db,
		AnalysisRepo:  analysisRepo,
		VisionService: vision,
		MaxBodySize:   10 * 1024 * 1024,
	}

	router := api.NewRouter(app, []string{"*"})
	server := httptest.NewServer(router)

	return &TestServer{
		Server:       server,
		App:          app,
		DB:           db,
		AnalysisRepo: analysisRepo,
	}
}

func (ts *TestServer) Cleanup() {
	ts.Server.Close()
	ts.DB.Close()
}

func analyzeImage(t *testing.T, server, filename, imageBase64 string) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"filename":     filename,
		"image_base64": imageBase64,
	})
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	resp, err := http.Post(server+"/api/analyze-image", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}
	return resp
}

func countAnalysesInDB(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM image_analyses").Scan(&count)
	return count, err
}

func decodeAnalysis(t *testing.T, resp *http.Response) models.ImageAnalysis {
	t.Helper()

	var result models.ImageAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode analysis: %v", err)
	}
	return result
}

func seedAnalyses(t *testing.T, ts *TestServer, n int) []string {
	t.Helper()

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		analysis := models.NewImageAnalysis(fmt.Sprintf("seed%d.jpg", i), "", "seeded", ai.ParsedFields{})
		if err := ts.AnalysisRepo.Create(context.Background(), analysis); err != nil {
			t.Fatalf("Failed to seed analysis %d: %v", i, err)
		}
		ids = append(ids, analysis.ID)
	}
	return ids
}
