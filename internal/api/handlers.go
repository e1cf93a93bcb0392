package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Siddu230/Image-recognization1/internal/ai"
	"github.com/Siddu230/Image-recognization1/internal/database"
	"github.com/Siddu230/Image-recognization1/internal/models"
)

// historyLimit bounds the history listing to keep responses small.
const historyLimit = 50

type App struct {
	DB            *database.DB
	AnalysisRepo  *database.AnalysisRepository
	VisionService ai.VisionService
	MaxBodySize   int64
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "AI Image Recognition API is running!",
	})
}

type analyzeImageRequest struct {
	Filename    string `json:"filename"`
	ImageBase64 string `json:"image_base64"`
}

// AnalyzeImageHandler runs the full create flow: AI call, parse, build,
// persist. Persistence is the last step, so a failed AI call leaves nothing
// behind.
func (app *App) AnalyzeImageHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, app.MaxBodySize)

	var req analyzeImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if app.VisionService == nil {
		writeError(w, http.StatusInternalServerError, "AI service not configured")
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		log.Printf("Error analyzing image: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to analyze image: %v", err))
		return
	}

	analysisText, err := app.VisionService.AnalyzeImage(r.Context(), imageData)
	if err != nil {
		log.Printf("Error analyzing image: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to analyze image: %v", err))
		return
	}

	parsed := ai.ParseAnalysis(analysisText)
	analysis := models.NewImageAnalysis(req.Filename, req.ImageBase64, analysisText, parsed)

	if err := app.AnalysisRepo.Create(r.Context(), analysis); err != nil {
		log.Printf("Error storing analysis: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to analyze image: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (app *App) AnalysisHistoryHandler(w http.ResponseWriter, r *http.Request) {
	analyses, err := app.AnalysisRepo.List(r.Context(), historyLimit)
	if err != nil {
		log.Printf("Error fetching analysis history: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch analysis history")
		return
	}

	writeJSON(w, http.StatusOK, analyses)
}

func (app *App) GetAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	analysis, err := app.AnalysisRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching analysis: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch analysis")
		return
	}
	if analysis == nil {
		writeError(w, http.StatusNotFound, "Analysis not found")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (app *App) DeleteAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := app.AnalysisRepo.Delete(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting analysis: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete analysis")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Analysis not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Analysis deleted successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
