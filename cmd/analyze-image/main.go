package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Siddu230/Image-recognization1/internal/ai"
	"github.com/Siddu230/Image-recognization1/internal/database"
	"github.com/Siddu230/Image-recognization1/internal/models"
)

func main() {
	var (
		imagePath = flag.String("file", "", "Path to the image file to analyze")
		save      = flag.Bool("save", false, "Store the analysis in the database")
	)
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("Please provide an image file with -file flag")
	}

	imageData, err := os.ReadFile(*imagePath)
	if err != nil {
		log.Fatal("Failed to read image file:", err)
	}

	aiConfig := &ai.Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),
	}

	visionService, err := ai.NewVisionService(aiConfig)
	if err != nil {
		log.Fatal("Failed to initialize vision service:", err)
	}

	filename := filepath.Base(*imagePath)
	fmt.Printf("Analyzing image: %s (%d bytes)\n\n", filename, len(imageData))

	ctx := context.Background()
	analysisText, err := visionService.AnalyzeImage(ctx, imageData)
	if err != nil {
		log.Fatal("Failed to analyze image:", err)
	}

	parsed := ai.ParseAnalysis(analysisText)

	fmt.Println("Raw analysis:")
	fmt.Println("-------------")
	fmt.Println(analysisText)
	fmt.Println()
	fmt.Println("Parsed fields:")
	fmt.Println("--------------")
	fmt.Printf("Objects:    %s\n", strings.Join(parsed.Objects, ", "))
	fmt.Printf("Text:       %s\n", parsed.Text)
	fmt.Printf("Emotions:   %s\n", strings.Join(parsed.Emotions, ", "))
	fmt.Printf("Scene:      %s\n", parsed.Scene)
	fmt.Printf("Confidence: %s\n", parsed.Confidence)

	if !*save {
		return
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./imagerec.db"
	}

	db, err := database.NewDB(database.Config{Type: "sqlite", SQLitePath: dbPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	repo := database.NewAnalysisRepository(db)
	imageBase64 := base64.StdEncoding.EncodeToString(imageData)
	analysis := models.NewImageAnalysis(filename, imageBase64, analysisText, parsed)

	if err := repo.Create(ctx, analysis); err != nil {
		log.Fatal("Failed to store analysis:", err)
	}

	fmt.Printf("\nStored analysis %s\n", analysis.ID)
}
