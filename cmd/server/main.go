package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/Siddu230/Image-recognization1/internal/ai"
	"github.com/Siddu230/Image-recognization1/internal/api"
	"github.com/Siddu230/Image-recognization1/internal/database"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	maxBodySize := os.Getenv("MAX_BODY_SIZE")
	if maxBodySize == "" {
		maxBodySize = "10485760"
	}
	maxSize, err := strconv.ParseInt(maxBodySize, 10, 64)
	if err != nil {
		log.Fatal("Invalid MAX_BODY_SIZE:", err)
	}

	// Database configuration
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var dbConfig database.Config
	dbConfig.Type = dbType

	if dbType == "postgres" {
		dbConfig.Host = os.Getenv("DB_HOST")
		if dbConfig.Host == "" {
			dbConfig.Host = "localhost"
		}

		dbPortStr := os.Getenv("DB_PORT")
		if dbPortStr == "" {
			dbPortStr = "5432"
		}
		dbPort, err := strconv.Atoi(dbPortStr)
		if err != nil {
			log.Fatal("Invalid DB_PORT:", err)
		}
		dbConfig.Port = dbPort

		dbConfig.User = os.Getenv("DB_USER")
		if dbConfig.User == "" {
			dbConfig.User = "imagerec"
		}

		dbConfig.Password = os.Getenv("DB_PASSWORD")
		if dbConfig.Password == "" {
			dbConfig.Password = "imagerec_dev"
		}

		dbConfig.Name = os.Getenv("DB_NAME")
		if dbConfig.Name == "" {
			dbConfig.Name = "imagerec"
		}
	} else {
		dbConfig.SQLitePath = os.Getenv("DB_PATH")
		if dbConfig.SQLitePath == "" {
			dbConfig.SQLitePath = "./imagerec.db"
		}
	}

	db, err := database.NewDB(dbConfig)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}

	if dbType == "postgres" {
		log.Printf("Running database migrations from %s", migrationsPath)
		if err := db.RunMigrations(migrationsPath); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
	}

	analysisRepo := database.NewAnalysisRepository(db)

	aiConfig := &ai.Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),
	}

	var visionService ai.VisionService
	if aiConfig.OpenAIAPIKey != "" {
		visionService, err = ai.NewVisionService(aiConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize vision service: %v", err)
		}
	} else {
		log.Printf("AI service not configured. Set OPENAI_API_KEY to enable image analysis")
	}

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	var origins []string
	for _, origin := range strings.Split(corsOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	app := &api.App{
		DB:            db,
		AnalysisRepo:  analysisRepo,
		VisionService: visionService,
		MaxBodySize:   maxSize,
	}

	router := api.NewRouter(app, origins)

	log.Printf("Server starting on port %s", port)
	log.Printf("Database type: %s", dbType)
	if dbType == "postgres" {
		log.Printf("Database connection: %s@%s:%d/%s", dbConfig.User, dbConfig.Host, dbConfig.Port, dbConfig.Name)
	} else {
		log.Printf("Database path: %s", dbConfig.SQLitePath)
	}
	log.Printf("CORS origins: %s", corsOrigins)
	log.Printf("Max request body size: %d bytes", maxSize)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
