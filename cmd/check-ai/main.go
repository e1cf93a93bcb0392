package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./imagerec.db"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	fmt.Println("🔍 Checking AI Analysis Results")
	fmt.Println("================================")

	// Check if AI is configured
	openAIKey := os.Getenv("OPENAI_API_KEY")

	if openAIKey == "" {
		fmt.Println("⚠️  WARNING: No AI API key configured!")
		fmt.Println("   Set OPENAI_API_KEY to enable image analysis")
		fmt.Println()
	} else {
		fmt.Println("✅ AI service configured:")
		fmt.Println("   - OpenAI Vision: Enabled")
		fmt.Println()
	}

	// Count stored analyses
	var analysisCount int
	err = db.QueryRow("SELECT COUNT(*) FROM image_analyses").Scan(&analysisCount)
	if err != nil {
		fmt.Println("❌ No image_analyses table found (service not yet used)")
		return
	}
	fmt.Printf("🖼️  Total stored analyses: %d\n\n", analysisCount)

	// Show recent analyses
	rows, err := db.Query(`
		SELECT
			filename,
			objects_detected,
			text_found,
			scene_description,
			confidence
		FROM image_analyses
		ORDER BY timestamp DESC
		LIMIT 5
	`)
	if err != nil {
		log.Fatal("Failed to query analyses:", err)
	}
	defer rows.Close()

	fmt.Println("📊 Recent Analyses:")
	fmt.Println("-------------------")

	count := 0
	for rows.Next() {
		var filename string
		var objectsJSON string
		var textFound string
		var scene string
		var confidence string

		err := rows.Scan(&filename, &objectsJSON, &textFound, &scene, &confidence)
		if err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}

		count++
		fmt.Printf("\n📷 Image: %s\n", filename)

		if objectsJSON != "" && objectsJSON != "[]" {
			var objects []string
			if err := json.Unmarshal([]byte(objectsJSON), &objects); err == nil && len(objects) > 0 {
				fmt.Printf("   🏷️  Objects: ")
				for i, object := range objects {
					if i > 0 {
						fmt.Print(", ")
					}
					fmt.Print(object)
					if i >= 2 {
						fmt.Print("...")
						break
					}
				}
				fmt.Println()
			}
		}

		if textFound != "" && textFound != "None detected" {
			fmt.Printf("   📄 Text: %s\n", textFound)
		}

		if scene != "" {
			fmt.Printf("   🌆 Scene: %.80s\n", scene)
		}

		if confidence != "" {
			fmt.Printf("   🎯 Confidence: %s\n", confidence)
		}
	}

	if count == 0 {
		fmt.Println("No analyses found yet. Upload an image to test!")
	} else {
		fmt.Printf("\n✅ AI integration is working! Found %d recent analyses.\n", count)
	}
}
