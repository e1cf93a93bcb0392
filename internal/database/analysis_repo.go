package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Siddu230/Image-recognization1/internal/models"
)

type AnalysisRepository struct {
	db *DB
}

func NewAnalysisRepository(db *DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create persists a finished analysis. This is the only write in the create
// flow, so a record is either fully stored or not stored at all.
func (r *AnalysisRepository) Create(ctx context.Context, analysis *models.ImageAnalysis) error {
	objectsJSON, err := marshalList(analysis.ObjectsDetected)
	if err != nil {
		return fmt.Errorf("failed to marshal objects: %w", err)
	}
	emotionsJSON, err := marshalList(analysis.Emotions)
	if err != nil {
		return fmt.Errorf("failed to marshal emotions: %w", err)
	}

	query := `
		INSERT INTO image_analyses (
			id, filename, image_base64, analysis, objects_detected,
			text_found, emotions, scene_description, confidence, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.conn.ExecContext(ctx, query,
		analysis.ID,
		analysis.Filename,
		analysis.ImageBase64,
		analysis.Analysis,
		objectsJSON,
		analysis.TextFound,
		emotionsJSON,
		analysis.SceneDescription,
		analysis.Confidence,
		analysis.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}

// GetByID returns the analysis with the given id, or (nil, nil) when absent.
func (r *AnalysisRepository) GetByID(ctx context.Context, id string) (*models.ImageAnalysis, error) {
	query := `
		SELECT id, filename, image_base64, analysis, objects_detected,
			   text_found, emotions, scene_description, confidence, timestamp
		FROM image_analyses
		WHERE id = $1`

	analysis, err := scanAnalysis(r.db.conn.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return analysis, nil
}

// List returns up to limit analyses, most recent first.
func (r *AnalysisRepository) List(ctx context.Context, limit int) ([]*models.ImageAnalysis, error) {
	query := `
		SELECT id, filename, image_base64, analysis, objects_detected,
			   text_found, emotions, scene_description, confidence, timestamp
		FROM image_analyses
		ORDER BY timestamp DESC
		LIMIT $1`

	rows, err := r.db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	analyses := []*models.ImageAnalysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}

	return analyses, nil
}

// Delete removes the analysis with the given id and reports whether a record
// was actually deleted.
func (r *AnalysisRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.conn.ExecContext(ctx, `DELETE FROM image_analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalysis(row rowScanner) (*models.ImageAnalysis, error) {
	analysis := &models.ImageAnalysis{}
	var objectsJSON, emotionsJSON string

	err := row.Scan(
		&analysis.ID,
		&analysis.Filename,
		&analysis.ImageBase64,
		&analysis.Analysis,
		&objectsJSON,
		&analysis.TextFound,
		&emotionsJSON,
		&analysis.SceneDescription,
		&analysis.Confidence,
		&analysis.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	analysis.ObjectsDetected = unmarshalList(objectsJSON)
	analysis.Emotions = unmarshalList(emotionsJSON)
	return analysis, nil
}

func marshalList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalList(data string) []string {
	items := []string{}
	if data == "" {
		return items
	}
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return []string{}
	}
	if items == nil {
		items = []string{}
	}
	return items
}
