package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fnziad/ZeroTex/pkg/models"
)

// ResumeKey is the row the working document is stored under.
const ResumeKey = "resumeData"

// ErrCorruptDocument is returned alongside the default document when the
// stored row cannot be decoded.
var ErrCorruptDocument = errors.New("stored resume is corrupt")

// SaveResume stores the whole document under ResumeKey.
func SaveResume(data *models.ResumeData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	return SaveDocument(ResumeKey, raw)
}

// LoadResume returns the stored document. A missing row yields the default
// document. A corrupt row yields the default document and ErrCorruptDocument.
func LoadResume() (*models.ResumeData, error) {
	raw, _, err := GetDocument(ResumeKey)
	if errors.Is(err, sql.ErrNoRows) {
		d := models.DefaultResumeData()
		return &d, nil
	}
	if err != nil {
		return nil, err
	}

	var data models.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		d := models.DefaultResumeData()
		return &d, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return &data, nil
}

// DeleteResume removes the stored document.
func DeleteResume() error {
	return DeleteDocument(ResumeKey)
}

// SaveDocument upserts a raw blob.
func SaveDocument(key string, raw []byte) error {
	query := `INSERT INTO documents (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	if _, err := DB.Exec(query, key, string(raw)); err != nil {
		return fmt.Errorf("failed to save document %s: %w", key, err)
	}
	return nil
}

// GetDocument returns a raw blob and when it was last written.
// A missing key returns sql.ErrNoRows.
func GetDocument(key string) ([]byte, time.Time, error) {
	var (
		data      string
		updatedAt time.Time
	)
	err := DB.QueryRow(`SELECT data, updated_at FROM documents WHERE key = ?`, key).Scan(&data, &updatedAt)
	if err != nil {
		return nil, time.Time{}, err
	}
	return []byte(data), updatedAt, nil
}

func DeleteDocument(key string) error {
	_, err := DB.Exec(`DELETE FROM documents WHERE key = ?`, key)
	return err
}
