package model

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Document is a raw (text, metadata) pair entering the indexing pipeline.
// The ingestion layer owns the metadata format; the core treats its
// serialized form as an opaque string when deriving source IDs.
type Document struct {
	RID       uuid.UUID `json:"rid"`
	Title     string    `json:"title"`
	Source    string    `json:"source,omitempty"`
	Content   string    `json:"content,omitempty"`
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDocumentFromFile reads a file and creates a Document with the file content
// The title defaults to the filename, and source to the file path
func NewDocumentFromFile(filePath string, metadata Metadata) (*Document, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	// Get filename without extension for default title
	filename := filepath.Base(filePath)
	title := filename[:len(filename)-len(filepath.Ext(filename))]
	if title == "" {
		title = filename
	}

	return &Document{
		RID:      uuid.New(),
		Title:    title,
		Source:   filePath,
		Content:  string(content),
		Metadata: metadata,
	}, nil
}
