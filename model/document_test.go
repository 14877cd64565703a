package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentFromFile(t *testing.T) {
	t.Run("Document is created from file content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sample_report.txt")
		err := os.WriteFile(path, []byte("Some document content."), 0600)
		require.NoError(t, err)

		doc, err := NewDocumentFromFile(path, Metadata{"author": "someone"})
		require.NoError(t, err, "Expected NewDocumentFromFile to not return an error")
		assert.Equal(t, "sample_report", doc.Title, "Expected the title to default to the filename without extension")
		assert.Equal(t, path, doc.Source, "Expected the source to be the file path")
		assert.Equal(t, "Some document content.", doc.Content)
		assert.Equal(t, "someone", doc.Metadata["author"])
		assert.NotEqual(t, doc.RID.String(), "00000000-0000-0000-0000-000000000000", "Expected a generated RID")
	})

	t.Run("Missing file returns an error", func(t *testing.T) {
		_, err := NewDocumentFromFile(filepath.Join(t.TempDir(), "missing.txt"), nil)
		assert.Error(t, err, "Expected a missing file to be reported")
	})
}
