package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prepareLocalModelDir simulates an already-downloaded model so that
// PrepareModel short-circuits without touching the network.
func prepareLocalModelDir(t *testing.T, sanitizedName string) string {
	t.Helper()
	modelPath := filepath.Join("./models", sanitizedName)
	err := os.MkdirAll(modelPath, 0750)
	require.NoError(t, err, "Expected local model directory creation to succeed")
	t.Cleanup(func() { os.RemoveAll(modelPath) })
	return modelPath
}

func TestPrepareModel(t *testing.T) {
	t.Run("Existing model is returned without downloading", func(t *testing.T) {
		expected := prepareLocalModelDir(t, "lexgraph-test_embedder")

		path, err := PrepareModel("lexgraph-test/embedder", "")
		assert.NoError(t, err, "Expected PrepareModel to not return an error for an existing model")
		assert.Equal(t, expected, path, "Expected the existing model path back")
	})

	t.Run("Slashes in the model name are sanitized", func(t *testing.T) {
		expected := prepareLocalModelDir(t, "some-org_some-model")

		path, err := PrepareModel("some-org/some-model", "")
		assert.NoError(t, err, "Expected PrepareModel to not return an error")
		assert.Equal(t, expected, path, "Expected the org/name separator to become an underscore")
	})

	t.Run("Model name without a slash is used directly", func(t *testing.T) {
		expected := prepareLocalModelDir(t, "plain-model")

		path, err := PrepareModel("plain-model", "")
		assert.NoError(t, err, "Expected PrepareModel to not return an error")
		assert.Equal(t, expected, path, "Expected the model name to be the directory name")
	})

	t.Run("Onnx file path does not change an existing model lookup", func(t *testing.T) {
		expected := prepareLocalModelDir(t, "lexgraph-test_onnx-variant")

		path, err := PrepareModel("lexgraph-test/onnx-variant", "onnx/model.onnx")
		assert.NoError(t, err, "Expected PrepareModel with an onnx path to not return an error")
		assert.Equal(t, expected, path, "Expected the onnx path to only matter for downloads")
	})

	t.Run("Download of the default embedding model", func(t *testing.T) {
		// Depends on network access and disk space, so a failure to fetch
		// is tolerated as long as it is reported as one.
		modelName := "sentence-transformers/all-MiniLM-L6-v2"
		os.RemoveAll(filepath.Join("./models", "sentence-transformers_all-MiniLM-L6-v2"))

		path, err := PrepareModel(modelName, "onnx/model.onnx")
		if err != nil {
			assert.Contains(t, err.Error(), "failed to", "Expected a download failure to be wrapped")
		} else {
			assert.NotEmpty(t, path, "Expected a model path after download")
			assert.DirExists(t, path, "Expected the downloaded model directory to exist")
		}
	})
}
