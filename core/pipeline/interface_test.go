package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineProcess(t *testing.T) {
	t.Run("Without embedder only chunks are returned", func(t *testing.T) {
		pipeline := NewPipeline(SentenceChunker(1), nil)
		chunks, embeddings, err := pipeline.Process("One. Two.")
		require.NoError(t, err)
		assert.Len(t, chunks, 2)
		assert.Nil(t, embeddings, "Expected no embeddings without an embedder")
	})

	t.Run("With embedder one vector per chunk is returned", func(t *testing.T) {
		embedder := func(text string) ([]float32, error) {
			return []float32{float32(len(text))}, nil
		}
		pipeline := NewPipeline(SentenceChunker(1), embedder)

		chunks, embeddings, err := pipeline.Process("One. Two. Three.")
		require.NoError(t, err)
		require.Len(t, chunks, 3)
		require.Len(t, embeddings, 3, "Expected one embedding per chunk")
		for i, chunk := range chunks {
			assert.Equal(t, float32(len(chunk.Content)), embeddings[i][0], "Expected embedding %d to match its chunk", i)
		}
	})

	t.Run("Chunker error aborts processing", func(t *testing.T) {
		failing := func(text string) ([]Chunk, error) {
			return nil, fmt.Errorf("chunker failed")
		}
		pipeline := NewPipeline(failing, nil)
		_, _, err := pipeline.Process("text")
		assert.Error(t, err)
	})

	t.Run("Embedder error aborts processing", func(t *testing.T) {
		failing := func(text string) ([]float32, error) {
			return nil, fmt.Errorf("embedder failed")
		}
		pipeline := NewPipeline(SentenceChunker(1), failing)
		_, _, err := pipeline.Process("One. Two.")
		assert.Error(t, err)
	})
}
