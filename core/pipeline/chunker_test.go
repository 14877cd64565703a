package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceChunker(t *testing.T) {
	t.Run("Sentences are grouped up to the maximum", func(t *testing.T) {
		chunker := SentenceChunker(2)
		chunks, err := chunker("First sentence. Second sentence. Third sentence.")
		require.NoError(t, err)
		require.Len(t, chunks, 2, "Expected three sentences in groups of two")

		assert.Equal(t, "First sentence. Second sentence.", chunks[0].Content)
		assert.Equal(t, "Third sentence.", chunks[1].Content)
		assert.Equal(t, 0, chunks[0].ChunkIndex)
		assert.Equal(t, 1, chunks[1].ChunkIndex)
	})

	t.Run("Question and exclamation marks end sentences", func(t *testing.T) {
		chunker := SentenceChunker(1)
		chunks, err := chunker("Really? Yes! Fine.")
		require.NoError(t, err)
		require.Len(t, chunks, 3)
		assert.Equal(t, "Really?", chunks[0].Content)
		assert.Equal(t, "Yes!", chunks[1].Content)
		assert.Equal(t, "Fine.", chunks[2].Content)
	})

	t.Run("Chunk metadata records the method", func(t *testing.T) {
		chunker := SentenceChunker(5)
		chunks, err := chunker("One. Two. Three.")
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "sentence", chunks[0].Metadata["chunking_method"])
		assert.Equal(t, 3, chunks[0].Metadata["num_sentences"])
	})

	t.Run("Empty text yields no chunks", func(t *testing.T) {
		chunker := SentenceChunker(2)
		chunks, err := chunker("   \n  ")
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("Non-positive maximum is rejected", func(t *testing.T) {
		chunker := SentenceChunker(0)
		_, err := chunker("Some text.")
		assert.Error(t, err, "Expected a zero maximum to be rejected")
	})
}

func TestParagraphChunker(t *testing.T) {
	t.Run("Paragraphs split on blank lines", func(t *testing.T) {
		chunker := ParagraphChunker()
		chunks, err := chunker("First paragraph.\n\nSecond paragraph.\n\nThird paragraph.")
		require.NoError(t, err)
		require.Len(t, chunks, 3)
		assert.Equal(t, "First paragraph.", chunks[0].Content)
		assert.Equal(t, "Second paragraph.", chunks[1].Content)
		assert.Equal(t, "Third paragraph.", chunks[2].Content)
	})

	t.Run("Blank paragraphs are skipped without index gaps", func(t *testing.T) {
		chunker := ParagraphChunker()
		chunks, err := chunker("First.\n\n\n\nSecond.")
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, 0, chunks[0].ChunkIndex)
		assert.Equal(t, 1, chunks[1].ChunkIndex, "Expected contiguous chunk indexes")
	})

	t.Run("Chunk metadata records the method", func(t *testing.T) {
		chunker := ParagraphChunker()
		chunks, err := chunker("Only paragraph.")
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "paragraph", chunks[0].Metadata["chunking_method"])
	})
}
