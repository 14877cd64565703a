package pipeline

import (
	"fmt"
	"strings"

	"github.com/siherrmann/lexgraph/model"
)

// SentenceChunker creates a chunker that groups up to maxSentencesPerChunk
// sentences per chunk.
func SentenceChunker(maxSentencesPerChunk int) ChunkFunc {
	return func(text string) ([]Chunk, error) {
		if maxSentencesPerChunk <= 0 {
			return nil, fmt.Errorf("max sentences per chunk must be positive")
		}

		// Handle empty or whitespace-only text
		if strings.TrimSpace(text) == "" {
			return []Chunk{}, nil
		}

		sentences := splitSentences(text)

		var chunks []Chunk
		var current []string
		chunkIdx := 0
		pos := 0

		flush := func() {
			content := strings.Join(current, " ")
			chunks = append(chunks, Chunk{
				Content:    content,
				ChunkIndex: chunkIdx,
				StartPos:   pos,
				EndPos:     pos + len(content),
				Metadata: model.Metadata{
					"chunking_method": "sentence",
					"num_sentences":   len(current),
				},
			})
			pos += len(content)
			current = nil
			chunkIdx++
		}

		for _, sentence := range sentences {
			current = append(current, sentence)
			if len(current) >= maxSentencesPerChunk {
				flush()
			}
		}
		if len(current) > 0 {
			flush()
		}

		return chunks, nil
	}
}

// ParagraphChunker creates a chunker that splits on blank lines.
func ParagraphChunker() ChunkFunc {
	return func(text string) ([]Chunk, error) {
		paragraphs := strings.Split(text, "\n\n")

		var chunks []Chunk
		pos := 0
		chunkIdx := 0

		for _, para := range paragraphs {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}

			chunks = append(chunks, Chunk{
				Content:    para,
				ChunkIndex: chunkIdx,
				StartPos:   pos,
				EndPos:     pos + len(para),
				Metadata: model.Metadata{
					"chunking_method": "paragraph",
				},
			})

			pos += len(para) + 2 // Account for "\n\n"
			chunkIdx++
		}

		return chunks, nil
	}
}

// splitSentences splits text on sentence-ending punctuation followed by a
// space, dropping empty results.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "! ", "!|")
	text = strings.ReplaceAll(text, "? ", "?|")
	text = strings.ReplaceAll(text, ". ", ".|")

	var sentences []string
	for _, s := range strings.Split(text, "|") {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
