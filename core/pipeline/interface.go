package pipeline

import "github.com/siherrmann/lexgraph/model"

// ChunkFunc splits document text into chunks. Each chunk carries its own
// metadata, which is serialized and hashed into the chunk ID together with
// the chunk text.
type ChunkFunc func(text string) ([]Chunk, error)

// EmbedFunc generates an embedding vector for text.
type EmbedFunc func(text string) ([]float32, error)

// Chunk is one slice of a document produced by a ChunkFunc.
type Chunk struct {
	Content    string
	ChunkIndex int
	StartPos   int
	EndPos     int
	Metadata   model.Metadata
}

// Pipeline combines chunking and embedding. The embedder is optional;
// without one, chunk nodes are persisted without vectors.
type Pipeline struct {
	Chunker  ChunkFunc
	Embedder EmbedFunc
}

// NewPipeline creates a new processing pipeline.
func NewPipeline(chunker ChunkFunc, embedder EmbedFunc) *Pipeline {
	return &Pipeline{
		Chunker:  chunker,
		Embedder: embedder,
	}
}

// Process splits text into chunks and, when an embedder is set, attaches
// an embedding to each chunk's metadata-producing result.
func (p *Pipeline) Process(text string) ([]Chunk, [][]float32, error) {
	chunks, err := p.Chunker(text)
	if err != nil {
		return nil, nil, err
	}

	if p.Embedder == nil {
		return chunks, nil, nil
	}

	embeddings := make([][]float32, 0, len(chunks))
	for _, chunk := range chunks {
		embedding, err := p.Embedder(chunk.Content)
		if err != nil {
			return nil, nil, err
		}
		embeddings = append(embeddings, embedding)
	}

	return chunks, embeddings, nil
}
