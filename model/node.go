package model

import "time"

// NodeType identifies the kind of graph node an identifier names.
type NodeType string

const (
	NodeTypeSource      NodeType = "source"
	NodeTypeChunk       NodeType = "chunk"
	NodeTypeTopic       NodeType = "topic"
	NodeTypeStatement   NodeType = "statement"
	NodeTypeFact        NodeType = "fact"
	NodeTypeEntity      NodeType = "entity"
	NodeTypeLocalEntity NodeType = "local-entity"
)

// GraphNode is the (identifier, node-type, properties) triple handed to
// the graph-persistence layer. Embedding is optional and only populated
// for node types that carry text worth vectorizing.
type GraphNode struct {
	ID         string    `json:"id"`
	Type       NodeType  `json:"node_type"`
	Properties Metadata  `json:"properties,omitempty"`
	Embedding  []float32 `json:"embedding,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
