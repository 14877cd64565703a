package lexgraph

import (
	"testing"

	"github.com/siherrmann/lexgraph/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExtraction = `topic: Cloud Computing
entities:
Amazon|Company
EC2|Service
proposition: Amazon offers the EC2 compute service
Amazon|offers|EC2
proposition: Amazon operates data centers worldwide
Amazon|operates|data centers
`

func nodesOfType(nodes []*model.GraphNode, nodeType model.NodeType) []*model.GraphNode {
	var filtered []*model.GraphNode
	for _, node := range nodes {
		if node.Type == nodeType {
			filtered = append(filtered, node)
		}
	}
	return filtered
}

func TestNewLexGraph(t *testing.T) {
	t.Run("Default config yields default tenant", func(t *testing.T) {
		lexGraph, err := NewLexGraph(model.DefaultIndexingConfig())
		require.NoError(t, err, "Expected NewLexGraph to not return an error")
		assert.True(t, lexGraph.Tenant.IsDefault(), "Expected the default tenant")
		require.NotNil(t, lexGraph.Identity, "Expected an identity generator")
	})

	t.Run("Custom tenant is validated", func(t *testing.T) {
		config := model.DefaultIndexingConfig()
		config.Tenant = "acme"
		lexGraph, err := NewLexGraph(config)
		require.NoError(t, err)
		assert.Equal(t, "acme", lexGraph.Tenant.Value())

		config.Tenant = "NOT VALID"
		_, err = NewLexGraph(config)
		assert.Error(t, err, "Expected an invalid tenant to be rejected")
	})
}

func TestExtractGraphNodes(t *testing.T) {
	lexGraph, err := NewLexGraph(model.DefaultIndexingConfig())
	require.NoError(t, err)

	t.Run("Extraction produces the full node hierarchy", func(t *testing.T) {
		result, err := lexGraph.ExtractGraphNodes("document text", "author:someone", sampleExtraction)
		require.NoError(t, err, "Expected ExtractGraphNodes to not return an error")
		assert.Empty(t, result.Garbage, "Expected no garbage for well-formed extraction text")
		assert.Regexp(t, `^aws::[0-9a-f]{8}:[0-9a-f]{4}$`, result.SourceID, "Expected a content-addressed source id")

		require.Len(t, result.Topics.Topics, 1, "Expected one topic")

		topics := nodesOfType(result.Nodes, model.NodeTypeTopic)
		statements := nodesOfType(result.Nodes, model.NodeTypeStatement)
		facts := nodesOfType(result.Nodes, model.NodeTypeFact)
		entities := nodesOfType(result.Nodes, model.NodeTypeEntity)
		localEntities := nodesOfType(result.Nodes, model.NodeTypeLocalEntity)

		assert.Len(t, topics, 1, "Expected one topic node")
		assert.Len(t, statements, 2, "Expected one node per proposition")
		assert.Len(t, facts, 2, "Expected one fact node per relationship line")
		assert.Len(t, entities, 2, "Expected a node per declared entity")
		assert.Len(t, localEntities, 1, "Expected the undeclared object as a local entity")

		assert.Equal(t, "Cloud Computing", topics[0].Properties["value"])
		assert.Equal(t, result.SourceID, topics[0].Properties["source_id"], "Expected the topic to reference its source")
		assert.Equal(t, "data centers", localEntities[0].Properties["value"])
	})

	t.Run("Extraction is deterministic", func(t *testing.T) {
		first, err := lexGraph.ExtractGraphNodes("document text", "author:someone", sampleExtraction)
		require.NoError(t, err)
		second, err := lexGraph.ExtractGraphNodes("document text", "author:someone", sampleExtraction)
		require.NoError(t, err)

		require.Equal(t, len(first.Nodes), len(second.Nodes))
		for i := range first.Nodes {
			assert.Equal(t, first.Nodes[i].ID, second.Nodes[i].ID, "Expected node %d to get the same id on every run", i)
		}
	})

	t.Run("Fact values read as subject predicate object", func(t *testing.T) {
		result, err := lexGraph.ExtractGraphNodes("document text", "meta", sampleExtraction)
		require.NoError(t, err)

		facts := nodesOfType(result.Nodes, model.NodeTypeFact)
		require.Len(t, facts, 2)
		assert.Equal(t, "Amazon offers EC2", facts[0].Properties["value"])
		assert.Equal(t, "Amazon operates data centers", facts[1].Properties["value"])
	})

	t.Run("Empty metadata falls back to a default hashable", func(t *testing.T) {
		withEmpty, err := lexGraph.ExtractGraphNodes("document text", "", sampleExtraction)
		require.NoError(t, err)
		withDefault, err := lexGraph.ExtractGraphNodes("document text", "none", sampleExtraction)
		require.NoError(t, err)
		assert.Equal(t, withDefault.SourceID, withEmpty.SourceID, "Expected empty metadata to hash like the default value")
	})

	t.Run("Garbage lines are reported, not dropped", func(t *testing.T) {
		result, err := lexGraph.ExtractGraphNodes("document text", "meta", "complete nonsense\n"+sampleExtraction)
		require.NoError(t, err)
		require.Len(t, result.Garbage, 1)
		assert.Equal(t, "complete nonsense", result.Garbage[0])
	})

	t.Run("Tenants produce different node ids for the same content", func(t *testing.T) {
		acmeConfig := model.DefaultIndexingConfig()
		acmeConfig.Tenant = "acme"
		acmeGraph, err := NewLexGraph(acmeConfig)
		require.NoError(t, err)

		defaultResult, err := lexGraph.ExtractGraphNodes("document text", "meta", sampleExtraction)
		require.NoError(t, err)
		acmeResult, err := acmeGraph.ExtractGraphNodes("document text", "meta", sampleExtraction)
		require.NoError(t, err)

		assert.Equal(t, defaultResult.SourceID, acmeResult.SourceID, "Expected source ids to be tenant independent")

		defaultTopics := nodesOfType(defaultResult.Nodes, model.NodeTypeTopic)
		acmeTopics := nodesOfType(acmeResult.Nodes, model.NodeTypeTopic)
		require.Len(t, defaultTopics, 1)
		require.Len(t, acmeTopics, 1)
		assert.NotEqual(t, defaultTopics[0].ID, acmeTopics[0].ID, "Expected topic ids to be tenant scoped")
	})
}

func TestIndexDocumentPreconditions(t *testing.T) {
	lexGraph, err := NewLexGraph(model.DefaultIndexingConfig())
	require.NoError(t, err)

	t.Run("Indexing without a database connection fails", func(t *testing.T) {
		doc := &model.Document{Title: "Test", Content: "Some content."}
		_, err := lexGraph.IndexDocument(doc, sampleExtraction)
		assert.Error(t, err, "Expected indexing without ConnectDatabase to fail")
		assert.Contains(t, err.Error(), "database not connected")
	})
}
