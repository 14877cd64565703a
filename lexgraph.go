// Package lexgraph builds a lexical graph from documents: it assigns
// stable, content-derived identifiers to sources, chunks, topics,
// statements, facts and entities, and parses the semi-structured
// topic-extraction text produced by an upstream language model into typed
// records ready for graph persistence.
package lexgraph

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/siherrmann/lexgraph/core/extract"
	"github.com/siherrmann/lexgraph/core/identity"
	"github.com/siherrmann/lexgraph/core/pipeline"
	"github.com/siherrmann/lexgraph/database"
	"github.com/siherrmann/lexgraph/helper"
	"github.com/siherrmann/lexgraph/model"
	loadSql "github.com/siherrmann/lexgraph/sql"
)

// defaultMetadataValue is used as the hashable metadata string when a
// document carries no metadata at all.
const defaultMetadataValue = "none"

// LexGraph ties the indexing components together: identifier generation,
// extraction parsing, optional chunking/embedding and optional node
// persistence.
type LexGraph struct {
	Config   model.IndexingConfig
	Tenant   *identity.TenantID
	Identity *identity.Generator
	// Pipeline is the optional chunking/embedding pipeline.
	Pipeline *pipeline.Pipeline
	// DB and Nodes are set by ConnectDatabase; extraction works without them.
	DB    *helper.Database
	Nodes *database.NodesDBHandler
	// Logging
	log *slog.Logger
}

// ExtractionResult is the outcome of turning one document plus its
// extraction text into graph nodes.
type ExtractionResult struct {
	SourceID string
	Topics   *model.TopicCollection
	Nodes    []*model.GraphNode
	// Garbage holds input lines that could not be attributed to any
	// grammar construct; returned for observability, never dropped.
	Garbage []string
}

// NewLexGraph creates a LexGraph for the given indexing configuration.
// The tenant value is validated here; an invalid tenant is the only error
// condition.
func NewLexGraph(config model.IndexingConfig) (*LexGraph, error) {
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	tenant, err := identity.ToTenantID(config.Tenant)
	if err != nil {
		return nil, err
	}

	generator := identity.NewGenerator(
		tenant,
		config.IncludeClassificationInEntityID,
		config.UseChunkIDDelimiter,
	)

	return &LexGraph{
		Config:   config,
		Tenant:   tenant,
		Identity: generator,
		log:      logger,
	}, nil
}

// SetPipeline sets the chunking/embedding pipeline used by IndexDocument.
func (l *LexGraph) SetPipeline(p *pipeline.Pipeline) {
	l.Pipeline = p
}

// ConnectDatabase opens the graph store and initializes the node handler
// for this instance's tenant.
func (l *LexGraph) ConnectDatabase(dbConfig *helper.DatabaseConfiguration) error {
	db := helper.NewDatabase("lexgraph", dbConfig, l.log)

	err := loadSql.Init(db.Instance)
	if err != nil {
		return helper.NewError("initialize database extensions", err)
	}

	nodes, err := database.NewNodesDBHandler(db, l.Tenant, false)
	if err != nil {
		return helper.NewError("create nodes handler", err)
	}

	l.DB = db
	l.Nodes = nodes
	return nil
}

// Close closes the database connection
func (l *LexGraph) Close() error {
	if l.DB != nil {
		return l.DB.Close()
	}
	return nil
}

// ExtractGraphNodes parses extraction text for a document and assigns
// graph identifiers to everything it contains. It is pure: no persistence
// happens, so it can be used without a database connection. The returned
// nodes carry unrewritten identifiers; tenant rewriting happens when they
// enter the store.
func (l *LexGraph) ExtractGraphNodes(docText string, metadataStr string, extractionText string) (*ExtractionResult, error) {
	if metadataStr == "" {
		metadataStr = defaultMetadataValue
	}

	sourceID := l.Identity.CreateSourceID(docText, metadataStr)
	topics, garbage := extract.ParseExtractedTopics(extractionText)

	result := &ExtractionResult{
		SourceID: sourceID,
		Topics:   topics,
		Garbage:  garbage,
	}

	accessed := model.LastAccessedDate()

	for _, topic := range topics.Topics {
		topicID := l.Identity.CreateTopicID(sourceID, topic.Value)
		result.Nodes = append(result.Nodes, &model.GraphNode{
			ID:   topicID,
			Type: model.NodeTypeTopic,
			Properties: mergeProperties(model.Metadata{
				"value":     topic.Value,
				"source_id": sourceID,
			}, accessed),
		})

		for _, entity := range topic.Entities() {
			result.Nodes = append(result.Nodes, l.entityNode(sourceID, entity))
		}

		for _, statement := range topic.Statements {
			statementID := l.Identity.CreateStatementID(topicID, statement.Value)
			result.Nodes = append(result.Nodes, &model.GraphNode{
				ID:   statementID,
				Type: model.NodeTypeStatement,
				Properties: mergeProperties(model.Metadata{
					"value":    statement.Value,
					"topic_id": topicID,
					"details":  statement.Details,
				}, accessed),
			})

			for _, fact := range statement.Facts {
				result.Nodes = append(result.Nodes, l.factNodes(sourceID, statementID, fact)...)
			}
		}
	}

	return result, nil
}

// IndexDocument chunks a document, assigns the source/chunk identifier
// hierarchy, extracts graph nodes from the extraction text and persists
// everything. Returns the number of nodes inserted.
func (l *LexGraph) IndexDocument(doc *model.Document, extractionText string) (int, error) {
	if l.Nodes == nil {
		return 0, helper.NewError("index document", fmt.Errorf("database not connected, use ConnectDatabase() first"))
	}
	if l.Pipeline == nil {
		return 0, helper.NewError("index document", fmt.Errorf("pipeline not set, use SetPipeline() first"))
	}
	if doc.Content == "" {
		return 0, helper.NewError("index document", fmt.Errorf("document content is empty"))
	}

	metadataStr := doc.Metadata.PropertiesString(defaultMetadataValue)
	sourceID := l.Identity.CreateSourceID(doc.Content, metadataStr)

	sourceNode := &model.GraphNode{
		ID:   sourceID,
		Type: model.NodeTypeSource,
		Properties: mergeProperties(model.Metadata{
			"title":  doc.Title,
			"source": doc.Source,
		}, doc.Metadata, model.LastAccessedDate()),
	}
	if err := l.Nodes.InsertNode(sourceNode); err != nil {
		return 0, helper.NewError("insert source node", err)
	}
	inserted := 1

	chunks, embeddings, err := l.Pipeline.Process(doc.Content)
	if err != nil {
		return inserted, helper.NewError("process chunks", err)
	}

	l.log.Info("Processed document into chunks",
		slog.Int("num_chunks", len(chunks)),
		slog.String("source_id", sourceID),
		slog.String("title", doc.Title),
	)

	for i, chunk := range chunks {
		chunkMetadataStr := chunk.Metadata.PropertiesString(defaultMetadataValue)
		chunkNode := &model.GraphNode{
			ID:   l.Identity.CreateChunkID(sourceID, chunk.Content, chunkMetadataStr),
			Type: model.NodeTypeChunk,
			Properties: mergeProperties(model.Metadata{
				"content":     chunk.Content,
				"chunk_index": chunk.ChunkIndex,
				"source_id":   sourceID,
			}, chunk.Metadata),
		}
		if embeddings != nil {
			chunkNode.Embedding = embeddings[i]
		}
		if err := l.Nodes.InsertNode(chunkNode); err != nil {
			return inserted, helper.NewError(fmt.Sprintf("insert chunk %d", i), err)
		}
		inserted++
	}

	extraction, err := l.ExtractGraphNodes(doc.Content, metadataStr, extractionText)
	if err != nil {
		return inserted, helper.NewError("extract graph nodes", err)
	}

	if len(extraction.Garbage) > 0 {
		l.log.Warn("Extraction text contained unparseable lines",
			slog.Int("num_garbage", len(extraction.Garbage)),
			slog.String("source_id", sourceID),
		)
	}

	for _, node := range extraction.Nodes {
		if err := l.Nodes.InsertNode(node); err != nil {
			return inserted, helper.NewError("insert extraction node", err)
		}
		inserted++
	}

	l.log.Info("Indexed document",
		slog.String("source_id", sourceID),
		slog.Int("num_nodes", inserted),
		slog.Int("num_topics", len(extraction.Topics.Topics)),
	)

	return inserted, nil
}

// entityNode builds the graph node for a declared or local entity. Local
// entities are scoped to their source; declared entities are global within
// the tenant.
func (l *LexGraph) entityNode(sourceID string, entity *model.Entity) *model.GraphNode {
	if entity.Classification == extract.LocalEntityClassification {
		return &model.GraphNode{
			ID:   l.Identity.CreateLocalEntityID(sourceID, entity.Value),
			Type: model.NodeTypeLocalEntity,
			Properties: model.Metadata{
				"value":     entity.Value,
				"source_id": sourceID,
			},
		}
	}
	return &model.GraphNode{
		ID:   l.Identity.CreateEntityID(entity.Value, entity.Classification),
		Type: model.NodeTypeEntity,
		Properties: model.Metadata{
			"value":          entity.Value,
			"classification": entity.Classification,
		},
	}
}

// factNodes builds the fact node plus any local-entity nodes the fact
// materialized. The fact value is the readable subject-predicate-object
// form; fact identity depends on it alone, so identical facts deduplicate
// across sources and topics.
func (l *LexGraph) factNodes(sourceID string, statementID string, fact *model.Fact) []*model.GraphNode {
	object := fact.Object
	if object == nil {
		object = fact.Complement
	}

	factValue := fmt.Sprintf("%s %s %s", fact.Subject.Value, fact.Predicate, object.Value)
	nodes := []*model.GraphNode{{
		ID:   l.Identity.CreateFactID(factValue),
		Type: model.NodeTypeFact,
		Properties: model.Metadata{
			"value":        factValue,
			"predicate":    fact.Predicate,
			"statement_id": statementID,
		},
	}}

	if fact.Subject.Classification == extract.LocalEntityClassification {
		nodes = append(nodes, l.entityNode(sourceID, fact.Subject))
	}
	if fact.Complement != nil {
		nodes = append(nodes, l.entityNode(sourceID, fact.Complement))
	}

	return nodes
}

// mergeProperties merges metadata fragments left to right into a fresh
// map; later fragments win on key conflicts.
func mergeProperties(fragments ...model.Metadata) model.Metadata {
	merged := model.Metadata{}
	for _, fragment := range fragments {
		for key, value := range fragment {
			merged[key] = value
		}
	}
	return merged
}
