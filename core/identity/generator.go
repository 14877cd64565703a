package identity

import (
	"fmt"
	"strings"
)

// chunkIDDelimiter separates text and metadata in chunk ID hashing.
// A null byte cannot appear in valid text content, so it makes the
// concatenation injective.
const chunkIDDelimiter = "\x00"

// sourceIDPrefix is the fixed prefix of all source IDs.
const sourceIDPrefix = "aws"

// Generator produces stable, content-derived identifiers for every node
// type in the graph: sources, chunks, topics, statements, facts and
// entities. A Generator is immutable configuration; one instance typically
// lives for the lifetime of an indexing run and its methods are safe to
// call concurrently.
type Generator struct {
	tenant *TenantID
	// includeClassificationInEntityID controls whether two same-named
	// entities of different classification ("Amazon" the company vs.
	// "Amazon" the river) become distinct graph nodes.
	includeClassificationInEntityID bool
	// useChunkIDDelimiter enables collision-resistant chunk ID hashing.
	// Existing graphs must not change this value or all chunk IDs shift.
	useChunkIDDelimiter bool
}

// NewGenerator creates a Generator for the given tenant. Both booleans are
// explicit: there is no config fallback that could silently swallow a
// false value. A nil tenant means the default tenant.
func NewGenerator(tenant *TenantID, includeClassificationInEntityID bool, useChunkIDDelimiter bool) *Generator {
	if tenant == nil {
		tenant = DefaultTenantID
	}
	return &Generator{
		tenant:                          tenant,
		includeClassificationInEntityID: includeClassificationInEntityID,
		useChunkIDDelimiter:             useChunkIDDelimiter,
	}
}

// Tenant returns the tenant this generator scopes IDs to.
func (g *Generator) Tenant() *TenantID {
	return g.tenant
}

// CreateSourceID builds a source identifier from document text and its
// serialized metadata. Source IDs are content-addressed and deliberately
// NOT tenant-scoped: identical content maps to the same source ID across
// all tenants, and tenant isolation is applied later via RewriteIDForTenant.
func (g *Generator) CreateSourceID(text string, metadataStr string) string {
	return fmt.Sprintf("%s::%s:%s", sourceIDPrefix, Hash(text)[:8], Hash(metadataStr)[:4])
}

// CreateChunkID builds a chunk identifier under its parent source. In the
// default backward-compatible mode text and metadata are concatenated
// directly, which is not injective: ("foo","bar") and ("foob","ar") both
// hash "foobar" and collide. With the delimiter enabled a null byte is
// inserted between the two, preventing boundary collisions.
func (g *Generator) CreateChunkID(sourceID string, text string, metadataStr string) string {
	hashInput := text + metadataStr
	if g.useChunkIDDelimiter {
		hashInput = text + chunkIDDelimiter + metadataStr
	}
	return fmt.Sprintf("%s:%s", sourceID, Hash(hashInput)[:8])
}

// CreateTopicID builds a topic node ID scoped to its source, so identical
// topic text under different sources never collapses into one node.
func (g *Generator) CreateTopicID(sourceID string, topicValue string) string {
	return g.createNodeID("topic", sourceID, topicValue)
}

// CreateStatementID builds a statement node ID scoped to its parent topic.
func (g *Generator) CreateStatementID(topicID string, statementValue string) string {
	return g.createNodeID("statement", topicID, statementValue)
}

// CreateFactID builds a fact node ID from the fact value alone. Facts are
// globally deduplicated within a tenant regardless of source or topic.
func (g *Generator) CreateFactID(factValue string) string {
	return g.createNodeID("fact", factValue, "")
}

// CreateLocalEntityID builds an ID for an entity that only exists because
// it appeared in a relationship line, scoped to its source.
func (g *Generator) CreateLocalEntityID(sourceID string, entityValue string) string {
	return g.createNodeID("local-entity", entityValue, sourceID)
}

// CreateEntityID builds a global entity node ID. The classification is
// part of the identity only when the generator was configured with
// includeClassificationInEntityID.
func (g *Generator) CreateEntityID(entityValue string, entityClassification string) string {
	if g.includeClassificationInEntityID {
		return g.createNodeID("entity", entityValue, entityClassification)
	}
	return g.createNodeID("entity", entityValue, "")
}

// RewriteIDForTenant rewrites id with the tenant-specific format.
func (g *Generator) RewriteIDForTenant(id string) string {
	return g.tenant.RewriteID(id)
}

// createNodeID hashes a node-type tag plus one or two normalized
// components. An empty v2 is omitted from the joined string entirely, not
// just from hashing. The joined string goes through FormatHashable so that
// all node IDs built here are tenant-isolated.
func (g *Generator) createNodeID(nodeType string, v1 string, v2 string) string {
	hashable := fmt.Sprintf("%s::%s", strings.ToLower(nodeType), normalizeIDComponent(v1))
	if v2 != "" {
		hashable = fmt.Sprintf("%s::%s", hashable, normalizeIDComponent(v2))
	}
	return Hash(g.tenant.FormatHashable(hashable))
}

// normalizeIDComponent lowercases a component and replaces spaces with
// underscores so that display-form variants map to the same node.
func normalizeIDComponent(v string) string {
	return strings.ReplaceAll(strings.ToLower(v), " ", "_")
}
