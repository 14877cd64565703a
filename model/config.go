package model

// IndexingConfig holds the immutable configuration of one indexing run.
// Both booleans are explicit; there is no "unset falls back to a global
// default" behavior, so passing false always means false.
type IndexingConfig struct {
	// Tenant is the tenant discriminator value. Empty means the default
	// tenant. Validation happens when the config is turned into a
	// TenantID, not here.
	Tenant string `json:"tenant,omitempty"`

	// IncludeClassificationInEntityID makes the entity classification part
	// of the entity node identity, so "Amazon|Company" and "Amazon|River"
	// become distinct nodes.
	IncludeClassificationInEntityID bool `json:"include_classification_in_entity_id"`

	// UseChunkIDDelimiter enables collision-resistant chunk ID hashing.
	// Existing graphs must keep their original setting or all chunk IDs
	// shift; new graphs should enable it.
	UseChunkIDDelimiter bool `json:"use_chunk_id_delimiter"`
}

// DefaultIndexingConfig returns the backward-compatible defaults: default
// tenant, classification included in entity identity, no chunk ID
// delimiter.
func DefaultIndexingConfig() IndexingConfig {
	return IndexingConfig{
		Tenant:                          "",
		IncludeClassificationInEntityID: true,
		UseChunkIDDelimiter:             false,
	}
}
