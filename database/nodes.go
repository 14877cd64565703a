package database

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/siherrmann/lexgraph/core/identity"
	"github.com/siherrmann/lexgraph/helper"
	"github.com/siherrmann/lexgraph/model"
	"github.com/siherrmann/lexgraph/sql"
)

// NodesDBHandlerFunctions defines the interface for node database operations.
type NodesDBHandlerFunctions interface {
	InsertNode(node *model.GraphNode) error
	SelectNode(id string) (*model.GraphNode, error)
	SelectNodesByType(nodeType model.NodeType, limit int) ([]*model.GraphNode, error)
	CountNodesByType(nodeType model.NodeType) (int64, error)
	DeleteNode(id string) error
}

// NodesDBHandler persists (identifier, node-type, properties) triples.
// Identifiers are rewritten for the handler's tenant exactly once, at the
// point they enter the store; callers pass unrewritten IDs.
type NodesDBHandler struct {
	db     *helper.Database
	tenant *identity.TenantID
}

// NewNodesDBHandler creates a new nodes database handler. A nil tenant
// means the default tenant. If force is true, the SQL functions are
// reloaded even if they already exist.
func NewNodesDBHandler(db *helper.Database, tenant *identity.TenantID, force bool) (*NodesDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}
	if tenant == nil {
		tenant = identity.DefaultTenantID
	}

	nodesDbHandler := &NodesDBHandler{
		db:     db,
		tenant: tenant,
	}

	err := sql.LoadNodesSql(nodesDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load nodes sql", err)
	}

	err = nodesDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized NodesDBHandler")

	return nodesDbHandler, nil
}

// CreateTable creates the 'nodes' table and its indexes if they do not
// exist yet.
func (h *NodesDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_nodes();`)
	if err != nil {
		return helper.NewError("initialize nodes table", err)
	}

	h.db.Logger.Info("Checked/created table nodes")

	return nil
}

// InsertNode inserts a node, or merges its properties into the existing
// row when the identifier is already present. The node's ID is updated to
// its tenant-rewritten form.
func (h *NodesDBHandler) InsertNode(node *model.GraphNode) error {
	var embedding interface{}
	if len(node.Embedding) > 0 {
		embedding = pgvector.NewVector(node.Embedding)
	}

	properties := node.Properties
	if properties == nil {
		properties = model.Metadata{}
	}

	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_node($1, $2, $3, $4)`,
		h.tenant.RewriteID(node.ID),
		string(node.Type),
		properties,
		embedding,
	)

	err := row.Scan(
		&node.ID,
		&node.Type,
		&node.Properties,
		&node.CreatedAt,
	)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectNode retrieves a node by its unrewritten identifier.
func (h *NodesDBHandler) SelectNode(id string) (*model.GraphNode, error) {
	node := &model.GraphNode{}
	row := h.db.Instance.QueryRow(
		`SELECT * FROM select_node($1)`,
		h.tenant.RewriteID(id),
	)

	err := row.Scan(
		&node.ID,
		&node.Type,
		&node.Properties,
		&node.CreatedAt,
	)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return node, nil
}

// SelectNodesByType retrieves up to limit nodes of the given type.
func (h *NodesDBHandler) SelectNodesByType(nodeType model.NodeType, limit int) ([]*model.GraphNode, error) {
	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_nodes_by_type($1, $2)`,
		string(nodeType),
		limit,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var nodes []*model.GraphNode
	for rows.Next() {
		node := &model.GraphNode{}
		err := rows.Scan(
			&node.ID,
			&node.Type,
			&node.Properties,
			&node.CreatedAt,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		nodes = append(nodes, node)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return nodes, nil
}

// CountNodesByType returns the number of stored nodes of the given type.
func (h *NodesDBHandler) CountNodesByType(nodeType model.NodeType) (int64, error) {
	var count int64
	err := h.db.Instance.QueryRow(
		`SELECT count_nodes_by_type($1)`,
		string(nodeType),
	).Scan(&count)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}

	return count, nil
}

// DeleteNode deletes a node by its unrewritten identifier.
func (h *NodesDBHandler) DeleteNode(id string) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_node($1)`,
		h.tenant.RewriteID(id),
	)
	if err != nil {
		return helper.NewError("exec", err)
	}
	return nil
}
