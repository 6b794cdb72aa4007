package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/analysisdata/graph-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Identity
		&types.User{},

		// Upload provenance + access control
		&types.Category{},
		&types.FileEntity{},
		&types.UserFileGrant{},

		// EAV graph: node side
		&types.AttributeNode{},
		&types.EntityNode{},
		&types.ValueNode{},

		// EAV graph: edge side
		&types.AttributeEdge{},
		&types.EntityEdge{},
		&types.ValueEdge{},
	)
}

// EnsureGraphIndexes creates the indexes the ingestion and read paths
// depend on. The unique attribute-name indexes back the insert-or-get
// semantics of the attribute resolver.
func EnsureGraphIndexes(db *gorm.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"idx_attribute_node_name", `CREATE UNIQUE INDEX IF NOT EXISTS idx_attribute_node_name ON attribute_node(name);`},
		{"idx_attribute_edge_name", `CREATE UNIQUE INDEX IF NOT EXISTS idx_attribute_edge_name ON attribute_edge(name);`},
		{"idx_entity_node_name", `CREATE INDEX IF NOT EXISTS idx_entity_node_name ON entity_node(name);`},
		{"idx_entity_node_file_id", `CREATE INDEX IF NOT EXISTS idx_entity_node_file_id ON entity_node(file_id);`},
		{"idx_value_node_entity_id", `CREATE INDEX IF NOT EXISTS idx_value_node_entity_id ON value_node(entity_id);`},
		{"idx_entity_edge_source", `CREATE INDEX IF NOT EXISTS idx_entity_edge_source ON entity_edge(source_entity_id);`},
		{"idx_entity_edge_target", `CREATE INDEX IF NOT EXISTS idx_entity_edge_target ON entity_edge(target_entity_id);`},
		{"idx_value_edge_edge_id", `CREATE INDEX IF NOT EXISTS idx_value_edge_edge_id ON value_edge(edge_id);`},
		{"idx_user_file_grant_pair", `CREATE UNIQUE INDEX IF NOT EXISTS idx_user_file_grant_pair ON user_file_grant(user_id, file_id);`},
	}
	for _, s := range stmts {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", s.name, err)
		}
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureGraphIndexes(s.db); err != nil {
		s.log.Error("Graph index migration failed", "error", err)
		return err
	}
	return nil
}
