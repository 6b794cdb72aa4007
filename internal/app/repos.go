package app

import (
	"gorm.io/gorm"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	userrepos "github.com/analysisdata/graph-backend/internal/data/repos/user"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type Repos struct {
	User          userrepos.UserRepo
	File          graphrepos.FileRepo
	Grant         graphrepos.UserFileGrantRepo
	Category      graphrepos.CategoryRepo
	AttributeNode graphrepos.AttributeNodeRepo
	AttributeEdge graphrepos.AttributeEdgeRepo
	EntityNode    graphrepos.EntityNodeRepo
	ValueNode     graphrepos.ValueNodeRepo
	EntityEdge    graphrepos.EntityEdgeRepo
	ValueEdge     graphrepos.ValueEdgeRepo
	GraphNode     graphrepos.GraphNodeRepo
	GraphEdge     graphrepos.GraphEdgeRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		User:          userrepos.NewUserRepo(db, log),
		File:          graphrepos.NewFileRepo(db, log),
		Grant:         graphrepos.NewUserFileGrantRepo(db, log),
		Category:      graphrepos.NewCategoryRepo(db, log),
		AttributeNode: graphrepos.NewAttributeNodeRepo(db, log),
		AttributeEdge: graphrepos.NewAttributeEdgeRepo(db, log),
		EntityNode:    graphrepos.NewEntityNodeRepo(db, log),
		ValueNode:     graphrepos.NewValueNodeRepo(db, log),
		EntityEdge:    graphrepos.NewEntityEdgeRepo(db, log),
		ValueEdge:     graphrepos.NewValueEdgeRepo(db, log),
		GraphNode:     graphrepos.NewGraphNodeRepo(db, log),
		GraphEdge:     graphrepos.NewGraphEdgeRepo(db, log),
	}
}
