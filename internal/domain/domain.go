package domain

import (
	"github.com/analysisdata/graph-backend/internal/domain/graph"
	"github.com/analysisdata/graph-backend/internal/domain/user"
)

type AttributeNode = graph.AttributeNode
type AttributeEdge = graph.AttributeEdge
type EntityNode = graph.EntityNode
type ValueNode = graph.ValueNode
type EntityEdge = graph.EntityEdge
type ValueEdge = graph.ValueEdge
type FileEntity = graph.FileEntity
type UserFileGrant = graph.UserFileGrant
type Category = graph.Category

type User = user.User

const (
	RoleDataAnalyst = user.RoleDataAnalyst
	RoleDataAdmin   = user.RoleDataAdmin
	RoleAdmin       = user.RoleAdmin
)
