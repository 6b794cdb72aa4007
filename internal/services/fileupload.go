package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/ingestion"
	"github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/ctxutil"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// FileUploadService runs the CSV ingestion pipeline. Batches commit as
// they flush: a failure mid-stream aborts the rest of the file and leaves
// the already-flushed rows in place, with the file record marking the
// partial ingest. A node upload creates that provenance record and stamps
// the row/skip counters onto it after the stream completes. An edge upload
// only connects entities that already exist, so it carries no record of
// its own; its counters are returned to the caller directly.
type FileUploadService interface {
	UploadNodeFile(ctx context.Context, fileName, idColumn string, categoryID int, r io.Reader) (*types.FileEntity, *ingestion.Stats, error)
	UploadEdgeFile(ctx context.Context, fromColumn, toColumn string, r io.Reader) (*ingestion.Stats, error)
}

type fileUploadService struct {
	db            *gorm.DB
	log           *logger.Logger
	fileRepo      graphrepos.FileRepo
	categoryRepo  graphrepos.CategoryRepo
	nodeStore     *nodeStore
	edgeStore     *edgeStore
	nodeResolver  *ingestion.AttributeResolver
	edgeResolver  *ingestion.AttributeResolver
	nodeBatchSize int
	edgeBatchSize int
}

func NewFileUploadService(
	db *gorm.DB,
	log *logger.Logger,
	fileRepo graphrepos.FileRepo,
	categoryRepo graphrepos.CategoryRepo,
	entityNodeRepo graphrepos.EntityNodeRepo,
	valueNodeRepo graphrepos.ValueNodeRepo,
	entityEdgeRepo graphrepos.EntityEdgeRepo,
	valueEdgeRepo graphrepos.ValueEdgeRepo,
	attributeNodeRepo graphrepos.AttributeNodeRepo,
	attributeEdgeRepo graphrepos.AttributeEdgeRepo,
	nodeBatchSize int,
	edgeBatchSize int,
) FileUploadService {
	return &fileUploadService{
		db:           db,
		log:          log.With("service", "FileUploadService"),
		fileRepo:     fileRepo,
		categoryRepo: categoryRepo,
		nodeStore:    &nodeStore{entities: entityNodeRepo, values: valueNodeRepo},
		edgeStore:    &edgeStore{entities: entityNodeRepo, edges: entityEdgeRepo, values: valueEdgeRepo},
		// One resolver per namespace for the life of the service, so
		// concurrent uploads racing on the same header set share a flight.
		nodeResolver:  ingestion.NewAttributeResolver(&nodeAttributeStore{repo: attributeNodeRepo}),
		edgeResolver:  ingestion.NewAttributeResolver(&edgeAttributeStore{repo: attributeEdgeRepo}),
		nodeBatchSize: nodeBatchSize,
		edgeBatchSize: edgeBatchSize,
	}
}

func (fu *fileUploadService) UploadNodeFile(ctx context.Context, fileName, idColumn string, categoryID int, r io.Reader) (*types.FileEntity, *ingestion.Stats, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, nil, errors.ErrUnauthorized
	}

	category, err := fu.categoryRepo.GetByID(ctx, nil, categoryID)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, errors.ErrCategoryNotFound
	}

	rowReader, err := ingestion.NewRowReader(r)
	if err != nil {
		return nil, nil, err
	}

	file := &types.FileEntity{
		UploaderID: rd.UserID,
		CategoryID: categoryID,
		FileName:   fileName,
		UploadDate: time.Now().UTC(),
	}
	if err := fu.fileRepo.Create(ctx, nil, file); err != nil {
		return nil, nil, fmt.Errorf("create file record: %w", err)
	}

	ingestor := ingestion.NewNodeIngestor(fu.nodeStore, fu.nodeResolver, fu.nodeBatchSize, fu.log)
	stats, err := ingestor.Ingest(ctx, rowReader, file.ID, idColumn)
	if err != nil {
		// Flushed batches are already committed; the file record stays
		// as the marker of a partial ingest.
		return nil, nil, err
	}

	if err := fu.stampStats(ctx, file, stats); err != nil {
		return nil, nil, err
	}
	return file, stats, nil
}

func (fu *fileUploadService) UploadEdgeFile(ctx context.Context, fromColumn, toColumn string, r io.Reader) (*ingestion.Stats, error) {
	if rd := ctxutil.GetRequestData(ctx); rd == nil {
		return nil, errors.ErrUnauthorized
	}

	rowReader, err := ingestion.NewRowReader(r)
	if err != nil {
		return nil, err
	}

	ingestor := ingestion.NewEdgeIngestor(fu.edgeStore, fu.edgeResolver, fu.edgeBatchSize, fu.log)
	return ingestor.Ingest(ctx, rowReader, fromColumn, toColumn)
}

func (fu *fileUploadService) stampStats(ctx context.Context, file *types.FileEntity, stats *ingestion.Stats) error {
	encoded, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode ingest stats: %w", err)
	}
	file.IngestStats = datatypes.JSON(encoded)
	return fu.fileRepo.UpdateIngestStats(ctx, nil, file.ID, encoded)
}

// nodeStore adapts the node repos to the ingestor's write surface.
type nodeStore struct {
	entities graphrepos.EntityNodeRepo
	values   graphrepos.ValueNodeRepo
}

func (s *nodeStore) CreateEntities(ctx context.Context, nodes []*types.EntityNode) error {
	return s.entities.Create(ctx, nil, nodes)
}

func (s *nodeStore) CreateValues(ctx context.Context, values []*types.ValueNode) error {
	return s.values.Create(ctx, nil, values)
}

// edgeStore adapts the edge repos plus the endpoint lookup the edge
// ingestor resolves names through.
type edgeStore struct {
	entities graphrepos.EntityNodeRepo
	edges    graphrepos.EntityEdgeRepo
	values   graphrepos.ValueEdgeRepo
}

func (s *edgeStore) CreateEdges(ctx context.Context, edges []*types.EntityEdge) error {
	return s.edges.Create(ctx, nil, edges)
}

func (s *edgeStore) CreateValues(ctx context.Context, values []*types.ValueEdge) error {
	return s.values.Create(ctx, nil, values)
}

func (s *edgeStore) GetEntityIDByName(ctx context.Context, name string) (uuid.UUID, bool, error) {
	return s.entities.GetIDByName(ctx, nil, name)
}

type nodeAttributeStore struct {
	repo graphrepos.AttributeNodeRepo
}

func (s *nodeAttributeStore) GetByNames(ctx context.Context, names []string) (map[string]uuid.UUID, error) {
	rows, err := s.repo.GetByNames(ctx, nil, names)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		out[row.Name] = row.ID
	}
	return out, nil
}

func (s *nodeAttributeStore) CreateIgnoreConflicts(ctx context.Context, attrs []ingestion.Attribute) error {
	rows := make([]*types.AttributeNode, len(attrs))
	for i, attr := range attrs {
		rows[i] = &types.AttributeNode{ID: attr.ID, Name: attr.Name}
	}
	return s.repo.CreateIgnoreConflicts(ctx, nil, rows)
}

type edgeAttributeStore struct {
	repo graphrepos.AttributeEdgeRepo
}

func (s *edgeAttributeStore) GetByNames(ctx context.Context, names []string) (map[string]uuid.UUID, error) {
	rows, err := s.repo.GetByNames(ctx, nil, names)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		out[row.Name] = row.ID
	}
	return out, nil
}

func (s *edgeAttributeStore) CreateIgnoreConflicts(ctx context.Context, attrs []ingestion.Attribute) error {
	rows := make([]*types.AttributeEdge, len(attrs))
	for i, attr := range attrs {
		rows[i] = &types.AttributeEdge{ID: attr.ID, Name: attr.Name}
	}
	return s.repo.CreateIgnoreConflicts(ctx, nil, rows)
}
