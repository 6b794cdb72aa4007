package ingestion

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// DefaultNodeBatchSize is how many entity rows accumulate before a flush.
const DefaultNodeBatchSize = 100000

// NodeStore is the write surface the node ingestor flushes batches into.
type NodeStore interface {
	CreateEntities(ctx context.Context, nodes []*types.EntityNode) error
	CreateValues(ctx context.Context, values []*types.ValueNode) error
}

// NodeIngestor streams a node CSV into entity and value rows for one file.
// Rows without an id are counted and dropped; everything else lands. Batch
// buffers are reused across flushes so a large file allocates two backing
// arrays, not one per batch.
type NodeIngestor struct {
	store     NodeStore
	resolver  *AttributeResolver
	batchSize int
	log       *logger.Logger

	nodes  []*types.EntityNode
	values []*types.ValueNode
}

func NewNodeIngestor(store NodeStore, resolver *AttributeResolver, batchSize int, baseLog *logger.Logger) *NodeIngestor {
	if batchSize <= 0 {
		batchSize = DefaultNodeBatchSize
	}
	return &NodeIngestor{
		store:     store,
		resolver:  resolver,
		batchSize: batchSize,
		log:       baseLog.With("component", "NodeIngestor"),
		nodes:     make([]*types.EntityNode, 0, batchSize),
		values:    make([]*types.ValueNode, 0, batchSize),
	}
}

// Ingest consumes the reader to EOF and returns per-row stats. idColumn
// names the unique-identifier column; empty falls back to NodeIDHeader.
func (ing *NodeIngestor) Ingest(ctx context.Context, rr *RowReader, fileID int, idColumn string) (*Stats, error) {
	if idColumn == "" {
		idColumn = NodeIDHeader
	}
	if err := ValidateHeaders(rr.Headers(), idColumn); err != nil {
		return nil, err
	}

	attrHeaders := AttributeHeaders(rr.Headers(), idColumn)
	attrIDs, err := ing.resolver.Resolve(ctx, attrHeaders)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := rr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read node row: %w", err)
		}
		stats.Record(ing.ingestRow(row, fileID, idColumn, attrHeaders, attrIDs))

		if len(ing.nodes) >= ing.batchSize {
			if err := ing.flush(ctx); err != nil {
				return nil, err
			}
		}
	}
	if err := ing.flush(ctx); err != nil {
		return nil, err
	}

	ing.log.Info("node csv ingested",
		"fileID", fileID,
		"rowsRead", stats.RowsRead,
		"rowsIngested", stats.RowsIngested,
		"skippedEmptyID", stats.SkippedEmptyID)
	return stats, nil
}

// ingestRow drops rows without an identifier. For ingested rows every
// attribute column yields a value, empty strings included: an empty cell
// is data, a missing id is not.
func (ing *NodeIngestor) ingestRow(row Row, fileID int, idColumn string, attrHeaders []string, attrIDs map[string]uuid.UUID) RowOutcome {
	name := row.Field(idColumn)
	if name == "" {
		return RowSkippedEmptyID
	}

	entityID := uuid.New()
	ing.nodes = append(ing.nodes, &types.EntityNode{
		ID:     entityID,
		Name:   name,
		FileID: fileID,
	})
	for _, header := range attrHeaders {
		ing.values = append(ing.values, &types.ValueNode{
			ID:          uuid.New(),
			EntityID:    entityID,
			AttributeID: attrIDs[header],
			Value:       row.Field(header),
		})
	}
	return RowIngested
}

func (ing *NodeIngestor) flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(ing.nodes) == 0 && len(ing.values) == 0 {
		return nil
	}

	if len(ing.nodes) > 0 {
		if err := ing.store.CreateEntities(ctx, ing.nodes); err != nil {
			return fmt.Errorf("flush entity nodes: %w", err)
		}
	}
	if len(ing.values) > 0 {
		if err := ing.store.CreateValues(ctx, ing.values); err != nil {
			return fmt.Errorf("flush value nodes: %w", err)
		}
	}

	ing.nodes = ing.nodes[:0]
	ing.values = ing.values[:0]
	return nil
}
