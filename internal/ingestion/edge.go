package ingestion

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// DefaultEdgeBatchSize is how many edge rows accumulate before a flush.
// Smaller than the node batch because each edge row costs two name lookups.
const DefaultEdgeBatchSize = 10000

// EdgeStore is the write-and-lookup surface the edge ingestor runs against.
type EdgeStore interface {
	CreateEdges(ctx context.Context, edges []*types.EntityEdge) error
	CreateValues(ctx context.Context, values []*types.ValueEdge) error
	// GetEntityIDByName reports the id of the named entity, or ok=false
	// when no such entity exists.
	GetEntityIDByName(ctx context.Context, name string) (uuid.UUID, bool, error)
}

// EdgeIngestor streams an edge CSV into entity-edge and value rows. Edge
// rows reference their endpoints by entity name; a row whose source or
// target cannot be resolved is counted and dropped. Resolved names are
// cached for the life of one Ingest call since edge files repeat endpoint
// names heavily.
type EdgeIngestor struct {
	store     EdgeStore
	resolver  *AttributeResolver
	batchSize int
	log       *logger.Logger

	edges  []*types.EntityEdge
	values []*types.ValueEdge
}

func NewEdgeIngestor(store EdgeStore, resolver *AttributeResolver, batchSize int, baseLog *logger.Logger) *EdgeIngestor {
	if batchSize <= 0 {
		batchSize = DefaultEdgeBatchSize
	}
	return &EdgeIngestor{
		store:     store,
		resolver:  resolver,
		batchSize: batchSize,
		log:       baseLog.With("component", "EdgeIngestor"),
		edges:     make([]*types.EntityEdge, 0, batchSize),
		values:    make([]*types.ValueEdge, 0, batchSize),
	}
}

type entityLookup struct {
	id    uuid.UUID
	found bool
}

// Ingest consumes the reader to EOF and returns per-row stats. fromColumn
// and toColumn name the endpoint columns; empty falls back to the
// defaults.
func (ing *EdgeIngestor) Ingest(ctx context.Context, rr *RowReader, fromColumn, toColumn string) (*Stats, error) {
	if fromColumn == "" {
		fromColumn = EdgeSourceHeader
	}
	if toColumn == "" {
		toColumn = EdgeTargetHeader
	}
	if err := ValidateHeaders(rr.Headers(), fromColumn, toColumn); err != nil {
		return nil, err
	}

	attrHeaders := AttributeHeaders(rr.Headers(), fromColumn, toColumn)
	attrIDs, err := ing.resolver.Resolve(ctx, attrHeaders)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	nameCache := make(map[string]entityLookup)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := rr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read edge row: %w", err)
		}

		outcome, err := ing.ingestRow(ctx, row, nameCache, fromColumn, toColumn, attrHeaders, attrIDs)
		if err != nil {
			return nil, err
		}
		stats.Record(outcome)

		if len(ing.edges) >= ing.batchSize {
			if err := ing.flush(ctx); err != nil {
				return nil, err
			}
		}
	}
	if err := ing.flush(ctx); err != nil {
		return nil, err
	}

	ing.log.Info("edge csv ingested",
		"rowsRead", stats.RowsRead,
		"rowsIngested", stats.RowsIngested,
		"skippedEmptyID", stats.SkippedEmptyID,
		"skippedUnresolvedEndpoint", stats.SkippedUnresolvedEndpoint)
	return stats, nil
}

func (ing *EdgeIngestor) ingestRow(ctx context.Context, row Row, nameCache map[string]entityLookup, fromColumn, toColumn string, attrHeaders []string, attrIDs map[string]uuid.UUID) (RowOutcome, error) {
	sourceName := row.Field(fromColumn)
	targetName := row.Field(toColumn)
	if sourceName == "" || targetName == "" {
		return RowSkippedEmptyID, nil
	}

	source, err := ing.lookupEntity(ctx, nameCache, sourceName)
	if err != nil {
		return 0, err
	}
	target, err := ing.lookupEntity(ctx, nameCache, targetName)
	if err != nil {
		return 0, err
	}
	if !source.found || !target.found {
		return RowSkippedUnresolvedEndpoint, nil
	}

	edgeID := uuid.New()
	ing.edges = append(ing.edges, &types.EntityEdge{
		ID:             edgeID,
		SourceEntityID: source.id,
		TargetEntityID: target.id,
	})
	for _, header := range attrHeaders {
		ing.values = append(ing.values, &types.ValueEdge{
			ID:          uuid.New(),
			EdgeID:      edgeID,
			AttributeID: attrIDs[header],
			Value:       row.Field(header),
		})
	}
	return RowIngested, nil
}

func (ing *EdgeIngestor) lookupEntity(ctx context.Context, cache map[string]entityLookup, name string) (entityLookup, error) {
	if hit, ok := cache[name]; ok {
		return hit, nil
	}
	id, found, err := ing.store.GetEntityIDByName(ctx, name)
	if err != nil {
		return entityLookup{}, fmt.Errorf("resolve entity %q: %w", name, err)
	}
	result := entityLookup{id: id, found: found}
	cache[name] = result
	return result, nil
}

func (ing *EdgeIngestor) flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(ing.edges) == 0 && len(ing.values) == 0 {
		return nil
	}

	if len(ing.edges) > 0 {
		if err := ing.store.CreateEdges(ctx, ing.edges); err != nil {
			return fmt.Errorf("flush entity edges: %w", err)
		}
	}
	if len(ing.values) > 0 {
		if err := ing.store.CreateValues(ctx, ing.values); err != nil {
			return fmt.Errorf("flush value edges: %w", err)
		}
	}

	ing.edges = ing.edges[:0]
	ing.values = ing.values[:0]
	return nil
}
