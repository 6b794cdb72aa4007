package ingestion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Attribute is an interned attribute name with its stable id.
type Attribute struct {
	ID   uuid.UUID
	Name string
}

// AttributeStore is the persistence surface the resolver needs. Both the
// node and edge attribute tables satisfy it.
type AttributeStore interface {
	GetByNames(ctx context.Context, names []string) (map[string]uuid.UUID, error)
	// CreateIgnoreConflicts inserts the attributes, silently keeping any
	// concurrently-inserted row with the same name.
	CreateIgnoreConflicts(ctx context.Context, attrs []Attribute) error
}

// AttributeResolver interns attribute names: each name maps to exactly one
// row regardless of how many uploads race on it. Inserts go through
// ON CONFLICT DO NOTHING against the unique name index, then a refetch
// picks up whichever row won. Concurrent resolutions of the same name set
// within this process are collapsed with singleflight.
type AttributeResolver struct {
	store AttributeStore
	group singleflight.Group
}

func NewAttributeResolver(store AttributeStore) *AttributeResolver {
	return &AttributeResolver{store: store}
}

// Resolve returns an id for every requested name, creating missing
// attributes as needed. The returned map has an entry for each input name.
func (r *AttributeResolver) Resolve(ctx context.Context, names []string) (map[string]uuid.UUID, error) {
	key := flightKey(names)
	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		return r.resolve(ctx, names)
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]uuid.UUID), nil
}

func (r *AttributeResolver) resolve(ctx context.Context, names []string) (map[string]uuid.UUID, error) {
	existing, err := r.store.GetByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("lookup attributes: %w", err)
	}

	var missing []Attribute
	for _, name := range names {
		if _, ok := existing[name]; !ok {
			missing = append(missing, Attribute{ID: uuid.New(), Name: name})
		}
	}
	if len(missing) == 0 {
		return existing, nil
	}

	if err := r.store.CreateIgnoreConflicts(ctx, missing); err != nil {
		return nil, fmt.Errorf("create attributes: %w", err)
	}

	// Refetch to pick up rows another writer may have won the conflict on.
	resolved, err := r.store.GetByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("refetch attributes: %w", err)
	}
	for _, name := range names {
		if _, ok := resolved[name]; !ok {
			return nil, fmt.Errorf("attribute %q unresolved after insert", name)
		}
	}
	return resolved, nil
}

func flightKey(names []string) string {
	key := ""
	for _, n := range names {
		key += n + "\x00"
	}
	return key
}
