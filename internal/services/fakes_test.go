package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	types "github.com/analysisdata/graph-backend/internal/domain"
)

// graphFixture is the shared in-memory graph backing the repo fakes.
type graphFixture struct {
	nodes        []*types.EntityNode
	edges        []*types.EntityEdge
	fileCategory map[int]int
	grants       map[uuid.UUID]map[int]bool
	nodeAttrs    map[uuid.UUID][]graphrepos.AttributeValue
	edgeAttrs    map[uuid.UUID][]graphrepos.AttributeValue
}

func newGraphFixture() *graphFixture {
	return &graphFixture{
		fileCategory: map[int]int{},
		grants:       map[uuid.UUID]map[int]bool{},
		nodeAttrs:    map[uuid.UUID][]graphrepos.AttributeValue{},
		edgeAttrs:    map[uuid.UUID][]graphrepos.AttributeValue{},
	}
}

func (f *graphFixture) addNode(name string, fileID int) *types.EntityNode {
	node := &types.EntityNode{ID: uuid.New(), Name: name, FileID: fileID}
	f.nodes = append(f.nodes, node)
	return node
}

func (f *graphFixture) addEdge(source, target *types.EntityNode) *types.EntityEdge {
	edge := &types.EntityEdge{ID: uuid.New(), SourceEntityID: source.ID, TargetEntityID: target.ID}
	f.edges = append(f.edges, edge)
	return edge
}

func (f *graphFixture) grant(userID uuid.UUID, fileID int) {
	if f.grants[userID] == nil {
		f.grants[userID] = map[int]bool{}
	}
	f.grants[userID][fileID] = true
}

func (f *graphFixture) granted(userID uuid.UUID, fileID int) bool {
	return f.grants[userID][fileID]
}

func (f *graphFixture) nodeByID(id uuid.UUID) *types.EntityNode {
	for _, node := range f.nodes {
		if node.ID == id {
			return node
		}
	}
	return nil
}

func matchName(name, text string, mode graphrepos.SearchMode) bool {
	switch mode {
	case graphrepos.SearchStartsWith:
		return strings.HasPrefix(name, text)
	case graphrepos.SearchEndsWith:
		return strings.HasSuffix(name, text)
	default:
		return strings.Contains(name, text)
	}
}

type fakeGraphNodeRepo struct{ f *graphFixture }

func (r *fakeGraphNodeRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.EntityNode, error) {
	return append([]*types.EntityNode(nil), r.f.nodes...), nil
}

func (r *fakeGraphNodeRepo) ListByCategory(ctx context.Context, tx *gorm.DB, categoryID int) ([]*types.EntityNode, error) {
	var out []*types.EntityNode
	for _, node := range r.f.nodes {
		if r.f.fileCategory[node.FileID] == categoryID {
			out = append(out, node)
		}
	}
	return out, nil
}

func (r *fakeGraphNodeRepo) ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.EntityNode, error) {
	var out []*types.EntityNode
	for _, node := range r.f.nodes {
		if r.f.granted(userID, node.FileID) {
			out = append(out, node)
		}
	}
	return out, nil
}

func (r *fakeGraphNodeRepo) ListForUserWithCategory(ctx context.Context, tx *gorm.DB, userID uuid.UUID, categoryID int) ([]*types.EntityNode, error) {
	var out []*types.EntityNode
	for _, node := range r.f.nodes {
		if r.f.granted(userID, node.FileID) && r.f.fileCategory[node.FileID] == categoryID {
			out = append(out, node)
		}
	}
	return out, nil
}

func (r *fakeGraphNodeRepo) SearchAll(ctx context.Context, tx *gorm.DB, mode graphrepos.SearchMode, text string) ([]*types.EntityNode, error) {
	var out []*types.EntityNode
	for _, node := range r.f.nodes {
		if matchName(node.Name, text, mode) {
			out = append(out, node)
		}
	}
	return out, nil
}

func (r *fakeGraphNodeRepo) SearchForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, mode graphrepos.SearchMode, text string) ([]*types.EntityNode, error) {
	var out []*types.EntityNode
	for _, node := range r.f.nodes {
		if matchName(node.Name, text, mode) && r.f.granted(userID, node.FileID) {
			out = append(out, node)
		}
	}
	return out, nil
}

func (r *fakeGraphNodeRepo) IsNodeVisibleToUser(ctx context.Context, tx *gorm.DB, userID, nodeID uuid.UUID) (bool, error) {
	node := r.f.nodeByID(nodeID)
	if node == nil {
		return false, nil
	}
	return r.f.granted(userID, node.FileID), nil
}

func (r *fakeGraphNodeRepo) GetNodeAttributeValues(ctx context.Context, tx *gorm.DB, nodeID uuid.UUID) ([]graphrepos.AttributeValue, error) {
	return r.f.nodeAttrs[nodeID], nil
}

type fakeGraphEdgeRepo struct{ f *graphFixture }

func (r *fakeGraphEdgeRepo) GetEdgeAttributeValues(ctx context.Context, tx *gorm.DB, edgeID uuid.UUID) ([]graphrepos.AttributeValue, error) {
	return r.f.edgeAttrs[edgeID], nil
}

func (r *fakeGraphEdgeRepo) IsEdgeVisibleToUser(ctx context.Context, tx *gorm.DB, userID, edgeID uuid.UUID) (bool, error) {
	for _, edge := range r.f.edges {
		if edge.ID != edgeID {
			continue
		}
		source := r.f.nodeByID(edge.SourceEntityID)
		if source == nil {
			return false, nil
		}
		return r.f.granted(userID, source.FileID), nil
	}
	return false, nil
}

type fakeEntityNodeRepo struct{ f *graphFixture }

func (r *fakeEntityNodeRepo) Create(ctx context.Context, tx *gorm.DB, nodes []*types.EntityNode) error {
	r.f.nodes = append(r.f.nodes, nodes...)
	return nil
}

func (r *fakeEntityNodeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EntityNode, error) {
	return r.f.nodeByID(id), nil
}

func (r *fakeEntityNodeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.EntityNode, error) {
	var out []*types.EntityNode
	for _, id := range ids {
		if node := r.f.nodeByID(id); node != nil {
			out = append(out, node)
		}
	}
	return out, nil
}

func (r *fakeEntityNodeRepo) GetIDByName(ctx context.Context, tx *gorm.DB, name string) (uuid.UUID, bool, error) {
	for _, node := range r.f.nodes {
		if node.Name == name {
			return node.ID, true, nil
		}
	}
	return uuid.Nil, false, nil
}

type fakeEntityEdgeRepo struct{ f *graphFixture }

func (r *fakeEntityEdgeRepo) Create(ctx context.Context, tx *gorm.DB, edges []*types.EntityEdge) error {
	r.f.edges = append(r.f.edges, edges...)
	return nil
}

func (r *fakeEntityEdgeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EntityEdge, error) {
	for _, edge := range r.f.edges {
		if edge.ID == id {
			return edge, nil
		}
	}
	return nil, nil
}

func (r *fakeEntityEdgeRepo) ListTouching(ctx context.Context, tx *gorm.DB, nodeID uuid.UUID) ([]*types.EntityEdge, error) {
	var out []*types.EntityEdge
	for _, edge := range r.f.edges {
		if edge.SourceEntityID == nodeID || edge.TargetEntityID == nodeID {
			out = append(out, edge)
		}
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories map[int]*types.Category
	nextID     int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int]*types.Category{}, nextID: 1}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, tx *gorm.DB, category *types.Category) error {
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(ctx context.Context, tx *gorm.DB, page, limit int) ([]*types.Category, error) {
	var out []*types.Category
	for id := 1; id < r.nextID; id++ {
		if c, ok := r.categories[id]; ok {
			out = append(out, c)
		}
	}
	start := page * limit
	if start >= len(out) {
		return nil, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryRepo) UpdateName(ctx context.Context, tx *gorm.DB, id int, name string) error {
	if c, ok := r.categories[id]; ok {
		c.Name = name
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	delete(r.categories, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*types.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) error {
	for _, u := range users {
		r.users[u.ID] = u
	}
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.User, error) {
	var out []*types.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*types.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) SearchByUsernamePrefix(ctx context.Context, tx *gorm.DB, prefix string, limit int) ([]*types.User, error) {
	var out []*types.User
	for _, u := range r.users {
		if strings.HasPrefix(u.Username, prefix) {
			out = append(out, u)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeFileRepo struct {
	files  map[int]*types.FileEntity
	nextID int
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[int]*types.FileEntity{}, nextID: 1}
}

func (r *fakeFileRepo) Create(ctx context.Context, tx *gorm.DB, file *types.FileEntity) error {
	file.ID = r.nextID
	r.nextID++
	r.files[file.ID] = file
	return nil
}

func (r *fakeFileRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.FileEntity, error) {
	return r.files[id], nil
}

func (r *fakeFileRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []int) ([]*types.FileEntity, error) {
	var out []*types.FileEntity
	for _, id := range ids {
		if f, ok := r.files[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFileRepo) List(ctx context.Context, tx *gorm.DB, page, limit int) ([]*types.FileEntity, error) {
	var out []*types.FileEntity
	for id := 1; id < r.nextID; id++ {
		if f, ok := r.files[id]; ok {
			out = append(out, f)
		}
	}
	start := page * limit
	if start >= len(out) {
		return nil, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (r *fakeFileRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(r.files)), nil
}

func (r *fakeFileRepo) UpdateIngestStats(ctx context.Context, tx *gorm.DB, id int, stats []byte) error {
	return nil
}

func (r *fakeFileRepo) ListByUploader(ctx context.Context, tx *gorm.DB, uploaderID uuid.UUID) ([]*types.FileEntity, error) {
	var out []*types.FileEntity
	for id := 1; id < r.nextID; id++ {
		if f, ok := r.files[id]; ok && f.UploaderID == uploaderID {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeGrantRepo struct {
	grants []*types.UserFileGrant
}

func (r *fakeGrantRepo) Grant(ctx context.Context, tx *gorm.DB, grants []*types.UserFileGrant) error {
	r.grants = append(r.grants, grants...)
	return nil
}

func (r *fakeGrantRepo) Revoke(ctx context.Context, tx *gorm.DB, userID uuid.UUID, fileID int) error {
	kept := r.grants[:0]
	for _, g := range r.grants {
		if g.UserID == userID && g.FileID == fileID {
			continue
		}
		kept = append(kept, g)
	}
	r.grants = kept
	return nil
}

func (r *fakeGrantRepo) ListUserIDsForFile(ctx context.Context, tx *gorm.DB, fileID int) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, g := range r.grants {
		if g.FileID == fileID {
			out = append(out, g.UserID)
		}
	}
	return out, nil
}

func (r *fakeGrantRepo) ListFileIDsForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]int, error) {
	var out []int
	for _, g := range r.grants {
		if g.UserID == userID {
			out = append(out, g.FileID)
		}
	}
	return out, nil
}
