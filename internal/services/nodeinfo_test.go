package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	graphrepos "github.com/analysisdata/graph-backend/internal/data/repos/graph"
	pkgerrors "github.com/analysisdata/graph-backend/internal/pkg/errors"
)

func newNodeInfoService(t *testing.T, f *graphFixture) NodeInfoService {
	t.Helper()
	resolver := NewVisibilityResolver(&fakeGraphNodeRepo{f: f}, &fakeGraphEdgeRepo{f: f})
	return NewNodeInfoService(
		nil, serviceLogger(t), resolver,
		&fakeEntityNodeRepo{f: f}, &fakeEntityEdgeRepo{f: f},
		&fakeGraphNodeRepo{f: f}, &fakeGraphEdgeRepo{f: f},
	)
}

func TestGetNodeAttributes(t *testing.T) {
	f := newGraphFixture()
	node := f.addNode("alpha", 1)
	f.nodeAttrs[node.ID] = []graphrepos.AttributeValue{
		{Attribute: "Color", Value: "red"},
		{Attribute: "Size", Value: "10"},
	}

	svc := newNodeInfoService(t, f)
	values, err := svc.GetNodeAttributes(elevatedCtx(), node.ID)
	if err != nil {
		t.Fatalf("GetNodeAttributes: %v", err)
	}
	if len(values) != 2 || values["Color"] != "red" || values["Size"] != "10" {
		t.Fatalf("GetNodeAttributes: unexpected %v", values)
	}
}

func TestGetNodeAttributesKeepsEmptyValues(t *testing.T) {
	f := newGraphFixture()
	node := f.addNode("alpha", 1)
	f.nodeAttrs[node.ID] = []graphrepos.AttributeValue{
		{Attribute: "Color", Value: ""},
	}

	svc := newNodeInfoService(t, f)
	values, err := svc.GetNodeAttributes(elevatedCtx(), node.ID)
	if err != nil {
		t.Fatalf("GetNodeAttributes: %v", err)
	}
	v, ok := values["Color"]
	if !ok || v != "" {
		t.Fatalf("GetNodeAttributes: expected empty Color entry, got %v", values)
	}
}

func TestGetNodeAttributesUnknownNode(t *testing.T) {
	svc := newNodeInfoService(t, newGraphFixture())
	_, err := svc.GetNodeAttributes(elevatedCtx(), uuid.New())
	if !errors.Is(err, pkgerrors.ErrNodeNotFound) {
		t.Fatalf("GetNodeAttributes: expected ErrNodeNotFound, got %v", err)
	}
}

func TestGetNodeAttributesHiddenReadsAsNotFound(t *testing.T) {
	f := newGraphFixture()
	node := f.addNode("alpha", 2)
	userID := uuid.New()
	f.grant(userID, 1)

	svc := newNodeInfoService(t, f)
	_, err := svc.GetNodeAttributes(analystCtx(userID), node.ID)
	if !errors.Is(err, pkgerrors.ErrNodeNotFound) {
		t.Fatalf("GetNodeAttributes: hidden node must read as not found, got %v", err)
	}
}

func TestGetNodeAttributesBareNodeReadsAsNotFound(t *testing.T) {
	f := newGraphFixture()
	node := f.addNode("bare", 1)

	svc := newNodeInfoService(t, f)
	_, err := svc.GetNodeAttributes(elevatedCtx(), node.ID)
	if !errors.Is(err, pkgerrors.ErrNodeNotFound) {
		t.Fatalf("GetNodeAttributes: node without values must read as not found, got %v", err)
	}
}

func TestGetEdgeAttributes(t *testing.T) {
	f := newGraphFixture()
	a := f.addNode("alpha", 1)
	b := f.addNode("beta", 1)
	edge := f.addEdge(a, b)
	f.edgeAttrs[edge.ID] = []graphrepos.AttributeValue{{Attribute: "Weight", Value: "3"}}

	svc := newNodeInfoService(t, f)
	values, err := svc.GetEdgeAttributes(elevatedCtx(), edge.ID)
	if err != nil {
		t.Fatalf("GetEdgeAttributes: %v", err)
	}
	if len(values) != 1 || values["Weight"] != "3" {
		t.Fatalf("GetEdgeAttributes: unexpected %v", values)
	}
}

func TestGetEdgeAttributesHiddenReadsAsNotFound(t *testing.T) {
	f := newGraphFixture()
	a := f.addNode("alpha", 2)
	b := f.addNode("beta", 1)
	edge := f.addEdge(a, b)

	userID := uuid.New()
	f.grant(userID, 1)

	svc := newNodeInfoService(t, f)
	_, err := svc.GetEdgeAttributes(analystCtx(userID), edge.ID)
	if !errors.Is(err, pkgerrors.ErrEdgeNotFound) {
		t.Fatalf("GetEdgeAttributes: hidden edge must read as not found, got %v", err)
	}
}
