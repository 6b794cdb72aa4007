package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	pkgerrors "github.com/analysisdata/graph-backend/internal/pkg/errors"
)

func TestSearchNodesModes(t *testing.T) {
	f := newGraphFixture()
	f.addNode("Alpha", 1)
	f.addNode("Beta", 1)
	f.addNode("AlphaBeta", 1)

	resolver := NewVisibilityResolver(&fakeGraphNodeRepo{f: f}, &fakeGraphEdgeRepo{f: f})
	svc := NewNodeSearchService(nil, serviceLogger(t), resolver)

	cases := []struct {
		text string
		mode string
		want []string
	}{
		{"Alpha", "contains", []string{"Alpha", "AlphaBeta"}},
		{"Alpha", "startswith", []string{"Alpha", "AlphaBeta"}},
		{"Beta", "startswith", []string{"Beta"}},
		{"Beta", "endswith", []string{"AlphaBeta", "Beta"}},
		{"Beta", "", []string{"AlphaBeta", "Beta"}},
		{"Beta", "bogus", []string{"AlphaBeta", "Beta"}},
	}
	for _, tc := range cases {
		page, err := svc.SearchNodes(elevatedCtx(), tc.text, tc.mode, 0, 10)
		if err != nil {
			t.Fatalf("SearchNodes(%q, %q): %v", tc.text, tc.mode, err)
		}
		var got []string
		for _, node := range page.Items {
			got = append(got, node.Name)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("SearchNodes(%q, %q): got %v, want %v", tc.text, tc.mode, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("SearchNodes(%q, %q): got %v, want %v", tc.text, tc.mode, got, tc.want)
			}
		}
	}
}

func TestSearchNodesNoMatchIsNotFound(t *testing.T) {
	f := newGraphFixture()
	f.addNode("Alpha", 1)

	resolver := NewVisibilityResolver(&fakeGraphNodeRepo{f: f}, &fakeGraphEdgeRepo{f: f})
	svc := NewNodeSearchService(nil, serviceLogger(t), resolver)

	if _, err := svc.SearchNodes(elevatedCtx(), "Zeta", "contains", 0, 10); !errors.Is(err, pkgerrors.ErrNodeNotFound) {
		t.Fatalf("SearchNodes: expected ErrNodeNotFound, got %v", err)
	}

	// A match the caller cannot see reads the same as no match at all.
	if _, err := svc.SearchNodes(analystCtx(uuid.New()), "Alpha", "contains", 0, 10); !errors.Is(err, pkgerrors.ErrNodeNotFound) {
		t.Fatalf("SearchNodes: expected ErrNodeNotFound for invisible match, got %v", err)
	}
}

func TestSearchNodesRestrictedScope(t *testing.T) {
	f := newGraphFixture()
	visible := f.addNode("Alpha", 1)
	f.addNode("Alphabet", 2)

	userID := uuid.New()
	f.grant(userID, 1)

	resolver := NewVisibilityResolver(&fakeGraphNodeRepo{f: f}, &fakeGraphEdgeRepo{f: f})
	svc := NewNodeSearchService(nil, serviceLogger(t), resolver)

	page, err := svc.SearchNodes(analystCtx(userID), "Alpha", "startswith", 0, 10)
	if err != nil {
		t.Fatalf("SearchNodes: %v", err)
	}
	if page.TotalCount != 1 || page.Items[0].ID != visible.ID {
		t.Fatalf("SearchNodes: unexpected %+v", page)
	}
}
