package lineage

import (
	"reflect"
	"testing"

	"github.com/luckydata/govlens/pkg/catalog"
)

func demoSnapshot() *catalog.Snapshot {
	return catalog.NewMockStore().Snapshot()
}

func nodeIDs(g *Graph) []string {
	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

func hasNode(g *Graph, id string) bool {
	for _, n := range g.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

func TestBuildGraphFullNeighborhood(t *testing.T) {
	g := BuildGraph("AST001", demoSnapshot(), GraphFilters{Layer: LayerAll, NodeType: TypeAll})

	// 1 asset + 3 sources + 1 org + 3 services + 4 distinct customers
	if len(g.Nodes) != 12 {
		t.Fatalf("expected 12 nodes, got %d: %v", len(g.Nodes), nodeIDs(g))
	}
	// 3 org->source + 3 source->asset + 3 asset->service + 7 service->customer
	if len(g.Edges) != 16 {
		t.Fatalf("expected 16 edges, got %d", len(g.Edges))
	}
	want := Stats{Sources: 3, Services: 3, Customers: 4}
	if g.Stats != want {
		t.Errorf("stats = %+v, want %+v", g.Stats, want)
	}

	// Focus node comes first and carries the name/id label.
	if g.Nodes[0].ID != "asset-1" || g.Nodes[0].Type != catalog.NodeAsset {
		t.Errorf("focus node = %+v", g.Nodes[0])
	}
	if g.Nodes[0].Label != "企业信用评分数据集\nAST001" {
		t.Errorf("focus label = %q", g.Nodes[0].Label)
	}
}

func TestBuildGraphDerivedCodes(t *testing.T) {
	g := BuildGraph("AST001", demoSnapshot(), GraphFilters{})

	labels := map[string]string{}
	for _, n := range g.Nodes {
		labels[n.ID] = n.Label
	}
	if got := labels["src-1"]; got != "企业基础信息表\n000091" {
		t.Errorf("source label = %q", got)
	}
	if got := labels["service-1"]; got != "企业风控查询服务\nCR0001" {
		t.Errorf("service label = %q", got)
	}
	if got := labels["org-1"]; got != "BM00001-068" {
		t.Errorf("org label = %q", got)
	}
}

func TestBuildGraphNoDanglingEdges(t *testing.T) {
	filters := []GraphFilters{
		{},
		{Layer: LayerUpstream},
		{Layer: LayerDownstream},
		{NodeType: TypeSource},
		{NodeType: TypeService},
		{NodeType: TypeCustomer},
		{Keyword: "工商银行"},
		{Layer: LayerUpstream, NodeType: TypeCustomer, Keyword: "信用"},
	}
	for _, f := range filters {
		g := BuildGraph("AST001", demoSnapshot(), f)
		present := map[string]bool{}
		for _, n := range g.Nodes {
			present[n.ID] = true
		}
		for _, e := range g.Edges {
			if !present[e.Source] || !present[e.Target] {
				t.Errorf("filters %+v: dangling edge %s -> %s", f, e.Source, e.Target)
			}
		}
	}
}

func TestBuildGraphLayerUpstream(t *testing.T) {
	g := BuildGraph("AST001", demoSnapshot(), GraphFilters{Layer: LayerUpstream})

	for _, n := range g.Nodes {
		if n.Type == catalog.NodeService || n.Type == catalog.NodeCustomer {
			t.Errorf("upstream layer leaked downstream node %s (%s)", n.ID, n.Type)
		}
	}
	if len(g.Nodes) != 5 {
		t.Errorf("expected 5 upstream nodes, got %d", len(g.Nodes))
	}
	if len(g.Edges) != 6 {
		t.Errorf("expected 6 upstream edges, got %d", len(g.Edges))
	}
	want := Stats{Sources: 3}
	if g.Stats != want {
		t.Errorf("stats = %+v, want %+v", g.Stats, want)
	}
}

func TestBuildGraphLayerDownstream(t *testing.T) {
	g := BuildGraph("AST001", demoSnapshot(), GraphFilters{Layer: LayerDownstream})

	for _, n := range g.Nodes {
		if n.Type == catalog.NodeSource || n.Type == catalog.NodeOrg {
			t.Errorf("downstream layer leaked upstream node %s (%s)", n.ID, n.Type)
		}
	}
	if len(g.Nodes) != 8 {
		t.Errorf("expected 8 downstream nodes, got %d", len(g.Nodes))
	}
	if len(g.Edges) != 10 {
		t.Errorf("expected 10 downstream edges, got %d", len(g.Edges))
	}
}

func TestBuildGraphTypeFilterService(t *testing.T) {
	g := BuildGraph("AST001", demoSnapshot(), GraphFilters{NodeType: TypeService})

	if len(g.Nodes) != 4 {
		t.Fatalf("expected focus + 3 services, got %d nodes: %v", len(g.Nodes), nodeIDs(g))
	}
	for _, n := range g.Nodes {
		if n.Type != catalog.NodeAsset && n.Type != catalog.NodeService {
			t.Errorf("type filter leaked node %s (%s)", n.ID, n.Type)
		}
	}
	if len(g.Edges) != 3 {
		t.Errorf("expected 3 asset->service edges, got %d", len(g.Edges))
	}
}

func TestBuildGraphTypeFilterOverridesLayer(t *testing.T) {
	// The type cut recomputes from the unrestricted base set, so an
	// upstream layer does not starve a customer-type view.
	g := BuildGraph("AST001", demoSnapshot(), GraphFilters{Layer: LayerUpstream, NodeType: TypeCustomer})

	sawCustomer := false
	for _, n := range g.Nodes {
		if n.Type == catalog.NodeCustomer {
			sawCustomer = true
		}
	}
	if !sawCustomer {
		t.Error("customer-type view lost its customers under an upstream layer")
	}
	if !hasNode(g, "asset-1") {
		t.Error("focus asset missing after type cut")
	}
}

func TestBuildGraphTypeFilterMatchesManualCut(t *testing.T) {
	// The source-type view equals the unrestricted graph manually cut to
	// org/source/asset nodes.
	base := BuildGraph("AST001", demoSnapshot(), GraphFilters{})
	var manual []string
	for _, n := range base.Nodes {
		switch n.Type {
		case catalog.NodeOrg, catalog.NodeSource, catalog.NodeAsset:
			manual = append(manual, n.ID)
		}
	}

	g := BuildGraph("AST001", demoSnapshot(), GraphFilters{NodeType: TypeSource})
	if !reflect.DeepEqual(nodeIDs(g), manual) {
		t.Errorf("source-type cut = %v, manual cut = %v", nodeIDs(g), manual)
	}
}

func TestBuildGraphKeyword(t *testing.T) {
	g := BuildGraph("AST001", demoSnapshot(), GraphFilters{Keyword: "工商银行"})
	if len(g.Nodes) != 1 || g.Nodes[0].ID != "cust-1" {
		t.Fatalf("keyword match = %v", nodeIDs(g))
	}
	if len(g.Edges) != 0 {
		t.Errorf("single-node graph kept %d edges", len(g.Edges))
	}

	// Keyword stats are computed before the keyword refinement.
	want := Stats{Sources: 3, Services: 3, Customers: 4}
	if g.Stats != want {
		t.Errorf("stats = %+v, want %+v", g.Stats, want)
	}
}

func TestBuildGraphKeywordNoMatchKeepsSet(t *testing.T) {
	base := BuildGraph("AST001", demoSnapshot(), GraphFilters{})
	g := BuildGraph("AST001", demoSnapshot(), GraphFilters{Keyword: "不存在的关键字"})
	if !reflect.DeepEqual(nodeIDs(base), nodeIDs(g)) {
		t.Errorf("no-match keyword changed the node set: %v vs %v", nodeIDs(base), nodeIDs(g))
	}
}

func TestBuildGraphFocusFallback(t *testing.T) {
	g := BuildGraph("AST999", demoSnapshot(), GraphFilters{})
	if len(g.Nodes) == 0 || g.Nodes[0].ID != "asset-1" {
		t.Errorf("unknown focus should fall back to the first asset, got %v", nodeIDs(g))
	}
}

func TestBuildGraphEmptyCatalog(t *testing.T) {
	g := BuildGraph("AST001", &catalog.Snapshot{}, GraphFilters{})
	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Errorf("empty catalog produced %d nodes / %d edges", len(g.Nodes), len(g.Edges))
	}
}

func TestBuildGraphIsolatedAsset(t *testing.T) {
	snap := &catalog.Snapshot{
		Assets: []catalog.DataAsset{
			{ID: "asset-x", AssetID: "AST100", AssetName: "孤立资产"},
		},
	}
	g := BuildGraph("AST100", snap, GraphFilters{})
	if len(g.Nodes) != 1 || len(g.Edges) != 0 {
		t.Fatalf("isolated asset: %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
	if g.Stats != (Stats{}) {
		t.Errorf("isolated asset stats = %+v", g.Stats)
	}
}

func TestBuildGraphDeterministic(t *testing.T) {
	a := BuildGraph("AST001", demoSnapshot(), GraphFilters{})
	for i := 0; i < 5; i++ {
		b := BuildGraph("AST001", demoSnapshot(), GraphFilters{})
		if !reflect.DeepEqual(a, b) {
			t.Fatal("graph derivation is not deterministic")
		}
	}
}

func TestTableCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"src-1", "000091"},
		{"src-6", "000086"},
		{"src-12", "000080"},
		{"no-digits", "000092"},
	}
	for _, c := range cases {
		if got := TableCode(c.in); got != c.want {
			t.Errorf("TableCode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestServiceCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SVC001", "CR0001"},
		{"SVC006", "CR0006"},
		{"SVC123", "CR0123"},
	}
	for _, c := range cases {
		if got := ServiceCode(c.in); got != c.want {
			t.Errorf("ServiceCode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
