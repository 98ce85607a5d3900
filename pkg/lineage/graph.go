package lineage

import (
	"strings"

	"github.com/luckydata/govlens/pkg/catalog"
)

// Layer restricts the graph to one side of the focus asset.
type Layer string

const (
	LayerAll        Layer = "all"
	LayerUpstream   Layer = "upstream"
	LayerDownstream Layer = "downstream"
)

// TypeFilter narrows the graph to the neighborhood of one node type.
type TypeFilter string

const (
	TypeAll      TypeFilter = "all"
	TypeSource   TypeFilter = "source"
	TypeService  TypeFilter = "service"
	TypeCustomer TypeFilter = "customer"
)

// GraphFilters is the full filter state applied to one build.
type GraphFilters struct {
	Layer    Layer
	NodeType TypeFilter
	Keyword  string
}

// Node is one rendered graph node. Label carries the display form,
// including derived table and product codes.
type Node struct {
	ID    string
	Label string
	Type  catalog.NodeType
}

// Edge is one directed rendered edge; both endpoints are guaranteed to
// exist in the returned node set.
type Edge struct {
	Source string
	Target string
}

// Stats counts nodes by type after the layer and type filters but
// before the keyword filter.
type Stats struct {
	Sources   int
	Services  int
	Customers int
}

// Graph is the renderer-agnostic result of one lineage derivation.
type Graph struct {
	Nodes []Node
	Edges []Edge
	Stats Stats
}

// BuildGraph derives the lineage neighborhood of one asset: feeding
// source tables and their owning organizations upstream, powered
// services and their customers downstream. The focus is resolved by
// business asset id, falling back to the first asset in catalog order;
// an empty catalog yields an empty graph.
func BuildGraph(focusAssetID string, snap *catalog.Snapshot, f GraphFilters) *Graph {
	idx := catalog.BuildIndex(snap)

	focus, ok := resolveFocus(focusAssetID, snap.Assets)
	if !ok {
		return &Graph{}
	}

	nodes := []Node{{
		ID:    focus.ID,
		Label: focus.AssetName + "\n" + focus.AssetID,
		Type:  catalog.NodeAsset,
	}}
	seen := map[string]bool{focus.ID: true}
	add := func(n Node) {
		if !seen[n.ID] {
			seen[n.ID] = true
			nodes = append(nodes, n)
		}
	}

	var orgIDs []string
	orgSeen := map[string]bool{}
	for _, srcID := range idx.SourcesByAsset[focus.ID] {
		src := idx.Sources[srcID]
		add(Node{ID: src.ID, Label: src.TableComment + "\n" + TableCode(src.ID), Type: catalog.NodeSource})
		if src.OrgID != "" && !orgSeen[src.OrgID] {
			orgSeen[src.OrgID] = true
			orgIDs = append(orgIDs, src.OrgID)
		}
	}
	for _, orgID := range orgIDs {
		if org, found := idx.Orgs[orgID]; found {
			add(Node{ID: org.ID, Label: org.OrgID, Type: catalog.NodeOrg})
		}
	}
	for _, svcID := range idx.ServicesByAsset[focus.ID] {
		svc := idx.Services[svcID]
		add(Node{ID: svc.ID, Label: svc.ServiceName + "\n" + ServiceCode(svc.ServiceID), Type: catalog.NodeService})
		for _, custID := range idx.CustomersByService[svcID] {
			cust := idx.Customers[custID]
			add(Node{ID: cust.ID, Label: cust.CustomerFullName, Type: catalog.NodeCustomer})
		}
	}

	typeOf := make(map[string]catalog.NodeType, len(nodes))
	for _, n := range nodes {
		typeOf[n.ID] = n.Type
	}

	var edges []Edge
	for _, n := range nodes {
		if n.Type != catalog.NodeSource {
			continue
		}
		if src := idx.Sources[n.ID]; src.OrgID != "" {
			edges = append(edges, Edge{Source: src.OrgID, Target: n.ID})
		}
	}
	for _, srcID := range idx.SourcesByAsset[focus.ID] {
		edges = append(edges, Edge{Source: srcID, Target: focus.ID})
	}
	for _, svcID := range idx.ServicesByAsset[focus.ID] {
		edges = append(edges, Edge{Source: focus.ID, Target: svcID})
		for _, custID := range idx.CustomersByService[svcID] {
			edges = append(edges, Edge{Source: svcID, Target: custID})
		}
	}

	filteredNodes := nodes
	filteredEdges := edges

	switch f.Layer {
	case LayerUpstream:
		filteredNodes = filterNodes(nodes, catalog.NodeOrg, catalog.NodeSource, catalog.NodeAsset)
		filteredEdges = filterEdges(edges, func(e Edge) bool {
			t := typeOf[e.Target]
			return t == catalog.NodeAsset || t == catalog.NodeSource || t == catalog.NodeOrg
		})
	case LayerDownstream:
		filteredNodes = filterNodes(nodes, catalog.NodeAsset, catalog.NodeService, catalog.NodeCustomer)
		filteredEdges = filterEdges(edges, func(e Edge) bool {
			s := typeOf[e.Source]
			return s != catalog.NodeSource && s != catalog.NodeOrg
		})
	}

	// The type filter recomputes from the unfiltered base set, then
	// re-seats the focus asset if the cut removed it.
	if f.NodeType != TypeAll && f.NodeType != "" {
		switch f.NodeType {
		case TypeSource:
			filteredNodes = filterNodes(nodes, catalog.NodeOrg, catalog.NodeSource, catalog.NodeAsset)
			filteredEdges = filterEdges(edges, func(e Edge) bool {
				t := typeOf[e.Target]
				return t == catalog.NodeAsset || t == catalog.NodeSource
			})
		case TypeService:
			filteredNodes = filterNodes(nodes, catalog.NodeAsset, catalog.NodeService)
			filteredEdges = filterEdges(edges, func(e Edge) bool {
				return typeOf[e.Source] == catalog.NodeAsset && typeOf[e.Target] == catalog.NodeService
			})
		case TypeCustomer:
			filteredNodes = filterNodes(nodes, catalog.NodeAsset, catalog.NodeService, catalog.NodeCustomer)
			filteredEdges = filterEdges(edges, func(e Edge) bool {
				return typeOf[e.Source] != catalog.NodeSource
			})
		}
		if !containsNode(filteredNodes, focus.ID) {
			filteredNodes = append([]Node{nodes[0]}, filteredNodes...)
		}
	}

	stats := Stats{}
	for _, n := range filteredNodes {
		switch n.Type {
		case catalog.NodeSource:
			stats.Sources++
		case catalog.NodeService:
			stats.Services++
		case catalog.NodeCustomer:
			stats.Customers++
		}
	}

	// Keyword matching is a refinement only: when nothing matches the
	// current set is kept as-is.
	if kw := strings.ToLower(f.Keyword); kw != "" {
		var matched []Node
		for _, n := range filteredNodes {
			if strings.Contains(strings.ToLower(n.Label), kw) {
				matched = append(matched, n)
			}
		}
		if len(matched) > 0 {
			filteredNodes = matched
		}
	}

	present := make(map[string]bool, len(filteredNodes))
	for _, n := range filteredNodes {
		present[n.ID] = true
	}
	var finalEdges []Edge
	for _, e := range filteredEdges {
		if present[e.Source] && present[e.Target] {
			finalEdges = append(finalEdges, e)
		}
	}

	return &Graph{Nodes: filteredNodes, Edges: finalEdges, Stats: stats}
}

func resolveFocus(assetID string, assets []catalog.DataAsset) (catalog.DataAsset, bool) {
	for _, a := range assets {
		if a.AssetID == assetID {
			return a, true
		}
	}
	if len(assets) > 0 {
		return assets[0], true
	}
	return catalog.DataAsset{}, false
}

func filterNodes(nodes []Node, keep ...catalog.NodeType) []Node {
	var out []Node
	for _, n := range nodes {
		for _, t := range keep {
			if n.Type == t {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

func filterEdges(edges []Edge, keep func(Edge) bool) []Edge {
	var out []Edge
	for _, e := range edges {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func containsNode(nodes []Node, id string) bool {
	for _, n := range nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}
