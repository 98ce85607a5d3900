package catalog

// Store is the data-access boundary. Implementations return immutable
// views; callers must not mutate the returned slices.
type Store interface {
	// AllAssets returns the asset collection in catalog order.
	AllAssets() []DataAsset
	// AllServices returns the product service collection.
	AllServices() []ProductService
	// FullLineage returns the complete typed node set plus raw edges.
	FullLineage() LineageData
}

// StaticStore serves a fixed in-memory snapshot.
type StaticStore struct {
	snap *Snapshot
}

// NewStaticStore wraps an already-assembled snapshot.
func NewStaticStore(snap *Snapshot) *StaticStore {
	return &StaticStore{snap: snap}
}

func (s *StaticStore) AllAssets() []DataAsset { return s.snap.Assets }

func (s *StaticStore) AllServices() []ProductService { return s.snap.Services }

func (s *StaticStore) FullLineage() LineageData {
	var ld LineageData
	for i := range s.snap.Orgs {
		o := s.snap.Orgs[i]
		ld.Nodes = append(ld.Nodes, TypedNode{ID: o.ID, Type: NodeOrg, Org: &o})
	}
	for i := range s.snap.Sources {
		t := s.snap.Sources[i]
		ld.Nodes = append(ld.Nodes, TypedNode{ID: t.ID, Type: NodeSource, Source: &t})
	}
	for i := range s.snap.Assets {
		a := s.snap.Assets[i]
		ld.Nodes = append(ld.Nodes, TypedNode{ID: a.ID, Type: NodeAsset, Asset: &a})
	}
	for i := range s.snap.Services {
		v := s.snap.Services[i]
		ld.Nodes = append(ld.Nodes, TypedNode{ID: v.ID, Type: NodeService, Service: &v})
	}
	for i := range s.snap.Customers {
		c := s.snap.Customers[i]
		ld.Nodes = append(ld.Nodes, TypedNode{ID: c.ID, Type: NodeCustomer, Customer: &c})
	}
	ld.Edges = append(ld.Edges, s.snap.SourceToAsset...)
	ld.Edges = append(ld.Edges, s.snap.AssetToService...)
	ld.Edges = append(ld.Edges, s.snap.ServiceToCustomer...)
	return ld
}

// Snapshot exposes the underlying snapshot for callers that want direct
// access instead of going through the lineage-data boundary.
func (s *StaticStore) Snapshot() *Snapshot { return s.snap }
