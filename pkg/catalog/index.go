package catalog

// Index holds id lookups and adjacency lists derived from one Snapshot.
// Adjacency slices preserve relation collection order. Relations whose
// endpoints are missing from the entity collections are dropped here,
// so downstream derivations never see a dangling reference.
type Index struct {
	Orgs      map[string]SourceOrg
	Sources   map[string]SourceTable
	Assets    map[string]DataAsset
	Services  map[string]ProductService
	Customers map[string]Customer

	SourcesByAsset     map[string][]string // asset id -> feeding source table ids
	ServicesByAsset    map[string][]string // asset id -> powered service ids
	CustomersByService map[string][]string // service id -> customer ids
}

// BuildIndex indexes a snapshot. Duplicate entity ids keep the later
// entry, matching map-assignment semantics throughout.
func BuildIndex(snap *Snapshot) *Index {
	idx := &Index{
		Orgs:      make(map[string]SourceOrg, len(snap.Orgs)),
		Sources:   make(map[string]SourceTable, len(snap.Sources)),
		Assets:    make(map[string]DataAsset, len(snap.Assets)),
		Services:  make(map[string]ProductService, len(snap.Services)),
		Customers: make(map[string]Customer, len(snap.Customers)),

		SourcesByAsset:     make(map[string][]string),
		ServicesByAsset:    make(map[string][]string),
		CustomersByService: make(map[string][]string),
	}

	for _, o := range snap.Orgs {
		idx.Orgs[o.ID] = o
	}
	for _, s := range snap.Sources {
		idx.Sources[s.ID] = s
	}
	for _, a := range snap.Assets {
		idx.Assets[a.ID] = a
	}
	for _, s := range snap.Services {
		idx.Services[s.ID] = s
	}
	for _, c := range snap.Customers {
		idx.Customers[c.ID] = c
	}

	for _, r := range snap.SourceToAsset {
		if _, ok := idx.Sources[r.SourceID]; !ok {
			continue
		}
		if _, ok := idx.Assets[r.TargetID]; !ok {
			continue
		}
		idx.SourcesByAsset[r.TargetID] = appendOnce(idx.SourcesByAsset[r.TargetID], r.SourceID)
	}
	for _, r := range snap.AssetToService {
		if _, ok := idx.Assets[r.SourceID]; !ok {
			continue
		}
		if _, ok := idx.Services[r.TargetID]; !ok {
			continue
		}
		idx.ServicesByAsset[r.SourceID] = appendOnce(idx.ServicesByAsset[r.SourceID], r.TargetID)
	}
	for _, r := range snap.ServiceToCustomer {
		if _, ok := idx.Services[r.SourceID]; !ok {
			continue
		}
		if _, ok := idx.Customers[r.TargetID]; !ok {
			continue
		}
		idx.CustomersByService[r.SourceID] = appendOnce(idx.CustomersByService[r.SourceID], r.TargetID)
	}

	return idx
}

// appendOnce keeps adjacency lists duplicate-free without losing the
// first-seen position.
func appendOnce(list []string, id string) []string {
	for _, have := range list {
		if have == id {
			return list
		}
	}
	return append(list, id)
}

// SnapshotFrom reassembles a Snapshot from the store boundary shape: the
// asset collection drives iteration order, the typed node set supplies
// the remaining entities, and edges are classified into the three
// relation collections by endpoint type. Unclassifiable edges are
// dropped.
func SnapshotFrom(assets []DataAsset, ld LineageData) *Snapshot {
	snap := &Snapshot{Assets: assets}

	sourceIDs := make(map[string]bool)
	assetIDs := make(map[string]bool)
	serviceIDs := make(map[string]bool)
	customerIDs := make(map[string]bool)
	for _, a := range assets {
		assetIDs[a.ID] = true
	}

	for _, n := range ld.Nodes {
		switch n.Type {
		case NodeOrg:
			if n.Org != nil {
				snap.Orgs = append(snap.Orgs, *n.Org)
			}
		case NodeSource:
			if n.Source != nil {
				snap.Sources = append(snap.Sources, *n.Source)
				sourceIDs[n.Source.ID] = true
			}
		case NodeAsset:
			if n.Asset != nil && !assetIDs[n.Asset.ID] {
				snap.Assets = append(snap.Assets, *n.Asset)
				assetIDs[n.Asset.ID] = true
			}
		case NodeService:
			if n.Service != nil {
				snap.Services = append(snap.Services, *n.Service)
				serviceIDs[n.Service.ID] = true
			}
		case NodeCustomer:
			if n.Customer != nil {
				snap.Customers = append(snap.Customers, *n.Customer)
				customerIDs[n.Customer.ID] = true
			}
		}
	}

	for _, e := range ld.Edges {
		r := Relation{SourceID: e.SourceID, TargetID: e.TargetID}
		switch {
		case sourceIDs[e.SourceID] && assetIDs[e.TargetID]:
			snap.SourceToAsset = append(snap.SourceToAsset, r)
		case assetIDs[e.SourceID] && serviceIDs[e.TargetID]:
			snap.AssetToService = append(snap.AssetToService, r)
		case serviceIDs[e.SourceID] && customerIDs[e.TargetID]:
			snap.ServiceToCustomer = append(snap.ServiceToCustomer, r)
		}
	}

	return snap
}
