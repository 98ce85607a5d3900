package lineage

import (
	"strings"

	"github.com/luckydata/govlens/pkg/catalog"
)

// UnlinkedService marks a flat record for an asset no service consumes.
const UnlinkedService = "未关联服务"

// NoCustomer fills the customer columns of a (source, service) pair the
// service serves no customer for.
const NoCustomer = "-"

// FlatRecord is one row of the fully expanded lineage table: one
// source-to-customer path through an asset, or a sentinel row when a
// hop is missing.
type FlatRecord struct {
	Key string `json:"key"`

	AssetID       string `json:"asset_id"`
	AssetName     string `json:"asset_name"`
	AssetNameEn   string `json:"asset_name_en"`
	AssetForm     string `json:"asset_form"`
	AssetCategory string `json:"asset_category"`

	SourceTableID      string `json:"source_table_id"` // derived six-digit code
	SourceTableName    string `json:"source_table_name"`
	SourceTableComment string `json:"source_table_comment"`
	SourceOrgID        string `json:"source_org_id"`
	UpdateFrequency    string `json:"update_frequency"`
	SourceSystem       string `json:"source_system"`

	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	ServiceType string `json:"service_type"`

	CustomerName     string `json:"customer_name"`
	CustomerFullName string `json:"customer_full_name"`
	CustomerType     string `json:"customer_type"`
}

// Flatten expands the snapshot into one record per lineage path. Assets
// are visited in collection order; each asset contributes the cartesian
// product of its feeding sources and powered services, fanned out per
// customer of the service. An asset missing either hop contributes a
// single sentinel row instead.
func Flatten(snap *catalog.Snapshot) []FlatRecord {
	idx := catalog.BuildIndex(snap)
	var records []FlatRecord

	for _, asset := range snap.Assets {
		sourceIDs := idx.SourcesByAsset[asset.ID]
		serviceIDs := idx.ServicesByAsset[asset.ID]

		if len(sourceIDs) == 0 || len(serviceIDs) == 0 {
			rec := FlatRecord{
				Key:           asset.ID + "-none-none",
				AssetID:       asset.AssetID,
				AssetName:     asset.AssetName,
				AssetNameEn:   asset.AssetNameEn,
				AssetForm:     asset.AssetForm,
				AssetCategory: asset.AssetCategory,
			}
			if len(serviceIDs) == 0 {
				rec.ServiceName = UnlinkedService
			}
			records = append(records, rec)
			continue
		}

		for _, sourceID := range sourceIDs {
			source := idx.Sources[sourceID]
			for _, serviceID := range serviceIDs {
				service := idx.Services[serviceID]
				base := FlatRecord{
					AssetID:            asset.AssetID,
					AssetName:          asset.AssetName,
					AssetNameEn:        asset.AssetNameEn,
					AssetForm:          asset.AssetForm,
					AssetCategory:      asset.AssetCategory,
					SourceTableID:      TableCode(source.ID),
					SourceTableName:    source.TableName,
					SourceTableComment: source.TableComment,
					SourceOrgID:        orgBusinessID(idx, source.OrgID),
					UpdateFrequency:    source.UpdateFrequency,
					SourceSystem:       source.SourceSystem,
					ServiceID:          service.ServiceID,
					ServiceName:        service.ServiceName,
					ServiceType:        service.ServiceType,
				}

				customerIDs := idx.CustomersByService[serviceID]
				if len(customerIDs) == 0 {
					rec := base
					rec.Key = asset.ID + "-" + sourceID + "-" + serviceID + "-none"
					rec.CustomerName = NoCustomer
					rec.CustomerFullName = NoCustomer
					records = append(records, rec)
					continue
				}
				for _, customerID := range customerIDs {
					customer := idx.Customers[customerID]
					rec := base
					rec.Key = asset.ID + "-" + sourceID + "-" + serviceID + "-" + customerID
					rec.CustomerName = customer.CustomerName
					rec.CustomerFullName = customer.CustomerFullName
					rec.CustomerType = customer.CustomerType
					records = append(records, rec)
				}
			}
		}
	}

	return records
}

func orgBusinessID(idx *catalog.Index, orgID string) string {
	if orgID == "" {
		return ""
	}
	if org, ok := idx.Orgs[orgID]; ok {
		return org.OrgID
	}
	return orgID
}

// Criteria is the conjunctive filter state of the flat lineage table.
// Empty fields match everything; set fields match by case-insensitive
// substring.
type Criteria struct {
	SourceOrgID        string
	SourceTableName    string
	SourceTableComment string
	AssetName          string
	AssetNameEn        string
	ServiceName        string
	CustomerFullName   string
}

// FilterRecords applies the criteria, preserving input order.
func FilterRecords(records []FlatRecord, c Criteria) []FlatRecord {
	var out []FlatRecord
	for _, r := range records {
		if !matches(r.SourceOrgID, c.SourceOrgID) {
			continue
		}
		if !matches(r.SourceTableName, c.SourceTableName) {
			continue
		}
		if !matches(r.SourceTableComment, c.SourceTableComment) {
			continue
		}
		if !matches(r.AssetName, c.AssetName) {
			continue
		}
		if !matches(r.AssetNameEn, c.AssetNameEn) {
			continue
		}
		if !matches(r.ServiceName, c.ServiceName) {
			continue
		}
		if !matches(r.CustomerFullName, c.CustomerFullName) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

// Aggregates summarizes one flat record set.
type Aggregates struct {
	Total          int
	Assets         int // distinct asset business ids
	SourceTables   int // distinct non-empty source table names
	Services       int // distinct non-empty service business ids
	Customers      int // distinct real customer names
	UnlinkedAssets int // distinct assets carrying the unlinked sentinel
}

// Aggregate computes distinct-entity counts over the given records.
// Callers wanting totals independent of the active filters pass the
// unfiltered set.
func Aggregate(records []FlatRecord) Aggregates {
	assets := map[string]bool{}
	sources := map[string]bool{}
	services := map[string]bool{}
	customers := map[string]bool{}
	unlinked := map[string]bool{}

	for _, r := range records {
		assets[r.AssetID] = true
		if r.SourceTableName != "" {
			sources[r.SourceTableName] = true
		}
		if r.ServiceID != "" {
			services[r.ServiceID] = true
		}
		if r.CustomerName != "" && r.CustomerName != NoCustomer {
			customers[r.CustomerName] = true
		}
		if r.ServiceName == UnlinkedService {
			unlinked[r.AssetID] = true
		}
	}

	return Aggregates{
		Total:          len(records),
		Assets:         len(assets),
		SourceTables:   len(sources),
		Services:       len(services),
		Customers:      len(customers),
		UnlinkedAssets: len(unlinked),
	}
}
