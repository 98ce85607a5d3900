// Package catalog defines the governance entity model: source organizations
// and tables, curated data assets, product services, customers, and the
// relation sets that link them. A Snapshot is the atomic unit every
// derivation consumes; nothing downstream mutates it.
package catalog

// NodeType discriminates entries in the full lineage node set.
type NodeType string

const (
	NodeOrg      NodeType = "org"
	NodeSource   NodeType = "source"
	NodeAsset    NodeType = "asset"
	NodeService  NodeType = "service"
	NodeCustomer NodeType = "customer"
)

// SourceOrg is the organization owning one or more source tables.
type SourceOrg struct {
	ID      string `yaml:"id" json:"id"`
	OrgID   string `yaml:"org_id" json:"org_id"` // business identifier, e.g. BM00001-068
	OrgName string `yaml:"org_name" json:"org_name"`
}

// SourceTable is a raw upstream table feeding one or more data assets.
type SourceTable struct {
	ID              string `yaml:"id" json:"id"`
	TableName       string `yaml:"table_name" json:"table_name"`       // physical/English name
	TableComment    string `yaml:"table_comment" json:"table_comment"` // Chinese display name
	SourceSystem    string `yaml:"source_system" json:"source_system"`
	UpdateFrequency string `yaml:"update_frequency" json:"update_frequency"`
	OrgID           string `yaml:"org_id" json:"org_id"` // owning SourceOrg internal id; may be empty
}

// DataAsset is a curated, published data product.
type DataAsset struct {
	ID            string `yaml:"id" json:"id"`
	AssetID       string `yaml:"asset_id" json:"asset_id"` // business identifier, e.g. AST001
	AssetName     string `yaml:"asset_name" json:"asset_name"`
	AssetNameEn   string `yaml:"asset_name_en" json:"asset_name_en"`
	AssetCategory string `yaml:"asset_category" json:"asset_category"`
	AssetForm     string `yaml:"asset_form" json:"asset_form"` // e.g. 数据集 vs 接口
}

// ProductService is a downstream service offering built on data assets.
type ProductService struct {
	ID          string `yaml:"id" json:"id"`
	ServiceID   string `yaml:"service_id" json:"service_id"` // business identifier, e.g. SVC001
	ServiceName string `yaml:"service_name" json:"service_name"`
	ServiceType string `yaml:"service_type" json:"service_type"`
}

// Customer consumes one or more product services.
type Customer struct {
	ID               string `yaml:"id" json:"id"`
	CustomerName     string `yaml:"customer_name" json:"customer_name"` // short name
	CustomerFullName string `yaml:"customer_full_name" json:"customer_full_name"`
	CustomerType     string `yaml:"customer_type" json:"customer_type"`
}

// Relation is one directed pair between entity internal ids.
type Relation struct {
	SourceID string `yaml:"source" json:"source"`
	TargetID string `yaml:"target" json:"target"`
}

// Snapshot bundles the four entity collections and three relation
// collections supplied to one derivation call. Collection order is
// significant: derived output is deterministic in it.
type Snapshot struct {
	Orgs      []SourceOrg      `yaml:"orgs" json:"orgs"`
	Sources   []SourceTable    `yaml:"sources" json:"sources"`
	Assets    []DataAsset      `yaml:"assets" json:"assets"`
	Services  []ProductService `yaml:"services" json:"services"`
	Customers []Customer       `yaml:"customers" json:"customers"`

	SourceToAsset     []Relation `yaml:"source_to_asset" json:"source_to_asset"`         // source table feeds asset
	AssetToService    []Relation `yaml:"asset_to_service" json:"asset_to_service"`       // asset powers service
	ServiceToCustomer []Relation `yaml:"service_to_customer" json:"service_to_customer"` // service serves customer
}

// TypedNode is one entry of the full lineage node set as returned by a
// Store. Exactly one payload pointer is set, matching Type.
type TypedNode struct {
	ID   string   `yaml:"id" json:"id"`
	Type NodeType `yaml:"type" json:"type"`

	Org      *SourceOrg      `yaml:"org,omitempty" json:"org,omitempty"`
	Source   *SourceTable    `yaml:"source,omitempty" json:"source,omitempty"`
	Asset    *DataAsset      `yaml:"asset,omitempty" json:"asset,omitempty"`
	Service  *ProductService `yaml:"service,omitempty" json:"service,omitempty"`
	Customer *Customer       `yaml:"customer,omitempty" json:"customer,omitempty"`
}

// LineageData is the wire shape of the data-access boundary: a typed node
// set plus untyped edges. SnapshotFrom classifies it back into relation
// collections.
type LineageData struct {
	Nodes []TypedNode `yaml:"nodes" json:"nodes"`
	Edges []Relation  `yaml:"edges" json:"edges"`
}
