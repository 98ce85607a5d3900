package catalog

// NewMockStore returns a store seeded with the demo governance dataset:
// one source organization, six source tables, five published assets, six
// product services, and six customers, linked by the standard demo
// relation topology.
func NewMockStore() *StaticStore {
	return NewStaticStore(mockSnapshot())
}

func mockSnapshot() *Snapshot {
	return &Snapshot{
		Orgs: []SourceOrg{
			{ID: "org-1", OrgID: "BM00001-068", OrgName: "市市场监督管理局"},
		},
		Sources: []SourceTable{
			{ID: "src-1", TableName: "T_ENTERPRISE_BASE", TableComment: "企业基础信息表", SourceSystem: "工商系统", UpdateFrequency: "每日更新", OrgID: "org-1"},
			{ID: "src-2", TableName: "T_TAX_RECORD", TableComment: "企业纳税记录表", SourceSystem: "税务系统", UpdateFrequency: "每月更新", OrgID: "org-1"},
			{ID: "src-3", TableName: "T_PENALTY_INFO", TableComment: "行政处罚信息表", SourceSystem: "处罚系统", UpdateFrequency: "实时更新", OrgID: "org-1"},
			{ID: "src-4", TableName: "T_CREDIT_RECORD", TableComment: "企业信用记录表", SourceSystem: "征信系统", UpdateFrequency: "每日更新", OrgID: "org-1"},
			{ID: "src-5", TableName: "T_LEGAL_CASE", TableComment: "法律诉讼信息表", SourceSystem: "法院系统", UpdateFrequency: "每周更新", OrgID: "org-1"},
			{ID: "src-6", TableName: "T_FINANCIAL_DATA", TableComment: "企业财务数据表", SourceSystem: "财务系统", UpdateFrequency: "每月更新", OrgID: "org-1"},
		},
		Assets: []DataAsset{
			{ID: "asset-1", AssetID: "AST001", AssetName: "企业信用评分数据集", AssetNameEn: "enterprise_credit_score", AssetCategory: "信用类", AssetForm: "数据集"},
			{ID: "asset-2", AssetID: "AST002", AssetName: "行政处罚记录API", AssetNameEn: "admin_penalty_record", AssetCategory: "监管类", AssetForm: "接口"},
			{ID: "asset-3", AssetID: "AST003", AssetName: "工商注册信息报表", AssetNameEn: "business_registration", AssetCategory: "工商类", AssetForm: "报表"},
			{ID: "asset-4", AssetID: "AST004", AssetName: "法律诉讼风险数据集", AssetNameEn: "legal_case_risk", AssetCategory: "司法类", AssetForm: "数据集"},
			{ID: "asset-5", AssetID: "AST005", AssetName: "财务健康度接口", AssetNameEn: "financial_health", AssetCategory: "财务类", AssetForm: "接口"},
		},
		Services: []ProductService{
			{ID: "service-1", ServiceID: "SVC001", ServiceName: "企业风控查询服务", ServiceType: "风控服务"},
			{ID: "service-2", ServiceID: "SVC002", ServiceName: "普惠金融信用核验", ServiceType: "信用服务"},
			{ID: "service-3", ServiceID: "SVC003", ServiceName: "政务数据开放接口", ServiceType: "数据开放"},
			{ID: "service-4", ServiceID: "SVC004", ServiceName: "企业背景调查API", ServiceType: "背景调查"},
			{ID: "service-5", ServiceID: "SVC005", ServiceName: "供应链金融风控", ServiceType: "风控服务"},
			{ID: "service-6", ServiceID: "SVC006", ServiceName: "企业信用报告服务", ServiceType: "报告服务"},
		},
		Customers: []Customer{
			{ID: "cust-1", CustomerName: "工商银行", CustomerFullName: "中国工商银行股份有限公司深圳分行", CustomerType: "金融机构"},
			{ID: "cust-2", CustomerName: "建设银行", CustomerFullName: "中国建设银行股份有限公司深圳分行", CustomerType: "金融机构"},
			{ID: "cust-3", CustomerName: "某市大数据局", CustomerFullName: "深圳市政务服务数据管理局", CustomerType: "政府机构"},
			{ID: "cust-4", CustomerName: "招商银行", CustomerFullName: "招商银行股份有限公司深圳分行", CustomerType: "金融机构"},
			{ID: "cust-5", CustomerName: "某省金融办", CustomerFullName: "广东省人民政府金融工作办公室", CustomerType: "政府机构"},
			{ID: "cust-6", CustomerName: "平安银行", CustomerFullName: "平安银行股份有限公司深圳分行", CustomerType: "金融机构"},
		},
		SourceToAsset: []Relation{
			{SourceID: "src-1", TargetID: "asset-1"},
			{SourceID: "src-2", TargetID: "asset-1"},
			{SourceID: "src-3", TargetID: "asset-2"},
			{SourceID: "src-1", TargetID: "asset-3"},
			{SourceID: "src-5", TargetID: "asset-4"},
			{SourceID: "src-4", TargetID: "asset-1"},
			{SourceID: "src-6", TargetID: "asset-5"},
		},
		AssetToService: []Relation{
			{SourceID: "asset-1", TargetID: "service-1"},
			{SourceID: "asset-1", TargetID: "service-2"},
			{SourceID: "asset-1", TargetID: "service-6"},
			{SourceID: "asset-2", TargetID: "service-1"},
			{SourceID: "asset-2", TargetID: "service-4"},
			{SourceID: "asset-3", TargetID: "service-3"},
			{SourceID: "asset-3", TargetID: "service-4"},
			{SourceID: "asset-4", TargetID: "service-4"},
			{SourceID: "asset-4", TargetID: "service-6"},
			{SourceID: "asset-5", TargetID: "service-5"},
		},
		ServiceToCustomer: []Relation{
			{SourceID: "service-1", TargetID: "cust-1"},
			{SourceID: "service-1", TargetID: "cust-2"},
			{SourceID: "service-1", TargetID: "cust-4"},
			{SourceID: "service-2", TargetID: "cust-2"},
			{SourceID: "service-2", TargetID: "cust-6"},
			{SourceID: "service-3", TargetID: "cust-3"},
			{SourceID: "service-3", TargetID: "cust-5"},
			{SourceID: "service-4", TargetID: "cust-1"},
			{SourceID: "service-4", TargetID: "cust-4"},
			{SourceID: "service-5", TargetID: "cust-2"},
			{SourceID: "service-5", TargetID: "cust-6"},
			{SourceID: "service-6", TargetID: "cust-1"},
			{SourceID: "service-6", TargetID: "cust-4"},
		},
	}
}
