package quality

import "github.com/luckydata/govlens/pkg/config"

// MockInterfaces returns the demo monitor set: ten interfaces with
// seeded window metrics, all carrying the standard realtime rules.
func MockInterfaces() []Interface {
	return []Interface{
		mockItem("1", "API001", "企业信用查询", "DS-00001", true, "13800138001",
			[]ImpactProduct{
				{ProductID: "PRD001", ProductName: "企业风控查询服务", CustomerNames: []string{"中国工商银行股份有限公司深圳分行", "招商银行股份有限公司"}},
				{ProductID: "PRD002", ProductName: "企业信用评估服务", CustomerNames: []string{"中国银行股份有限公司", "中国建设银行股份有限公司"}},
			},
			Sample{99.8, 120, 0.01, 1250}, Sample{99.7, 125, 0.02, 3750}, Sample{99.75, 123, 0.015, 112500}, Sample{99.72, 128, 0.018, 1350000}),
		mockItem("2", "API002", "行政处罚查询", "DS-00002", true, "13800138002",
			[]ImpactProduct{
				{ProductID: "PRD004", ProductName: "行政处罚查询服务", CustomerNames: []string{"中国建设银行股份有限公司", "中国银行股份有限公司"}},
				{ProductID: "PRD005", ProductName: "企业信用报告服务", CustomerNames: []string{"中国平安银行股份有限公司"}},
				{ProductID: "PRD006", ProductName: "司法诉讼查询服务", CustomerNames: []string{"中国民生银行股份有限公司"}},
			},
			Sample{95.5, 450, 0.15, 890}, Sample{96.2, 380, 0.12, 2670}, Sample{95.8, 415, 0.135, 80100}, Sample{95.6, 420, 0.14, 961200}),
		mockItem("3", "API003", "社保信息查询", "DS-00003", true, "13800138003",
			[]ImpactProduct{
				{ProductID: "PRD003", ProductName: "社保信息查询服务", CustomerNames: []string{"中国工商银行股份有限公司深圳分行", "招商银行股份有限公司"}},
			},
			Sample{85.2, 820, 0.68, 560}, Sample{88.5, 680, 0.48, 1680}, Sample{86.8, 750, 0.58, 50400}, Sample{87.2, 760, 0.55, 604800}),
		mockItem("4", "API004", "工商信息查询", "DS-00001", false, "",
			[]ImpactProduct{
				{ProductID: "PRD002", ProductName: "企业信用评估服务", CustomerNames: []string{"中国银行股份有限公司"}},
			},
			Sample{99.9, 150, 0.01, 1520}, Sample{99.8, 155, 0.02, 4560}, Sample{99.85, 152, 0.015, 136800}, Sample{99.82, 158, 0.018, 1641600}),
		mockItem("5", "API005", "纳税信用查询", "DS-00001", true, "13800138005",
			[]ImpactProduct{
				{ProductID: "PRD008", ProductName: "纳税信用查询服务", CustomerNames: []string{"中国光大银行股份有限公司"}},
			},
			Sample{99.2, 200, 0.03, 780}, Sample{99.4, 195, 0.03, 2340}, Sample{99.3, 197, 0.028, 70200}, Sample{99.28, 202, 0.032, 842400}),
		mockItem("6", "API006", "司法诉讼查询", "DS-00002", true, "13800138006",
			[]ImpactProduct{
				{ProductID: "PRD005", ProductName: "企业信用报告服务", CustomerNames: []string{"中国平安银行股份有限公司"}},
				{ProductID: "PRD009", ProductName: "司法诉讼查询服务", CustomerNames: []string{"中国农业银行股份有限公司", "交通银行股份有限公司"}},
			},
			Sample{97.5, 280, 0.08, 650}, Sample{98.1, 265, 0.06, 1950}, Sample{97.8, 272, 0.07, 58500}, Sample{97.6, 275, 0.075, 702000}),
		mockItem("7", "API007", "知识产权查询", "DS-00001", true, "13800138007",
			[]ImpactProduct{
				{ProductID: "PRD006", ProductName: "知识产权查询服务", CustomerNames: []string{"中国民生银行股份有限公司"}},
			},
			Sample{99.5, 180, 0.02, 920}, Sample{99.6, 175, 0.015, 2760}, Sample{99.55, 177, 0.018, 82800}, Sample{99.52, 179, 0.019, 993600}),
		mockItem("8", "API008", "招投标信息查询", "DS-00002", true, "13800138008",
			[]ImpactProduct{
				{ProductID: "PRD009", ProductName: "招投标信息查询服务", CustomerNames: []string{"中国农业银行股份有限公司"}},
				{ProductID: "PRD010", ProductName: "政府采购查询服务", CustomerNames: []string{"交通银行股份有限公司", "中国光大银行股份有限公司"}},
			},
			Sample{96.8, 350, 0.11, 480}, Sample{97.5, 320, 0.09, 1440}, Sample{97.1, 335, 0.10, 43200}, Sample{96.9, 342, 0.105, 518400}),
		mockItem("9", "API009", "海关进出口查询", "DS-00002", true, "13800138009",
			[]ImpactProduct{
				{ProductID: "PRD010", ProductName: "海关进出口查询服务", CustomerNames: []string{"交通银行股份有限公司"}},
			},
			Sample{99.1, 220, 0.04, 580}, Sample{99.3, 215, 0.035, 1740}, Sample{99.2, 217, 0.038, 52200}, Sample{99.15, 219, 0.039, 626400}),
		mockItem("10", "API010", "环保处罚查询", "DS-00002", true, "13800138010",
			[]ImpactProduct{
				{ProductID: "PRD007", ProductName: "员工背景调查服务", CustomerNames: []string{"中国民生银行股份有限公司"}},
				{ProductID: "PRD004", ProductName: "行政处罚查询服务", CustomerNames: []string{"中国建设银行股份有限公司"}},
			},
			Sample{94.2, 520, 0.22, 320}, Sample{95.8, 480, 0.18, 960}, Sample{95.0, 500, 0.20, 28800}, Sample{94.8, 505, 0.205, 345600}),
	}
}

func mockItem(id, apiID, name, orgID string, alertEnabled bool, phones string, products []ImpactProduct, m10, m30, month, year Sample) Interface {
	return Interface{
		ID:             id,
		InterfaceID:    apiID,
		InterfaceName:  name,
		SourceOrgID:    orgID,
		ImpactProducts: products,
		Metrics: map[Window]Sample{
			Window10m:   m10,
			Window30m:   m30,
			WindowMonth: month,
			WindowYear:  year,
		},
		AlertEnabled: alertEnabled,
		AlertPhones:  phones,
		Rules:        standardRules(),
	}
}

func standardRules() []Rule {
	def := config.DefaultQualityConfig()
	var rules []Rule
	for _, win := range RealtimeWindows {
		rules = append(rules, Rule{
			Window:                win,
			QueryRateThreshold:    def.QueryRateThreshold,
			ResponseTimeThreshold: def.ResponseTimeThresholdMs,
			ErrorRateThreshold:    def.ErrorRateThreshold,
		})
	}
	return rules
}
