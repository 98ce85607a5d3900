package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/luckydata/govlens/pkg/lineage"
)

func sampleRecords() []lineage.FlatRecord {
	return []lineage.FlatRecord{
		{
			Key:                "asset-1-src-1-service-1-cust-1",
			AssetID:            "AST001",
			AssetName:          "企业信用评分数据集",
			AssetNameEn:        "enterprise_credit_score",
			AssetForm:          "数据集",
			AssetCategory:      "信用类",
			SourceTableID:      "000091",
			SourceTableName:    "T_ENTERPRISE_BASE",
			SourceTableComment: "企业基础信息表",
			SourceOrgID:        "BM00001-068",
			UpdateFrequency:    "每日更新",
			SourceSystem:       "工商系统",
			ServiceID:          "SVC001",
			ServiceName:        "企业风控查询服务",
			ServiceType:        "风控服务",
			CustomerName:       "工商银行",
			CustomerFullName:   "中国工商银行股份有限公司深圳分行",
			CustomerType:       "金融机构",
		},
		{
			Key:         "asset-2-none-none",
			AssetID:     "AST002",
			AssetName:   "未上架资产",
			ServiceName: lineage.UnlinkedService,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineage_report.csv")
	if err := WriteCSV(sampleRecords(), path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	g := goldie.New(t)
	g.Assert(t, "lineage_report", data)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	records := sampleRecords()
	path := filepath.Join(t.TempDir(), "lineage_report.json")
	if err := WriteJSON(records, path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []lineage.FlatRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Error("records did not survive the JSON round trip")
	}
}

func TestWriteDashboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.html")
	if err := WriteDashboard(sampleRecords(), path); err != nil {
		t.Fatalf("WriteDashboard: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)

	for _, want := range []string{
		"数据血缘报表",
		"AST001",
		"企业信用评分数据集",
		"CR0001",
		`<tr class="unlinked">`,
		"未关联服务",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}

	// One record carries the unlinked sentinel.
	if !strings.Contains(html, `<div class="value unlinked">1</div>`) {
		t.Error("unlinked asset KPI not rendered")
	}
}
