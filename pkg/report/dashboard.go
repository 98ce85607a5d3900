package report

import (
	"html/template"
	"os"
	"time"

	"github.com/luckydata/govlens/pkg/lineage"
	"github.com/luckydata/govlens/pkg/version"
)

type dashboardData struct {
	AppName   string
	Version   string
	Generated string
	Stats     lineage.Aggregates
	Records   []dashboardRow
}

type dashboardRow struct {
	Index              int
	AssetID            string
	AssetName          string
	SourceOrgID        string
	SourceTableID      string
	SourceTableName    string
	SourceTableComment string
	ServiceCode        string
	ServiceName        string
	CustomerFullName   string
	Unlinked           bool
}

// WriteDashboard renders a self-contained HTML dashboard: aggregate
// stat cards over the full record set plus the flattened lineage table.
func WriteDashboard(records []lineage.FlatRecord, path string) error {
	data := dashboardData{
		AppName:   version.AppName,
		Version:   version.Current,
		Generated: time.Now().Format("2006-01-02 15:04:05"),
		Stats:     lineage.Aggregate(records),
	}
	for i, r := range records {
		data.Records = append(data.Records, dashboardRow{
			Index:              i + 1,
			AssetID:            r.AssetID,
			AssetName:          r.AssetName,
			SourceOrgID:        orDash(r.SourceOrgID),
			SourceTableID:      orDash(r.SourceTableID),
			SourceTableName:    orDash(r.SourceTableName),
			SourceTableComment: orDash(r.SourceTableComment),
			ServiceCode:        serviceCode(r.ServiceID),
			ServiceName:        orDash(r.ServiceName),
			CustomerFullName:   orDash(r.CustomerFullName),
			Unlinked:           r.ServiceName == lineage.UnlinkedService,
		})
	}

	tmpl, err := template.New("dashboard").Parse(dashboardTemplate)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

const dashboardTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.AppName}} 数据血缘报表</title>
    <style>
        :root {
            --bg: #050505;
            --surface: rgba(255, 255, 255, 0.03);
            --border: rgba(255, 255, 255, 0.1);
            --primary: #00FF99;
            --warn: #FF3366;
            --text: #F8FAFC;
            --text-dim: #94A3B8;
        }
        * { box-sizing: border-box; }
        body {
            background: var(--bg);
            color: var(--text);
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", "PingFang SC", "Microsoft YaHei", sans-serif;
            margin: 0;
            padding: 40px;
            font-size: 14px;
        }
        .header {
            display: flex;
            justify-content: space-between;
            align-items: center;
            margin-bottom: 40px;
            border-bottom: 1px solid var(--border);
            padding-bottom: 20px;
        }
        .logo { font-size: 1.5rem; font-weight: 700; }
        .logo span { color: var(--primary); }
        .meta { color: var(--text-dim); }
        .kpi-grid {
            display: grid;
            grid-template-columns: repeat(6, 1fr);
            gap: 20px;
            margin-bottom: 40px;
        }
        .card {
            background: var(--surface);
            border: 1px solid var(--border);
            border-radius: 16px;
            padding: 24px;
        }
        .card h3 { margin: 0 0 10px 0; font-size: 0.75rem; color: var(--text-dim); letter-spacing: 1.2px; }
        .card .value { font-size: 2.2rem; font-weight: 700; }
        .card .value.unlinked { color: var(--warn); }
        table { width: 100%; border-collapse: collapse; }
        th, td { padding: 10px 12px; text-align: left; border-bottom: 1px solid var(--border); }
        th { color: var(--text-dim); font-weight: 500; font-size: 0.75rem; letter-spacing: 1px; }
        tr.unlinked td { color: var(--warn); }
    </style>
</head>
<body>
    <div class="header">
        <div class="logo">{{.AppName}} <span>数据血缘报表</span></div>
        <div class="meta">{{.Version}} · {{.Generated}}</div>
    </div>
    <div class="kpi-grid">
        <div class="card"><h3>血缘记录</h3><div class="value">{{.Stats.Total}}</div></div>
        <div class="card"><h3>数据资产</h3><div class="value">{{.Stats.Assets}}</div></div>
        <div class="card"><h3>来源表</h3><div class="value">{{.Stats.SourceTables}}</div></div>
        <div class="card"><h3>数据产品</h3><div class="value">{{.Stats.Services}}</div></div>
        <div class="card"><h3>客户</h3><div class="value">{{.Stats.Customers}}</div></div>
        <div class="card"><h3>未关联资产</h3><div class="value unlinked">{{.Stats.UnlinkedAssets}}</div></div>
    </div>
    <table>
        <thead>
            <tr>
                <th>序号</th><th>资产ID</th><th>资产名称</th><th>数据源机构ID</th>
                <th>源表ID</th><th>源表英文名</th><th>源表中文名</th>
                <th>产品ID</th><th>产品名称</th><th>客户名称</th>
            </tr>
        </thead>
        <tbody>
            {{range .Records}}
            <tr{{if .Unlinked}} class="unlinked"{{end}}>
                <td>{{.Index}}</td><td>{{.AssetID}}</td><td>{{.AssetName}}</td><td>{{.SourceOrgID}}</td>
                <td>{{.SourceTableID}}</td><td>{{.SourceTableName}}</td><td>{{.SourceTableComment}}</td>
                <td>{{.ServiceCode}}</td><td>{{.ServiceName}}</td><td>{{.CustomerFullName}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>
</body>
</html>
`
