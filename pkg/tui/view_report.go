package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luckydata/govlens/pkg/lineage"
)

func (m Model) viewReport() string {
	s := strings.Builder{}

	// Aggregates always reflect the unfiltered record set.
	agg := m.aggregates
	cards := []string{
		cardStyle.Render(fmt.Sprintf("血缘记录\n%s", special.Render(fmt.Sprintf("%d", agg.Total)))),
		cardStyle.Render(fmt.Sprintf("数据资产\n%s", special.Render(fmt.Sprintf("%d", agg.Assets)))),
		cardStyle.Render(fmt.Sprintf("来源表\n%s", special.Render(fmt.Sprintf("%d", agg.SourceTables)))),
		cardStyle.Render(fmt.Sprintf("数据产品\n%s", special.Render(fmt.Sprintf("%d", agg.Services)))),
		cardStyle.Render(fmt.Sprintf("客户\n%s", special.Render(fmt.Sprintf("%d", agg.Customers)))),
		cardStyle.Render(fmt.Sprintf("未关联资产\n%s", danger.Render(fmt.Sprintf("%d", agg.UnlinkedAssets)))),
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	// Active filter summary
	filterStatus := activeFilters(m.criteria)
	field := fmt.Sprintf(" 当前筛选字段: %s", reportFilterFields[m.filterField])
	if filterStatus != "" {
		s.WriteString(warning.Render(field+"  "+filterStatus) + "\n")
	} else {
		s.WriteString(dimStyle.Render(field) + "\n")
	}

	if len(m.filtered) == 0 {
		return s.String() + "\n   " + subtle.Render("暂无血缘数据")
	}

	s.WriteString(dimStyle.Render(fmt.Sprintf("  %-7s | %-18s | %-6s | %-20s | %-16s | %s",
		"资产ID", "资产名称", "源表ID", "源表英文名", "产品名称", "客户名称")) + "\n")
	s.WriteString(dimStyle.Render("  "+strings.Repeat("─", 96)) + "\n")

	start, end := m.calculateWindow(m.reportCursor, len(m.filtered))
	for i := start; i < end; i++ {
		r := m.filtered[i]
		cursor := "  "
		if i == m.reportCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%-7s | %-18s | %-6s | %-20s | %-16s | %s",
			r.AssetID,
			truncate(r.AssetName, 18),
			orDash(r.SourceTableID),
			orDash(truncate(r.SourceTableName, 20)),
			orDash(truncate(r.ServiceName, 16)),
			orDash(truncate(r.CustomerFullName, 20)),
		)
		if r.ServiceName == lineage.UnlinkedService {
			line = lipgloss.NewStyle().Foreground(colorDanger).Render(line)
		}
		if i == m.reportCursor {
			s.WriteString(listSelectedStyle.Render(cursor+line) + "\n")
		} else {
			s.WriteString(listNormalStyle.Render(cursor+line) + "\n")
		}
	}

	s.WriteString("\n" + subtle.Render(fmt.Sprintf("  显示 %d / %d 条", len(m.filtered), agg.Total)))
	return s.String()
}

func activeFilters(c lineage.Criteria) string {
	var parts []string
	add := func(label, v string) {
		if v != "" {
			parts = append(parts, fmt.Sprintf("[%s: %s]", label, v))
		}
	}
	add("机构", c.SourceOrgID)
	add("源表英文", c.SourceTableName)
	add("源表中文", c.SourceTableComment)
	add("资产中文", c.AssetName)
	add("资产英文", c.AssetNameEn)
	add("产品", c.ServiceName)
	add("客户", c.CustomerFullName)
	return strings.Join(parts, " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
