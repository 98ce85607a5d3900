package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luckydata/govlens/pkg/catalog"
	"github.com/luckydata/govlens/pkg/lineage"
)

// tierOrder lays the graph out left-to-right the way the lineage flows.
var tierOrder = []catalog.NodeType{
	catalog.NodeOrg,
	catalog.NodeSource,
	catalog.NodeAsset,
	catalog.NodeService,
	catalog.NodeCustomer,
}

var tierTitles = map[catalog.NodeType]string{
	catalog.NodeOrg:      "数据源机构",
	catalog.NodeSource:   "源数据表",
	catalog.NodeAsset:    "数据资产",
	catalog.NodeService:  "数据产品",
	catalog.NodeCustomer: "客户",
}

func (m Model) viewLineage() string {
	g := m.graph
	if g == nil || len(g.Nodes) == 0 {
		return "\n   " + subtle.Render("无血缘数据。")
	}

	s := strings.Builder{}

	// Filter status line
	status := fmt.Sprintf(" 焦点: %s", m.focusAssetID)
	if m.layer != lineage.LayerAll {
		status += fmt.Sprintf("  [层级: %s]", layerName(m.layer))
	}
	if m.typeFilter != lineage.TypeAll && m.typeFilter != "" {
		status += fmt.Sprintf("  [类型: %s]", typeFilterName(m.typeFilter))
	}
	if m.keyword != "" {
		status += fmt.Sprintf("  [关键字: %s]", m.keyword)
	}
	s.WriteString(warning.Render(status) + "\n\n")

	// Stat cards
	cards := []string{
		cardStyle.Render(fmt.Sprintf("上游源表\n%s", special.Render(fmt.Sprintf("%d", g.Stats.Sources)))),
		cardStyle.Render(fmt.Sprintf("下游产品\n%s", special.Render(fmt.Sprintf("%d", g.Stats.Services)))),
		cardStyle.Render(fmt.Sprintf("服务客户\n%s", special.Render(fmt.Sprintf("%d", g.Stats.Customers)))),
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	// Tiered node listing
	for _, tier := range tierOrder {
		var lines []string
		for _, n := range g.Nodes {
			if n.Type == tier {
				lines = append(lines, "    "+typeMark(n.Type).String()+" "+strings.ReplaceAll(n.Label, "\n", " · "))
			}
		}
		if len(lines) == 0 {
			continue
		}
		s.WriteString(highlight.Render("  "+tierTitles[tier]) + "\n")
		s.WriteString(strings.Join(lines, "\n") + "\n")
	}

	// Edge listing
	s.WriteString("\n" + dimStyle.Render(fmt.Sprintf("  连接 %d 条:", len(g.Edges))) + "\n")
	labels := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		labels[n.ID] = firstLine(n.Label)
	}
	for _, e := range g.Edges {
		s.WriteString(subtle.Render(fmt.Sprintf("    %s → %s", labels[e.Source], labels[e.Target])) + "\n")
	}

	return s.String()
}

func typeMark(t catalog.NodeType) lipgloss.Style {
	switch t {
	case catalog.NodeOrg:
		return markOrg
	case catalog.NodeSource:
		return markSource
	case catalog.NodeAsset:
		return markAsset
	case catalog.NodeService:
		return markService
	default:
		return markCustomer
	}
}

func firstLine(label string) string {
	if i := strings.IndexByte(label, '\n'); i >= 0 {
		return label[:i]
	}
	return label
}

func layerName(l lineage.Layer) string {
	switch l {
	case lineage.LayerUpstream:
		return "仅上游"
	case lineage.LayerDownstream:
		return "仅下游"
	}
	return "全部"
}

func typeFilterName(t lineage.TypeFilter) string {
	switch t {
	case lineage.TypeSource:
		return "来源"
	case lineage.TypeService:
		return "产品"
	case lineage.TypeCustomer:
		return "客户"
	}
	return "全部"
}
