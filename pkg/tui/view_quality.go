package tui

import (
	"fmt"
	"strings"

	"github.com/luckydata/govlens/pkg/lineage"
	"github.com/luckydata/govlens/pkg/quality"
)

func (m Model) viewQuality() string {
	s := strings.Builder{}

	if len(m.items) == 0 {
		return "\n   " + subtle.Render("无监控接口。")
	}

	s.WriteString(dimStyle.Render(fmt.Sprintf("  %-7s | %-14s | %-4s | %-11s | %-9s | %-9s | %-8s | %s",
		"接口ID", "接口名称", "状态", "查得率(10m)", "响应(10m)", "错误率(10m)", "调用量", "服务产品")) + "\n")
	s.WriteString(dimStyle.Render("  "+strings.Repeat("─", 100)) + "\n")

	start, end := m.calculateWindow(m.qualityCursor, len(m.items))
	for i := start; i < end; i++ {
		item := m.items[i]
		sample := item.Metrics[quality.Window10m]
		cursor := "  "
		if i == m.qualityCursor {
			cursor = "> "
		}

		var codes []string
		for _, p := range item.ImpactProducts {
			codes = append(codes, lineage.ServiceCode(p.ProductID))
		}

		line := fmt.Sprintf("%-7s | %-14s | %s | %10.2f%% | %7.0fms | %9.2f%% | %8d | %s",
			item.InterfaceID,
			truncate(item.InterfaceName, 14),
			statusBadge(quality.ComputeStatus(item)),
			sample.QueryRate,
			sample.AvgResponseMs,
			sample.ErrorRate,
			sample.TotalCalls,
			strings.Join(codes, ","),
		)
		if i == m.qualityCursor {
			s.WriteString(listSelectedStyle.Render(cursor+line) + "\n")
		} else {
			s.WriteString(listNormalStyle.Render(cursor+line) + "\n")
		}
	}

	// Detail pane for the selected interface
	if m.qualityCursor < len(m.items) {
		item := m.items[m.qualityCursor]
		s.WriteString("\n" + highlight.Render("  预警配置") + "\n")
		enabled := "关闭"
		if item.AlertEnabled {
			enabled = "开启 · " + item.AlertPhones
		}
		s.WriteString(subtle.Render("    预警通知: "+enabled) + "\n")
		for _, r := range item.Rules {
			s.WriteString(subtle.Render(fmt.Sprintf("    %s: 查得率≥%.0f%% · 响应≤%.0fms · 错误率≤%.0f%%",
				r.Window.DisplayName(), r.QueryRateThreshold, r.ResponseTimeThreshold, r.ErrorRateThreshold)) + "\n")
		}
	}

	return s.String()
}

func statusBadge(st quality.Status) string {
	switch st {
	case quality.StatusNormal:
		return statusNormalStyle.String()
	case quality.StatusWarning:
		return statusWarningStyle.String()
	default:
		return statusErrorStyle.String()
	}
}
