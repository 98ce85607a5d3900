package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) viewAlerts() string {
	s := strings.Builder{}

	// Stat cards track the filtered view.
	st := m.alertStats
	cards := []string{
		cardStyle.Render(fmt.Sprintf("告警总数\n%s", danger.Render(fmt.Sprintf("%d", st.Total)))),
		cardStyle.Render(fmt.Sprintf("接口质量\n%s", special.Render(fmt.Sprintf("%d", st.Interface)))),
		cardStyle.Render(fmt.Sprintf("库表更新\n%s", special.Render(fmt.Sprintf("%d", st.Table)))),
		cardStyle.Render(fmt.Sprintf("指标质量\n%s", special.Render(fmt.Sprintf("%d", st.Indicator)))),
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	var filters []string
	if m.alertCriteria.Source != "" {
		filters = append(filters, fmt.Sprintf("[来源: %s]", m.alertCriteria.Source.DisplayName()))
	}
	if m.alertCriteria.ObjectName != "" {
		filters = append(filters, fmt.Sprintf("[对象: %s]", m.alertCriteria.ObjectName))
	}
	if len(filters) > 0 {
		s.WriteString(warning.Render(" "+strings.Join(filters, " ")) + "\n")
	}

	if len(m.filteredAlerts) == 0 {
		return s.String() + "\n   " + subtle.Render("暂无告警消息")
	}

	s.WriteString(dimStyle.Render(fmt.Sprintf("  %-8s | %-16s | %-16s | %-16s | %-8s | %s",
		"来源", "告警时间", "对象ID", "对象名称", "类型", "详情")) + "\n")
	s.WriteString(dimStyle.Render("  "+strings.Repeat("─", 110)) + "\n")

	start, end := m.calculateWindow(m.alertsCursor, len(m.filteredAlerts))
	for i := start; i < end; i++ {
		a := m.filteredAlerts[i]
		cursor := "  "
		if i == m.alertsCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%-8s | %-16s | %-16s | %-16s | %-8s | %s",
			a.Source.DisplayName(),
			a.Time.Format("2006-01-02 15:04"),
			truncate(a.ObjectID, 16),
			truncate(a.ObjectName, 16),
			a.Type,
			truncate(a.Message, 36),
		)
		if a.Level == "error" {
			line = lipgloss.NewStyle().Foreground(colorDanger).Render(line)
		}
		if i == m.alertsCursor {
			s.WriteString(listSelectedStyle.Render(cursor+line) + "\n")
		} else {
			s.WriteString(listNormalStyle.Render(cursor+line) + "\n")
		}
	}

	s.WriteString("\n" + subtle.Render(fmt.Sprintf("  共 %d 条（仅显示近90天数据）", len(m.filteredAlerts))))
	return s.String()
}
