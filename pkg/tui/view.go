package tui

import (
	"fmt"
	"strings"
)

var tabNames = []string{"资产目录", "血缘图", "血缘报表", "接口质量", "告警中心"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return fmt.Sprintf("\n\n   %s Loading governance snapshot...\n\n   %s",
			m.spinner.View(), helpStyle("Press q to quit"))
	}

	s := strings.Builder{}
	s.WriteString(titleStyle.Render("GOVLENS CONSOLE"))
	s.WriteString("\n ")
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if ViewState(i) == m.state {
			s.WriteString(tabActiveStyle.Render("[" + label + "]"))
		} else {
			s.WriteString(tabInactiveStyle.Render(" " + label + " "))
		}
	}
	s.WriteString("\n\n")

	switch m.state {
	case ViewStateCatalog:
		s.WriteString(m.viewCatalog())
	case ViewStateLineage:
		s.WriteString(m.viewLineage())
	case ViewStateReport:
		s.WriteString(m.viewReport())
	case ViewStateQuality:
		s.WriteString(m.viewQuality())
	case ViewStateAlerts:
		s.WriteString(m.viewAlerts())
	}

	s.WriteString("\n" + m.viewFooter())
	return s.String()
}

func (m Model) viewFooter() string {
	if m.editing {
		return special.Render(" 输入: ") + m.editBuffer + special.Render("▎") +
			helpStyle("  enter 确认 · esc 取消")
	}

	help := "q 退出 · tab/1-5 切换视图 · ↑/↓ 移动"
	switch m.state {
	case ViewStateCatalog:
		help += " · enter 查看血缘"
	case ViewStateLineage:
		help += " · l 层级 · t 类型 · / 关键字 · esc 清除"
	case ViewStateReport:
		help += " · f 筛选字段 · / 编辑筛选 · esc 清除"
	case ViewStateAlerts:
		help += " · s 告警来源 · / 对象名称 · esc 清除"
	}
	out := helpStyle(" " + help)
	if m.statusMsg != "" {
		out += "\n " + warning.Render(m.statusMsg)
	}
	return out
}

// calculateWindow clips a list to the visible rows around the cursor.
func (m Model) calculateWindow(cursor, total int) (int, int) {
	windowSize := m.height - 10
	if windowSize < 5 {
		windowSize = 5
	}

	start := cursor - (windowSize / 2)
	if start < 0 {
		start = 0
	}

	end := start + windowSize
	if end > total {
		end = total
		start = end - windowSize
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
