package tui

import (
	"fmt"
	"strings"
)

func (m Model) viewCatalog() string {
	s := strings.Builder{}

	assets := m.snapshot.Assets
	if len(assets) == 0 {
		return "\n   " + subtle.Render("目录为空，无数据资产。")
	}

	s.WriteString(dimStyle.Render(fmt.Sprintf("  %-8s | %-22s | %-6s | %-8s | %s",
		"资产ID", "资产名称", "形态", "分类", "英文名")) + "\n")
	s.WriteString(dimStyle.Render("  "+strings.Repeat("─", 70)) + "\n")

	start, end := m.calculateWindow(m.catalogCursor, len(assets))
	for i := start; i < end; i++ {
		a := assets[i]
		cursor := "  "
		if i == m.catalogCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%-8s | %-22s | %-6s | %-8s | %s",
			a.AssetID, truncate(a.AssetName, 22), a.AssetForm, a.AssetCategory, a.AssetNameEn)
		if i == m.catalogCursor {
			s.WriteString(listSelectedStyle.Render(cursor+line) + "\n")
		} else {
			s.WriteString(listNormalStyle.Render(cursor+line) + "\n")
		}
	}

	s.WriteString("\n" + subtle.Render(fmt.Sprintf("  共 %d 项资产", len(assets))))
	return s.String()
}
