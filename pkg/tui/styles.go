package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Future-Glass Palette
	colorNeonGreen  = lipgloss.Color("#00FF99") // Main Action / Success
	colorNeonPurple = lipgloss.Color("#874BFD") // Header / Border
	colorTextMain   = lipgloss.Color("#E2E8F0") // Main Text
	colorTextSub    = lipgloss.Color("#64748B") // Subtext
	colorDanger     = lipgloss.Color("#FF0055") // Critical
	colorWarning    = lipgloss.Color("#F59E0B") // Warning

	// Shared Styles
	subtle    = lipgloss.NewStyle().Foreground(colorTextSub)
	dimStyle  = lipgloss.NewStyle().Foreground(colorTextSub)
	highlight = lipgloss.NewStyle().Foreground(colorNeonPurple).Bold(true)
	special   = lipgloss.NewStyle().Foreground(colorNeonGreen).Bold(true)
	danger    = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	warning   = lipgloss.NewStyle().Foreground(colorWarning)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorNeonPurple).
			Bold(true).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorNeonGreen).
			Bold(true).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorTextSub).
				Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTextSub).
			Padding(0, 2).
			Margin(0, 1)

	// List Styles
	listSelectedStyle = lipgloss.NewStyle().
				Foreground(colorTextMain).
				Background(lipgloss.Color("#331832")).
				Bold(true)

	listNormalStyle = lipgloss.NewStyle().
			Foreground(colorTextSub)

	// Node type markers in the lineage tree
	markOrg      = lipgloss.NewStyle().Foreground(colorNeonPurple).SetString("[机构]")
	markSource   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1890FF")).SetString("[源表]")
	markAsset    = lipgloss.NewStyle().Foreground(colorWarning).SetString("[资产]")
	markService  = lipgloss.NewStyle().Foreground(colorNeonGreen).SetString("[产品]")
	markCustomer = lipgloss.NewStyle().Foreground(lipgloss.Color("#722ED1")).SetString("[客户]")

	statusNormalStyle  = lipgloss.NewStyle().Foreground(colorNeonGreen).SetString("正常")
	statusWarningStyle = lipgloss.NewStyle().Foreground(colorWarning).SetString("预警")
	statusErrorStyle   = lipgloss.NewStyle().Foreground(colorDanger).SetString("告警")
)

func helpStyle(s string) string {
	return lipgloss.NewStyle().Foreground(colorTextSub).Render(s)
}
