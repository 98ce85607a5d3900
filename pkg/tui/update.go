package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/luckydata/govlens/pkg/alerts"
	"github.com/luckydata/govlens/pkg/lineage"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg), nil
		}
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case loadedMsg:
		m.loading = false

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "1":
		m.state = ViewStateCatalog
	case "2":
		m.state = ViewStateLineage
	case "3":
		m.state = ViewStateReport
	case "4":
		m.state = ViewStateQuality
	case "5":
		m.state = ViewStateAlerts
	case "tab":
		m.state = (m.state + 1) % 5

	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)

	case "enter", " ":
		if m.state == ViewStateCatalog && m.catalogCursor < len(m.snapshot.Assets) {
			m.focusAssetID = m.snapshot.Assets[m.catalogCursor].AssetID
			m.keyword = ""
			m.rebuildGraph()
			m.state = ViewStateLineage
		}

	case "l":
		if m.state == ViewStateLineage {
			m.layer = nextLayer(m.layer)
			m.rebuildGraph()
		}
	case "t":
		if m.state == ViewStateLineage {
			m.typeFilter = nextTypeFilter(m.typeFilter)
			m.rebuildGraph()
		}

	case "f":
		if m.state == ViewStateReport {
			m.filterField = (m.filterField + 1) % len(reportFilterFields)
		}

	case "s":
		if m.state == ViewStateAlerts {
			m.alertCriteria.Source = nextAlertSource(m.alertCriteria.Source)
			m.refilterAlerts()
		}

	case "/":
		switch m.state {
		case ViewStateLineage:
			m.editing = true
			m.editBuffer = m.keyword
		case ViewStateReport:
			m.editing = true
			m.editBuffer = *m.criteriaField(m.filterField)
		case ViewStateAlerts:
			m.editing = true
			m.editBuffer = m.alertCriteria.ObjectName
		}

	case "esc":
		switch m.state {
		case ViewStateLineage:
			m.keyword = ""
			m.rebuildGraph()
		case ViewStateReport:
			m.criteria = lineage.Criteria{}
			m.refilterReport()
		case ViewStateAlerts:
			m.alertCriteria = alerts.Criteria{}
			m.refilterAlerts()
		}
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.commitEdit(m.editBuffer)
	case "esc":
		m.editing = false
	case "backspace":
		if len(m.editBuffer) > 0 {
			runes := []rune(m.editBuffer)
			m.editBuffer = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.editBuffer += string(msg.Runes)
		}
	}
	return m
}

func (m *Model) commitEdit(value string) {
	switch m.state {
	case ViewStateLineage:
		m.keyword = value
		m.rebuildGraph()
	case ViewStateReport:
		*m.criteriaField(m.filterField) = value
		m.refilterReport()
	case ViewStateAlerts:
		m.alertCriteria.ObjectName = value
		m.refilterAlerts()
	}
}

// criteriaField maps a filter field index to its criteria slot, in the
// order of reportFilterFields.
func (m *Model) criteriaField(i int) *string {
	switch i {
	case 0:
		return &m.criteria.SourceOrgID
	case 1:
		return &m.criteria.SourceTableName
	case 2:
		return &m.criteria.SourceTableComment
	case 3:
		return &m.criteria.AssetName
	case 4:
		return &m.criteria.AssetNameEn
	case 5:
		return &m.criteria.ServiceName
	default:
		return &m.criteria.CustomerFullName
	}
}

func (m *Model) moveCursor(delta int) {
	switch m.state {
	case ViewStateCatalog:
		m.catalogCursor = clamp(m.catalogCursor+delta, len(m.snapshot.Assets))
	case ViewStateReport:
		m.reportCursor = clamp(m.reportCursor+delta, len(m.filtered))
	case ViewStateQuality:
		m.qualityCursor = clamp(m.qualityCursor+delta, len(m.items))
	case ViewStateAlerts:
		m.alertsCursor = clamp(m.alertsCursor+delta, len(m.filteredAlerts))
	}
}

func clamp(v, total int) int {
	if v < 0 {
		return 0
	}
	if total == 0 {
		return 0
	}
	if v >= total {
		return total - 1
	}
	return v
}

func nextLayer(l lineage.Layer) lineage.Layer {
	switch l {
	case lineage.LayerAll:
		return lineage.LayerUpstream
	case lineage.LayerUpstream:
		return lineage.LayerDownstream
	default:
		return lineage.LayerAll
	}
}

func nextTypeFilter(t lineage.TypeFilter) lineage.TypeFilter {
	switch t {
	case lineage.TypeAll:
		return lineage.TypeSource
	case lineage.TypeSource:
		return lineage.TypeService
	case lineage.TypeService:
		return lineage.TypeCustomer
	default:
		return lineage.TypeAll
	}
}

func nextAlertSource(s alerts.Source) alerts.Source {
	switch s {
	case "":
		return alerts.SourceInterface
	case alerts.SourceInterface:
		return alerts.SourceTable
	case alerts.SourceTable:
		return alerts.SourceIndicator
	default:
		return ""
	}
}
