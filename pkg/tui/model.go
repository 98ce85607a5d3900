// Package tui implements the interactive governance console: an event
// loop over pure derivations of an immutable snapshot. All mutable UI
// state lives in Model; every filter change re-invokes the derivation.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/luckydata/govlens/pkg/alerts"
	"github.com/luckydata/govlens/pkg/catalog"
	"github.com/luckydata/govlens/pkg/lineage"
	"github.com/luckydata/govlens/pkg/quality"
)

type ViewState int

const (
	ViewStateCatalog ViewState = iota
	ViewStateLineage
	ViewStateReport
	ViewStateQuality
	ViewStateAlerts
)

// reportFilterFields orders the criteria fields the report view cycles
// through with the "f" key.
var reportFilterFields = []string{
	"数据源机构ID",
	"源表英文名",
	"源表中文名",
	"资产中文名",
	"资产英文名",
	"产品名称",
	"客户名称",
}

type Model struct {
	// core components
	spinner spinner.Model

	// immutable inputs
	snapshot *catalog.Snapshot
	items    []quality.Interface
	center   *alerts.Center
	now      time.Time

	// state
	state    ViewState
	loading  bool
	quitting bool
	width    int
	height   int

	// catalog view
	catalogCursor int

	// lineage view
	focusAssetID string
	layer        lineage.Layer
	typeFilter   lineage.TypeFilter
	keyword      string
	graph        *lineage.Graph

	// report view
	records      []lineage.FlatRecord // unfiltered, computed once
	criteria     lineage.Criteria
	filtered     []lineage.FlatRecord
	aggregates   lineage.Aggregates
	reportCursor int
	filterField  int

	// quality view
	qualityCursor int

	// alerts view
	alertCriteria  alerts.Criteria
	recentAlerts   []alerts.Alert
	filteredAlerts []alerts.Alert
	alertStats     alerts.Stats
	alertsCursor   int

	// text entry
	editing    bool
	editBuffer string

	// feedback
	statusMsg string
}

type loadedMsg struct{}

// NewModel builds the console over an immutable snapshot, the quality
// monitor set, and an alert center already fed with the merged alerts.
// now anchors the retention window.
func NewModel(snap *catalog.Snapshot, items []quality.Interface, center *alerts.Center, now time.Time) Model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = special

	m := Model{
		spinner:    s,
		snapshot:   snap,
		items:      items,
		center:     center,
		now:        now,
		loading:    true,
		state:      ViewStateCatalog,
		layer:      lineage.LayerAll,
		typeFilter: lineage.TypeAll,
	}
	if len(snap.Assets) > 0 {
		m.focusAssetID = snap.Assets[0].AssetID
	}

	m.records = lineage.Flatten(snap)
	m.aggregates = lineage.Aggregate(m.records)
	m.rebuildGraph()
	m.refilterReport()
	m.refilterAlerts()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(150*time.Millisecond, func(time.Time) tea.Msg {
			return loadedMsg{}
		}),
	)
}

// rebuildGraph re-derives the lineage graph from the current filter
// state. Called on every filter-affecting key press.
func (m *Model) rebuildGraph() {
	m.graph = lineage.BuildGraph(m.focusAssetID, m.snapshot, lineage.GraphFilters{
		Layer:    m.layer,
		NodeType: m.typeFilter,
		Keyword:  m.keyword,
	})
}

func (m *Model) refilterReport() {
	m.filtered = lineage.FilterRecords(m.records, m.criteria)
	if m.reportCursor >= len(m.filtered) {
		m.reportCursor = max(0, len(m.filtered)-1)
	}
}

func (m *Model) refilterAlerts() {
	m.recentAlerts = m.center.Recent(m.now)
	m.filteredAlerts = alerts.Filter(m.recentAlerts, m.alertCriteria)
	m.alertStats = alerts.Summarize(m.filteredAlerts)
	if m.alertsCursor >= len(m.filteredAlerts) {
		m.alertsCursor = max(0, len(m.filteredAlerts)-1)
	}
}
