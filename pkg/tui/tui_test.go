package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luckydata/govlens/pkg/alerts"
	"github.com/luckydata/govlens/pkg/catalog"
	"github.com/luckydata/govlens/pkg/quality"
)

func newTestModel() Model {
	center := alerts.NewCenter(90 * 24 * time.Hour)
	center.Add(alerts.MockFeed()...)

	m := NewModel(
		catalog.NewMockStore().Snapshot(),
		quality.MockInterfaces(),
		center,
		alerts.MockReferenceTime,
	)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	next, _ = m.Update(loadedMsg{})
	return next.(Model)
}

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"backspace": tea.KeyBackspace,
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		if kt, ok := specialKeys[k]; ok {
			msg = tea.KeyMsg{Type: kt}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestInitialViewShowsCatalog(t *testing.T) {
	m := newTestModel()
	view := m.View()
	if !strings.Contains(view, "GOVLENS CONSOLE") {
		t.Error("title missing")
	}
	if !strings.Contains(view, "AST001") || !strings.Contains(view, "企业信用评分数据集") {
		t.Error("catalog table missing demo assets")
	}
	if !strings.Contains(view, "共 5 项资产") {
		t.Error("catalog footer missing")
	}
}

func TestNumberKeysSwitchViews(t *testing.T) {
	m := newTestModel()

	m = press(t, m, "2")
	if m.state != ViewStateLineage {
		t.Fatalf("state = %d", m.state)
	}
	if !strings.Contains(m.View(), "焦点: AST001") {
		t.Error("lineage view missing focus line")
	}

	m = press(t, m, "5")
	if m.state != ViewStateAlerts {
		t.Fatalf("state = %d", m.state)
	}

	m = press(t, m, "tab")
	if m.state != ViewStateCatalog {
		t.Errorf("tab wrap: state = %d", m.state)
	}
}

func TestCatalogEnterRefocusesLineage(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "enter")

	if m.state != ViewStateLineage {
		t.Fatalf("state = %d", m.state)
	}
	if m.focusAssetID != "AST002" {
		t.Errorf("focus = %q", m.focusAssetID)
	}
	if !strings.Contains(m.View(), "行政处罚记录API") {
		t.Error("lineage view not rebuilt for new focus")
	}
}

func TestLineageLayerAndTypeCycle(t *testing.T) {
	m := press(t, newTestModel(), "2", "l")
	if !strings.Contains(m.View(), "仅上游") {
		t.Error("upstream layer label missing")
	}

	m = press(t, m, "l")
	if !strings.Contains(m.View(), "仅下游") {
		t.Error("downstream layer label missing")
	}

	m = press(t, m, "l", "t")
	if !strings.Contains(m.View(), "[类型: 来源]") {
		t.Error("type filter label missing")
	}
}

func TestLineageKeywordEditing(t *testing.T) {
	m := press(t, newTestModel(), "2", "/", "工", "商", "银", "行", "enter")

	if m.keyword != "工商银行" {
		t.Fatalf("keyword = %q", m.keyword)
	}
	if len(m.graph.Nodes) != 1 {
		t.Errorf("keyword graph has %d nodes", len(m.graph.Nodes))
	}

	m = press(t, m, "esc")
	if m.keyword != "" {
		t.Error("esc did not clear the keyword")
	}
}

func TestReportFilterCommit(t *testing.T) {
	m := newTestModel()
	if !strings.Contains(press(t, m, "3").View(), "显示 36 / 36 条") {
		t.Fatal("unfiltered report count wrong")
	}

	// Cycle to the asset-name field, then type a filter.
	m = press(t, m, "3", "f", "f", "f", "/", "信", "用", "enter")
	if m.criteria.AssetName != "信用" {
		t.Fatalf("criteria = %+v", m.criteria)
	}
	if !strings.Contains(m.View(), "显示 21 / 36 条") {
		t.Errorf("filtered count wrong")
	}

	m = press(t, m, "esc")
	if len(m.filtered) != 36 {
		t.Error("esc did not reset the report filters")
	}
}

func TestAlertSourceCycle(t *testing.T) {
	m := press(t, newTestModel(), "5")
	if !strings.Contains(m.View(), "共 5 条") {
		t.Fatal("alert listing missing")
	}

	// interface -> no retained interface alerts in the bare feed
	m = press(t, m, "s")
	if !strings.Contains(m.View(), "暂无告警消息") {
		t.Error("interface source filter should empty the bare feed")
	}

	m = press(t, m, "s")
	if m.alertCriteria.Source != alerts.SourceTable {
		t.Errorf("source = %q", m.alertCriteria.Source)
	}
	if !strings.Contains(m.View(), "共 3 条") {
		t.Error("table source count wrong")
	}
}

func TestEditingBackspaceIsRuneSafe(t *testing.T) {
	m := press(t, newTestModel(), "2", "/", "信", "用", "backspace")
	if m.editBuffer != "信" {
		t.Errorf("edit buffer = %q", m.editBuffer)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !next.(Model).quitting {
		t.Error("quitting flag not set")
	}
}
