// Package app wires the console together: snapshot loading, quality
// evaluation, alert aggregation, and either the interactive TUI or the
// headless export pipeline.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"

	"github.com/luckydata/govlens/pkg/alerts"
	"github.com/luckydata/govlens/pkg/catalog"
	"github.com/luckydata/govlens/pkg/config"
	"github.com/luckydata/govlens/pkg/lineage"
	"github.com/luckydata/govlens/pkg/policy"
	"github.com/luckydata/govlens/pkg/quality"
	"github.com/luckydata/govlens/pkg/report"
	"github.com/luckydata/govlens/pkg/telemetry"
	"github.com/luckydata/govlens/pkg/tui"
	"github.com/luckydata/govlens/pkg/version"
)

type Config struct {
	DatasetPath  string
	RulesFile    string
	OutputDir    string
	OTLPEndpoint string
	Headless     bool
	JSONLogs     bool
	Verbose      bool
}

// Run executes the console. With cfg.Headless it writes the export
// artifacts and returns; otherwise it hands control to the TUI event
// loop until the user quits.
func Run(cfg Config) error {
	// Recover from panics with a crash log instead of a raw stack dump
	// over the terminal UI.
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("\n[CRITICAL FAILURE]")
			fmt.Printf("Error: %v\n", r)

			crashFile := fmt.Sprintf("crash_log_%d.txt", time.Now().Unix())
			f, _ := os.Create(crashFile)
			defer f.Close()
			fmt.Fprintf(f, "Crash Time: %s\nError: %v\n", time.Now(), r)

			fmt.Printf("Details saved to %s\n", crashFile)
			os.Exit(1)
		}
	}()

	setupLogging(cfg)

	ctx := context.Background()
	shutdown, err := telemetry.Init(ctx, "govlens", version.Current, cfg.OTLPEndpoint)
	if err != nil {
		slog.Warn("Telemetry init failed, continuing without tracing", "error", err)
	} else {
		defer shutdown(context.Background())
	}

	store, err := catalog.LoadStore(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	snap := catalog.SnapshotFrom(store.AllAssets(), store.FullLineage())
	slog.Info("Snapshot loaded",
		"assets", len(snap.Assets),
		"sources", len(snap.Sources),
		"services", len(snap.Services),
		"customers", len(snap.Customers),
	)

	// The demo feed is anchored to a fixed reference time; live datasets
	// use the wall clock.
	now := time.Now()
	if cfg.DatasetPath == "" {
		now = alerts.MockReferenceTime
	}

	items := quality.MockInterfaces()
	engine := quality.NewEngine()
	engine.Register(quality.ThresholdEvaluator{})
	if cfg.RulesFile != "" {
		rules, err := policy.LoadRules(cfg.RulesFile)
		if err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}
		pol, err := policy.NewEngine()
		if err != nil {
			return fmt.Errorf("initializing rule engine: %w", err)
		}
		if err := pol.Compile(rules); err != nil {
			return fmt.Errorf("compiling rules: %w", err)
		}
		engine.Register(quality.RuleEvaluator{Policy: pol})
		slog.Info("Dynamic rules loaded", "count", len(rules))
	}
	raised := engine.Run(ctx, items, now)
	slog.Info("Quality evaluation complete", "interfaces", len(items), "alerts", len(raised))

	retention := time.Duration(config.DefaultAlertConfig().RetentionDays) * 24 * time.Hour
	center := alerts.NewCenter(retention)
	center.Add(alerts.MockFeed()...)
	center.Add(raised...)

	if cfg.Headless {
		return runExport(ctx, snap, cfg.OutputDir)
	}

	model := tui.NewModel(snap, items, center, now)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("console error: %w", err)
	}
	return nil
}

func runExport(ctx context.Context, snap *catalog.Snapshot, outDir string) error {
	_, span := otel.Tracer("govlens/app").Start(ctx, "Export.Artifacts")
	defer span.End()

	if outDir == "" {
		outDir = config.DefaultExportConfig().OutputDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	records := lineage.Flatten(snap)
	agg := lineage.Aggregate(records)
	slog.Info("Lineage flattened",
		"records", agg.Total,
		"assets", agg.Assets,
		"unlinked_assets", agg.UnlinkedAssets,
	)

	csvPath := filepath.Join(outDir, "lineage_report.csv")
	if err := report.WriteCSV(records, csvPath); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	jsonPath := filepath.Join(outDir, "lineage_report.json")
	if err := report.WriteJSON(records, jsonPath); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	htmlPath := filepath.Join(outDir, "dashboard.html")
	if err := report.WriteDashboard(records, htmlPath); err != nil {
		return fmt.Errorf("writing dashboard: %w", err)
	}

	slog.Info("Export complete", "csv", csvPath, "json", jsonPath, "html", htmlPath)
	return nil
}

func setupLogging(cfg Config) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.JSONLogs {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
