package quality

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/luckydata/govlens/pkg/alerts"
	"github.com/luckydata/govlens/pkg/policy"
)

// Evaluator inspects one monitored interface and raises alerts.
type Evaluator interface {
	Name() string
	Evaluate(ctx context.Context, item Interface, now time.Time) []alerts.Alert
}

// Engine runs registered evaluators over the monitor set. Evaluation is
// sequential; the engine is driven from the UI event loop.
type Engine struct {
	evaluators []Evaluator
}

// NewEngine initializes an engine with no evaluators.
func NewEngine() *Engine {
	return &Engine{
		evaluators: []Evaluator{},
	}
}

// Register adds an evaluator.
func (e *Engine) Register(ev Evaluator) {
	e.evaluators = append(e.evaluators, ev)
}

// Run executes every evaluator over every interface, in registration
// then monitor order, and collects the raised alerts.
func (e *Engine) Run(ctx context.Context, items []Interface, now time.Time) []alerts.Alert {
	tracer := otel.Tracer("govlens/quality")

	var raised []alerts.Alert
	for _, ev := range e.evaluators {
		start := time.Now()
		ctx, span := tracer.Start(ctx, "Evaluator."+ev.Name())

		count := 0
		for _, item := range items {
			found := ev.Evaluate(ctx, item, now)
			count += len(found)
			raised = append(raised, found...)
		}

		span.SetAttributes(
			attribute.Int64("duration_ms", time.Since(start).Milliseconds()),
			attribute.String("evaluator", ev.Name()),
			attribute.Int("alerts_raised", count),
			attribute.Int("interfaces", len(items)),
		)
		span.End()
	}

	return raised
}

// ThresholdEvaluator raises alerts when a realtime window violates the
// interface's configured rule thresholds. Interfaces with alerting
// disabled are skipped.
type ThresholdEvaluator struct{}

func (ThresholdEvaluator) Name() string { return "thresholds" }

func (ThresholdEvaluator) Evaluate(_ context.Context, item Interface, now time.Time) []alerts.Alert {
	if !item.AlertEnabled {
		return nil
	}

	var out []alerts.Alert
	for _, rule := range item.Rules {
		sample, ok := item.Metrics[rule.Window]
		if !ok {
			continue
		}
		win := rule.Window.DisplayName()

		if rule.QueryRateThreshold > 0 && sample.QueryRate < rule.QueryRateThreshold {
			out = append(out, alerts.Alert{
				ID:         fmt.Sprintf("thresh-%s-%s-queryRate", item.InterfaceID, rule.Window),
				Source:     alerts.SourceInterface,
				ObjectID:   item.InterfaceID,
				ObjectName: item.InterfaceName,
				Type:       "查得率过低",
				Level:      "error",
				Time:       now,
				Message:    fmt.Sprintf("%s查得率%s%%，低于阈值%s%%", win, formatRate(sample.QueryRate), formatRate(rule.QueryRateThreshold)),
				Created:    now,
			})
		}
		if rule.ResponseTimeThreshold > 0 && sample.AvgResponseMs > rule.ResponseTimeThreshold {
			out = append(out, alerts.Alert{
				ID:         fmt.Sprintf("thresh-%s-%s-responseTime", item.InterfaceID, rule.Window),
				Source:     alerts.SourceInterface,
				ObjectID:   item.InterfaceID,
				ObjectName: item.InterfaceName,
				Type:       "响应超时",
				Level:      "error",
				Time:       now,
				Message:    fmt.Sprintf("%s平均响应%sms，超过阈值%sms", win, formatRate(sample.AvgResponseMs), formatRate(rule.ResponseTimeThreshold)),
				Created:    now,
			})
		}
		if rule.ErrorRateThreshold > 0 && sample.ErrorRate > rule.ErrorRateThreshold {
			out = append(out, alerts.Alert{
				ID:         fmt.Sprintf("thresh-%s-%s-errorRate", item.InterfaceID, rule.Window),
				Source:     alerts.SourceInterface,
				ObjectID:   item.InterfaceID,
				ObjectName: item.InterfaceName,
				Type:       "报错率过高",
				Level:      "error",
				Time:       now,
				Message:    fmt.Sprintf("%s报错率%s%%，超过阈值%s%%", win, formatRate(sample.ErrorRate), formatRate(rule.ErrorRateThreshold)),
				Created:    now,
			})
		}
	}
	return out
}

// RuleEvaluator raises alerts from user-defined CEL rules evaluated per
// realtime window.
type RuleEvaluator struct {
	Policy *policy.Engine
}

func (RuleEvaluator) Name() string { return "rules" }

func (r RuleEvaluator) Evaluate(_ context.Context, item Interface, now time.Time) []alerts.Alert {
	if r.Policy == nil || !item.AlertEnabled {
		return nil
	}

	var out []alerts.Alert
	for _, win := range RealtimeWindows {
		sample, ok := item.Metrics[win]
		if !ok {
			continue
		}
		matched := r.Policy.Evaluate(map[string]interface{}{
			"id":          item.InterfaceID,
			"name":        item.InterfaceName,
			"window":      string(win),
			"query_rate":  sample.QueryRate,
			"response_ms": sample.AvgResponseMs,
			"error_rate":  sample.ErrorRate,
			"calls":       sample.TotalCalls,
		})
		for _, rule := range matched {
			out = append(out, alerts.Alert{
				ID:         fmt.Sprintf("rule-%s-%s-%s", rule.ID, item.InterfaceID, win),
				Source:     alerts.SourceInterface,
				ObjectID:   item.InterfaceID,
				ObjectName: item.InterfaceName,
				Type:       rule.ID,
				Level:      rule.Level,
				Time:       now,
				Message:    win.DisplayName() + rule.Message,
				Created:    now,
			})
		}
	}
	return out
}

// formatRate renders metric values the way the console displays them:
// no exponent, no trailing zeros.
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
