package quality

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckydata/govlens/pkg/alerts"
	"github.com/luckydata/govlens/pkg/policy"
)

func findMock(t *testing.T, interfaceID string) Interface {
	t.Helper()
	for _, item := range MockInterfaces() {
		if item.InterfaceID == interfaceID {
			return item
		}
	}
	t.Fatalf("mock interface %s not found", interfaceID)
	return Interface{}
}

func TestThresholdEvaluatorBreaches(t *testing.T) {
	now := time.Date(2024, 2, 5, 15, 0, 0, 0, time.Local)
	item := findMock(t, "API003")

	out := ThresholdEvaluator{}.Evaluate(context.Background(), item, now)
	// Query rate and response time breach in both realtime windows.
	require.Len(t, out, 4)

	first := out[0]
	assert.Equal(t, "thresh-API003-10m-queryRate", first.ID)
	assert.Equal(t, alerts.SourceInterface, first.Source)
	assert.Equal(t, "查得率过低", first.Type)
	assert.Equal(t, "error", first.Level)
	assert.Equal(t, "近10分钟查得率85.2%，低于阈值95%", first.Message)

	assert.Equal(t, "响应超时", out[1].Type)
	assert.Equal(t, "近10分钟平均响应820ms，超过阈值500ms", out[1].Message)
	assert.Equal(t, "thresh-API003-30m-queryRate", out[2].ID)
}

func TestThresholdEvaluatorHealthyInterface(t *testing.T) {
	out := ThresholdEvaluator{}.Evaluate(context.Background(), findMock(t, "API001"), time.Now())
	assert.Empty(t, out)
}

func TestThresholdEvaluatorSkipsDisabled(t *testing.T) {
	item := findMock(t, "API004")
	require.False(t, item.AlertEnabled)
	out := ThresholdEvaluator{}.Evaluate(context.Background(), item, time.Now())
	assert.Empty(t, out)
}

func TestEngineRunOverMonitorSet(t *testing.T) {
	engine := NewEngine()
	engine.Register(ThresholdEvaluator{})

	raised := engine.Run(context.Background(), MockInterfaces(), time.Now())
	// API003: 4 breaches, API010: 2 breaches, everything else clean.
	require.Len(t, raised, 6)
	for _, a := range raised {
		assert.Equal(t, alerts.SourceInterface, a.Source)
	}
	assert.Equal(t, "API003", raised[0].ObjectID)
	assert.Equal(t, "API010", raised[4].ObjectID)
}

func TestRuleEvaluator(t *testing.T) {
	pol, err := policy.NewEngine()
	require.NoError(t, err)
	require.NoError(t, pol.Compile([]policy.DynamicRule{
		{ID: "query-rate-floor", Condition: `window == '10m' && query_rate < 90.0`, Level: "error", Message: "查得率跌破90%"},
	}))

	ev := RuleEvaluator{Policy: pol}
	now := time.Now()

	out := ev.Evaluate(context.Background(), findMock(t, "API003"), now)
	require.Len(t, out, 1)
	assert.Equal(t, "rule-query-rate-floor-API003-10m", out[0].ID)
	assert.Equal(t, "query-rate-floor", out[0].Type)
	assert.Equal(t, "error", out[0].Level)
	assert.Equal(t, "近10分钟查得率跌破90%", out[0].Message)

	assert.Empty(t, ev.Evaluate(context.Background(), findMock(t, "API001"), now))
}

func TestRuleEvaluatorSkipsDisabled(t *testing.T) {
	pol, err := policy.NewEngine()
	require.NoError(t, err)
	require.NoError(t, pol.Compile([]policy.DynamicRule{
		{ID: "always", Condition: `true`, Level: "warning", Message: "x"},
	}))

	out := RuleEvaluator{Policy: pol}.Evaluate(context.Background(), findMock(t, "API004"), time.Now())
	assert.Empty(t, out)
}

func TestRuleEvaluatorNilPolicy(t *testing.T) {
	out := RuleEvaluator{}.Evaluate(context.Background(), findMock(t, "API003"), time.Now())
	assert.Empty(t, out)
}
