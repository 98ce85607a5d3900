package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func statusItem(m10 Sample) Interface {
	return Interface{
		Metrics: map[Window]Sample{Window10m: m10},
		Rules: []Rule{
			{Window: Window10m, QueryRateThreshold: 95, ResponseTimeThreshold: 500, ErrorRateThreshold: 1},
		},
	}
}

func TestComputeStatus(t *testing.T) {
	cases := []struct {
		name   string
		sample Sample
		want   Status
	}{
		{"healthy", Sample{QueryRate: 99.8, AvgResponseMs: 120, ErrorRate: 0.01}, StatusNormal},
		{"query rate breach", Sample{QueryRate: 85.2, AvgResponseMs: 120, ErrorRate: 0.01}, StatusError},
		{"response breach", Sample{QueryRate: 99.0, AvgResponseMs: 820, ErrorRate: 0.01}, StatusError},
		{"error rate breach", Sample{QueryRate: 99.0, AvgResponseMs: 120, ErrorRate: 1.5}, StatusError},
		{"query rate near floor", Sample{QueryRate: 96.8, AvgResponseMs: 120, ErrorRate: 0.01}, StatusWarning},
		{"response near ceiling", Sample{QueryRate: 99.0, AvgResponseMs: 480, ErrorRate: 0.01}, StatusWarning},
		{"error rate near ceiling", Sample{QueryRate: 99.0, AvgResponseMs: 120, ErrorRate: 0.95}, StatusWarning},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ComputeStatus(statusItem(c.sample)))
		})
	}
}

func TestComputeStatusNoRules(t *testing.T) {
	item := Interface{Metrics: map[Window]Sample{Window10m: {QueryRate: 10}}}
	assert.Equal(t, StatusNormal, ComputeStatus(item))
}

func TestComputeStatusOverMockSet(t *testing.T) {
	want := map[string]Status{
		"API001": StatusNormal,
		"API002": StatusWarning, // 95.5% sits inside the 2pp floor margin
		"API003": StatusError,
		"API010": StatusError,
	}
	for _, item := range MockInterfaces() {
		if expected, ok := want[item.InterfaceID]; ok {
			assert.Equal(t, expected, ComputeStatus(item), item.InterfaceID)
		}
	}
}
