package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededCenter() *Center {
	c := NewCenter(90 * 24 * time.Hour)
	c.Add(MockFeed()...)
	return c
}

func TestRecentDropsExpired(t *testing.T) {
	recent := seededCenter().Recent(MockReferenceTime)

	// feed-6 was created four months before the reference time.
	require.Len(t, recent, 5)
	for _, a := range recent {
		assert.NotEqual(t, "feed-6", a.ID)
	}
}

func TestRecentKeepsCutoffBoundary(t *testing.T) {
	now := time.Date(2024, 2, 5, 15, 0, 0, 0, time.Local)
	c := NewCenter(90 * 24 * time.Hour)
	c.Add(
		Alert{ID: "at-cutoff", Created: now.Add(-90 * 24 * time.Hour)},
		Alert{ID: "just-expired", Created: now.Add(-90*24*time.Hour - time.Second)},
	)

	recent := c.Recent(now)
	require.Len(t, recent, 1)
	assert.Equal(t, "at-cutoff", recent[0].ID)
}

func TestFilterBySource(t *testing.T) {
	recent := seededCenter().Recent(MockReferenceTime)

	tables := Filter(recent, Criteria{Source: SourceTable})
	require.Len(t, tables, 3)
	for _, a := range tables {
		assert.Equal(t, SourceTable, a.Source)
	}

	indicators := Filter(recent, Criteria{Source: SourceIndicator})
	assert.Len(t, indicators, 2)
}

func TestFilterByObjectID(t *testing.T) {
	recent := seededCenter().Recent(MockReferenceTime)

	// Object id matching is case-insensitive substring.
	got := Filter(recent, Criteria{ObjectID: "t_pen"})
	require.Len(t, got, 1)
	assert.Equal(t, "feed-1", got[0].ID)

	got = Filter(recent, Criteria{ObjectID: "IND"})
	assert.Len(t, got, 2)
}

func TestFilterByObjectName(t *testing.T) {
	recent := seededCenter().Recent(MockReferenceTime)

	got := Filter(recent, Criteria{ObjectName: "社保"})
	require.Len(t, got, 2)
	assert.Equal(t, "feed-2", got[0].ID)
	assert.Equal(t, "feed-5", got[1].ID)
}

func TestFilterConjunctive(t *testing.T) {
	recent := seededCenter().Recent(MockReferenceTime)

	got := Filter(recent, Criteria{Source: SourceIndicator, Type: "更新延迟", ObjectName: "社保"})
	require.Len(t, got, 1)
	assert.Equal(t, "feed-5", got[0].ID)

	got = Filter(recent, Criteria{Source: SourceTable, ObjectName: "不存在"})
	assert.Empty(t, got)
}

func TestSummarizeTracksFilteredView(t *testing.T) {
	recent := seededCenter().Recent(MockReferenceTime)

	all := Summarize(recent)
	assert.Equal(t, Stats{Total: 5, Table: 3, Indicator: 2}, all)

	filtered := Summarize(Filter(recent, Criteria{Source: SourceTable}))
	assert.Equal(t, Stats{Total: 3, Table: 3}, filtered)
}

func TestSourceDisplayName(t *testing.T) {
	assert.Equal(t, "接口质量", SourceInterface.DisplayName())
	assert.Equal(t, "库表更新", SourceTable.DisplayName())
	assert.Equal(t, "指标质量", SourceIndicator.DisplayName())
	assert.Equal(t, "custom", Source("custom").DisplayName())
}
