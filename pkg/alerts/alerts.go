// Package alerts aggregates alert messages from the three quality
// surfaces (interface quality, table updates, indicator quality) into
// one queryable center with a retention window.
package alerts

import (
	"strings"
	"time"
)

// Source identifies which quality surface raised an alert.
type Source string

const (
	SourceInterface Source = "interface"
	SourceTable     Source = "table"
	SourceIndicator Source = "indicator"
)

// DisplayName returns the Chinese surface name shown in listings.
func (s Source) DisplayName() string {
	switch s {
	case SourceInterface:
		return "接口质量"
	case SourceTable:
		return "库表更新"
	case SourceIndicator:
		return "指标质量"
	}
	return string(s)
}

// Alert is one alert message.
type Alert struct {
	ID         string    `json:"id"`
	Source     Source    `json:"source"`
	ObjectID   string    `json:"object_id"`
	ObjectName string    `json:"object_name"`
	Type       string    `json:"type"`  // e.g. 查得率低, 更新延迟
	Level      string    `json:"level"` // warning or error; empty for feed alerts
	Time       time.Time `json:"time"`
	Message    string    `json:"message"`
	Created    time.Time `json:"created"` // drives the retention window
}

// Criteria filters an alert listing. Source and Type match exactly;
// ObjectID matches by case-insensitive substring, ObjectName by plain
// substring. Zero values match everything.
type Criteria struct {
	Source     Source
	Type       string
	ObjectID   string
	ObjectName string
}

// Stats counts a listing in total and per source.
type Stats struct {
	Total     int
	Interface int
	Table     int
	Indicator int
}

// Center merges alerts from all sources and serves filtered views of
// the retained window.
type Center struct {
	alerts    []Alert
	retention time.Duration
}

// NewCenter creates an empty center retaining alerts for the given
// duration relative to the reference time passed to Recent.
func NewCenter(retention time.Duration) *Center {
	return &Center{retention: retention}
}

// Add appends alerts in arrival order.
func (c *Center) Add(alerts ...Alert) {
	c.alerts = append(c.alerts, alerts...)
}

// Recent returns the alerts whose creation time falls inside the
// retention window ending at now.
func (c *Center) Recent(now time.Time) []Alert {
	cutoff := now.Add(-c.retention)
	var out []Alert
	for _, a := range c.alerts {
		if !a.Created.Before(cutoff) {
			out = append(out, a)
		}
	}
	return out
}

// Filter applies the criteria conjunctively, preserving input order.
func Filter(list []Alert, cr Criteria) []Alert {
	var out []Alert
	for _, a := range list {
		if cr.Source != "" && a.Source != cr.Source {
			continue
		}
		if cr.Type != "" && a.Type != cr.Type {
			continue
		}
		if cr.ObjectID != "" && !strings.Contains(strings.ToLower(a.ObjectID), strings.ToLower(cr.ObjectID)) {
			continue
		}
		if cr.ObjectName != "" && !strings.Contains(a.ObjectName, cr.ObjectName) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Summarize counts the listing it is given; callers typically pass the
// filtered view so the cards track the active criteria.
func Summarize(list []Alert) Stats {
	s := Stats{Total: len(list)}
	for _, a := range list {
		switch a.Source {
		case SourceInterface:
			s.Interface++
		case SourceTable:
			s.Table++
		case SourceIndicator:
			s.Indicator++
		}
	}
	return s
}
