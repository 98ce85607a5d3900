// Package quality monitors interface health: windowed call metrics,
// threshold rules, and alert generation.
package quality

// Window is a metric aggregation window.
type Window string

const (
	Window10m   Window = "10m"
	Window30m   Window = "30m"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

// RealtimeWindows are the windows threshold rules apply to.
var RealtimeWindows = []Window{Window10m, Window30m}

// DisplayName returns the Chinese window label.
func (w Window) DisplayName() string {
	switch w {
	case Window10m:
		return "近10分钟"
	case Window30m:
		return "近30分钟"
	case WindowMonth:
		return "本月"
	case WindowYear:
		return "本年"
	}
	return string(w)
}

// Sample is one window's aggregated metrics.
type Sample struct {
	QueryRate     float64 `yaml:"query_rate"`     // percent
	AvgResponseMs float64 `yaml:"avg_response_ms"`
	ErrorRate     float64 `yaml:"error_rate"` // percent
	TotalCalls    int     `yaml:"total_calls"`
}

// ImpactProduct names a product service built on the interface, with
// the customers the product serves.
type ImpactProduct struct {
	ProductID     string   `yaml:"product_id"`
	ProductName   string   `yaml:"product_name"`
	CustomerNames []string `yaml:"customer_names"`
}

// Rule binds alert thresholds to one realtime window.
type Rule struct {
	Window                Window  `yaml:"window"`
	QueryRateThreshold    float64 `yaml:"query_rate_threshold"`    // alert below, percent
	ResponseTimeThreshold float64 `yaml:"response_time_threshold"` // alert above, ms
	ErrorRateThreshold    float64 `yaml:"error_rate_threshold"`    // alert above, percent
}

// Interface is one monitored interface with its window metrics and
// alerting configuration.
type Interface struct {
	ID             string          `yaml:"id"`
	InterfaceID    string          `yaml:"interface_id"` // business identifier, e.g. API001
	InterfaceName  string          `yaml:"interface_name"`
	SourceOrgID    string          `yaml:"source_org_id"`
	ImpactProducts []ImpactProduct `yaml:"impact_products"`

	Metrics map[Window]Sample `yaml:"metrics"`

	AlertEnabled bool   `yaml:"alert_enabled"`
	AlertPhones  string `yaml:"alert_phones"`
	Rules        []Rule `yaml:"rules"`
}

// Status is the health classification of an interface.
type Status string

const (
	StatusNormal  Status = "normal"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)
