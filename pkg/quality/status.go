package quality

// Near-threshold margins for the warning tier: a query rate within two
// percentage points above its floor, or an upper-bounded metric past
// 90% of its ceiling, degrades the interface without raising an alert.
const (
	warnQueryRateMargin = 2.0
	warnUpperFactor     = 0.9
)

// ComputeStatus classifies an interface from its realtime windows
// against its configured rules: error on any threshold breach, warning
// on any near-threshold metric, normal otherwise.
func ComputeStatus(item Interface) Status {
	status := StatusNormal
	for _, rule := range item.Rules {
		sample, ok := item.Metrics[rule.Window]
		if !ok {
			continue
		}

		if rule.QueryRateThreshold > 0 {
			if sample.QueryRate < rule.QueryRateThreshold {
				return StatusError
			}
			if sample.QueryRate < rule.QueryRateThreshold+warnQueryRateMargin {
				status = StatusWarning
			}
		}
		if rule.ResponseTimeThreshold > 0 {
			if sample.AvgResponseMs > rule.ResponseTimeThreshold {
				return StatusError
			}
			if sample.AvgResponseMs > rule.ResponseTimeThreshold*warnUpperFactor {
				status = StatusWarning
			}
		}
		if rule.ErrorRateThreshold > 0 {
			if sample.ErrorRate > rule.ErrorRateThreshold {
				return StatusError
			}
			if sample.ErrorRate > rule.ErrorRateThreshold*warnUpperFactor {
				status = StatusWarning
			}
		}
	}
	return status
}
