package alerts

import "time"

// MockReferenceTime anchors the demo feed; Recent is evaluated against
// it so the seeded history item falls outside the 90-day window.
var MockReferenceTime = time.Date(2024, 2, 5, 15, 0, 0, 0, time.Local)

// MockFeed returns the seeded table-update and indicator alerts plus
// one expired history entry. Interface alerts are produced live by the
// quality engine and merged on top of this feed.
func MockFeed() []Alert {
	return []Alert{
		{ID: "feed-1", Source: SourceTable, ObjectID: "T_PENALTY_RECORD", ObjectName: "行政处罚记录表", Type: "更新延迟",
			Time:    time.Date(2024, 2, 5, 14, 22, 18, 0, time.Local),
			Message: "预期2024-02-05 08:00更新，实际2024-02-05 09:30更新，延迟90分钟",
			Created: time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)},
		{ID: "feed-2", Source: SourceTable, ObjectID: "T_SOCIAL_SECURITY", ObjectName: "社保缴纳信息表", Type: "更新延迟",
			Time:    time.Date(2024, 2, 5, 14, 20, 45, 0, time.Local),
			Message: "预期2024-02-05 08:00更新，实际2024-02-05 10:15更新，延迟135分钟",
			Created: time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)},
		{ID: "feed-3", Source: SourceTable, ObjectID: "T_BUSINESS_REG", ObjectName: "工商注册信息表", Type: "更新延迟",
			Time:    time.Date(2024, 2, 5, 14, 15, 22, 0, time.Local),
			Message: "预期2024-02-05 08:00更新，实际2024-02-05 08:45更新，延迟45分钟",
			Created: time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)},
		{ID: "feed-4", Source: SourceIndicator, ObjectID: "IND002", ObjectName: "行政处罚记录数", Type: "更新延迟",
			Time:    time.Date(2024, 2, 5, 14, 12, 8, 0, time.Local),
			Message: "预期2024-02-05 08:00更新，实际2024-02-05 09:30更新，延迟90分钟",
			Created: time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)},
		{ID: "feed-5", Source: SourceIndicator, ObjectID: "IND003", ObjectName: "社保缴纳企业数", Type: "更新延迟",
			Time:    time.Date(2024, 2, 5, 14, 8, 30, 0, time.Local),
			Message: "预期2024-02-05 08:00更新，实际2024-02-05 10:15更新，延迟135分钟",
			Created: time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)},
		{ID: "feed-6", Source: SourceInterface, ObjectID: "API001", ObjectName: "企业信用查询接口", Type: "查得率低",
			Time:    time.Date(2023, 10, 1, 10, 0, 0, 0, time.Local),
			Message: "历史告警数据",
			Created: time.Date(2023, 10, 1, 0, 0, 0, 0, time.Local)},
	}
}
