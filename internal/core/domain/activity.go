package domain

import "time"

// Activity is one fire-and-forget activity log record. Writing it sits
// outside every atomicity guarantee; a failed write is logged and dropped.
type Activity struct {
	ActivityID  string            `json:"activityID"`
	TenantID    string            `json:"tenantID"`
	Action      string            `json:"action"`
	Module      string            `json:"module"`
	TargetID    string            `json:"targetID"`
	UserID      string            `json:"userID"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
	OccurredAt  time.Time         `json:"occurredAt"`
}
