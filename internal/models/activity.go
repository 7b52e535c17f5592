package models

import "time"

// Activity is one activity log row. Metadata is stored as JSONB.
type Activity struct {
	ActivityID  string            `db:"activity_id"`
	TenantID    string            `db:"tenant_id"`
	Action      string            `db:"action"`
	Module      string            `db:"module"`
	TargetID    string            `db:"target_id"`
	UserID      string            `db:"user_id"`
	Description string            `db:"description"`
	Metadata    map[string]string `db:"metadata"`
	OccurredAt  time.Time         `db:"occurred_at"`
}
