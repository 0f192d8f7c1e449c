// internal/model/audit_event.go
package model

import "time"

// Audit actions recorded for console mutations.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionClose  = "close"
	ActionScan   = "scan"
)

// Audited resources.
const (
	ResourceTemplate = "template"
	ResourceCampaign = "campaign"
	ResourceAsset    = "asset"
	ResourceCVEScan  = "cve_scan"
)

type AuditEvent struct {
	ID         int64     `db:"id" json:"id,omitempty"`
	Action     string    `db:"action" json:"action"`
	Resource   string    `db:"resource" json:"resource"`
	ResourceID int       `db:"resource_id" json:"resource_id,omitempty"`
	Detail     string    `db:"detail" json:"detail,omitempty"`
	RequestID  string    `db:"request_id" json:"request_id,omitempty"`
	OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
}
