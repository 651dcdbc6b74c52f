package model

// Audit action types.
const (
	AuditActionAdd          = "add"
	AuditActionUpdate       = "update"
	AuditActionRemove       = "remove"
	AuditActionErase        = "erase"
	AuditActionSetCountry   = "set_country"
	AuditActionAddAdmin     = "add_admin"
	AuditActionAddSpecial   = "add_special_admin"
	AuditActionRemoveAdmin  = "remove_admin"
	AuditActionToggleGate   = "toggle_gate"
	AuditActionSetAdminChat = "set_admin_channel"
	AuditActionSetImage     = "set_image"
)

// AuditRecord represents a single entry in the audit trail database.
// The database table is named 'audit_log'.
type AuditRecord struct {
	AuditID   int64  `db:"audit_id"` // Primary Key, Auto-increment
	Action    string `db:"action"`
	ActorID   string `db:"actor_id"`
	TargetID  string `db:"target_id"`
	Detail    string `db:"detail"`
	ChannelID string `db:"channel_id"`
	Timestamp int64  `db:"timestamp"`
}
