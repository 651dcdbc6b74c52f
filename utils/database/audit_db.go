package database

import (
	"fmt"
	"time"

	"scambase-bot/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// InitAuditDB initializes the audit database and ensures the table exists.
func InitAuditDB(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to audit database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS audit_log (
	          audit_id INTEGER PRIMARY KEY AUTOINCREMENT,
	          action TEXT NOT NULL,
	          actor_id TEXT NOT NULL,
	          target_id TEXT NOT NULL,
	          detail TEXT,
	          channel_id TEXT,
	          timestamp INTEGER NOT NULL
	      );`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit_log table: %w", err)
	}

	return db, nil
}

// AddAuditRecord appends one entry to the audit trail.
func AddAuditRecord(db *sqlx.DB, record model.AuditRecord) error {
	if record.Timestamp == 0 {
		record.Timestamp = time.Now().Unix()
	}
	query := `INSERT INTO audit_log (action, actor_id, target_id, detail, channel_id, timestamp)
	          VALUES (:action, :actor_id, :target_id, :detail, :channel_id, :timestamp)`

	_, err := db.NamedExec(query, record)
	if err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}
	return nil
}

// GetAuditRecordsByTargetID retrieves audit entries for a specific target,
// newest first.
func GetAuditRecordsByTargetID(db *sqlx.DB, targetID string) ([]model.AuditRecord, error) {
	var records []model.AuditRecord
	query := "SELECT * FROM audit_log WHERE target_id = ? ORDER BY timestamp DESC"
	err := db.Select(&records, query, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit records for target %s: %w", targetID, err)
	}
	return records, nil
}

// GetRecentAuditRecords retrieves the newest entries across all targets.
func GetRecentAuditRecords(db *sqlx.DB, limit int) ([]model.AuditRecord, error) {
	var records []model.AuditRecord
	query := "SELECT * FROM audit_log ORDER BY timestamp DESC LIMIT ?"
	err := db.Select(&records, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent audit records: %w", err)
	}
	return records, nil
}
