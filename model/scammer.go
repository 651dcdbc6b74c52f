package model

// Record status values. A removed record stays in the store until it is
// hard-deleted; it is invisible to active queries.
const (
	StatusActive  = "active"
	StatusRemoved = "removed"
)

// TimeLayout is the timestamp format used in scammer records. Lexicographic
// order on this layout equals chronological order.
const TimeLayout = "2006-01-02 15:04:05"

// ScammerRecord is one entry in the scammer store, keyed by the canonical
// numeric user ID. Field names mirror the on-disk JSON layout.
type ScammerRecord struct {
	UserID      string   `json:"user_id"`
	Username    string   `json:"username"`
	Reasons     []string `json:"reasons"`
	Country     string   `json:"country,omitempty"`
	ScamChance  int      `json:"scam_chance"`
	Proofs      []string `json:"proofs"`
	AddedDate   string   `json:"added_date"`
	AddedBy     string   `json:"added_by"`
	AddedFrom   string   `json:"added_from_chat"`
	Reports     int      `json:"reports"`
	Status      string   `json:"status"`
	RemovedDate string   `json:"removed_date,omitempty"`
}

// RegistryStats summarises the store for the stats command.
type RegistryStats struct {
	ActiveScammers  int `json:"total_scammers"`
	TotalReports    int `json:"total_reports"`
	RemovedScammers int `json:"removed_scammers"`
	TotalInDB       int `json:"total_in_db"`
}
