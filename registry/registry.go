// Package registry implements the scammer record store: a flat JSON mapping
// from canonical user ID to record, held fully in memory and rewritten to
// disk after every mutation.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"scambase-bot/model"
)

// ErrTargetIsAdmin is returned when an add targets a configured
// administrator. Administrators can never be registered as scammers.
var ErrTargetIsAdmin = errors.New("administrators cannot be added to the scam database")

// AdminChecker reports whether a numeric identity belongs to an
// administrator of any rank.
type AdminChecker func(identity string) bool

// Registry is the in-memory scammer store backed by a single JSON file.
// A failed flush is logged and the in-memory state kept; the registry keeps
// serving from memory and retries on the next mutation.
type Registry struct {
	mu      sync.Mutex
	path    string
	records map[string]*model.ScammerRecord
	isAdmin AdminChecker
	now     func() time.Time
}

// AddInput carries one report against a user.
type AddInput struct {
	UserID    string
	Username  string
	Reason    string
	Country   string
	ProofLink string
	AddedBy   string
	ChannelID string
}

// Open loads the registry from path. A missing file starts an empty store;
// an unreadable or unparsable file is a hard error, because silently
// starting empty would discard the whole database.
func Open(path string, isAdmin AdminChecker) (*Registry, error) {
	r := &Registry{
		path:    path,
		records: make(map[string]*model.ScammerRecord),
		isAdmin: isAdmin,
		now:     time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("failed to read scammer database %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &r.records); err != nil {
		return nil, fmt.Errorf("scammer database %s is corrupt: %w", path, err)
	}
	return r, nil
}

// AddOrMerge registers a report. If an active record exists for the user it
// is merged into: a novel reason and proof are appended, the report counter
// incremented and the username refreshed. Otherwise a fresh record is
// created with a report count of 1, including when a removed record exists
// for the user, which is replaced outright. A re-add after removal does not
// carry the old history forward.
//
// Returns the resulting record and whether it was newly created.
func (r *Registry) AddOrMerge(in AddInput) (*model.ScammerRecord, bool, error) {
	if isDigits(in.UserID) && r.isAdmin != nil && r.isAdmin(in.UserID) {
		return nil, false, ErrTargetIsAdmin
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	username := in.Username
	if username == "" {
		username = "id" + in.UserID
	}

	if existing, ok := r.records[in.UserID]; ok && existing.Status == model.StatusActive {
		if !containsString(existing.Reasons, in.Reason) {
			existing.Reasons = append(existing.Reasons, in.Reason)
		}
		if in.ProofLink != "" && !containsString(existing.Proofs, in.ProofLink) {
			existing.Proofs = append(existing.Proofs, in.ProofLink)
		}
		existing.Reports++
		if username != "" && username != existing.Username {
			existing.Username = username
		}
		r.save()
		return cloneRecord(existing), false, nil
	}

	record := &model.ScammerRecord{
		UserID:     in.UserID,
		Username:   username,
		Reasons:    []string{in.Reason},
		Country:    in.Country,
		ScamChance: 100,
		Proofs:     []string{},
		AddedDate:  r.now().Format(model.TimeLayout),
		AddedBy:    in.AddedBy,
		AddedFrom:  in.ChannelID,
		Reports:    1,
		Status:     model.StatusActive,
	}
	if in.ProofLink != "" {
		record.Proofs = append(record.Proofs, in.ProofLink)
	}
	r.records[in.UserID] = record
	r.save()
	return cloneRecord(record), true, nil
}

// LookupActive returns the active record for the exact user ID, or nil.
func (r *Registry) LookupActive(userID string) *model.ScammerRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[userID]
	if !ok || record.Status != model.StatusActive {
		return nil
	}
	return cloneRecord(record)
}

// LookupByHandle scans active records for a username match, with or without
// a leading @ and ignoring case. The raw key is also accepted as a match
// candidate. Which record wins among colliding handles is unspecified.
func (r *Registry) LookupByHandle(handle string) *model.ScammerRecord {
	clean := NormalizeHandle(handle)

	r.mu.Lock()
	defer r.mu.Unlock()

	for userID, record := range r.records {
		if record.Status != model.StatusActive {
			continue
		}
		if NormalizeHandle(record.Username) == clean || userID == clean {
			return cloneRecord(record)
		}
	}
	return nil
}

// SoftDelete marks the record removed, keeping it in the store. Returns
// false if no record exists for the user.
func (r *Registry) SoftDelete(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[userID]
	if !ok {
		return false
	}
	record.Status = model.StatusRemoved
	record.RemovedDate = r.now().Format(model.TimeLayout)
	r.save()
	return true
}

// HardDelete removes the record entirely. Returns false if absent.
func (r *Registry) HardDelete(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[userID]; !ok {
		return false
	}
	delete(r.records, userID)
	r.save()
	return true
}

// SetCountry sets the country classification. No-op if the user is absent.
func (r *Registry) SetCountry(userID, country string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[userID]
	if !ok {
		return
	}
	record.Country = country
	r.save()
}

// Stats summarises the store.
func (r *Registry) Stats() model.RegistryStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats model.RegistryStats
	stats.TotalInDB = len(r.records)
	for _, record := range r.records {
		switch record.Status {
		case model.StatusActive:
			stats.ActiveScammers++
			stats.TotalReports += record.Reports
		case model.StatusRemoved:
			stats.RemovedScammers++
		}
	}
	return stats
}

// RecentActive returns up to limit active records, newest first.
func (r *Registry) RecentActive(limit int) []model.ScammerRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []model.ScammerRecord
	for _, record := range r.records {
		if record.Status == model.StatusActive {
			records = append(records, *cloneRecord(record))
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].AddedDate > records[j].AddedDate
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

// SearchByCountry returns active records whose country matches, ignoring case.
func (r *Registry) SearchByCountry(country string) []model.ScammerRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []model.ScammerRecord
	for _, record := range r.records {
		if record.Status == model.StatusActive && strings.EqualFold(record.Country, country) {
			records = append(records, *cloneRecord(record))
		}
	}
	return records
}

// NormalizeHandle strips a leading @ and lowercases a username for comparison.
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimPrefix(handle, "@"))
}

// save writes the whole store to disk. Callers must hold the mutex.
func (r *Registry) save() {
	if r.path == "" {
		return
	}
	data, err := json.MarshalIndent(r.records, "", "  ")
	if err != nil {
		log.Printf("Error marshalling scammer database: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		log.Printf("Error creating data directory for %s: %v", r.path, err)
		return
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		log.Printf("Error writing scammer database %s: %v", r.path, err)
	}
}

func cloneRecord(record *model.ScammerRecord) *model.ScammerRecord {
	clone := *record
	clone.Reasons = append([]string(nil), record.Reasons...)
	clone.Proofs = append([]string(nil), record.Proofs...)
	return &clone
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
