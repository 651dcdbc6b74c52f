package config

import (
	"errors"
	"fmt"
	"log"
	"scambase-bot/model"
	"sync"
)

// Role management errors. These are expected outcomes, reported to the
// acting administrator; none of them leaves the config modified.
var (
	ErrAlreadyOwner      = errors.New("user is already the owner")
	ErrAlreadyAssigned   = errors.New("user already holds this role")
	ErrNotAdmin          = errors.New("user is not an administrator")
	ErrCannotRemoveOwner = errors.New("the owner cannot be removed")
)

// Store owns the mutable configuration and persists it after every change.
// A failed write is logged and the in-memory state kept; the store never
// rolls back a mutation because the disk lagged behind.
type Store struct {
	mu   sync.Mutex
	cfg  *model.Config
	path string
}

func NewStore(cfg *model.Config, path string) *Store {
	return &Store{cfg: cfg, path: path}
}

// Config returns a point-in-time copy of the configuration. Mutators keep
// writing the store's own struct, so readers never share the Images map or
// role slices with a concurrent mutation.
func (s *Store) Config() *model.Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := *s.cfg
	cfg.Roles = model.RoleConfig{
		OwnerID:       s.cfg.Roles.OwnerID,
		SpecialAdmins: append([]int64(nil), s.cfg.Roles.SpecialAdmins...),
		Admins:        append([]int64(nil), s.cfg.Roles.Admins...),
	}
	images := make(map[string]string, len(s.cfg.Images))
	for slot, url := range s.cfg.Images {
		images[slot] = url
	}
	cfg.Images = images
	return &cfg
}

// Roles returns a copy of the current role assignment.
func (s *Store) Roles() model.RoleConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.RoleConfig{
		OwnerID:       s.cfg.Roles.OwnerID,
		SpecialAdmins: append([]int64(nil), s.cfg.Roles.SpecialAdmins...),
		Admins:        append([]int64(nil), s.cfg.Roles.Admins...),
	}
}

// AddAdmin promotes a user to plain administrator.
func (s *Store) AddAdmin(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.cfg.Roles.OwnerID {
		return ErrAlreadyOwner
	}
	if containsID(s.cfg.Roles.Admins, id) || containsID(s.cfg.Roles.SpecialAdmins, id) {
		return ErrAlreadyAssigned
	}
	s.cfg.Roles.Admins = append(s.cfg.Roles.Admins, id)
	s.persist()
	return nil
}

// AddSpecialAdmin promotes a user to special administrator. A plain admin is
// moved between the sets so they stay disjoint.
func (s *Store) AddSpecialAdmin(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.cfg.Roles.OwnerID {
		return ErrAlreadyOwner
	}
	if containsID(s.cfg.Roles.SpecialAdmins, id) {
		return ErrAlreadyAssigned
	}
	s.cfg.Roles.Admins = removeID(s.cfg.Roles.Admins, id)
	s.cfg.Roles.SpecialAdmins = append(s.cfg.Roles.SpecialAdmins, id)
	s.persist()
	return nil
}

// RemoveAdmin demotes a user from whichever admin set contains them.
func (s *Store) RemoveAdmin(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.cfg.Roles.OwnerID {
		return ErrCannotRemoveOwner
	}
	removed := false
	if containsID(s.cfg.Roles.Admins, id) {
		s.cfg.Roles.Admins = removeID(s.cfg.Roles.Admins, id)
		removed = true
	}
	if containsID(s.cfg.Roles.SpecialAdmins, id) {
		s.cfg.Roles.SpecialAdmins = removeID(s.cfg.Roles.SpecialAdmins, id)
		removed = true
	}
	if !removed {
		return ErrNotAdmin
	}
	s.persist()
	return nil
}

// SetAdminChannel updates the channel where admins may add scammers.
func (s *Store) SetAdminChannel(channelID, guildID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.AdminChannelID = channelID
	if guildID != "" {
		s.cfg.GuildID = guildID
	}
	s.persist()
}

// SetCheckSubscription sets the membership gate.
func (s *Store) SetCheckSubscription(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.CheckSubscription = enabled
	s.persist()
}

// ToggleCheckSubscription flips the membership gate under the lock and
// returns the new state.
func (s *Store) ToggleCheckSubscription() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.CheckSubscription = !s.cfg.CheckSubscription
	s.persist()
	return s.cfg.CheckSubscription
}

// SetImage updates the image URL for a result type.
func (s *Store) SetImage(slot, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cfg.Images[slot]; !ok {
		return fmt.Errorf("unknown image type %q", slot)
	}
	s.cfg.Images[slot] = url
	s.persist()
	return nil
}

func (s *Store) persist() {
	if s.path == "" {
		return
	}
	if err := model.SaveConfig(s.cfg, s.path); err != nil {
		log.Printf("Error saving config to %s: %v", s.path, err)
	}
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
