// Package resolver canonicalises user-supplied identifiers (mention, profile
// URL, numeric ID or username) into a stable numeric identity and a display
// handle, by asking the platform's user directory.
package resolver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// ErrUnresolved means the directory knows no user for the identifier. It is
// an expected condition: callers fall back to the registry, then to the raw
// identifier itself.
var ErrUnresolved = errors.New("could not resolve user identifier")

// Result is a canonical identity and its display handle.
type Result struct {
	ID     string
	Handle string
}

// Resolver resolves a raw identifier into a canonical identity.
type Resolver interface {
	Resolve(raw string) (Result, error)
}

// DefaultTimeout bounds a single directory lookup.
const DefaultTimeout = 5 * time.Second

// DiscordResolver resolves identifiers through the Discord API: numeric IDs
// via a direct user fetch, usernames via a member search in the configured
// guild.
type DiscordResolver struct {
	Session *discordgo.Session
	GuildID string
	Timeout time.Duration
}

func New(session *discordgo.Session, guildID string) *DiscordResolver {
	return &DiscordResolver{
		Session: session,
		GuildID: guildID,
		Timeout: DefaultTimeout,
	}
}

func (r *DiscordResolver) Resolve(raw string) (Result, error) {
	clean := CleanIdentifier(raw)
	if clean == "" {
		return Result{}, ErrUnresolved
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	if IsNumericID(clean) {
		user, err := r.Session.User(clean, discordgo.WithContext(ctx))
		if err != nil {
			return Result{}, ErrUnresolved
		}
		return Result{ID: user.ID, Handle: displayHandle(user)}, nil
	}

	if r.GuildID == "" {
		return Result{}, ErrUnresolved
	}
	members, err := r.Session.GuildMembersSearch(r.GuildID, clean, 1, discordgo.WithContext(ctx))
	if err != nil || len(members) == 0 {
		return Result{}, ErrUnresolved
	}
	return Result{ID: members[0].User.ID, Handle: displayHandle(members[0].User)}, nil
}

// CleanIdentifier strips mention markup, profile URL prefixes and a leading
// @ from a user-supplied identifier.
func CleanIdentifier(raw string) string {
	s := strings.TrimSpace(raw)
	for _, prefix := range []string{
		"https://discord.com/users/",
		"https://discordapp.com/users/",
		"discord.com/users/",
	} {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.TrimPrefix(s, "<@!")
	s = strings.TrimPrefix(s, "<@")
	s = strings.TrimSuffix(s, ">")
	s = strings.TrimPrefix(s, "@")
	return strings.TrimSpace(s)
}

// IsNumericID reports whether s is a bare numeric identity.
func IsNumericID(s string) bool {
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

func displayHandle(user *discordgo.User) string {
	if user.Username != "" {
		return user.Username
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return "id" + user.ID
}
