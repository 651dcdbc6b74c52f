package scam

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"scambase-bot/bot"
	"scambase-bot/model"
	"scambase-bot/registry"
	"scambase-bot/resolver"
	"scambase-bot/utils"
	"scambase-bot/utils/database"

	"github.com/bwmarrin/discordgo"
)

// interactionUser returns the acting user for both guild and DM interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// optionMap indexes the interaction options by name.
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// resolveTarget canonicalises a raw identifier through the directory, falling
// back to a prior registry record matched by handle, and finally to the raw
// identifier itself as both identity and handle.
func resolveTarget(res resolver.Resolver, reg *registry.Registry, raw string) (userID, username string) {
	clean := resolver.CleanIdentifier(raw)
	if result, err := res.Resolve(clean); err == nil {
		return result.ID, result.Handle
	}
	if record := reg.LookupByHandle(clean); record != nil {
		return record.UserID, record.Username
	}
	return clean, clean
}

// findRecord locates an active record by numeric ID or by handle.
func findRecord(reg *registry.Registry, identifier string) *model.ScammerRecord {
	clean := resolver.CleanIdentifier(identifier)
	if resolver.IsNumericID(clean) {
		if record := reg.LookupActive(clean); record != nil {
			return record
		}
	}
	return reg.LookupByHandle(clean)
}

// passesGate enforces the membership gate for ordinary users. Admins bypass
// it, and a failed gate lookup lets the user through: the gate exists to
// nudge membership, not to lock users out on API hiccups.
func passesGate(s *discordgo.Session, b *bot.Bot, userID string) bool {
	cfg := b.GetConfig()
	if !cfg.CheckSubscription || cfg.RequiredGuildID == "" {
		return true
	}
	if utils.IsAdmin(b.GetRoles(), userID) {
		return true
	}

	_, err := s.GuildMember(cfg.RequiredGuildID, userID)
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Message != nil &&
			restErr.Message.Code == discordgo.ErrCodeUnknownMember {
			return false
		}
		log.Printf("Membership gate check failed for user %s: %v", userID, err)
		return true
	}
	return true
}

// requireGate replies with the join prompt when the gate rejects the user.
func requireGate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) bool {
	user := interactionUser(i)
	if user == nil || passesGate(s, b, user.ID) {
		return true
	}
	utils.SendSimpleResponse(s, i,
		"⚠️ You need to join the community server to use this bot.\n"+
			"Join it, then run the command again.")
	return false
}

// messageLink builds a permalink to the interaction's response message,
// used as the synthesized proof reference for a report.
func messageLink(s *discordgo.Session, i *discordgo.InteractionCreate) string {
	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return ""
	}
	return messagePermalink(i.GuildID, i.ChannelID, msg.ID)
}

// messagePermalink formats a message permalink. DM interactions carry no
// guild ID; their permalinks use the @me segment.
func messagePermalink(guildID, channelID, messageID string) string {
	if guildID == "" {
		guildID = "@me"
	}
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

// audit appends one entry to the audit trail. Audit failures are logged and
// never surface to the actor.
func audit(b model.Bot, action, actorID, targetID, detail, channelID string) {
	db := b.GetAuditDB()
	if db == nil {
		return
	}
	record := model.AuditRecord{
		Action:    action,
		ActorID:   actorID,
		TargetID:  targetID,
		Detail:    detail,
		ChannelID: channelID,
	}
	if err := database.AddAuditRecord(db, record); err != nil {
		log.Printf("Failed to write audit record: %v", err)
	}
}

// auditHistory renders the latest audit entries for a target, newest first.
func auditHistory(b model.Bot, targetID string) string {
	db := b.GetAuditDB()
	if db == nil {
		return ""
	}
	records, err := database.GetAuditRecordsByTargetID(db, targetID)
	if err != nil {
		log.Printf("Failed to read audit history for %s: %v", targetID, err)
		return ""
	}
	if len(records) > 5 {
		records = records[:5]
	}
	var sb strings.Builder
	for _, r := range records {
		fmt.Fprintf(&sb, "%s %s by %s\n",
			time.Unix(r.Timestamp, 0).UTC().Format(model.TimeLayout), r.Action, r.ActorID)
	}
	return sb.String()
}
