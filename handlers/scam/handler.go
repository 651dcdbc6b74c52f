// Package scam implements the command surface over the scammer registry:
// reporting, checking, record administration, role management and stats.
package scam

import (
	"errors"
	"fmt"
	"log"

	"scambase-bot/bot"
	"scambase-bot/model"
	"scambase-bot/registry"
	"scambase-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleAddCommand processes /scam-add: admin-channel gated reporting.
func HandleAddCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cfg := b.GetConfig()
	roles := b.GetRoles()
	actor := interactionUser(i)

	// 1. Authorize. Adding is tied to the admin channel for everyone below
	// the owner, regardless of rank.
	if !utils.CanAddScammer(roles, actor.ID, i.ChannelID, cfg.AdminChannelID) {
		if i.ChannelID == cfg.AdminChannelID {
			utils.SendErrorResponse(s, i, "You do not have permission to add scammers.")
		} else {
			utils.SendErrorResponse(s, i,
				"Scammers can only be added in the admin channel.\n"+
					"Use /scam-check to look someone up, or contact an administrator to report.")
		}
		return
	}

	// 2. Defer the public response; resolution may take a moment.
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	// 3. Parse command options.
	opts := optionMap(i)
	identifier := opts["identifier"].StringValue()
	reason := opts["reason"].StringValue()
	proofLink := ""
	if opt, ok := opts["proof"]; ok {
		proofLink = opt.StringValue()
	}

	// 4. Canonicalise the target through the directory, with fallback.
	userID, username := resolveTarget(b.Resolver, b.Registry, identifier)
	if userID == "" {
		utils.SendFollowUpError(s, i.Interaction, "Empty identifier.")
		return
	}
	if s.State != nil && s.State.User != nil && userID == s.State.User.ID {
		utils.SendFollowUpError(s, i.Interaction, "The bot itself cannot be added to the database.")
		return
	}

	// 5. Synthesize a proof permalink from this report when none was given.
	if proofLink == "" {
		proofLink = messageLink(s, i)
	}

	// 6. Register the report.
	record, created, err := b.Registry.AddOrMerge(registry.AddInput{
		UserID:    userID,
		Username:  username,
		Reason:    reason,
		ProofLink: proofLink,
		AddedBy:   actor.ID,
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, registry.ErrTargetIsAdmin) {
			utils.SendFollowUpError(s, i.Interaction, "Administrators cannot be added to the scam database.")
			return
		}
		utils.LogError(s, cfg.LogChannelID, "Registry", "Add",
			fmt.Sprintf("failed to add %s: %v", userID, err))
		utils.SendFollowUpError(s, i.Interaction, "Failed to add the record. Try again later.")
		return
	}

	// 7. Announce and offer the country follow-up.
	actorRole := utils.RoleOf(roles, actor.ID)
	embed := buildAddedEmbed(cfg, record, actorRole, reason, proofLink, created)
	utils.SendFollowUpEmbed(s, i.Interaction, embed, countryPrompt(record.UserID))

	// 8. Trace: audit entry, channel log, owner notification.
	action := model.AuditActionAdd
	if !created {
		action = model.AuditActionUpdate
	}
	audit(b, action, actor.ID, record.UserID, reason, i.ChannelID)
	utils.LogInfo(s, cfg.LogChannelID, "Registry", "Add",
		fmt.Sprintf("%s reported %s (%s): %s", actor.ID, record.Username, record.UserID, reason))
	notifyOwner(s, cfg, record, actorRole, created)
}

// countryPrompt is the single set-country button offered after an add.
func countryPrompt(scammerID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "🌍 Set country",
					Style:    discordgo.SecondaryButton,
					CustomID: "set_country_" + scammerID,
				},
			},
		},
	}
}

// notifyOwner DMs the owner about a new or updated record.
func notifyOwner(s *discordgo.Session, cfg *model.Config, record *model.ScammerRecord, actorRole utils.Role, created bool) {
	if cfg.Roles.OwnerID == 0 {
		return
	}
	verb := "updated"
	if created {
		verb = "added"
	}
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔔 Scammer %s", verb),
		Color: 0xffa500,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 User", Value: displayHandle(record.Username), Inline: true},
			{Name: "🆔 ID", Value: fmt.Sprintf("`%s`", record.UserID), Inline: true},
			{Name: "📊 Reports", Value: fmt.Sprintf("%d", record.Reports), Inline: true},
			{Name: "👮 By", Value: roleText(actorRole), Inline: true},
		},
	}
	utils.SendPrivateEmbedMessage(s, fmt.Sprintf("%d", cfg.Roles.OwnerID), embed)
}
