package scam

import (
	"fmt"

	"scambase-bot/bot"
	"scambase-bot/model"
	"scambase-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleConfigCommand processes /scambase-config: owner-only bot settings.
func HandleConfigCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	actor := interactionUser(i)
	if !utils.HasPermission(b.GetRoles(), actor.ID, utils.RoleOwner) {
		utils.SendErrorResponse(s, i, "Only the owner can change bot settings.")
		return
	}

	opts := optionMap(i)
	switch opts["setting"].StringValue() {
	case "toggle-gate":
		enabled := b.Store.ToggleCheckSubscription()
		audit(b, model.AuditActionToggleGate, actor.ID, "", fmt.Sprintf("%t", enabled), i.ChannelID)
		state := "disabled"
		if enabled {
			state = "enabled"
		}
		utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Membership gate %s.", state))

	case "set-admin-channel":
		b.Store.SetAdminChannel(i.ChannelID, i.GuildID)
		audit(b, model.AuditActionSetAdminChat, actor.ID, "", i.ChannelID, i.ChannelID)
		utils.LogInfo(s, b.GetConfig().LogChannelID, "Config", "SetAdminChannel",
			fmt.Sprintf("%s set the admin channel to %s", actor.ID, i.ChannelID))
		utils.SendSimpleResponse(s, i, "✅ This channel is now the admin channel. Scammers can only be added here.")

	case "set-image":
		slot := ""
		if opt, ok := opts["image-type"]; ok {
			slot = opt.StringValue()
		}
		url := ""
		if opt, ok := opts["value"]; ok {
			url = opt.StringValue()
		}
		if slot == "" || url == "" {
			utils.SendErrorResponse(s, i, "Both image-type and value are required for set-image.")
			return
		}
		if err := b.Store.SetImage(slot, url); err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		audit(b, model.AuditActionSetImage, actor.ID, "", slot, i.ChannelID)
		utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Image for `%s` updated.", slot))

	default:
		utils.SendErrorResponse(s, i, "Unknown setting.")
	}
}
