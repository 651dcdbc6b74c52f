package scam

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"scambase-bot/bot"
	"scambase-bot/config"
	"scambase-bot/model"
	"scambase-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleAdminsCommand processes /admins: role listing and assignment.
func HandleAdminsCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	action := opts["action"].StringValue()

	if action == "list" {
		handleAdminList(s, i, b)
		return
	}

	rawID := ""
	if opt, ok := opts["id"]; ok {
		rawID = strings.TrimSpace(opt.StringValue())
	}
	if rawID == "" {
		utils.SendErrorResponse(s, i, "A numeric user ID is required for this action.")
		return
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		utils.SendErrorResponse(s, i, "The ID has to be numeric, e.g. 123456789.")
		return
	}

	actor := interactionUser(i)
	if rawID == actor.ID && action != "remove" {
		utils.SendErrorResponse(s, i, "You cannot change your own role.")
		return
	}

	switch action {
	case "add":
		handleAdminAdd(s, i, b, id, rawID)
	case "add-special":
		handleSpecialAdminAdd(s, i, b, id, rawID)
	case "remove":
		handleAdminRemove(s, i, b, id, rawID)
	default:
		utils.SendErrorResponse(s, i, "Unknown action.")
	}
}

func handleAdminList(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	roles := b.GetRoles()
	actor := interactionUser(i)
	if !utils.IsAdmin(roles, actor.ID) {
		utils.SendErrorResponse(s, i, "Administrators only.")
		return
	}

	var sb strings.Builder
	sb.WriteString("👥 Bot administrators\n\n")
	fmt.Fprintf(&sb, "👑 Owner: `%d`\n", roles.OwnerID)

	sb.WriteString("\n🛡️ Special admins:\n")
	if len(roles.SpecialAdmins) == 0 {
		sb.WriteString("  none\n")
	}
	for _, id := range roles.SpecialAdmins {
		fmt.Fprintf(&sb, "  • `%d`\n", id)
	}

	sb.WriteString("\n👮 Admins:\n")
	if len(roles.Admins) == 0 {
		sb.WriteString("  none\n")
	}
	for _, id := range roles.Admins {
		fmt.Fprintf(&sb, "  • `%d`\n", id)
	}

	utils.SendSimpleResponse(s, i, sb.String())
}

func handleAdminAdd(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, id int64, rawID string) {
	actor := interactionUser(i)
	if !utils.HasPermission(b.GetRoles(), actor.ID, utils.RoleSpecialAdmin) {
		utils.SendErrorResponse(s, i, "Only special admins can appoint admins.")
		return
	}

	if err := b.Store.AddAdmin(id); err != nil {
		utils.SendErrorResponse(s, i, roleErrorText(err))
		return
	}
	audit(b, model.AuditActionAddAdmin, actor.ID, rawID, "", i.ChannelID)
	utils.LogInfo(s, b.GetConfig().LogChannelID, "Roles", "AddAdmin",
		fmt.Sprintf("%s appointed %s as admin", actor.ID, rawID))
	utils.SendPrivateMessage(s, rawID,
		"👮 You have been appointed an administrator of the scam database.\n"+
			"You can now add scammers from the admin channel.")
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ `%s` is now an admin.", rawID))
}

func handleSpecialAdminAdd(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, id int64, rawID string) {
	actor := interactionUser(i)
	if !utils.HasPermission(b.GetRoles(), actor.ID, utils.RoleOwner) {
		utils.SendErrorResponse(s, i, "Only the owner can appoint special admins.")
		return
	}

	if err := b.Store.AddSpecialAdmin(id); err != nil {
		utils.SendErrorResponse(s, i, roleErrorText(err))
		return
	}
	audit(b, model.AuditActionAddSpecial, actor.ID, rawID, "", i.ChannelID)
	utils.LogInfo(s, b.GetConfig().LogChannelID, "Roles", "AddSpecialAdmin",
		fmt.Sprintf("%s appointed %s as special admin", actor.ID, rawID))
	utils.SendPrivateMessage(s, rawID,
		"🛡️ You have been appointed a special administrator of the scam database.\n"+
			"You can now remove records and appoint admins.")
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ `%s` is now a special admin.", rawID))
}

func handleAdminRemove(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, id int64, rawID string) {
	actor := interactionUser(i)
	roles := b.GetRoles()
	if !utils.HasPermission(roles, actor.ID, utils.RoleSpecialAdmin) {
		utils.SendErrorResponse(s, i, "Only special admins can demote admins.")
		return
	}
	// A special admin can only be demoted by the owner.
	if utils.RoleOf(roles, rawID) == utils.RoleSpecialAdmin &&
		utils.RoleOf(roles, actor.ID) != utils.RoleOwner {
		utils.SendErrorResponse(s, i, "Only the owner can demote a special admin.")
		return
	}

	if err := b.Store.RemoveAdmin(id); err != nil {
		utils.SendErrorResponse(s, i, roleErrorText(err))
		return
	}
	audit(b, model.AuditActionRemoveAdmin, actor.ID, rawID, "", i.ChannelID)
	utils.LogWarn(s, b.GetConfig().LogChannelID, "Roles", "RemoveAdmin",
		fmt.Sprintf("%s demoted %s", actor.ID, rawID))
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ `%s` is no longer an administrator.", rawID))
}

// roleErrorText maps role management errors to user-facing messages.
func roleErrorText(err error) string {
	switch {
	case errors.Is(err, config.ErrAlreadyOwner):
		return "This user is the owner and already holds every permission."
	case errors.Is(err, config.ErrAlreadyAssigned):
		return "This user already holds this role."
	case errors.Is(err, config.ErrNotAdmin):
		return "This user is not an administrator."
	case errors.Is(err, config.ErrCannotRemoveOwner):
		return "The owner cannot be removed."
	default:
		return "Role change failed. Try again later."
	}
}
