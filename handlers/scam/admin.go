package scam

import (
	"fmt"
	"strings"

	"scambase-bot/bot"
	"scambase-bot/model"
	"scambase-bot/resolver"
	"scambase-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleScamAdminCommand processes /scam-admin: record administration.
func HandleScamAdminCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i)
	identifier := opts["identifier"].StringValue()
	action := opts["action"].StringValue()

	switch action {
	case "remove":
		handleRemove(s, i, b, identifier)
	case "erase":
		handleErase(s, i, b, identifier)
	case "set-country":
		country := ""
		if opt, ok := opts["country"]; ok {
			country = opt.StringValue()
		}
		handleSetCountry(s, i, b, identifier, country)
	default:
		utils.SendErrorResponse(s, i, "Unknown action.")
	}
}

// handleRemove asks for confirmation before soft-deleting a record.
func handleRemove(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, identifier string) {
	actor := interactionUser(i)
	if !utils.HasPermission(b.GetRoles(), actor.ID, utils.RoleSpecialAdmin) {
		utils.SendErrorResponse(s, i, "You do not have permission to remove scammers.")
		return
	}

	record := findRecord(b.Registry, identifier)
	if record == nil {
		utils.SendErrorResponse(s, i, "Scammer not found in the database.")
		return
	}

	prompt := fmt.Sprintf(
		"⚠️ Confirm removal:\n👤 %s\n🆔 `%s`\n📝 Reasons: %d\n📊 Reports: %d\n\nRemove this scammer from the database?",
		displayHandle(record.Username), record.UserID, len(record.Reasons), record.Reports)
	utils.SendComponentResponse(s, i, prompt, removeConfirmButtons(record.UserID))
}

// handleErase permanently deletes a record. Owner only; removed records are
// reachable here by their numeric ID.
func handleErase(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, identifier string) {
	actor := interactionUser(i)
	if !utils.HasPermission(b.GetRoles(), actor.ID, utils.RoleOwner) {
		utils.SendErrorResponse(s, i, "Only the owner can permanently erase records.")
		return
	}

	userID := resolver.CleanIdentifier(identifier)
	if !resolver.IsNumericID(userID) {
		if record := findRecord(b.Registry, identifier); record != nil {
			userID = record.UserID
		}
	}

	if !b.Registry.HardDelete(userID) {
		utils.SendErrorResponse(s, i, "No record found for this identifier.")
		return
	}
	audit(b, model.AuditActionErase, actor.ID, userID, "", i.ChannelID)
	utils.LogWarn(s, b.GetConfig().LogChannelID, "Registry", "Erase",
		fmt.Sprintf("%s permanently erased %s", actor.ID, userID))
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Record `%s` permanently erased.", userID))
}

// handleSetCountry sets the country directly from the command.
func handleSetCountry(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, identifier, country string) {
	actor := interactionUser(i)
	if !utils.HasPermission(b.GetRoles(), actor.ID, utils.RoleAdmin) {
		utils.SendErrorResponse(s, i, "You do not have permission to set countries.")
		return
	}

	record := findRecord(b.Registry, identifier)
	if record == nil {
		utils.SendErrorResponse(s, i, "Scammer not found in the database.")
		return
	}
	if country == "" {
		utils.SendComponentResponse(s, i, "🌍 Pick a country for the scammer:", countryButtons(record.UserID))
		return
	}

	b.Registry.SetCountry(record.UserID, country)
	audit(b, model.AuditActionSetCountry, actor.ID, record.UserID, country, i.ChannelID)
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Country set: %s", country))
}

// HandleScamComponent routes button presses on check results and dialogs.
func HandleScamComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	customID := i.MessageComponentData().CustomID
	actor := interactionUser(i)
	roles := b.GetRoles()

	switch {
	case strings.HasPrefix(customID, "profile_"):
		scammerID := strings.TrimPrefix(customID, "profile_")
		if scammerID == "none" {
			utils.SendSimpleResponse(s, i, "❌ Profile not found in the database.")
			return
		}
		record := findRecord(b.Registry, scammerID)
		if record == nil {
			utils.SendSimpleResponse(s, i, "❌ Profile not found in the database.")
			return
		}
		embed := buildProfileEmbed(record)
		if history := auditHistory(b, record.UserID); history != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "🕒 History", Value: history,
			})
		}
		utils.SendEmbedResponse(s, i, embed, nil, true)

	case strings.HasPrefix(customID, "set_country_"):
		scammerID := strings.TrimPrefix(customID, "set_country_")
		if scammerID == "none" {
			utils.SendSimpleResponse(s, i, "❌ The user has to be added to the database first.")
			return
		}
		if !utils.HasPermission(roles, actor.ID, utils.RoleAdmin) {
			utils.SendErrorResponse(s, i, "You do not have permission to set countries.")
			return
		}
		utils.SendComponentResponse(s, i, "🌍 Pick a country for the scammer:", countryButtons(scammerID))

	case strings.HasPrefix(customID, "country_"):
		rest := strings.TrimPrefix(customID, "country_")
		idx := strings.LastIndex(rest, "_")
		if idx <= 0 {
			utils.SendErrorResponse(s, i, "Malformed country selection.")
			return
		}
		scammerID, code := rest[:idx], rest[idx+1:]
		if !utils.HasPermission(roles, actor.ID, utils.RoleAdmin) {
			utils.SendErrorResponse(s, i, "You do not have permission to set countries.")
			return
		}
		name := countryName(code)
		b.Registry.SetCountry(scammerID, name)
		audit(b, model.AuditActionSetCountry, actor.ID, scammerID, name, i.ChannelID)
		utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Country set: %s", name))

	case strings.HasPrefix(customID, "confirm_remove_"):
		scammerID := strings.TrimPrefix(customID, "confirm_remove_")
		if !utils.HasPermission(roles, actor.ID, utils.RoleSpecialAdmin) {
			utils.SendErrorResponse(s, i, "You do not have permission to remove scammers.")
			return
		}
		if !b.Registry.SoftDelete(scammerID) {
			utils.SendErrorResponse(s, i, "Failed to remove: record not found.")
			return
		}
		audit(b, model.AuditActionRemove, actor.ID, scammerID, "", i.ChannelID)
		utils.LogInfo(s, b.GetConfig().LogChannelID, "Registry", "Remove",
			fmt.Sprintf("%s removed %s from the database", actor.ID, scammerID))
		utils.SendSimpleResponse(s, i, "✅ Scammer removed from the database.")

	case strings.HasPrefix(customID, "remove_"):
		scammerID := strings.TrimPrefix(customID, "remove_")
		if !utils.HasPermission(roles, actor.ID, utils.RoleSpecialAdmin) {
			utils.SendErrorResponse(s, i, "You do not have permission to remove scammers.")
			return
		}
		record := b.Registry.LookupActive(scammerID)
		if record == nil {
			utils.SendErrorResponse(s, i, "Scammer not found in the database.")
			return
		}
		prompt := fmt.Sprintf(
			"⚠️ Confirm removal:\n👤 %s\n🆔 `%s`\n📝 Reasons: %d\n📊 Reports: %d\n\nRemove this scammer from the database?",
			displayHandle(record.Username), record.UserID, len(record.Reasons), record.Reports)
		utils.SendComponentResponse(s, i, prompt, removeConfirmButtons(record.UserID))

	case customID == "cancel_remove" || customID == "cancel_country":
		utils.SendSimpleResponse(s, i, "❌ Action cancelled.")

	case customID == "how_to_report":
		utils.SendSimpleResponse(s, i,
			"📢 How to report a scammer:\n"+
				"1. Collect proof (chat and payment screenshots)\n"+
				"2. Post it in the admin channel\n"+
				"3. An administrator verifies and adds the scammer\n\n"+
				"⚠️ Only administrators can add to the database.")

	case customID == "what_is_guarantor":
		utils.SendSimpleResponse(s, i,
			"🛡️ A guarantor is a neutral party securing a deal:\n"+
				"• The seller is paid only after the goods are delivered\n"+
				"• The buyer pays only after receiving the goods\n"+
				"• Both sides are protected from fraud\n\n"+
				"📌 Always use a guarantor for larger deals.")

	default:
		utils.SendSimpleResponse(s, i, "❌ Unknown button.")
	}
}
