package scam

import (
	"log"

	"scambase-bot/bot"
	"scambase-bot/model"
	"scambase-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleCheckCommand processes /scam-check: look up any identifier.
func HandleCheckCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireGate(s, i, b) {
		return
	}
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	identifier := optionMap(i)["identifier"].StringValue()
	userID, username := resolveTarget(b.Resolver, b.Registry, identifier)

	record := b.Registry.LookupActive(userID)
	if record == nil {
		record = b.Registry.LookupByHandle(username)
	}
	respondCheck(s, i, b, userID, username, record)
}

// HandleCheckMeCommand processes /scam-checkme: the actor checks themself.
func HandleCheckMeCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireGate(s, i, b) {
		return
	}
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	user := interactionUser(i)
	username := user.Username
	if username == "" {
		username = "id" + user.ID
	}
	respondCheck(s, i, b, user.ID, username, b.Registry.LookupActive(user.ID))
}

func respondCheck(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, userID, username string, record *model.ScammerRecord) {
	cfg := b.GetConfig()
	roles := b.GetRoles()

	verdict := verdictClean
	switch {
	case record != nil:
		verdict = verdictScammer
		userID = record.UserID
		username = record.Username
	case utils.IsAdmin(roles, userID):
		verdict = verdictAdmin
	}

	actor := interactionUser(i)
	canRemove := utils.HasPermission(roles, actor.ID, utils.RoleSpecialAdmin)

	embed := buildCheckEmbed(cfg, verdict, username, userID, record, b.Registry.Stats())
	utils.SendFollowUpEmbed(s, i.Interaction, embed, checkButtons(record, canRemove))
}
