// Package handlers wires interaction events to the command implementations.
package handlers

import (
	"log"
	"strings"

	"scambase-bot/bot"
	"scambase-bot/handlers/scam"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"scam-add": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			scam.HandleAddCommand(s, i, b)
		},
		"scam-check": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			scam.HandleCheckCommand(s, i, b)
		},
		"scam-checkme": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			scam.HandleCheckMeCommand(s, i, b)
		},
		"scam-admin": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			scam.HandleScamAdminCommand(s, i, b)
		},
		"admins": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			scam.HandleAdminsCommand(s, i, b)
		},
		"scam-stats": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			scam.HandleStatsCommand(s, i, b)
		},
		"scam-recent": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			scam.HandleRecentCommand(s, i, b)
		},
		"scam-country": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			scam.HandleCountryCommand(s, i, b)
		},
		"scambase-config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			scam.HandleConfigCommand(s, i, b)
		},
		"botstatus": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			SystemInfoHandler(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
				h(s, i)
			}
		case discordgo.InteractionMessageComponent:
			if isScamComponent(i.MessageComponentData().CustomID) {
				scam.HandleScamComponent(s, i, b)
			}
		}
	})
}

var scamComponentPrefixes = []string{
	"profile_",
	"set_country_",
	"country_",
	"remove_",
	"confirm_remove_",
}

var scamComponentIDs = []string{
	"cancel_remove",
	"cancel_country",
	"how_to_report",
	"what_is_guarantor",
}

func isScamComponent(customID string) bool {
	for _, prefix := range scamComponentPrefixes {
		if strings.HasPrefix(customID, prefix) {
			return true
		}
	}
	for _, id := range scamComponentIDs {
		if customID == id {
			return true
		}
	}
	return false
}
