package commands

import (
	"github.com/bwmarrin/discordgo"
)

// Definitions returns the full slash command set.
func Definitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "scam-add",
			Description: "Report a scammer. Admins only, admin channel only.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "identifier",
					Description: "User ID, @username, mention or profile link.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "What they did.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "proof",
					Description: "Link to evidence (screenshots, payment trail).",
					Required:    false,
				},
			},
		},
		{
			Name:        "scam-check",
			Description: "Check whether a user is in the scam database.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "identifier",
					Description: "User ID, @username, mention or profile link.",
					Required:    true,
				},
			},
		},
		{
			Name:        "scam-checkme",
			Description: "Check yourself against the scam database.",
		},
		{
			Name:        "scam-admin",
			Description: "Manage a scam database record.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "identifier",
					Description: "User ID or @username of the record.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "action",
					Description: "The action to perform.",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Remove from database", Value: "remove"},
						{Name: "Erase permanently", Value: "erase"},
						{Name: "Set country", Value: "set-country"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "country",
					Description: "Country value for set-country.",
					Required:    false,
				},
			},
		},
		{
			Name:        "admins",
			Description: "Manage bot administrators.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "action",
					Description: "The action to perform.",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "List", Value: "list"},
						{Name: "Add admin", Value: "add"},
						{Name: "Add special admin", Value: "add-special"},
						{Name: "Remove", Value: "remove"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "id",
					Description: "Numeric user ID for add/remove actions.",
					Required:    false,
				},
			},
		},
		{
			Name:        "scam-stats",
			Description: "Scam database statistics.",
		},
		{
			Name:        "scam-recent",
			Description: "Most recently added scammers.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "limit",
					Description: "How many records to show (default 10).",
					Required:    false,
				},
			},
		},
		{
			Name:        "scam-country",
			Description: "List scammers from a country.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "country",
					Description: "Country to search for.",
					Required:    true,
				},
			},
		},
		{
			Name:        "scambase-config",
			Description: "Owner settings.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "setting",
					Description: "The setting to change.",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Toggle membership gate", Value: "toggle-gate"},
						{Name: "Set admin channel (this channel)", Value: "set-admin-channel"},
						{Name: "Set result image", Value: "set-image"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "image-type",
					Description: "Image slot for set-image.",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Scammer found", Value: "scammer_found"},
						{Name: "User clean", Value: "user_clean"},
						{Name: "Warning", Value: "warning"},
						{Name: "Admin", Value: "admin"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "value",
					Description: "Image URL for set-image.",
					Required:    false,
				},
			},
		},
		{
			Name:        "botstatus",
			Description: "Bot host and database status. Owner only.",
		},
	}
}
