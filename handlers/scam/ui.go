package scam

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"scambase-bot/model"
	"scambase-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// checkVerdict classifies a check result for rendering.
type checkVerdict int

const (
	verdictClean checkVerdict = iota
	verdictScammer
	verdictAdmin
)

var countryChoices = []struct {
	Code string
	Name string
}{
	{"RU", "🇷🇺 Russia"},
	{"UA", "🇺🇦 Ukraine"},
	{"BY", "🇧🇾 Belarus"},
	{"KZ", "🇰🇿 Kazakhstan"},
	{"US", "🇺🇸 USA"},
	{"EU", "🇪🇺 EU"},
	{"TR", "🇹🇷 Turkey"},
	{"AZ", "🇦🇿 Azerbaijan"},
}

func countryName(code string) string {
	for _, c := range countryChoices {
		if c.Code == code {
			return c.Name
		}
	}
	return code
}

func roleText(role utils.Role) string {
	switch role {
	case utils.RoleOwner:
		return "👑 BOT OWNER"
	case utils.RoleSpecialAdmin:
		return "🛡️ SPECIAL ADMIN"
	case utils.RoleAdmin:
		return "👮 ADMIN"
	default:
		return "👤 USER"
	}
}

func displayHandle(username string) string {
	if username == "" {
		return "@unknown"
	}
	if strings.HasPrefix(username, "@") {
		return username
	}
	return "@" + username
}

// buildCheckEmbed renders the result of a check against one user.
func buildCheckEmbed(cfg *model.Config, verdict checkVerdict, username, userID string, record *model.ScammerRecord, stats model.RegistryStats) *discordgo.MessageEmbed {
	var (
		title     string
		color     int
		imageSlot string
		chance    int
		country   = "None"
		reports   = 0
	)

	switch verdict {
	case verdictScammer:
		title = "🔴 USER IS IN THE SCAM DATABASE!"
		color = 0xff0000
		imageSlot = model.ImageScammerFound
		chance = 100
		if record.Country != "" {
			country = record.Country
		}
		reports = record.Reports
	case verdictAdmin:
		title = "🔵 BOT ADMINISTRATOR"
		color = 0x5865f2
		imageSlot = model.ImageAdmin
		chance = 0
	default:
		title = "🟢 USER IS NOT IN THE DATABASE"
		color = 0x00ff00
		imageSlot = model.ImageUserClean
		chance = rand.Intn(10) + 1
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Color:       color,
		Description: fmt.Sprintf("👤 %s [`%s`]", displayHandle(username), userID),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🎯 Scam chance", Value: fmt.Sprintf("%d%%", chance), Inline: true},
			{Name: "🌍 Country", Value: country, Inline: true},
			{Name: "🔒 Reports", Value: fmt.Sprintf("%d", reports), Inline: true},
			{Name: "👁️ Scammers in database", Value: fmt.Sprintf("%d", stats.ActiveScammers)},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Always use a guarantor for safe deals!",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if url := cfg.Images[imageSlot]; url != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}
	return embed
}

// buildAddedEmbed renders the confirmation after a report lands.
func buildAddedEmbed(cfg *model.Config, record *model.ScammerRecord, actorRole utils.Role, reason, proofLink string, created bool) *discordgo.MessageEmbed {
	outcome := "Record updated in the database."
	if created {
		outcome = "New record added to the database."
	}
	embed := &discordgo.MessageEmbed{
		Title: "⚠️ SCAMMER REPORTED",
		Color: 0xffa500,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 User", Value: displayHandle(record.Username), Inline: true},
			{Name: "🆔 ID", Value: fmt.Sprintf("`%s`", record.UserID), Inline: true},
			{Name: "📊 Reports", Value: fmt.Sprintf("%d", record.Reports), Inline: true},
			{Name: "📝 Reason", Value: reason},
			{Name: "👮 Reported by", Value: roleText(actorRole), Inline: true},
			{Name: "📅 Date", Value: record.AddedDate, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: outcome},
	}
	if proofLink != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🔗 Proof", Value: proofLink,
		})
	}
	if url := cfg.Images[model.ImageWarning]; url != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}
	return embed
}

// buildProfileEmbed renders the full record: every reason and proof on file.
func buildProfileEmbed(record *model.ScammerRecord) *discordgo.MessageEmbed {
	country := record.Country
	if country == "" {
		country = "Not set"
	}

	var reasons strings.Builder
	for n, reason := range record.Reasons {
		fmt.Fprintf(&reasons, "%d. %s\n", n+1, reason)
	}
	proofs := "No proofs on file"
	if len(record.Proofs) > 0 {
		var sb strings.Builder
		for n, proof := range record.Proofs {
			fmt.Fprintf(&sb, "%d. %s\n", n+1, proof)
		}
		proofs = sb.String()
	}

	return &discordgo.MessageEmbed{
		Title: "📋 SCAMMER PROFILE",
		Color: 0xff0000,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 Username", Value: displayHandle(record.Username), Inline: true},
			{Name: "🆔 ID", Value: fmt.Sprintf("`%s`", record.UserID), Inline: true},
			{Name: "📊 Reports", Value: fmt.Sprintf("%d", record.Reports), Inline: true},
			{Name: "🌍 Country", Value: country, Inline: true},
			{Name: "📅 Added", Value: record.AddedDate, Inline: true},
			{Name: "📝 Reasons", Value: reasons.String()},
			{Name: "🔗 Proofs", Value: proofs},
		},
	}
}

// checkButtons builds the button rows under a check result. The remove row
// is only attached for special admins and the owner.
func checkButtons(record *model.ScammerRecord, canRemove bool) []discordgo.MessageComponent {
	profileID := "none"
	countryID := "none"
	if record != nil {
		profileID = record.UserID
		countryID = record.UserID
	}

	rows := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "📋 Profile",
					Style:    discordgo.SecondaryButton,
					CustomID: "profile_" + profileID,
				},
				discordgo.Button{
					Label:    "⚠️ How to report",
					Style:    discordgo.SecondaryButton,
					CustomID: "how_to_report",
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "🌍 Set country",
					Style:    discordgo.SecondaryButton,
					CustomID: "set_country_" + countryID,
				},
				discordgo.Button{
					Label:    "🛡️ What is a guarantor",
					Style:    discordgo.SecondaryButton,
					CustomID: "what_is_guarantor",
				},
			},
		},
	}

	if record != nil && canRemove {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "🗑️ Remove from database",
					Style:    discordgo.DangerButton,
					CustomID: "remove_" + record.UserID,
				},
			},
		})
	}
	return rows
}

// countryButtons builds the country selection rows for a record.
func countryButtons(scammerID string) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent
	for _, c := range countryChoices {
		row = append(row, discordgo.Button{
			Label:    c.Name,
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("country_%s_%s", scammerID, c.Code),
		})
		if len(row) == 4 {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}
	rows = append(rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "❌ Cancel",
				Style:    discordgo.SecondaryButton,
				CustomID: "cancel_country",
			},
		},
	})
	return rows
}

// removeConfirmButtons builds the confirm/cancel row for a soft delete.
func removeConfirmButtons(scammerID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "✅ Yes, remove",
					Style:    discordgo.DangerButton,
					CustomID: "confirm_remove_" + scammerID,
				},
				discordgo.Button{
					Label:    "❌ Cancel",
					Style:    discordgo.SecondaryButton,
					CustomID: "cancel_remove",
				},
			},
		},
	}
}
