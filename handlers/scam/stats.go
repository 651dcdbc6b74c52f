package scam

import (
	"fmt"
	"strings"
	"time"

	"scambase-bot/bot"
	"scambase-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const defaultRecentLimit = 10

// HandleStatsCommand processes /scam-stats: registry totals.
func HandleStatsCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireGate(s, i, b) {
		return
	}
	stats := b.Registry.Stats()

	embed := &discordgo.MessageEmbed{
		Title: "📊 SCAM DATABASE STATISTICS",
		Color: 0x3498db,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🔴 Active scammers", Value: fmt.Sprintf("%d", stats.ActiveScammers), Inline: true},
			{Name: "📊 Total reports", Value: fmt.Sprintf("%d", stats.TotalReports), Inline: true},
			{Name: "🗑️ Removed", Value: fmt.Sprintf("%d", stats.RemovedScammers), Inline: true},
			{Name: "💾 Records on file", Value: fmt.Sprintf("%d", stats.TotalInDB), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Always use a guarantor for safe deals!",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	utils.SendEmbedResponse(s, i, embed, nil, false)
}

// HandleRecentCommand processes /scam-recent: latest additions.
func HandleRecentCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireGate(s, i, b) {
		return
	}

	limit := defaultRecentLimit
	if opt, ok := optionMap(i)["limit"]; ok {
		if v := int(opt.IntValue()); v > 0 {
			limit = v
		}
	}
	if limit > 25 {
		limit = 25
	}

	records := b.Registry.RecentActive(limit)
	if len(records) == 0 {
		utils.SendSimpleResponse(s, i, "🟢 The database is empty.")
		return
	}

	var sb strings.Builder
	for n, record := range records {
		fmt.Fprintf(&sb, "%d. %s [`%s`] - %d report(s), %s\n",
			n+1, displayHandle(record.Username), record.UserID, record.Reports, record.AddedDate)
	}
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🕒 LAST %d SCAMMERS ADDED", len(records)),
		Color:       0xe67e22,
		Description: sb.String(),
	}
	utils.SendEmbedResponse(s, i, embed, nil, false)
}

// HandleCountryCommand processes /scam-country: list by country.
func HandleCountryCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireGate(s, i, b) {
		return
	}

	country := optionMap(i)["country"].StringValue()
	records := b.Registry.SearchByCountry(country)
	if len(records) == 0 {
		utils.SendSimpleResponse(s, i, fmt.Sprintf("🟢 No scammers recorded for %s.", country))
		return
	}

	var sb strings.Builder
	for n, record := range records {
		fmt.Fprintf(&sb, "%d. %s [`%s`] - %d report(s)\n",
			n+1, displayHandle(record.Username), record.UserID, record.Reports)
	}
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🌍 SCAMMERS FROM %s", strings.ToUpper(country)),
		Color:       0xe74c3c,
		Description: sb.String(),
	}
	utils.SendEmbedResponse(s, i, embed, nil, false)
}
