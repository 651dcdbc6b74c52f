package handlers

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"scambase-bot/bot"
	"scambase-bot/utils"
	"scambase-bot/utils/database"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemInfoHandler reports host and database health. Owner only.
func SystemInfoHandler(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	var actorID string
	if i.Member != nil {
		actorID = i.Member.User.ID
	} else if i.User != nil {
		actorID = i.User.ID
	}
	if !utils.HasPermission(b.GetRoles(), actorID, utils.RoleOwner) {
		utils.SendErrorResponse(s, i, "Only the owner can view bot status.")
		return
	}

	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	cfg := b.GetConfig()
	dbSize := fileSizeKB(cfg.DatabasePath) + fileSizeKB(cfg.AuditDBPath)
	stats := b.Registry.Stats()

	lastAudit := "none"
	if b.AuditDB != nil {
		if records, err := database.GetRecentAuditRecords(b.AuditDB, 1); err == nil && len(records) > 0 {
			lastAudit = fmt.Sprintf("%s at %s", records[0].Action,
				time.Unix(records[0].Timestamp, 0).UTC().Format("2006-01-02 15:04"))
		}
	}

	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}
	platform, kernel := "unknown", "unknown"
	if hostInfo != nil {
		platform = fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion)
		kernel = hostInfo.KernelVersion
	}
	memUsage := "unknown"
	if vm != nil {
		memUsage = fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024)
	}

	embed := &discordgo.MessageEmbed{
		Title: "🤖 Bot status",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💻 OS", Value: platform, Inline: true},
			{Name: "🔧 Kernel", Value: kernel, Inline: true},
			{Name: "🐹 Go version", Value: runtime.Version(), Inline: true},
			{Name: "🔼 CPU cores", Value: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Name: "🔥 CPU usage", Value: fmt.Sprintf("%.1f%%", cpuUsage), Inline: true},
			{Name: "🧠 Memory", Value: memUsage, Inline: true},
			{Name: "🗃️ Database size", Value: fmt.Sprintf("%d KB", dbSize), Inline: true},
			{Name: "⏱️ WebSocket latency", Value: s.HeartbeatLatency().String(), Inline: true},
			{Name: "🚀 Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "🔴 Active scammers", Value: fmt.Sprintf("%d", stats.ActiveScammers), Inline: true},
			{Name: "📊 Total reports", Value: fmt.Sprintf("%d", stats.TotalReports), Inline: true},
			{Name: "💾 Records on file", Value: fmt.Sprintf("%d", stats.TotalInDB), Inline: true},
			{Name: "🧾 Last audit entry", Value: lastAudit, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Status at %s", time.Now().Format("15:04")),
		},
	}
	utils.SendEmbedResponse(s, i, embed, nil, true)
}

func fileSizeKB(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size() / 1024
}
