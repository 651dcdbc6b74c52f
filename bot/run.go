package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"scambase-bot/commands"
	"scambase-bot/utils"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	b.RegisterCommands()

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	utils.LogInfo(b.Session, b.GetConfig().LogChannelID, "System", "Startup", "Bot has started successfully.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

// RegisterCommands overwrites the application commands. With a configured
// guild the commands are registered there (instant propagation); otherwise
// they are registered globally.
func (b *Bot) RegisterCommands() {
	cfg := b.GetConfig()
	cmds := commands.Definitions()

	log.Printf("Registering %d commands...", len(cmds))
	registered, err := b.Session.ApplicationCommandBulkOverwrite(cfg.AppID, cfg.GuildID, cmds)
	if err != nil {
		log.Printf("Cannot register commands: %v", err)
		return
	}
	b.RegisteredCommands = append(b.RegisteredCommands, registered...)
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	if b.AuditDB != nil {
		if err := b.AuditDB.Close(); err != nil {
			log.Printf("Error closing audit database: %v", err)
		}
	}
	b.Session.Close()
}
