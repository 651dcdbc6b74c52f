package bot

import (
	"scambase-bot/config"
	"scambase-bot/model"
	"scambase-bot/registry"
	"scambase-bot/resolver"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	Store              *config.Store
	Registry           *registry.Registry
	Resolver           resolver.Resolver
	AuditDB            *sqlx.DB
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
}

func New(store *config.Store, reg *registry.Registry, auditDB *sqlx.DB) (*Bot, error) {
	cfg := store.Config()
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
	dg.StateEnabled = false

	b := &Bot{
		Session:  dg,
		Store:    store,
		Registry: reg,
		AuditDB:  auditDB,
		Resolver: resolver.New(dg, cfg.GuildID),
	}
	return b, nil
}

func (b *Bot) GetConfig() *model.Config {
	return b.Store.Config()
}

// GetRoles returns a snapshot of the current role assignment.
func (b *Bot) GetRoles() model.RoleConfig {
	return b.Store.Roles()
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func (b *Bot) GetAuditDB() *sqlx.DB {
	return b.AuditDB
}
