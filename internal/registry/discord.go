package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"commandeer/internal/command"
)

// Discord implements Registry over the Discord REST API. The session is
// used purely as an HTTP client; no gateway connection is opened.
type Discord struct {
	session *discordgo.Session
	appID   string
}

var _ Registry = (*Discord)(nil)

// NewDiscord wraps a session and application id.
func NewDiscord(session *discordgo.Session, appID string) *Discord {
	return &Discord{session: session, appID: appID}
}

func (d *Discord) Create(ctx context.Context, guildID string, def command.Definition) (*Record, error) {
	created, err := d.session.ApplicationCommandCreate(d.appID, guildID, toApplicationCommand(def), discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("registry create: %w", err)
	}
	return fromApplicationCommand(created), nil
}

func (d *Discord) Fetch(ctx context.Context, guildID, commandID string) (*Record, error) {
	fetched, err := d.session.ApplicationCommand(d.appID, guildID, commandID, discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("registry fetch: %w", err)
	}
	return fromApplicationCommand(fetched), nil
}

func (d *Discord) Update(ctx context.Context, guildID, commandID string, def command.Definition) (*Record, error) {
	updated, err := d.session.ApplicationCommandEdit(d.appID, guildID, commandID, toApplicationCommand(def), discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("registry update: %w", err)
	}
	return fromApplicationCommand(updated), nil
}

func (d *Discord) Delete(ctx context.Context, guildID, commandID string) error {
	err := d.session.ApplicationCommandDelete(d.appID, guildID, commandID, discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("registry delete: %w", err)
	}
	return nil
}

// isNotFound reports whether err is a REST 404.
func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}

func toApplicationCommand(def command.Definition) *discordgo.ApplicationCommand {
	options := make([]*discordgo.ApplicationCommandOption, 0, len(def.Options))
	for _, opt := range def.Options {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        opt.Name,
			Description: opt.Description,
			Required:    true,
		})
	}
	return &discordgo.ApplicationCommand{
		Name:        def.Name,
		Description: def.Description,
		Options:     options,
	}
}

func fromApplicationCommand(cmd *discordgo.ApplicationCommand) *Record {
	options := make([]command.Option, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		options = append(options, command.Option{Name: opt.Name, Description: opt.Description})
	}
	return &Record{
		ID:          cmd.ID,
		Name:        cmd.Name,
		Description: cmd.Description,
		Options:     options,
	}
}
