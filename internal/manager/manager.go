// Package manager orchestrates the custom-command lifecycle: the management
// slash command (create/edit/delete), its modal submissions, autocomplete,
// the collision-recovery button, and invocation-time template resolution.
//
// Consistency between the remote registry and the local store is two-step
// and best-effort: registry first, store second. A failed store write after
// a successful registry call leaves the two out of sync until the admin
// retries; this window is accepted, not rolled back. Rename migrations write
// the new store key before deleting the old one.
package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"commandeer/internal/command"
	"commandeer/internal/registry"
	"commandeer/internal/store"
)

const (
	// staticCommandName is the management command, the only statically
	// registered command in the system.
	staticCommandName = "command"

	// maxGuildCommands is the per-guild command quota.
	maxGuildCommands = 100

	// maxAutocompleteChoices is the platform's choice-list limit.
	maxAutocompleteChoices = 25
)

// Manager combines the syntax parser, the template engine, the store and the
// registry client into the request handlers the webhook server dispatches to.
type Manager struct {
	store store.Store
	reg   registry.Registry
	log   zerolog.Logger
}

// New builds a Manager.
func New(st store.Store, reg registry.Registry, log zerolog.Logger) *Manager {
	return &Manager{store: st, reg: reg, log: log}
}

// HandleApplicationCommand answers a chat-command interaction. Stored custom
// commands take precedence over the static management command; anything else
// gets a neutral acknowledgment.
func (m *Manager) HandleApplicationCommand(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	data := i.ApplicationCommandData()

	if resp := m.resolveCustom(ctx, i, data); resp != nil {
		return resp
	}
	if data.Name == staticCommandName {
		return m.handleManage(ctx, i, data)
	}
	return pong()
}

// handleManage routes the create/edit/delete subcommands of the management
// command.
func (m *Manager) handleManage(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	if i.GuildID == "" {
		return message("🛑 Only usable in guilds")
	}
	if data.CommandType != 0 && data.CommandType != discordgo.ChatApplicationCommand {
		return message("🛑 Invalid interaction type")
	}
	if len(data.Options) == 0 {
		return message("🛑 Malformed interaction")
	}
	sub := data.Options[0]
	if sub.Type != discordgo.ApplicationCommandOptionSubCommand {
		return message("🛑 Malformed subcommand")
	}

	switch sub.Name {
	case "create":
		resp, err := m.startCreate(ctx, i.GuildID)
		return m.orFail(resp, err)
	case "edit":
		resp, err := m.startEdit(ctx, i.GuildID, sub)
		return m.orFail(resp, err)
	case "delete":
		resp, err := m.startDelete(ctx, i.GuildID, sub)
		return m.orFail(resp, err)
	default:
		return message(fmt.Sprintf("🛑 Unknown subcommand %q", sub.Name))
	}
}

// startCreate guards the quota and opens an empty creation modal.
func (m *Manager) startCreate(ctx context.Context, guildID string) (*discordgo.InteractionResponse, error) {
	entries, err := m.store.List(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if len(entries) >= maxGuildCommands {
		return nil, quotaError()
	}
	return commandModal(modalCreateID, nil), nil
}

// startEdit resolves the target from its key token and opens a pre-filled
// edit modal.
func (m *Manager) startEdit(ctx context.Context, guildID string, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	key, err := m.keyFromToken(guildID, sub)
	if err != nil {
		return nil, err
	}
	full, err := m.fullCommand(ctx, key)
	if err != nil {
		return nil, err
	}
	return commandModal(modalEditPrefix+key.CommandID, full), nil
}

// startDelete removes the command from the registry first; the store key is
// only deleted once the registry acknowledged the removal.
func (m *Manager) startDelete(ctx context.Context, guildID string, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	key, err := m.keyFromToken(guildID, sub)
	if err != nil {
		return nil, err
	}

	if err := m.reg.Delete(ctx, guildID, key.CommandID); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, command.Flowf(command.KindNotFound,
				"The command %s doesn't exist.", mention(key.CommandName, key.CommandID))
		}
		return nil, err
	}
	if err := m.store.Delete(ctx, key); err != nil {
		return nil, err
	}
	return message(fmt.Sprintf("✅ The command %s has been deleted.", mention(key.CommandName, key.CommandID))), nil
}

// keyFromToken decodes the command_name option of an edit/delete subcommand.
// Tokens are guild-scoped; a key from another guild is treated as malformed.
func (m *Manager) keyFromToken(guildID string, sub *discordgo.ApplicationCommandInteractionDataOption) (command.Key, error) {
	token := stringOption(sub.Options, "command_name")
	if token == "" {
		return command.Key{}, command.Flowf(command.KindValidation, "Missing command")
	}
	key, err := command.ParseKey(token)
	if err != nil {
		return command.Key{}, err
	}
	if key.GuildID != guildID {
		return command.Key{}, command.ErrMalformedKey
	}
	return key, nil
}

// fullCommand recombines the registry record with the stored template to
// rebuild the editable syntax/description/response triple.
type fullCommand struct {
	syntax      string
	description string
	response    string
}

func (m *Manager) fullCommand(ctx context.Context, key command.Key) (*fullCommand, error) {
	template, ok, err := m.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, command.Flowf(command.KindNotFound, "Command not found in DB")
	}

	rec, err := m.reg.Fetch(ctx, key.GuildID, key.CommandID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, command.Flowf(command.KindNotFound, "Command not found in the registry")
		}
		return nil, err
	}

	return &fullCommand{
		syntax:      command.Syntax(key.CommandName, rec.Options),
		description: rec.Description,
		response:    template,
	}, nil
}

// orFail renders a flow error as its user-facing message; anything else is a
// remote-call failure rendered generically.
func (m *Manager) orFail(resp *discordgo.InteractionResponse, err error) *discordgo.InteractionResponse {
	if err == nil {
		return resp
	}
	var flowErr *command.FlowError
	if !errors.As(err, &flowErr) {
		m.log.Error().Err(err).Msg("command flow failed")
	}
	return message("🛑 " + err.Error())
}

func quotaError() *command.FlowError {
	return command.Flowf(command.KindQuotaExceeded,
		"This server is at the limit of %d commands. Please delete one before creating another one.", maxGuildCommands)
}

// mention renders a clickable </name:id> command mention.
func mention(name, id string) string {
	return fmt.Sprintf("</%s:%s>", name, id)
}

// stringOption returns the value of the named string option, or "".
func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// parseCustomID splits a "command-<action>-<id>" custom id.
func parseCustomID(customID string) (action, id string) {
	parts := strings.SplitN(customID, "-", 3)
	if len(parts) != 3 || parts[0] != "command" {
		return "", ""
	}
	return parts[1], parts[2]
}
