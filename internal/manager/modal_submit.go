package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"commandeer/internal/command"
	"commandeer/internal/store"
)

// HandleModalSubmit finishes a create or edit flow from the submitted modal
// fields.
func (m *Manager) HandleModalSubmit(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	if i.GuildID == "" {
		return message("🛑 Only usable in guilds")
	}
	resp, err := m.submitModal(ctx, i.GuildID, i.ModalSubmitData())
	return m.orFail(resp, err)
}

func (m *Manager) submitModal(ctx context.Context, guildID string, data discordgo.ModalSubmitInteractionData) (*discordgo.InteractionResponse, error) {
	entries, err := m.store.List(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if len(entries) >= maxGuildCommands {
		return nil, quotaError()
	}

	syntax, description, response := modalValues(data)
	if syntax == "" || description == "" || response == "" {
		return nil, command.Flowf(command.KindValidation, "Command name, description, and response are required")
	}

	name, optionsText, _ := strings.Cut(strings.TrimPrefix(syntax, "/"), " ")
	name = strings.ToLower(name)
	if !command.ValidName(name) {
		return nil, command.Flowf(command.KindValidation, "The command name `%s` is invalid.", name)
	}

	action, commandID := parseCustomID(data.CustomID)
	switch action {
	case "create":
		return m.finishCreate(ctx, guildID, entries, name, description, optionsText, response)
	case "edit":
		return m.finishEdit(ctx, guildID, entries, commandID, name, description, optionsText, response)
	}
	return nil, command.Flowf(command.KindValidation, "Unknown modal")
}

// finishCreate registers the parsed command and stores its template,
// registry first. A store failure after registry success leaves the two
// inconsistent until retried.
func (m *Manager) finishCreate(ctx context.Context, guildID string, entries []store.Entry, name, description, optionsText, response string) (*discordgo.InteractionResponse, error) {
	for _, entry := range entries {
		if entry.CommandName == name {
			return collisionResponse(entry), nil
		}
	}

	def, err := command.ParseSyntax(name, description, optionsText)
	if err != nil {
		return nil, err
	}

	rec, err := m.reg.Create(ctx, guildID, def)
	if err != nil {
		return nil, err
	}
	key, err := command.NewKey(guildID, rec.ID, rec.Name)
	if err != nil {
		return nil, err
	}
	if err := m.store.Put(ctx, key, response); err != nil {
		m.log.Warn().Str("key", key.String()).Err(err).
			Msg("registry has the command but the store write failed")
		return nil, err
	}

	return message(fmt.Sprintf("✅ The command %s has been created.", mention(rec.Name, rec.ID))), nil
}

// finishEdit updates the registry record and migrates the store key on
// rename. The new key is written before the old one is deleted so a reader
// never sees zero keys for the command mid-migration.
func (m *Manager) finishEdit(ctx context.Context, guildID string, entries []store.Entry, commandID, name, description, optionsText, response string) (*discordgo.InteractionResponse, error) {
	var existing *store.Entry
	for idx := range entries {
		if entries[idx].CommandID == commandID {
			existing = &entries[idx]
			break
		}
	}
	if existing == nil {
		return nil, command.Flowf(command.KindNotFound, "Can't find command to edit.")
	}

	// Colliding with itself is not an error.
	for _, entry := range entries {
		if entry.CommandName == name && entry.CommandID != commandID {
			return collisionResponse(entry), nil
		}
	}

	def, err := command.ParseSyntax(name, description, optionsText)
	if err != nil {
		return nil, err
	}

	rec, err := m.reg.Update(ctx, guildID, commandID, def)
	if err != nil {
		return nil, err
	}

	oldKey, err := command.NewKey(guildID, commandID, existing.CommandName)
	if err != nil {
		return nil, err
	}
	newKey, err := command.NewKey(guildID, commandID, rec.Name)
	if err != nil {
		return nil, err
	}

	if err := m.store.Put(ctx, newKey, response); err != nil {
		return nil, err
	}
	if oldKey != newKey {
		if err := m.store.Delete(ctx, oldKey); err != nil {
			return nil, err
		}
	}

	return message(fmt.Sprintf("✅ The command %s has been edited.", mention(rec.Name, rec.ID))), nil
}

// collisionResponse reports a name collision and offers editing the existing
// command as the recovery action.
func collisionResponse(entry store.Entry) *discordgo.InteractionResponse {
	return messageWithButtons(
		fmt.Sprintf("🛑 A command with the same name already exists: %s", mention(entry.CommandName, entry.CommandID)),
		discordgo.Button{
			CustomID: modalEditPrefix + entry.CommandID,
			Style:    discordgo.PrimaryButton,
			Label:    "Edit that one",
		},
	)
}
