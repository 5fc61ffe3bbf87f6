package manager

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"commandeer/internal/command"
)

// HandleComponent answers button presses. The only button in the system is
// the "Edit that one" collision-recovery affordance, which re-opens the edit
// modal for the colliding command.
func (m *Manager) HandleComponent(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	if i.GuildID == "" {
		return message("🛑 Only usable in guilds")
	}

	action, commandID := parseCustomID(i.MessageComponentData().CustomID)
	if action != "edit" {
		return message("🛑 Unknown button")
	}

	resp, err := m.reopenEdit(ctx, i.GuildID, commandID)
	return m.orFail(resp, err)
}

// reopenEdit recovers the full key for a command id via the store listing,
// since the button custom id only carries the id.
func (m *Manager) reopenEdit(ctx context.Context, guildID, commandID string) (*discordgo.InteractionResponse, error) {
	entries, err := m.store.List(ctx, guildID)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.CommandID != commandID {
			continue
		}
		key, err := command.NewKey(guildID, entry.CommandID, entry.CommandName)
		if err != nil {
			return nil, err
		}
		full, err := m.fullCommand(ctx, key)
		if err != nil {
			return nil, err
		}
		return commandModal(modalEditPrefix+commandID, full), nil
	}
	return nil, command.Flowf(command.KindNotFound, "Command not found in DB")
}
