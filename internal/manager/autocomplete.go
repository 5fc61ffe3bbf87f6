package manager

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"commandeer/internal/command"
)

// HandleAutocomplete suggests stored command names for the edit/delete
// command_name option. Matching is a case-insensitive prefix filter over the
// store enumeration order; no registry calls are made.
func (m *Manager) HandleAutocomplete(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	if i.GuildID == "" {
		return autocompleteResult(nil)
	}

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return autocompleteResult(nil)
	}
	sub := data.Options[0]
	if sub.Type != discordgo.ApplicationCommandOptionSubCommand ||
		(sub.Name != "edit" && sub.Name != "delete") || len(sub.Options) == 0 {
		return autocompleteResult(nil)
	}

	query := stringOption(sub.Options, "command_name")
	query = strings.TrimLeft(strings.ToLower(query), "/")

	entries, err := m.store.List(ctx, i.GuildID)
	if err != nil {
		m.log.Warn().Str("guild", i.GuildID).Err(err).Msg("autocomplete list failed")
		return autocompleteResult(nil)
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, entry := range entries {
		if !strings.HasPrefix(entry.CommandName, query) {
			continue
		}
		key, err := command.NewKey(i.GuildID, entry.CommandID, entry.CommandName)
		if err != nil {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  entry.CommandName,
			Value: key.String(),
		})
		if len(choices) == maxAutocompleteChoices {
			break
		}
	}
	return autocompleteResult(choices)
}
