package manager

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"commandeer/internal/command"
)

// resolveCustom answers a guild chat-input interaction whose (guild, id,
// name) triple matches a stored custom command, and returns nil otherwise.
// A stored command takes precedence over any static command with the same
// id.
func (m *Manager) resolveCustom(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return nil
	}
	if data.CommandType != 0 && data.CommandType != discordgo.ChatApplicationCommand {
		return nil
	}

	key, err := command.NewKey(i.GuildID, data.ID, data.Name)
	if err != nil {
		return nil
	}
	template, ok, err := m.store.Get(ctx, key)
	if err != nil {
		m.log.Warn().Str("key", key.String()).Err(err).Msg("store lookup failed during invocation")
		return nil
	}
	if !ok {
		return nil
	}

	options := make(map[string]string, len(data.Options))
	for _, opt := range data.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand, discordgo.ApplicationCommandOptionSubCommandGroup:
			// Custom commands only carry basic scalar options.
		default:
			options[opt.Name] = optionString(opt)
		}
	}

	content := command.Render(template, command.RenderContext{
		SenderDisplayName: displayName(i.Member),
		Options:           options,
	})
	return message(content)
}

// displayName picks the invoking member's name: nickname, else global
// display name, else username.
func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

// optionString stringifies a basic scalar option value.
func optionString(opt *discordgo.ApplicationCommandInteractionDataOption) string {
	switch v := opt.Value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
