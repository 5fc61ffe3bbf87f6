package manager

import "github.com/bwmarrin/discordgo"

// GlobalCommands returns the static application-command set the registrar
// installs. It is a fresh value on every call; nothing mutates a shared
// definition at runtime.
func GlobalCommands() []*discordgo.ApplicationCommand {
	manageGuild := int64(discordgo.PermissionManageServer)
	dmPermission := false

	return []*discordgo.ApplicationCommand{
		{
			Name:                     staticCommandName,
			Description:              "Manage custom commands",
			DefaultMemberPermissions: &manageGuild,
			DMPermission:             &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new command",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Edit an existing command",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "command_name",
							Description:  "Name of the command to edit",
							Required:     true,
							Autocomplete: true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete a command",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "command_name",
							Description:  "Name of the command to delete",
							Required:     true,
							Autocomplete: true,
						},
					},
				},
			},
		},
	}
}
