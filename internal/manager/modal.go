package manager

import "github.com/bwmarrin/discordgo"

const (
	modalCreateID   = "command-create-new"
	modalEditPrefix = "command-edit-"

	fieldSyntax      = "command-syntax"
	fieldDescription = "command-description"
	fieldResponse    = "command-response"
)

// commandModal builds the three-field command modal. prefill is nil for
// creation and the current command for edits.
func commandModal(customID string, prefill *fullCommand) *discordgo.InteractionResponse {
	var syntax, description, response string
	if prefill != nil {
		syntax = prefill.syntax
		description = prefill.description
		response = prefill.response
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customID,
			Title:    "Create New Command",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    fieldSyntax,
						Label:       "Command",
						Style:       discordgo.TextInputParagraph,
						Placeholder: "/compliment {target:Target of the compliment} {compliment:Something nice to say about them}",
						Value:       syntax,
						Required:    true,
						MinLength:   1,
						MaxLength:   250,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    fieldDescription,
						Label:       "Description",
						Style:       discordgo.TextInputShort,
						Placeholder: "Compliment something about someone else",
						Value:       description,
						Required:    true,
						MinLength:   1,
						MaxLength:   100,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    fieldResponse,
						Label:       "Response",
						Style:       discordgo.TextInputParagraph,
						Placeholder: "{sender.name} has complimented {options.target}:\n\"{options.compliment}\"",
						Value:       response,
						Required:    true,
						MinLength:   1,
						MaxLength:   2000,
					},
				}},
			},
		},
	}
}

// modalValues extracts the three text fields from a submitted modal.
func modalValues(data discordgo.ModalSubmitInteractionData) (syntax, description, response string) {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			input, ok := comp.(*discordgo.TextInput)
			if !ok {
				continue
			}
			switch input.CustomID {
			case fieldSyntax:
				syntax = input.Value
			case fieldDescription:
				description = input.Value
			case fieldResponse:
				response = input.Value
			}
		}
	}
	return syntax, description, response
}
