package command

import (
	"regexp"
	"strings"
)

// senderPlaceholder is substituted with the invoking member's display name.
const senderPlaceholder = "{sender.name}"

// placeholderPattern matches {options.<name>} tokens in a response template.
var placeholderPattern = regexp.MustCompile(`\{options\.([-_\p{L}\p{N}]{1,32})\}`)

// RenderContext carries the interaction data a template can reference.
type RenderContext struct {
	SenderDisplayName string
	Options           map[string]string
}

// Render resolves a response template against ctx. The sender placeholder is
// substituted first, then each {options.<name>} token whose name has a
// binding; tokens without a binding stay literal. Render never fails and is
// a no-op on templates without placeholders.
func Render(template string, ctx RenderContext) string {
	out := strings.ReplaceAll(template, senderPlaceholder, ctx.SenderDisplayName)

	for _, match := range placeholderPattern.FindAllStringSubmatch(out, -1) {
		value, ok := ctx.Options[match[1]]
		if !ok {
			continue
		}
		out = strings.ReplaceAll(out, match[0], value)
	}

	return out
}
