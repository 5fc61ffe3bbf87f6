package command

import (
	"regexp"
	"strings"
)

var (
	// namePattern matches valid command names: 1-32 letters, digits, hyphens
	// or underscores, including Devanagari and Thai script runs.
	namePattern = regexp.MustCompile(`^[-_\p{L}\p{N}\p{Devanagari}\p{Thai}]{1,32}$`)

	// optionPattern extracts {name:description} groups from the syntax line.
	optionPattern = regexp.MustCompile(`\{([-_\p{L}\p{N}]{1,32}):([^}]+)\}`)
)

// ValidName reports whether name can be used as a command name. Beyond the
// character-class rule, names containing the key delimiter are rejected
// because the composite store key cannot represent them.
func ValidName(name string) bool {
	return namePattern.MatchString(name) && !strings.Contains(name, KeyDelimiter)
}

// ParseSyntax builds a Definition from the pre-sanitized command name and
// description plus the remainder of the syntax line. Every
// {name:description} group becomes a required text option, in source order.
// Text outside the groups is ignored; this is deliberately permissive.
func ParseSyntax(name, description, optionsText string) (Definition, error) {
	matches := optionPattern.FindAllStringSubmatch(optionsText, -1)

	options := make([]Option, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			return Definition{}, ErrDuplicateOptionName
		}
		seen[m[1]] = true
		options = append(options, Option{Name: m[1], Description: m[2]})
	}

	return Definition{Name: name, Description: description, Options: options}, nil
}

// Syntax renders the single-line syntax form of a command,
// "/name {opt:desc} ...", used to pre-fill the edit modal.
func Syntax(name string, options []Option) string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(name)
	for _, opt := range options {
		b.WriteString(" {")
		b.WriteString(opt.Name)
		b.WriteString(":")
		b.WriteString(opt.Description)
		b.WriteString("}")
	}
	return b.String()
}
