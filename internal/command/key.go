package command

import "strings"

// KeyDelimiter joins the key fields in the serialized form. None of the
// fields may contain it; command names that would need it are rejected at
// validation time.
const KeyDelimiter = "-"

// Key identifies a stored custom command. Inside the domain it is always
// this struct; the delimited string form exists only at the store / UI-token
// boundary (store keys, autocomplete values, button custom ids).
type Key struct {
	GuildID     string
	CommandID   string
	CommandName string
}

// NewKey builds a Key, rejecting fields that are empty or contain the
// delimiter. Guild and command ids are snowflakes and can never trip this;
// the command name can.
func NewKey(guildID, commandID, commandName string) (Key, error) {
	for _, field := range []string{guildID, commandID, commandName} {
		if field == "" || strings.Contains(field, KeyDelimiter) {
			return Key{}, ErrMalformedKey
		}
	}
	return Key{GuildID: guildID, CommandID: commandID, CommandName: commandName}, nil
}

// String serializes the key as guildID-commandID-commandName.
func (k Key) String() string {
	return k.GuildID + KeyDelimiter + k.CommandID + KeyDelimiter + k.CommandName
}

// ParseKey decodes a serialized key token. The token must contain exactly
// two delimiters separating three non-empty fields.
func ParseKey(token string) (Key, error) {
	parts := strings.Split(token, KeyDelimiter)
	if len(parts) != 3 {
		return Key{}, ErrMalformedKey
	}
	return NewKey(parts[0], parts[1], parts[2])
}
