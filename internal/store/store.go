// Package store persists response templates keyed by composite command key.
// The store holds only the template text; name, description and options live
// in the remote command registry.
package store

import (
	"context"

	"commandeer/internal/command"
)

// paginationSoftLimit mirrors the backing KV's list page size; crossing it
// is a warning, not an error.
const paginationSoftLimit = 900

// Entry identifies a stored custom command within a guild, derived from the
// serialized key.
type Entry struct {
	CommandID   string
	CommandName string
}

// Store is the key-value backend the lifecycle manager sequences calls
// against. There is no batch operation; callers order Put/Delete themselves.
type Store interface {
	// List enumerates the commands of a guild in stable (lexicographic key)
	// order.
	List(ctx context.Context, guildID string) ([]Entry, error)
	// Get returns the stored response template, reporting absence via ok.
	Get(ctx context.Context, key command.Key) (template string, ok bool, err error)
	Put(ctx context.Context, key command.Key, template string) error
	Delete(ctx context.Context, key command.Key) error
	Close() error
}

// guildPrefix is the key-scan prefix covering one guild.
func guildPrefix(guildID string) string {
	return guildID + command.KeyDelimiter
}
