// Package registry wraps the remote command registry: the guild-scoped
// application-command resource that is the source of truth for a command's
// name, description and options.
package registry

import (
	"context"
	"errors"

	"commandeer/internal/command"
)

// ErrNotFound reports that the registry has no record for the requested
// command id. A 404 on delete is this error, not a transport failure.
var ErrNotFound = errors.New("command not found in registry")

// Record is the registry's view of a command.
type Record struct {
	ID          string
	Name        string
	Description string
	Options     []command.Option
}

// Registry is the remote CRUD surface the lifecycle manager calls. Create
// assigns the command id.
type Registry interface {
	Create(ctx context.Context, guildID string, def command.Definition) (*Record, error)
	Fetch(ctx context.Context, guildID, commandID string) (*Record, error)
	Update(ctx context.Context, guildID, commandID string, def command.Definition) (*Record, error)
	Delete(ctx context.Context, guildID, commandID string) error
}
