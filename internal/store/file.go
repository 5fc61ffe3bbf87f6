package store

import (
	"context"

	"github.com/rs/zerolog"

	"commandeer/datastore"
	"commandeer/internal/command"
)

// FileStore keeps templates in the file-backed datastore.
type FileStore struct {
	ds  *datastore.DataStore
	log zerolog.Logger
}

var _ Store = (*FileStore)(nil)

// OpenFile opens (or creates) the datastore file at path.
func OpenFile(path string, log zerolog.Logger) (*FileStore, error) {
	cfg := datastore.DefaultConfig(path)
	cfg.Logger = log
	ds, err := datastore.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &FileStore{ds: ds, log: log}, nil
}

func (s *FileStore) List(_ context.Context, guildID string) ([]Entry, error) {
	keys := s.ds.Keys(guildPrefix(guildID))
	if len(keys) > paginationSoftLimit {
		s.log.Warn().Str("guild", guildID).Int("count", len(keys)).Msg("approaching pagination limit")
	}

	entries := make([]Entry, 0, len(keys))
	for _, raw := range keys {
		key, err := command.ParseKey(raw)
		if err != nil {
			s.log.Warn().Str("key", raw).Msg("skipping malformed store key")
			continue
		}
		entries = append(entries, Entry{CommandID: key.CommandID, CommandName: key.CommandName})
	}
	return entries, nil
}

func (s *FileStore) Get(_ context.Context, key command.Key) (string, bool, error) {
	template, ok := s.ds.Get(key.String())
	return template, ok, nil
}

func (s *FileStore) Put(_ context.Context, key command.Key, template string) error {
	s.ds.Set(key.String(), template)
	return nil
}

func (s *FileStore) Delete(_ context.Context, key command.Key) error {
	s.ds.Delete(key.String())
	return nil
}

func (s *FileStore) Close() error {
	return s.ds.Close()
}
