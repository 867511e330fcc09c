package offchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Store composes the remote and local backends. Remote may be nil when
// the deployment has no remote store configured; local is mandatory.
//
// Writes go to local first and always count as successful once local
// has the value; a remote failure is logged and swallowed because
// off-chain metadata is non-authoritative and reconstructible. Reads
// prefer remote and refresh local with its value, falling back to
// local when remote is unconfigured, unreachable, or empty.
type Store struct {
	remote Backend
	local  Backend
	log    *slog.Logger
}

// New creates a Store. Pass a nil remote for a local-only deployment.
func New(remote, local Backend, log *slog.Logger) *Store {
	return &Store{remote: remote, local: local, log: log}
}

// RemoteConfigured reports whether a remote backend is wired in.
func (s *Store) RemoteConfigured() bool { return s.remote != nil }

// Put stores a document under the normalized key.
func (s *Store) Put(ctx context.Context, collection, key string, value []byte) error {
	key = NormalizeKey(key)

	if err := s.local.Put(ctx, collection, key, value); err != nil {
		return fmt.Errorf("local off-chain write failed: %w", err)
	}

	if s.remote != nil {
		if err := s.remote.Put(ctx, collection, key, value); err != nil {
			s.log.Warn("remote off-chain write failed, local copy kept",
				"collection", collection, "key", key, "error", err)
		}
	}

	return nil
}

// Get retrieves a document. The remote value wins whenever remote is
// reachable and holds one; otherwise the local value is served. A miss
// on both sides yields ErrNotFound.
func (s *Store) Get(ctx context.Context, collection, key string) ([]byte, error) {
	key = NormalizeKey(key)

	if s.remote != nil {
		value, err := s.remote.Get(ctx, collection, key)
		switch {
		case err == nil:
			if lerr := s.local.Put(ctx, collection, key, value); lerr != nil {
				s.log.Warn("failed to refresh local off-chain cache",
					"collection", collection, "key", key, "error", lerr)
			}
			return value, nil
		case errors.Is(err, ErrNotFound):
			// Remote has no value; the local copy, if any, still counts.
		default:
			s.log.Warn("remote off-chain read failed, falling back to local",
				"collection", collection, "key", key, "error", err)
		}
	}

	return s.local.Get(ctx, collection, key)
}

// List retrieves documents for several keys at once, remote-wins per
// key with local filling the gaps. Missing keys are absent from the
// result.
func (s *Store) List(ctx context.Context, collection string, keys []string) (map[string][]byte, error) {
	normalized := make([]string, len(keys))
	for i, key := range keys {
		normalized[i] = NormalizeKey(key)
	}

	result := make(map[string][]byte, len(normalized))

	if s.remote != nil {
		remote, err := s.remote.List(ctx, collection, normalized)
		if err != nil {
			s.log.Warn("remote off-chain list failed, falling back to local",
				"collection", collection, "error", err)
		} else {
			for key, value := range remote {
				result[key] = value
				if lerr := s.local.Put(ctx, collection, key, value); lerr != nil {
					s.log.Warn("failed to refresh local off-chain cache",
						"collection", collection, "key", key, "error", lerr)
				}
			}
		}
	}

	missing := make([]string, 0, len(normalized))
	for _, key := range normalized {
		if _, ok := result[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		local, err := s.local.List(ctx, collection, missing)
		if err != nil {
			return nil, fmt.Errorf("local off-chain list failed: %w", err)
		}
		for key, value := range local {
			result[key] = value
		}
	}

	return result, nil
}
