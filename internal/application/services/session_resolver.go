package services

import (
	"os"

	"github.com/gridctl-dev/gridctl/internal/application/dto"
	"github.com/gridctl-dev/gridctl/internal/application/ports"
	"github.com/gridctl-dev/gridctl/internal/config"
	"github.com/gridctl-dev/gridctl/internal/domain/entities"
)

// SessionResolver runs the resolution pipeline for one invocation:
// map options to an overlay, recover the persisted session record,
// merge by precedence. Each invocation owns its own resolver; nothing
// here is shared mutable state.
type SessionResolver struct {
	baseline *config.Configuration
	store    ports.SessionStore
	user     string
}

// NewSessionResolver creates a resolver over the baseline configuration.
func NewSessionResolver(baseline *config.Configuration, store ports.SessionStore, user string) *SessionResolver {
	return &SessionResolver{
		baseline: baseline,
		store:    store,
		user:     user,
	}
}

// Resolve produces the final merged configuration for the given options.
// A malformed session properties file fails the pass regardless of the
// other inputs; an absent file is simply "nothing to recover".
func (r *SessionResolver) Resolve(opts dto.SessionOptions, mode Mode) (*config.Configuration, error) {
	overlay, err := BuildOverlay(opts, mode)
	if err != nil {
		return nil, err
	}

	record, err := r.store.Load(r.PropertiesDir(), r.user)
	if err != nil {
		return nil, err
	}

	return ResolveConfiguration(r.baseline, record, overlay), nil
}

// HasClusterContext reports whether this invocation can address an
// existing cluster: either an identifier on the command line or a
// recoverable session record.
func (r *SessionResolver) HasClusterContext(opts dto.SessionOptions) (bool, error) {
	if opts.ApplicationID != nil {
		return true, nil
	}
	record, err := r.store.Load(r.PropertiesDir(), r.user)
	if err != nil {
		return false, err
	}
	return record != nil, nil
}

// StoreRecord persists the session record for later attach invocations
// and returns the file path written.
func (r *SessionResolver) StoreRecord(record *entities.SessionRecord) (string, error) {
	return r.store.Store(r.PropertiesDir(), r.user, record)
}

// RemoveRecord deletes the persisted session record.
func (r *SessionResolver) RemoveRecord() error {
	return r.store.Remove(r.PropertiesDir(), r.user)
}

// PropertiesDir returns the directory holding the session properties
// file, defaulting to the system temp directory.
func (r *SessionResolver) PropertiesDir() string {
	if dir := r.baseline.GetString(config.SessionPropertiesDir); dir != "" {
		return dir
	}
	return os.TempDir()
}
