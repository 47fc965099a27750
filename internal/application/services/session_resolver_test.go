package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridctl-dev/gridctl/internal/application/dto"
	"github.com/gridctl-dev/gridctl/internal/config"
	"github.com/gridctl-dev/gridctl/internal/domain/entities"
)

// fakeSessionStore is an in-memory SessionStore for resolver tests.
type fakeSessionStore struct {
	record  *entities.SessionRecord
	loadErr error

	storedDir  string
	storedUser string
	removed    bool
}

func (s *fakeSessionStore) Load(dir, user string) (*entities.SessionRecord, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.record, nil
}

func (s *fakeSessionStore) Store(dir, user string, record *entities.SessionRecord) (string, error) {
	s.storedDir = dir
	s.storedUser = user
	s.record = record
	return dir + "/.gridctl-properties-" + user, nil
}

func (s *fakeSessionStore) Remove(dir, user string) error {
	s.removed = true
	s.record = nil
	return nil
}

func TestSessionResolver_ResolveMergesRecord(t *testing.T) {
	store := &fakeSessionStore{record: sessionRecord(t)}
	resolver := NewSessionResolver(baselineConfig(t), store, "testuser")

	conf, err := resolver.Resolve(dto.SessionOptions{}, ModeAttach)
	require.NoError(t, err)

	assert.Equal(t, "application_1666666666666_0042", conf.GetString(config.ClusterApplicationID))
	assert.Equal(t, "22.33.44.55", conf.GetString(config.ClusterManagerAddress))
}

func TestSessionResolver_MalformedRecordFailsRegardless(t *testing.T) {
	store := &fakeSessionStore{
		loadErr: &entities.InvalidSessionPropertiesError{Path: "/tmp/.gridctl-properties-testuser"},
	}
	resolver := NewSessionResolver(baselineConfig(t), store, "testuser")

	// Even a fully explicit command line does not excuse a corrupt
	// properties file.
	_, err := resolver.Resolve(dto.SessionOptions{
		ApplicationID: strPtr("application_1_0001"),
		MasterMemory:  strPtr("1g"),
	}, ModeSession)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*entities.InvalidSessionPropertiesError))
}

func TestSessionResolver_HasClusterContext(t *testing.T) {
	t.Run("cli identifier", func(t *testing.T) {
		resolver := NewSessionResolver(baselineConfig(t), &fakeSessionStore{}, "testuser")
		has, err := resolver.HasClusterContext(dto.SessionOptions{ApplicationID: strPtr("application_1_0001")})
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("session record", func(t *testing.T) {
		resolver := NewSessionResolver(baselineConfig(t), &fakeSessionStore{record: sessionRecord(t)}, "testuser")
		has, err := resolver.HasClusterContext(dto.SessionOptions{})
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("nothing", func(t *testing.T) {
		resolver := NewSessionResolver(baselineConfig(t), &fakeSessionStore{}, "testuser")
		has, err := resolver.HasClusterContext(dto.SessionOptions{})
		require.NoError(t, err)
		assert.False(t, has)
	})
}

func TestSessionResolver_PropertiesDir(t *testing.T) {
	base := baselineConfig(t)
	base.Set(config.SessionPropertiesDir.Key, "/var/lib/gridctl")
	resolver := NewSessionResolver(base, &fakeSessionStore{}, "testuser")

	assert.Equal(t, "/var/lib/gridctl", resolver.PropertiesDir())

	fallback := NewSessionResolver(baselineConfig(t), &fakeSessionStore{}, "testuser")
	assert.NotEmpty(t, fallback.PropertiesDir(), "falls back to the system temp directory")
}

func TestSessionResolver_StoreAndRemoveRecord(t *testing.T) {
	base := baselineConfig(t)
	base.Set(config.SessionPropertiesDir.Key, "/var/lib/gridctl")
	store := &fakeSessionStore{}
	resolver := NewSessionResolver(base, store, "testuser")

	path, err := resolver.StoreRecord(sessionRecord(t))
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/gridctl/.gridctl-properties-testuser", path)
	assert.Equal(t, "/var/lib/gridctl", store.storedDir)
	assert.Equal(t, "testuser", store.storedUser)

	require.NoError(t, resolver.RemoveRecord())
	assert.True(t, store.removed)
}
