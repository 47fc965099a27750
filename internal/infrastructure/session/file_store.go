// Package session persists and recovers the per-user session properties
// file that records the identity of a previously launched cluster.
package session

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gridctl-dev/gridctl/internal/domain/entities"
	"github.com/gridctl-dev/gridctl/internal/domain/values"
)

// propertiesFilePrefix is the fixed per-user filename convention:
// .gridctl-properties-<user>.
const propertiesFilePrefix = ".gridctl-properties-"

// Properties file keys.
const (
	keyApplicationID  = "applicationID"
	keyManagerAddress = "managerAddress"
)

// FileStore reads and writes the session properties file.
type FileStore struct{}

// NewFileStore creates a new FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// PropertiesFilePath returns the session properties file path for user
// inside dir.
func PropertiesFilePath(dir, user string) string {
	return filepath.Join(dir, propertiesFilePrefix+user)
}

// Load reads the session record for user from dir. A missing file is
// not an error: it returns (nil, nil). A file that exists but cannot be
// parsed into an identifier (plus optional manager address) fails with
// *entities.InvalidSessionPropertiesError.
func (s *FileStore) Load(dir, user string) (*entities.SessionRecord, error) {
	path := PropertiesFilePath(dir, user)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session properties file: %w", err)
	}

	pairs := parseProperties(string(data))

	rawID, ok := pairs[keyApplicationID]
	if !ok {
		return nil, &entities.InvalidSessionPropertiesError{
			Path:    path,
			Content: strings.TrimSpace(string(data)),
			Cause:   fmt.Errorf("missing required key %s", keyApplicationID),
		}
	}

	id, err := values.ParseApplicationID(rawID)
	if err != nil {
		return nil, &entities.InvalidSessionPropertiesError{
			Path:    path,
			Content: rawID,
			Cause:   err,
		}
	}

	record := &entities.SessionRecord{ApplicationID: id}

	if address, ok := pairs[keyManagerAddress]; ok {
		host, portText, err := net.SplitHostPort(address)
		if err != nil {
			return nil, &entities.InvalidSessionPropertiesError{
				Path:    path,
				Content: address,
				Cause:   fmt.Errorf("manager address must be host:port: %w", err),
			}
		}
		port, err := strconv.Atoi(portText)
		if err != nil {
			return nil, &entities.InvalidSessionPropertiesError{
				Path:    path,
				Content: address,
				Cause:   fmt.Errorf("manager port must be an integer: %w", err),
			}
		}
		record.ManagerHost = host
		record.ManagerPort = port
	}

	return record, nil
}

// Store persists the session record for user in dir and returns the
// path written. The file is only readable by the owner.
func (s *FileStore) Store(dir, user string, record *entities.SessionRecord) (string, error) {
	path := PropertiesFilePath(dir, user)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s=%s\n", keyApplicationID, record.ApplicationID.String())
	if record.HasManagerAddress() {
		fmt.Fprintf(&sb, "%s=%s\n", keyManagerAddress, record.ManagerAddress())
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write session properties file: %w", err)
	}

	return path, nil
}

// Remove deletes the persisted session record. Removing a record that
// does not exist is not an error.
func (s *FileStore) Remove(dir, user string) error {
	err := os.Remove(PropertiesFilePath(dir, user))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session properties file: %w", err)
	}
	return nil
}

// parseProperties reads key=value lines. Blank lines and lines starting
// with '#' are ignored; for duplicate keys the last line wins.
func parseProperties(content string) map[string]string {
	pairs := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		pairs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return pairs
}
