// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"github.com/gridctl-dev/gridctl/internal/config"
	"github.com/gridctl-dev/gridctl/internal/domain/entities"
	"github.com/gridctl-dev/gridctl/internal/domain/values"
)

// SessionStore loads and persists the per-user session properties file.
type SessionStore interface {
	// Load reads the session record for user from dir. A missing file is
	// not an error: Load returns (nil, nil).
	Load(dir, user string) (*entities.SessionRecord, error)

	// Store persists the record and returns the file path written.
	Store(dir, user string, record *entities.SessionRecord) (string, error)

	// Remove deletes the persisted record. Removing a missing record is
	// not an error.
	Remove(dir, user string) error
}

// ClusterDescriptor exposes what a deployment collaborator needs to
// inspect about a resolved cluster: the ship files, the node label and
// the final configuration.
type ClusterDescriptor interface {
	ShipFiles() []string
	NodeLabel() string
	Configuration() *config.Configuration
}

// ClusterClientFactory turns a merged configuration into the concrete
// artifacts handed to the deployment collaborator.
type ClusterClientFactory interface {
	// ClusterSpecification derives the resource shape from the merged
	// configuration, applying configuration defaults for absent keys.
	ClusterSpecification(conf *config.Configuration) (entities.ClusterSpecification, error)

	// CreateDescriptor validates ship files and builds the descriptor.
	CreateDescriptor(conf *config.Configuration) (ClusterDescriptor, error)

	// ClusterID returns the cluster identifier from the configuration.
	// The zero ApplicationID means no identifier is configured.
	ClusterID(conf *config.Configuration) (values.ApplicationID, error)
}
