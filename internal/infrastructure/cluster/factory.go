// Package cluster implements the default cluster client factory: it
// derives the cluster specification and descriptor from a merged
// configuration.
package cluster

import (
	"log/slog"

	"github.com/gridctl-dev/gridctl/internal/application/ports"
	"github.com/gridctl-dev/gridctl/internal/config"
	"github.com/gridctl-dev/gridctl/internal/domain/entities"
	"github.com/gridctl-dev/gridctl/internal/domain/values"
)

// DefaultClientFactory derives cluster artifacts from a merged
// configuration. It implements ports.ClusterClientFactory.
type DefaultClientFactory struct{}

var _ ports.ClusterClientFactory = (*DefaultClientFactory)(nil)

// NewDefaultClientFactory creates a new DefaultClientFactory.
func NewDefaultClientFactory() *DefaultClientFactory {
	return &DefaultClientFactory{}
}

// ClusterSpecification computes the resource shape from the merged
// configuration. Explicit values win; absent keys fall back to the
// configuration defaults. Memory is floored to whole mebibytes. No
// minimum-footprint validation happens here.
func (f *DefaultClientFactory) ClusterSpecification(conf *config.Configuration) (entities.ClusterSpecification, error) {
	masterMemory, err := conf.GetMemory(config.MasterTotalProcessMemory)
	if err != nil {
		return entities.ClusterSpecification{}, err
	}

	taskManagerMemory, err := conf.GetMemory(config.TaskManagerTotalProcessMemory)
	if err != nil {
		return entities.ClusterSpecification{}, err
	}

	slots, err := conf.GetInt(config.TaskManagerSlots)
	if err != nil {
		return entities.ClusterSpecification{}, err
	}

	return entities.ClusterSpecification{
		MasterMemoryMB:      int(masterMemory.Mebibytes()),
		TaskManagerMemoryMB: int(taskManagerMemory.Mebibytes()),
		SlotsPerTaskManager: slots,
	}, nil
}

// CreateDescriptor validates the requested ship files and builds a
// descriptor over the final configuration. When the configuration
// carries a cluster identifier but no high-availability namespace, the
// namespace defaults to the identifier so attach invocations coordinate
// under the cluster they address.
func (f *DefaultClientFactory) CreateDescriptor(conf *config.Configuration) (ports.ClusterDescriptor, error) {
	shipFiles, err := ResolveShipFiles(conf.GetStringSlice(config.ClusterShipFiles))
	if err != nil {
		return nil, err
	}

	final := conf.Clone()
	if final.Has(config.ClusterApplicationID.Key) && !final.Has(config.HANamespace.Key) {
		final.Set(config.HANamespace.Key, final.GetString(config.ClusterApplicationID))
		slog.Debug("derived ha namespace from cluster id",
			"namespace", final.GetString(config.HANamespace))
	}

	return &Descriptor{
		shipFiles: shipFiles,
		nodeLabel: final.GetString(config.ClusterNodeLabel),
		conf:      final,
	}, nil
}

// ClusterID returns the configured cluster identifier. The zero
// ApplicationID means no identifier is configured.
func (f *DefaultClientFactory) ClusterID(conf *config.Configuration) (values.ApplicationID, error) {
	raw := conf.GetString(config.ClusterApplicationID)
	if raw == "" {
		return values.ApplicationID{}, nil
	}
	return values.ParseApplicationID(raw)
}
