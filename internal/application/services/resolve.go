package services

import (
	"github.com/gridctl-dev/gridctl/internal/config"
	"github.com/gridctl-dev/gridctl/internal/domain/entities"
)

// ResolveConfiguration merges the three configuration sources into one
// final configuration. Precedence, lowest to highest: baseline defaults,
// the recovered session record, the command-line overlay. Dynamic
// `-D` overrides are applied last so they can override any key,
// including values set by dedicated flags.
//
// The session record overlay is skipped entirely when the command line
// supplies a cluster identifier: an explicit identifier switches the
// invocation to a different cluster, so the record's manager address
// would be stale.
//
// The merge is pure: the same inputs always produce the same output and
// no input is mutated.
func ResolveConfiguration(base *config.Configuration, record *entities.SessionRecord, overlay *Overlay) *config.Configuration {
	merged := base.Clone()

	if record != nil && !overlay.HasClusterID() {
		merged.Set(config.ClusterApplicationID.Key, record.ApplicationID.String())
		if record.HasManagerAddress() {
			merged.Set(config.ClusterManagerAddress.Key, record.ManagerHost)
			merged.Set(config.ClusterManagerPort.Key, record.ManagerPort)
		}
	}

	merged = merged.Merge(overlay.Structured)

	for _, dp := range overlay.Dynamic {
		merged.Set(dp.Key, dp.Value)
	}

	return merged
}
