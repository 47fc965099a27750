package config

import "github.com/gridctl-dev/gridctl/internal/domain/values"

// Well-known configuration keys. Baseline defaults, the session record
// overlay and command-line flags all write into this key space; dynamic
// `-D key=value` overrides may target any key, known or not.
var (
	// MasterTotalProcessMemory sizes the cluster master process.
	MasterTotalProcessMemory = MemoryOption{
		Key:     "master.memory.process.size",
		Default: values.MemorySizeOfMebibytes(1600),
	}

	// TaskManagerTotalProcessMemory sizes each task manager process.
	TaskManagerTotalProcessMemory = MemoryOption{
		Key:     "taskmanager.memory.process.size",
		Default: values.MemorySizeOfMebibytes(1728),
	}

	// TaskManagerSlots is the number of task slots per task manager.
	TaskManagerSlots = IntOption{Key: "taskmanager.slots", Default: 1}

	// ExecutionDetached controls whether the CLI returns immediately
	// after submission instead of staying attached.
	ExecutionDetached = BoolOption{Key: "execution.detached", Default: false}

	// HANamespace is the high-availability coordination namespace.
	HANamespace = StringOption{Key: "ha.namespace"}

	// ClusterApplicationID identifies the cluster to attach to.
	ClusterApplicationID = StringOption{Key: "cluster.application-id"}

	// ClusterManagerAddress is the cluster manager host recovered from a
	// session record.
	ClusterManagerAddress = StringOption{Key: "cluster.manager-address"}

	// ClusterManagerPort is the cluster manager port recovered from a
	// session record.
	ClusterManagerPort = IntOption{Key: "cluster.manager-port"}

	// ClusterShipFiles lists local paths to distribute to the cluster.
	ClusterShipFiles = StringSliceOption{Key: "cluster.ship-files"}

	// ClusterNodeLabel restricts container placement to labeled nodes.
	ClusterNodeLabel = StringOption{Key: "cluster.node-label"}

	// SessionPropertiesDir is the directory holding the persisted session
	// properties file. Empty means the system temp directory.
	SessionPropertiesDir = StringOption{Key: "session.properties-dir"}
)
