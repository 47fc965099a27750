// Package services implements the configuration resolution pipeline:
// mapping command-line options to an overlay, merging the configuration
// sources by precedence, and orchestrating the session record around
// them.
package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gridctl-dev/gridctl/internal/application/dto"
	apperrors "github.com/gridctl-dev/gridctl/internal/application/errors"
	"github.com/gridctl-dev/gridctl/internal/config"
	"github.com/gridctl-dev/gridctl/internal/domain/values"
)

// Mode distinguishes launching a new session cluster from attaching to
// an existing one. Run-only options (resources, ship files, detached
// mode) are mapped only in session mode.
type Mode int

const (
	// ModeSession resolves configuration for launching a session cluster.
	ModeSession Mode = iota
	// ModeAttach resolves configuration for attaching to a cluster.
	ModeAttach
)

// DynamicProperty is one raw `-D key=value` override.
type DynamicProperty struct {
	Key   string
	Value string
}

// Overlay is the partial configuration derived from command-line
// options. Structured holds the keys set by dedicated flags; Dynamic
// holds raw overrides applied after everything else, in flag order.
type Overlay struct {
	Structured *config.Configuration
	Dynamic    []DynamicProperty
}

// HasClusterID reports whether the command line supplied a cluster
// identifier.
func (o *Overlay) HasClusterID() bool {
	return o.Structured.Has(config.ClusterApplicationID.Key)
}

// BuildOverlay maps parsed command-line options to a configuration
// overlay containing only the keys the user explicitly supplied.
func BuildOverlay(opts dto.SessionOptions, mode Mode) (*Overlay, error) {
	overlay := &Overlay{Structured: config.New()}

	if opts.ApplicationID != nil {
		overlay.Structured.Set(config.ClusterApplicationID.Key, *opts.ApplicationID)
	}

	if opts.HANamespace != nil {
		overlay.Structured.Set(config.HANamespace.Key, *opts.HANamespace)
	}

	if mode == ModeSession {
		if err := mapRunOptions(opts, overlay.Structured); err != nil {
			return nil, err
		}
	}

	for _, raw := range opts.DynamicProperties {
		key, value, found := strings.Cut(raw, "=")
		if !found || key == "" {
			return nil, apperrors.NewMalformedOptionError(
				"define", raw, "expected key=value", nil)
		}
		overlay.Dynamic = append(overlay.Dynamic, DynamicProperty{Key: key, Value: value})
	}

	return overlay, nil
}

// mapRunOptions maps the options that only apply when launching a new
// session cluster.
func mapRunOptions(opts dto.SessionOptions, structured *config.Configuration) error {
	if opts.MasterMemory != nil {
		mem, err := values.ParseMemorySize(*opts.MasterMemory)
		if err != nil {
			return apperrors.NewMalformedOptionError(
				"master-memory", *opts.MasterMemory, "not a valid memory quantity", err)
		}
		structured.Set(config.MasterTotalProcessMemory.Key, mem)
	}

	if opts.TaskManagerMemory != nil {
		mem, err := values.ParseMemorySize(*opts.TaskManagerMemory)
		if err != nil {
			return apperrors.NewMalformedOptionError(
				"taskmanager-memory", *opts.TaskManagerMemory, "not a valid memory quantity", err)
		}
		structured.Set(config.TaskManagerTotalProcessMemory.Key, mem)
	}

	if opts.Slots != nil {
		slots, err := strconv.Atoi(strings.TrimSpace(*opts.Slots))
		if err != nil {
			return apperrors.NewMalformedOptionError(
				"slots", *opts.Slots, "not an integer", err)
		}
		if slots < 1 {
			return apperrors.NewMalformedOptionError(
				"slots", *opts.Slots, fmt.Sprintf("must be at least 1, got %d", slots), nil)
		}
		structured.Set(config.TaskManagerSlots.Key, slots)
	}

	if opts.Detached != nil {
		structured.Set(config.ExecutionDetached.Key, *opts.Detached)
	}

	if opts.NodeLabel != nil {
		structured.Set(config.ClusterNodeLabel.Key, *opts.NodeLabel)
	}

	if len(opts.ShipPaths) > 0 {
		paths := make([]string, len(opts.ShipPaths))
		copy(paths, opts.ShipPaths)
		structured.Set(config.ClusterShipFiles.Key, paths)
	}

	return nil
}
