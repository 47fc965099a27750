package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gridctl-dev/gridctl/internal/application/dto"
	"github.com/gridctl-dev/gridctl/internal/application/services"
	"github.com/gridctl-dev/gridctl/internal/config"
	"github.com/gridctl-dev/gridctl/internal/domain/entities"
)

var (
	sessionMasterMemory      string
	sessionTaskManagerMemory string
	sessionSlots             string
	sessionDetached          bool
	sessionHANamespace       string
	sessionNodeLabel         string
	sessionShipPaths         []string
	sessionDefines           []string
)

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Launch a session cluster",
	Long: `Resolve the effective configuration for a new session cluster and derive
its resource specification. Baseline defaults are overridden by a
recovered session record, which is overridden by command-line flags;
dynamic -D overrides are applied last and win over everything.

Memory quantities accept an optional unit suffix (b, k, m, g, t);
without a suffix the value is read as mebibytes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSessionAction(cmd)
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionStopCmd)

	sessionCmd.Flags().StringVarP(&sessionMasterMemory, "master-memory", "m", "", "Total process memory for the cluster master (e.g. 1024, 2g)")
	sessionCmd.Flags().StringVarP(&sessionTaskManagerMemory, "taskmanager-memory", "w", "", "Total process memory per task manager (e.g. 2048, 4g)")
	sessionCmd.Flags().StringVarP(&sessionSlots, "slots", "s", "", "Number of slots per task manager")
	sessionCmd.Flags().BoolVarP(&sessionDetached, "detached", "d", false, "Return immediately after submission instead of staying attached")
	sessionCmd.Flags().StringVarP(&sessionHANamespace, "ha-namespace", "z", "", "High-availability coordination namespace")
	sessionCmd.Flags().StringVar(&sessionNodeLabel, "node-label", "", "Restrict container placement to nodes with this label")
	sessionCmd.Flags().StringArrayVar(&sessionShipPaths, "ship", nil, "Local file or directory to ship to the cluster (repeatable)")
	sessionCmd.Flags().StringArrayVarP(&sessionDefines, "define", "D", nil, "Dynamic configuration override key=value (repeatable, applied last)")
}

// runSessionAction implements the core logic for the session command
func runSessionAction(cmd *cobra.Command) error {
	opts := dto.SessionOptions{
		MasterMemory:      stringFlag(cmd, "master-memory"),
		TaskManagerMemory: stringFlag(cmd, "taskmanager-memory"),
		Slots:             stringFlag(cmd, "slots"),
		Detached:          boolFlag(cmd, "detached"),
		HANamespace:       stringFlag(cmd, "ha-namespace"),
		NodeLabel:         stringFlag(cmd, "node-label"),
		ShipPaths:         sessionShipPaths,
		DynamicProperties: sessionDefines,
	}

	resolver, err := newResolver()
	if err != nil {
		return err
	}

	slog.Info("resolving session configuration")
	conf, err := resolver.Resolve(opts, services.ModeSession)
	if err != nil {
		return err
	}

	factory := newClientFactory()

	spec, err := factory.ClusterSpecification(conf)
	if err != nil {
		return fmt.Errorf("failed to derive cluster specification: %w", err)
	}

	descriptor, err := factory.CreateDescriptor(conf)
	if err != nil {
		return err
	}

	slog.Info("derived cluster specification",
		"master_memory_mb", spec.MasterMemoryMB,
		"taskmanager_memory_mb", spec.TaskManagerMemoryMB,
		"slots_per_taskmanager", spec.SlotsPerTaskManager)

	detached, err := conf.GetBool(config.ExecutionDetached)
	if err != nil {
		return err
	}

	printLaunchPlan(spec, descriptor.ShipFiles(), descriptor.NodeLabel(), detached)

	if !detached && isInteractive() {
		confirmed := true
		if err := huh.NewConfirm().
			Title("Launch session cluster with this specification?").
			Value(&confirmed).
			Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Launch aborted.")
			return nil
		}
	}

	return persistSessionRecord(resolver, descriptor.Configuration())
}

// printLaunchPlan writes the derived deployment plan to stdout.
func printLaunchPlan(spec entities.ClusterSpecification, shipFiles []string, nodeLabel string, detached bool) {
	fmt.Println("Session cluster plan:")
	fmt.Printf("  master memory:        %d MB\n", spec.MasterMemoryMB)
	fmt.Printf("  taskmanager memory:   %d MB\n", spec.TaskManagerMemoryMB)
	fmt.Printf("  slots per taskmanager: %d\n", spec.SlotsPerTaskManager)
	fmt.Printf("  detached:             %v\n", detached)
	if nodeLabel != "" {
		fmt.Printf("  node label:           %s\n", nodeLabel)
	}
	for _, f := range shipFiles {
		fmt.Printf("  ship:                 %s\n", f)
	}
}

// persistSessionRecord stores the session properties file when the
// resolved configuration carries a cluster identifier, so later
// invocations can attach without repeating it.
func persistSessionRecord(resolver *services.SessionResolver, conf *config.Configuration) error {
	factory := newClientFactory()

	id, err := factory.ClusterID(conf)
	if err != nil {
		return err
	}
	if id.IsZero() {
		slog.Debug("no cluster identifier resolved, session record not written")
		return nil
	}

	record := &entities.SessionRecord{ApplicationID: id}
	record.ManagerHost = conf.GetString(config.ClusterManagerAddress)
	if record.ManagerHost != "" {
		port, err := conf.GetInt(config.ClusterManagerPort)
		if err != nil {
			return err
		}
		record.ManagerPort = port
	}

	path, err := resolver.StoreRecord(record)
	if err != nil {
		return err
	}

	slog.Info("session record written", "path", path, "application_id", id.String())
	return nil
}

// sessionStopCmd removes the persisted session record.
var sessionStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Forget the persisted session record",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}
		if err := resolver.RemoveRecord(); err != nil {
			return err
		}
		slog.Info("session record removed", "dir", resolver.PropertiesDir())
		return nil
	},
}
