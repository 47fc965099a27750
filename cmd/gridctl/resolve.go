package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/gridctl-dev/gridctl/internal/application/dto"
	"github.com/gridctl-dev/gridctl/internal/application/services"
	"github.com/gridctl-dev/gridctl/internal/config"
	"github.com/gridctl-dev/gridctl/internal/domain/values"
)

var (
	resolveFormat        string
	resolveApplicationID string
	resolveMasterMemory  string
	resolveTMMemory      string
	resolveSlots         string
	resolveDetached      bool
	resolveHANamespace   string
	resolveNodeLabel     string
	resolveShipPaths     []string
	resolveDefines       []string
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the merged configuration without launching anything",
	Long: `Run the configuration resolution pipeline and print the final merged
configuration. Useful for inspecting what a session launch or attach
would actually use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runResolveAction(cmd)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveFormat, "format", "yaml", "Output format: yaml, json")
	resolveCmd.Flags().StringVarP(&resolveApplicationID, "application-id", "i", "", "Cluster application identifier")
	resolveCmd.Flags().StringVarP(&resolveMasterMemory, "master-memory", "m", "", "Total process memory for the cluster master")
	resolveCmd.Flags().StringVarP(&resolveTMMemory, "taskmanager-memory", "w", "", "Total process memory per task manager")
	resolveCmd.Flags().StringVarP(&resolveSlots, "slots", "s", "", "Number of slots per task manager")
	resolveCmd.Flags().BoolVarP(&resolveDetached, "detached", "d", false, "Detached mode")
	resolveCmd.Flags().StringVarP(&resolveHANamespace, "ha-namespace", "z", "", "High-availability coordination namespace")
	resolveCmd.Flags().StringVar(&resolveNodeLabel, "node-label", "", "Node label for container placement")
	resolveCmd.Flags().StringArrayVar(&resolveShipPaths, "ship", nil, "Local file or directory to ship (repeatable)")
	resolveCmd.Flags().StringArrayVarP(&resolveDefines, "define", "D", nil, "Dynamic configuration override key=value (repeatable)")
}

// runResolveAction implements the core logic for the resolve command
func runResolveAction(cmd *cobra.Command) error {
	opts := dto.SessionOptions{
		ApplicationID:     stringFlag(cmd, "application-id"),
		MasterMemory:      stringFlag(cmd, "master-memory"),
		TaskManagerMemory: stringFlag(cmd, "taskmanager-memory"),
		Slots:             stringFlag(cmd, "slots"),
		Detached:          boolFlag(cmd, "detached"),
		HANamespace:       stringFlag(cmd, "ha-namespace"),
		NodeLabel:         stringFlag(cmd, "node-label"),
		ShipPaths:         resolveShipPaths,
		DynamicProperties: resolveDefines,
	}

	resolver, err := newResolver()
	if err != nil {
		return err
	}

	conf, err := resolver.Resolve(opts, services.ModeSession)
	if err != nil {
		return err
	}

	return writeConfiguration(conf, resolveFormat)
}

// writeConfiguration renders the configuration to stdout in insertion
// order.
func writeConfiguration(conf *config.Configuration, format string) error {
	switch format {
	case "yaml":
		doc := make(yaml.MapSlice, 0, conf.Len())
		for _, key := range conf.Keys() {
			raw, _ := conf.Raw(key)
			doc = append(doc, yaml.MapItem{Key: key, Value: displayValue(raw)})
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	case "json":
		return writeConfigurationJSON(conf)
	default:
		return fmt.Errorf("unknown format: %s (supported: yaml, json)", format)
	}
}

// writeConfigurationJSON renders ordered JSON by hand since encoding/json
// does not preserve map ordering.
func writeConfigurationJSON(conf *config.Configuration) error {
	fmt.Println("{")
	keys := conf.Keys()
	for i, key := range keys {
		raw, _ := conf.Raw(key)
		value, err := json.Marshal(displayValue(raw))
		if err != nil {
			return fmt.Errorf("failed to render configuration key %s: %w", key, err)
		}
		comma := ","
		if i == len(keys)-1 {
			comma = ""
		}
		fmt.Printf("  %q: %s%s\n", key, value, comma)
	}
	fmt.Println("}")
	return nil
}

// displayValue converts stored values to their human-readable form.
func displayValue(v any) any {
	if m, ok := v.(values.MemorySize); ok {
		return m.String()
	}
	return v
}
