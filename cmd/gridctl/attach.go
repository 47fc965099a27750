package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gridctl-dev/gridctl/internal/application/dto"
	"github.com/gridctl-dev/gridctl/internal/application/services"
	"github.com/gridctl-dev/gridctl/internal/config"
)

var (
	attachApplicationID string
	attachHANamespace   string
	attachDefines       []string
)

// attachCmd represents the attach command
var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Attach to an existing session cluster",
	Long: `Resolve the identity of an existing session cluster. The identifier
comes from --application-id when supplied, otherwise from the session
record persisted by a previous launch. An explicit identifier always
wins over the record.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAttachAction(cmd)
	},
}

func init() {
	rootCmd.AddCommand(attachCmd)

	attachCmd.Flags().StringVarP(&attachApplicationID, "application-id", "i", "", "Cluster application identifier to attach to")
	attachCmd.Flags().StringVarP(&attachHANamespace, "ha-namespace", "z", "", "High-availability coordination namespace")
	attachCmd.Flags().StringArrayVarP(&attachDefines, "define", "D", nil, "Dynamic configuration override key=value (repeatable, applied last)")
}

// runAttachAction implements the core logic for the attach command
func runAttachAction(cmd *cobra.Command) error {
	opts := dto.SessionOptions{
		ApplicationID:     stringFlag(cmd, "application-id"),
		HANamespace:       stringFlag(cmd, "ha-namespace"),
		DynamicProperties: attachDefines,
	}

	resolver, err := newResolver()
	if err != nil {
		return err
	}

	hasContext, err := resolver.HasClusterContext(opts)
	if err != nil {
		return err
	}
	if !hasContext {
		return fmt.Errorf("no cluster to attach to: supply --application-id or launch a session first")
	}

	conf, err := resolver.Resolve(opts, services.ModeAttach)
	if err != nil {
		return err
	}

	factory := newClientFactory()

	id, err := factory.ClusterID(conf)
	if err != nil {
		return err
	}

	descriptor, err := factory.CreateDescriptor(conf)
	if err != nil {
		return err
	}

	slog.Info("attached to cluster", "application_id", id.String())

	final := descriptor.Configuration()
	fmt.Printf("application id: %s\n", id)
	fmt.Printf("ha namespace:   %s\n", final.GetString(config.HANamespace))
	if host := final.GetString(config.ClusterManagerAddress); host != "" {
		port, err := final.GetInt(config.ClusterManagerPort)
		if err != nil {
			return err
		}
		fmt.Printf("manager:        %s:%d\n", host, port)
	}

	return nil
}
