package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/gridctl-dev/gridctl/internal/application/services"
	"github.com/gridctl-dev/gridctl/internal/infrastructure/cluster"
	infraconfig "github.com/gridctl-dev/gridctl/internal/infrastructure/config"
	"github.com/gridctl-dev/gridctl/internal/infrastructure/session"
)

// newResolver wires the resolution pipeline: baseline defaults from the
// configured location, the file-backed session store, and the invoking
// user's name.
func newResolver() (*services.SessionResolver, error) {
	path, err := baselinePath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate baseline config: %w", err)
	}

	baseline, err := infraconfig.LoadBaseline(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load baseline config: %w", err)
	}

	return services.NewSessionResolver(baseline, session.NewFileStore(), currentUser()), nil
}

// newClientFactory creates the default cluster client factory.
func newClientFactory() *cluster.DefaultClientFactory {
	return cluster.NewDefaultClientFactory()
}

// currentUser returns the invoking user's name, falling back to the
// USER environment variable.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// stringFlag returns the flag value when the user supplied it, nil
// otherwise, so downstream code can tell an explicit choice apart from
// the flag default.
func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// boolFlag is the boolean counterpart of stringFlag.
func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// isInteractive checks if we're running in an interactive terminal.
func isInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	// Character device means a terminal, not a pipe or file
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
