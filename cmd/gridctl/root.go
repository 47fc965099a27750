package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	baselineFile string
	verbose      bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "gridctl",
	Short: "Session cluster management for the grid resource manager",
	Long: `Gridctl resolves the effective runtime configuration for launching or
attaching to a session cluster by merging baseline defaults, a persisted
session record and command-line flags, and derives the cluster resource
specification from the result.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gridctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&baselineFile, "baseline", "", "baseline defaults file (default is $HOME/.gridctl/gridctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	// A local .env is convenient in development; missing is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gridctl")
	}

	viper.SetEnvPrefix("GRIDCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

// baselinePath resolves the baseline defaults file location: the
// --baseline flag wins, then the CLI config, then the home default.
func baselinePath() (string, error) {
	if baselineFile != "" {
		return baselineFile, nil
	}
	if path := viper.GetString("baseline"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gridctl", "gridctl.yaml"), nil
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
