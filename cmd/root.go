package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang-ifconf/internal/adapter/infrastructure/file"
	"golang-ifconf/internal/pkg/config"
	"golang-ifconf/internal/pkg/interfaces"
	"golang-ifconf/internal/pkg/logging"
	"golang-ifconf/internal/pkg/preferences"

	"github.com/spf13/cobra"
)

var (
	configFlag          string
	interfacesFileFlag  string
	preferencesFileFlag string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "golang-ifconf",
	Short:         "golang-ifconf regenerates /etc/network/interfaces for appliance provisioning",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		if interfacesFileFlag != "" {
			cfg.Files.Interfaces = interfacesFileFlag
		}
		if preferencesFileFlag != "" {
			cfg.Files.Preferences = preferencesFileFlag
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}

		logging.InitLogger(cfg.Logging)
		logging.GetLogger().WithField("config_file", configFlag).Debug("Configuration loaded")

		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&interfacesFileFlag, "interfaces-file", "", "Override the interfaces file path")
	rootCmd.PersistentFlags().StringVar(&preferencesFileFlag, "preferences-file", "", "Override the preferences file path")
}

// Execute runs the root command; SIGINT and SIGTERM cancel in-flight lock waits and probes.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRegistry() *interfaces.Registry {
	return interfaces.NewRegistry(appConfig.Files.Interfaces, file.NewManagerAdapter())
}

// loadPreferences builds the preference store; a malformed file aborts the command.
func loadPreferences() (*preferences.Store, error) {
	store := preferences.NewStore(appConfig.Files.Preferences, file.NewManagerAdapter())
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}
