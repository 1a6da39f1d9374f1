package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var defaultNICCmd = &cobra.Command{
	Use:   "default-nic",
	Short: "Get or set the default network interface",
}

var defaultNICGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the default network interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := loadPreferences()
		if err != nil {
			return err
		}

		nic, ok := prefs.DefaultNIC()
		if !ok {
			return fmt.Errorf("no default interface set in %s", prefs.Path())
		}
		fmt.Fprintln(cmd.OutOrStdout(), nic)
		return nil
	},
}

var defaultNICSetCmd = &cobra.Command{
	Use:   "set IFACE",
	Short: "Store the default network interface",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := loadPreferences()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.Lock.Timeout)
		defer cancel()

		if err := prefs.SetDefaultNIC(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default interface set to %s\n", args[0])
		return nil
	},
}

func init() {
	defaultNICCmd.AddCommand(defaultNICGetCmd, defaultNICSetCmd)
	rootCmd.AddCommand(defaultNICCmd)
}
