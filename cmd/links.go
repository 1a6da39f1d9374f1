package cmd

import (
	"errors"
	"fmt"
	"os"

	"golang-ifconf/internal/adapter/infrastructure/network"
	"golang-ifconf/internal/pkg/interfaces"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List kernel network links and whether the interfaces file configures them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		links, err := network.NewManagerAdapter().ListLinks()
		if err != nil {
			return err
		}

		registry := newRegistry()
		if err := registry.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		cfg := registry.Config()

		prefs, err := loadPreferences()
		if err != nil {
			return err
		}
		defaultNIC, _ := prefs.DefaultNIC()

		writer := table.NewWriter()
		writer.AppendHeader(table.Row{"link", "index", "mac", "state", "configured", "default"})
		for _, link := range links {
			attrs := link.Attrs()
			_, configured := cfg.Block(attrs.Name)
			writer.AppendRow(table.Row{
				attrs.Name,
				attrs.Index,
				attrs.HardwareAddr.String(),
				attrs.OperState.String(),
				yesNo(configured || attrs.Name == interfaces.LoopbackName),
				yesNo(attrs.Name == defaultNIC),
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", writer.Render())
		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(linksCmd)
}
