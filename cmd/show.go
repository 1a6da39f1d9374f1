package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang-ifconf/internal/pkg/interfaces"

	"github.com/spf13/cobra"
)

var showJSONFlag bool

// showOutput is the JSON form of the show command
type showOutput struct {
	Path       string             `json:"path"`
	State      interfaces.State   `json:"state"`
	DefaultNIC *string            `json:"default_nic"`
	Blocks     []interfaces.Block `json:"blocks"`
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the parsed interfaces file and the default interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := newRegistry()
		if err := registry.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		prefs, err := loadPreferences()
		if err != nil {
			return err
		}

		out := showOutput{
			Path:   registry.Path(),
			State:  registry.State(),
			Blocks: registry.Config().Blocks,
		}
		if nic, ok := prefs.DefaultNIC(); ok {
			out.DefaultNIC = &nic
		}

		w := cmd.OutOrStdout()
		if showJSONFlag {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Fprintf(w, "File: %s\n", out.Path)
		fmt.Fprintf(w, "State: %s\n", out.State)
		if out.DefaultNIC != nil {
			fmt.Fprintf(w, "Default NIC: %s\n", *out.DefaultNIC)
		} else {
			fmt.Fprintln(w, "Default NIC: (not set)")
		}
		for _, block := range out.Blocks {
			fmt.Fprintf(w, "\n[%s]\n%s", block.Name, block.Text())
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSONFlag, "json", false, "Print JSON")
	rootCmd.AddCommand(showCmd)
}
