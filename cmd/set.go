package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang-ifconf/internal/adapter/dhcp"
	infraDhcp "golang-ifconf/internal/adapter/infrastructure/dhcp"
	"golang-ifconf/internal/adapter/infrastructure/network"
	"golang-ifconf/internal/adapter/manual"
	"golang-ifconf/internal/adapter/static"
	"golang-ifconf/internal/pkg/interfaces"
	"golang-ifconf/internal/pkg/logging"
	"golang-ifconf/internal/port"
	"golang-ifconf/internal/types"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

var (
	dryRunFlag      bool
	setDefaultFlag  bool
	requireLinkFlag bool

	probeFlag         bool
	probeTimeoutFlag  time.Duration
	probeAttemptsFlag int

	staticAddressFlag     string
	staticNetmaskFlag     string
	staticGatewayFlag     string
	staticNameserversFlag []string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Regenerate the interfaces file with a new configuration for one interface",
	Long: `Regenerate the interfaces file with a new configuration for one interface.

The file is only rewritten while it starts with the "# UNCONFIGURED INTERFACES"
header. Up/down hook options of the interface are kept; every other interface
is copied unchanged.`,
}

var setDHCPCmd = &cobra.Command{
	Use:   "dhcp IFACE",
	Short: "Configure an interface for DHCP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := newRegistry()

		var dhcpClient port.DHCPClient
		if probeFlag {
			dhcpClient = infraDhcp.NewClientAdapter()
		}

		timeout := probeTimeoutFlag
		if !cmd.Flags().Changed("probe-timeout") {
			timeout = appConfig.Probe.Timeout
		}

		manager, err := dhcp.NewManager(args[0], registry, network.NewManagerAdapter(), dhcpClient, dhcp.Options{
			RequireLink:   requireLinkFlag,
			Probe:         probeFlag,
			ProbeTimeout:  timeout,
			ProbeAttempts: probeAttemptsFlag,
		})
		if err != nil {
			return err
		}

		budget := appConfig.Lock.Timeout
		if probeFlag {
			budget += time.Duration(max(probeAttemptsFlag, 1)) * (timeout + 2*time.Second)
		}
		return runManager(cmd, registry, manager, budget)
	},
}

var setManualCmd = &cobra.Command{
	Use:   "manual IFACE",
	Short: "Configure an interface as manual",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := newRegistry()

		manager, err := manual.NewManager(args[0], registry, network.NewManagerAdapter(), manual.Options{
			RequireLink: requireLinkFlag,
		})
		if err != nil {
			return err
		}
		return runManager(cmd, registry, manager, appConfig.Lock.Timeout)
	},
}

var setStaticCmd = &cobra.Command{
	Use:   "static IFACE",
	Short: "Configure an interface with a static address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := newRegistry()

		staticConfig := types.StaticIPConfig{
			IPAddress:   staticAddressFlag,
			Netmask:     staticNetmaskFlag,
			Gateway:     staticGatewayFlag,
			Nameservers: staticNameserversFlag,
		}

		manager, err := static.NewManager(args[0], staticConfig, registry, network.NewManagerAdapter(), static.Options{
			RequireLink: requireLinkFlag,
		})
		if err != nil {
			return err
		}
		return runManager(cmd, registry, manager, appConfig.Lock.Timeout)
	},
}

// runManager loads the registry, then either prints a diff of the pending change
// or applies it and optionally records the interface as default.
func runManager(cmd *cobra.Command, registry *interfaces.Registry, manager port.NetworkConfigurationManager, budget time.Duration) error {
	ifname := manager.GetInterfaceName()
	logger := logging.WithInterface(ifname)

	if err := registry.Load(); err != nil {
		return err
	}
	logger.WithField("state", registry.State().String()).Debug("Loaded interfaces file")

	if dryRunFlag {
		current, proposed, err := registry.Preview(ifname, manager.Stanza())
		if err != nil {
			return err
		}
		return writeDiff(cmd.OutOrStdout(), registry.Path(), current, proposed)
	}

	// loaded before writing so a malformed preferences file aborts without side effects
	var prefs port.PreferenceStore
	if setDefaultFlag {
		store, err := loadPreferences()
		if err != nil {
			return err
		}
		prefs = store
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), budget)
	defer cancel()

	if err := manager.Apply(ctx); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configured %s in %s\n", ifname, registry.Path())

	if prefs != nil {
		if err := prefs.SetDefaultNIC(ctx, ifname); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default interface set to %s\n", ifname)
	}
	return nil
}

func writeDiff(w io.Writer, path, current, proposed string) error {
	if current == proposed {
		fmt.Fprintln(w, "No changes.")
		return nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(proposed),
		FromFile: path,
		ToFile:   path + " (proposed)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("failed to render diff: %w", err)
	}
	fmt.Fprint(w, text)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{setDHCPCmd, setManualCmd, setStaticCmd} {
		c.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print the change as a unified diff instead of writing it")
		c.Flags().BoolVar(&setDefaultFlag, "default", false, "Also store the interface as the default NIC")
		c.Flags().BoolVar(&requireLinkFlag, "require-link", false, "Fail if the interface does not exist")
		setCmd.AddCommand(c)
	}

	setDHCPCmd.Flags().BoolVar(&probeFlag, "probe", false, "Request a DHCP lease before writing the configuration")
	setDHCPCmd.Flags().DurationVar(&probeTimeoutFlag, "probe-timeout", 10*time.Second, "Timeout of a single DHCP probe")
	setDHCPCmd.Flags().IntVar(&probeAttemptsFlag, "probe-attempts", 1, "Number of DHCP probe attempts")

	setStaticCmd.Flags().StringVar(&staticAddressFlag, "address", "", "IP address")
	setStaticCmd.Flags().StringVar(&staticNetmaskFlag, "netmask", "", "Netmask")
	setStaticCmd.Flags().StringVar(&staticGatewayFlag, "gateway", "", "Default gateway (optional)")
	setStaticCmd.Flags().StringSliceVar(&staticNameserversFlag, "nameserver", nil, "DNS server, may be repeated (optional)")
	for _, name := range []string{"address", "netmask"} {
		if err := setStaticCmd.MarkFlagRequired(name); err != nil {
			panic(err) // This should never happen during initialization
		}
	}

	rootCmd.AddCommand(setCmd)
}
