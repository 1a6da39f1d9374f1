// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-ifconf/internal/types"
)

// NetworkConfigurationManager is the primary port for network configuration.
// Each adapter (DHCP, static, manual) renders one interfaces stanza and
// writes it through the InterfacesRegistry.
type NetworkConfigurationManager interface {
	// Apply writes the interface configuration.
	Apply(ctx context.Context) error

	// Stanza returns the lines that Apply would write for the interface,
	// without preserved hook options.
	Stanza() []string

	// GetInterfaceName returns the name of the network interface managed by this manager.
	GetInterfaceName() string
}

// InterfacesRegistry is the port to the interfaces file.
type InterfacesRegistry interface {
	// SetDHCP configures ifname for dhcp.
	SetDHCP(ctx context.Context, ifname string) error

	// SetManual configures ifname as manual.
	SetManual(ctx context.Context, ifname string) error

	// SetStatic configures ifname with a static address.
	SetStatic(ctx context.Context, ifname string, config types.StaticIPConfig) error
}

// PreferenceStore is the port to the local preferences file.
type PreferenceStore interface {
	// DefaultNIC returns the stored default interface, if any.
	DefaultNIC() (string, bool)

	// SetDefaultNIC stores ifname as the default interface.
	SetDefaultNIC(ctx context.Context, ifname string) error
}
