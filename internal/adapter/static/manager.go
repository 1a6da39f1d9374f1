package static

import (
	"context"
	"fmt"
	"strings"

	"golang-ifconf/internal/adapter/preflight"
	"golang-ifconf/internal/pkg/interfaces"
	"golang-ifconf/internal/pkg/logging"
	"golang-ifconf/internal/port"
	"golang-ifconf/internal/types"
)

// Options controls the checks run before the static stanza is written.
type Options struct {
	// RequireLink fails Apply when the interface does not exist.
	RequireLink bool
}

// Manager is a static IP network configuration adapter that implements the NetworkConfigurationManager port.
// It writes an "inet static" stanza for one interface following the Ports and Adapters pattern.
type Manager struct {
	ifaceName    string
	staticConfig types.StaticIPConfig
	registry     port.InterfacesRegistry
	networkMgr   port.NetworkManager
	opts         Options
}

// Ensure Manager implements the NetworkConfigurationManager port
var _ port.NetworkConfigurationManager = (*Manager)(nil)

// NewManager creates a new static IP network configuration adapter for the given interface name and configuration.
// Address and netmask are required; their syntax is not checked.
func NewManager(ifaceName string, staticConfig types.StaticIPConfig, registry port.InterfacesRegistry, networkMgr port.NetworkManager, opts Options) (*Manager, error) {
	if ifaceName == "" {
		return nil, fmt.Errorf("interface name is required")
	}
	if staticConfig.IPAddress == "" {
		return nil, fmt.Errorf("interface %s: static IP address is required", ifaceName)
	}
	if staticConfig.Netmask == "" {
		return nil, fmt.Errorf("interface %s: static netmask is required", ifaceName)
	}

	return &Manager{
		ifaceName:    ifaceName,
		staticConfig: staticConfig,
		registry:     registry,
		networkMgr:   networkMgr,
		opts:         opts,
	}, nil
}

// GetInterfaceName returns the name of the network interface managed by this manager.
func (m *Manager) GetInterfaceName() string {
	return m.ifaceName
}

// Stanza returns the static stanza for the interface.
func (m *Manager) Stanza() []string {
	return interfaces.StaticStanza(m.ifaceName, m.staticConfig)
}

// Apply runs the preflight checks and writes the static stanza.
func (m *Manager) Apply(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("static", m.ifaceName)

	if err := preflight.CheckLink(m.networkMgr, m.ifaceName, m.opts.RequireLink, logger); err != nil {
		return err
	}

	if err := m.registry.SetStatic(ctx, m.ifaceName, m.staticConfig); err != nil {
		return fmt.Errorf("failed to configure static address on %s: %w", m.ifaceName, err)
	}

	logger.WithFields(map[string]interface{}{
		"ip":          m.staticConfig.IPAddress,
		"netmask":     m.staticConfig.Netmask,
		"gateway":     m.staticConfig.Gateway,
		"nameservers": strings.Join(m.staticConfig.Nameservers, " "),
	}).Info("Configured static address")
	return nil
}
