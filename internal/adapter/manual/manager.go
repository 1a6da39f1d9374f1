package manual

import (
	"context"
	"fmt"

	"golang-ifconf/internal/adapter/preflight"
	"golang-ifconf/internal/pkg/interfaces"
	"golang-ifconf/internal/pkg/logging"
	"golang-ifconf/internal/port"
)

// Options controls the checks run before the manual stanza is written.
type Options struct {
	RequireLink bool
}

// Manager writes an "inet manual" stanza, leaving address configuration to
// hook options or other tools.
type Manager struct {
	ifaceName  string
	registry   port.InterfacesRegistry
	networkMgr port.NetworkManager
	opts       Options
}

// Ensure Manager implements the NetworkConfigurationManager port
var _ port.NetworkConfigurationManager = (*Manager)(nil)

// NewManager creates a manual configuration adapter for the given interface name.
func NewManager(ifaceName string, registry port.InterfacesRegistry, networkMgr port.NetworkManager, opts Options) (*Manager, error) {
	if ifaceName == "" {
		return nil, fmt.Errorf("interface name is required")
	}
	return &Manager{
		ifaceName:  ifaceName,
		registry:   registry,
		networkMgr: networkMgr,
		opts:       opts,
	}, nil
}

// GetInterfaceName returns the name of the network interface managed by this manager.
func (m *Manager) GetInterfaceName() string {
	return m.ifaceName
}

// Stanza returns the manual stanza for the interface.
func (m *Manager) Stanza() []string {
	return interfaces.ManualStanza(m.ifaceName)
}

// Apply runs the preflight checks and writes the manual stanza.
func (m *Manager) Apply(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("manual", m.ifaceName)

	if err := preflight.CheckLink(m.networkMgr, m.ifaceName, m.opts.RequireLink, logger); err != nil {
		return err
	}

	if err := m.registry.SetManual(ctx, m.ifaceName); err != nil {
		return fmt.Errorf("failed to configure %s as manual: %w", m.ifaceName, err)
	}

	logger.Info("Configured interface as manual")
	return nil
}
