package dhcp

import (
	"context"
	"fmt"
	"time"

	"golang-ifconf/internal/adapter/preflight"
	"golang-ifconf/internal/pkg/interfaces"
	"golang-ifconf/internal/pkg/logging"
	"golang-ifconf/internal/port"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/sirupsen/logrus"
)

// Options controls the checks run before the dhcp stanza is written.
type Options struct {
	// RequireLink fails Apply when the interface does not exist.
	RequireLink bool
	// Probe requests a lease before writing, so an interface is only switched
	// to dhcp when a server answers.
	Probe         bool
	ProbeTimeout  time.Duration
	ProbeAttempts int
}

// Manager is a DHCP network configuration adapter that implements the NetworkConfigurationManager port.
// It writes an "inet dhcp" stanza for one interface following the Ports and Adapters pattern.
type Manager struct {
	ifaceName  string
	registry   port.InterfacesRegistry
	networkMgr port.NetworkManager
	dhcpClient port.DHCPClient
	opts       Options
}

// Ensure Manager implements the NetworkConfigurationManager port
var _ port.NetworkConfigurationManager = (*Manager)(nil)

// NewManager creates a new DHCP network configuration adapter for the given interface name.
func NewManager(ifaceName string, registry port.InterfacesRegistry, networkMgr port.NetworkManager, dhcpClient port.DHCPClient, opts Options) (*Manager, error) {
	if ifaceName == "" {
		return nil, fmt.Errorf("interface name is required")
	}
	if opts.Probe {
		if dhcpClient == nil {
			return nil, fmt.Errorf("DHCP probe requested without a DHCP client")
		}
		if opts.ProbeTimeout <= 0 {
			opts.ProbeTimeout = 10 * time.Second
		}
		if opts.ProbeAttempts <= 0 {
			opts.ProbeAttempts = 1
		}
	}

	return &Manager{
		ifaceName:  ifaceName,
		registry:   registry,
		networkMgr: networkMgr,
		dhcpClient: dhcpClient,
		opts:       opts,
	}, nil
}

// GetInterfaceName returns the name of the network interface managed by this manager.
func (m *Manager) GetInterfaceName() string {
	return m.ifaceName
}

// Stanza returns the dhcp stanza for the interface.
func (m *Manager) Stanza() []string {
	return interfaces.DHCPStanza(m.ifaceName)
}

// Apply runs the preflight checks and writes the dhcp stanza.
func (m *Manager) Apply(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("dhcp", m.ifaceName)

	if err := preflight.CheckLink(m.networkMgr, m.ifaceName, m.opts.RequireLink, logger); err != nil {
		return err
	}

	if m.opts.Probe {
		ack, err := m.probe(ctx, logger)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"ip":     ack.YourIPAddr.String(),
			"server": ack.ServerIdentifier().String(),
		}).Info("DHCP server answered probe")
	}

	if err := m.registry.SetDHCP(ctx, m.ifaceName); err != nil {
		return fmt.Errorf("failed to configure %s for dhcp: %w", m.ifaceName, err)
	}

	logger.Info("Configured interface for DHCP")
	return nil
}

// probe requests a lease, retrying up to ProbeAttempts times
func (m *Manager) probe(ctx context.Context, logger *logrus.Entry) (*dhcpv4.DHCPv4, error) {
	const retryDelay = 2 * time.Second

	var lastErr error
	for attempt := 1; attempt <= m.opts.ProbeAttempts; attempt++ {
		logger.WithField("attempt", fmt.Sprintf("%d/%d", attempt, m.opts.ProbeAttempts)).Debug("Probing for DHCP server")

		ack, err := m.dhcpClient.RequestLease(ctx, m.ifaceName, m.opts.ProbeTimeout)
		if err == nil {
			return ack, nil
		}
		lastErr = err
		logger.WithError(err).WithField("attempt", attempt).Warn("DHCP probe failed")

		if attempt < m.opts.ProbeAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}

	return nil, fmt.Errorf("no DHCP server answered on %s after %d attempts: %w", m.ifaceName, m.opts.ProbeAttempts, lastErr)
}
