// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"time"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/vishvananda/netlink"
)

// DHCPClient is a port for DHCP client operations.
// It is used to probe for a DHCP server before an interface is switched to dhcp.
type DHCPClient interface {
	// RequestLease performs DHCP DISCOVER/OFFER/REQUEST/ACK sequence
	RequestLease(ctx context.Context, interfaceName string, timeout time.Duration) (*dhcpv4.DHCPv4, error)
}

// NetworkManager is a port for network interface lookups.
// This interface abstracts the netlink queries needed before writing configuration.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListLinks returns all links known to the kernel
	ListLinks() ([]netlink.Link, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations and advisory locking.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile replaces the contents of a file atomically.
	// A perm of 0 keeps the mode of the existing file.
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool

	// Lock takes an exclusive advisory lock for filename and returns the
	// function releasing it.
	Lock(ctx context.Context, filename string) (func() error, error)
}
