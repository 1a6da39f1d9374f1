// Package types defines common types used across the application.
package types

// StaticIPConfig represents static IP configuration parameters.
// Values are passed through to the interfaces file uninterpreted.
type StaticIPConfig struct {
	IPAddress   string   `yaml:"ip" json:"ip"`                                       // IP address (e.g., "192.168.1.100")
	Netmask     string   `yaml:"netmask" json:"netmask"`                             // Subnet mask (e.g., "255.255.255.0")
	Gateway     string   `yaml:"gateway,omitempty" json:"gateway,omitempty"`         // Default gateway (optional)
	Nameservers []string `yaml:"nameservers,omitempty" json:"nameservers,omitempty"` // DNS servers in order (optional)
}
