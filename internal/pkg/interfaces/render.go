package interfaces

import (
	"strings"

	"golang-ifconf/internal/types"
)

const (
	// MarkerLine marks a file that has not been edited by hand and may be regenerated.
	MarkerLine = "# UNCONFIGURED INTERFACES"
	markerHint = "# remove the above line if you edit this file"

	optionIndent = "    "
)

// hookKeywords are the options carried over from the previous stanza of a reconfigured interface.
var hookKeywords = map[string]struct{}{
	"pre-up":    {},
	"up":        {},
	"post-up":   {},
	"pre-down":  {},
	"down":      {},
	"post-down": {},
}

// Header returns the two-line header written at the top of every generated file.
func Header() []string {
	return []string{MarkerLine, markerHint}
}

// Loopback returns the fixed loopback stanza.
func Loopback() []string {
	return []string{"auto " + LoopbackName, "iface " + LoopbackName + " inet loopback"}
}

// DHCPStanza returns the stanza configuring ifname for dhcp.
func DHCPStanza(ifname string) []string {
	return []string{"auto " + ifname, "iface " + ifname + " inet dhcp"}
}

// ManualStanza returns the stanza configuring ifname as manual.
func ManualStanza(ifname string) []string {
	return []string{"auto " + ifname, "iface " + ifname + " inet manual"}
}

// StaticStanza returns the stanza configuring ifname with a static address.
// The gateway and dns-nameservers lines are only present when set.
func StaticStanza(ifname string, config types.StaticIPConfig) []string {
	stanza := []string{
		"auto " + ifname,
		"iface " + ifname + " inet static",
		optionIndent + "address " + config.IPAddress,
		optionIndent + "netmask " + config.Netmask,
	}

	if config.Gateway != "" {
		stanza = append(stanza, optionIndent+"gateway "+config.Gateway)
	}
	if len(config.Nameservers) > 0 {
		stanza = append(stanza, optionIndent+"dns-nameservers "+strings.Join(config.Nameservers, " "))
	}

	return stanza
}

// Render regenerates the interfaces file with stanza replacing the block of ifname.
//
// Hook options from the previous block of ifname are appended to stanza.
// All blocks other than lo and ifname are copied verbatim in file order.
func Render(cfg Config, ifname string, stanza []string) string {
	lines := append([]string(nil), stanza...)
	if prev, ok := cfg.Block(ifname); ok {
		for _, hook := range prev.HookOptions() {
			lines = append(lines, optionIndent+hook)
		}
	}

	var b strings.Builder
	writeSection(&b, Header())
	writeSection(&b, Loopback())
	writeSection(&b, lines)

	for _, block := range cfg.Blocks {
		if block.Name == LoopbackName || block.Name == ifname {
			continue
		}
		b.WriteString(block.Text())
		b.WriteString("\n")
	}

	return b.String()
}

func writeSection(b *strings.Builder, lines []string) {
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
}
