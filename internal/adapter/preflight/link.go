// Package preflight holds checks run by the configuration adapters before
// they write the interfaces file.
package preflight

import (
	"fmt"

	"golang-ifconf/internal/port"

	"github.com/sirupsen/logrus"
)

// CheckLink looks ifname up via netlink. A missing link is only an error when
// required is set; otherwise a warning is logged.
func CheckLink(networkMgr port.NetworkManager, ifname string, required bool, logger *logrus.Entry) error {
	link, err := networkMgr.GetLinkByName(ifname)
	if err != nil {
		if required {
			return fmt.Errorf("interface %s not present: %w", ifname, err)
		}
		logger.WithError(err).Warn("Interface not present, writing configuration anyway")
		return nil
	}

	attrs := link.Attrs()
	logger.WithFields(logrus.Fields{
		"index": attrs.Index,
		"mac":   attrs.HardwareAddr.String(),
	}).Debug("Interface present")
	return nil
}
