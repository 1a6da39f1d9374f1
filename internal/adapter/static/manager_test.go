//go:build unit

package static

import (
	"context"
	"fmt"
	"testing"

	"golang-ifconf/internal/mock"
	"golang-ifconf/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

func TestNewManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mock.NewMockInterfacesRegistry(ctrl)
	networkMgr := mock.NewMockNetworkManager(ctrl)

	t.Run("ValidStaticConfig", func(t *testing.T) {
		staticConfig := types.StaticIPConfig{
			IPAddress:   "192.168.1.100",
			Netmask:     "255.255.255.0",
			Gateway:     "192.168.1.1",
			Nameservers: []string{"192.168.1.1"},
		}

		manager, err := NewManager("eth0", staticConfig, registry, networkMgr, Options{})
		require.NoError(t, err)
		assert.Equal(t, "eth0", manager.GetInterfaceName())
		assert.Equal(t, []string{
			"auto eth0",
			"iface eth0 inet static",
			"    address 192.168.1.100",
			"    netmask 255.255.255.0",
			"    gateway 192.168.1.1",
			"    dns-nameservers 192.168.1.1",
		}, manager.Stanza())
	})

	t.Run("MissingAddress", func(t *testing.T) {
		_, err := NewManager("eth0", types.StaticIPConfig{Netmask: "255.255.255.0"}, registry, networkMgr, Options{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "static IP address is required")
	})

	t.Run("MissingNetmask", func(t *testing.T) {
		_, err := NewManager("eth0", types.StaticIPConfig{IPAddress: "192.168.1.100"}, registry, networkMgr, Options{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "static netmask is required")
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := NewManager("", types.StaticIPConfig{IPAddress: "a", Netmask: "b"}, registry, networkMgr, Options{})
		assert.Error(t, err)
	})
}

func TestManager_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	staticConfig := types.StaticIPConfig{IPAddress: "10.0.0.5", Netmask: "255.255.255.0"}

	t.Run("LinkMissingStillWrites", func(t *testing.T) {
		registry := mock.NewMockInterfacesRegistry(ctrl)
		networkMgr := mock.NewMockNetworkManager(ctrl)

		networkMgr.EXPECT().GetLinkByName("eth1").Return(nil, fmt.Errorf("Link not found"))
		registry.EXPECT().SetStatic(ctx, "eth1", staticConfig).Return(nil)

		manager, err := NewManager("eth1", staticConfig, registry, networkMgr, Options{})
		require.NoError(t, err)
		assert.NoError(t, manager.Apply(ctx))
	})

	t.Run("RegistryError", func(t *testing.T) {
		registry := mock.NewMockInterfacesRegistry(ctrl)
		networkMgr := mock.NewMockNetworkManager(ctrl)

		link := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "eth1"}}
		networkMgr.EXPECT().GetLinkByName("eth1").Return(link, nil)
		registry.EXPECT().SetStatic(ctx, "eth1", staticConfig).Return(fmt.Errorf("failed to read file: permission denied"))

		manager, err := NewManager("eth1", staticConfig, registry, networkMgr, Options{})
		require.NoError(t, err)

		err = manager.Apply(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to configure static address on eth1")
	})

	t.Run("RequiredLinkMissing", func(t *testing.T) {
		registry := mock.NewMockInterfacesRegistry(ctrl)
		networkMgr := mock.NewMockNetworkManager(ctrl)

		networkMgr.EXPECT().GetLinkByName("eth1").Return(nil, fmt.Errorf("Link not found"))

		manager, err := NewManager("eth1", staticConfig, registry, networkMgr, Options{RequireLink: true})
		require.NoError(t, err)
		assert.Error(t, manager.Apply(ctx))
	})
}
