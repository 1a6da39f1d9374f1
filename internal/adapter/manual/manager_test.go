//go:build unit

package manual

import (
	"context"
	"testing"

	"golang-ifconf/internal/mock"
	"golang-ifconf/internal/pkg/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

func TestManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	link := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "eth2"}}

	t.Run("EmptyName", func(t *testing.T) {
		_, err := NewManager("", nil, nil, Options{})
		assert.Error(t, err)
	})

	t.Run("Apply", func(t *testing.T) {
		registry := mock.NewMockInterfacesRegistry(ctrl)
		networkMgr := mock.NewMockNetworkManager(ctrl)

		networkMgr.EXPECT().GetLinkByName("eth2").Return(link, nil)
		registry.EXPECT().SetManual(ctx, "eth2").Return(nil)

		manager, err := NewManager("eth2", registry, networkMgr, Options{RequireLink: true})
		require.NoError(t, err)
		assert.Equal(t, "eth2", manager.GetInterfaceName())
		assert.Equal(t, []string{"auto eth2", "iface eth2 inet manual"}, manager.Stanza())
		assert.NoError(t, manager.Apply(ctx))
	})

	t.Run("GuardViolation", func(t *testing.T) {
		registry := mock.NewMockInterfacesRegistry(ctrl)
		networkMgr := mock.NewMockNetworkManager(ctrl)

		networkMgr.EXPECT().GetLinkByName("eth2").Return(link, nil)
		registry.EXPECT().SetManual(ctx, "eth2").Return(&interfaces.GuardError{Path: "/etc/network/interfaces"})

		manager, err := NewManager("eth2", registry, networkMgr, Options{})
		require.NoError(t, err)
		assert.ErrorIs(t, manager.Apply(ctx), interfaces.ErrGuardViolation)
	})
}
