//go:build unit

package interfaces

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `# UNCONFIGURED INTERFACES
# remove the above line if you edit this file

auto lo
iface lo inet loopback

auto eth0
iface eth0 inet static
    address 10.0.0.5
    netmask 255.255.255.0
    up echo hi

auto eth1
iface eth1 inet dhcp
    post-up ip route add 10.1.0.0/16 dev eth1
`

func TestParse(t *testing.T) {
	t.Run("SampleFile", func(t *testing.T) {
		cfg, err := Parse([]byte(sampleFile))
		require.NoError(t, err)

		assert.Equal(t, StateUnconfigured, cfg.State)
		assert.Equal(t, []string{"lo", "eth0", "eth1"}, cfg.Names())

		eth0, ok := cfg.Block("eth0")
		require.True(t, ok)
		assert.Equal(t, []string{
			"auto eth0",
			"iface eth0 inet static",
			"    address 10.0.0.5",
			"    netmask 255.255.255.0",
			"    up echo hi",
		}, eth0.Lines)
	})

	t.Run("NoMarkerIsHandEdited", func(t *testing.T) {
		cfg, err := Parse([]byte("auto eth0\niface eth0 inet dhcp\n"))
		require.NoError(t, err)
		assert.Equal(t, StateHandEdited, cfg.State)
		assert.False(t, cfg.State.Writable())
	})

	t.Run("MarkerAnywhere", func(t *testing.T) {
		cfg, err := Parse([]byte("auto eth0\niface eth0 inet dhcp\n# UNCONFIGURED INTERFACES\n"))
		require.NoError(t, err)
		assert.Equal(t, StateUnconfigured, cfg.State)
	})

	t.Run("LaterLinesAppendToExistingBlock", func(t *testing.T) {
		input := "auto eth0\niface eth0 inet dhcp\nauto eth1\niface eth1 inet manual\nauto eth0\n    up true\n"
		cfg, err := Parse([]byte(input))
		require.NoError(t, err)

		assert.Equal(t, []string{"eth0", "eth1"}, cfg.Names())
		eth0, _ := cfg.Block("eth0")
		assert.Equal(t, []string{"auto eth0", "iface eth0 inet dhcp", "auto eth0", "    up true"}, eth0.Lines)
	})

	t.Run("IfnameOpensContext", func(t *testing.T) {
		cfg, err := Parse([]byte("ifname wlan0\n    wpa-ssid home\n"))
		require.NoError(t, err)
		wlan0, ok := cfg.Block("wlan0")
		require.True(t, ok)
		assert.Equal(t, "ifname wlan0\n    wpa-ssid home\n", wlan0.Text())
	})

	t.Run("IfaceStaysInCurrentContext", func(t *testing.T) {
		cfg, err := Parse([]byte("auto eth0\niface eth0 inet dhcp\niface eth0:1 inet static\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"eth0"}, cfg.Names())
	})

	t.Run("IndentedAutoStaysInCurrentContext", func(t *testing.T) {
		cfg, err := Parse([]byte("auto eth0\niface eth0 inet dhcp\n    auto eth1\n    up echo a\n"))
		require.NoError(t, err)

		assert.Equal(t, []string{"eth0"}, cfg.Names())
		eth0, _ := cfg.Block("eth0")
		assert.Equal(t, []string{"auto eth0", "iface eth0 inet dhcp", "    auto eth1", "    up echo a"}, eth0.Lines)
	})

	t.Run("IndentedAutoBeforeContextIsOrphan", func(t *testing.T) {
		_, err := Parse([]byte("  auto eth0\niface eth0 inet dhcp\n"))
		assert.ErrorIs(t, err, ErrOrphanLine)
	})

	t.Run("CommentsAndBlanksAreDropped", func(t *testing.T) {
		cfg, err := Parse([]byte("auto eth0\n\n# note\niface eth0 inet dhcp\n"))
		require.NoError(t, err)
		eth0, _ := cfg.Block("eth0")
		assert.Equal(t, []string{"auto eth0", "iface eth0 inet dhcp"}, eth0.Lines)
	})

	t.Run("OrphanLine", func(t *testing.T) {
		_, err := Parse([]byte("# UNCONFIGURED INTERFACES\n\niface eth0 inet dhcp\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOrphanLine))

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 3, parseErr.Line)
		assert.Equal(t, "iface eth0 inet dhcp", parseErr.Text)
	})

	t.Run("AutoWithoutName", func(t *testing.T) {
		_, err := Parse([]byte("auto\n"))
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("Empty", func(t *testing.T) {
		cfg, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, StateHandEdited, cfg.State)
		assert.Empty(t, cfg.Blocks)
	})
}

func TestBlock_HookOptions(t *testing.T) {
	block := Block{Name: "eth0", Lines: []string{
		"auto eth0",
		"iface eth0 inet static",
		"    address 10.0.0.5",
		"    post-down ip route del default",
		"  pre-up   ip link set eth0 up  ",
		"    up-something else",
		"    down ifdown eth0:1",
		"    dns-nameservers 1.1.1.1",
	}}

	assert.Equal(t, []string{
		"post-down ip route del default",
		"pre-up   ip link set eth0 up",
		"down ifdown eth0:1",
	}, block.HookOptions())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unconfigured", StateUnconfigured.String())
	assert.Equal(t, "hand-edited", StateHandEdited.String())
	assert.Equal(t, "missing", StateMissing.String())
	assert.Equal(t, "unknown", State(99).String())

	text, err := StateHandEdited.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "hand-edited", string(text))
}
