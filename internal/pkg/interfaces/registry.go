// Package interfaces reads and regenerates the ifupdown interfaces file.
//
// A file is only regenerated while it carries the "# UNCONFIGURED INTERFACES"
// marker line. Regeneration replaces the stanza of a single interface, keeps
// its up/down hook options, and copies every other interface verbatim.
package interfaces

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang-ifconf/internal/pkg/logging"
	"golang-ifconf/internal/port"
	"golang-ifconf/internal/types"

	"go.uber.org/multierr"
)

// DefaultPath is the ifupdown interfaces file.
const DefaultPath = "/etc/network/interfaces"

// Registry owns one interfaces file.
type Registry struct {
	path   string
	files  port.FileManager
	config Config
}

// Ensure Registry implements the InterfacesRegistry port
var _ port.InterfacesRegistry = (*Registry)(nil)

// NewRegistry creates a registry for path. It does not read the file; call Load.
func NewRegistry(path string, files port.FileManager) *Registry {
	return &Registry{
		path:   path,
		files:  files,
		config: Config{State: StateUnknown},
	}
}

// Path returns the interfaces file path.
func (r *Registry) Path() string {
	return r.path
}

// Load reads and parses the file, replacing the in-memory configuration.
// A missing file leaves the registry in StateMissing and returns the read error.
func (r *Registry) Load() error {
	_, cfg, err := r.read()
	r.config = cfg
	return err
}

// Config returns the configuration from the last Load.
func (r *Registry) Config() Config {
	return r.config
}

// State returns the state from the last Load.
func (r *Registry) State() State {
	return r.config.State
}

// SetDHCP configures ifname for dhcp.
func (r *Registry) SetDHCP(ctx context.Context, ifname string) error {
	return r.Write(ctx, ifname, DHCPStanza(ifname))
}

// SetManual configures ifname as manual.
func (r *Registry) SetManual(ctx context.Context, ifname string) error {
	return r.Write(ctx, ifname, ManualStanza(ifname))
}

// SetStatic configures ifname with a static address. Values are not validated.
func (r *Registry) SetStatic(ctx context.Context, ifname string, config types.StaticIPConfig) error {
	return r.Write(ctx, ifname, StaticStanza(ifname, config))
}

// Write re-reads the file under an advisory lock, checks the marker line and
// replaces the file with the rendered configuration. The in-memory
// configuration of the registry is not updated.
func (r *Registry) Write(ctx context.Context, ifname string, stanza []string) (err error) {
	logger := logging.WithComponentAndInterface("interfaces", ifname).WithField("path", r.path)

	unlock, err := r.files.Lock(ctx, r.path)
	if err != nil {
		return fmt.Errorf("failed to lock interfaces file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, unlock())
	}()

	_, proposed, err := r.preview(ifname, stanza)
	if err != nil {
		if errors.Is(err, ErrGuardViolation) {
			logger.WithError(err).Warn("Refusing to overwrite interfaces file")
		}
		return err
	}

	if err := r.files.WriteFile(r.path, []byte(proposed), 0); err != nil {
		return err
	}

	logger.WithField("lines", len(stanza)).Info("Wrote interfaces file")
	return nil
}

// Preview returns the current file content and the content Write would produce,
// applying the same guard as Write.
func (r *Registry) Preview(ifname string, stanza []string) (current, proposed string, err error) {
	return r.preview(ifname, stanza)
}

func (r *Registry) preview(ifname string, stanza []string) (string, string, error) {
	data, cfg, err := r.read()
	if err != nil {
		return "", "", err
	}
	if !cfg.State.Writable() {
		return "", "", &GuardError{Path: r.path, State: cfg.State}
	}
	return string(data), Render(cfg, ifname, stanza), nil
}

func (r *Registry) read() ([]byte, Config, error) {
	data, err := r.files.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, Config{State: StateMissing}, err
		}
		return nil, Config{State: StateUnknown}, err
	}

	cfg, err := Parse(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = r.path
		}
		return nil, cfg, err
	}

	logging.WithComponent("interfaces").WithFields(map[string]interface{}{
		"path":       r.path,
		"state":      cfg.State.String(),
		"interfaces": len(cfg.Blocks),
	}).Debug("Parsed interfaces file")

	return data, cfg, nil
}
