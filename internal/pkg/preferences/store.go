// Package preferences persists local console preferences.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang-ifconf/internal/pkg/logging"
	"golang-ifconf/internal/port"

	"go.uber.org/multierr"
)

const (
	// DefaultPath is the preferences file.
	DefaultPath = "/etc/confconsole.conf"

	keyDefaultNIC = "default_nic"
)

// ErrMalformedPreference matches a *PreferenceError.
var ErrMalformedPreference = errors.New("illegal configuration line")

// PreferenceError reports a line with an unknown key or without a value.
type PreferenceError struct {
	Path string
	Line int
	Text string
}

func (e *PreferenceError) Error() string {
	return fmt.Sprintf("%s:%d: illegal configuration line: %s", e.Path, e.Line, e.Text)
}

// Is reports whether target is ErrMalformedPreference.
func (e *PreferenceError) Is(target error) bool {
	return target == ErrMalformedPreference
}

var separator = regexp.MustCompile(`\s+`)

// Store holds the preferences of one file. The file is fully owned by the
// store; every mutation rewrites it.
type Store struct {
	path  string
	files port.FileManager

	defaultNIC    string
	hasDefaultNIC bool
}

// Ensure Store implements the PreferenceStore port
var _ port.PreferenceStore = (*Store)(nil)

// NewStore creates a store for path. It does not read the file; call Load.
func NewStore(path string, files port.FileManager) *Store {
	return &Store{path: path, files: files}
}

// Path returns the preferences file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the preferences file. A missing file is not an error and
// leaves every preference unset.
func (s *Store) Load() error {
	s.defaultNIC, s.hasDefaultNIC = "", false

	if !s.files.FileExists(s.path) {
		logging.WithComponent("preferences").WithField("path", s.path).Debug("Preferences file not found")
		return nil
	}

	data, err := s.files.ReadFile(s.path)
	if err != nil {
		return err
	}

	var (
		defaultNIC    string
		hasDefaultNIC bool
	)
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := separator.Split(line, 2)
		if len(parts) != 2 || parts[0] != keyDefaultNIC {
			return &PreferenceError{Path: s.path, Line: i + 1, Text: line}
		}
		defaultNIC, hasDefaultNIC = parts[1], true
	}

	s.defaultNIC, s.hasDefaultNIC = defaultNIC, hasDefaultNIC
	return nil
}

// DefaultNIC returns the default network interface, if one is set.
func (s *Store) DefaultNIC() (string, bool) {
	return s.defaultNIC, s.hasDefaultNIC
}

// SetDefaultNIC records ifname as the default interface and rewrites the file.
func (s *Store) SetDefaultNIC(ctx context.Context, ifname string) (err error) {
	s.defaultNIC, s.hasDefaultNIC = ifname, true

	unlock, err := s.files.Lock(ctx, s.path)
	if err != nil {
		return fmt.Errorf("failed to lock preferences file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, unlock())
	}()

	content := fmt.Sprintf("%s %s\n", keyDefaultNIC, ifname)
	if err := s.files.WriteFile(s.path, []byte(content), 0); err != nil {
		return err
	}

	logging.WithComponentAndInterface("preferences", ifname).WithField("path", s.path).Info("Stored default interface")
	return nil
}
