package interfaces

import (
	"strings"
)

// LoopbackName is always regenerated from the fixed loopback stanza.
const LoopbackName = "lo"

// State is derived from the interfaces file on every read.
type State int

const (
	StateUnknown State = iota
	// StateMissing means the interfaces file does not exist.
	StateMissing
	// StateUnconfigured means the marker line is present and the file may be regenerated.
	StateUnconfigured
	// StateHandEdited means the marker line is absent; the file must not be overwritten.
	StateHandEdited
)

var stateNames = map[State]string{
	StateUnknown:      "unknown",
	StateMissing:      "missing",
	StateUnconfigured: "unconfigured",
	StateHandEdited:   "hand-edited",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Writable reports whether the file may be regenerated.
func (s State) Writable() bool {
	return s == StateUnconfigured
}

// Block is the verbatim text of one interface, trailing whitespace removed.
type Block struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// Text returns the block as it is re-emitted: each line followed by a newline.
func (b Block) Text() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return strings.Join(b.Lines, "\n") + "\n"
}

// HookOptions returns the up/down hook lines of the block, stripped, in source order.
func (b Block) HookOptions() []string {
	var hooks []string
	for _, line := range b.Lines {
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if _, ok := hookKeywords[fields[0]]; ok {
			hooks = append(hooks, line)
		}
	}
	return hooks
}

// Config is the parsed interfaces file. Blocks keep the order in which
// interface names first appeared.
type Config struct {
	State  State   `json:"state"`
	Blocks []Block `json:"blocks"`

	index map[string]int
}

// Block returns the block for name.
func (c Config) Block(name string) (Block, bool) {
	i, ok := c.index[name]
	if !ok {
		return Block{}, false
	}
	return c.Blocks[i], true
}

// Names returns the interface names in file order.
func (c Config) Names() []string {
	names := make([]string, 0, len(c.Blocks))
	for _, b := range c.Blocks {
		names = append(names, b.Name)
	}
	return names
}

func (c *Config) appendLine(name, line string) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	i, ok := c.index[name]
	if !ok {
		c.Blocks = append(c.Blocks, Block{Name: name})
		i = len(c.Blocks) - 1
		c.index[name] = i
	}
	c.Blocks[i].Lines = append(c.Blocks[i].Lines, line)
}

// Parse lexes data and groups its lines into blocks.
//
// Lines are attributed to the name of the most recent auto/ifname line;
// a configuration line before any such line is an ErrOrphanLine.
func Parse(data []byte) (Config, error) {
	return parseTokens(Lex(data))
}

func parseTokens(tokens []Token) (Config, error) {
	cfg := Config{State: StateHandEdited}
	var current string

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenHeaderMarker:
			cfg.State = StateUnconfigured
			continue
		case TokenBlank, TokenComment:
			continue
		case TokenAuto:
			if tok.Name == "" {
				return Config{State: StateUnknown}, &ParseError{Line: tok.Line, Text: tok.Text, Err: ErrMissingName}
			}
			current = tok.Name
		}

		if current == "" {
			return Config{State: StateUnknown}, &ParseError{Line: tok.Line, Text: tok.Text, Err: ErrOrphanLine}
		}
		cfg.appendLine(current, tok.Text)
	}

	return cfg, nil
}
