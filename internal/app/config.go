package app

import (
	"errors"
	"fmt"
)

// Command names accepted by Run.
const (
	CommandResolve = "resolve"
	CommandList    = "list"
	CommandLink    = "link"
	CommandExpand  = "expand"
	CommandExport  = "export"
	CommandCheck   = "check"
)

// argBounds is the accepted positional argument count per command; max < 0
// means unbounded.
var argBounds = map[string]struct{ min, max int }{
	CommandResolve: {1, -1},
	CommandList:    {0, 0},
	CommandLink:    {1, -1},
	CommandExpand:  {1, 1},
	CommandExport:  {1, 1},
	CommandCheck:   {0, 0},
}

// Config holds everything an App needs to run a single command.
type Config struct {
	ConfigPaths []string // .hcl, .yaml/.yml or .js files, or directories of them
	Command     string
	Args        []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("at least one configuration path is required")
	}
	if cfg.Command == "" {
		return nil, errors.New("a command is required")
	}

	bounds, ok := argBounds[cfg.Command]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
	n := len(cfg.Args)
	if n < bounds.min || (bounds.max >= 0 && n > bounds.max) {
		switch {
		case bounds.max == 0:
			return nil, fmt.Errorf("command %q takes no arguments", cfg.Command)
		case bounds.max < 0:
			return nil, fmt.Errorf("command %q requires at least %d argument(s)", cfg.Command, bounds.min)
		default:
			return nil, fmt.Errorf("command %q requires exactly %d argument(s)", cfg.Command, bounds.min)
		}
	}

	return &cfg, nil
}
