package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

var ErrInvalidRule = errors.New("invalid rule")

type Config struct {
	Path  Path    `json:"-"`
	Shell string  `json:"shell"`
	Rules Ruleset `json:"rules"`
}

// Path is a config file location that may start with "~".
type Path string

func (p Path) String() string {
	return string(p)
}

// ExpandUser expands a bare "~" or a leading "~/" to the current user's
// home directory. Other "~user" forms are returned unchanged.
func (p Path) ExpandUser() (string, error) {
	s := string(p)
	if s != "~" && !strings.HasPrefix(s, "~/") {
		return s, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand %w", err)
	}
	return home + s[1:], nil
}

func ParseConfigFile(path Path) (*Config, error) {
	s, err := path.ExpandUser()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(s)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	c, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	c.Path = path
	return c, nil
}

// ParseConfig decodes YAML (or JSON) config data and validates it.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every rule and fills in default names.
func (c *Config) Validate() error {
	for i, r := range c.Rules {
		if r == nil {
			return fmt.Errorf("rule %d: %w: empty", i, ErrInvalidRule)
		}
		if len(r.Args) == 0 {
			return fmt.Errorf("rule %d: %w: args are required", i, ErrInvalidRule)
		}
		if strings.TrimSpace(r.Run) == "" {
			return fmt.Errorf("rule %d (%s): %w: run is required", i, r.Args, ErrInvalidRule)
		}
		if r.Name == "" {
			r.Name = r.Args.String()
		}
	}
	return nil
}
