// Package config loads the YAML resolver configuration that supplies
// default nameservers, transport, and timeout for the CLI driver.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML shape. Every field is optional; the driver
// layers command-line flags on top of whatever this supplies.
type File struct {
	Nameservers []string `yaml:"nameservers"`
	Transport   string   `yaml:"transport"`
	TimeoutMS   int      `yaml:"timeout_ms"`
	Cookies     bool     `yaml:"cookies"`
}

// Timeout returns the configured timeout, or zero if unset, in which case
// the driver keeps the -timeout flag's value.
func (f *File) Timeout() time.Duration {
	if f.TimeoutMS <= 0 {
		return 0
	}
	return time.Duration(f.TimeoutMS) * time.Millisecond
}

// Load reads and parses a YAML config file. A missing path is not an
// error — it returns an empty File so the driver falls through entirely
// to flag defaults.
func Load(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
