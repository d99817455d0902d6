// Package yaml loads and saves extraction profiles as YAML files.
package yaml

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/infobox"
	"gopkg.in/yaml.v3"
)

// LoadProfile reads a profile from path. Fields missing from the file keep
// their default values. A missing file yields ENOTFOUND.
func LoadProfile(path string) (*infobox.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, infobox.Errorf(infobox.ENOTFOUND, "profile %s not found", path)
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a profile from YAML on top of the defaults.
func ParseProfile(data []byte) (*infobox.Profile, error) {
	p := infobox.DefaultProfile()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, infobox.Errorf(infobox.EINVALID, "failed to parse profile: %v", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// SaveProfile writes a profile to path, creating parent directories.
func SaveProfile(path string, p *infobox.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}
