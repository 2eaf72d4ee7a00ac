package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PageConfig configures the render command from a YAML file.
type PageConfig struct {
	Title  string `yaml:"title"`
	CSS    string `yaml:"css"`    // path to a stylesheet file to inline
	Output string `yaml:"output"` // output HTML path
}

// LoadPage reads a page configuration from the YAML file at path.
func LoadPage(path string) (*PageConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pc PageConfig
	if err := yaml.Unmarshal(b, &pc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &pc, nil
}
