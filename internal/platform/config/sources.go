package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourceConfig describes one CDN source. Nil HTTPS and Subdomains mean
// "use the default" (both default to true); an empty Host means the default host.
type SourceConfig struct {
	Name       string `yaml:"name"`
	Host       string `yaml:"host"`
	HTTPS      *bool  `yaml:"https"`
	Port       int    `yaml:"port"`
	Subdomains *bool  `yaml:"subdomains"`
	SecureKey  string `yaml:"secure_key"`
	SecureSalt string `yaml:"secure_salt"`
}

// SourcesFile is the layout of the YAML source catalog.
type SourcesFile struct {
	Sources []SourceConfig `yaml:"sources"`
}

// LoadSources reads the source catalog at path. A missing file yields no
// sources and no error so the server can run from env configuration alone.
func LoadSources(path string) ([]SourceConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}
	return ParseSources(data)
}

// ParseSources decodes a YAML source catalog.
func ParseSources(data []byte) ([]SourceConfig, error) {
	var f SourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}
	return f.Sources, nil
}

// SourceFromEnv builds a SourceConfig from IMGLAB_* variables. ok is false
// when IMGLAB_SOURCE is unset.
func SourceFromEnv() (cfg SourceConfig, ok bool) {
	name := GetEnv("IMGLAB_SOURCE", "")
	if name == "" {
		return SourceConfig{}, false
	}
	https := GetEnvBool("IMGLAB_HTTPS", true)
	subdomains := GetEnvBool("IMGLAB_SUBDOMAINS", true)
	return SourceConfig{
		Name:       name,
		Host:       GetEnv("IMGLAB_HOST", ""),
		HTTPS:      &https,
		Port:       GetEnvInt("IMGLAB_PORT", 0),
		Subdomains: &subdomains,
		SecureKey:  GetEnv("IMGLAB_SECURE_KEY", ""),
		SecureSalt: GetEnv("IMGLAB_SECURE_SALT", ""),
	}, true
}
