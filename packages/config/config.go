package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/apiglue/reqwrap/packages/client"
)

// File represents the on-disk reqwrap configuration.
type File struct {
	BaseURL string            `yaml:"baseUrl,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty"` // Default headers for all requests
	Proxy   *Proxy            `yaml:"proxy,omitempty"`
	Debug   *bool             `yaml:"debug,omitempty"`
	Timeout int               `yaml:"timeout,omitempty"` // milliseconds
}

// Proxy is the on-disk proxy spec.
type Proxy struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Scheme   string `yaml:"scheme"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetDebug returns the debug setting, defaulting to false
func (f *File) GetDebug() bool {
	return getBool(f.Debug, false)
}

// Filenames contains the possible config file names, in search order.
var Filenames = []string{
	".reqwrap.yaml",
	".reqwrap.yml",
	"reqwrap.yaml",
}

// Default returns an empty configuration.
func Default() *File {
	return &File{}
}

// Load loads configuration from the specified path, or searches the
// current directory when path is empty.
func Load(path string) (*File, error) {
	if path != "" {
		return loadFromFile(path)
	}
	return FindAndLoad(".")
}

// FindAndLoad searches for a config file in the given directory,
// returning defaults if none is found.
func FindAndLoad(dir string) (*File, error) {
	for _, filename := range Filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return loadFromFile(path)
		}
	}
	return Default(), nil
}

func loadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Merge merges another config into this one, with other taking
// precedence. Header maps merge key-wise.
func (f *File) Merge(other *File) *File {
	if other == nil {
		return f
	}

	result := *f // Copy

	if other.BaseURL != "" {
		result.BaseURL = other.BaseURL
	}
	if other.Proxy != nil {
		result.Proxy = other.Proxy
	}
	if other.Debug != nil {
		result.Debug = other.Debug
	}
	if other.Timeout > 0 {
		result.Timeout = other.Timeout
	}
	if len(other.Headers) > 0 {
		merged := make(map[string]string, len(f.Headers)+len(other.Headers))
		for k, v := range f.Headers {
			merged[k] = v
		}
		for k, v := range other.Headers {
			merged[k] = v
		}
		result.Headers = merged
	}

	return &result
}

// ClientConfig converts the file into a client.Config.
func (f *File) ClientConfig() client.Config {
	cfg := client.Config{
		BaseURL:        f.BaseURL,
		DefaultHeaders: f.Headers,
		Debug:          f.GetDebug(),
	}
	if f.Proxy != nil {
		cfg.Proxy = &client.ProxySpec{
			Host:     f.Proxy.Host,
			Port:     f.Proxy.Port,
			Scheme:   f.Proxy.Scheme,
			Username: f.Proxy.Username,
			Password: f.Proxy.Password,
		}
	}
	return cfg
}
