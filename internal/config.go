package internal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App  ApplicationConfig `yaml:"app"`
	Docs DocsConfig        `yaml:"docs"`
	CORS CORSConfig        `yaml:"cors"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Docs.Validate()
}

// ApplyEnv applies environment variable overrides. DOCS_ROOT and
// MARKDOWN_EXTENSIONS take precedence over the config file when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DOCS_ROOT"); v != "" {
		c.Docs.Root = v
	}
	if v := os.Getenv("MARKDOWN_EXTENSIONS"); v != "" {
		c.Docs.MarkdownExtensions = v
	}
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the HTTP server bind address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// DocsConfig holds the documentation root and Markdown rendering options.
//
// MarkdownExtensions is a comma-separated list of rendering extensions.
// Recognized names: fenced_code, codehilite, tables, toc, extra.
type DocsConfig struct {
	Root               string `yaml:"root"`
	MarkdownExtensions string `yaml:"markdown_extensions"`
}

// Validate validates the docs configuration.
func (c *DocsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
	)
}

// ExtensionList returns the configured Markdown extensions as a cleaned slice.
func (c *DocsConfig) ExtensionList() []string {
	var out []string
	for _, ext := range strings.Split(c.MarkdownExtensions, ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

// CORSConfig holds cross-origin settings for the HTTP surface.
type CORSConfig struct {
	Enabled        bool   `yaml:"enabled"`
	AllowedOrigins string `yaml:"allowed_origins"`
}

// Origins returns the allowed origins as a slice, defaulting to "*".
func (c *CORSConfig) Origins() []string {
	if strings.TrimSpace(c.AllowedOrigins) == "" || c.AllowedOrigins == "*" {
		return []string{"*"}
	}
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Docs: DocsConfig{
			Root:               "./docs",
			MarkdownExtensions: "fenced_code,codehilite,tables,toc,extra",
		},
		CORS: CORSConfig{
			Enabled:        true,
			AllowedOrigins: "*",
		},
	}
}
