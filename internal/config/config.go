package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/journal-press/internal/layout"
)

//go:embed pagesizes.yaml
var pageSizesYAML []byte

// Config holds the full application configuration, read from environment
// variables with an embedded table of named page sizes.
type Config struct {
	Notebooks NotebooksConfig
	Export    ExportConfig
	Web       WebConfig
	Sizes     PageSizesConfig
}

// NotebooksConfig locates the file-backed record store.
type NotebooksConfig struct {
	Root string // directory containing {slug}/notebook.json layouts
}

// ExportConfig controls PDF export defaults.
type ExportConfig struct {
	OutputDir string // where exported PDFs land unless an explicit path is given
	PageSize  string // named page size from pagesizes.yaml ("letter", "a4", "a5")
}

// WebConfig holds web server defaults; serve command flags take precedence.
type WebConfig struct {
	Host string
	Port int
}

// PageSizesConfig is the embedded table of named page geometries.
type PageSizesConfig struct {
	Sizes map[string]PageSize `yaml:"sizes"`
}

// PageSize mirrors layout.Geometry for YAML decoding.
type PageSize struct {
	PageW        float64 `yaml:"page_w"`
	PageH        float64 `yaml:"page_h"`
	MarginLeft   float64 `yaml:"margin_left"`
	MarginRight  float64 `yaml:"margin_right"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom"`
	MaxImageH    float64 `yaml:"max_image_h"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable with a default.
func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// Load builds the configuration from the environment and the embedded page
// size table.
func Load() *Config {
	var sizes PageSizesConfig
	if err := yaml.Unmarshal(pageSizesYAML, &sizes); err != nil {
		// Embedded file, so this can only happen on a bad edit.
		panic("failed to unmarshal embedded pagesizes.yaml: " + err.Error())
	}

	return &Config{
		Notebooks: NotebooksConfig{
			Root: envString("NOTEBOOKS_ROOT", "notebooks"),
		},
		Export: ExportConfig{
			OutputDir: envString("EXPORT_OUTPUT_DIR", "exports"),
			PageSize:  envString("EXPORT_PAGE_SIZE", "letter"),
		},
		Web: WebConfig{
			Host: envString("WEB_HOST", "0.0.0.0"),
			Port: envInt("WEB_PORT", 8080),
		},
		Sizes: sizes,
	}
}

// Geometry resolves the configured page size name into a layout geometry.
func (c *Config) Geometry() (layout.Geometry, error) {
	return c.GeometryFor(c.Export.PageSize)
}

// GeometryFor resolves a named page size into a layout geometry.
func (c *Config) GeometryFor(name string) (layout.Geometry, error) {
	ps, ok := c.Sizes.Sizes[name]
	if !ok {
		return layout.Geometry{}, fmt.Errorf("unknown page size %q", name)
	}
	return layout.Geometry{
		PageW:        ps.PageW,
		PageH:        ps.PageH,
		MarginLeft:   ps.MarginLeft,
		MarginRight:  ps.MarginRight,
		MarginTop:    ps.MarginTop,
		MarginBottom: ps.MarginBottom,
		MaxImageH:    ps.MaxImageH,
	}, nil
}
