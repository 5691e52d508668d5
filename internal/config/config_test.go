package config

import (
	"math"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Notebooks.Root != "notebooks" {
		t.Errorf("expected default notebooks root, got %q", cfg.Notebooks.Root)
	}
	if cfg.Export.PageSize != "letter" {
		t.Errorf("expected default page size letter, got %q", cfg.Export.PageSize)
	}
	if cfg.Web.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Web.Port)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NOTEBOOKS_ROOT", "/data/books")
	t.Setenv("EXPORT_PAGE_SIZE", "a4")
	t.Setenv("WEB_PORT", "9999")

	cfg := Load()
	if cfg.Notebooks.Root != "/data/books" {
		t.Errorf("expected overridden root, got %q", cfg.Notebooks.Root)
	}
	if cfg.Export.PageSize != "a4" {
		t.Errorf("expected a4, got %q", cfg.Export.PageSize)
	}
	if cfg.Web.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Web.Port)
	}
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	t.Setenv("WEB_PORT", "not-a-number")
	if got := Load().Web.Port; got != 8080 {
		t.Errorf("expected default port for invalid value, got %d", got)
	}
}

func TestGeometry(t *testing.T) {
	cfg := Load()

	tests := []struct {
		size       string
		pageW      float64
		contentW   float64
	}{
		{"letter", 612, 468},
		{"a4", 595.28, 451.28},
		{"a5", 419.53, 323.53},
	}
	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			g, err := cfg.GeometryFor(tt.size)
			if err != nil {
				t.Fatalf("GeometryFor(%q): %v", tt.size, err)
			}
			if math.Abs(g.PageW-tt.pageW) > 0.01 {
				t.Errorf("page width: expected %.2f, got %.2f", tt.pageW, g.PageW)
			}
			if math.Abs(g.ContentWidth()-tt.contentW) > 0.01 {
				t.Errorf("content width: expected %.2f, got %.2f", tt.contentW, g.ContentWidth())
			}
			if g.MaxImageH <= 0 {
				t.Error("max image height must be positive")
			}
		})
	}
}

func TestGeometry_UnknownSize(t *testing.T) {
	cfg := Load()
	if _, err := cfg.GeometryFor("tabloid"); err == nil {
		t.Error("expected error for unknown page size")
	}
}
