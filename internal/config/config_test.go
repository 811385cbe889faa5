package config

import (
	"strings"
	"testing"

	"github.com/mohitmishra786/low-level-dev-skills/internal/catalog"
	"github.com/mohitmishra786/low-level-dev-skills/internal/plan"
)

func TestLoadDefaults(t *testing.T) {
	// Run from a temp dir so a developer's local config.yaml is not picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source != plan.DefaultSource {
		t.Fatalf("source = %q, want %q", cfg.Source, plan.DefaultSource)
	}
	if cfg.Installer != plan.DefaultInstaller {
		t.Fatalf("installer = %q, want %q", cfg.Installer, plan.DefaultInstaller)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LLDS_SOURCE", "acme/skills")
	t.Setenv("LLDS_INSTALLER", "skills install")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source != "acme/skills" {
		t.Fatalf("source = %q", cfg.Source)
	}
	if cfg.Installer != "skills install" {
		t.Fatalf("installer = %q", cfg.Installer)
	}
}

func TestResolverOptions(t *testing.T) {
	cfg := &Config{Source: "acme/skills", Installer: "skills install"}
	r := plan.NewResolver(catalog.Default(), cfg.ResolverOptions()...)

	p, err := r.Resolve(plan.SelectNames("gdb"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.HasPrefix(p.Command, "skills install acme/skills ") {
		t.Fatalf("command = %q", p.Command)
	}
}
