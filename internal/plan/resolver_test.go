package plan

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mohitmishra786/low-level-dev-skills/internal/catalog"
)

const fixtureYAML = `
skills:
  - {name: gdb, category: debuggers, description: GNU debugger}
  - {name: lldb, category: debuggers, description: LLVM debugger}
  - {name: core-dumps, category: debuggers, description: Post-mortem debugging}
  - {name: strace, category: tracing, description: Syscall tracing}
  - {name: rustc-basics, category: rust, description: rustc invocations}
  - {name: rust-ffi, category: rust, description: C interop}
bundles:
  - tag: debugging
    label: Debugging Starter
    description: Core debugger workflow
    skills: [gdb, lldb, core-dumps, strace]
  - tag: sloppy
    label: Sloppy
    description: Bundle with a duplicate member
    skills: [gdb, strace, gdb]
`

func fixtureResolver(t *testing.T, opts ...Option) *Resolver {
	t.Helper()
	cat, err := catalog.Load([]byte(fixtureYAML))
	if err != nil {
		t.Fatalf("load fixture catalog: %v", err)
	}
	return NewResolver(cat, opts...)
}

func TestResolveAll(t *testing.T) {
	r := fixtureResolver(t)

	p, err := r.Resolve(SelectAll())
	if err != nil {
		t.Fatalf("resolve all: %v", err)
	}

	want := []string{"gdb", "lldb", "core-dumps", "strace", "rustc-basics", "rust-ffi"}
	if !reflect.DeepEqual(p.Skills, want) {
		t.Fatalf("skills = %v, want %v", p.Skills, want)
	}
	if p.Command != "npx skills add mohitmishra786/low-level-dev-skills --all" {
		t.Fatalf("command = %q", p.Command)
	}
}

func TestResolveCategory(t *testing.T) {
	r := fixtureResolver(t)

	p, err := r.Resolve(SelectCategory("debuggers"))
	if err != nil {
		t.Fatalf("resolve category: %v", err)
	}

	want := []string{"gdb", "lldb", "core-dumps"}
	if !reflect.DeepEqual(p.Skills, want) {
		t.Fatalf("skills = %v, want %v", p.Skills, want)
	}
	if !strings.HasSuffix(p.Command, "--skill gdb lldb core-dumps") {
		t.Fatalf("command = %q", p.Command)
	}
}

func TestResolveCategoryUnknownIsEmpty(t *testing.T) {
	r := fixtureResolver(t)

	p, err := r.Resolve(SelectCategory("no-such-category"))
	if err != nil {
		t.Fatalf("empty category should not error: %v", err)
	}
	if len(p.Skills) != 0 {
		t.Fatalf("skills = %v, want empty", p.Skills)
	}
	if p.Command != "" {
		t.Fatalf("empty plan rendered command %q", p.Command)
	}
}

func TestResolveBundle(t *testing.T) {
	r := fixtureResolver(t)

	p, err := r.Resolve(SelectBundle("debugging"))
	if err != nil {
		t.Fatalf("resolve bundle: %v", err)
	}

	want := []string{"gdb", "lldb", "core-dumps", "strace"}
	if !reflect.DeepEqual(p.Skills, want) {
		t.Fatalf("skills = %v, want %v", p.Skills, want)
	}
}

func TestResolveBundleDeduplicatesMembers(t *testing.T) {
	r := fixtureResolver(t)

	p, err := r.Resolve(SelectBundle("sloppy"))
	if err != nil {
		t.Fatalf("resolve bundle: %v", err)
	}

	want := []string{"gdb", "strace"}
	if !reflect.DeepEqual(p.Skills, want) {
		t.Fatalf("skills = %v, want %v", p.Skills, want)
	}
}

func TestResolveBundleUnknownTag(t *testing.T) {
	r := fixtureResolver(t)

	_, err := r.Resolve(SelectBundle("does-not-exist"))
	if err == nil {
		t.Fatal("expected error for unknown bundle")
	}

	var ube *UnknownBundleError
	if !errors.As(err, &ube) {
		t.Fatalf("error type = %T, want *UnknownBundleError", err)
	}
	if ube.Tag != "does-not-exist" {
		t.Fatalf("tag = %q", ube.Tag)
	}
}

func TestResolveNames(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		wantSkills  []string
		wantUnknown []string
	}{
		{
			name:       "known names in input order",
			input:      []string{"lldb", "gdb"},
			wantSkills: []string{"lldb", "gdb"},
		},
		{
			name:        "unknown dropped with warning, duplicates removed",
			input:       []string{"gdb", "nonexistent-skill", "gdb"},
			wantSkills:  []string{"gdb"},
			wantUnknown: []string{"nonexistent-skill"},
		},
		{
			name:       "glob expands in catalog order",
			input:      []string{"rust*"},
			wantSkills: []string{"rustc-basics", "rust-ffi"},
		},
		{
			name:       "glob overlap deduplicates",
			input:      []string{"rust-ffi", "rust*"},
			wantSkills: []string{"rust-ffi", "rustc-basics"},
		},
		{
			name:        "glob matching nothing is reported verbatim",
			input:       []string{"zig-*", "gdb"},
			wantSkills:  []string{"gdb"},
			wantUnknown: []string{"zig-*"},
		},
		{
			name:        "empty input yields empty plan",
			input:       nil,
			wantSkills:  nil,
			wantUnknown: nil,
		},
	}

	r := fixtureResolver(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Resolve(SelectNames(tt.input...))
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if !reflect.DeepEqual(p.Skills, tt.wantSkills) {
				t.Fatalf("skills = %v, want %v", p.Skills, tt.wantSkills)
			}
			if !reflect.DeepEqual(p.Unknown, tt.wantUnknown) {
				t.Fatalf("unknown = %v, want %v", p.Unknown, tt.wantUnknown)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	r := fixtureResolver(t)
	sel := SelectNames("gdb", "rust*", "lldb")

	first, err := r.Resolve(sel)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := r.Resolve(sel)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if first.Command != second.Command {
		t.Fatalf("commands differ: %q vs %q", first.Command, second.Command)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("plans differ: %+v vs %+v", first, second)
	}
}

func TestResolverOptions(t *testing.T) {
	r := fixtureResolver(t, WithSource("acme/skills"), WithInstaller("skills install"))

	p, err := r.Resolve(SelectNames("gdb"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.Command != "skills install acme/skills --skill gdb" {
		t.Fatalf("command = %q", p.Command)
	}
}

// The documented command strings for the shipped catalog.
func TestDefaultCatalogScenarios(t *testing.T) {
	r := NewResolver(catalog.Default())

	p, err := r.Resolve(SelectBundle("rust"))
	if err != nil {
		t.Fatalf("resolve rust bundle: %v", err)
	}
	want := "npx skills add mohitmishra786/low-level-dev-skills --skill " +
		"rustc-basics cargo-workflows rust-debugging rust-profiling rust-ffi rust-cross rust-sanitizers-miri rust-unsafe"
	if p.Command != want {
		t.Fatalf("command = %q, want %q", p.Command, want)
	}

	p, err = r.Resolve(SelectCategory("debuggers"))
	if err != nil {
		t.Fatalf("resolve debuggers: %v", err)
	}
	wantNames := []string{"gdb", "lldb", "core-dumps"}
	if !reflect.DeepEqual(p.Skills, wantNames) {
		t.Fatalf("skills = %v, want %v", p.Skills, wantNames)
	}
}
