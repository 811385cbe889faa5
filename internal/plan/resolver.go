// Package plan resolves a user selection against the skill catalog into a
// concrete install plan: the deduplicated, catalog-order-stable list of
// skill names and the shell command that installs them.
package plan

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/mohitmishra786/low-level-dev-skills/internal/catalog"
)

// DefaultSource is the repo slug used in rendered install commands when
// no override is configured.
const DefaultSource = "mohitmishra786/low-level-dev-skills"

// DefaultInstaller is the command prefix of rendered install commands.
const DefaultInstaller = "npx skills add"

// Plan is the result of resolving one Selection. It is a transient value,
// recomputed on every resolve and never cached.
type Plan struct {
	// Skills is the deduplicated skill-name list, first occurrence wins.
	Skills []string `json:"skills"`
	// Command is the shell command that installs the selected skills.
	Command string `json:"command"`
	// Unknown collects names or patterns from an explicit selection that
	// matched nothing in the catalog. Unknown entries are dropped from the
	// plan rather than failing it.
	Unknown []string `json:"unknown,omitempty"`
}

// UnknownBundleError reports a bundle tag that does not exist.
type UnknownBundleError struct {
	Tag string
}

func (e *UnknownBundleError) Error() string {
	return fmt.Sprintf("unknown bundle %q", e.Tag)
}

// Resolver turns Selections into Plans against an injected catalog.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	cat       *catalog.Catalog
	source    string
	installer string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSource overrides the repo slug in rendered commands.
func WithSource(source string) Option {
	return func(r *Resolver) {
		if source != "" {
			r.source = source
		}
	}
}

// WithInstaller overrides the install command prefix.
func WithInstaller(installer string) Option {
	return func(r *Resolver) {
		if installer != "" {
			r.installer = installer
		}
	}
}

// NewResolver creates a Resolver over the given catalog.
func NewResolver(cat *catalog.Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		cat:       cat,
		source:    DefaultSource,
		installer: DefaultInstaller,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve computes the install plan for a selection. It is deterministic:
// identical selections yield byte-identical plans.
func (r *Resolver) Resolve(sel Selection) (Plan, error) {
	switch sel.Kind {
	case KindAll:
		return r.resolveAll(), nil
	case KindCategory:
		return r.resolveCategory(sel.Category), nil
	case KindBundle:
		return r.resolveBundle(sel.Tag)
	case KindNames:
		return r.resolveNames(sel.Names), nil
	default:
		return Plan{}, fmt.Errorf("unknown selection kind %d", sel.Kind)
	}
}

func (r *Resolver) resolveAll() Plan {
	var names []string
	for _, s := range r.cat.Skills() {
		names = append(names, s.Name)
	}
	return Plan{
		Skills:  names,
		Command: r.installer + " " + r.source + " --all",
	}
}

func (r *Resolver) resolveCategory(category string) Plan {
	var names []string
	for _, s := range r.cat.ByCategory(category) {
		names = append(names, s.Name)
	}
	return r.planFor(names)
}

func (r *Resolver) resolveBundle(tag string) (Plan, error) {
	b, ok := r.cat.FindBundle(tag)
	if !ok {
		return Plan{}, &UnknownBundleError{Tag: tag}
	}
	// Members are assumed unique at authoring time; dedup anyway so a
	// sloppy edit cannot produce a repeated --skill argument.
	return r.planFor(dedup(b.Skills)), nil
}

func (r *Resolver) resolveNames(names []string) Plan {
	var resolved, unknown []string
	seen := make(map[string]bool)

	for _, name := range names {
		if isPattern(name) {
			matched := false
			g, err := glob.Compile(name)
			if err == nil {
				for _, s := range r.cat.Skills() {
					if g.Match(s.Name) {
						matched = true
						if !seen[s.Name] {
							seen[s.Name] = true
							resolved = append(resolved, s.Name)
						}
					}
				}
			}
			if !matched {
				unknown = append(unknown, name)
			}
			continue
		}

		if _, ok := r.cat.Find(name); !ok {
			unknown = append(unknown, name)
			continue
		}
		if !seen[name] {
			seen[name] = true
			resolved = append(resolved, name)
		}
	}

	p := r.planFor(resolved)
	p.Unknown = unknown
	return p
}

// planFor renders the command for an already-deduplicated name list.
func (r *Resolver) planFor(names []string) Plan {
	p := Plan{Skills: names}
	if len(names) == 0 {
		return p
	}
	p.Command = r.installer + " " + r.source + " --skill " + strings.Join(names, " ")
	return p
}

func dedup(names []string) []string {
	var out []string
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// isPattern reports whether a selection entry should be treated as a glob
// rather than a literal skill name.
func isPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
