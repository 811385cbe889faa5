package cmd

import (
	"strings"
	"testing"
)

func TestCategoryFlagCompletion(t *testing.T) {
	completions, _ := CategoryFlagCompletion(nil, nil, "deb")
	if len(completions) != 1 || completions[0] != "debuggers" {
		t.Fatalf("completions = %v, want [debuggers]", completions)
	}

	completions, _ = CategoryFlagCompletion(nil, nil, "zzz")
	if len(completions) != 0 {
		t.Fatalf("completions = %v, want none", completions)
	}
}

func TestBundleFlagCompletion(t *testing.T) {
	completions, _ := BundleFlagCompletion(nil, nil, "ru")
	if len(completions) != 1 {
		t.Fatalf("completions = %v, want one entry", completions)
	}
	if !strings.HasPrefix(completions[0], "rust\t") {
		t.Fatalf("completion = %q, want rust with label", completions[0])
	}
}

func TestSkillArgCompletion(t *testing.T) {
	completions, _ := SkillArgCompletion(nil, nil, "gd")
	if len(completions) != 1 || !strings.HasPrefix(completions[0], "gdb\t") {
		t.Fatalf("completions = %v, want gdb with description", completions)
	}

	// Skills already on the command line are not suggested again.
	completions, _ = SkillArgCompletion(nil, []string{"gdb"}, "gd")
	if len(completions) != 0 {
		t.Fatalf("completions = %v, want none", completions)
	}
}
