package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/gobwas/glob"
)

var (
	// ErrEmptyLabel indicates a missing side label
	ErrEmptyLabel = errors.New("empty side label")

	// ErrEmptyStub indicates a missing stub file path
	ErrEmptyStub = errors.New("empty stub path")

	// ErrNoClasses indicates an empty target class list
	ErrNoClasses = errors.New("no target classes configured")

	// ErrDuplicateClass indicates a class listed twice in the target set
	ErrDuplicateClass = errors.New("duplicate target class")

	// ErrHierarchyCycle indicates a cyclic class hierarchy
	ErrHierarchyCycle = errors.New("class hierarchy contains a cycle")

	// ErrSelfAncestor indicates a class listed as its own ancestor
	ErrSelfAncestor = errors.New("class listed as its own ancestor")

	// ErrInvalidGlob indicates an ignore pattern that does not compile
	ErrInvalidGlob = errors.New("invalid ignore pattern")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateSide("left", &cfg.Left); err != nil {
		errs = append(errs, err)
	}
	if err := validateSide("right", &cfg.Right); err != nil {
		errs = append(errs, err)
	}
	if err := validateClasses(cfg.Classes); err != nil {
		errs = append(errs, err)
	}
	if _, err := CompileIgnoreGlobs(cfg.IgnoreMembers); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validateSide(name string, side *SideConfig) error {
	var errs []error

	if strings.TrimSpace(side.Label) == "" {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyLabel, name))
	}
	if strings.TrimSpace(side.Stub) == "" {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyStub, name))
	}

	return errors.Join(errs...)
}

// validateClasses rejects empty or duplicated target sets and builds the
// hierarchy as a directed graph to reject cycles. Ancestors that never
// appear in the parsed files are legal (they contribute nothing at
// resolution time), so only structural problems are errors here.
func validateClasses(classes []ClassSpec) error {
	if len(classes) == 0 {
		return ErrNoClasses
	}

	seen := make(map[string]bool, len(classes))
	for _, spec := range classes {
		if seen[spec.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateClass, spec.Name)
		}
		seen[spec.Name] = true
	}

	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	for _, spec := range classes {
		addVertex(g, spec.Name)
		for _, ancestor := range spec.Ancestors {
			if ancestor == spec.Name {
				return fmt.Errorf("%w: %s", ErrSelfAncestor, spec.Name)
			}
			addVertex(g, ancestor)
			if err := g.AddEdge(spec.Name, ancestor); err != nil {
				if errors.Is(err, graph.ErrEdgeCreatesCycle) {
					return fmt.Errorf("%w: %s -> %s", ErrHierarchyCycle, spec.Name, ancestor)
				}
				if !errors.Is(err, graph.ErrEdgeAlreadyExists) {
					return fmt.Errorf("invalid hierarchy edge %s -> %s: %w", spec.Name, ancestor, err)
				}
			}
		}
	}

	return nil
}

func addVertex(g graph.Graph[string, string], name string) {
	// Re-adding an existing vertex is harmless.
	_ = g.AddVertex(name)
}

// CompileIgnoreGlobs compiles the extra member-exclusion patterns.
func CompileIgnoreGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidGlob, pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
