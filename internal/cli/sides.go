package cli

import (
	"fmt"
	"os"

	"github.com/gobwas/glob"

	"github.com/OutSquareCapital/sigdiff/internal/config"
	"github.com/OutSquareCapital/sigdiff/internal/introspect"
	"github.com/OutSquareCapital/sigdiff/internal/signature"
	"github.com/OutSquareCapital/sigdiff/internal/stubs"
)

// loadSide parses one side of the comparison and resolves inheritance. When
// dumpPath is set the side is read from a JSON introspection dump instead
// of a stub file; both paths produce the same flattened table shape.
func loadSide(cfg *config.Config, side config.SideConfig, dumpPath string, ignore []glob.Glob) (*signature.FlatTable, error) {
	var (
		tables *signature.ClassTables
		err    error
	)

	classes := cfg.ClassNames()
	if dumpPath != "" {
		tables, err = extractDump(dumpPath, classes)
	} else {
		tables, err = stubs.NewParser(classes, ignore).ParseFile(side.Stub)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s side: %w", side.Label, err)
	}

	return signature.Resolve(tables, cfg.HierarchyMap(), classes), nil
}

func extractDump(path string, classes []string) (*signature.ClassTables, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var extractor signature.Extractor = introspect.NewExtractor(classes)
	return extractor.Extract(source)
}

// extrasOnly filters a reverse-direction diff down to the members that are
// entirely absent on the forward side. Mismatch findings from the reverse
// pass duplicate the forward pass and are dropped.
func extrasOnly(reverse []signature.Difference) []signature.Difference {
	var extras []signature.Difference
	for _, diff := range reverse {
		if diff.Issue == signature.IssueMissing {
			extras = append(extras, diff)
		}
	}
	return extras
}
