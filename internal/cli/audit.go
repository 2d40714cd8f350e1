package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OutSquareCapital/sigdiff/internal/config"
	"github.com/OutSquareCapital/sigdiff/internal/signature"
)

var (
	auditLeftDump  string
	auditRightDump string
)

// auditCmd reports member presence only, without signature comparison
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report members present on one side only",
	Long: `Audit member presence between the two sides without comparing
signatures. Lists every member missing from the right side and every
extra member the right side declares, grouped by class with the member
kind (method, property, classmethod, staticmethod).

Either side can be read from a JSON introspection dump instead of a stub
file, which makes the audit usable against live-inspected classes.`,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVar(&auditLeftDump, "left-dump", "", "read the left side from a JSON introspection dump")
	auditCmd.Flags().StringVar(&auditRightDump, "right-dump", "", "read the right side from a JSON introspection dump")
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return err
	}

	ignore, err := config.CompileIgnoreGlobs(cfg.IgnoreMembers)
	if err != nil {
		return err
	}

	left, err := loadSide(cfg, cfg.Left, auditLeftDump, ignore)
	if err != nil {
		return err
	}
	right, err := loadSide(cfg, cfg.Right, auditRightDump, ignore)
	if err != nil {
		return err
	}

	writeAudit(os.Stdout, cfg, left, right)
	return nil
}

func writeAudit(out io.Writer, cfg *config.Config, left, right *signature.FlatTable) {
	banner := strings.Repeat("=", 60)
	fmt.Fprintln(out, banner)
	fmt.Fprintf(out, "MEMBER PRESENCE AUDIT: %s vs %s\n", cfg.Left.Label, cfg.Right.Label)
	fmt.Fprintln(out, banner)

	missing := absentFrom(left, right)
	extra := absentFrom(right, left)

	writePresenceSection(out, fmt.Sprintf("MISSING IN %s (present in %s)", cfg.Right.Label, cfg.Left.Label), missing)
	writePresenceSection(out, fmt.Sprintf("EXTRA IN %s (not in %s)", cfg.Right.Label, cfg.Left.Label), extra)

	if len(missing) == 0 && len(extra) == 0 {
		fmt.Fprintln(out, "\nAll members accounted for on both sides.")
	}
}

// absentFrom returns the members of have that other lacks, in table order.
func absentFrom(have, other *signature.FlatTable) []signature.SignatureInfo {
	var absent []signature.SignatureInfo
	for pair := have.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := other.Get(pair.Key); !ok {
			absent = append(absent, pair.Value)
		}
	}
	return absent
}

func writePresenceSection(out io.Writer, title string, members []signature.SignatureInfo) {
	if len(members) == 0 {
		return
	}

	divider := strings.Repeat("-", 60)
	fmt.Fprintf(out, "\n%s\n%s:\n%s\n", divider, title, divider)

	currentClass := ""
	for _, member := range members {
		if member.ClassName != currentClass {
			currentClass = member.ClassName
			fmt.Fprintf(out, "\n%s:\n", currentClass)
		}
		fmt.Fprintf(out, "  - %s (%s)\n", member.MethodName, auditKind(member))
	}
}

func auditKind(sig signature.SignatureInfo) string {
	switch {
	case sig.IsProperty:
		return "property"
	case sig.IsClassMethod:
		return "classmethod"
	case sig.IsStaticMethod:
		return "staticmethod"
	default:
		return "method"
	}
}
