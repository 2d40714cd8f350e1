package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/OutSquareCapital/sigdiff/internal/signature"
)

const bannerWidth = 60

// WriteText renders a grouped human-readable report. Differences are
// grouped by class in stream order; labels name the two compared sources.
func WriteText(w io.Writer, leftLabel, rightLabel string, differences []signature.Difference) {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "SIGNATURE COMPATIBILITY REPORT: %s vs %s\n", leftLabel, rightLabel)
	fmt.Fprintln(w, banner)

	if len(differences) == 0 {
		fmt.Fprintln(w, "\nNo differences found.")
		return
	}

	divider := strings.Repeat("-", bannerWidth)
	currentClass := ""
	for _, diff := range differences {
		if diff.ClassName != currentClass {
			currentClass = diff.ClassName
			fmt.Fprintf(w, "\n%s\n%s:\n%s\n", divider, currentClass, divider)
		}

		fmt.Fprintf(w, "  %s [%s]\n", diff.MethodName, diff.Issue)
		fmt.Fprintf(w, "    %s: %s\n", leftLabel, diff.Left)
		fmt.Fprintf(w, "    %s: %s\n", rightLabel, diff.Right)
	}

	fmt.Fprintf(w, "\n%d difference(s) found.\n", len(differences))
}

// WriteExtras renders members present on one side only, grouped by class.
// Used by the reverse pass of a bidirectional audit.
func WriteExtras(w io.Writer, label string, extras []signature.Difference) {
	if len(extras) == 0 {
		return
	}

	divider := strings.Repeat("-", bannerWidth)
	fmt.Fprintf(w, "\n%s\nEXTRA IN %s:\n%s\n", divider, label, divider)

	currentClass := ""
	for _, diff := range extras {
		if diff.ClassName != currentClass {
			currentClass = diff.ClassName
			fmt.Fprintf(w, "\n%s:\n", currentClass)
		}
		fmt.Fprintf(w, "  - %s %s\n", diff.MethodName, diff.Left)
	}
}
