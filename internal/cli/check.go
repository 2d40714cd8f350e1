package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/OutSquareCapital/sigdiff/internal/config"
	"github.com/OutSquareCapital/sigdiff/internal/report"
	"github.com/OutSquareCapital/sigdiff/internal/signature"
	"github.com/OutSquareCapital/sigdiff/internal/watcher"
)

var (
	checkLeft      string
	checkRight     string
	checkLeftDump  string
	checkRightDump string
	checkOutput    string
	checkWatch     bool
)

// checkCmd runs the full signature comparison
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare two stub files and report signature differences",
	Long: `Compare the configured left and right stub files and report every
signature difference.

The comparison runs in both directions: members missing on the right are
reported with their full left-side signature, and members present only on
the right are listed as extras. A grouped text report goes to stdout and
the ordered difference stream is written as NDJSON to the output path.

With --watch the comparison re-runs whenever either stub file changes.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkLeft, "left", "", "override the left stub path")
	checkCmd.Flags().StringVar(&checkRight, "right", "", "override the right stub path")
	checkCmd.Flags().StringVar(&checkLeftDump, "left-dump", "", "read the left side from a JSON introspection dump")
	checkCmd.Flags().StringVar(&checkRightDump, "right-dump", "", "read the right side from a JSON introspection dump")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "override the NDJSON output path")
	checkCmd.Flags().BoolVar(&checkWatch, "watch", false, "re-run when a stub file changes")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return err
	}

	if checkLeft != "" {
		cfg.Left.Stub = checkLeft
	}
	if checkRight != "" {
		cfg.Right.Stub = checkRight
	}
	if checkOutput != "" {
		cfg.Output = checkOutput
	}

	if !checkWatch {
		return runComparison(cfg, os.Stdout)
	}

	return watchAndCheck(cfg)
}

// runComparison executes one full bidirectional comparison run.
func runComparison(cfg *config.Config, out io.Writer) error {
	ignore, err := config.CompileIgnoreGlobs(cfg.IgnoreMembers)
	if err != nil {
		return err
	}

	left, err := loadSide(cfg, cfg.Left, checkLeftDump, ignore)
	if err != nil {
		return err
	}
	right, err := loadSide(cfg, cfg.Right, checkRightDump, ignore)
	if err != nil {
		return err
	}

	differences := signature.Diff(left, right)
	extras := extrasOnly(signature.Diff(right, left))

	report.WriteText(out, cfg.Left.Label, cfg.Right.Label, differences)
	report.WriteExtras(out, cfg.Right.Label, extras)

	if cfg.Output != "" {
		if err := writeNDJSONFile(cfg.Output, differences); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(out, "\nWrote %s\n", cfg.Output)
		}
	}

	return nil
}

func writeNDJSONFile(path string, differences []signature.Difference) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return report.WriteNDJSON(f, differences)
}

// watchAndCheck runs the comparison, then re-runs it on every debounced
// change to either stub file until interrupted.
func watchAndCheck(cfg *config.Config) error {
	if err := runComparison(cfg, os.Stdout); err != nil {
		// A broken intermediate state of a stub file is expected while
		// editing; keep watching.
		log.Printf("Comparison failed: %v", err)
	}

	w, err := watcher.New([]string{cfg.Left.Stub, cfg.Right.Stub})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx, func() {
		if err := runComparison(cfg, os.Stdout); err != nil {
			log.Printf("Comparison failed: %v", err)
		}
	}); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Watching stub files; press Ctrl+C to stop.")
	<-ctx.Done()
	return nil
}
