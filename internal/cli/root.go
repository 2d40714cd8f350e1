package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootDir string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sigdiff",
	Short: "Signature compatibility checker for Python stub files",
	Long: `Sigdiff compares two .pyi stub files that are supposed to describe
structurally equivalent class hierarchies and reports every point where
they diverge: missing members, differing parameter lists, or incompatible
return types.

Inheritance is flattened with a caller-supplied class hierarchy map, and
return types are normalized before comparison so that semantically
equivalent spellings do not show up as noise.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "directory containing the .sigdiff config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
