// Package cli wires the sigpress commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sigpress",
	Short: "Sigpress - pack a repository into a compressed signature document",
	Long: `Sigpress compresses source files down to their structure: declarations,
signatures, and type definitions are kept verbatim while implementation
bodies collapse into placeholder lines. The compressed files are assembled
into a single document suitable for feeding a codebase to an LLM.`,
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
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
