// Command formula parses, evaluates, simplifies, and generates formulas of one
// variable.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "formula",
		Short: "A toolbox for formulas of one variable.",
		Long: `Parse, evaluate, simplify, and randomly generate formulas of one variable x
with parameters named by single letters.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			if GetFlag(cmd, "version") {
				fmt.Fprintln(cmd.OutOrStdout(), "formula", version())
				return
			}
			cmd.Help()
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.Flags().Bool("version", false, "print version and exit")
	root.AddCommand(newParseCmd(), newSimplifyCmd(), newEvalCmd(), newGenCmd())
	return root
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(unknown version)"
}
