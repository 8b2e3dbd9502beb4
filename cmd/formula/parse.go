package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zephyrtronium/formula"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] formula...",
		Short: "Parse formulas and print them fully bracketed.",
		Long: `Parse each formula and print it with every operation bracketed, which shows
how it is grouped. With --plot the formula is printed in gnuplot syntax with
bound parameters substituted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, GetFlag(cmd, "simplify"))
		},
	}
	cmd.Flags().Bool("simplify", false, "simplify formulas before printing")
	addPrintFlags(cmd)
	return cmd
}

func newSimplifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simplify [flags] formula...",
		Short: "Simplify formulas.",
		Long: `Simplify each formula with a single pass of rewrites and print the result.
With --verbose each rewrite is logged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, true)
		},
	}
	addPrintFlags(cmd)
	return cmd
}

func addPrintFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("plot", false, "print in gnuplot syntax")
	cmd.Flags().Bool("tree", false, "print the tree structure")
	cmd.Flags().Bool("names", false, "print the parameter names each formula uses")
	addParamFlags(cmd)
}

func runParse(cmd *cobra.Command, args []string, simplify bool) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}
	var (
		plot  = GetFlag(cmd, "plot")
		tree  = GetFlag(cmd, "tree")
		names = GetFlag(cmd, "names")
		out   = cmd.OutOrStdout()
	)
	for _, src := range args {
		e, err := parseFormula(cmd, src, simplify)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"src": src, "depth": e.Depth(), "size": e.Size()}).Debug("parsed")
		switch {
		case names:
			fmt.Fprintln(out, string(usedNames(e)))
		case tree:
			fmt.Fprintf(out, "%#v\n", e)
		case plot:
			fmt.Fprintln(out, e.PlotString(p))
		default:
			fmt.Fprintln(out, e)
		}
	}
	return nil
}

// usedNames returns the distinct parameter names of e in alphabet order.
func usedNames(e *formula.Expr) []byte {
	p := formula.NewParams()
	for _, name := range e.Params() {
		p.Set(name, 0)
	}
	return p.Names()
}
