package main

import (
	"fmt"
	"math"
	"math/big"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] formula...",
		Short: "Evaluate formulas.",
		Long: `Evaluate each formula at each value of x given by --x. Every parameter the
formulas use must be bound by --param or --params.

By default evaluation uses float64 arithmetic, where invalid operations give
NaN or infinities. With --prec, evaluation uses arbitrary precision and invalid
operations are reported as errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
	cmd.Flags().Float64Slice("x", []float64{0}, "values of x (any number of times)")
	cmd.Flags().Uint("prec", 0, "precision of calculations in bits, or 0 for float64")
	cmd.Flags().String("fmt", "%g", "result formatting string")
	cmd.Flags().Bool("echo", false, "print each formula and x before its result")
	cmd.Flags().Bool("simplify", false, "simplify formulas before evaluating")
	addParamFlags(cmd)
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}
	var (
		xs   = GetFloat64Slice(cmd, "x")
		prec = GetUint(cmd, "prec")
		verb = GetString(cmd, "fmt") + "\n"
		echo = GetFlag(cmd, "echo")
		simp = GetFlag(cmd, "simplify")
		out  = cmd.OutOrStdout()
	)
	for _, src := range args {
		e, err := parseFormula(cmd, src, simp)
		if err != nil {
			return err
		}
		if err := e.CheckParams(p); err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		for _, x := range xs {
			if echo {
				fmt.Fprintf(out, "%v at x=%g : ", e, x)
			}
			if prec == 0 {
				fmt.Fprintf(out, verb, e.Eval(x, p))
				continue
			}
			if math.IsNaN(x) {
				fmt.Fprintln(out, "x is NaN")
				continue
			}
			r, err := e.EvalBig(big.NewFloat(x), p, prec)
			if err != nil {
				log.WithFields(log.Fields{"src": src, "x": x}).Debug(err)
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintf(out, verb, r)
		}
	}
	return nil
}
